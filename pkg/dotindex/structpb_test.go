/*
Copyright 2025 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dotindex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFromStruct(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"a":     1,
		"b":     map[string]any{"c": "x"},
		"items": []any{map[string]any{"d": true}},
	})
	if err != nil {
		t.Fatalf("structpb.NewStruct(...): %v", err)
	}

	o, err := FromStruct(s)
	if err != nil {
		t.Fatalf("FromStruct(...): %v", err)
	}
	want := map[string]any{
		"a":     float64(1),
		"b":     map[string]any{"c": "x"},
		"items": []any{map[string]any{"d": true}},
	}
	if diff := cmp.Diff(want, o.Map()); diff != "" {
		t.Errorf("FromStruct(...): -want, +got:\n%s", diff)
	}
	if v, _ := o.Lookup("items[0]"); !isObject(v) {
		t.Errorf("FromStruct(...): mappings in sequences should be Objects")
	}

	if _, err := FromStruct(nil); !IsTypeError(err) {
		t.Errorf("FromStruct(nil): want type error, got %v", err)
	}
}

func isObject(v any) bool {
	_, ok := v.(*Object)
	return ok
}

func TestAsStruct(t *testing.T) {
	cases := map[string]struct {
		reason string
		src    map[string]any
		want   map[string]any
		err    bool
	}{
		"Nested": {
			reason: "Nested Objects and sequences should become Struct values.",
			src:    map[string]any{"a": 1, "b": map[string]any{"c": []any{"x"}}},
			want:   map[string]any{"a": float64(1), "b": map[string]any{"c": []any{"x"}}},
		},
		"Unsupported": {
			reason: "Values a Struct cannot hold should be an error.",
			src:    map[string]any{"ch": make(chan int)},
			err:    true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := mustNew(t, tc.src).AsStruct()
			if (err != nil) != tc.err {
				t.Fatalf("\n%s\nAsStruct(): unexpected error: %v", tc.reason, err)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tc.want, s.AsMap()); diff != "" {
				t.Errorf("\n%s\nAsStruct(): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}
