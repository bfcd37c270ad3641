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
)

func TestMerge(t *testing.T) {
	type want struct {
		m    map[string]any
		kind Kind
	}
	cases := map[string]struct {
		reason string
		src    any
		other  any
		want   want
	}{
		"Objects": {
			reason: "The right operand should win on key collisions; other keys should be kept.",
			src:    map[string]any{"a": 1, "b": 2},
			other:  must(New(map[string]any{"b": 3, "c": 4})),
			want:   want{m: map[string]any{"a": 1, "b": 3, "c": 4}},
		},
		"Mapping": {
			reason: "A plain mapping should be accepted as the right operand.",
			src:    map[string]any{"a": 1, "b": map[string]any{"x": 1}},
			other:  map[string]any{"b": map[string]any{"y": 2}},
			want:   want{m: map[string]any{"a": 1, "b": map[string]any{"y": 2}}},
		},
		"Empty": {
			reason: "Merging an empty mapping should produce an equal Object.",
			src:    map[string]any{"a": 1},
			other:  map[string]any{},
			want:   want{m: map[string]any{"a": 1}},
		},
		"IllegalKey": {
			reason: "The merged mapping should be subject to the usual key checks.",
			src:    map[string]any{"a": 1},
			other:  map[string]any{"__b": 2},
			want:   want{kind: KindName},
		},
		"Incompatible": {
			reason: "An operand that is not a mapping should be refused.",
			src:    map[string]any{"a": 1},
			other:  "b",
			want:   want{kind: KindNotImplemented},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			o := mustNew(t, tc.src)
			got, err := o.Merge(tc.other)
			if diff := cmp.Diff(tc.want.kind, KindOf(err)); diff != "" {
				t.Errorf("\n%s\nKindOf(Merge(...)): -want, +got:\n%s", tc.reason, diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tc.want.m, got.Map()); diff != "" {
				t.Errorf("\n%s\nMerge(...): -want, +got:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.src, o.Map()); diff != "" {
				t.Errorf("\n%s\nMerge(...) modified its receiver: -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestMergeSettings(t *testing.T) {
	a := mustNew(t, map[string]any{"a": map[string]any{"x": 1}}, WithRecursive(false), WithIgnoreErrors(true))
	b := mustNew(t, map[string]any{"c": 3})

	got, err := a.Merge(map[string]any{"__b": 2, "c": 3})
	if err != nil {
		t.Fatalf("Merge(...): %v", err)
	}
	if diff := cmp.Diff(a.Settings(), got.Settings()); diff != "" {
		t.Errorf("Merge(...).Settings(): -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": map[string]any{"x": 1}, "c": 3}, got.Map()); diff != "" {
		t.Errorf("Merge(...): -want, +got:\n%s", diff)
	}

	got, err = b.Merge(a)
	if err != nil {
		t.Fatalf("Merge(...): %v", err)
	}
	if diff := cmp.Diff(b.Settings(), got.Settings()); diff != "" {
		t.Errorf("Merge(...).Settings(): -want, +got:\n%s", diff)
	}
	v, _ := got.Get("a")
	if _, ok := v.(*Object); !ok {
		t.Errorf("Merge(...).Get(%q): the left operand's recursive setting should apply, got %T", "a", v)
	}
}

func TestMergeDoesNotShare(t *testing.T) {
	a := mustNew(t, map[string]any{"b": map[string]any{"c": 1}})
	got, err := a.Merge(map[string]any{})
	if err != nil {
		t.Fatalf("Merge(...): %v", err)
	}
	ab, _ := a.Get("b")
	gb, _ := got.Get("b")
	if ab == gb {
		t.Fatalf("Merge(...): nested Objects should not be shared between operands and result")
	}
	if err := gb.(*Object).Set("c", 2); err != nil {
		t.Fatalf("Set(...): %v", err)
	}
	if c, _ := ab.(*Object).Get("c"); c != 1 {
		t.Errorf("Merge(...): changing the result changed the receiver, got c = %v", c)
	}
}

func TestMergeOnto(t *testing.T) {
	type want struct {
		m     map[string]any
		kind  Kind
		typed bool
	}
	cases := map[string]struct {
		reason string
		src    any
		base   any
		want   want
	}{
		"Mapping": {
			reason: "The receiver should still win on key collisions.",
			src:    map[string]any{"b": 3, "c": 4},
			base:   map[string]any{"a": 1, "b": 2},
			want:   want{m: map[string]any{"a": 1, "b": 3, "c": 4}},
		},
		"Object": {
			reason: "An Object should be accepted as the base.",
			src:    map[string]any{"b": 3},
			base:   must(New(map[string]any{"a": 1, "b": 2})),
			want:   want{m: map[string]any{"a": 1, "b": 3}},
		},
		"Incompatible": {
			reason: "A base that is not a mapping should be a hard type error.",
			src:    map[string]any{"b": 3},
			base:   []any{"a"},
			want:   want{kind: KindType, typed: true},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			o := mustNew(t, tc.src)
			got, err := o.MergeOnto(tc.base)
			if diff := cmp.Diff(tc.want.kind, KindOf(err)); diff != "" {
				t.Errorf("\n%s\nKindOf(MergeOnto(...)): -want, +got:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.typed, IsTypeError(err)); diff != "" {
				t.Errorf("\n%s\nIsTypeError(MergeOnto(...)): -want, +got:\n%s", tc.reason, diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tc.want.m, got.Map()); diff != "" {
				t.Errorf("\n%s\nMergeOnto(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestMergeInto(t *testing.T) {
	orig := mustNew(t, map[string]any{"a": 1})
	o := orig

	if err := MergeInto(&o, map[string]any{"a": 2, "b": 3}); err != nil {
		t.Fatalf("MergeInto(...): %v", err)
	}
	if o == orig {
		t.Errorf("MergeInto(...): want the variable rebound to a new Object")
	}
	if diff := cmp.Diff(map[string]any{"a": 2, "b": 3}, o.Map()); diff != "" {
		t.Errorf("MergeInto(...): -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": 1}, orig.Map()); diff != "" {
		t.Errorf("MergeInto(...) modified the original Object: -want, +got:\n%s", diff)
	}

	before := o
	if err := MergeInto(&o, 42); !IsNotImplemented(err) {
		t.Errorf("MergeInto(...): want a refusal, got %v", err)
	}
	if o != before {
		t.Errorf("MergeInto(...): the variable should not be rebound on error")
	}

	var empty *Object
	if err := MergeInto(&empty, map[string]any{"a": 1}); !IsTypeError(err) {
		t.Errorf("MergeInto(...): want a type error for a nil Object, got %v", err)
	}
	if err := MergeInto(nil, map[string]any{"a": 1}); !IsTypeError(err) {
		t.Errorf("MergeInto(...): want a type error for a nil destination, got %v", err)
	}
}
