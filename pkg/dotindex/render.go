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
	"encoding/json"
	"fmt"
	"strings"
)

// String renders the Object for humans, e.g. .{"a": 1, "b": .{"c": 2}}. The
// format is not stable.
func (o *Object) String() string {
	b := &strings.Builder{}
	b.WriteString(".{")
	first := true
	for k, v := range o.Items() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(b, "%q: %s", k, render(v))
	}
	b.WriteString("}")
	return b.String()
}

func render(v any) string {
	switch t := v.(type) {
	case *Object:
		return t.String()
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "nil"
	}
	if isSequence(v) {
		el := elements(v)
		parts := make([]string, len(el))
		for i, e := range el {
			parts[i] = render(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

// Map returns a deep, plain copy of the Object. Nested Objects become
// map[string]any and sequences become []any. Fields hidden from iteration are
// omitted.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, len(o.fields))
	for k, v := range o.Items() {
		out[k] = plain(v)
	}
	return out
}

// plain returns the supplied value with every Object or string keyed mapping
// replaced by a map[string]any and every sequence by a []any.
func plain(v any) any {
	if o, ok := v.(*Object); ok && o != nil {
		return o.Map()
	}
	if m, ok := asMapping(v); ok {
		out := make(map[string]any, m.size())
		for _, k := range m.keys() {
			name, ok := keyName(k)
			if !ok {
				return v
			}
			e, _ := m.lookup(k)
			out[name] = plain(e)
		}
		return out
	}
	if isSequence(v) {
		el := elements(v)
		out := make([]any, len(el))
		for i, e := range el {
			out[i] = plain(e)
		}
		return out
	}
	return v
}

// MarshalJSON encodes the plain form of the Object.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Map())
}
