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
	"reflect"
)

// A mapping is a read-only view over anything that can act as a source or
// operand: an *Object, a map[string]any, or any other Go map.
type mapping interface {
	size() int
	keys() []any
	lookup(key any) (any, bool)
}

func asMapping(v any) (mapping, bool) {
	switch m := v.(type) {
	case *Object:
		if m == nil {
			return nil, false
		}
		return objectMapping{o: m}, true
	case map[string]any:
		return stringMapping(m), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	return reflectMapping{v: rv}, true
}

type objectMapping struct {
	o *Object
}

func (m objectMapping) size() int { return m.o.Len() }

func (m objectMapping) keys() []any {
	out := make([]any, 0, len(m.o.fields))
	for _, k := range m.o.Keys() {
		out = append(out, k)
	}
	return out
}

func (m objectMapping) lookup(key any) (any, bool) {
	k, ok := keyName(key)
	if !ok || reserved(k) {
		return nil, false
	}
	v, ok := m.o.fields[k]
	return v, ok
}

type stringMapping map[string]any

func (m stringMapping) size() int { return len(m) }

func (m stringMapping) keys() []any {
	out := make([]any, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (m stringMapping) lookup(key any) (any, bool) {
	k, ok := keyName(key)
	if !ok {
		return nil, false
	}
	v, ok := m[k]
	return v, ok
}

type reflectMapping struct {
	v reflect.Value
}

func (m reflectMapping) size() int { return m.v.Len() }

func (m reflectMapping) keys() []any {
	out := make([]any, 0, m.v.Len())
	iter := m.v.MapRange()
	for iter.Next() {
		out = append(out, iter.Key().Interface())
	}
	return out
}

func (m reflectMapping) lookup(key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	kv := reflect.ValueOf(key)
	kt := m.v.Type().Key()
	switch {
	case kv.Type().AssignableTo(kt):
	case kv.Type().ConvertibleTo(kt) && kv.Kind() == kt.Kind():
		kv = kv.Convert(kt)
	default:
		return nil, false
	}
	v := m.v.MapIndex(kv)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// keyName returns the supplied key as a string, if it is one. Named string
// types are accepted.
func keyName(key any) (string, bool) {
	if s, ok := key.(string); ok {
		return s, true
	}
	if key == nil {
		return "", false
	}
	rv := reflect.ValueOf(key)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// isSequence returns true for any slice or array except []byte, which is
// treated as a primitive.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]any); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// elements returns the elements of a sequence.
func elements(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
