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
	"cmp"
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"
)

// Equal returns true if other is a mapping with the same number of fields as
// the Object, and every field of the Object exists in other with an equal
// value. Sequences are compared element by element. Numbers are compared by
// value regardless of their Go type. Bools are not numbers, so true does not
// equal 1. Operands that are not mappings are never equal.
func (o *Object) Equal(other any) bool {
	m, ok := asMapping(other)
	if !ok {
		return false
	}
	return mappingsEqual(objectMapping{o: o}, m)
}

// NotEqual returns the negation of Equal.
func (o *Object) NotEqual(other any) bool {
	return !o.Equal(other)
}

// CompareSize compares the number of fields of the Object with that of other.
// It returns -1, 0 or +1 as cmp.Compare does. Values are not considered.
func (o *Object) CompareSize(other any) (int, error) {
	m, ok := asMapping(other)
	if !ok {
		return 0, notImplemented("size comparison", other)
	}
	return cmp.Compare(o.Len(), m.size()), nil
}

// Less returns true if the Object has fewer fields than other.
func (o *Object) Less(other any) (bool, error) {
	c, err := o.CompareSize(other)
	return c < 0, err
}

// Greater returns true if the Object has more fields than other.
func (o *Object) Greater(other any) (bool, error) {
	c, err := o.CompareSize(other)
	return c > 0, err
}

// LessOrEqual returns true if the Object has no more fields than other.
func (o *Object) LessOrEqual(other any) (bool, error) {
	c, err := o.CompareSize(other)
	return err == nil && c <= 0, err
}

// GreaterOrEqual returns true if the Object has no fewer fields than other.
func (o *Object) GreaterOrEqual(other any) (bool, error) {
	c, err := o.CompareSize(other)
	return err == nil && c >= 0, err
}

// Diff returns a human readable report of the differences between the Object
// and other, or an empty string if their plain forms are identical.
func (o *Object) Diff(other any) string {
	return gocmp.Diff(o.Map(), plain(other))
}

func mappingsEqual(a, b mapping) bool {
	if a.size() != b.size() {
		return false
	}
	for _, k := range a.keys() {
		av, _ := a.lookup(k)
		bv, ok := b.lookup(k)
		if !ok {
			return false
		}
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if isSequence(a) && isSequence(b) {
		return sequencesEqual(elements(a), elements(b))
	}
	if o, ok := a.(*Object); ok && o != nil {
		return o.Equal(b)
	}
	if o, ok := b.(*Object); ok && o != nil {
		return o.Equal(a)
	}
	am, aok := asMapping(a)
	bm, bok := asMapping(b)
	if aok && bok {
		return mappingsEqual(am, bm)
	}
	return scalarsEqual(a, b)
}

func sequencesEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func scalarsEqual(a, b any) bool {
	if an, ok := number(a); ok {
		bn, ok := number(b)
		return ok && an.equal(bn)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// num holds a Go numeric value in the widest type that represents it exactly.
type num struct {
	kind reflect.Kind // Int64, Uint64 or Float64
	i    int64
	u    uint64
	f    float64
}

func number(v any) (num, bool) {
	if v == nil {
		return num{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return num{kind: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return num{kind: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return num{kind: reflect.Float64, f: rv.Float()}, true
	default:
		return num{}, false
	}
}

func (n num) float() float64 {
	switch n.kind {
	case reflect.Int64:
		return float64(n.i)
	case reflect.Uint64:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n num) equal(m num) bool {
	switch {
	case n.kind == reflect.Float64 || m.kind == reflect.Float64:
		return n.float() == m.float()
	case n.kind == m.kind:
		return n.i == m.i && n.u == m.u
	case n.kind == reflect.Int64:
		return n.i >= 0 && uint64(n.i) == m.u
	default:
		return m.i >= 0 && uint64(m.i) == n.u
	}
}
