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
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Get returns the value of the named field.
func (o *Object) Get(key string) (any, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, attributeErrorf("object has no field %q", key)
	}
	return v, nil
}

// Call is an alias of Get, for callers that treat the Object as a function of
// its field names.
func (o *Object) Call(key string) (any, error) {
	return o.Get(key)
}

// Set binds the supplied value to the named field, converting it the same way
// New would when the Object is recursive. Unlike New, Set does not check the
// key against ReservedPrefix. A field whose name starts with ReservedPrefix can
// be read with Get and removed with Delete, but is hidden from iteration, Has,
// Len, equality and merges.
func (o *Object) Set(key string, value any) error {
	v, err := o.convert(key, value)
	if err != nil {
		return errors.Wrapf(err, errConvertField, key)
	}
	o.fields[key] = v
	return nil
}

// Delete removes the named field.
func (o *Object) Delete(key string) error {
	if _, ok := o.fields[key]; !ok {
		return attributeErrorf("object has no field %q", key)
	}
	delete(o.fields, key)
	return nil
}

// Has returns true if the named field exists and is iterated.
func (o *Object) Has(key string) bool {
	if reserved(key) {
		return false
	}
	_, ok := o.fields[key]
	return ok
}

// Keys returns the names of all fields in lexicographic order. Names starting
// with ReservedPrefix are omitted.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		if reserved(k) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Iter returns the names of all fields in lexicographic order. Each call
// returns a new sequence.
func (o *Object) Iter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range o.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Items returns the fields and their values in lexicographic order of their
// names.
func (o *Object) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Len returns the number of data fields. Fields holding a function, and those
// whose names start with ReservedPrefix, are not counted.
func (o *Object) Len() int {
	n := 0
	for k, v := range o.fields {
		if reserved(k) || isFunc(v) {
			continue
		}
		n++
	}
	return n
}

// Int returns Len.
func (o *Object) Int() int { return o.Len() }

// Float returns Len as a float64.
func (o *Object) Float() float64 { return float64(o.Len()) }

// Pos returns Len.
func (o *Object) Pos() int { return o.Len() }

// Neg returns the negated Len.
func (o *Object) Neg() int { return -o.Len() }

// Bool returns true if the Object has any data fields.
func (o *Object) Bool() bool { return o.Len() != 0 }

func reserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}
