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

// Merge returns a new Object holding the fields of the receiver overwritten by
// those of other, which must be an *Object or another mapping. The new Object
// has the receiver's settings. Neither operand is modified.
//
// Merge refuses operands that are not mappings with an error satisfying
// IsNotImplemented.
func (o *Object) Merge(other any) (*Object, error) {
	m, ok := asMapping(other)
	if !ok {
		return nil, notImplemented("merge", other)
	}
	return New(merged(objectMapping{o: o}, m), o.options()...)
}

// MergeOnto returns a new Object holding the fields of base overwritten by
// those of the receiver. It is the reflected form of Merge, used when base is
// the left operand. The new Object has the receiver's settings.
//
// Unlike Merge, an unsupported base is a type error.
func (o *Object) MergeOnto(base any) (*Object, error) {
	m, ok := asMapping(base)
	if !ok {
		return nil, typeErrorf("cannot merge %T and %T", base, o)
	}
	return New(merged(m, objectMapping{o: o}), o.options()...)
}

// MergeInto replaces *dst with the result of merging other into it. The Object
// previously referenced by *dst is not modified. A nil dst or *dst is a type
// error.
func MergeInto(dst **Object, other any) error {
	if dst == nil || *dst == nil {
		return typeErrorf("cannot merge %T into a nil Object", other)
	}
	n, err := (*dst).Merge(other)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// merged returns a plain mapping seeded with the entries of base and then
// overwritten by those of top. String keys of any named string type collapse
// to the same entry.
func merged(base, top mapping) map[any]any {
	out := make(map[any]any, base.size()+top.size())
	for _, m := range []mapping{base, top} {
		for _, k := range m.keys() {
			v, _ := m.lookup(k)
			if name, ok := keyName(k); ok {
				out[name] = v
				continue
			}
			out[k] = v
		}
	}
	return out
}
