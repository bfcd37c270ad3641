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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type segment struct {
	field   string
	index   int
	isIndex bool
}

func (s segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.field
}

// parsePath parses paths such as "spec.items[0].name". Negative indices count
// from the end of a sequence.
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments []segment
	for _, part := range strings.Split(path, ".") {
		name, rest, indexed := strings.Cut(part, "[")
		if name == "" {
			return nil, errors.Errorf("invalid path %q: empty field name", path)
		}
		if indexed && rest == "" {
			return nil, errors.Errorf("invalid path %q: unterminated index", path)
		}
		segments = append(segments, segment{field: name})

		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, errors.Errorf("invalid path %q: unterminated index", path)
			}
			i, err := strconv.Atoi(idx)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid path %q: bad index %q", path, idx)
			}
			segments = append(segments, segment{index: i, isIndex: true})

			if after == "" {
				break
			}
			if !strings.HasPrefix(after, "[") {
				return nil, errors.Errorf("invalid path %q: unexpected %q after index", path, after)
			}
			rest = after[1:]
		}
	}
	return segments, nil
}

// Lookup returns the value at the supplied dotted path, e.g.
// "spec.items[0].name". Fields of nested Objects and of plain mappings may be
// traversed, as may elements of sequences.
func (o *Object) Lookup(path string) (any, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	var cur any = o
	for i, s := range segments {
		at := joinSegments(segments[:i])
		if s.isIndex {
			if !isSequence(cur) {
				return nil, typeErrorf("cannot index %T at %q", cur, at)
			}
			el := elements(cur)
			idx := s.index
			if idx < 0 {
				idx += len(el)
			}
			if idx < 0 || idx >= len(el) {
				return nil, indexErrorf("index %d out of range at %q (length %d)", s.index, at, len(el))
			}
			cur = el[idx]
			continue
		}

		if obj, ok := cur.(*Object); ok && obj != nil {
			v, ok := obj.fields[s.field]
			if !ok {
				return nil, attributeErrorf("no field %q at %q", s.field, joinSegments(segments[:i+1]))
			}
			cur = v
			continue
		}
		m, ok := asMapping(cur)
		if !ok {
			return nil, typeErrorf("cannot access field %q of %T at %q", s.field, cur, at)
		}
		v, ok := m.lookup(s.field)
		if !ok {
			return nil, attributeErrorf("no field %q at %q", s.field, joinSegments(segments[:i+1]))
		}
		cur = v
	}
	return cur, nil
}

func joinSegments(segments []segment) string {
	b := &strings.Builder{}
	for i, s := range segments {
		if i > 0 && !s.isIndex {
			b.WriteString(".")
		}
		b.WriteString(s.String())
	}
	return b.String()
}
