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

/*
Package dotindex wraps nested mappings so that their keys can be addressed as
named fields.

# Construction

New converts a mapping into an *Object. Keys must be strings that do not start
with ReservedPrefix. When the Object is recursive (the default) every nested
mapping, including mappings found at any depth inside sequences, becomes an
*Object too:

	o, err := dotindex.New(map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
		"items": []any{map[string]any{"x": 1}},
	})

	b, _ := o.Get("b")       // *Object
	x, _ := o.Lookup("items[0].x") // 1

WithIgnoreErrors skips illegal keys instead of failing, and WithVerboseLogs
reports what was skipped.

# Behaviour

An Object behaves like a mapping: Iter yields field names in lexicographic
order, Len counts data fields, Equal compares against other Objects or plain
maps, and Merge combines two mappings with the right operand winning. Size
comparisons (Less, Greater, ...) consider only the number of fields.

Errors carry a Kind that can be tested with IsTypeError, IsNameError,
IsAttributeError, IsIndexError and IsNotImplemented.
*/
package dotindex
