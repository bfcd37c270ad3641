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
	"github.com/pkg/errors"
)

// A Kind classifies the errors returned by an Object.
type Kind int

// Error kinds.
const (
	// KindUnknown is reported for errors that did not originate here.
	KindUnknown Kind = iota

	// KindType is reported when a source, key, or operand has the wrong type.
	KindType

	// KindName is reported when a key uses the reserved prefix.
	KindName

	// KindAttribute is reported when a field does not exist.
	KindAttribute

	// KindIndex is reported when a path indexes past the end of a sequence.
	KindIndex

	// KindNotImplemented is reported when an operation does not support the
	// supplied operand. Callers treat it as a type mismatch.
	KindNotImplemented
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "TypeError"
	case KindName:
		return "NameError"
	case KindAttribute:
		return "AttributeError"
	case KindIndex:
		return "IndexError"
	case KindNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

type kindError struct {
	error
	kind Kind
}

func (e *kindError) Unwrap() error { return e.error }

func withKind(k Kind, err error) error {
	return &kindError{error: err, kind: k}
}

func typeErrorf(format string, args ...any) error {
	return withKind(KindType, errors.Errorf(format, args...))
}

func nameErrorf(format string, args ...any) error {
	return withKind(KindName, errors.Errorf(format, args...))
}

func attributeErrorf(format string, args ...any) error {
	return withKind(KindAttribute, errors.Errorf(format, args...))
}

func indexErrorf(format string, args ...any) error {
	return withKind(KindIndex, errors.Errorf(format, args...))
}

func notImplemented(op string, operand any) error {
	return withKind(KindNotImplemented, errors.Errorf("%s is not implemented for operand of type %T", op, operand))
}

// KindOf returns the Kind of the supplied error, looking through any wrapping.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}

// IsTypeError returns true if the supplied error indicates a wrong type. A
// refused operand (see IsNotImplemented) is also a type error.
func IsTypeError(err error) bool {
	k := KindOf(err)
	return k == KindType || k == KindNotImplemented
}

// IsNameError returns true if the supplied error indicates a reserved name.
func IsNameError(err error) bool {
	return KindOf(err) == KindName
}

// IsAttributeError returns true if the supplied error indicates a missing
// field.
func IsAttributeError(err error) bool {
	return KindOf(err) == KindAttribute
}

// IsIndexError returns true if the supplied error indicates an out of range
// sequence index.
func IsIndexError(err error) bool {
	return KindOf(err) == KindIndex
}

// IsNotImplemented returns true if the supplied error indicates an operation
// refused its operand.
func IsNotImplemented(err error) bool {
	return KindOf(err) == KindNotImplemented
}
