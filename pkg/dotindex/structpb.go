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
	"google.golang.org/protobuf/types/known/structpb"
)

// FromStruct returns an Object holding the fields of the supplied protobuf
// Struct. Numbers become float64.
func FromStruct(s *structpb.Struct, opts ...Option) (*Object, error) {
	if s == nil {
		return nil, typeErrorf("source should be a protobuf Struct, not %T", s)
	}
	return New(s.AsMap(), opts...)
}

// AsStruct returns the plain form of the Object as a protobuf Struct.
func (o *Object) AsStruct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(o.Map())
	return s, errors.Wrapf(err, "cannot create new Struct from %T", o)
}
