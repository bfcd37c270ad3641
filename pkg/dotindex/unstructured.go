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
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// An UnstructuredContent is backed by unstructured data. Any type that is or
// embeds *unstructured.Unstructured has this method.
type UnstructuredContent interface {
	UnstructuredContent() map[string]any
}

// FromUnstructured returns an Object holding the content of the supplied
// unstructured Kubernetes object.
func FromUnstructured(u UnstructuredContent, opts ...Option) (*Object, error) {
	if u == nil {
		return nil, typeErrorf("source should be unstructured content, not %T", u)
	}
	return New(u.UnstructuredContent(), opts...)
}

// FromTyped returns an Object holding the fields of the supplied typed
// Kubernetes object, e.g. a *corev1.ConfigMap, as they would be serialised to
// JSON. Unstructured objects are used as is.
func FromTyped(obj any, opts ...Option) (*Object, error) {
	if u, ok := obj.(UnstructuredContent); ok {
		return FromUnstructured(u, opts...)
	}
	m, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %T to unstructured content", obj)
	}
	return New(m, opts...)
}

// ToUnstructured returns the plain form of the Object as an unstructured
// Kubernetes object.
func (o *Object) ToUnstructured() *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: o.Map()}
}
