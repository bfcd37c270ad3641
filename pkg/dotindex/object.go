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
	"os"

	"github.com/pkg/errors"

	"github.com/n3wscott/dotindex/pkg/logging"
)

// ReservedPrefix marks names that cannot be used as fields.
const ReservedPrefix = "__"

const errConvertField = "cannot convert field %q"

// Settings of an Object. They are fixed when the Object is created.
type Settings struct {
	// Recursive converts nested mappings, including mappings found at any
	// depth inside sequences, into Objects.
	Recursive bool `json:"recursive"`

	// VerboseLogs emits diagnostic messages while converting.
	VerboseLogs bool `json:"verboseLogs"`

	// IgnoreErrors skips illegal keys, and tolerates a source that is not a
	// mapping, instead of failing.
	IgnoreErrors bool `json:"ignoreErrors"`
}

// DefaultSettings returns the Settings used when no Option overrides them.
func DefaultSettings() Settings {
	return Settings{Recursive: true}
}

// An Option configures an Object.
type Option func(o *Object)

// WithRecursive sets whether nested mappings are converted.
func WithRecursive(r bool) Option {
	return func(o *Object) {
		o.settings.Recursive = r
	}
}

// WithVerboseLogs sets whether diagnostic messages are logged.
func WithVerboseLogs(v bool) Option {
	return func(o *Object) {
		o.settings.VerboseLogs = v
	}
}

// WithIgnoreErrors sets whether illegal keys are skipped rather than
// reported.
func WithIgnoreErrors(i bool) Option {
	return func(o *Object) {
		o.settings.IgnoreErrors = i
	}
}

// WithSettings replaces all settings at once.
func WithSettings(s Settings) Option {
	return func(o *Object) {
		o.settings = s
	}
}

// WithLogger sets the logger used when VerboseLogs is enabled. Diagnostics are
// written to standard output by default.
func WithLogger(l logging.Logger) Option {
	return func(o *Object) {
		o.logger = l
	}
}

// An Object is a mapping whose keys are addressable as named fields. Nested
// mappings are themselves Objects when the Object is recursive.
//
// Field names are always iterated in lexicographic order; the order of the
// source mapping is not preserved. An Object is not safe for concurrent use.
type Object struct {
	fields   map[string]any
	settings Settings
	logger   logging.Logger
}

// New returns an Object holding the fields of the supplied mapping. The source
// may be an *Object, a map[string]any, or any other Go map. Keys must be
// strings that do not start with ReservedPrefix.
func New(src any, opts ...Option) (*Object, error) {
	o := &Object{
		fields:   make(map[string]any),
		settings: DefaultSettings(),
	}
	for _, fn := range opts {
		fn(o)
	}

	log := o.log()
	log.Debug("Creating object",
		"recursive", o.settings.Recursive,
		"verboseLogs", o.settings.VerboseLogs,
		"ignoreErrors", o.settings.IgnoreErrors,
	)

	m, ok := asMapping(src)
	if !ok {
		err := typeErrorf("source should be a mapping, not %T", src)
		if !o.settings.IgnoreErrors {
			return nil, err
		}
		log.Info("Ignoring source", "error", err)
		return o, nil
	}

	for _, key := range m.keys() {
		name, ok := keyName(key)
		if !ok {
			err := typeErrorf("source key %v should be type string, not %T", key, key)
			if !o.settings.IgnoreErrors {
				return nil, err
			}
			log.Info("Skipping key", "error", err)
			continue
		}

		if reserved(name) {
			err := nameErrorf("field %q cannot be created as it starts with %q", name, ReservedPrefix)
			if !o.settings.IgnoreErrors {
				return nil, err
			}
			log.Info("Skipping key", "error", err)
			continue
		}

		v, _ := m.lookup(key)
		cv, err := o.convert(name, v)
		if err != nil {
			return nil, errors.Wrapf(err, errConvertField, name)
		}
		o.fields[name] = cv
	}

	return o, nil
}

// Settings returns the settings the Object was created with.
func (o *Object) Settings() Settings {
	return o.settings
}

// log returns the logger diagnostics should be written to. Nothing is logged
// unless VerboseLogs is enabled.
func (o *Object) log() logging.Logger {
	if !o.settings.VerboseLogs {
		return logging.NewNopLogger()
	}
	if o.logger == nil {
		o.logger = logging.NewConsoleLogger(os.Stdout)
	}
	return o.logger
}

// options returns the Options that recreate this Object's configuration.
func (o *Object) options() []Option {
	return []Option{WithSettings(o.settings), WithLogger(o.logger)}
}

// child creates the Object for a mapping nested under the named field. It
// inherits VerboseLogs, IgnoreErrors and the logger, and is always recursive.
func (o *Object) child(name string, src any) (*Object, error) {
	opts := []Option{
		WithSettings(Settings{
			Recursive:    true,
			VerboseLogs:  o.settings.VerboseLogs,
			IgnoreErrors: o.settings.IgnoreErrors,
		}),
	}
	if o.settings.VerboseLogs {
		opts = append(opts, WithLogger(o.log().WithValues("field", name)))
	}
	return New(src, opts...)
}

// convert applies the recursive conversion rule to a value about to be bound
// to the named field. Values are returned unchanged when the Object is not
// recursive.
func (o *Object) convert(name string, v any) (any, error) {
	if !o.settings.Recursive {
		return v, nil
	}
	if isSequence(v) {
		return o.convertSequence(name, v)
	}
	if _, ok := asMapping(v); ok {
		return o.child(name, v)
	}
	return v, nil
}

// convertSequence returns a fresh sequence in which every mapping, at any
// depth, is replaced by an Object. Nested sequences are walked but never
// become Objects themselves.
func (o *Object) convertSequence(name string, v any) ([]any, error) {
	in := elements(v)
	out := make([]any, len(in))
	for i, e := range in {
		switch {
		case isSequence(e):
			s, err := o.convertSequence(name, e)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot convert element %d", i)
			}
			out[i] = s
		default:
			if _, ok := asMapping(e); !ok {
				out[i] = e
				continue
			}
			c, err := o.child(name, e)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot convert element %d", i)
			}
			out[i] = c
		}
	}
	return out, nil
}
