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

// Package main implements dotindex, which wraps key=value arguments into an
// Object and prints it, or one of its fields.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/yaml"

	"github.com/n3wscott/dotindex/pkg/dotindex"
	"github.com/n3wscott/dotindex/pkg/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func main() {
	if err := run(afero.NewOsFs(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fs afero.Fs, stdout, stderr io.Writer, args []string) error {
	var (
		recursive    bool
		verbose      bool
		ignoreErrors bool
		get          string
		output       string
		out          string
	)

	flags := pflag.NewFlagSet("dotindex", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&recursive, "recursive", true, "Convert nested mappings, including those inside lists")
	flags.BoolVar(&verbose, "verbose", false, "Log skipped keys and settings")
	flags.BoolVar(&ignoreErrors, "ignore-errors", false, "Skip illegal keys instead of failing")
	flags.StringVar(&get, "get", "", "Print only the value at this dotted path, e.g. spec.items[0].name")
	flags.StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	flags.StringVar(&out, "out", "", "Write output to this file instead of standard output")

	if err := flags.Parse(args); err != nil {
		return errors.Wrap(err, "cannot parse flags")
	}

	values, err := parseValues(flags.Args())
	if err != nil {
		return err
	}

	opts := []dotindex.Option{
		dotindex.WithRecursive(recursive),
		dotindex.WithVerboseLogs(verbose),
		dotindex.WithIgnoreErrors(ignoreErrors),
	}
	if verbose {
		log := zap.New(zap.UseDevMode(true), zap.WriteTo(stderr)).WithName("dotindex")
		opts = append(opts, dotindex.WithLogger(logging.NewLogrLogger(log)))
	}

	o, err := dotindex.New(values, opts...)
	if err != nil {
		return errors.Wrap(err, "cannot create object")
	}

	var result any = o
	if get != "" {
		if result, err = o.Lookup(get); err != nil {
			return errors.Wrapf(err, "cannot get %q", get)
		}
	}

	b, err := format(result, output)
	if err != nil {
		return err
	}

	if out != "" {
		return errors.Wrapf(afero.WriteFile(fs, out, b, 0o644), "cannot write %s", out)
	}
	_, err = stdout.Write(b)
	return errors.Wrap(err, "cannot write output")
}

// parseValues builds a mapping from key=value arguments. Dotted keys create
// nested mappings, and values are decoded as YAML so that numbers, booleans,
// lists and maps keep their type.
func parseValues(args []string) (map[string]any, error) {
	values := map[string]any{}
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("argument %q should be of the form key=value", arg)
		}

		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}

		if err := mergo.Merge(&values, nest(strings.Split(key, "."), v), mergo.WithOverride); err != nil {
			return nil, errors.Wrapf(err, "cannot merge argument %q", arg)
		}
	}
	return values, nil
}

func nest(path []string, v any) map[string]any {
	m := map[string]any{path[len(path)-1]: v}
	for i := len(path) - 2; i >= 0; i-- {
		m = map[string]any{path[i]: m}
	}
	return m
}

func format(v any, output string) ([]byte, error) {
	switch output {
	case outputText:
		return []byte(fmt.Sprintln(v)), nil
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "cannot marshal JSON")
		}
		return append(b, '\n'), nil
	case outputYAML:
		b, err := yaml.Marshal(v)
		return b, errors.Wrap(err, "cannot marshal YAML")
	default:
		return nil, errors.Errorf("unknown output format %q", output)
	}
}
