/*
   Copyright 2025 The DIRPX Authors

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

// Package config loads build options from YAML documents.
//
// Keys mirror the option names:
//
//	pathToErrors: [errors, errs]
//	pathToCode: [code, error.code]
//	pathToDomain: null          # unset the default
//	transformCode: canonicalCode
//	checkInputObjectForKeys:
//	  error: {exists: true}
//	showErrorLogs: false
//
// Keys that are absent keep their default; an explicit null unsets it.
// Path lists are taken as written and validated when a build runs, so a
// malformed list surfaces as the matching pathTo* processing failure.
// Transforms are referenced by their name in a build.Registry.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/failure"
)

var (
	// ErrNotAMapping is returned when the document root is not a mapping.
	ErrNotAMapping = errors.New("config: document is not a mapping")
	// ErrUnknownKey is returned for keys that name no option.
	ErrUnknownKey = errors.New("config: unknown key")
)

const (
	keyPathToErrors  = "pathToErrors"
	keyShowErrorLogs = "showErrorLogs"
	keyCheckValues   = "checkInputObjectForValues"
	keyCheckTypes    = "checkInputObjectForTypes"
	keyCheckKeys     = "checkInputObjectForKeys"
)

// pathKeys and transformKeys map option keys to their field.
var (
	pathKeys = map[string]build.Field{
		"pathToCode":       build.FieldCode,
		"pathToNumberCode": build.FieldNumberCode,
		"pathToMessage":    build.FieldMessage,
		"pathToDetails":    build.FieldDetails,
		"pathToDomain":     build.FieldDomain,
	}
	transformKeys = map[string]build.Field{
		"transformCode":       build.FieldCode,
		"transformNumberCode": build.FieldNumberCode,
		"transformMessage":    build.FieldMessage,
		"transformDetails":    build.FieldDetails,
		"transformDomain":     build.FieldDomain,
	}
)

// LoadFile reads the YAML file at path. See Load.
func LoadFile(path string, reg *build.Registry) (*build.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	o, err := Load(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return o, nil
}

// Load decodes a YAML document over build.DefaultOptions(). An empty
// document yields the defaults. reg resolves transform names; nil means
// build.NewRegistry(). Unknown transform names produce a slot without a
// function, which builds report as transform*IsNotAFunction.
func Load(r io.Reader, reg *build.Registry) (*build.Options, error) {
	if reg == nil {
		reg = build.NewRegistry()
	}
	o := build.DefaultOptions()

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return o, nil
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return o, nil
		}
		root = root.Content[0]
	}
	if isNull(root) {
		return o, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotAMapping
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if err := apply(o, reg, key, val); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func apply(o *build.Options, reg *build.Registry, key string, val *yaml.Node) error {
	if f, ok := pathKeys[key]; ok {
		paths, err := decodeAny(val)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.SetPaths(f, paths)
		return nil
	}
	if f, ok := transformKeys[key]; ok {
		o.SetTransform(f, transform(reg, val))
		return nil
	}

	switch key {
	case keyPathToErrors:
		paths, err := decodeAny(val)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.PathToErrors = paths
	case keyShowErrorLogs:
		var b bool
		if err := val.Decode(&b); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.ShowErrorLogs = b
	case keyCheckValues:
		m, err := decodeChecks[build.ValueCheck](val, failure.CheckInputObjectForValuesIsNotAnObject)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.CheckInputObjectForValues = m
	case keyCheckTypes:
		m, err := decodeChecks[build.TypeCheck](val, failure.CheckInputObjectForTypesIsNotAnObject)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.CheckInputObjectForTypes = m
	case keyCheckKeys:
		m, err := decodeChecks[build.KeyCheck](val, failure.CheckInputObjectForKeysIsNotAnObject)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		o.CheckInputObjectForKeys = m
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

// transform resolves a transform slot. null clears the slot; anything but
// a name yields a slot the pipeline rejects.
func transform(reg *build.Registry, val *yaml.Node) *build.Transform {
	if isNull(val) {
		return nil
	}
	if val.Kind != yaml.ScalarNode {
		return &build.Transform{}
	}
	return reg.Resolve(val.Value)
}

// decodeChecks decodes a mapping of path to check. A node that is not a
// mapping fails with notAnObject.
func decodeChecks[T any](val *yaml.Node, notAnObject failure.Code) (map[string]T, error) {
	if isNull(val) {
		return nil, nil
	}
	if val.Kind != yaml.MappingNode {
		return nil, notAnObject
	}
	out := make(map[string]T, len(val.Content)/2)
	for i := 0; i+1 < len(val.Content); i += 2 {
		rule := val.Content[i+1]
		if rule.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("path %q: %w", val.Content[i].Value, notAnObject)
		}
		var c T
		if err := rule.Decode(&c); err != nil {
			return nil, fmt.Errorf("path %q: %w", val.Content[i].Value, err)
		}
		out[val.Content[i].Value] = c
	}
	return out, nil
}

func decodeAny(val *yaml.Node) (any, error) {
	if isNull(val) {
		return nil, nil
	}
	var v any
	if err := val.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
