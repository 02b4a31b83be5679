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

package build

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"dirpx.dev/errnorm/failure"
	"dirpx.dev/errnorm/lookup"
)

// ValueCheck asserts that the value at a path equals Value (Exists=true) or
// differs from it (Exists=false). Only scalars compare equal.
type ValueCheck struct {
	Value  any  `yaml:"value"`
	Exists bool `yaml:"exists"`
}

// TypeCheck asserts the type of the value at a path. Type is one of
// "string", "number", "boolean", "object" or "undefined". With ValueIsArray
// the value must (or must not) also be an array.
type TypeCheck struct {
	Type         string `yaml:"type"`
	ValueIsArray bool   `yaml:"valueIsArray"`
	Exists       bool   `yaml:"exists"`
}

// KeyCheck asserts that the value at a path is present and truthy
// (Exists=true) or absent/falsy (Exists=false).
type KeyCheck struct {
	Exists bool `yaml:"exists"`
}

// Check evaluates the pre-flight assertions of o against input.
//
// It fails with checkIsNullish or checkIsNotAnObject on unusable input, then
// runs value, type and key checks, in that order and by sorted path within
// each group. The first failing assertion decides the returned code. A nil
// o means DefaultOptions().
func Check(input any, o *Options) (err error) {
	if o == nil {
		o = DefaultOptions()
	}
	defer func() {
		if r := recover(); r != nil {
			o.DiagnosticLogger().Error("check input object panicked", zap.Any("panic", r))
			err = failure.GeneralCheckInputObjectForValuesError
		}
	}()

	if input == nil {
		return failure.CheckIsNullish
	}
	if !isObject(input) {
		return failure.CheckIsNotAnObject
	}

	for _, path := range sortedKeys(o.CheckInputObjectForValues) {
		rule := o.CheckInputObjectForValues[path]
		eq := strictEqual(lookup.Resolve(input, path), rule.Value)
		if rule.Exists != eq {
			return failed(o, failure.CheckInputObjectForValuesFailed, path)
		}
	}

	for _, path := range sortedKeys(o.CheckInputObjectForTypes) {
		rule := o.CheckInputObjectForTypes[path]
		found := lookup.Resolve(input, path)
		if rule.ValueIsArray {
			_, isArr := asArray(found)
			if rule.Exists != isArr {
				return failed(o, failure.CheckInputObjectForTypesValueIsArrayFailed, path)
			}
		}
		if rule.Exists != (typeOf(found) == rule.Type) {
			return failed(o, failure.CheckInputObjectForTypesFailed, path)
		}
	}

	for _, path := range sortedKeys(o.CheckInputObjectForKeys) {
		rule := o.CheckInputObjectForKeys[path]
		if rule.Exists != truthy(lookup.Resolve(input, path)) {
			return failed(o, failure.CheckInputObjectForKeysFailed, path)
		}
	}
	return nil
}

func failed(o *Options, c failure.Code, path string) error {
	o.DiagnosticLogger().Debug("input object check failed",
		zap.Stringer("failure", c),
		zap.String("path", path),
	)
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the check for diagnostics.
func (c ValueCheck) String() string {
	return fmt.Sprintf("value=%v exists=%t", c.Value, c.Exists)
}
