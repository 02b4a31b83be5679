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
	"go.uber.org/zap"
)

// Field names one of the five normalized fields.
type Field int

const (
	FieldCode Field = iota
	FieldNumberCode
	FieldMessage
	FieldDetails
	FieldDomain

	fieldCount = iota
)

var fieldNames = [fieldCount]string{"code", "numberCode", "message", "details", "domain"}

// String returns the field name as used in option keys and summaries.
func (f Field) String() string {
	if f < 0 || int(f) >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// AllFields returns the fields in processing order.
func AllFields() []Field {
	return []Field{FieldCode, FieldNumberCode, FieldMessage, FieldDetails, FieldDomain}
}

// Values holds one value per field. Transforms receive the raw (pre-transform)
// values of all fields through it.
type Values struct {
	Code       any
	NumberCode any
	Message    any
	Details    any
	Domain     any
}

// Get returns the value of f.
func (v Values) Get(f Field) any {
	switch f {
	case FieldCode:
		return v.Code
	case FieldNumberCode:
		return v.NumberCode
	case FieldMessage:
		return v.Message
	case FieldDetails:
		return v.Details
	case FieldDomain:
		return v.Domain
	}
	return nil
}

func (v *Values) set(f Field, x any) {
	switch f {
	case FieldCode:
		v.Code = x
	case FieldNumberCode:
		v.NumberCode = x
	case FieldMessage:
		v.Message = x
	case FieldDetails:
		v.Details = x
	case FieldDomain:
		v.Domain = x
	}
}

// TransformFunc computes the final value of one field.
//
// current is the raw value of the field being transformed, raw holds the raw
// values of all fields and input is the (decoded) candidate object. The
// result must be a string or nil for code, message, details and domain, and a
// non-NaN number or nil for numberCode.
type TransformFunc func(current any, raw Values, input any) any

// Transform is an optional per-field transform slot.
//
// A nil *Transform means "no transform". A non-nil Transform with a nil Func
// is declared but not callable (typically a name that did not resolve in a
// Registry) and fails the summary with the field's IsNotAFunction code.
type Transform struct {
	// Name is informational; it is set when the transform came from a Registry.
	Name string
	Func TransformFunc
}

// Func wraps fn into a Transform slot.
func Func(fn TransformFunc) *Transform { return &Transform{Func: fn} }

// Options configures extraction and transformation.
//
// Path lists are typed any because they usually come from configuration
// files; a well-formed list is a []string or a []any of strings, and nil means
// "not configured". Anything else fails with the matching pathTo* code.
//
// Options must not be modified while a build that uses them is running.
type Options struct {
	// PathToErrors lists candidate paths of an errors array, in priority order.
	PathToErrors any

	PathToCode       any
	PathToNumberCode any
	PathToMessage    any
	PathToDetails    any
	PathToDomain     any

	TransformCode       *Transform
	TransformNumberCode *Transform
	TransformMessage    *Transform
	TransformDetails    *Transform
	TransformDomain     *Transform

	// Pre-flight assertions evaluated by Check. Keys are candidate paths.
	CheckInputObjectForValues map[string]ValueCheck
	CheckInputObjectForTypes  map[string]TypeCheck
	CheckInputObjectForKeys   map[string]KeyCheck

	// Logger receives diagnostics when ShowErrorLogs is set. nil discards.
	Logger        *zap.Logger
	ShowErrorLogs bool
}

// Paths returns the configured candidate path list of f.
func (o *Options) Paths(f Field) any {
	switch f {
	case FieldCode:
		return o.PathToCode
	case FieldNumberCode:
		return o.PathToNumberCode
	case FieldMessage:
		return o.PathToMessage
	case FieldDetails:
		return o.PathToDetails
	case FieldDomain:
		return o.PathToDomain
	}
	return nil
}

// TransformFor returns the transform slot of f.
func (o *Options) TransformFor(f Field) *Transform {
	switch f {
	case FieldCode:
		return o.TransformCode
	case FieldNumberCode:
		return o.TransformNumberCode
	case FieldMessage:
		return o.TransformMessage
	case FieldDetails:
		return o.TransformDetails
	case FieldDomain:
		return o.TransformDomain
	}
	return nil
}

// SetTransform assigns the transform slot of f.
func (o *Options) SetTransform(f Field, t *Transform) {
	switch f {
	case FieldCode:
		o.TransformCode = t
	case FieldNumberCode:
		o.TransformNumberCode = t
	case FieldMessage:
		o.TransformMessage = t
	case FieldDetails:
		o.TransformDetails = t
	case FieldDomain:
		o.TransformDomain = t
	}
}

// SetPaths assigns the candidate path list of f.
func (o *Options) SetPaths(f Field, paths any) {
	switch f {
	case FieldCode:
		o.PathToCode = paths
	case FieldNumberCode:
		o.PathToNumberCode = paths
	case FieldMessage:
		o.PathToMessage = paths
	case FieldDetails:
		o.PathToDetails = paths
	case FieldDomain:
		o.PathToDomain = paths
	}
}

// DiagnosticLogger returns the logger diagnostics go to. It never returns nil.
func (o *Options) DiagnosticLogger() *zap.Logger {
	if o == nil || !o.ShowErrorLogs || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ErrorPrefix is the nested object most APIs wrap their error fields in.
const ErrorPrefix = "error"

// AddPrefixVariants returns paths followed by every path re-rooted under each
// prefix, in prefix order:
//
//	AddPrefixVariants([]string{"code"}, "error") // [code error.code]
func AddPrefixVariants(paths []string, prefixes ...string) []string {
	out := make([]string, 0, len(paths)*(len(prefixes)+1))
	out = append(out, paths...)
	for _, p := range prefixes {
		for _, s := range paths {
			out = append(out, p+"."+s)
		}
	}
	return out
}

// DefaultOptions returns a fresh copy of the built-in options.
//
// Every field has snake_case, camelCase and err_-prefixed candidates, each
// also under "error.". The code transform derives the code from the numeric
// code when no string code is present.
func DefaultOptions() *Options {
	return &Options{
		PathToErrors: []string{"errors", "errs"},
		PathToCode: AddPrefixVariants([]string{
			"code", "err_code", "errorCode", "error_code",
		}, ErrorPrefix),
		PathToNumberCode: AddPrefixVariants([]string{
			"numberCode", "err_number_code", "errorNumberCode", "error_number_code",
		}, ErrorPrefix),
		PathToMessage: AddPrefixVariants([]string{
			"message", "err_message", "errorMessage", "error_message",
		}, ErrorPrefix),
		PathToDetails: AddPrefixVariants([]string{
			"details", "err_details", "errorDetails", "error_details",
		}, ErrorPrefix),
		PathToDomain: AddPrefixVariants([]string{
			"domain", "errorDomain", "error_domain", "err_domain", "type",
		}, ErrorPrefix),
		TransformCode: &Transform{Name: TransformNumberCodeFallback, Func: NumberCodeFallback},
		ShowErrorLogs: true,
	}
}
