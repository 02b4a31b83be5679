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

	"dirpx.dev/errnorm/failure"
)

// ErrorsArrayNotice is attached to summaries built from elements of a
// detected errors array.
const ErrorsArrayNotice = "To support inputs holding either a single error or an array of errors," +
	" all paths are treated as absolute (from the input root), but once an array of errors" +
	" is detected, every element of it becomes the new root input object. You can either" +
	" leave the \"pathToErrors\" option empty and map only the first error (highly not" +
	" recommended), or adjust the paths to be relative to the objects inside the detected" +
	" errors array."

// Record is the provenance of one field: where it was found, what was found
// there and what it became after the transform. Any of the three may be
// absent independently, e.g. a transform can supply a value no path matched.
type Record struct {
	Path  string `json:"path,omitempty"`
	Raw   any    `json:"beforeTransform,omitempty"`
	Value any    `json:"value,omitempty"`
}

// Records holds the per-field records of a Summary. Fields that produced
// nothing at all are nil.
type Records struct {
	Code       *Record `json:"code,omitempty"`
	NumberCode *Record `json:"numberCode,omitempty"`
	Message    *Record `json:"message,omitempty"`
	Details    *Record `json:"details,omitempty"`
	Domain     *Record `json:"domain,omitempty"`
}

// Get returns the record of f.
func (r Records) Get(f Field) *Record {
	switch f {
	case FieldCode:
		return r.Code
	case FieldNumberCode:
		return r.NumberCode
	case FieldMessage:
		return r.Message
	case FieldDetails:
		return r.Details
	case FieldDomain:
		return r.Domain
	}
	return nil
}

func (r *Records) set(f Field, rec *Record) {
	switch f {
	case FieldCode:
		r.Code = rec
	case FieldNumberCode:
		r.NumberCode = rec
	case FieldMessage:
		r.Message = rec
	case FieldDetails:
		r.Details = rec
	case FieldDomain:
		r.Domain = rec
	}
}

// Summary describes one error-like object and how its fields were derived.
type Summary struct {
	// DidDetectErrorsArray is set when the object is an element of an errors
	// array found through PathToErrors.
	DidDetectErrorsArray bool `json:"didDetectErrorsArray,omitempty"`
	// ErrorsArrayNotice explains path semantics inside errors arrays.
	ErrorsArrayNotice string `json:"errorsArrayNotice,omitempty"`
	// Input is the object the paths were resolved against (decoded, when the
	// candidate was text).
	Input any `json:"input"`
	// Path is the errors-array path the object was reached through.
	Path string `json:"path,omitempty"`
	// Value holds the per-field records.
	Value Records `json:"value"`
}

// Final returns the final (post-transform) value of f, or nil.
func (s *Summary) Final(f Field) any {
	if s == nil {
		return nil
	}
	if r := s.Value.Get(f); r != nil {
		return r.Value
	}
	return nil
}

// Valid reports whether the final code and message are non-empty strings.
func (s *Summary) Valid() bool {
	c, _ := s.Final(FieldCode).(string)
	m, _ := s.Final(FieldMessage).(string)
	return c != "" && m != ""
}

// BuildSummary builds the Summary of a single candidate.
//
// errorsPath and fromArray describe how the candidate was reached; they are
// copied into the Summary. Strings and Go errors are turned into objects
// first (see Normalize), so text candidates are always recoverable. Nil
// candidates and other non-objects fail; extraction and transform failures
// are passed through unchanged.
func BuildSummary(candidate any, errorsPath string, fromArray bool, o *Options) (s *Summary, err error) {
	if o == nil {
		o = DefaultOptions()
	}
	log := o.DiagnosticLogger()
	defer func() {
		if r := recover(); r != nil {
			log.Error("build summary panicked", zap.Any("panic", r))
			s, err = nil, failure.GeneralBuildSummaryFromObjectError
		}
	}()

	if candidate == nil {
		return nil, failure.BuildSummaryIsNullish
	}
	obj := Normalize(candidate)
	if !isObject(obj) {
		return nil, failure.BuildSummaryIsNotAnObject
	}

	ex, err := Extract(obj, o)
	if err != nil {
		log.Debug("extract failed", zap.Error(err))
		return nil, err
	}
	raw := ex.Raw()
	final, err := ApplyTransforms(raw, obj, o)
	if err != nil {
		log.Debug("transform failed", zap.Error(err))
		return nil, err
	}

	s = &Summary{Input: obj, Path: errorsPath}
	if fromArray {
		s.DidDetectErrorsArray = true
		s.ErrorsArrayNotice = ErrorsArrayNotice
	}
	for _, f := range AllFields() {
		path, before, after := ex.Hit(f).Path, raw.Get(f), final.Get(f)
		if path == "" && before == nil && after == nil {
			continue
		}
		s.Value.set(f, &Record{Path: path, Raw: before, Value: after})
	}
	return s, nil
}
