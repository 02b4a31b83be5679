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
	"dirpx.dev/errnorm/lookup"
)

// Outcome is one slot of a batch: either a Summary or the failure that
// prevented building it.
type Outcome struct {
	Summary *Summary
	Err     error
}

// Failed reports whether the slot holds a failure.
func (o Outcome) Failed() bool { return o.Err != nil }

func fail(c failure.Code) []Outcome { return []Outcome{{Err: c}} }

// BuildSummaries builds one Outcome per error-like object found in input.
//
// When PathToErrors is configured, its candidates are resolved in order
// against input and the first one that resolves to an array is used: each
// element is summarized on its own, with paths relative to the element. An
// input that is itself an array is used as the errors array when no
// candidate matched. Otherwise (or when the array is empty) input itself is
// the only candidate. The result preserves element order and is never empty.
func BuildSummaries(input any, o *Options) (out []Outcome) {
	if o == nil {
		o = DefaultOptions()
	}
	log := o.DiagnosticLogger()
	defer func() {
		if r := recover(); r != nil {
			log.Error("build summaries panicked", zap.Any("panic", r))
			out = fail(failure.GeneralBuildSummariesFromObjectError)
		}
	}()

	if input == nil {
		return fail(failure.IsNullish)
	}
	if !isObject(input) {
		return fail(failure.IsNotAnObject)
	}

	var (
		elems      []any
		errorsPath string
		detected   bool
	)
	if o.PathToErrors != nil {
		paths, shape := stringList(o.PathToErrors)
		switch shape {
		case shapeNotArray:
			return fail(failure.PathToErrorsIsNotAnArray)
		case shapeNotStrings:
			return fail(failure.PathToErrorsValuesAreNotStrings)
		}
		for _, p := range paths {
			arr, ok := asArray(lookup.Resolve(input, p))
			if !ok {
				continue
			}
			if len(arr) > 0 {
				elems, errorsPath, detected = arr, p, true
			}
			break
		}
	}
	if !detected && o.PathToErrors != nil {
		if arr, ok := asArray(input); ok && len(arr) > 0 {
			elems, detected = arr, true
		}
	}
	if !detected {
		elems = []any{input}
	}

	out = make([]Outcome, 0, len(elems))
	for _, e := range elems {
		s, err := BuildSummary(e, errorsPath, detected, o)
		out = append(out, Outcome{Summary: s, Err: err})
	}
	return out
}
