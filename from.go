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

package errnorm

import (
	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/failure"
)

// From normalizes value into an Error.
//
// value may be a decoded JSON document (maps, slices, scalars), JSON text,
// plain text or a Go error. A nil o means build.DefaultOptions().
//
// The steps are:
//  1. text and Go errors are turned into objects (build.Normalize);
//  2. the pre-flight checks of o run (build.Check); a failing check returns
//     the fallback error with that single failure;
//  3. with PathToErrors configured, every element of the detected errors
//     array is summarized, otherwise the input itself;
//  4. the summaries are classified (Classify).
//
// From never panics and Result.Force is never nil. The fallback error and
// the primary error both carry value as Raw.
func From(value any, o *build.Options) Result {
	if o == nil {
		o = build.DefaultOptions()
	}
	log := o.DiagnosticLogger()
	fallback := Fallback().WithRaw(value)

	input := build.Normalize(value)
	if err := build.Check(input, o); err != nil {
		return Result{Force: fallback.WithFailures(Failures{{
			Code: failure.From(err, failure.GeneralCheckInputObjectForValuesError),
		}})}
	}

	var outcomes []build.Outcome
	if o.PathToErrors != nil {
		outcomes = build.BuildSummaries(input, o)
	} else {
		s, err := build.BuildSummary(input, "", false, o)
		outcomes = []build.Outcome{{Summary: s, Err: err}}
	}
	return classify(outcomes, value, fallback, log)
}

// Must is like From but returns Result.Force directly.
func Must(value any, o *build.Options) *Error {
	return From(value, o).Force
}
