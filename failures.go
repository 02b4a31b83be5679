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
	"strings"

	"github.com/hashicorp/go-multierror"

	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/failure"
)

// ProcessingFailure explains why one candidate of an input did not become
// an Error. Summary is set when the candidate got as far as a summary.
type ProcessingFailure struct {
	Code    failure.Code   `json:"errorCode"`
	Summary *build.Summary `json:"summary,omitempty"`
}

// Error implements the error interface.
func (p ProcessingFailure) Error() string { return string(p.Code) }

// Unwrap returns the failure code, so errors.Is(p, failure.X) works.
func (p ProcessingFailure) Unwrap() error { return p.Code }

// Failures is the list of processing failures of one input, in input order.
type Failures []ProcessingFailure

// Codes returns the failure codes.
func (f Failures) Codes() []failure.Code {
	if len(f) == 0 {
		return nil
	}
	out := make([]failure.Code, len(f))
	for i, p := range f {
		out[i] = p.Code
	}
	return out
}

// Strings returns the failure codes as strings.
func (f Failures) Strings() []string {
	if len(f) == 0 {
		return nil
	}
	out := make([]string, len(f))
	for i, p := range f {
		out[i] = string(p.Code)
	}
	return out
}

// Has reports whether c is among the failures.
func (f Failures) Has(c failure.Code) bool {
	for _, p := range f {
		if p.Code == c {
			return true
		}
	}
	return false
}

// Err aggregates the failures into one error, or returns nil when there are
// none. The result matches every code it holds with errors.Is.
func (f Failures) Err() error {
	var result *multierror.Error
	for _, p := range f {
		result = multierror.Append(result, p)
	}
	if result != nil {
		result.ErrorFormat = formatFailures
	}
	return result.ErrorOrNil()
}

func formatFailures(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return "errnorm: processing failures: " + strings.Join(parts, ", ")
}
