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

import "dirpx.dev/errnorm/build"

// Option is a functional option for constructing an Error with New.
type Option func(*Error) *Error

// WithNumberCodeOption sets the numeric code.
func WithNumberCodeOption(n float64) Option {
	return func(e *Error) *Error { return e.WithNumberCode(n) }
}

// WithDetailsOption sets the details.
func WithDetailsOption(details string) Option {
	return func(e *Error) *Error { return e.WithDetails(details) }
}

// WithDomainOption sets the domain.
func WithDomainOption(domain string) Option {
	return func(e *Error) *Error { return e.WithDomain(domain) }
}

// WithTagOption sets the tag.
func WithTagOption(tag string) Option {
	return func(e *Error) *Error { return e.WithTag(tag) }
}

// WithNextOption sets the secondary errors.
func WithNextOption(next ...*Error) Option {
	return func(e *Error) *Error { return e.WithNext(next...) }
}

// WithRawOption attaches the raw input.
func WithRawOption(raw any) Option {
	return func(e *Error) *Error { return e.WithRaw(raw) }
}

// WithFailuresOption sets the processing failures.
func WithFailuresOption(f Failures) Option {
	return func(e *Error) *Error { return e.WithFailures(f) }
}

// WithSummaryOption attaches the summary the error was built from.
func WithSummaryOption(s *build.Summary) Option {
	return func(e *Error) *Error { return e.WithSummary(s) }
}
