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
	"fmt"
	"strings"

	"dirpx.dev/errnorm/apis"
	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/code"
)

// Defaults of the generic and fallback errors.
const (
	GenericCode    = string(code.Generic)
	GenericMessage = "Something went wrong"
	GenericTag     = "generic-error-object"
	FallbackTag    = "fallback-error-object"
)

// Error is a normalized error.
//
// It carries:
//   - Code and Message: always present;
//   - NumberCode, Details, Domain: optional fields found in the input;
//   - Tag: marks generic and fallback errors, or any caller-defined group;
//   - Summary: how the fields were derived from the input;
//   - Failures: candidates of the same input that were dropped;
//   - Next: secondary errors of the same input, in input order;
//   - Raw: the original input.
//
// All WithX helpers return a shallow copy, so Error values can be shared.
type Error struct {
	Code       string
	NumberCode *float64
	Message    string
	Details    string
	Domain     string
	Tag        string

	Summary  *build.Summary
	Failures Failures
	Next     []*Error
	Raw      any
}

var (
	_ apis.CodedError       = (*Error)(nil)
	_ apis.NumberCodedError = (*Error)(nil)
	_ apis.DetailedError    = (*Error)(nil)
	_ apis.DomainError      = (*Error)(nil)
	_ apis.ViewProvider     = (*Error)(nil)
)

// New returns an Error with the given code and message and applies opts in
// order.
//
//	errnorm.New("card_declined", "Your card was declined",
//	    errnorm.WithNumberCodeOption(402),
//	    errnorm.WithDomainOption("billing"),
//	)
func New(code, message string, opts ...Option) *Error {
	e := &Error{Code: code, Message: message}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Generic returns a new generic error: code "generic", a neutral message and
// the generic tag. Use it where some error is needed but nothing specific is
// known.
func Generic() *Error {
	return New(GenericCode, GenericMessage, WithTagOption(GenericTag))
}

// Fallback returns a new fallback error. It is what From returns in
// Result.Force when the input held no usable error.
func Fallback() *Error {
	return New(GenericCode, GenericMessage, WithTagOption(FallbackTag))
}

// Tagged returns a generic error with tag instead of the generic tag.
func Tagged(tag string) *Error {
	return Generic().WithTag(tag)
}

// Error implements the error interface.
//
// The format is "<code>: <message>", or "<code>:<domain>: <message>" when
// a domain is set.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Domain != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Domain, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// String returns a description meant for users: the message followed by the
// domain and code in brackets.
//
//	Card declined [billing/card_declined]
//
// The code is left out when the domain already contains it.
func (e *Error) String() string {
	if e == nil {
		return "<nil>"
	}
	c := e.Code
	if e.Domain != "" && strings.Contains(e.Domain, e.Code) {
		c = ""
	}
	var tail string
	switch {
	case e.Domain != "" && c != "":
		tail = "[" + e.Domain + "/" + c + "]"
	case e.Domain != "":
		tail = "[" + e.Domain + "]"
	case c != "":
		tail = "[" + c + "]"
	}
	if tail == "" {
		return e.Message
	}
	return e.Message + " " + tail
}

// Unwrap returns the secondary errors, so errors.Is and errors.As also look
// at them.
func (e *Error) Unwrap() []error {
	if e == nil || len(e.Next) == 0 {
		return nil
	}
	out := make([]error, 0, len(e.Next))
	for _, n := range e.Next {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Is reports whether target is an *Error with the same code. A target with a
// domain also requires the same domain.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Domain == "" || t.Domain == e.Domain
}

// IsGeneric reports whether e carries the generic tag.
func (e *Error) IsGeneric() bool { return e != nil && e.Tag == GenericTag }

// IsFallback reports whether e carries the fallback tag, i.e. whether it was
// produced because no usable error was found.
func (e *Error) IsFallback() bool { return e != nil && e.Tag == FallbackTag }

// HasTag reports whether e carries tag. With an empty tag it reports whether
// e carries any tag at all.
func (e *Error) HasTag(tag string) bool {
	if e == nil {
		return false
	}
	if tag == "" {
		return e.Tag != ""
	}
	return e.Tag == tag
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return e.Code }

// ErrorNumberCode implements apis.NumberCodedError.
func (e *Error) ErrorNumberCode() (float64, bool) {
	if e.NumberCode == nil {
		return 0, false
	}
	return *e.NumberCode, true
}

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() string { return e.Details }

// ErrorDomain implements apis.DomainError.
func (e *Error) ErrorDomain() string { return e.Domain }

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Domain:   e.Domain,
		Tag:      e.Tag,
		Failures: e.Failures.Strings(),
	}
	if e.NumberCode != nil {
		n := *e.NumberCode
		v.NumberCode = &n
	}
	for _, n := range e.Next {
		if n != nil {
			v.Next = append(v.Next, n.ErrorView())
		}
	}
	return v
}

// Clone returns a shallow copy of e.
func (e *Error) Clone() *Error {
	cp := *e
	return &cp
}

// WithCode returns a copy of e with the code replaced.
func (e *Error) WithCode(c string) *Error {
	cp := *e
	cp.Code = c
	return &cp
}

// WithMessage returns a copy of e with the message replaced.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithNumberCode returns a copy of e with the numeric code set.
func (e *Error) WithNumberCode(n float64) *Error {
	cp := *e
	cp.NumberCode = &n
	return &cp
}

// WithDetails returns a copy of e with the details replaced.
func (e *Error) WithDetails(details string) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// WithDomain returns a copy of e with the domain replaced.
func (e *Error) WithDomain(domain string) *Error {
	cp := *e
	cp.Domain = domain
	return &cp
}

// WithTag returns a copy of e with the tag replaced.
func (e *Error) WithTag(tag string) *Error {
	cp := *e
	cp.Tag = tag
	return &cp
}

// WithSummary returns a copy of e with the summary attached.
func (e *Error) WithSummary(s *build.Summary) *Error {
	cp := *e
	cp.Summary = s
	return &cp
}

// WithFailures returns a copy of e with the processing failures replaced.
// The slice is copied.
func (e *Error) WithFailures(f Failures) *Error {
	cp := *e
	cp.Failures = append(Failures(nil), f...)
	return &cp
}

// WithNext returns a copy of e with the secondary errors replaced. An empty
// list clears them.
func (e *Error) WithNext(next ...*Error) *Error {
	cp := *e
	if len(next) == 0 {
		cp.Next = nil
		return &cp
	}
	cp.Next = append([]*Error(nil), next...)
	return &cp
}

// WithRaw returns a copy of e with the raw input attached.
func (e *Error) WithRaw(raw any) *Error {
	cp := *e
	cp.Raw = raw
	return &cp
}
