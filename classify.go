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
	"go.uber.org/zap"

	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/failure"
)

// Result is the outcome of classifying the summaries of one input.
type Result struct {
	// Error is the primary error, nil when no candidate was valid.
	Error *Error
	// Force is Error when set, otherwise the fallback error. Never nil.
	Force *Error
}

// Classify reduces the outcomes of one input to a Result.
//
// Failed outcomes and invalid summaries become processing failures. Every
// valid summary becomes an Error carrying all processing failures of the
// batch; the first one is the primary error, the others are chained off it
// in order, and raw is attached to it. When nothing is valid, Force is
// fallback annotated with the failures (or unchanged when there are none).
// A nil fallback means Fallback().WithRaw(raw).
func Classify(outcomes []build.Outcome, raw any, fallback *Error) Result {
	return classify(outcomes, raw, fallback, zap.NewNop())
}

func classify(outcomes []build.Outcome, raw any, fallback *Error, log *zap.Logger) (res Result) {
	if fallback == nil {
		fallback = Fallback().WithRaw(raw)
	}

	var failures Failures
	defer func() {
		if r := recover(); r != nil {
			log.Error("classify panicked", zap.Any("panic", r))
			res = fallbackResult(fallback, failures)
		}
	}()

	valid := make([]*build.Summary, 0, len(outcomes))
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			failures = append(failures, ProcessingFailure{
				Code:    failure.From(o.Err, failure.InvalidSummary),
				Summary: o.Summary,
			})
		case o.Summary == nil:
			failures = append(failures, ProcessingFailure{Code: failure.InvalidSummary})
		case !o.Summary.Valid():
			failures = append(failures, ProcessingFailure{
				Code:    failure.UnknownCodeOrMessage,
				Summary: o.Summary,
			})
		default:
			valid = append(valid, o.Summary)
		}
	}
	for _, p := range failures {
		log.Debug("candidate dropped", zap.String("failure", string(p.Code)))
	}

	if len(valid) == 0 {
		return fallbackResult(fallback, failures)
	}

	errs := make([]*Error, len(valid))
	for i, s := range valid {
		errs[i] = fromSummary(s, failures)
	}
	primary := errs[0].WithNext(errs[1:]...).WithRaw(raw)
	return Result{Error: primary, Force: primary}
}

func fallbackResult(fallback *Error, failures Failures) Result {
	if len(failures) == 0 {
		return Result{Force: fallback}
	}
	return Result{Force: fallback.WithFailures(failures)}
}

// fromSummary builds the Error of a valid summary. Optional fields of the
// wrong type are left out.
func fromSummary(s *build.Summary, failures Failures) *Error {
	c, _ := s.Final(build.FieldCode).(string)
	m, _ := s.Final(build.FieldMessage).(string)
	e := New(c, m, WithSummaryOption(s), WithFailuresOption(failures))
	if n, ok := build.Number(s.Final(build.FieldNumberCode)); ok {
		e.NumberCode = &n
	}
	if d, ok := s.Final(build.FieldDetails).(string); ok {
		e.Details = d
	}
	if d, ok := s.Final(build.FieldDomain).(string); ok {
		e.Domain = d
	}
	return e
}
