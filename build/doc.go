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

// Package build turns arbitrary error-like values into Summaries.
//
// A Summary records, for each of the five normalized fields (code,
// numberCode, message, details, domain), which candidate path matched, the
// raw value found there and the final value after the optional per-field
// transform. Summaries are the provenance trail of a normalized error: they
// explain how every field was derived.
//
// # Pipeline
//
// BuildSummaries is the batch entry point. It looks for an array of errors
// through Options.PathToErrors (first array wins) and runs BuildSummary once
// per element, or once on the whole input when no array is found.
//
// BuildSummary runs, in order:
//
//  1. input decoding: strings are JSON-decoded; text that is not a JSON
//     object becomes {"code": "unknown", "message": <text>};
//  2. Extract: ordered candidate-path lookup per field (first hit wins);
//  3. Transform: optional user transforms per field, with result type checks;
//  4. assembly of the Summary, omitting fields that produced nothing.
//
// Any step may fail with a failure.Code. Failures are returned as errors and
// never panic across the package boundary: unexpected faults are recovered
// into the general* codes and logged when Options.ShowErrorLogs is set.
//
// # Paths inside arrays
//
// Candidate paths are absolute from the input root. Once an errors array is
// detected, each element becomes the root, so the same paths are applied to
// every element. Summaries built this way carry ErrorsArrayNotice.
package build
