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

// Package mapper resolves transport statuses (HTTP and gRPC) for normalized
// errors.
//
// # Inputs
//
// A mapper reads three things from an error, all through package apis:
//
//  1. the code (apis.CodedError), normalized with code.Normalize;
//  2. the domain (apis.DomainError), normalized with domain.Normalize;
//  3. the numeric code (apis.NumberCodedError).
//
// Errors normalized from foreign APIs carry arbitrary codes; the numeric code
// is often the HTTP status the upstream returned, so it takes part in the
// resolution.
//
// # Resolution model
//
// HTTP statuses are resolved in this order:
//
//  1. exact override for the code;
//  2. longest-prefix-match (LPM) on the domain, rules of the code first,
//     then rules for any code;
//  3. the numeric code, when it is an integral HTTP error status (400-599);
//  4. default for the code (library or user-adjusted);
//  5. fallback (500).
//
// gRPC statuses use the same order without step 3. When none of steps 1, 2
// and 4 applies and the HTTP status was not the fallback, the gRPC status is
// derived from the HTTP status (see HTTPToGRPC).
//
// Prefix rules are segment-aware: "storage" matches "storage.pg" but not
// "storagex", and "*" matches exactly one segment:
//
//	WithHTTPDomainPrefix("billing", http.StatusPaymentRequired)
//	WithHTTPPrefix(code.Unavailable, "storage.*.connect", http.StatusServiceUnavailable)
//
// # Building a mapper
//
// A mapper is created once and reused; it is immutable and safe for
// concurrent use:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),
//	    mapper.WithHTTPDomainPrefix("billing", 402),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//	st := m.Status(normalizedErr)
//
// # Diagnostics
//
// Explain returns a human-readable trace of which rule matched. It is meant
// for logs and tests, not for machine parsing.
package mapper
