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

// Package errnorm turns arbitrary error-like values into normalized errors.
//
// Inputs come in every shape: JSON API bodies, nested "error" objects,
// arrays of errors, plain text, Go errors. From resolves the code, numeric
// code, message, details and domain of such a value through configurable
// candidate paths (see package build) and returns a uniform *Error:
//
//	res := errnorm.From(body, nil)
//	if res.Error == nil {
//		// nothing usable was found; res.Force is the fallback error
//	}
//	log.Println(res.Force)
//
// From never fails: Result.Force is always set. When the input holds several
// errors, the first valid one becomes the primary error and the rest are
// chained off it (see Error.Next). Every candidate that could not be turned
// into an error is recorded as a ProcessingFailure, together with the
// Summary that explains how its fields were derived.
//
// *Error is an ordinary Go error and works with errors.Is/errors.As; it also
// implements the capability interfaces of package apis, which the transport
// mapper and the HTTP/gRPC adapters rely on.
package errnorm
