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

package apis

import "google.golang.org/grpc/codes"

// Mapper is an immutable, concurrency-safe resolver of transport statuses for
// normalized errors.
//
// Implementations read the code through CodedError and, when the error also
// implements them, the domain and numeric code through DomainError and
// NumberCodedError.
type Mapper interface {
	// HTTPStatus returns the HTTP status for e. It never returns zero.
	HTTPStatus(e CodedError) int

	// GRPCStatus returns the gRPC status code for e.
	GRPCStatus(e CodedError) codes.Code

	// Status resolves both statuses in one call, with the same inputs.
	Status(e CodedError) Status

	// Explain returns a human-readable trace of which rule matched.
	Explain(e CodedError) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
