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

package code

// Codes assigned by the normalizer itself.
const (
	// Unknown is given to inputs that carry a message but no code, such as
	// plain text or Go errors without an ErrorCode method.
	Unknown Code = "unknown"

	// Generic is the code of the generic and fallback entities.
	Generic Code = "generic"
)

// Well-known codes. The transport mapper has default statuses for them; any
// other canonical code maps through its numeric code or the fallback.
const (
	// Internal is a non-classified failure. HTTP 500.
	Internal Code = "internal"

	// Invalid means the request violates a structural or semantic
	// invariant. HTTP 400.
	Invalid Code = "invalid"

	// Missing means a required value is absent. HTTP 400.
	Missing Code = "missing"

	// Unsupported means the operation or value is not supported. HTTP 501.
	Unsupported Code = "unsupported"

	// Unauthenticated means credentials are missing or invalid. HTTP 401.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the caller may not perform the operation.
	// HTTP 403.
	PermissionDenied Code = "permission_denied"

	// NotFound means the target does not exist. HTTP 404.
	NotFound Code = "not_found"

	// AlreadyExists means the target exists already. HTTP 409.
	AlreadyExists Code = "already_exists"

	// Conflict means the state of the target does not allow the operation.
	// HTTP 409.
	Conflict Code = "conflict"

	// PreconditionFailed means a precondition such as a version check did
	// not hold. HTTP 412.
	PreconditionFailed Code = "precondition_failed"

	// RateLimited means the caller sent too many requests. HTTP 429.
	RateLimited Code = "rate_limited"

	// Canceled means the caller gave up. HTTP 499.
	Canceled Code = "canceled"

	// Unavailable means a dependency is temporarily unreachable. HTTP 503.
	Unavailable Code = "unavailable"

	// Timeout means the operation ran out of time. HTTP 504.
	Timeout Code = "timeout"
)

// WellKnown returns the well-known codes in declaration order.
func WellKnown() []Code {
	return []Code{
		Internal, Invalid, Missing, Unsupported,
		Unauthenticated, PermissionDenied,
		NotFound, AlreadyExists, Conflict, PreconditionFailed,
		RateLimited, Canceled, Unavailable, Timeout,
	}
}
