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

// CodedError is an error carrying a machine-readable string code, such as
// "not_found" or "E_CARD_DECLINED".
//
// Codes read through this interface are taken as-is. Normalization, if any,
// is the business of transforms configured on the builder.
type CodedError interface {
	error

	// ErrorCode returns the code. An empty string means "no code".
	ErrorCode() string
}

// NumberCodedError is an error carrying a numeric code, typically an HTTP
// status or a vendor error number.
type NumberCodedError interface {
	error

	// ErrorNumberCode returns the numeric code and whether one is present.
	ErrorNumberCode() (float64, bool)
}

// DetailedError is an error carrying a longer, user-facing description in
// addition to its message.
type DetailedError interface {
	error

	// ErrorDetails returns the details text. May be empty.
	ErrorDetails() string
}

// DomainError is an error that names the domain it originated from, e.g.
// "billing" or "storage.pg".
type DomainError interface {
	error

	// ErrorDomain returns the domain. May be empty.
	ErrorDomain() string
}
