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

// ErrorDescriptor is a flat description of a normalized error together with
// its resolved transport statuses. It is meant for structured logs, traces
// and message buses, where nested views are inconvenient.
type ErrorDescriptor struct {
	// Code is the normalized error code.
	Code string `json:"code"`

	// Domain is the optional origin domain.
	Domain string `json:"domain,omitempty"`

	// NumberCode is the optional numeric code, 0 when absent.
	NumberCode float64 `json:"numberCode,omitempty"`

	// HTTPStatus is the HTTP status resolved by a Mapper.
	HTTPStatus int `json:"httpStatus,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved by a Mapper.
	GRPCCode int `json:"grpcCode,omitempty"`

	// Message is the primary message.
	Message string `json:"message,omitempty"`

	// Secondary is the number of secondary errors chained off this one.
	Secondary int `json:"secondary,omitempty"`
}
