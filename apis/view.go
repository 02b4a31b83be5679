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

// ViewProvider is implemented by errors that can render a self-contained,
// transport-friendly snapshot of themselves.
type ViewProvider interface {
	error

	// ErrorView returns the snapshot. It must be safe to marshal.
	ErrorView() ErrorView
}

// ErrorView is the serializable shape of a normalized error.
//
// It mirrors the entity field set and adds the secondary chain and the tags
// of processing failures collected while the error was built. Inputs and
// summaries are deliberately left out: they may hold arbitrary caller data.
type ErrorView struct {
	// Code is the normalized error code. Always present.
	Code string `json:"code"`
	// NumberCode is the optional numeric code.
	NumberCode *float64 `json:"numberCode,omitempty"`
	// Message is the primary message. Always present.
	Message string `json:"message"`
	// Details is an optional longer description.
	Details string `json:"details,omitempty"`
	// Domain is an optional origin domain.
	Domain string `json:"domain,omitempty"`
	// Tag marks generic/fallback errors.
	Tag string `json:"tag,omitempty"`
	// Failures lists the processing-failure tags of dropped candidates.
	Failures []string `json:"processingErrors,omitempty"`
	// Next holds the secondary errors of a batch, in input order.
	Next []ErrorView `json:"nextErrors,omitempty"`
}
