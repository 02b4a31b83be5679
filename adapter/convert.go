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

package adapter

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errnorm/apis"
)

// ToView converts an error into a public ErrorView.
//
// Errors implementing apis.ViewProvider render themselves. For any other
// error the view is assembled from the capability interfaces and the message
// is the Error() text. This function performs no redaction or filtering; it
// exposes exactly what the error instance contains.
func ToView(e error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(e, &vp) {
		return vp.ErrorView()
	}
	v := apis.ErrorView{Message: e.Error()}
	var ce apis.CodedError
	if errors.As(e, &ce) {
		v.Code = ce.ErrorCode()
	}
	var ne apis.NumberCodedError
	if errors.As(e, &ne) {
		if n, ok := ne.ErrorNumberCode(); ok {
			v.NumberCode = &n
		}
	}
	var de apis.DetailedError
	if errors.As(e, &de) {
		v.Details = de.ErrorDetails()
	}
	var dm apis.DomainError
	if errors.As(e, &dm) {
		v.Domain = dm.ErrorDomain()
	}
	return v
}

// ToDescriptor converts an error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation.
func ToDescriptor(e error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(e)
	d := apis.ErrorDescriptor{
		Code:       v.Code,
		Domain:     v.Domain,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
		Secondary:  len(v.Next),
	}
	if v.NumberCode != nil {
		d.NumberCode = *v.NumberCode
	}
	return d
}

// Describe resolves the status of e with m and returns its descriptor.
func Describe(e apis.CodedError, m apis.Mapper) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return ToDescriptor(e, m.Status(e))
}

// ToStruct converts a view into a protobuf Struct, the form in which views
// travel in gRPC status details and JSON bodies.
func ToStruct(v apis.ErrorView) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(viewMap(v))
	if err != nil {
		return nil, fmt.Errorf("adapter: convert view to struct: %w", err)
	}
	return s, nil
}

// MarshalJSON renders a view with protojson.
func MarshalJSON(v apis.ErrorView) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: false}.Marshal(s)
}

// viewMap mirrors the json tags of apis.ErrorView.
func viewMap(v apis.ErrorView) map[string]any {
	m := map[string]any{
		"code":    v.Code,
		"message": v.Message,
	}
	if v.NumberCode != nil {
		m["numberCode"] = *v.NumberCode
	}
	if v.Details != "" {
		m["details"] = v.Details
	}
	if v.Domain != "" {
		m["domain"] = v.Domain
	}
	if v.Tag != "" {
		m["tag"] = v.Tag
	}
	if len(v.Failures) > 0 {
		fs := make([]any, len(v.Failures))
		for i, f := range v.Failures {
			fs[i] = f
		}
		m["processingErrors"] = fs
	}
	if len(v.Next) > 0 {
		next := make([]any, len(v.Next))
		for i, n := range v.Next {
			next[i] = viewMap(n)
		}
		m["nextErrors"] = next
	}
	return m
}
