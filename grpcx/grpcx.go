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

package grpcx

import (
	"context"
	"errors"
	"maps"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errnorm"
	"dirpx.dev/errnorm/adapter"
	"dirpx.dev/errnorm/apis"
	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/mapper"
)

// ToStatus converts a normalized error into a gRPC status. The status code
// is resolved via m and the error view travels as a google.protobuf.Struct
// detail. An error never maps to OK: a resolved OK becomes Unknown.
//
// If the view cannot be attached the bare status is returned together with
// the conversion error.
func ToStatus(e *errnorm.Error, m apis.Mapper) (*gstatus.Status, error) {
	if e == nil {
		return gstatus.New(gcodes.OK, ""), nil
	}
	c := m.GRPCStatus(e)
	if c == gcodes.OK {
		c = gcodes.Unknown
	}
	base := gstatus.New(c, e.Message)

	s, err := adapter.ToStruct(e.ErrorView())
	if err != nil {
		return base, err
	}
	detail, err := anypb.New(s)
	if err != nil {
		return base, err
	}
	p := base.Proto()
	p.Details = append(p.Details, detail)
	return gstatus.FromProto(p), nil
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// normalizes handler errors and returns them as gRPC statuses carrying the
// error view.
//
// Errors that already are gRPC statuses pass through unchanged, unless they
// wrap an *errnorm.Error. Anything else is normalized with o.
func UnaryServerInterceptor(m apis.Mapper, o *build.Options) grpc.UnaryServerInterceptor {
	if o == nil {
		o = build.DefaultOptions()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var e *errnorm.Error
		if !errors.As(err, &e) || e == nil {
			if _, ok := gstatus.FromError(err); ok {
				return nil, err
			}
			e = errnorm.From(err, o).Force
		}

		st, cErr := ToStatus(e, m)
		if cErr != nil {
			o.DiagnosticLogger().Warn("grpcx: attach error view",
				zap.Error(cErr), zap.String("method", info.FullMethod))
		}
		return nil, st.Err()
	}
}

// ExtractView pulls the error view attached by ToStatus out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractView(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	return viewOf(st)
}

func viewOf(st *gstatus.Status) (*structpb.Struct, bool) {
	for _, d := range st.Proto().GetDetails() {
		if !d.MessageIs(&structpb.Struct{}) {
			continue
		}
		s := new(structpb.Struct)
		if err := d.UnmarshalTo(s); err == nil {
			return s, true
		}
	}
	return nil, false
}

// FromError normalizes an error received from a gRPC call.
//
// A status error becomes an object with the snake_case status name as code
// (e.g. "not_found"), the status message and the numeric status code. A
// view attached by ToStatus overrides those fields and, with PathToErrors
// configured, its secondary errors are restored as the chain. Errors that are not gRPC
// statuses are handed to errnorm.From as they are.
func FromError(err error, o *build.Options) errnorm.Result {
	if err == nil {
		return errnorm.From(nil, o)
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return errnorm.From(err, o)
	}

	obj := map[string]any{
		"code":       mapper.CodeName(st.Code()),
		"message":    st.Message(),
		"numberCode": float64(st.Code()),
	}
	var input any = obj
	if v, ok := viewOf(st); ok {
		maps.Copy(obj, v.AsMap())
		next, _ := obj["nextErrors"].([]any)
		delete(obj, "nextErrors")
		if len(next) > 0 && (o == nil || o.PathToErrors != nil) {
			input = append([]any{obj}, next...)
		}
	}

	res := errnorm.From(input, o)
	if res.Error != nil {
		res.Error = res.Error.WithRaw(err)
		res.Force = res.Error
	}
	return res
}
