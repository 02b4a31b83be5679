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

package build

import (
	"encoding/json"
	"errors"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errnorm/apis"
)

// UnknownCode is the code given to text inputs that are not JSON objects and
// to Go errors that do not carry a code of their own.
const UnknownCode = "unknown"

// Normalize converts inputs that are error-like but not objects into objects.
//
//   - string and []byte are decoded as JSON; text that is not a JSON object or
//     array becomes {"code": "unknown", "message": <text>};
//   - Go errors become {"code", "message", ...}: errors that render their own
//     apis.ErrorView are taken from it, others are read through the apis
//     capability interfaces found anywhere in the error chain;
//   - structs, maps with string keys and slices of other types than the
//     decoded-JSON ones are converted through their JSON encoding, so json
//     tags name the paths;
//   - everything else is returned unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return fromText(x)
	case []byte:
		return fromText(string(x))
	case error:
		return fromError(x)
	}
	if !isObject(v) && isComposite(v) {
		if tree, ok := fromValue(v); ok {
			return tree
		}
	}
	return v
}

// DecodeJSON decodes s into a map[string]any / []any tree with float64
// numbers.
//
// protojson is tried first. It rejects some documents that are valid JSON,
// such as objects with duplicate keys; those are decoded again with
// encoding/json, where the last duplicate key wins.
func DecodeJSON(s string) (any, error) {
	var v structpb.Value
	err := protojson.Unmarshal([]byte(s), &v)
	if err == nil {
		return v.AsInterface(), nil
	}
	var lenient any
	if json.Unmarshal([]byte(s), &lenient) == nil {
		return lenient, nil
	}
	return nil, err
}

// isComposite reports whether v is a struct, a map with string keys, a
// slice or an array, or a non-nil pointer to one of them.
func isComposite(v any) bool {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return false
		}
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	}
	return false
}

// fromValue converts a Go value into a decoded-JSON tree.
func fromValue(v any) (any, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	tree, err := DecodeJSON(string(b))
	if err != nil {
		return nil, false
	}
	return tree, true
}

func fromText(s string) any {
	if v, err := DecodeJSON(s); err == nil && isObject(v) {
		return v
	}
	return map[string]any{"code": UnknownCode, "message": s}
}

func fromError(err error) (obj any) {
	// A typed nil pointer inside a non-nil interface may panic in Error().
	defer func() {
		if recover() != nil {
			obj = nil
		}
	}()

	if vp, ok := err.(apis.ViewProvider); ok {
		return fromView(vp.ErrorView())
	}

	m := map[string]any{
		"code":    UnknownCode,
		"message": err.Error(),
	}
	var ce apis.CodedError
	if errors.As(err, &ce) && ce.ErrorCode() != "" {
		m["code"] = ce.ErrorCode()
	}
	var ne apis.NumberCodedError
	if errors.As(err, &ne) {
		if n, ok := ne.ErrorNumberCode(); ok {
			m["numberCode"] = n
		}
	}
	var de apis.DetailedError
	if errors.As(err, &de) && de.ErrorDetails() != "" {
		m["details"] = de.ErrorDetails()
	}
	var dm apis.DomainError
	if errors.As(err, &dm) && dm.ErrorDomain() != "" {
		m["domain"] = dm.ErrorDomain()
	}
	return m
}

// fromView keeps the message of a normalized error without the code prefix
// its Error method adds.
func fromView(v apis.ErrorView) map[string]any {
	m := map[string]any{"code": v.Code, "message": v.Message}
	if v.Code == "" {
		m["code"] = UnknownCode
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
	return m
}
