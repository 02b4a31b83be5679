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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedErr struct{ n float64 }

func (e codedErr) Error() string                    { return "rate limited" }
func (e codedErr) ErrorCode() string                { return "rate_limited" }
func (e codedErr) ErrorNumberCode() (float64, bool) { return e.n, e.n != 0 }
func (e codedErr) ErrorDetails() string             { return "retry later" }

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

type nilPtrErr struct{ msg string }

func (e *nilPtrErr) Error() string { return e.msg }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"object text", `{"code":"A"}`, map[string]any{"code": "A"}},
		{"array text", `[1,2]`, []any{1.0, 2.0}},
		{"plain text", "oops", map[string]any{"code": "unknown", "message": "oops"}},
		{"number text", "42", map[string]any{"code": "unknown", "message": "42"}},
		{"bytes", []byte(`{"n":1}`), map[string]any{"n": 1.0}},
		{"plain error", errors.New("x"), map[string]any{"code": "unknown", "message": "x"}},
		{"coded error", fmt.Errorf("call: %w", codedErr{n: 429}), map[string]any{
			"code": "rate_limited", "message": "call: rate limited", "numberCode": 429.0, "details": "retry later",
		}},
		{"duplicate keys", `{"code":"a","code":"b","message":"m"}`, map[string]any{"code": "b", "message": "m"}},
		{"struct", apiErr{Code: "E1", Message: "m"}, map[string]any{"code": "E1", "message": "m"}},
		{"struct pointer", &apiErr{Code: "E1", Status: 409}, map[string]any{"code": "E1", "message": "", "status": 409.0}},
		{"typed map", map[string]int{"numberCode": 404}, map[string]any{"numberCode": 404.0}},
		{"typed slice", []map[string]string{{"code": "A"}}, []any{map[string]any{"code": "A"}}},
		{"object", map[string]any{"a": 1}, map[string]any{"a": 1}},
		{"scalar", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_TypedNilError(t *testing.T) {
	var p *nilPtrErr
	assert.Nil(t, Normalize(error(p)))
}

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON(`{"a":{"b":[true,null,"s"]}}`)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": []any{true, nil, "s"}}}, v)

	_, err = DecodeJSON(`{bad`)
	assert.Error(t, err)

	v, err = DecodeJSON(`{"code":"a","nested":{"x":1,"x":2},"code":"b"}`)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"code": "b", "nested": map[string]any{"x": 2.0}}, v)
}

func TestValues_Helpers(t *testing.T) {
	n, ok := Number(uint8(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
	_, ok = Number("3")
	assert.False(t, ok)

	assert.Equal(t, "undefined", typeOf(nil))
	assert.Equal(t, "number", typeOf(int64(1)))
	assert.Equal(t, "boolean", typeOf(false))
	assert.Equal(t, "function", typeOf(TransformFunc(TrimSpace)))
	assert.Equal(t, "object", typeOf([]any{}))

	assert.False(t, truthy(""))
	assert.False(t, truthy(0))
	assert.False(t, truthy(math.NaN()))
	assert.True(t, truthy(map[string]any{}))

	assert.True(t, strictEqual(1, 1.0))
	assert.False(t, strictEqual("1", 1))
	assert.False(t, strictEqual(map[string]any{}, map[string]any{}))
	assert.True(t, strictEqual(nil, nil))
}
