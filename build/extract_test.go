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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errnorm/failure"
)

func TestExtract_FirstMatchWins(t *testing.T) {
	o := &Options{PathToCode: []string{"code", "err_code"}}
	ex, err := Extract(map[string]any{"code": "A", "err_code": "B"}, o)
	require.NoError(t, err)
	assert.Equal(t, Hit{Path: "code", Value: "A"}, ex.Hit(FieldCode))
}

func TestExtract_SkipsNullAndMissing(t *testing.T) {
	o := &Options{PathToMessage: []any{"message", "error.message", "msg"}}
	in := map[string]any{
		"message": nil,
		"error":   map[string]any{"message": "nested"},
		"msg":     "flat",
	}
	ex, err := Extract(in, o)
	require.NoError(t, err)
	assert.Equal(t, Hit{Path: "error.message", Value: "nested"}, ex.Hit(FieldMessage))
}

func TestExtract_UnconfiguredFieldIsEmpty(t *testing.T) {
	ex, err := Extract(map[string]any{"code": "A"}, &Options{})
	require.NoError(t, err)
	for _, f := range AllFields() {
		assert.Equal(t, Hit{}, ex.Hit(f), f.String())
	}
	assert.Equal(t, Values{}, ex.Raw())
}

func TestExtract_MalformedPaths(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *Options)
		want  failure.Code
	}{
		{"code not array", func(o *Options) { o.PathToCode = "code" }, failure.PathToCodeIsNotAnArray},
		{"numberCode not strings", func(o *Options) { o.PathToNumberCode = []any{"n", 1} }, failure.PathToNumberCodeValuesAreNotStrings},
		{"message invalid", func(o *Options) { o.PathToMessage = []string{"..[]"} }, failure.PathToMessageIsInvalid},
		{"details not array", func(o *Options) { o.PathToDetails = map[string]any{} }, failure.PathToDetailsIsNotAnArray},
		{"domain empty path", func(o *Options) { o.PathToDomain = []string{""} }, failure.PathToDomainIsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Options{}
			tt.setup(o)
			_, err := Extract(map[string]any{}, o)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtract_FieldOrder(t *testing.T) {
	o := &Options{PathToCode: 1, PathToDomain: 2}
	_, err := Extract(map[string]any{}, o)
	assert.ErrorIs(t, err, failure.PathToCodeIsNotAnArray)
}

func TestExtract_ArrayIndexes(t *testing.T) {
	o := &Options{PathToCode: []string{"errors[0].code"}}
	ex, err := Extract(map[string]any{"errors": []any{map[string]any{"code": "X"}}}, o)
	require.NoError(t, err)
	assert.Equal(t, "X", ex.Hit(FieldCode).Value)
}
