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

package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tree := map[string]any{
		"a": map[string]any{"b": []any{10, 20}},
		"error": map[string]any{
			"code":    "E1",
			"details": nil,
		},
		"errors": []map[string]any{{"code": "X"}},
		"tags":   []string{"t0", "t1"},
		"meta":   map[string]string{"0": "zero"},
		"n":      5,
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"nested array index", "a.b.1", 20},
		{"bracket index", "a.b[0]", 10},
		{"bracket equals dotted", "a[b].1", 20},
		{"double dots skipped", "a..b.1", 20},
		{"trailing dot", "error.code.", "E1"},
		{"typed slice of maps", "errors.0.code", "X"},
		{"string slice", "tags.1", "t1"},
		{"numeric key on map", "meta.0", "zero"},
		{"missing key", "x.y", nil},
		{"through scalar", "n.x", nil},
		{"explicit null", "error.details", nil},
		{"index out of range", "a.b.2", nil},
		{"negative index", "a.b.-1", nil},
		{"fractional index", "a.b.0.5", nil},
		{"non-numeric index on array", "a.b.first", nil},
		{"whole subtree", "error.code", "E1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tree, tt.path))
		})
	}
}

func TestResolve_EmptyInputs(t *testing.T) {
	assert.Nil(t, Resolve(nil, "a"))
	assert.Nil(t, Resolve(map[string]any{"a": 1}, ""))
	assert.Nil(t, Resolve(map[string]any{"a": 1}, "[]"))
	assert.Nil(t, Resolve(map[string]any{}, "x.y"))
	assert.Nil(t, Resolve("scalar", "a"))
}

func TestResolve_BracketsAreIgnored(t *testing.T) {
	in := map[string]any{"a": []any{1, 2}}
	assert.Equal(t, Resolve(in, "a.0"), Resolve(in, "a[0]"))
	assert.Equal(t, 1, Resolve(in, "a[0]"))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"code", []string{"code"}},
		{"error.code", []string{"error", "code"}},
		{"errors[1].code", []string{"errors", "1", "code"}},
		{"errors.[1].code", []string{"errors", "1", "code"}},
		{"..a..", []string{"a"}},
		{"", nil},
		{"...", []string{}},
	}
	for _, tt := range tests {
		got := Split(tt.in)
		if len(tt.want) == 0 {
			assert.Empty(t, got, "Split(%q)", tt.in)
			continue
		}
		assert.Equal(t, tt.want, got, "Split(%q)", tt.in)
	}
}
