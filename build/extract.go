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
	"dirpx.dev/errnorm/failure"
	"dirpx.dev/errnorm/lookup"
)

// fieldFailures holds the failure codes that belong to one field.
type fieldFailures struct {
	pathInvalid    failure.Code
	pathNotArray   failure.Code
	pathNotStrings failure.Code
	notAFunction   failure.Code
	badResult      failure.Code
}

var failuresOf = [fieldCount]fieldFailures{
	FieldCode: {
		pathInvalid:    failure.PathToCodeIsInvalid,
		pathNotArray:   failure.PathToCodeIsNotAnArray,
		pathNotStrings: failure.PathToCodeValuesAreNotStrings,
		notAFunction:   failure.TransformCodeIsNotAFunction,
		badResult:      failure.TransformCodeResultIsNotString,
	},
	FieldNumberCode: {
		pathInvalid:    failure.PathToNumberCodeIsInvalid,
		pathNotArray:   failure.PathToNumberCodeIsNotAnArray,
		pathNotStrings: failure.PathToNumberCodeValuesAreNotStrings,
		notAFunction:   failure.TransformNumberCodeIsNotAFunction,
		badResult:      failure.TransformNumberCodeResultIsNotNumber,
	},
	FieldMessage: {
		pathInvalid:    failure.PathToMessageIsInvalid,
		pathNotArray:   failure.PathToMessageIsNotAnArray,
		pathNotStrings: failure.PathToMessageValuesAreNotStrings,
		notAFunction:   failure.TransformMessageIsNotAFunction,
		badResult:      failure.TransformMessageResultIsNotString,
	},
	FieldDetails: {
		pathInvalid:    failure.PathToDetailsIsInvalid,
		pathNotArray:   failure.PathToDetailsIsNotAnArray,
		pathNotStrings: failure.PathToDetailsValuesAreNotStrings,
		notAFunction:   failure.TransformDetailsIsNotAFunction,
		badResult:      failure.TransformDetailsResultIsNotString,
	},
	FieldDomain: {
		pathInvalid:    failure.PathToDomainIsInvalid,
		pathNotArray:   failure.PathToDomainIsNotAnArray,
		pathNotStrings: failure.PathToDomainValuesAreNotStrings,
		notAFunction:   failure.TransformDomainIsNotAFunction,
		badResult:      failure.TransformDomainResultIsNotString,
	},
}

// listShape is the outcome of checking a configured path list.
type listShape int

const (
	shapeOK listShape = iota
	shapeNotArray
	shapeNotStrings
)

// stringList checks that v is a list of strings. nil is an empty, valid list.
func stringList(v any) ([]string, listShape) {
	switch l := v.(type) {
	case nil:
		return nil, shapeOK
	case []string:
		return l, shapeOK
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			s, ok := e.(string)
			if !ok {
				return nil, shapeNotStrings
			}
			out = append(out, s)
		}
		return out, shapeOK
	}
	return nil, shapeNotArray
}

// candidatePaths validates the path list configured for f.
func candidatePaths(v any, f Field) ([]string, error) {
	paths, shape := stringList(v)
	switch shape {
	case shapeNotArray:
		return nil, failuresOf[f].pathNotArray
	case shapeNotStrings:
		return nil, failuresOf[f].pathNotStrings
	}
	for _, p := range paths {
		if len(lookup.Split(p)) == 0 {
			return nil, failuresOf[f].pathInvalid
		}
	}
	return paths, nil
}

// Hit is the extraction result of one field.
type Hit struct {
	// Path is the candidate that matched, "" when none did.
	Path string
	// Value is the raw value found at Path.
	Value any
}

// Extraction holds one Hit per field.
type Extraction struct {
	hits [fieldCount]Hit
}

// Hit returns the extraction result of f.
func (e Extraction) Hit(f Field) Hit {
	if f < 0 || int(f) >= fieldCount {
		return Hit{}
	}
	return e.hits[f]
}

// Raw returns the raw values of all fields.
func (e Extraction) Raw() Values {
	var v Values
	for _, f := range AllFields() {
		v.set(f, e.hits[f].Value)
	}
	return v
}

// Extract resolves every field of obj against its candidate paths.
//
// Paths are tried in order and the first one resolving to a non-nil value
// wins; the remaining candidates are not evaluated. A field without a path
// list yields an empty Hit. Malformed path lists fail with the field's
// pathTo* code, checked in field order.
func Extract(obj any, o *Options) (Extraction, error) {
	var ex Extraction
	for _, f := range AllFields() {
		paths, err := candidatePaths(o.Paths(f), f)
		if err != nil {
			return Extraction{}, err
		}
		for _, p := range paths {
			if v := lookup.Resolve(obj, p); v != nil {
				ex.hits[f] = Hit{Path: p, Value: v}
				break
			}
		}
	}
	return ex, nil
}
