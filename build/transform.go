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
	"math"

	"dirpx.dev/errnorm/failure"
)

// ApplyTransforms applies the configured transforms to raw and returns the final
// values.
//
// Each transform receives the raw value of its field, all raw values and the
// input object; fields without a transform keep their raw value. The first
// field that is declared but not callable, or whose transform returns a value
// of the wrong type, aborts the whole run with that field's failure code.
func ApplyTransforms(raw Values, input any, o *Options) (Values, error) {
	out := raw
	for _, f := range AllFields() {
		t := o.TransformFor(f)
		if t == nil {
			continue
		}
		if t.Func == nil {
			return Values{}, failuresOf[f].notAFunction
		}
		v, err := checkResult(f, t.Func(raw.Get(f), raw, input))
		if err != nil {
			return Values{}, err
		}
		out.set(f, v)
	}
	return out, nil
}

// checkResult validates a transform result for f. Numeric results are
// normalized to float64.
func checkResult(f Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if f == FieldNumberCode {
		n, ok := Number(v)
		if !ok {
			return nil, failure.TransformNumberCodeResultIsNotNumber
		}
		if math.IsNaN(n) {
			return nil, failure.TransformNumberCodeResultIsNaN
		}
		return n, nil
	}
	if _, ok := v.(string); !ok {
		return nil, failuresOf[f].badResult
	}
	return v, nil
}
