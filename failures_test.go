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

package errnorm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errnorm/failure"
)

func TestFailures_Err(t *testing.T) {
	assert.NoError(t, Failures(nil).Err())

	f := Failures{
		{Code: failure.UnknownCodeOrMessage},
		{Code: failure.TransformCodeResultIsNotString},
	}
	err := f.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.UnknownCodeOrMessage))
	assert.True(t, errors.Is(err, failure.TransformCodeResultIsNotString))
	assert.False(t, errors.Is(err, failure.IsNullish))
	assert.Equal(t, "errnorm: processing failures: unknownCodeOrMessage, transformCodeResultIsNotString", err.Error())
}

func TestFailures_Accessors(t *testing.T) {
	f := Failures{{Code: failure.IsNullish}, {Code: failure.InvalidSummary}}

	assert.Equal(t, []failure.Code{failure.IsNullish, failure.InvalidSummary}, f.Codes())
	assert.Equal(t, []string{"isNullish", "invalidSummary"}, f.Strings())
	assert.True(t, f.Has(failure.InvalidSummary))
	assert.False(t, f.Has(failure.IsNotAnObject))
	assert.Nil(t, Failures(nil).Codes())
}
