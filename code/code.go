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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical representation of an error code.
//
// Empty codes are not valid: every normalized error has a code.
type Code string

// Length limits of a canonical code.
const (
	MinLength = 1
	MaxLength = 128
)

// codeFmt must stay in sync with MaxLength.
const codeFmt = `^[a-z0-9][a-z0-9_.]{0,127}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed as a code.
var ErrCodeInvalid = errors.New("errnorm: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero code. It is never valid.
var Empty Code = ""

var separators = strings.NewReplacer("-", "_", " ", "_", "\t", "_", "/", ".")

// Normalize brings s closer to canonical form: it trims, lowercases, turns
// dashes and inner blanks into underscores and slashes into dots. The
// result is not guaranteed to be valid.
//
//	Normalize(" Not-Found ")  // "not_found"
//	Normalize("AUTH/Expired") // "auth.expired"
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return separators.Replace(s)
}

// Parse normalizes and validates s.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that c is canonical.
func Validate(c Code) error {
	return validate(string(c))
}

// Canonical reports whether s is already in canonical form.
func Canonical(s string) bool {
	return validate(s) == nil
}

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is normalized
// before validation.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength || !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
