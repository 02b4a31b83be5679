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

package domain

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Domain is the canonical representation of an error domain.
type Domain string

// Limits of a canonical domain.
const (
	MaxLength   = 128
	MaxSegments = 8
)

// One to MaxSegments segments, each starting with a letter.
const domainFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,7}$`

var domainRe = regexp.MustCompile(domainFmt)

var (
	// ErrDomainInvalidFormat is returned when a domain is not canonical.
	ErrDomainInvalidFormat = errors.New("errnorm: invalid domain format")
	// ErrDomainInvalidLength is returned when a domain is too long.
	ErrDomainInvalidLength = errors.New("errnorm: invalid domain length")
)

var (
	_ encoding.TextMarshaler   = (*Domain)(nil)
	_ encoding.TextUnmarshaler = (*Domain)(nil)
)

// Empty is the zero domain, meaning "not provided".
var Empty Domain = ""

var separators = strings.NewReplacer("/", ".", ":", ".", "-", "_", " ", "_")

// Normalize trims and lowercases s, turns "/" and ":" into "." and dashes
// and blanks into "_".
//
//	Normalize(" Storage/PG ")    // "storage.pg"
//	Normalize("auth-service:jwt") // "auth_service.jwt"
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return separators.Replace(strings.ToLower(s))
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Domain, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Domain(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
func MustParse(s string) Domain {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if d == Empty {
		panic("errnorm: empty domain in MustParse")
	}
	return d
}

// Validate checks that d is canonical. Empty is valid.
func Validate(d Domain) error {
	if d == Empty {
		return nil
	}
	return validate(string(d))
}

// Segments returns the dot-separated segments of d.
func (d Domain) Segments() []string {
	if d == Empty {
		return nil
	}
	return strings.Split(string(d), ".")
}

// HasPrefix reports whether prefix is d itself or one of its ancestors.
func (d Domain) HasPrefix(prefix Domain) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(d), string(prefix)) {
		return false
	}
	return len(d) == len(prefix) || d[len(prefix)] == '.'
}

// String returns the domain as a string.
func (d Domain) String() string {
	return string(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Blank text yields Empty.
func (d *Domain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength {
		return ErrDomainInvalidLength
	}
	if !domainRe.MatchString(s) {
		return ErrDomainInvalidFormat
	}
	return nil
}
