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
	"sort"
	"strconv"
	"strings"
	"sync"

	"dirpx.dev/errnorm/code"
	"dirpx.dev/errnorm/domain"
)

// Names of the built-in transforms.
const (
	TransformNumberCodeFallback = "numberCodeFallback"
	TransformCanonicalCode      = "canonicalCode"
	TransformCanonicalDomain    = "canonicalDomain"
	TransformTrimSpace          = "trimSpace"
)

var (
	// ErrEmptyTransformName is returned when registering a transform without a name.
	ErrEmptyTransformName = errors.New("build: empty transform name")
	// ErrNilTransform is returned when registering a nil transform function.
	ErrNilTransform = errors.New("build: nil transform")
)

// Registry maps names to transforms so that configuration files can refer to
// them. It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]TransformFunc
}

// NewRegistry returns a registry preloaded with the built-in transforms.
func NewRegistry() *Registry {
	return &Registry{m: map[string]TransformFunc{
		TransformNumberCodeFallback: NumberCodeFallback,
		TransformCanonicalCode:      CanonicalCode,
		TransformCanonicalDomain:    CanonicalDomain,
		TransformTrimSpace:          TrimSpace,
	}}
}

// Register adds or replaces the transform called name.
func (r *Registry) Register(name string, fn TransformFunc) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTransformName
	}
	if fn == nil {
		return ErrNilTransform
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = fn
	return nil
}

// Lookup returns the transform called name.
func (r *Registry) Lookup(name string) (TransformFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.m[name]
	return fn, ok
}

// Resolve returns a transform slot for name. Unknown names yield a slot with
// a nil Func, which the pipeline reports as not callable.
func (r *Registry) Resolve(name string) *Transform {
	fn, _ := r.Lookup(name)
	return &Transform{Name: name, Func: fn}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.m))
	for n := range r.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NumberCodeFallback keeps string codes, stringifies numeric codes and, when
// no code was found at all, uses the decimal form of the numeric code.
// Values it cannot turn into a string are dropped.
func NumberCodeFallback(current any, raw Values, _ any) any {
	switch v := current.(type) {
	case nil:
		if n, ok := Number(raw.NumberCode); ok {
			return formatNumber(n)
		}
		return nil
	case string:
		return v
	}
	if n, ok := Number(current); ok {
		return formatNumber(n)
	}
	return nil
}

// CanonicalCode applies NumberCodeFallback and then code.Parse, turning
// "Not-Found " into "not_found". Codes that cannot be made canonical become
// code.Unknown.
func CanonicalCode(current any, raw Values, input any) any {
	s, ok := NumberCodeFallback(current, raw, input).(string)
	if !ok {
		return nil
	}
	if code.Canonical(s) {
		return s
	}
	c, err := code.Parse(s)
	if err != nil {
		return string(code.Unknown)
	}
	return string(c)
}

// CanonicalDomain normalizes string domains with domain.Parse, turning
// "Storage/PG" into "storage.pg". Non-string and invalid domains are
// dropped.
func CanonicalDomain(current any, _ Values, _ any) any {
	s, ok := current.(string)
	if !ok {
		return nil
	}
	d, err := domain.Parse(s)
	if err != nil {
		return nil
	}
	return string(d)
}

// TrimSpace trims string values and leaves everything else untouched.
func TrimSpace(current any, _ Values, _ any) any {
	if s, ok := current.(string); ok {
		return strings.TrimSpace(s)
	}
	return current
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
