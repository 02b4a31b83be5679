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

package mapper

import (
	"fmt"
	"math"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errnorm/apis"
	"dirpx.dev/errnorm/code"
	"dirpx.dev/errnorm/domain"
	"dirpx.dev/errnorm/mapper/internal/segmenttrie"
)

// Sources reported by Explain.
const (
	sourceOverride   = "override"
	sourcePrefix     = "prefix"
	sourceNumberCode = "numberCode"
	sourceDefault    = "default"
	sourceDerived    = "derived"
	sourceFallback   = "fallback"
)

// New builds an immutable apis.Mapper.
//
// Library defaults are applied first, then opts in order. Prefixes are
// normalized with domain.Normalize; an invalid prefix fails the build.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, identity),
		grpcDefault:  freeze(b.grpcDefaults, toGRPC),
		httpOverride: freeze(b.httpOverride, identity),
		grpcOverride: freeze(b.grpcOverride, toGRPC),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		numberCodeAsHTTP: b.numberCodeAsHTTP,
		fallbackHTTP:     b.fallbackHTTP,
		fallbackGRPC:     b.fallbackGRPC,
	}, nil
}

// mapper is the immutable apis.Mapper built by New. Lookups are O(domain
// depth) and safe for concurrent use.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpTrie map[code.Code]*segmenttrie.Trie[int]
	grpcTrie map[code.Code]*segmenttrie.Trie[codes.Code]

	numberCodeAsHTTP bool
	fallbackHTTP     int
	fallbackGRPC     codes.Code
}

// subject is what the mapper reads from an error.
type subject struct {
	code       code.Code
	domain     string
	numberCode float64
	hasNumber  bool
}

func subjectOf(e apis.CodedError) subject {
	if e == nil {
		return subject{}
	}
	s := subject{code: key(code.Code(e.ErrorCode()))}
	if de, ok := e.(apis.DomainError); ok {
		s.domain = domain.Normalize(de.ErrorDomain())
	}
	if ne, ok := e.(apis.NumberCodedError); ok {
		s.numberCode, s.hasNumber = ne.ErrorNumberCode()
	}
	return s
}

type resolution[T any] struct {
	val     T
	source  string
	pattern string
}

func (m *mapper) resolveHTTP(s subject) resolution[int] {
	if v, ok := m.httpOverride[s.code]; ok {
		return resolution[int]{val: v, source: sourceOverride}
	}
	if v, pat, ok := lookupPrefix(m.httpTrie, s); ok {
		return resolution[int]{val: v, source: sourcePrefix, pattern: pat}
	}
	if m.numberCodeAsHTTP && s.hasNumber && isErrorStatus(s.numberCode) {
		return resolution[int]{val: int(s.numberCode), source: sourceNumberCode}
	}
	if v, ok := m.httpDefault[s.code]; ok {
		return resolution[int]{val: v, source: sourceDefault}
	}
	return resolution[int]{val: m.fallbackHTTP, source: sourceFallback}
}

func (m *mapper) resolveGRPC(s subject) resolution[codes.Code] {
	if v, ok := m.grpcOverride[s.code]; ok {
		return resolution[codes.Code]{val: v, source: sourceOverride}
	}
	if v, pat, ok := lookupPrefix(m.grpcTrie, s); ok {
		return resolution[codes.Code]{val: v, source: sourcePrefix, pattern: pat}
	}
	if v, ok := m.grpcDefault[s.code]; ok {
		return resolution[codes.Code]{val: v, source: sourceDefault}
	}
	if h := m.resolveHTTP(s); h.source != sourceFallback {
		return resolution[codes.Code]{val: HTTPToGRPC(h.val), source: sourceDerived}
	}
	return resolution[codes.Code]{val: m.fallbackGRPC, source: sourceFallback}
}

// HTTPStatus implements apis.Mapper.
func (m *mapper) HTTPStatus(e apis.CodedError) int {
	return m.resolveHTTP(subjectOf(e)).val
}

// GRPCStatus implements apis.Mapper.
func (m *mapper) GRPCStatus(e apis.CodedError) codes.Code {
	return m.resolveGRPC(subjectOf(e)).val
}

// Status implements apis.Mapper.
func (m *mapper) Status(e apis.CodedError) apis.Status {
	s := subjectOf(e)
	return apis.Status{
		HTTP: m.resolveHTTP(s).val,
		GRPC: m.resolveGRPC(s).val,
	}
}

// Explain implements apis.Mapper.
//
// Example output:
//
//	code="unavailable" domain="storage.pg.connect"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> Unavailable(14)
func (m *mapper) Explain(e apis.CodedError) string {
	s := subjectOf(e)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q domain=%q", s.code, s.domain)
	if s.hasNumber {
		_, _ = fmt.Fprintf(&b, " numberCode=%g", s.numberCode)
	}
	b.WriteByte('\n')

	h := m.resolveHTTP(s)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", h.source, patternOf(h.pattern), h.val)
	g := m.resolveGRPC(s)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", g.source, patternOf(g.pattern), g.val, int(g.val))
	return b.String()
}

func patternOf(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}

// lookupPrefix matches the domain against the rules of the code, then
// against the rules for any code.
func lookupPrefix[T any](tries map[code.Code]*segmenttrie.Trie[T], s subject) (T, string, bool) {
	var zero T
	if s.domain == "" || len(tries) == 0 {
		return zero, "", false
	}
	if s.code != anyCode {
		if v, ok, pat := tries[s.code].MatchWithPattern(s.domain); ok {
			return v, pat, true
		}
	}
	if v, ok, pat := tries[anyCode].MatchWithPattern(s.domain); ok {
		return v, pat, true
	}
	return zero, "", false
}

// isErrorStatus reports whether n is an integral 4xx or 5xx HTTP status.
func isErrorStatus(n float64) bool {
	return n >= 400 && n <= 599 && n == math.Trunc(n)
}

func buildTries[T any](rules map[code.Code][]prefixRule, conv func(int) T) (map[code.Code]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[code.Code]*segmenttrie.Trie[T], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[T]()
		for _, r := range rs {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("invalid domain prefix %q for code %q: %w", r.prefix, c, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("cannot insert prefix %q for code %q: %w", p, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// normalizePrefix normalizes a domain prefix, keeping "*" segments intact.
func normalizePrefix(raw string) (string, error) {
	p := domain.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	return p, nil
}

func freeze[V any](src map[code.Code]int, conv func(int) V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func identity(v int) int { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }
