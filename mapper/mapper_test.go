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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errnorm/apis"
	"dirpx.dev/errnorm/code"
)

// testErr is a minimal error carrying a code, an optional domain and an
// optional numeric code.
type testErr struct {
	code   string
	domain string
	number *float64
}

func (e testErr) Error() string     { return e.code }
func (e testErr) ErrorCode() string { return e.code }

func (e testErr) ErrorDomain() string { return e.domain }

func (e testErr) ErrorNumberCode() (float64, bool) {
	if e.number == nil {
		return 0, false
	}
	return *e.number, true
}

func errOf(c code.Code, dom string) testErr {
	return testErr{code: string(c), domain: dom}
}

func numbered(c string, n float64) testErr {
	return testErr{code: c, number: &n}
}

// codeOnly implements apis.CodedError and nothing else.
type codeOnly string

func (c codeOnly) Error() string     { return string(c) }
func (c codeOnly) ErrorCode() string { return string(c) }

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(errOf(c, ""))
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.Invalid, 400, codes.InvalidArgument)
	check(code.NotFound, 404, codes.NotFound)
	check(code.Unavailable, 503, codes.Unavailable)
	check(code.Canceled, 499, codes.Canceled)
	check(code.Unsupported, 501, codes.Unimplemented)
}

func TestEveryWellKnownCodeHasDefaults(t *testing.T) {
	for _, c := range code.WellKnown() {
		if c == code.Unknown || c == code.Generic {
			continue
		}
		if _, ok := defaultHTTP[c]; !ok {
			t.Errorf("no default HTTP status for %q", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Errorf("no default gRPC status for %q", c)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Unavailable, 503),
		WithHTTPPrefix(code.Unavailable, "storage.pg", 599),
		WithHTTPOverride(code.Unavailable, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "storage.pg.connect")); got != 418 {
		t.Fatalf("override must win; got %d, want 418", got)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.Unavailable, codes.Unavailable),
		WithGRPCPrefix(code.Unavailable, "storage.pg", codes.Internal),
		WithGRPCOverride(code.Unavailable, codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(errOf(code.Unavailable, "storage.pg.connect")); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
	if got := m.GRPCStatus(errOf(code.Unavailable, "billing")); got != codes.Unavailable {
		t.Fatalf("default expected without prefix hit; got %v", got)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "storage.pg", 503),
		WithHTTPPrefix(code.Unavailable, "storage.pg.connect", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "storage.pg.connect.timeout")); got != 599 {
		t.Fatalf("LPM failed: got %d, want 599", got)
	}
	// "auth.j" must not match "auth.jwt".
	m2, _ := New(WithHTTPPrefix(code.Unavailable, "auth.jwt", 499))
	if got := m2.HTTPStatus(errOf(code.Unavailable, "auth.j")); got == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "auth.*.verify", 502),
		WithHTTPPrefix(code.Unavailable, "auth.jwt.verify", 401),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "auth.jwt.verify")); got != 401 {
		t.Fatalf("exact must beat wildcard; got %d", got)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "auth.saml.verify.token")); got != 502 {
		t.Fatalf("wildcard match failed; got %d, want 502", got)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "auth.verify")); got == 502 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestDomainPrefix_AppliesToAnyCode(t *testing.T) {
	m, err := New(
		WithHTTPDomainPrefix("payments", 402),
		WithHTTPPrefix(code.NotFound, "payments.card", 410),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errOf("card_declined", "payments.card.visa")); got != 402 {
		t.Fatalf("domain rule must apply to any code; got %d", got)
	}
	// Rules of the code win over rules for any code.
	if got := m.HTTPStatus(errOf(code.NotFound, "payments.card")); got != 410 {
		t.Fatalf("code rule must win; got %d", got)
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(" Unavailable ", "  STORAGE/PG.CONNECT-TIMEOUT  ", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errOf(code.Unavailable, "Storage.PG.connect_timeout")); got != 599 {
		t.Fatalf("normalized prefix should match; got %d", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "*.*", "9lives", "a..b"} {
		if _, err := New(WithHTTPPrefix(code.Invalid, p, 400)); err == nil {
			t.Errorf("New with prefix %q: expected error", p)
		}
	}
	_, err := New(WithGRPCDomainPrefix("1bad", codes.Internal))
	if err == nil || !strings.Contains(err.Error(), "gRPC") {
		t.Fatalf("expected gRPC prefix error, got %v", err)
	}
}

func TestNumberCode_AsHTTP(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(numbered("unknown", 404)); got != 404 {
		t.Fatalf("numberCode in range must be used; got %d", got)
	}
	// gRPC is derived from the HTTP status when no gRPC rule applies.
	if got := m.GRPCStatus(numbered("unknown", 404)); got != codes.NotFound {
		t.Fatalf("derived gRPC: got %v, want NotFound", got)
	}
	// Out of range and fractional values are ignored.
	for _, n := range []float64{42, 200, 302, 600, 404.5, -1} {
		if got := m.HTTPStatus(numbered("unknown", n)); got != 500 {
			t.Errorf("numberCode %v: got %d, want fallback 500", n, got)
		}
	}
	// numberCode does not beat a domain prefix.
	m2, _ := New(WithHTTPDomainPrefix("billing", 402))
	e := testErr{code: "unknown", domain: "billing", number: ptr(404)}
	if got := m2.HTTPStatus(e); got != 402 {
		t.Fatalf("prefix must beat numberCode; got %d", got)
	}
	// numberCode beats the default of the code.
	e = testErr{code: string(code.Invalid), number: ptr(422)}
	if got := m.HTTPStatus(e); got != 422 {
		t.Fatalf("numberCode must beat default; got %d", got)
	}
}

func TestNumberCode_Disabled(t *testing.T) {
	m, err := New(WithNumberCodeAsHTTP(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(numbered("unknown", 404))
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("got %+v, want fallback", st)
	}
}

func TestFallback(t *testing.T) {
	m, err := New(WithFallback(502, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := apis.Status{HTTP: 502, GRPC: codes.Unavailable}
	if got := m.Status(errOf("no_such_code", "")); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got := m.Status(nil); got != want {
		t.Fatalf("nil error: got %+v, want %+v", got, want)
	}
}

func TestCodedErrorWithoutOptionalInterfaces(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(codeOnly("NOT-FOUND")); got != 404 {
		t.Fatalf("got %d, want 404", got)
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "storage.pg", 503),
		WithGRPCPrefix(code.Unavailable, "storage.pg", codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(errOf(code.Unavailable, "storage.pg.connect"))
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="storage.pg"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "storage.pg", 503),
		WithHTTPOverride(code.Canceled, 408),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(errOf(code.Unavailable, "storage.pg.connect"))
				_ = m.Status(errOf(code.Canceled, ""))
				_ = m.Status(numbered("unknown", 404))
			}
		}()
	}
	wg.Wait()
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.(*mapper); !ok {
		t.Fatalf("New returned %T, want *mapper", m)
	}
}

func ptr(f float64) *float64 { return &f }

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	e := errOf(code.Invalid, "")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(WithHTTPPrefix(code.Unavailable, "storage.pg", 503))
	e := errOf(code.Unavailable, "storage.pg.connect.timeout")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}
