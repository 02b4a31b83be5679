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

package httpx

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errnorm"
	"dirpx.dev/errnorm/adapter"
	"dirpx.dev/errnorm/apis"
	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/lookup"
)

// MaxBodySize bounds how much of a response body FromResponse reads.
const MaxBodySize = 1 << 20

// Meta carries extra context that the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Options normalize errors that are not *errnorm.Error. nil means
	// build.DefaultOptions().
	Options *build.Options

	// Logger reports body encoding failures. nil discards.
	Logger *zap.Logger
}

// Write serializes the view of err as JSON and writes it to the response
// writer. The HTTP status is resolved via the Mapper. Errors that are not
// *errnorm.Error are normalized first.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	e := w.normalize(err)
	st := w.Mapper.Status(e)

	body, mErr := w.body(e, meta)
	if mErr != nil {
		w.logger().Warn("httpx: encode error body", zap.Error(mErr), zap.String("code", e.Code))
		http.Error(rw, e.Message, st.HTTP)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// Handle adapts a handler returning an error into an http.HandlerFunc that
// writes that error with w.
func (w Writer) Handle(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err, Meta{Correlation: r.Header.Get("X-Request-Id")})
		}
	}
}

func (w Writer) normalize(err error) *errnorm.Error {
	var e *errnorm.Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	return errnorm.From(err, w.Options).Force
}

func (w Writer) body(e *errnorm.Error, meta Meta) ([]byte, error) {
	s, err := adapter.ToStruct(e.ErrorView())
	if err != nil {
		return nil, err
	}
	if meta.Correlation != "" {
		s.Fields["correlation"] = structpb.NewStringValue(meta.Correlation)
	}
	if meta.TraceID != "" {
		s.Fields["traceId"] = structpb.NewStringValue(meta.TraceID)
	}
	// protojson keeps the wire format identical to gRPC status details.
	return protojson.Marshal(s)
}

func (w Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// FromResponse normalizes the error carried by an HTTP response.
//
// The body is read up to MaxBodySize and handed to errnorm.From as text, so
// JSON bodies are decoded and anything else becomes the message of an
// unknown error. When the body has no numeric code the response status is
// used, and an empty body yields the status text as message. The caller
// still owns resp.Body and must close it.
func FromResponse(resp *http.Response, o *build.Options) errnorm.Result {
	if resp == nil {
		return errnorm.From(nil, o)
	}
	if o == nil {
		o = build.DefaultOptions()
	}
	status := float64(resp.StatusCode)

	var raw []byte
	if resp.Body != nil {
		b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
		if err != nil {
			o.DiagnosticLogger().Debug("httpx: read response body",
				zap.Error(err), zap.Int("status", resp.StatusCode))
		}
		raw = b
	}
	if len(raw) == 0 {
		return errnorm.From(map[string]any{
			"numberCode": status,
			"message":    http.StatusText(resp.StatusCode),
		}, o)
	}

	input := build.Normalize(raw)
	if m, ok := input.(map[string]any); ok {
		input = withStatus(m, status, o)
	}
	res := errnorm.From(input, o)
	if res.Error != nil {
		res.Error = fillStatus(res.Error, status).WithRaw(raw)
		res.Force = res.Error
	} else if res.Force != nil {
		res.Force = res.Force.WithRaw(raw)
	}
	return res
}

// withStatus returns a copy of m carrying status at the first configured
// numberCode path when no numeric code can be extracted from m. Intermediate
// objects along that path are created as needed; m is returned unchanged
// when the path crosses a non-object value.
func withStatus(m map[string]any, status float64, o *build.Options) map[string]any {
	ex, err := build.Extract(m, o)
	if err != nil || ex.Raw().NumberCode != nil {
		return m
	}
	segs := firstPath(o.Paths(build.FieldNumberCode))
	if len(segs) == 0 {
		return m
	}
	cp := maps.Clone(m)
	cur := cp
	for _, seg := range segs[:len(segs)-1] {
		switch next := cur[seg].(type) {
		case nil:
			child := map[string]any{}
			cur[seg] = child
			cur = child
		case map[string]any:
			child := maps.Clone(next)
			cur[seg] = child
			cur = child
		default:
			return m
		}
	}
	cur[segs[len(segs)-1]] = status
	return cp
}

// firstPath returns the segments of the first usable path in paths.
func firstPath(paths any) []string {
	var list []string
	switch p := paths.(type) {
	case []string:
		list = p
	case []any:
		for _, v := range p {
			if s, ok := v.(string); ok {
				list = append(list, s)
			}
		}
	}
	for _, p := range list {
		if segs := lookup.Split(p); len(segs) > 0 {
			return segs
		}
	}
	return nil
}

// fillStatus sets status as the numeric code of every error in the chain
// that has none. Errors-array elements never see the injected root value.
func fillStatus(e *errnorm.Error, status float64) *errnorm.Error {
	if e.NumberCode == nil {
		e = e.WithNumberCode(status)
	}
	if len(e.Next) == 0 {
		return e
	}
	next := make([]*errnorm.Error, len(e.Next))
	for i, n := range e.Next {
		if n != nil {
			n = fillStatus(n, status)
		}
		next[i] = n
	}
	e = e.Clone()
	e.Next = next
	return e
}

// StatusError is returned by Check for non-2xx responses.
type StatusError struct {
	StatusCode int
	Err        *errnorm.Error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpx: status %d: %s", e.StatusCode, e.Err.Error())
}

func (e *StatusError) Unwrap() error { return e.Err }

// Check returns nil for 2xx responses and a *StatusError wrapping the
// normalized body otherwise.
func Check(resp *http.Response, o *build.Options) error {
	if resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	e := FromResponse(resp, o).Force
	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	return &StatusError{StatusCode: code, Err: e}
}
