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
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity selects how much of an Error is rendered.
type Verbosity int

const (
	// Plain renders String().
	Plain Verbosity = iota
	// Debug adds the entity fields as JSON.
	Debug
	// Verbose also adds failures, summary, raw input and secondary errors.
	Verbose
)

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// DebugString returns String() followed by the entity fields as indented
// JSON.
func (e *Error) DebugString() string {
	return e.String() + "\n" + indentJSON(struct {
		Code       string   `json:"code"`
		NumberCode *float64 `json:"numberCode,omitempty"`
		Message    string   `json:"message"`
		Details    string   `json:"details,omitempty"`
		Domain     string   `json:"domain,omitempty"`
		Tag        string   `json:"tag,omitempty"`
	}{e.Code, e.NumberCode, e.Message, e.Details, e.Domain, e.Tag})
}

// VerboseString returns DebugString() followed by the processing failures,
// summary, raw input and secondary errors as indented JSON.
func (e *Error) VerboseString() string {
	next := make([]any, 0, len(e.Next))
	for _, n := range e.Next {
		if n != nil {
			next = append(next, n.ErrorView())
		}
	}
	return e.DebugString() + "\n" + indentJSON(map[string]any{
		"processingErrors": e.Failures,
		"summary":          e.Summary,
		"raw":              e.Raw,
		"nextErrors":       next,
	})
}

// Render returns the rendering of e at verbosity v.
func (e *Error) Render(v Verbosity) string {
	switch v {
	case Debug:
		return e.DebugString()
	case Verbose:
		return e.VerboseString()
	}
	return e.String()
}

// Log writes e and each of its secondary errors to l at info level, one
// entry per error, numbered from 1 when there are secondary errors.
func (e *Error) Log(l *zap.Logger, tag string, v Verbosity) {
	if e == nil || l == nil {
		return
	}
	all := append([]*Error{e}, e.Next...)
	for i, x := range all {
		if x == nil {
			continue
		}
		fields := []zap.Field{zap.String("tag", tag), zap.Object("error", x)}
		if len(all) > 1 {
			fields = append(fields, zap.Int("row", i+1))
		}
		l.Info(x.Render(v), fields...)
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", e.Code)
	enc.AddString("message", e.Message)
	if e.NumberCode != nil {
		enc.AddFloat64("numberCode", *e.NumberCode)
	}
	if e.Details != "" {
		enc.AddString("details", e.Details)
	}
	if e.Domain != "" {
		enc.AddString("domain", e.Domain)
	}
	if e.Tag != "" {
		enc.AddString("tag", e.Tag)
	}
	if len(e.Failures) > 0 {
		if err := enc.AddArray("processingErrors", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, p := range e.Failures {
				ae.AppendString(string(p.Code))
			}
			return nil
		})); err != nil {
			return err
		}
	}
	if len(e.Next) > 0 {
		enc.AddInt("nextErrors", len(e.Next))
	}
	return nil
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
