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
	"google.golang.org/grpc/codes"

	"dirpx.dev/errnorm/code"
)

// Option configures a mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets the default HTTP status of c.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[key(c)] = http }
}

// WithGRPCDefault sets the default gRPC status of c.
func WithGRPCDefault(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[key(c)] = int(grpc) }
}

// WithHTTPOverride sets an HTTP status for c that wins over every other rule.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[key(c)] = http }
}

// WithGRPCOverride sets a gRPC status for c that wins over every other rule.
func WithGRPCOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[key(c)] = int(grpc) }
}

// WithHTTPPrefix adds a domain prefix rule for errors with code c.
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) {
		k := key(c)
		b.httpPrefixes[k] = append(b.httpPrefixes[k], prefixRule{prefix, http})
	}
}

// WithGRPCPrefix adds a domain prefix rule for errors with code c.
func WithGRPCPrefix(c code.Code, prefix string, grpc codes.Code) Option {
	return func(b *builder) {
		k := key(c)
		b.grpcPrefixes[k] = append(b.grpcPrefixes[k], prefixRule{prefix, int(grpc)})
	}
}

// WithHTTPDomainPrefix adds a domain prefix rule for errors with any code.
// Rules of a specific code are consulted first.
func WithHTTPDomainPrefix(prefix string, http int) Option {
	return WithHTTPPrefix(anyCode, prefix, http)
}

// WithGRPCDomainPrefix adds a domain prefix rule for errors with any code.
func WithGRPCDomainPrefix(prefix string, grpc codes.Code) Option {
	return WithGRPCPrefix(anyCode, prefix, grpc)
}

// WithNumberCodeAsHTTP controls whether numeric codes in the HTTP error
// status range (400-599) are used as HTTP statuses. Enabled by default.
func WithNumberCodeAsHTTP(enabled bool) Option {
	return func(b *builder) { b.numberCodeAsHTTP = enabled }
}

// WithFallback replaces the statuses used when nothing else applies.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
