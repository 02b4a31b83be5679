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
	"testing"

	"google.golang.org/grpc/codes"
)

func TestCodeName(t *testing.T) {
	cases := map[codes.Code]string{
		codes.OK:               "ok",
		codes.NotFound:         "not_found",
		codes.DeadlineExceeded: "deadline_exceeded",
		codes.Unauthenticated:  "unauthenticated",
		codes.DataLoss:         "data_loss",
	}
	for c, want := range cases {
		if got := CodeName(c); got != want {
			t.Errorf("CodeName(%v) = %q, want %q", c, got, want)
		}
	}
}

func TestHTTPToGRPC(t *testing.T) {
	cases := map[int]codes.Code{
		404: codes.NotFound,
		429: codes.ResourceExhausted,
		204: codes.OK,
		418: codes.FailedPrecondition,
		503: codes.Unavailable,
		520: codes.Unknown,
		0:   codes.Unknown,
	}
	for in, want := range cases {
		if got := HTTPToGRPC(in); got != want {
			t.Errorf("HTTPToGRPC(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestGRPCToHTTP(t *testing.T) {
	cases := map[codes.Code]int{
		codes.OK:               200,
		codes.Canceled:         499,
		codes.NotFound:         404,
		codes.Unauthenticated:  401,
		codes.Code(99):         500,
		codes.DeadlineExceeded: 504,
	}
	for in, want := range cases {
		if got := GRPCToHTTP(in); got != want {
			t.Errorf("GRPCToHTTP(%v) = %d, want %d", in, got, want)
		}
	}
}
