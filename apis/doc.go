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

// Package apis defines the small contracts shared by errnorm packages.
//
// The root errnorm package produces normalized errors; adapters (HTTP, gRPC),
// the status mapper and the input normalizer only need to *read* a few
// fields from them. Those reads go through the capability interfaces below,
// so any error type (including ones from other libraries) can take part:
// an error implementing CodedError is normalized with its own code instead of
// "unknown", and the mapper can resolve a status for it.
//
// This package must stay dependency-light: interfaces and view types only.
package apis
