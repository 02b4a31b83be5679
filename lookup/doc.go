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

// Package lookup resolves dot-separated paths against decoded JSON-like trees.
//
// A tree is built from map[string]any and []any values (what encoding/json,
// yaml.v3 and structpb produce), plus the common typed variants
// map[string]string, []map[string]any and []string.
//
// Paths are forgiving: bracket syntax is flattened into plain segments,
// empty segments are skipped, and numeric segments index into arrays, so all
// of the following address the same element:
//
//	errors.0.code
//	errors[0].code
//	errors..0.code.
//
// Resolution never panics. A missing key, an out-of-range index or a scalar
// in the middle of the path all resolve to nil.
package lookup
