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

// Package code normalizes and validates error codes.
//
// Error codes arrive from many sources in many spellings: "NOT_FOUND",
// "not-found", "Not Found", "E1042". This package brings them to one
// canonical form:
//
//   - lowercased;
//   - words separated by underscores;
//   - ASCII letters, digits, underscores and dots only.
//
// Normalization is conservative and never invents a code. Callers that need
// a guaranteed canonical value use Parse.
//
// The package also declares the small set of well-known codes used by the
// transport mapper defaults and by the entity constructors.
package code
