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

// Package failure defines the closed taxonomy of processing failures.
//
// A processing failure explains why one candidate value could not become a
// normalized error. Every failure is one of the Code constants declared in
// this package; nothing else is ever produced by the builders.
//
// Codes fall into families:
//
//   - input: the candidate is nil or not an object at all;
//   - check: a pre-flight structural assertion rejected the input;
//   - config: the caller supplied malformed options (path lists, transforms);
//   - transform: a user transform returned a value of the wrong type;
//   - validation: a summary was built but lacks a code or a message;
//   - internal: an unexpected runtime fault was recovered.
//
// Code implements error, so builders return failures through ordinary Go
// error results and callers match them with errors.Is.
package failure
