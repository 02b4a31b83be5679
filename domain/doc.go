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

// Package domain normalizes and validates error domains.
//
// A domain names the subsystem an error belongs to, as a dot-separated
// hierarchy: "storage.pg", "auth.jwt", "billing". Upstream APIs spell
// domains freely ("Storage/PG", "auth-service"); Normalize brings such values
// to the canonical form and Parse validates it.
//
// Domains are optional: the empty domain is valid and means "not provided".
// The transport mapper matches domains by segment prefix, so "storage"
// covers "storage.pg" but not "storagex".
package domain
