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

package lookup

import (
	"math"
	"strconv"
	"strings"
)

// bracketStripper rewrites bracket-index syntax into plain segments, so
// "a[0]" and "a.0" address the same element.
var bracketStripper = strings.NewReplacer("[", ".", "]", "")

// Resolve walks root along path and returns the value found there.
//
// It returns nil when path is empty, root is nil, or any segment cannot be
// followed. JSON null and a missing key are therefore indistinguishable,
// which is what every caller in this module wants: both mean "no value".
func Resolve(root any, path string) any {
	if path == "" || root == nil {
		return nil
	}
	segs := Split(path)
	if len(segs) == 0 {
		return nil
	}
	cur := root
	for _, seg := range segs {
		next, ok := step(cur, seg)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Split returns the normalized, non-empty segments of path.
// A path that yields no segments can never resolve to anything.
func Split(path string) []string {
	p := bracketStripper.Replace(path)
	if p == "" {
		return nil
	}
	raw := strings.Split(p, ".")
	segs := raw[:0]
	for _, s := range raw {
		if s == "" {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// step follows a single segment from cur.
func step(cur any, seg string) (any, bool) {
	switch v := cur.(type) {
	case map[string]any:
		next, ok := v[seg]
		return next, ok
	case map[string]string:
		next, ok := v[seg]
		return next, ok
	case []any:
		if i, ok := index(seg, len(v)); ok {
			return v[i], true
		}
	case []map[string]any:
		if i, ok := index(seg, len(v)); ok {
			return v[i], true
		}
	case []string:
		if i, ok := index(seg, len(v)); ok {
			return v[i], true
		}
	}
	return nil, false
}

// index converts seg to an array index when it parses as an integral number
// inside [0, n).
func index(seg string, n int) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(seg), 64)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < 0 || f >= float64(n) {
		return 0, false
	}
	return int(f), true
}
