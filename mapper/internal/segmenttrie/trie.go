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

// Package segmenttrie is a longest-prefix-match index over dot-separated
// keys such as error domains ("storage.pg.connect").
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned when inserting an empty or malformed prefix,
// or one made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps dot-separated prefixes to values. Matching respects segment
// boundaries: "auth.jwt" matches "auth.jwt.verify" but not "auth.jwtx".
//
// A Trie is not safe for concurrent Insert; once built, concurrent Match
// calls are fine.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the inserted prefix of a value node, reported by
	// MatchWithPattern.
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, replacing any previous value.
//
// Segments must match [a-z][a-z0-9_]* or be the wildcard "*". At least one
// segment must not be a wildcard.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal, cur.val, cur.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix of key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is like Match and also returns the matching prefix as it
// was inserted (wildcards included).
//
// Both the exact and the wildcard branch are explored; on equal depth the
// exact branch wins. A key with an invalid segment matches only up to that
// segment.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := match[T]{depth: -1}
	t.walk(key, 0, 0, &best)
	if best.depth < 0 {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

type match[T any] struct {
	depth int
	node  *Trie[T]
}

func (t *Trie[T]) walk(key string, off, depth int, best *match[T]) {
	if t.hasVal && depth > best.depth {
		best.depth, best.node = depth, t
	}
	if off >= len(key) {
		return
	}
	end := strings.IndexByte(key[off:], '.')
	if end < 0 {
		end = len(key)
	} else {
		end += off
	}
	seg := key[off:end]
	if !validSegment(seg) {
		return
	}
	next := end + 1
	if c, ok := t.children[seg]; ok {
		c.walk(key, next, depth+1, best)
	}
	if c, ok := t.children[Wildcard]; ok {
		c.walk(key, next, depth+1, best)
	}
}

// Len returns the number of prefixes with a value.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.hasVal {
		n++
	}
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
