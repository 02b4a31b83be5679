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

package segmenttrie

import (
	"fmt"
	"testing"
)

func TestInsertAndMatch(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("storage.pg", 503))
	must(t, tr.Insert("auth.jwt.verify", 401))
	must(t, tr.Insert("billing", 402))

	tests := []struct {
		key     string
		want    int
		pattern string
		ok      bool
	}{
		{"storage.pg.connect", 503, "storage.pg", true},
		{"storage.pg", 503, "storage.pg", true},
		{"auth.jwt.verify", 401, "auth.jwt.verify", true},
		{"billing.card.declined", 402, "billing", true},
		{"storage", 0, "", false},
		{"storage.pgx", 0, "", false},
		{"", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok, p := tr.MatchWithPattern(tt.key)
			if ok != tt.ok || v != tt.want || p != tt.pattern {
				t.Fatalf("MatchWithPattern(%q) = (%v, %v, %q); want (%v, %v, %q)",
					tt.key, v, ok, p, tt.want, tt.ok, tt.pattern)
			}
		})
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.*.verify", 498))
	must(t, tr.Insert("auth.jwt.verify", 401))

	if v, ok, p := tr.MatchWithPattern("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("auth.saml.verify.token"); !ok || v != 498 || p != "auth.*.verify" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("auth.verify"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperWildcardPath(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[string]()
	must(t, tr.Insert("a.b", "x"))
	must(t, tr.Insert("a.b", "y"))
	if v, _ := tr.Match("a.b"); v != "y" {
		t.Fatalf("Match = %q, want y", v)
	}
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "a.", "1a"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}
	must(t, tr.Insert("a.b", 1))
	for _, k := range []string{"UPPER.case", "a..b", "A.b"} {
		if _, ok := tr.Match(k); ok {
			t.Fatalf("Match(%q) should be false", k)
		}
	}
	var nilTrie *Trie[int]
	if err := nilTrie.Insert("a", 1); err == nil {
		t.Fatalf("Insert on nil trie must fail")
	}
	if _, ok := nilTrie.Match("a"); ok {
		t.Fatalf("Match on nil trie must be false")
	}
}

func BenchmarkMatch(b *testing.B) {
	tr := New[int]()
	for i := 0; i < 256; i++ {
		if err := tr.Insert(fmt.Sprintf("svc%d.*.op%d", i, i%7), i); err != nil {
			b.Fatal(err)
		}
	}
	key := "svc128.pg.op2.retry"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match(key)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
