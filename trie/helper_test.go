// Copyright 2024-2026 The Adaptrie Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trie

import (
	"bytes"
	"testing"
)

func require_True(t testing.TB, b bool) {
	t.Helper()
	if !b {
		t.Fatalf("require true, but got false")
	}
}

func require_False(t testing.TB, b bool) {
	t.Helper()
	if b {
		t.Fatalf("require false, but got true")
	}
}

func require_NoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("require no error, but got: %v", err)
	}
}

func require_Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("require error, but got none")
	}
}

func require_Equal[T comparable](t testing.TB, a, b T) {
	t.Helper()
	if a != b {
		t.Fatalf("require %T equal, but got: %v != %v", a, a, b)
	}
}

func require_Len(t testing.TB, a, b int) {
	t.Helper()
	if a != b {
		t.Fatalf("require len, but got: %v != %v", a, b)
	}
}

func require_Bytes(t testing.TB, a, b []byte) {
	t.Helper()
	if !bytes.Equal(a, b) {
		t.Fatalf("require bytes equal, but got: %x != %x", a, b)
	}
}

func b(s string) []byte {
	return []byte(s)
}

// Walks down from the root the way an insert would and returns the node holding
// raw together with the concatenated residual keys of the path to it.
func findPath[T any](tr *Trie[T], raw []byte) (Key, *node[T]) {
	k := tr.enc.Encode(raw)
	var path Key
	for n := &tr.root; n != nil; {
		if !bytes.HasPrefix(k, n.key) {
			return nil, nil
		}
		path = append(path, n.key...)
		k = k[len(n.key):]
		if len(k) == 0 {
			if n.set {
				return path, n
			}
			return nil, nil
		}
		if n.child == nil {
			return nil, nil
		}
		n = n.child.at(n.child.slot(k[0]))
	}
	return nil, nil
}

// Checks structural invariants that must hold after any sequence of inserts.
func checkInvariants[T any](t *testing.T, tr *Trie[T]) {
	t.Helper()
	tr.walk(func(n *node[T], depth int) {
		if depth > 1 && len(n.key) == 0 && (n.set || n.child == nil) {
			t.Fatalf("empty keyed node below root must be a bare branch point")
		}
		if n.child != nil && !validChildSize(n.child.size()) {
			t.Fatalf("invalid child array size %d", n.child.size())
		}
		if n.child == nil {
			return
		}
		for i := 0; i < n.child.size(); i++ {
			cn := n.child.at(i)
			if cn == nil {
				continue
			}
			if len(cn.key) > 0 && n.child.slot(cn.key[0]) != i {
				t.Fatalf("child %x stored in slot %d, expected %d", cn.key, i, n.child.slot(cn.key[0]))
			}
		}
	})
}
