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
	"fmt"
	"io"
	"strings"
)

// Dump writes a text representation of the tree, one node per line.
func (t *Trie[T]) Dump(w io.Writer) {
	if t.root.pristine() {
		fmt.Fprintf(w, "EMPTY\n")
	} else {
		t.dump(w, &t.root, 0)
	}
	fmt.Fprintln(w)
}

// Will dump out a node.
func (t *Trie[T]) dump(w io.Writer, n *node[T], depth int) {
	fmt.Fprintf(w, "%s %s Key: %q", dumpPre(depth), n.kind(), t.enc.Format(n.key))
	if n.set {
		fmt.Fprintf(w, " Value: %+v", n.value)
	}
	if n.child != nil {
		fmt.Fprintf(w, " Slots: %d/%d", n.child.occupied(), n.child.size())
	}
	fmt.Fprintln(w)
	if n.child != nil {
		n.child.each(func(cn *node[T]) bool {
			t.dump(w, cn, depth+1)
			return true
		})
	}
}

func (n *node[T]) kind() string {
	switch {
	case n.leaf():
		return "LEAF"
	case !n.set:
		return "BRANCH"
	}
	return "NODE"
}

// Calculates the indendation, etc.
func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
