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

// Stats describes the shape of a Trie.
type Stats struct {
	Keys       int         `json:"keys"`
	Nodes      int         `json:"nodes"`
	Branches   int         `json:"branches"`
	Arrays     int         `json:"arrays"`
	Slots      int         `json:"slots"`
	UsedSlots  int         `json:"used_slots"`
	MaxDepth   int         `json:"max_depth"`
	ArraySizes map[int]int `json:"array_sizes"`
}

// Fill returns the fraction of allocated slots holding a child.
func (s Stats) Fill() float64 {
	if s.Slots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.Slots)
}

// Stats walks the Trie and collects node and child array counts.
func (t *Trie[T]) Stats() Stats {
	st := Stats{Keys: t.Size(), ArraySizes: make(map[int]int)}
	if t == nil || t.root.pristine() {
		return st
	}
	t.walk(func(n *node[T], depth int) {
		st.Nodes++
		st.MaxDepth = max(st.MaxDepth, depth)
		if !n.set && n.child != nil {
			st.Branches++
		}
		if n.child != nil {
			st.Arrays++
			st.Slots += n.child.size()
			st.UsedSlots += n.child.occupied()
			st.ArraySizes[n.child.size()]++
		}
	})
	return st
}

// walk visits every node depth first in slot order. Uses an explicit stack so
// deep bit tries do not grow the goroutine stack.
func (t *Trie[T]) walk(f func(n *node[T], depth int)) {
	type frame struct {
		n     *node[T]
		depth int
	}
	stack := []frame{{&t.root, 1}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(fr.n, fr.depth)
		if fr.n.child == nil {
			continue
		}
		// Push in reverse so the lowest slot is visited first.
		for i := fr.n.child.size() - 1; i >= 0; i-- {
			if cn := fr.n.child.at(i); cn != nil {
				stack = append(stack, frame{cn, fr.depth + 1})
			}
		}
	}
}
