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

// node holds the residual key relative to its parent, an optional value and an
// optional child array. A node without a value but with children is a branch
// point that only exists so two colliding subtrees can separate.
// Order of struct fields for best memory alignment (as per govet/fieldalignment)
type node[T any] struct {
	value T
	key   Key
	child *childArray[T]
	set   bool
}

func newNode[T any](key Key, value T) *node[T] {
	return &node[T]{key: key, value: value, set: true}
}

// Only a fresh root is pristine.
func (n *node[T]) pristine() bool {
	return len(n.key) == 0 && !n.set && n.child == nil
}

func (n *node[T]) childSize() int {
	if n.child == nil {
		return noChild
	}
	return n.child.size()
}

// insert adds key with value below n and reports whether the key was not present before.
//
// This may shrink the key of an existing node, split a node under a new empty
// ancestor, hand a node a sized child array, or simply add a new child.
func (n *node[T]) insert(key Key, value T, l Logger) bool {
	if n.pristine() {
		n.key, n.value, n.set = key, value, true
		return true
	}
	return n.insertNode(newNode(key, value), l)
}

// insertNode places the detached node c relative to n. Every step either settles c
// or moves one level down into an occupied slot, so we walk down with a loop.
func (n *node[T]) insertNode(c *node[T], l Logger) bool {
	for {
		m := n.key.Compare(c.key)
		switch m.Kind {
		case MatchExact:
			// Same full key as before, replace the value. c carries no children here
			// since only fresh arrays ever receive detached subtrees.
			added := !n.set
			n.value, n.set = c.value, c.set
			return added

		case MatchFullSelf:
			// c continues below n. Drop the part already covered by n.
			c.key = copyBytes(c.key[m.Index:])
			existing := n.place(c)
			if existing == nil {
				return true
			}
			n = existing

		case MatchFullOther:
			// c becomes the parent of what n used to be.
			tail := n.splitAt(m.Index, c.value, c.set, c.child)
			if l != nil {
				l.Tracef("trie: split %d-symbol key at %d, moved suffix below", len(n.key)+len(tail.key), m.Index)
			}
			n.addChild(tail, l)
			return true

		default:
			// Neither contains the other, n turns into their common ancestor.
			n.branch(c, m.Index, l)
			return true
		}
	}
}

// branch makes n the common ancestor of its current contents and c, both of which
// have at least idx+1 symbols and differ at idx.
func (n *node[T]) branch(c *node[T], idx int, l Logger) {
	cur, other := n.key[idx], c.key[idx]
	size := smallestUpgrade(n.childSize(), cur, other)

	var zero T
	tail := n.splitAt(idx, zero, false, newChildArray[T](size))
	ctail := c.splitAt(idx, zero, false, nil)

	if l != nil {
		l.Tracef("trie: branch at %d for symbols 0x%02x and 0x%02x with %d slots", idx, cur, other, size)
	}
	n.addChild(tail, l)
	n.addChild(ctail, l)
}

// addChild places c below n, walking into the occupant of its slot if needed.
// c must have at least one key symbol.
func (n *node[T]) addChild(c *node[T], l Logger) {
	if existing := n.place(c); existing != nil {
		existing.insertNode(c, l)
	}
}

// place puts c into its slot, creating a single slot array when n has none.
// Returns the current occupant instead if the slot is taken.
func (n *node[T]) place(c *node[T]) *node[T] {
	if n.child == nil {
		n.child = newChildArray[T](minChildSize)
	}
	slot := n.child.slot(c.key[0])
	if existing := n.child.at(slot); existing != nil {
		return existing
	}
	n.child.put(slot, c)
	return nil
}

// splitAt shrinks n to its first idx symbols, installs the given value and
// children and returns the excess as a detached node.
func (n *node[T]) splitAt(idx int, value T, set bool, child *childArray[T]) *node[T] {
	excess := &node[T]{
		key:   copyBytes(n.key[idx:]),
		value: n.value,
		set:   n.set,
		child: n.child,
	}
	n.key = copyBytes(n.key[:idx])
	n.value, n.set, n.child = value, set, child
	return excess
}

// real nodes carry part of a key. Empty keyed branch points are transparent.
func (n *node[T]) real() bool { return len(n.key) > 0 }

// Leafs have no children, or only an empty array.
func (n *node[T]) leaf() bool { return n.child == nil || n.child.isEmpty() }
