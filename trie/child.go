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

// Sizes a child array may take, smallest first. No array at all counts as noChild.
const (
	noChild      = 0
	minChildSize = 1
	maxChildSize = 256
)

// childArray is a fixed size table of children indexed by symbol modulo its size.
// The size is decided when the array is created and never changes.
type childArray[T any] struct {
	slots []*node[T]
}

// Any size outside of the progression falls back to a single slot.
func newChildArray[T any](size int) *childArray[T] {
	if !validChildSize(size) {
		size = minChildSize
	}
	return &childArray[T]{slots: make([]*node[T], size)}
}

func validChildSize(size int) bool {
	switch size {
	case 1, 2, 4, 8, 16, 32, 64, 128, 256:
		return true
	}
	return false
}

func (c *childArray[T]) size() int { return len(c.slots) }

func (c *childArray[T]) slot(symbol byte) int {
	return int(symbol) % len(c.slots)
}

// put stores n in the slot, replacing any occupant.
func (c *childArray[T]) put(slot int, n *node[T]) {
	c.slots[slot] = n
}

func (c *childArray[T]) at(slot int) *node[T] {
	return c.slots[slot]
}

func (c *childArray[T]) isEmpty() bool {
	for _, n := range c.slots {
		if n != nil {
			return false
		}
	}
	return true
}

// Iterate over occupied slots in slot order.
func (c *childArray[T]) each(f func(n *node[T]) bool) {
	for _, n := range c.slots {
		if n != nil && !f(n) {
			return
		}
	}
}

func (c *childArray[T]) occupied() int {
	var count int
	for _, n := range c.slots {
		if n != nil {
			count++
		}
	}
	return count
}

// nextSize steps through the progression 0, 1, 2, 4, ... 256. The last size maps
// to itself, every other size maps to a strictly larger one.
func nextSize(size int) int {
	switch {
	case size < minChildSize:
		return minChildSize
	case size >= maxChildSize/2:
		return maxChildSize
	}
	next := minChildSize
	for next <= size {
		next <<= 1
	}
	return next
}

// smallestUpgrade returns the first size after start at which s1 and s2 land in
// different slots. At 256 every byte is its own slot, so distinct symbols always
// separate there and the loop is bounded by the nine sizes.
func smallestUpgrade(start int, s1, s2 byte) int {
	size := start
	for {
		next := nextSize(size)
		if next == maxChildSize || int(s1)%next != int(s2)%next {
			return next
		}
		size = next
	}
}
