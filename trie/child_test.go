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

import "testing"

var childSizes = []int{1, 2, 4, 8, 16, 32, 64, 128, 256}

func TestChildArrayFallsBackToOneSlot(t *testing.T) {
	for _, size := range []int{-1, 0, 3, 5, 100, 257, 512} {
		require_Equal(t, newChildArray[int](size).size(), 1)
	}
	for _, size := range childSizes {
		require_Equal(t, newChildArray[int](size).size(), size)
	}
}

func TestChildArraySlots(t *testing.T) {
	c := newChildArray[int](8)
	require_True(t, c.isEmpty())
	require_Equal(t, c.slot(0x0A), 2)
	require_Equal(t, c.slot(0xFF), 7)

	n := newNode(Key{0x0A}, 1)
	c.put(c.slot(0x0A), n)
	require_False(t, c.isEmpty())
	require_True(t, c.at(2) == n)
	require_True(t, c.at(3) == nil)
	require_Equal(t, c.occupied(), 1)

	// put overwrites.
	m := newNode(Key{0x12}, 2)
	c.put(2, m)
	require_True(t, c.at(2) == m)
	require_Equal(t, c.occupied(), 1)

	var seen []int
	c.put(7, n)
	c.each(func(cn *node[int]) bool {
		seen = append(seen, cn.value)
		return true
	})
	require_Len(t, len(seen), 2)
	require_Equal(t, seen[0], 2)
	require_Equal(t, seen[1], 1)
}

func TestNextSizeProgression(t *testing.T) {
	size := noChild
	for _, want := range childSizes {
		next := nextSize(size)
		require_True(t, next != size)
		require_Equal(t, next, want)
		size = next
	}
	require_Equal(t, nextSize(maxChildSize), maxChildSize)
}

func TestSmallestUpgradeIsMinimal(t *testing.T) {
	starts := append([]int{noChild}, childSizes[:len(childSizes)-1]...)
	for _, start := range starts {
		for s1 := 0; s1 < 256; s1++ {
			for s2 := 0; s2 < 256; s2++ {
				if s1 == s2 {
					continue
				}
				want := maxChildSize
				for _, size := range childSizes {
					if size > start && s1%size != s2%size {
						want = size
						break
					}
				}
				got := smallestUpgrade(start, byte(s1), byte(s2))
				if got != want {
					t.Fatalf("smallestUpgrade(%d, %d, %d) = %d, expected %d", start, s1, s2, got, want)
				}
				if s1%got == s2%got {
					t.Fatalf("size %d does not separate %d and %d", got, s1, s2)
				}
			}
		}
	}
	require_Equal(t, smallestUpgrade(0, 2, 3), 2)
	require_Equal(t, smallestUpgrade(0, 0x80, 0), 256)
	require_Equal(t, smallestUpgrade(maxChildSize, 1, 2), maxChildSize)
}
