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
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/minio/highwayhash"
)

var digestKey = sha256.Sum256([]byte("adaptrie structure digest"))

// Digest returns a fingerprint of the tree shape: residual keys, values, child
// array sizes and slot positions. Two tries built from the same inserts in the
// same order share a digest. Values are hashed through their %v rendering.
func (t *Trie[T]) Digest() uint64 {
	hh, _ := highwayhash.New64(digestKey[:])
	var buf [binary.MaxVarintLen64]byte

	putInt := func(v int) {
		n := binary.PutUvarint(buf[:], uint64(v))
		hh.Write(buf[:n])
	}

	hh.Write([]byte{byte(t.Granularity())})
	t.walk(func(n *node[T], depth int) {
		putInt(depth)
		putInt(len(n.key))
		hh.Write(n.key)
		if n.set {
			v := fmt.Sprintf("%v", n.value)
			hh.Write([]byte{1})
			putInt(len(v))
			hh.Write([]byte(v))
		} else {
			hh.Write([]byte{0})
		}
		putInt(n.childSize())
		if n.child != nil {
			for i := 0; i < n.child.size(); i++ {
				if n.child.at(i) != nil {
					putInt(i)
				}
			}
		}
	})
	return hh.Sum64()
}
