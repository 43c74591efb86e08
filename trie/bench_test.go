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
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
)

// Commit-like workload, 20 byte ids with short summaries.
func benchOids(n int) ([][]byte, []string) {
	rng := rand.New(rand.NewSource(1))
	oids := make([][]byte, n)
	summaries := make([]string, n)
	for i := range oids {
		oids[i] = make([]byte, 20)
		rng.Read(oids[i])
		summaries[i] = fmt.Sprintf("summary %d %x", i, oids[i][:4])
	}
	return oids, summaries
}

func BenchmarkInsert(b *testing.B) {
	oids, summaries := benchOids(1_000)
	for _, g := range []Granularity{Bytes, Nibbles, Bits} {
		b.Run(g.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr := New[string](g)
				for j, oid := range oids {
					tr.Insert(oid, summaries[j])
				}
			}
		})
	}
}

func BenchmarkSerialize(b *testing.B) {
	oids, summaries := benchOids(1_000)
	for _, g := range []Granularity{Bytes, Nibbles, Bits} {
		tr := New[string](g)
		for j, oid := range oids {
			tr.Insert(oid, summaries[j])
		}
		b.Run(g.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := json.Marshal(tr.Serialize()); err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		})
	}
}
