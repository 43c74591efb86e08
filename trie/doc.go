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

// Package trie implements an insert only, adaptive radix trie over byte keys.
//
// Keys are broken into edge symbols at one of three granularities: whole bytes,
// nibbles or single bits. Every node keeps the residual part of its key and,
// once it has children, a child array whose size is one of 1, 2, 4, ..., 256.
// The size is chosen when two keys first diverge at the node, as the smallest
// table in which their diverging symbols land in different slots, and is never
// changed afterwards. Later collisions in a slot are resolved by splitting the
// occupant further down instead of growing the array.
//
// A Trie can be flattened into an ordered nested mapping with Serialize, dumped
// as text with Dump, or fingerprinted with Digest.
package trie
