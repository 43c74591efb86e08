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
	lru "github.com/hashicorp/golang-lru/v2"
)

// Trie is an insert only radix trie over byte keys. Each node keeps a child array
// sized to the smallest table that separates the symbols seen where keys diverged.
// The key granularity is fixed when the Trie is created.
//
// A Trie is not safe for concurrent use. Callers must serialize Insert calls.
type Trie[T any] struct {
	root node[T]
	enc  Encoder
	log  Logger
	size int
}

// Logger is what a Trie needs to trace structural changes.
type Logger interface {
	Tracef(format string, v ...any)
}

// Option configures a Trie at creation.
type Option func(*options)

type options struct {
	log       Logger
	cacheSize int
}

// WithLogger traces every split and branch the Trie performs.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}

// WithKeyCache keeps up to n encoded keys in an LRU cache. Useful when the same raw
// keys are inserted repeatedly, as with nibble and bit tries where encoding expands the key.
func WithKeyCache(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// New creates an empty Trie with the given key granularity.
func New[T any](g Granularity, opts ...Option) *Trie[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t := &Trie[T]{enc: g.Encoder(), log: o.log}
	if o.cacheSize > 0 {
		t.enc = newCachedEncoder(t.enc, o.cacheSize)
	}
	return t
}

// NewByteTrie creates an empty Trie keyed by whole bytes.
func NewByteTrie[T any](opts ...Option) *Trie[T] { return New[T](Bytes, opts...) }

// NewNibbleTrie creates an empty Trie keyed by nibbles.
func NewNibbleTrie[T any](opts ...Option) *Trie[T] { return New[T](Nibbles, opts...) }

// NewBitTrie creates an empty Trie keyed by single bits.
func NewBitTrie[T any](opts ...Option) *Trie[T] { return New[T](Bits, opts...) }

// Granularity returns the key granularity chosen at creation.
func (t *Trie[T]) Granularity() Granularity {
	return t.enc.Granularity()
}

// Encoder returns the key encoder used by the Trie.
func (t *Trie[T]) Encoder() Encoder {
	return t.enc
}

// Size returns the number of distinct keys stored.
func (t *Trie[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert stores value under key. Inserting an existing key replaces its value.
// Insert never fails, any byte sequence including the empty one is a valid key.
func (t *Trie[T]) Insert(key []byte, value T) {
	if t.root.insert(t.enc.Encode(key), value, t.log) {
		t.size++
	}
}

// cachedEncoder memoizes Encode. Keys handed out are copies since nodes own their keys.
type cachedEncoder struct {
	Encoder
	cache *lru.Cache[string, Key]
}

func newCachedEncoder(enc Encoder, size int) Encoder {
	cache, err := lru.New[string, Key](size)
	if err != nil {
		return enc
	}
	return &cachedEncoder{Encoder: enc, cache: cache}
}

func (c *cachedEncoder) Encode(raw []byte) Key {
	if k, ok := c.cache.Get(string(raw)); ok {
		return copyBytes(k)
	}
	k := c.Encoder.Encode(raw)
	c.cache.Add(string(raw), copyBytes(k))
	return k
}
