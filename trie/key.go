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
	"strings"
)

// Key is an ordered sequence of edge symbols. Every symbol fits in a byte, whatever the
// granularity used to produce it. A node owns its residual key exclusively.
type Key []byte

// MatchKind classifies the shared prefix of two keys.
type MatchKind uint8

const (
	// MatchNone means the keys share no prefix at all.
	MatchNone MatchKind = iota
	// MatchPartial means both keys share a prefix and both have symbols beyond it.
	MatchPartial
	// MatchFullSelf means the receiver is a strict prefix of the other key.
	MatchFullSelf
	// MatchFullOther means the other key is a strict prefix of the receiver.
	MatchFullOther
	// MatchExact means the keys are identical.
	MatchExact
)

var matchKindNames = [...]string{
	MatchNone:      "None",
	MatchPartial:   "Partial",
	MatchFullSelf:  "FullSelf",
	MatchFullOther: "FullOther",
	MatchExact:     "Exact",
}

func (m MatchKind) String() string {
	if int(m) < len(matchKindNames) {
		return matchKindNames[m]
	}
	return fmt.Sprintf("MatchKind(%d)", uint8(m))
}

// KeyMatch is the result of comparing two keys. Index is the shared prefix length.
type KeyMatch struct {
	Kind  MatchKind
	Index int
}

func (m KeyMatch) String() string {
	switch m.Kind {
	case MatchExact, MatchNone:
		return m.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", m.Kind, m.Index)
}

// Compare classifies how k relates to other.
func (k Key) Compare(other Key) KeyMatch {
	prefix := commonPrefixLen(k, other)
	kl, ol := len(k), len(other)

	switch {
	case prefix == kl && prefix == ol:
		return KeyMatch{Kind: MatchExact, Index: prefix}
	case prefix == kl && ol > kl:
		return KeyMatch{Kind: MatchFullSelf, Index: prefix}
	case prefix == ol && kl > ol:
		return KeyMatch{Kind: MatchFullOther, Index: prefix}
	case prefix > 0:
		return KeyMatch{Kind: MatchPartial, Index: prefix}
	default:
		return KeyMatch{Kind: MatchNone}
	}
}

// Granularity selects how raw bytes are broken into edge symbols.
type Granularity uint8

const (
	// Bytes uses every raw byte as one symbol.
	Bytes Granularity = iota
	// Nibbles splits every byte into its high and low nibble.
	Nibbles
	// Bits splits every byte into eight masked single bit values.
	Bits
)

func (g Granularity) String() string {
	switch g {
	case Bytes:
		return "byte"
	case Nibbles:
		return "nibble"
	case Bits:
		return "bit"
	}
	return fmt.Sprintf("Granularity(%d)", uint8(g))
}

// ParseGranularity maps a name such as "byte", "nibble" or "bit" to its Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "bytes", "b":
		return Bytes, nil
	case "nibble", "nibbles", "n", "hex":
		return Nibbles, nil
	case "bit", "bits", "binary":
		return Bits, nil
	}
	return Bytes, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// Encoder turns raw bytes into keys of one granularity and renders them back.
type Encoder interface {
	Granularity() Granularity
	Encode(raw []byte) Key
	Decode(k Key) []byte
	Format(k Key) string
}

// Encoder returns the encoder for this granularity. Unknown values use bytes.
func (g Granularity) Encoder() Encoder {
	switch g {
	case Nibbles:
		return nibbleEncoder{}
	case Bits:
		return bitEncoder{}
	}
	return byteEncoder{}
}

type byteEncoder struct{}

func (byteEncoder) Granularity() Granularity { return Bytes }

func (byteEncoder) Encode(raw []byte) Key {
	k := make(Key, len(raw))
	copy(k, raw)
	return k
}

func (byteEncoder) Decode(k Key) []byte {
	return append([]byte(nil), k...)
}

func (byteEncoder) Format(k Key) string {
	var b strings.Builder
	for _, s := range k {
		fmt.Fprintf(&b, "%02x", s)
	}
	return b.String()
}

type nibbleEncoder struct{}

func (nibbleEncoder) Granularity() Granularity { return Nibbles }

func (nibbleEncoder) Encode(raw []byte) Key {
	k := make(Key, 0, len(raw)*2)
	for _, c := range raw {
		k = append(k, c>>4, c&0x0F)
	}
	return k
}

// A trailing odd nibble is taken as the high half of a final byte.
func (nibbleEncoder) Decode(k Key) []byte {
	raw := make([]byte, 0, (len(k)+1)/2)
	for i := 0; i < len(k); i += 2 {
		c := k[i] << 4
		if i+1 < len(k) {
			c |= k[i+1] & 0x0F
		}
		raw = append(raw, c)
	}
	return raw
}

func (nibbleEncoder) Format(k Key) string {
	var b strings.Builder
	for _, s := range k {
		fmt.Fprintf(&b, "%x", s)
	}
	return b.String()
}

// Bit symbols keep the masked value of their position (0x80, 0x40, ..., 0x01) rather
// than a 0/1 indicator. This drives the child array sizes picked for bit tries.
var bitMasks = [8]byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

type bitEncoder struct{}

func (bitEncoder) Granularity() Granularity { return Bits }

func (bitEncoder) Encode(raw []byte) Key {
	k := make(Key, 0, len(raw)*8)
	for _, c := range raw {
		for _, m := range bitMasks {
			k = append(k, c&m)
		}
	}
	return k
}

// Masked values OR straight back into the original byte.
func (bitEncoder) Decode(k Key) []byte {
	raw := make([]byte, 0, (len(k)+7)/8)
	for i := 0; i < len(k); i += 8 {
		var c byte
		for _, s := range k[i:min(i+8, len(k))] {
			c |= s
		}
		raw = append(raw, c)
	}
	return raw
}

func (bitEncoder) Format(k Key) string {
	var b strings.Builder
	for _, s := range k {
		fmt.Fprintf(&b, "%b", s)
	}
	return b.String()
}
