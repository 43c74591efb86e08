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
	"errors"
	"testing"
)

func TestKeyCompare(t *testing.T) {
	for _, test := range []struct {
		self, other Key
		want        KeyMatch
	}{
		{Key{1, 2}, Key{1, 2}, KeyMatch{MatchExact, 2}},
		{Key{}, Key{}, KeyMatch{MatchExact, 0}},
		{Key{1}, Key{1, 2}, KeyMatch{MatchFullSelf, 1}},
		{Key{}, Key{9}, KeyMatch{MatchFullSelf, 0}},
		{Key{1, 2, 3}, Key{1}, KeyMatch{MatchFullOther, 1}},
		{Key{4}, Key{}, KeyMatch{MatchFullOther, 0}},
		{Key{1, 2, 3}, Key{1, 2, 4}, KeyMatch{MatchPartial, 2}},
		{Key{1, 2}, Key{3, 2}, KeyMatch{MatchNone, 0}},
	} {
		got := test.self.Compare(test.other)
		if got != test.want {
			t.Fatalf("compare %x with %x: expected %v, got %v", test.self, test.other, test.want, got)
		}
	}
}

func TestKeyMatchString(t *testing.T) {
	require_Equal(t, KeyMatch{Kind: MatchPartial, Index: 3}.String(), "Partial(3)")
	require_Equal(t, KeyMatch{Kind: MatchExact, Index: 3}.String(), "Exact")
	require_Equal(t, MatchKind(42).String(), "MatchKind(42)")
}

func TestEncoders(t *testing.T) {
	raw := []byte{0x12, 0xA0}

	be := Bytes.Encoder()
	require_Bytes(t, be.Encode(raw), []byte{0x12, 0xA0})
	require_Equal(t, be.Format(be.Encode(raw)), "12a0")

	ne := Nibbles.Encoder()
	require_Bytes(t, ne.Encode(raw), []byte{0x1, 0x2, 0xA, 0x0})
	require_Equal(t, ne.Format(ne.Encode(raw)), "12a0")
	require_Bytes(t, ne.Decode(Key{0x1, 0x2, 0xA}), []byte{0x12, 0xA0})

	bits := Bits.Encoder()
	k := bits.Encode(raw)
	require_Len(t, len(k), 16)
	// Masked values, most significant bit first.
	require_Bytes(t, k[:8], []byte{0, 0, 0, 0x10, 0, 0, 0x02, 0})
	require_Bytes(t, k[8:], []byte{0x80, 0, 0x20, 0, 0, 0, 0, 0})
	require_Equal(t, bits.Format(k[8:]), "10000000"+"0"+"100000"+"0"+"0"+"0"+"0"+"0")

	for _, enc := range []Encoder{be, ne, bits} {
		require_Bytes(t, enc.Decode(enc.Encode(raw)), raw)
		require_Len(t, len(enc.Encode(nil)), 0)
	}

	// Encoding copies, nodes must own their keys.
	k = be.Encode(raw)
	k[0] = 0
	require_Equal(t, raw[0], byte(0x12))
}

func TestParseGranularity(t *testing.T) {
	for in, want := range map[string]Granularity{
		"byte": Bytes, "Bytes": Bytes, " nibble ": Nibbles, "hex": Nibbles, "bit": Bits,
	} {
		g, err := ParseGranularity(in)
		require_NoError(t, err)
		require_Equal(t, g, want)
		require_Equal(t, g.Encoder().Granularity(), want)
	}
	_, err := ParseGranularity("trit")
	require_True(t, errors.Is(err, ErrUnknownGranularity))
	require_Equal(t, Granularity(9).String(), "Granularity(9)")
	require_Equal(t, Granularity(9).Encoder().Granularity(), Bytes)
}
