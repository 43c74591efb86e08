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

// Package bench drives insertion workloads against the three trie variants.
package bench

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nuid"
	"golang.org/x/crypto/blake2b"
)

// Keyset selects how benchmark keys are generated.
type Keyset uint8

const (
	// KeysetOID produces commit id like keys, blake2b digests of a counter.
	KeysetOID Keyset = iota
	// KeysetUUID produces random 16 byte UUIDs.
	KeysetUUID
	// KeysetNUID produces 22 character NUIDs, which share long prefixes.
	KeysetNUID
)

const (
	// DefaultKeyLen matches the size of a git object id.
	DefaultKeyLen = 20
	summaryLen    = 60
	nuidLen       = 22
)

func (ks Keyset) String() string {
	switch ks {
	case KeysetOID:
		return "oid"
	case KeysetUUID:
		return "uuid"
	case KeysetNUID:
		return "nuid"
	default:
		return fmt.Sprintf("Keyset(%d)", ks)
	}
}

// ParseKeyset resolves a keyset name, the empty string meaning oid.
func ParseKeyset(s string) (Keyset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oid", "sha":
		return KeysetOID, nil
	case "uuid":
		return KeysetUUID, nil
	case "nuid":
		return KeysetNUID, nil
	}
	return KeysetOID, fmt.Errorf("%w: %q", ErrUnknownKeyset, s)
}

// Record is one key with the value stored under it.
type Record struct {
	Key     []byte
	Summary string
}

// Generate builds n records. OID and UUID keys are reproducible for a given
// seed, NUID keys are not. keyLen only applies to OID keys and must be
// between 1 and 64.
func Generate(ks Keyset, n, keyLen int, seed int64) ([]Record, error) {
	if n <= 0 {
		return nil, ErrNoKeys
	}
	recs := make([]Record, n)
	rng := rand.New(rand.NewSource(seed))

	switch ks {
	case KeysetOID:
		if keyLen < 1 || keyLen > blake2b.Size {
			return nil, fmt.Errorf("%w: %d (want 1-%d)", ErrKeyLength, keyLen, blake2b.Size)
		}
		var salt [8]byte
		binary.BigEndian.PutUint64(salt[:], uint64(seed))
		var ctr [binary.MaxVarintLen64]byte
		for i := range recs {
			h, err := blake2b.New(keyLen, salt[:])
			if err != nil {
				return nil, fmt.Errorf("oid hasher: %w", err)
			}
			h.Write(ctr[:binary.PutUvarint(ctr[:], uint64(i))])
			recs[i].Key = h.Sum(nil)
		}
	case KeysetUUID:
		for i := range recs {
			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				return nil, fmt.Errorf("uuid: %w", err)
			}
			recs[i].Key = id[:]
		}
	case KeysetNUID:
		gen := nuid.New()
		for i := range recs {
			recs[i].Key = []byte(gen.Next())
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKeyset, ks)
	}

	gen := nuid.New()
	for i := range recs {
		recs[i].Summary = summary(gen)
	}
	return recs, nil
}

func summary(gen *nuid.NUID) string {
	var b strings.Builder
	b.Grow(summaryLen + nuidLen)
	for b.Len() < summaryLen {
		b.WriteString(gen.Next())
	}
	return b.String()[:summaryLen]
}
