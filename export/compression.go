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

package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/s2"
)

// Compression is the algorithm applied to rendered output.
type Compression uint8

const (
	NoCompression Compression = iota
	S2Compression
)

func (alg Compression) String() string {
	switch alg {
	case NoCompression:
		return "None"
	case S2Compression:
		return "S2"
	default:
		return "Unknown Compression"
	}
}

// ParseCompression accepts "none" (or empty) and "s2".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoCompression, nil
	case "s2":
		return S2Compression, nil
	}
	return NoCompression, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

func (alg Compression) MarshalJSON() ([]byte, error) {
	switch alg {
	case S2Compression:
		return json.Marshal("s2")
	case NoCompression:
		return json.Marshal("none")
	}
	return nil, ErrUnknownCompression
}

func (alg *Compression) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	c, err := ParseCompression(str)
	if err != nil {
		return err
	}
	*alg = c
	return nil
}

// Metadata prefixes a compressed payload so it can be read back without
// knowing how it was written.
type Metadata struct {
	Algorithm    Compression
	OriginalSize uint64
}

func (m *Metadata) Marshal() []byte {
	b := make([]byte, 14) // 4 + potentially up to 10 for uint64
	b[0], b[1], b[2] = 'a', 't', 'r'
	b[3] = byte(m.Algorithm)
	n := binary.PutUvarint(b[4:], m.OriginalSize)
	return b[:4+n]
}

// Unmarshal reads the header from b and returns its length. A buffer
// without a header yields zero and leaves m describing an uncompressed payload.
func (m *Metadata) Unmarshal(b []byte) (int, error) {
	m.Algorithm = NoCompression
	m.OriginalSize = 0
	if len(b) < 5 { // 4 + min 1 for uvarint uint64
		return 0, nil
	}
	if b[0] != 'a' || b[1] != 't' || b[2] != 'r' {
		return 0, nil
	}
	var n int
	m.Algorithm = Compression(b[3])
	m.OriginalSize, n = binary.Uvarint(b[4:])
	if n <= 0 {
		return 0, ErrBadMetadata
	}
	return 4 + n, nil
}

func (alg Compression) Compress(buf []byte) ([]byte, error) {
	var output bytes.Buffer
	var writer io.WriteCloser
	switch alg {
	case NoCompression:
		return buf, nil
	case S2Compression:
		writer = s2.NewWriter(&output)
	default:
		return nil, ErrUnknownCompression
	}

	if n, err := io.Copy(writer, bytes.NewReader(buf)); err != nil {
		return nil, fmt.Errorf("error writing to compression writer: %w", err)
	} else if bodyLen := len(buf); n != int64(bodyLen) {
		return nil, fmt.Errorf("short write on body (%d != %d)", n, bodyLen)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error closing compression writer: %w", err)
	}
	return output.Bytes(), nil
}

func (alg Compression) Decompress(buf []byte) ([]byte, error) {
	var reader io.Reader
	switch alg {
	case NoCompression:
		return buf, nil
	case S2Compression:
		reader = s2.NewReader(bytes.NewReader(buf))
	default:
		return nil, ErrUnknownCompression
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading compression reader: %w", err)
	}
	return output, nil
}

// Seal compresses buf and prefixes it with its Metadata. Uncompressed
// payloads are returned as is.
func (alg Compression) Seal(buf []byte) ([]byte, error) {
	if alg == NoCompression {
		return buf, nil
	}
	compressed, err := alg.Compress(buf)
	if err != nil {
		return nil, fmt.Errorf("error compressing: %w", err)
	}
	md := Metadata{Algorithm: alg, OriginalSize: uint64(len(buf))}
	return append(md.Marshal(), compressed...), nil
}

// Open reverses Seal. Payloads without metadata are returned unchanged.
func Open(buf []byte) ([]byte, error) {
	var md Metadata
	n, err := md.Unmarshal(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return buf, nil
	}
	out, err := md.Algorithm.Decompress(buf[n:])
	if err != nil {
		return nil, fmt.Errorf("error decompressing: %w", err)
	}
	if uint64(len(out)) != md.OriginalSize {
		return nil, fmt.Errorf("%w (%d != %d)", ErrSizeMismatch, len(out), md.OriginalSize)
	}
	return out, nil
}
