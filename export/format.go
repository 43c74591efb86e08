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

// Package export renders a trie in the output formats of the adaptrie tool.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/adaptrie/adaptrie/trie"
)

// Format selects how a trie is rendered.
type Format uint8

const (
	FormatJSON Format = iota
	FormatProto
	FormatText
	FormatDump
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatProto:
		return "proto"
	case FormatText:
		return "text"
	case FormatDump:
		return "dump"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{"json", "proto", "text", "dump"}
}

// ParseFormat resolves a format name, the empty string meaning json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "proto", "protojson", "pb":
		return FormatProto, nil
	case "text", "txt":
		return FormatText, nil
	case "dump", "tree":
		return FormatDump, nil
	}
	return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes tr to w in format f.
func Render[T any](w io.Writer, tr *trie.Trie[T], f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, tr.Serialize())
	case FormatProto:
		return writeProto(w, tr.Serialize())
	case FormatText:
		return writeText(w, tr.Serialize(), 0)
	case FormatDump:
		tr.Dump(w)
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Bytes renders tr in format f and seals the result with alg.
func Bytes[T any](tr *trie.Trie[T], f Format, alg Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, tr, f); err != nil {
		return nil, err
	}
	return alg.Seal(buf.Bytes())
}

func writeJSON(w io.Writer, m *trie.Map) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func writeProto(w io.Writer, m *trie.Map) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m.Struct())
	if err != nil {
		return fmt.Errorf("error encoding protojson: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func writeText(w io.Writer, m *trie.Map, depth int) error {
	var err error
	pad := strings.Repeat("  ", depth)
	m.Each(func(key string, value any) bool {
		if sub, ok := value.(*trie.Map); ok {
			if _, err = fmt.Fprintf(w, "%s%s:\n", pad, key); err != nil {
				return false
			}
			err = writeText(w, sub, depth+1)
			return err == nil
		}
		_, err = fmt.Fprintf(w, "%s%s: %v\n", pad, key, value)
		return err == nil
	})
	return err
}
