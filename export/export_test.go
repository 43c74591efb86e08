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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/adaptrie/adaptrie/trie"
)

func sampleTrie() *trie.Trie[string] {
	tr := trie.NewByteTrie[string]()
	tr.Insert([]byte{1, 2}, "a")
	tr.Insert([]byte{1, 3}, "b")
	return tr
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"", FormatJSON},
		{"JSON", FormatJSON},
		{"proto", FormatProto},
		{" text ", FormatText},
		{"dump", FormatDump},
	} {
		f, err := ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f, tc.in)
	}

	_, err := ParseFormat("yaml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	for _, name := range Formats() {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTrie(), FormatJSON))
	expected := "{\n  \"01\": {\n    \"02\": \"a\",\n    \"03\": \"b\"\n  }\n}\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleTrie(), FormatText))
	assert.Equal(t, "01:\n  02: a\n  03: b\n", buf.String())
}

func TestRenderDump(t *testing.T) {
	var buf bytes.Buffer
	tr := sampleTrie()
	require.NoError(t, Render(&buf, tr, FormatDump))

	var direct bytes.Buffer
	tr.Dump(&direct)
	assert.Equal(t, direct.String(), buf.String())
}

func TestRenderProto(t *testing.T) {
	var buf bytes.Buffer
	tr := sampleTrie()
	require.NoError(t, Render(&buf, tr, FormatProto))

	var got structpb.Struct
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), &got))
	require.True(t, proto.Equal(tr.Serialize().Struct(), &got))

	inner := got.GetFields()["01"].GetStructValue()
	require.NotNil(t, inner)
	assert.Equal(t, "b", inner.GetFields()["03"].GetStringValue())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, trie.NewNibbleTrie[int](), FormatText))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, trie.NewNibbleTrie[int](), FormatJSON))
	assert.Equal(t, "{}\n", buf.String())
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, NoCompression, c)

	c, err = ParseCompression("S2")
	require.NoError(t, err)
	assert.Equal(t, S2Compression, c)

	_, err = ParseCompression("zstd")
	require.ErrorIs(t, err, ErrUnknownCompression)

	var u Compression
	require.NoError(t, u.UnmarshalJSON([]byte(`"s2"`)))
	assert.Equal(t, S2Compression, u)
	b, err := u.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"s2"`, string(b))
}

func TestCompressionRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("adaptive radix ", 200))

	for _, alg := range []Compression{NoCompression, S2Compression} {
		t.Run(alg.String(), func(t *testing.T) {
			sealed, err := alg.Seal(payload)
			require.NoError(t, err)
			if alg == S2Compression {
				assert.Less(t, len(sealed), len(payload))
				assert.Equal(t, "atr", string(sealed[:3]))
			} else {
				assert.Equal(t, payload, sealed)
			}

			opened, err := Open(sealed)
			require.NoError(t, err)
			assert.Equal(t, payload, opened)
		})
	}
}

func TestBytesSealsRenderedTrie(t *testing.T) {
	tr := sampleTrie()
	sealed, err := Bytes(tr, FormatText, S2Compression)
	require.NoError(t, err)

	opened, err := Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "01:\n  02: a\n  03: b\n", string(opened))
}

func TestOpenRejectsBadMetadata(t *testing.T) {
	_, err := Open([]byte{'a', 't', 'r', byte(S2Compression), 0xff})
	require.ErrorIs(t, err, ErrBadMetadata)

	md := Metadata{Algorithm: S2Compression, OriginalSize: 3}
	body, err := S2Compression.Compress([]byte("hello"))
	require.NoError(t, err)
	_, err = Open(append(md.Marshal(), body...))
	require.ErrorIs(t, err, ErrSizeMismatch)

	md = Metadata{Algorithm: Compression(9), OriginalSize: 1}
	_, err = Open(append(md.Marshal(), 'x'))
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestMetadata(t *testing.T) {
	md := Metadata{Algorithm: S2Compression, OriginalSize: 1 << 20}
	var back Metadata
	n, err := back.Unmarshal(md.Marshal())
	require.NoError(t, err)
	assert.Equal(t, len(md.Marshal()), n)
	assert.Equal(t, md, back)

	n, err = back.Unmarshal([]byte("{\"01\":1}"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, NoCompression, back.Algorithm)
}
