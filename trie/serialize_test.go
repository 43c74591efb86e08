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
	"bytes"
	"encoding/json"
	"testing"
)

func TestSerializeNestsChildren(t *testing.T) {
	tr := NewByteTrie[string]()
	tr.Insert([]byte{0x01, 0x02}, "a")
	tr.Insert([]byte{0x01, 0x03}, "b")

	m := tr.Serialize()
	require_Equal(t, m.Len(), 1)
	v, ok := m.Get("01")
	require_True(t, ok)
	cm, ok := v.(*Map)
	require_True(t, ok)
	require_Equal(t, cm.Len(), 2)
	keys := cm.Keys()
	require_Equal(t, keys[0], "02")
	require_Equal(t, keys[1], "03")

	js, err := json.Marshal(m)
	require_NoError(t, err)
	require_Equal(t, string(js), `{"01":{"02":"a","03":"b"}}`)
}

func TestSerializeFlattensEmptyKeyedBranches(t *testing.T) {
	tr := NewByteTrie[string]()
	tr.Insert([]byte{1, 2, 3}, "a")
	tr.Insert([]byte{1}, "b")
	tr.Insert([]byte{1, 4}, "c")

	// The empty keyed branch under 01 never shows up as a level of its own.
	js, err := json.Marshal(tr.Serialize())
	require_NoError(t, err)
	require_Equal(t, string(js), `{"01":{"04":"c","0203":"a"}}`)

	// Same for an empty keyed root.
	tr = NewByteTrie[string]()
	tr.Insert(nil, "root")
	tr.Insert([]byte{0x10}, "child")
	js, err = json.Marshal(tr.Serialize())
	require_NoError(t, err)
	require_Equal(t, string(js), `{"10":"child"}`)
}

func TestSerializeKeyRendering(t *testing.T) {
	for _, test := range []struct {
		g    Granularity
		want string
	}{
		{Bytes, `{"ab":1}`},
		{Nibbles, `{"ab":1}`},
		{Bits, `{"100000000100000010000101":1}`},
	} {
		tr := New[int](test.g)
		tr.Insert([]byte{0xAB}, 1)
		js, err := json.Marshal(tr.Serialize())
		require_NoError(t, err)
		require_Equal(t, string(js), test.want)
	}
}

func TestSerializeEmpty(t *testing.T) {
	tr := NewNibbleTrie[int]()
	m := tr.Serialize()
	require_Equal(t, m.Len(), 0)
	js, err := m.MarshalJSON()
	require_NoError(t, err)
	require_Equal(t, string(js), `{}`)

	var nilMap *Map
	require_Equal(t, nilMap.Len(), 0)
	_, ok := nilMap.Get("x")
	require_False(t, ok)
}

func TestSerializeEach(t *testing.T) {
	tr := NewByteTrie[int]()
	for i := 0; i < 8; i++ {
		tr.Insert([]byte{byte(i)}, i)
	}
	var count int
	tr.Serialize().Each(func(key string, value any) bool {
		count++
		return count < 3
	})
	require_Equal(t, count, 3)
}

func TestSerializeStruct(t *testing.T) {
	tr := NewByteTrie[any]()
	tr.Insert([]byte{0x01, 0x02}, "a")
	tr.Insert([]byte{0x01, 0x03}, 3)
	tr.Insert([]byte{0x09}, struct{ X int }{1})

	st := tr.Serialize().Struct()
	inner := st.Fields["01"].GetStructValue()
	require_True(t, inner != nil)
	require_Equal(t, inner.Fields["02"].GetStringValue(), "a")
	require_Equal(t, inner.Fields["03"].GetNumberValue(), 3.0)
	// Not representable, kept as text.
	require_Equal(t, st.Fields["09"].GetStringValue(), "{1}")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	tr := NewByteTrie[string]()
	tr.Dump(&buf)
	require_Equal(t, buf.String(), "EMPTY\n\n")

	tr.Insert([]byte{0x01, 0x02}, "a")
	tr.Insert([]byte{0x01, 0x03}, "b")
	buf.Reset()
	tr.Dump(&buf)
	expected := "-- BRANCH Key: \"01\" Slots: 2/2\n" +
		"  |__ LEAF Key: \"02\" Value: a\n" +
		"  |__ LEAF Key: \"03\" Value: b\n\n"
	require_Equal(t, buf.String(), expected)

	tr.Insert([]byte{0x01}, "c")
	buf.Reset()
	tr.Dump(&buf)
	require_True(t, bytes.HasPrefix(buf.Bytes(), b("-- NODE Key: \"01\" Value: c Slots: 2/2\n")))
}
