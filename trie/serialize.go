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
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Entry is one key of a serialized tree. Value is either a stored value or a
// nested *Map of children.
type Entry struct {
	Key   string
	Value any
}

// Map is an ordered mapping produced by Serialize. Entries keep the order in
// which nodes were visited, slot order within each child array.
type Map struct {
	entries []Entry
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns entry keys in order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Entries returns the entries in order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Get returns the value of the first entry with key.
func (m *Map) Get(key string) (any, bool) {
	for _, e := range m.Entries() {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Each calls f for every entry in order until f returns false.
func (m *Map) Each(f func(key string, value any) bool) {
	for _, e := range m.Entries() {
		if !f(e.Key, e.Value) {
			return
		}
	}
}

func (m *Map) add(key string, value any) {
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// MarshalJSON renders the map as a JSON object preserving entry order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Struct converts the map into a protobuf Struct. Values structpb can not
// represent directly are stored as their %v rendering. Protobuf maps do not keep
// order, and later duplicate keys win.
func (m *Map) Struct() *structpb.Struct {
	st := &structpb.Struct{Fields: make(map[string]*structpb.Value, m.Len())}
	for _, e := range m.Entries() {
		st.Fields[e.Key] = structValue(e.Value)
	}
	return st
}

func structValue(v any) *structpb.Value {
	switch tv := v.(type) {
	case *Map:
		return structpb.NewStructValue(tv.Struct())
	case nil:
		return structpb.NewNullValue()
	}
	if sv, err := structpb.NewValue(v); err == nil {
		return sv
	}
	return structpb.NewStringValue(fmt.Sprintf("%v", v))
}

// Serialize flattens the tree into a nested ordered mapping for inspection.
//
// Every node with a non-empty residual key contributes one entry keyed by the
// rendering of that key. The entry holds the node value when the node has no
// children, otherwise a nested map of its children. Empty keyed branch points
// are transparent, their children appear directly in the enclosing map.
func (t *Trie[T]) Serialize() *Map {
	m := &Map{}
	if t == nil || t.root.pristine() {
		return m
	}
	t.flatten(&t.root, m)
	return m
}

func (t *Trie[T]) flatten(n *node[T], m *Map) {
	if !n.real() {
		if n.child != nil {
			n.child.each(func(cn *node[T]) bool {
				t.flatten(cn, m)
				return true
			})
		}
		return
	}
	if n.leaf() {
		var v any
		if n.set {
			v = n.value
		}
		m.add(t.enc.Format(n.key), v)
		return
	}
	cm := &Map{}
	n.child.each(func(cn *node[T]) bool {
		t.flatten(cn, cm)
		return true
	})
	m.add(t.enc.Format(n.key), cm)
}
