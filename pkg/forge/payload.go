package forge

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
)

// Payload is the JSON request body accumulated by builder calls before
// submission. It is created empty (seeded with the provider name), mutated
// incrementally, and consumed once at save time.
type Payload map[string]any

// Set stores a value under key, replacing any previous value.
func (p Payload) Set(key string, value any) {
	p[key] = value
}

// Unset removes key entirely. Removing an absent key is a no-op.
func (p Payload) Unset(key string) {
	delete(p, key)
}

// Has reports whether key is present with a truthy value. Values such as
// 0, "", false, or an empty slice count as absent even though they were
// explicitly set; callers that need exact presence should track it
// themselves.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	return truthy(v)
}

// SortedKeys returns every key in lexicographic order. Request bodies are
// always emitted in this order so identical payloads serialize to
// identical bytes.
func (p Payload) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON emits the payload with keys in lexicographic order.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return true
	}
}
