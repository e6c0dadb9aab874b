package beanfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys keep their insertion order.
// The zero value is an empty object.
type jsonObjectWriter struct {
	keys   []string
	values []json.RawMessage
	err    error
}

// Append marshals value and records it under key.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	w.keys = append(w.keys, key)
	w.values = append(w.values, raw)
	return w
}

// Optional is Append, except that zero values are skipped. Values that know
// whether they are zero (Money, Quantity, decimals) are asked directly.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if isZero(value) {
		return w
	}
	return w.Append(key, value)
}

func isZero(value any) bool {
	if z, ok := value.(interface{ IsZero() bool }); ok {
		return z.IsZero()
	}
	v := reflect.ValueOf(value)
	return !v.IsValid() || v.IsZero()
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(w.values[i])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
