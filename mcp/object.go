package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// object is a JSON object that remembers key order. Values are raw JSON.
// A key set again keeps its position; a new key goes last.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func newObject() *object {
	return &object{values: make(map[string]json.RawMessage)}
}

// decodeObject parses data, which must be a single valid JSON value. kind is
// the JSON type of the value when it is not an object.
func decodeObject(data []byte) (obj *object, kind string, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, "", err
	}
	if tok != json.Delim('{') {
		return nil, jsonKind(tok), nil
	}

	obj = newObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, "", err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, "", fmt.Errorf("unexpected object key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, "", err
		}
		obj.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, "", err
	}
	return obj, "", nil
}

func jsonKind(tok json.Token) string {
	switch tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}

func (o *object) Len() int {
	return len(o.keys)
}

func (o *object) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *object) Set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// MarshalJSON writes the keys in order, without HTML escaping.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encode(key, false)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
