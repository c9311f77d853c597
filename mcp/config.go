package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ServersKey is the top-level field that maps server names to descriptors.
const ServersKey = "mcpServers"

// Document is an MCP client configuration file. Values are kept as raw JSON
// in file order so entries this tool does not own are written back as they
// were read.
type Document struct {
	fields *object
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{fields: newObject()}
}

// ParseDocument decodes a config file. The top level must be a JSON object.
func ParseDocument(data []byte) (*Document, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	fields, kind, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: top level must be an object, got %s", ErrInvalidDocument, kind)
	}
	return &Document{fields: fields}, nil
}

// LoadDocument reads path. A missing file yields an empty document and
// exists=false.
func LoadDocument(path string) (doc *Document, exists bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDocument(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	doc, err = ParseDocument(data)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	return doc, true, nil
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return d.fields.Len()
}

// Servers decodes the server mapping. An absent or null mapping is empty.
func (d *Document) Servers() (map[string]json.RawMessage, error) {
	servers, err := d.servers()
	if err != nil {
		return nil, err
	}
	return servers.values, nil
}

func (d *Document) servers() (*object, error) {
	raw, ok := d.fields.Get(ServersKey)
	if !ok || isNull(raw) {
		return newObject(), nil
	}

	servers, _, err := decodeObject(raw)
	if err != nil || servers == nil {
		return nil, fmt.Errorf("%w: %q must be an object", ErrInvalidDocument, ServersKey)
	}
	return servers, nil
}

// Server returns the raw entry for name.
func (d *Document) Server(name string) (json.RawMessage, bool, error) {
	servers, err := d.servers()
	if err != nil {
		return nil, false, err
	}
	raw, ok := servers.Get(name)
	return raw, ok, nil
}

// PutResult describes what PutServer did.
type PutResult struct {
	// Replaced is true when an entry with the same name already existed.
	Replaced bool
	// Changed is false only when the existing entry was already identical.
	Changed bool
}

// PutServer inserts or overwrites mcpServers.<name> with fragment. Sibling
// entries and other top-level keys are left as they are; the old entry is
// replaced wholesale, never merged, and keeps its position.
func (d *Document) PutServer(name string, fragment any) (PutResult, error) {
	servers, err := d.servers()
	if err != nil {
		return PutResult{}, err
	}

	encoded, err := encode(fragment, false)
	if err != nil {
		return PutResult{}, fmt.Errorf("failed to encode %q: %w", name, err)
	}

	res := PutResult{Changed: true}
	if old, ok := servers.Get(name); ok {
		res.Replaced = true
		res.Changed = !sameJSON(old, encoded)
	}
	servers.Set(name, encoded)

	rawServers, err := encode(servers, false)
	if err != nil {
		return PutResult{}, fmt.Errorf("failed to encode %q: %w", ServersKey, err)
	}
	d.fields.Set(ServersKey, rawServers)
	return res, nil
}

// Marshal renders the document with two-space indentation and a trailing
// newline. Keys keep the order they were read in; new keys come last.
func (d *Document) Marshal() ([]byte, error) {
	return encode(d.fields, true)
}

func encode(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if indent {
		return buf.Bytes(), nil
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func sameJSON(a, b []byte) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return false
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
