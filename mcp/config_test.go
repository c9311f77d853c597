package mcp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantLen int
	}{
		{name: "empty object", input: `{}`, wantLen: 0},
		{name: "other keys", input: `{"theme": "dark", "mcpServers": {}}`, wantLen: 2},
		{name: "syntax error", input: `{"mcpServers": `, wantErr: ErrParse},
		{name: "empty file", input: ``, wantErr: ErrParse},
		{name: "trailing garbage", input: `{} {}`, wantErr: ErrParse},
		{name: "array", input: `[1, 2]`, wantErr: ErrInvalidDocument},
		{name: "string", input: `"hello"`, wantErr: ErrInvalidDocument},
		{name: "null", input: `null`, wantErr: ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, doc.Len())
		})
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	doc, exists, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, doc.Len())
}

func TestLoadDocument_Directory(t *testing.T) {
	_, _, err := LoadDocument(t.TempDir())

	assert.ErrorIs(t, err, ErrRead)
}

func TestLoadDocument_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, exists, err := LoadDocument(path)

	assert.True(t, exists)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), path)
}

func TestServers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"absent", `{}`, 0, false},
		{"null", `{"mcpServers": null}`, 0, false},
		{"populated", `{"mcpServers": {"a": {}, "b": {"x": 1}}}`, 2, false},
		{"array", `{"mcpServers": []}`, 0, true},
		{"string", `{"mcpServers": "oops"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.input))
			require.NoError(t, err)

			servers, err := doc.Servers()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			require.NoError(t, err)
			assert.Len(t, servers, tt.want)
		})
	}
}

func TestPutServer_InsertIntoEmpty(t *testing.T) {
	doc := NewDocument()

	res, err := doc.PutServer("wordpress", map[string]int{"a": 1})

	require.NoError(t, err)
	assert.False(t, res.Replaced)
	assert.True(t, res.Changed)
	assert.Equal(t, 1, doc.Len())

	raw, ok, err := doc.Server("wordpress")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a": 1}`, string(raw))
}

func TestPutServer_PreservesSiblingsAndTopLevel(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"theme": {"name": "dark", "size": 1.50},
		"mcpServers": {"other": {"foo": 1}, "wordpress": {"stale": true}}
	}`))
	require.NoError(t, err)

	res, err := doc.PutServer("wordpress", map[string]string{"url": "u"})
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.True(t, res.Changed)

	out, err := doc.Marshal()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, map[string]any{"name": "dark", "size": 1.5}, got["theme"])

	servers := got["mcpServers"].(map[string]any)
	assert.Equal(t, map[string]any{"foo": float64(1)}, servers["other"])
	// Overwritten wholesale, not merged.
	assert.Equal(t, map[string]any{"url": "u"}, servers["wordpress"])

	// Raw values survive as written.
	assert.Contains(t, string(out), "1.50")
}

func TestPutServer_Unchanged(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"mcpServers": {"wordpress": {"b": 2, "a": 1}}}`))
	require.NoError(t, err)

	res, err := doc.PutServer("wordpress", json.RawMessage(`{"b":2,"a":1}`))

	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.False(t, res.Changed)
}

func TestPutServer_InvalidServers(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"mcpServers": [1]}`))
	require.NoError(t, err)

	_, err = doc.PutServer("wordpress", map[string]int{})

	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestMarshal_Format(t *testing.T) {
	doc := NewDocument()
	_, err := doc.PutServer("wordpress", map[string]string{"url": "https://a.test/?x=1&y=<2>"})
	require.NoError(t, err)

	out, err := doc.Marshal()
	require.NoError(t, err)

	want := "{\n" +
		"  \"mcpServers\": {\n" +
		"    \"wordpress\": {\n" +
		"      \"url\": \"https://a.test/?x=1&y=<2>\"\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, string(out))
}

func TestMarshal_KeepsKeyOrder(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"zeta": 1, "alpha": 2, "mcpServers": {"q": {}, "c": {}}, "beta": 3}`))
	require.NoError(t, err)

	_, err = doc.PutServer("wordpress", map[string]int{"v": 1})
	require.NoError(t, err)
	out, err := doc.Marshal()
	require.NoError(t, err)

	assertOrder(t, string(out), `"zeta"`, `"alpha"`, `"mcpServers"`, `"q"`, `"c"`, `"wordpress"`, `"beta"`)
}

func TestPutServer_ReplacedEntryKeepsPosition(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"mcpServers": {"a": {}, "wordpress": {"old": true}, "z": {}}}`))
	require.NoError(t, err)

	_, err = doc.PutServer("wordpress", map[string]int{"v": 1})
	require.NoError(t, err)
	out, err := doc.Marshal()
	require.NoError(t, err)

	assertOrder(t, string(out), `"a"`, `"wordpress"`, `"z"`)
}

func TestPutServer_NewServersKeyGoesLast(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"theme": "dark", "editor": "vim"}`))
	require.NoError(t, err)

	_, err = doc.PutServer("wordpress", map[string]int{})
	require.NoError(t, err)
	out, err := doc.Marshal()
	require.NoError(t, err)

	assertOrder(t, string(out), `"theme"`, `"editor"`, `"mcpServers"`)
}

func TestParseDocument_DuplicateKeyLastWins(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())

	out, err := doc.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 3, "b": 2}`, string(out))
	assertOrder(t, string(out), `"a"`, `"b"`)
}

// assertOrder checks that each needle first appears after the previous one.
func assertOrder(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		idx := strings.Index(haystack, n)
		require.NotEqual(t, -1, idx, "%s missing from %s", n, haystack)
		assert.Greater(t, idx, last, "%s out of order in %s", n, haystack)
		last = idx
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	input := []byte(`{"z": 1, "a": {"y": [1, 2], "b": null}, "mcpServers": {"q": {}, "c": {}}}`)

	first, err := ParseDocument(input)
	require.NoError(t, err)
	a, err := first.Marshal()
	require.NoError(t, err)

	second, err := ParseDocument(a)
	require.NoError(t, err)
	b, err := second.Marshal()
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}
