package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-bridge/primitive"
)

func TestParse_RenderRoundTrip(t *testing.T) {
	rec := sampleRecord(t)

	data, err := Render(rec)
	require.NoError(t, err)

	parsed, err := ParseRecord(data)
	require.NoError(t, err)
	assert.Equal(t, rec, parsed)
}

func TestParse_References(t *testing.T) {
	data := `{
	  "type": "record", "name": "Root",
	  "fields": [
	    {"name": "status", "type": {"type": "enum", "name": "Status", "symbols": ["A", "B"]}},
	    {"name": "other", "type": ["null", "Status"]},
	    {"name": "count", "type": {"type": "int"}},
	    {"name": "node", "type": {"type": "record", "name": "com.acme.Node", "fields": [
	      {"name": "next", "type": ["null", "Node"]}
	    ]}}
	  ]
	}`

	rec, err := ParseRecord([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "root.Root", rec.FullName())

	status := rec.Fields[0].Schema.(*Leaf)
	assert.Equal(t, "root.Status", status.FullName())

	other := rec.Fields[1].Schema.(*Union)
	assert.Same(t, status, other.Members[1])

	assert.Equal(t, NewLeaf(primitive.KindLong), rec.Fields[2].Schema)

	node := rec.Fields[3].Schema.(*Record)
	assert.Equal(t, "com.acme.Node", node.FullName())

	next := node.Fields[0].Schema.(*Union)
	assert.Same(t, node, next.Members[1], "recursive reference resolves in the record's namespace")
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"unknown ref":     `{"type": "record", "name": "R", "fields": [{"name": "a", "type": "Missing"}]}`,
		"no type":         `{"name": "R"}`,
		"nameless record": `{"type": "record", "fields": []}`,
		"duplicate type":  `{"type": "record", "name": "R", "fields": [{"name": "a", "type": {"type": "record", "name": "R", "fields": []}}]}`,
		"bad fields":      `{"type": "record", "name": "R", "fields": "a"}`,
		"duplicate field": `{"type": "record", "name": "R", "fields": [{"name": "a", "type": "long"}, {"name": "a", "type": "long"}]}`,
		"bad symbol":      `{"type": "enum", "name": "E", "symbols": [1]}`,
		"number":          `42`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseRecord_RequiresRecord(t *testing.T) {
	_, err := ParseRecord([]byte(`"long"`))
	assert.ErrorContains(t, err, "expected record")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "root.avsc")

	data, err := RenderIndent(sampleRecord(t), "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	rec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(t), rec)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.avsc"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
