package decode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"schema-bridge/diagnostic"
	"schema-bridge/schema"
)

// DecodeText parses a JSON or YAML document and decodes it against rec.
// Object keys may be left unquoted, e.g. {name: "x", age: 3}.
// Unparsable text, or a document that is not a mapping, fails with
// diagnostic.KindMalformedInput.
func DecodeText(rec *schema.Record, data []byte) (*Record, error) {
	payload, err := ParsePayload(data)
	if err != nil {
		return nil, err
	}

	return Decode(rec, payload)
}

// ParsePayload parses a JSON or YAML mapping into untyped values.
func ParsePayload(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostic.MalformedInput(err)
	}

	m, ok := asMap(doc)
	if !ok {
		return nil, diagnostic.MalformedInput(fmt.Errorf("payload is %s, expected an object", describeDoc(doc)))
	}

	return m, nil
}

func describeDoc(doc any) string {
	switch doc.(type) {
	case nil:
		return "empty"
	case []any:
		return "a list"
	default:
		return "a scalar"
	}
}
