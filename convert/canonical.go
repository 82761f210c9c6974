package convert

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schema-bridge/diagnostic"
	"schema-bridge/internal/common"
	"schema-bridge/primitive"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

// Converter translates between tabular and canonical schemas.
// It holds no state besides its configuration and is safe for concurrent use.
type Converter struct {
	cfg Config
}

// NewConverter creates a converter. Empty names in cfg fall back to DefaultConfig.
func NewConverter(cfg Config) *Converter {
	return &Converter{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// ToCanonical builds the root record for a tabular field list. The first field
// with an unknown type name aborts the conversion with a diagnostic.KindSchemaType
// error located at that field.
func (c *Converter) ToCanonical(fields []tabular.Field) (*schema.Record, error) {
	converted, err := c.fields(fields, c.cfg.RootNamespace, nil)
	if err != nil {
		return nil, err
	}

	return schema.NewRecord(c.cfg.RootName, c.cfg.RootNamespace, "", converted...)
}

func (c *Converter) fields(fields []tabular.Field, namespace string, parent []string) ([]schema.Field, error) {
	out := make([]schema.Field, 0, len(fields))

	for _, f := range fields {
		path := append(parent[:len(parent):len(parent)], f.Name)

		s, err := c.field(f, namespace, path)
		if err != nil {
			return nil, err
		}

		out = append(out, schema.Field{Name: f.Name, Schema: s, Doc: f.Description})
	}

	return out, nil
}

func (c *Converter) field(f tabular.Field, namespace string, path []string) (schema.Schema, error) {
	kind, err := primitive.FromTabular(f.Type)
	if err != nil {
		var de *diagnostic.Error
		if errors.As(err, &de) {
			return nil, de.WithPath(path)
		}

		return nil, err
	}

	mode := f.Mode.Normalize()

	if kind == primitive.KindRecord {
		childNamespace := namespace + "." + strings.ToLower(f.Name)

		nested, err := c.fields(f.Fields, childNamespace, path)
		if err != nil {
			return nil, err
		}

		rec, err := schema.NewRecord(common.Capitalize(f.Name), childNamespace, "", nested...)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", diagnostic.FormatPath(path), err)
		}

		switch mode {
		case tabular.ModeRepeated:
			return &schema.Array{Items: rec}, nil
		case tabular.ModeNullable:
			return schema.NewOptional(rec), nil
		default:
			return rec, nil
		}
	}

	leaf := schema.NewLeaf(kind)

	// null is already optional; a [null, null] union is not a valid schema
	if kind == primitive.KindNull {
		return leaf, nil
	}

	switch mode {
	case tabular.ModeNullable:
		return schema.NewOptional(leaf), nil
	case tabular.ModeRepeated:
		if c.cfg.RepeatedLeafArrays {
			return &schema.Array{Items: leaf}, nil
		}

		Logger().Debug("repeated leaf converted to a single value",
			zap.String("field", diagnostic.FormatPath(path)),
			zap.String("type", f.Type))

		return leaf, nil
	default:
		return leaf, nil
	}
}
