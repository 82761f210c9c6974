package convert

import (
	"schema-bridge/schema"
)

// Config controls naming and the treatment of repeated leaves.
type Config struct {
	// RootName names the top record.
	RootName string `mapstructure:"root_name" yaml:"root_name"`
	// RootNamespace is the namespace of the top record and the prefix of every
	// nested record namespace.
	RootNamespace string `mapstructure:"root_namespace" yaml:"root_namespace"`
	// RepeatedLeafArrays wraps REPEATED scalar columns in an array. Off by default,
	// in which case they convert to a single value.
	RepeatedLeafArrays bool `mapstructure:"repeated_leaf_arrays" yaml:"repeated_leaf_arrays"`
}

// DefaultConfig returns the configuration producing the "Root" record in the
// "root" namespace.
func DefaultConfig() Config {
	return Config{
		RootName:      schema.RootName,
		RootNamespace: schema.RootNamespace,
	}
}

func (c Config) withDefaults() Config {
	if c.RootName == "" {
		c.RootName = schema.RootName
	}

	if c.RootNamespace == "" {
		c.RootNamespace = schema.RootNamespace
	}

	return c
}
