package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"schema-bridge/convert"
	"schema-bridge/schema"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. SCHEMA_BRIDGE_ROOT_NAME or SCHEMA_BRIDGE_LOG_LEVEL.
const EnvPrefix = "SCHEMA_BRIDGE"

// FileName is the configuration file looked up in the working directory.
const FileName = "schema-bridge"

// Config represents the schema-bridge configuration
type Config struct {
	RootName           string    `mapstructure:"root_name"`
	RootNamespace      string    `mapstructure:"root_namespace"`
	RepeatedLeafArrays bool      `mapstructure:"repeated_leaf_arrays"`
	Exclude            []string  `mapstructure:"exclude"`
	Log                LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"root-name":            "root_name",
	"root-namespace":       "root_namespace",
	"repeated-leaf-arrays": "repeated_leaf_arrays",
	"exclude":              "exclude",
	"log-level":            "log.level",
}

// Load reads the configuration. Precedence, highest first: flags that were set,
// environment, the file at path (or schema-bridge.yaml in the working directory
// when path is empty), defaults. A missing default file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("root_name", schema.RootName)
	v.SetDefault("root_namespace", schema.RootNamespace)
	v.SetDefault("repeated_leaf_arrays", false)
	v.SetDefault("exclude", []string{})
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Converter returns the converter settings of the configuration.
func (c *Config) Converter() convert.Config {
	return convert.Config{
		RootName:           c.RootName,
		RootNamespace:      c.RootNamespace,
		RepeatedLeafArrays: c.RepeatedLeafArrays,
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if strings.Contains(cfg.RootName, ".") {
		return fmt.Errorf("root_name must be a simple name, got: %s", cfg.RootName)
	}

	if strings.HasPrefix(cfg.RootNamespace, ".") || strings.HasSuffix(cfg.RootNamespace, ".") {
		return fmt.Errorf("root_namespace must not start or end with '.', got: %s", cfg.RootNamespace)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got: %s", cfg.Log.Level)
	}

	return nil
}
