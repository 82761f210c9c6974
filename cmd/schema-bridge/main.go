// Package main provides the CLI entrypoint for schema-bridge.
//
// schema-bridge is a schema translation tool that:
//   - Converts mode-annotated tabular schemas into canonical record schemas
//   - Writes record schemas back as tabular field lists
//   - Decodes loosely typed JSON or YAML payloads against a record schema
//   - Maps decoded values to table rows
package main

import (
	"os"

	"schema-bridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
