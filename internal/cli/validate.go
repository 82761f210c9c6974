package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"schema-bridge/schema"
	"schema-bridge/tabular"
)

const (
	kindTabular   = "tabular"
	kindCanonical = "canonical"
)

func newValidateCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "validate <schema>",
		Short: "Check a tabular or canonical schema",
		Long: `Check a schema file and report every problem found. Tabular schemas are also
converted, and the result is compiled by an avro codec. Files ending in .avsc
are read as canonical schemas unless --kind says otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			k := kind
			if k == "" {
				k = kindTabular
				if strings.EqualFold(filepath.Ext(path), ".avsc") {
					k = kindCanonical
				}
			}

			var err error

			switch k {
			case kindTabular:
				err = a.validateTabular(cmd, path)
			case kindCanonical:
				err = validateCanonical(path)
			default:
				return fmt.Errorf("unknown schema kind %q, expected %s or %s", k, kindTabular, kindCanonical)
			}

			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "schema kind: tabular or canonical")

	return cmd
}

func (a *app) validateTabular(cmd *cobra.Command, path string) error {
	ts, err := tabular.LoadFile(path)
	if err != nil {
		return err
	}

	diags := tabular.Validate(ts.Fields)
	printDiagnostics(cmd.ErrOrStderr(), diags)

	if err := diags.Error(); err != nil {
		return err
	}

	rec, err := a.converter().ToCanonical(ts.Fields)
	if err != nil {
		return err
	}

	return schema.Verify(rec)
}

func validateCanonical(path string) error {
	rec, err := schema.LoadFile(path)
	if err != nil {
		return err
	}

	return schema.Verify(rec)
}
