package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-bridge/schema"
	"schema-bridge/tabular"
)

func newCanonicalCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "canonical <table-schema>",
		Short: "Convert a tabular schema into a canonical record schema",
		Long: `Read a tabular schema (JSON or YAML; a field list, {"fields": [...]} or a
table resource with a "schema" member) and print the canonical record schema.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			ts, err := tabular.Parse(data)
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

			out, err := schema.RenderIndent(rec, "", "  ")
			if err != nil {
				return err
			}

			a.logger.Info("schema converted",
				zap.String("record", rec.FullName()),
				zap.Int("fields", len(rec.Fields)))

			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema to a file instead of stdout")
	cmd.Flags().String("root-name", "", "name of the top record (default Root)")
	cmd.Flags().String("root-namespace", "", "namespace of the top record (default root)")
	cmd.Flags().Bool("repeated-leaf-arrays", false, "convert REPEATED scalar columns to arrays")

	return cmd
}
