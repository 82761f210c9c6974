package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"schema-bridge/decode"
	"schema-bridge/row"
)

func newRowCommand(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "row <payload>",
		Short: "Decode a payload and print it as a table row",
		Long: `Convert the tabular schema, decode the payload against the result and print
the row as JSON in the table store's export form: null columns are left out,
bytes are base64 and long timestamps are formatted as UTC text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schemaSource{tablePath: tablePath}

			rec, fields, err := src.load(a)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			value, err := decode.DecodeText(rec, data)
			if err != nil {
				return err
			}

			r, err := row.FromRecord(value, fields)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}

			return writeOutput(cmd, "", out)
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "tabular schema file")
	_ = cmd.MarkFlagRequired("table")
	cmd.Flags().String("root-name", "", "name of the top record")
	cmd.Flags().String("root-namespace", "", "namespace of the top record")
	cmd.Flags().Bool("repeated-leaf-arrays", false, "convert REPEATED scalar columns to arrays")

	return cmd
}
