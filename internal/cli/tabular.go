package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schema-bridge/schema"
	"schema-bridge/tabular"
)

func newTabularCommand(a *app) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tabular <record-schema>",
		Short: "Convert a canonical record schema into a tabular schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			rec, err := schema.ParseRecord(data)
			if err != nil {
				return err
			}

			ts := &tabular.Schema{Fields: a.converter().ToTabular(rec, a.cfg.Exclude...)}

			var out []byte

			switch format {
			case "json":
				out, err = tabular.MarshalJSON(ts)
			case "yaml":
				out, err = tabular.Marshal(ts)
			default:
				return fmt.Errorf("unknown format %q, expected json or yaml", format)
			}

			if err != nil {
				return err
			}

			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema to a file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringSlice("exclude", nil, "field names to leave out at every depth")

	return cmd
}
