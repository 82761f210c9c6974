package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-bridge/decode"
	"schema-bridge/schema"
	"schema-bridge/tabular"
)

// schemaSource names where a command takes its record schema from.
type schemaSource struct {
	schemaPath string
	tablePath  string
}

func (s *schemaSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.schemaPath, "schema", "s", "", "canonical record schema file")
	cmd.Flags().StringVarP(&s.tablePath, "table", "t", "", "tabular schema file, converted before use")
	cmd.MarkFlagsMutuallyExclusive("schema", "table")
	cmd.MarkFlagsOneRequired("schema", "table")
}

// load returns the record schema and, when it came from a tabular schema, the
// tabular fields it was converted from.
func (s *schemaSource) load(a *app) (*schema.Record, []tabular.Field, error) {
	if s.schemaPath != "" {
		rec, err := schema.LoadFile(s.schemaPath)
		return rec, nil, err
	}

	ts, err := tabular.LoadFile(s.tablePath)
	if err != nil {
		return nil, nil, err
	}

	if err := tabular.Validate(ts.Fields).Error(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.tablePath, err)
	}

	rec, err := a.converter().ToCanonical(ts.Fields)
	if err != nil {
		return nil, nil, err
	}

	return rec, ts.Fields, nil
}

func newDecodeCommand(a *app) *cobra.Command {
	var (
		src    schemaSource
		dump   bool
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "decode <payload>",
		Short: "Decode a JSON or YAML payload against a record schema",
		Long: `Decode a JSON or YAML payload ("-" reads standard input) into a value that
conforms exactly to the record schema. Missing nullable fields become null,
unknown keys are dropped, and union members are resolved in declared order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := src.load(a)
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

			if verify {
				if err := encodeBinary(rec, value); err != nil {
					return err
				}

				a.logger.Info("decoded value encodes", zap.String("record", rec.FullName()))
			}

			if dump {
				spew.Fdump(cmd.OutOrStdout(), value)
				return nil
			}

			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}

			return writeOutput(cmd, "", out)
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "print the decoded value tree instead of JSON")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that the value encodes with an avro codec")
	cmd.Flags().String("root-name", "", "name of the top record when --table is used")
	cmd.Flags().String("root-namespace", "", "namespace of the top record when --table is used")
	cmd.Flags().Bool("repeated-leaf-arrays", false, "convert REPEATED scalar columns to arrays when --table is used")

	return cmd
}

// encodeBinary compiles rec and encodes value with the resulting codec.
func encodeBinary(rec *schema.Record, value *decode.Record) error {
	codec, err := schema.Codec(rec)
	if err != nil {
		return err
	}

	if _, err := codec.BinaryFromNative(nil, decode.Native(value)); err != nil {
		return errors.Join(fmt.Errorf("decoded value does not encode as %s", rec.FullName()), err)
	}

	return nil
}
