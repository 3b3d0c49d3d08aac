package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/roman"
	js "github.com/reoring/roman/jsonschema"
)

func newTableCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the symbol table used by the encoder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range roman.Table() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", o.numeral(p.Symbol), p.Value)
			}
			return nil
		},
	}
}

func newSchemaCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:       "schema numeral|integer",
		Short:     "Print the JSON Schema of numerals or of encodable integers",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"numeral", "integer"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *js.Schema
				err error
			)
			switch args[0] {
			case "numeral":
				s, err = roman.NumeralSchema().JSONSchema()
				if s != nil {
					s.Title = "Roman numeral"
				}
			case "integer":
				s, err = roman.IntegerSchema().JSONSchema()
				if s != nil {
					s.Title = "Roman numeral value"
				}
			default:
				return fmt.Errorf("unknown schema %q (want numeral or integer)", args[0])
			}
			if err != nil {
				return fmt.Errorf("build schema: %w", err)
			}
			s.Schema = js.Draft
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
