package cli

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/roman"
	"github.com/reoring/roman/internal/logger"
)

func newEncodeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode N...",
		Short: "Print the Roman numeral of each integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				// json.Number keeps "4.0" and "1e3" from passing as integers.
				s, err := roman.EncodeValue(json.Number(strings.TrimSpace(arg)))
				if err != nil {
					logger.L().Debug("encode.failed", "input", arg, "code", roman.KindOf(err))
					return fmt.Errorf("encode %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.numeral(s))
			}
			return nil
		},
	}
}

func newDecodeCmd(o *options) *cobra.Command {
	var prefix bool
	cmd := &cobra.Command{
		Use:   "decode NUMERAL...",
		Short: "Print the integer value of each Roman numeral",
		Long: `Decodes canonical numerals in either letter case. With --prefix, only the
leading run of numeral letters is decoded and the remainder is printed after a tab.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if prefix {
					n, rest, err := roman.DecodePrefix(arg)
					if err != nil {
						return fmt.Errorf("decode %q: %w", arg, err)
					}
					fmt.Fprintf(out, "%d\t%s\n", n, rest)
					continue
				}
				n, err := roman.Decode(arg)
				if err != nil {
					logger.L().Debug("decode.failed", "input", arg, "code", roman.KindOf(err))
					return fmt.Errorf("decode %q: %w", arg, err)
				}
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefix, "prefix", false, "decode the leading numeral and print the rest")
	return cmd
}

func newValidateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate NUMERAL...",
		Short: "Report whether each argument is a canonical Roman numeral",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, arg := range args {
				verdict := "valid"
				if !roman.IsValid(arg) {
					verdict = "invalid"
					bad++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, verdict)
			}
			logger.L().Debug("validate.done", "inputs", len(args), "invalid", bad)
			if bad > 0 {
				return fmt.Errorf("%d of %d inputs are not valid numerals: %w", bad, len(args), roman.ErrFormat)
			}
			return nil
		},
	}
}
