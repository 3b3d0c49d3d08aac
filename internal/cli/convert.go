package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/roman"
	"github.com/reoring/roman/internal/logger"
	"github.com/reoring/roman/transcode"
)

type convertFlags struct {
	to       string
	paths    []string
	all      bool
	format   string
	failFast bool
	indent   int
}

func newConvertCmd(o *options) *cobra.Command {
	f := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [FILE|-]",
		Short: "Rewrite numerals or integers inside a JSON or YAML document",
		Long: `Reads a JSON or YAML document from FILE (or stdin) and converts the values
selected by --path (JSON Pointers, "*" matches any key or index) or, with --all,
every eligible scalar. The result is written to stdout.`,
		Example: `  roman convert --to int --path /edition game.json
  roman convert --to roman --all --format yaml < kings.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, o, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.to, "to", "", "target representation: roman or int")
	fl.StringArrayVar(&f.paths, "path", nil, "JSON Pointer of a value to convert (repeatable)")
	fl.BoolVar(&f.all, "all", false, "convert every eligible scalar")
	fl.StringVar(&f.format, "format", "", "document format: json or yaml (default: from file extension, else json)")
	fl.BoolVar(&f.failFast, "fail-fast", false, "stop at the first issue")
	fl.IntVar(&f.indent, "indent", 0, "indent JSON output by this many spaces")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runConvert(cmd *cobra.Command, o *options, f *convertFlags, args []string) error {
	dir, ok := transcode.ParseDirection(f.to)
	if !ok {
		return fmt.Errorf("unknown --to %q (want roman or int)", f.to)
	}
	if len(f.paths) == 0 && !f.all {
		return errors.New("nothing to convert: pass --path or --all")
	}
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	format, err := detectFormat(f.format, name)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, name, o.cfg.MaxBytes)
	if err != nil {
		return err
	}

	opt := transcode.Options{
		Direction: dir,
		Paths:     f.paths,
		All:       f.all,
		Lowercase: o.cfg.Lowercase,
		FailFast:  f.failFast,
		MaxBytes:  o.cfg.MaxBytes,
	}
	if f.indent > 0 {
		opt.Indent = strings.Repeat(" ", f.indent)
	}

	logger.L().Debug("convert.start", "input", name, "format", format, "to", dir.String(), "paths", len(f.paths), "all", f.all)
	var out []byte
	switch format {
	case "yaml":
		out, err = transcode.YAML(cmd.Context(), data, opt)
	default:
		out, err = transcode.JSON(cmd.Context(), data, opt)
	}
	if err != nil {
		if iss, ok := roman.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", it.Path, it.Message)
			}
			logger.L().Debug("convert.failed", "input", name, "issues", len(iss))
			return fmt.Errorf("convert %s: %d issue(s): %w", name, len(iss), err)
		}
		return fmt.Errorf("convert %s: %w", name, err)
	}

	w := cmd.OutOrStdout()
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if format == "json" {
		fmt.Fprintln(w)
	}
	logger.L().Debug("convert.done", "input", name, "bytes", len(out))
	return nil
}

func detectFormat(flag, name string) (string, error) {
	switch strings.ToLower(flag) {
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "":
	default:
		return "", fmt.Errorf("unknown --format %q (want json or yaml)", flag)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "json", nil
}

// readInput reads at most limit+1 bytes so oversized inputs are still
// reported by the transcoder's size check.
func readInput(cmd *cobra.Command, name string, limit int64) ([]byte, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
