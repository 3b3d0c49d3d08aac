// Package cli implements the roman command line.
package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/reoring/roman/i18n"
	"github.com/reoring/roman/internal/config"
	"github.com/reoring/roman/internal/logger"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// options carries global flags and the loaded configuration to subcommands.
type options struct {
	lang    string
	lower   bool
	verbose bool

	cfg config.Config
}

var (
	finalizeOnce sync.Once

	cleanupMu sync.Mutex
	cleanups  []func()
)

// deferCleanup queues f to run when the current command finishes,
// successfully or not.
func deferCleanup(f func()) {
	cleanupMu.Lock()
	cleanups = append(cleanups, f)
	cleanupMu.Unlock()
}

func runCleanups() {
	cleanupMu.Lock()
	fs := cleanups
	cleanups = nil
	cleanupMu.Unlock()
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i]()
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	finalizeOnce.Do(func() { cobra.OnFinalize(runCleanups) })
	cmd := &cobra.Command{
		Use:   "roman",
		Short: "Convert between integers and Roman numerals",
		Long: `roman converts integers in 1..3999 to canonical Roman numerals and back,
validates numerals strictly, and rewrites values inside JSON and YAML documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&o.lang, "lang", "", "message language (en, ja); overrides ROMAN_LANG")
	cmd.PersistentFlags().BoolVar(&o.lower, "lower", false, "print numerals in lowercase; overrides ROMAN_LOWERCASE")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log debug events to stderr")

	cmd.AddCommand(
		newEncodeCmd(o),
		newDecodeCmd(o),
		newValidateCmd(o),
		newTableCmd(o),
		newSchemaCmd(o),
		newConvertCmd(o),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = o.lang
	}
	if flags.Changed("lower") {
		cfg.Lowercase = o.lower
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	o.cfg = cfg

	i18n.SetLanguage(cfg.Lang)
	deferCleanup(func() { i18n.SetLanguage("en") })
	cleanup, err := logger.Setup(logger.Config{Level: cfg.LogLevel, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	deferCleanup(cleanup)
	logger.L().Debug("command.start", "command", cmd.CommandPath(), "lang", cfg.Lang)
	return nil
}

// numeral applies the configured letter case.
func (o *options) numeral(s string) string {
	if o.cfg.Lowercase {
		return strings.ToLower(s)
	}
	return s
}
