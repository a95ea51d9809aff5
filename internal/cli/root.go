package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/meenmo/finlib/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is DefaultConfig, or the file named by --config once loaded.
	Config config.Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the finlib CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "finlib",
		Short: "Finance formulas and IRR solving",
		Long: `finlib computes internal rates of return, time value of money,
descriptive statistics and short-term funding costs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)
			if !isValidFormat(opts.Format) {
				return f.Fail(ExitCommandError, "invalid --format",
					fmt.Errorf("%q is not one of %v", opts.Format, ValidFormats))
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			if opts.ConfigPath == "" {
				return nil
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return f.Fail(ExitCommandError, "load config", err)
			}
			opts.Config = cfg
			opts.Logger.Debug("config loaded", "path", opts.ConfigPath, "method", cfg.Method)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "solver config file (.toml|.yaml)")

	cmd.AddCommand(NewIRRCommand(opts))
	cmd.AddCommand(NewTVMCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewMultiplierCommand(opts))
	cmd.AddCommand(NewFundingCommand(opts))

	return cmd
}

// newLogger writes text records to w: everything when verbose, warnings otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logger returns opts.Logger, or a discarding logger when a subcommand runs
// without the root's pre-run hook (as in tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
