package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/annfilter"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// Logger returns a logger honoring the verbose flag.
func (o *RootOptions) Logger() *annfilter.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return annfilter.NewTextLogger(level)
}

// NewRootCommand creates the annfilter root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "annfilter",
		Short:         "Filter the annotation tables of single-cell expression datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewFilterCommand(opts))

	return cmd
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}
	return 0
}
