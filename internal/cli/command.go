package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirsize/internal/config"
	"github.com/idelchi/dirsize/internal/dirsize"
	"github.com/idelchi/dirsize/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options holds the resolved settings for one invocation.
type options struct {
	// Path is the directory to analyze.
	Path string
	// Count is the number of largest files to display.
	Count int
	// Output represents output format (table or json).
	Output string
	// KeepGoing skips unreadable entries instead of aborting.
	KeepGoing bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Integration indicates whether to output integration script.
	Integration bool
	// ConfigPath is the YAML config file to load defaults from.
	ConfigPath string
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command(os.Stdout, os.Stderr).Execute()
}

// Command builds the root command writing its report to stdout and
// diagnostics to stderr.
func (c CLI) Command(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dirsize [flags] <directory> [count]",
		Short: "Report the total size of a directory tree and its largest files",
		Long: heredoc.Doc(`
			dirsize walks a directory tree, reports the total space used by its files
			and lists the largest ones with their absolute paths.

			Positional Arguments:
			  directory              Directory to analyze.
			  count                  Number of largest files to list (default 20).

			Symbolic links are followed. Every directory is entered at most once,
			so links pointing back into the tree are not counted twice.

			Defaults for count, output, keep-going and debug can be set in a YAML
			config file; flags and arguments take precedence.
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(stdout, rendered)

				return nil
			}

			if err := opts.resolve(cmd.Flags(), args); err != nil {
				return err
			}

			return logic(opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVarP(&opts.KeepGoing, "keep-going", "k", false, "Skip unreadable entries instead of aborting")
	flags.StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath(), "Path to YAML config file")
	flags.BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&opts.Integration, "init", "i", false, "Output init script for shell usage")

	return cmd
}

// resolve validates the positional arguments and merges config file defaults
// into the options. Flags set on the command line win over the config file.
func (o *options) resolve(flags *pflag.FlagSet, args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return &ExitError{Code: 0, Err: errors.New("invalid number of inputs: expected <directory> [count]")}
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	if !flags.Changed("output") {
		o.Output = cfg.Output
	}

	if !flags.Changed("keep-going") {
		o.KeepGoing = cfg.KeepGoing
	}

	if !flags.Changed("debug") {
		o.Debug = cfg.Debug
	}

	if !slices.Contains(allowedOutputs, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowedOutputs)
	}

	o.Path = filepath.Clean(args[0])

	if err := dirsize.ValidateRoot(o.Path); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("invalid directory: %w", err)}
	}

	o.Count = cfg.Count

	if len(args) == 2 {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("invalid number of files %q: the second argument should be an integer", args[1])}
		}

		if count < 0 {
			return &ExitError{Code: 1, Err: fmt.Errorf("invalid number of files %d: must not be negative", count)}
		}

		o.Count = count
	}

	return nil
}
