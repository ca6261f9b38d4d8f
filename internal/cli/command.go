package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirnuke/internal/scaffold"
)

// DefaultProgressInterval is the minimum time between two redraws of the progress line.
const DefaultProgressInterval = 100 * time.Millisecond

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command line.
type Options struct {
	// Scan computes the size of all roots.
	Scan bool
	// Nuke removes all files below all roots.
	Nuke bool
	// Config is the path to a roots file.
	Config string
	// Paths are roots given directly on the command line.
	Paths []string
	// Quiet suppresses everything but errors.
	Quiet bool
	// Output represents output format (table or json).
	Output string
	// ProgressInterval limits how often the progress line is redrawn.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Init indicates whether to print an example roots file and exit.
	Init bool
}

var allowedOutputs = []string{"table", "json"} //nolint:gochecknoglobals // Config constant

// registerFlags binds all flags to options.
func registerFlags(flags *pflag.FlagSet, options *Options) {
	flags.BoolVarP(&options.Scan, "scan", "s", false, "Scan all roots and compute their size")
	flags.BoolVarP(&options.Nuke, "nuke", "n", false, "Remove every file below all roots, keeping directories")
	flags.StringVarP(&options.Config, "config", "c", "", "Roots file, one directory per line. Either this or paths must be given")
	flags.BoolVarP(&options.Quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.DurationVar(&options.ProgressInterval, "progress-interval", DefaultProgressInterval,
		"Minimum time between progress updates")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.BoolVarP(&options.Init, "init", "i", false, "Print an example roots file and exit")

	flags.SortFlags = false
}

// check rejects inconsistent flag combinations.
func (o Options) check() error {
	if !o.Scan && !o.Nuke {
		return errors.New("at least one of --scan or --nuke is required")
	}

	if o.Config != "" && len(o.Paths) > 0 {
		return errors.New("--config and paths are mutually exclusive")
	}

	if o.Config == "" && len(o.Paths) == 0 {
		return errors.New("either --config or at least one path is required")
	}

	if !slices.Contains(allowedOutputs, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowedOutputs)
	}

	if o.ProgressInterval < 0 {
		return errors.New("progress interval cannot be negative")
	}

	return nil
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:   "dirnuke [flags] [path...]",
		Short: "Scan or empty many directory trees at once",
		Long: heredoc.Doc(`
			dirnuke walks a set of directories concurrently, one worker per directory,
			and either sums up the size of their files (--scan) or removes them (--nuke).

			Directories themselves are kept, symbolic links are neither followed nor removed.
			Both actions may be given together, the scan then runs before the nuke.

			The directories are given as positional arguments or listed in a file passed
			with --config, one per line. Roots must not be nested.
		`),
		Example: heredoc.Doc(`
			dirnuke --scan ~/.cache/go-build /tmp/build
			dirnuke --scan --nuke --config roots.txt
			dirnuke --init > roots.txt
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if options.Init {
				rendered, err := scaffold.Render()
				if err != nil {
					return fmt.Errorf("rendering roots file: %w", err)
				}

				fmt.Fprint(cmd.OutOrStdout(), rendered)

				return nil
			}

			options.Paths = args

			if err := options.check(); err != nil {
				return err
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerFlags(cmd.Flags(), &options)

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
