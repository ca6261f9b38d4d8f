package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirnuke/internal/dirnuke"
	"github.com/idelchi/dirnuke/internal/roots"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && isatty.IsTerminal(file.Fd())
}

// phases returns the requested phases in execution order.
func phases(options Options) []dirnuke.Phase {
	var requested []dirnuke.Phase

	if options.Scan {
		requested = append(requested, dirnuke.Scan)
	}

	if options.Nuke {
		requested = append(requested, dirnuke.Nuke)
	}

	return requested
}

func logic(options Options, stdout, stderr io.Writer) error {
	raw := options.Paths

	if options.Config != "" {
		loaded, err := roots.Load(options.Config)
		if err != nil {
			return err
		}

		raw = loaded
	}

	notices := stdout

	switch {
	case options.Quiet:
		notices = io.Discard
	case options.Output == "json":
		// Keep stdout parseable.
		notices = stderr
	}

	validated, err := roots.Validate(raw, notices)
	if err != nil {
		return err
	}

	fmt.Fprintf(notices, "%d valid entries detected in config\n", len(validated))

	enableProgress := !options.Quiet &&
		options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, hideCursor)
		defer fmt.Fprint(stderr, showCursor)
	}

	ctx := context.Background()

	for _, phase := range phases(options) {
		display := newProgressLine(phase, stderr, stderr, enableProgress, options.ProgressInterval)

		report, err := dirnuke.Run(ctx, dirnuke.Options{
			Roots: validated,
			Phase: phase,
			Debug: options.Debug,
		}, display)
		if err != nil {
			return err
		}

		if options.Quiet {
			continue
		}

		switch options.Output {
		case "json":
			err = PrintJSON(report, stdout)
		default:
			err = PrintTable(report, stdout)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
