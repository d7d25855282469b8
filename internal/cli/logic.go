package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func logic(options options, stdout, stderr io.Writer) error {
	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	scanOpts := dirsize.Options{Debug: options.Debug}

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		scanOpts.Progress = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %s files, %s",
				humanize.Comma(files), humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	if options.KeepGoing {
		scanOpts.OnError = func(err *dirsize.TraversalError) error {
			if enableProgress {
				fmt.Fprint(stderr, "\r\033[2K\r")
			}

			fmt.Fprintf(stderr, "warning: skipping %v\n", err)

			return nil
		}
	}

	result, err := dirsize.Scan(options.Path, scanOpts)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return fmt.Errorf("scanning %q: %w", options.Path, err)
	}

	root, err := filepath.Abs(options.Path)
	if err != nil {
		root = options.Path
	}

	report := result.Report(root, options.Count)

	switch options.Output {
	case "json":
		return PrintJSON(report, stdout)
	case "table":
		return PrintTable(report, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
