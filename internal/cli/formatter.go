package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirnuke/internal/dirnuke"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs a report in JSON format.
func PrintJSON(report *dirnuke.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// FinishedLine is the one-line summary of a report.
func FinishedLine(report *dirnuke.Report) string {
	return fmt.Sprintf("Finished, %s total (%d files ok, %d files/dirs failed)",
		humanize.IBytes(uint64(report.Total.Bytes)), //nolint:gosec // Bytes is always positive
		report.Total.Succeeded, report.Total.Failed)
}

// PrintTable outputs a report in human-readable table format.
func PrintTable(report *dirnuke.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nRoots:\t\t\t")

	for i, root := range report.Roots {
		fmt.Fprintf(w, "  %d) '%s'\t%s\t%d ok\t%d failed\n",
			i+1, root.Root, humanize.IBytes(uint64(root.Bytes)), //nolint:gosec // Bytes is always positive
			root.Succeeded, root.Failed)
	}

	fmt.Fprintf(w, "\n%s: %s\n", phaseStyle(report.Phase, writer).Render(report.Phase.Label()), FinishedLine(report))
	fmt.Fprintf(w, "Elapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
