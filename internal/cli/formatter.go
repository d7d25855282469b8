package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// unitBase is the scaling factor between consecutive size units.
const unitBase = 1024

//nolint:gochecknoglobals // Config constant
var units = []string{"B", "KB", "MB", "GB"}

// FormatSize renders size in the largest unit in which the scaled value stays
// below 1024, capped at GB, as a 7-wide number with two decimals and the unit
// right-aligned in two columns (e.g. " 512.00 MB", "  10.00  B").
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0

	for scaled := size; scaled >= unitBase && unit < len(units)-1; scaled /= unitBase {
		value /= unitBase
		unit++
	}

	return fmt.Sprintf("%7.2f %2s", value, units[unit])
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *dirsize.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the total followed by one line per ranked file:
// the formatted size, a tab and the absolute path.
func PrintTable(report *dirsize.Report, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Total space used: %s\n", FormatSize(report.TotalBytes)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Largest %d files:\n", report.TopN); err != nil {
		return err
	}

	for _, f := range report.TopFiles {
		if _, err := fmt.Fprintf(writer, "%s\t%s\n", FormatSize(f.Size), f.Path); err != nil {
			return err
		}
	}

	return nil
}
