// Package export writes per-client summaries to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"hubsum/internal/cli"
	"hubsum/internal/model"
)

// Header is the fixed CSV header row.
var Header = []string{"client", "tracked_seconds", "tracked_hours", "keyboard", "mouse", "input_tracked"}

// WriteCSV writes the report as CSV in first-seen client order.
func WriteCSV(w io.Writer, report *model.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, cs := range report.Summaries() {
		rec := []string{
			cs.Client,
			strconv.FormatInt(cs.TrackedSecs, 10),
			cli.FormatHours(cs.TrackedHours),
			strconv.FormatInt(cs.Keyboard, 10),
			strconv.FormatInt(cs.Mouse, 10),
			strconv.FormatInt(cs.InputTracked, 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: writing row for %s: %w", cs.Client, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the report to path, replacing any previous export.
func WriteFile(path string, report *model.Report) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := WriteCSV(f, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", path, err)
	}
	return nil
}
