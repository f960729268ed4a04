package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

const fileMode = 0o644

// CSVWriter persists tables as comma-separated text with a single header row.
type CSVWriter struct{}

// NewCSVWriter constructs a CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write replaces path with the table's CSV rendering. The parent directory must
// already exist. Data goes to a temp file beside the target and is renamed into
// place, so a failed write leaves any existing file untouched.
func (w *CSVWriter) Write(path string, table stats.Table) (err error) {
	if path == "" {
		return errors.New("output path required")
	}
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, table); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Encode writes the header row followed by every table row.
func Encode(out io.Writer, table stats.Table) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = stats.FormatValue(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
