package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

// ReadCSV loads a file written by CSVWriter. Cells come back as strings.
func ReadCSV(path string) (stats.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return stats.Table{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return stats.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return stats.Table{}, fmt.Errorf("read %s: missing header row", path)
	}

	rows := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		rows = append(rows, row)
	}
	return stats.Table{Columns: records[0], Rows: rows}, nil
}
