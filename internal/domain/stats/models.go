package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ColumnSeason names the column the combiner adds to every row.
const ColumnSeason = "SEASON"

// ErrUnknownKind is returned for target kinds without an endpoint.
var ErrUnknownKind = errors.New("unknown target kind")

// Kind selects which aggregate the stats endpoints describe.
type Kind string

const (
	KindPlayers Kind = "players"
	KindTeams   Kind = "teams"
)

// Kinds lists every supported target kind in display order.
func Kinds() []Kind {
	return []Kind{KindPlayers, KindTeams}
}

// ParseKind maps a literal such as "players" to its Kind.
func ParseKind(raw string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, raw, kindList())
}

func kindList() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// Table is a column-named row set. Cells hold nil, string, bool, json.Number, int or float64.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// SeasonTable ties one season's table to its start year.
type SeasonTable struct {
	Year  int
	Table Table
}
