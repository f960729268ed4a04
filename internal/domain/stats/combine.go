package stats

// Combine stacks season tables in order, tagging every row with its season.
// Columns are the union of all inputs in order of first appearance; cells for
// columns a season lacks are nil. With no seasons the result has only the
// SEASON column and no rows.
func Combine(seasons []SeasonTable) Table {
	columns := []string{}
	positions := map[string]int{}
	addColumn := func(name string) {
		if _, ok := positions[name]; ok {
			return
		}
		positions[name] = len(columns)
		columns = append(columns, name)
	}

	tagged := make([]Table, 0, len(seasons))
	total := 0
	for _, s := range seasons {
		t := withSeason(s.Table, s.Year)
		for _, c := range t.Columns {
			addColumn(c)
		}
		tagged = append(tagged, t)
		total += t.Len()
	}
	addColumn(ColumnSeason)

	rows := make([][]any, 0, total)
	for _, t := range tagged {
		for _, row := range t.Rows {
			out := make([]any, len(columns))
			for i, c := range t.Columns {
				if i < len(row) {
					out[positions[c]] = row[i]
				}
			}
			rows = append(rows, out)
		}
	}

	return Table{Columns: columns, Rows: rows}
}

// withSeason copies t with a SEASON column set to year, replacing an existing one in place.
func withSeason(t Table, year int) Table {
	idx := t.ColumnIndex(ColumnSeason)
	columns := append([]string(nil), t.Columns...)
	if idx < 0 {
		idx = len(columns)
		columns = append(columns, ColumnSeason)
	}

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]any, len(columns))
		copy(out, row)
		out[idx] = year
		rows[i] = out
	}
	return Table{Columns: columns, Rows: rows}
}
