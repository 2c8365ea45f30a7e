package model

// Table is raw tabular data as read from a source: one header row and
// string cells. Rows may be shorter than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at row r, column c, or "" when the row is short.
func (t *Table) Cell(r, c int) string {
	row := t.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}
