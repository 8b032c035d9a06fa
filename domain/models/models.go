package models

// Table is an in-memory tabular dataset: named columns over rows of raw text
// cells. All rows have exactly len(Headers) cells, header names are unique
// and keep their source order.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// ColumnIndex returns the position of a named column, -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// ColumnCells returns the raw cells of a named column in row order.
func (t *Table) ColumnCells(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	cells := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells = append(cells, row[idx])
	}
	return cells
}

// ColumnStat is the descriptive summary of one numeric column. Count is the
// number of non-missing cells; the float fields are NaN when Count is too
// small to define them.
type ColumnStat struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// Profile is a derived, read-only snapshot of a Table. NumericColumns and
// CategoricalColumns partition the header set and keep header order.
type Profile struct {
	TotalRows          int
	TotalColumns       int
	NumericColumns     []string
	CategoricalColumns []string
	MissingValues      map[string]int
	Stats              map[string]ColumnStat
}

func (p *Profile) IsNumericColumn(name string) bool {
	for _, c := range p.NumericColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Chart is a rendered PNG image plus its title. Produced once, never mutated.
type Chart struct {
	Title  string
	PNG    []byte
	Width  int
	Height int
}
