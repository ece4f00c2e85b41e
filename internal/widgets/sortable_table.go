package widgets

import (
	"sort"
)

// Sortable table behaviour: one column sorted at a time, toggled
// none -> ascending -> descending -> ascending. Rows order by full string
// comparison of the cell's visible text unless the cell carries an explicit
// sort override (used for dates and sizes).

type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Toggled returns the direction a column takes when its header is clicked.
func (d SortDirection) Toggled() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

type Column struct {
	Label    string
	Sortable bool
}

type Cell struct {
	Text string
	// SortValue overrides Text for ordering when non-empty.
	SortValue string
}

func (c Cell) sortKey() string {
	if c.SortValue != "" {
		return c.SortValue
	}
	return c.Text
}

type Row struct {
	Cells []Cell
	// Link is carried through sorting untouched; templates use it for the
	// row's primary anchor.
	Link string
}

type Table struct {
	Columns []Column
	Rows    []Row

	sortColumn int
	direction  SortDirection
}

func NewTable(columns []Column, rows []Row) *Table {
	return &Table{Columns: columns, Rows: rows, sortColumn: -1, direction: SortNone}
}

// SortState reports the current sorted column index (-1 when unsorted) and
// direction, for rendering aria-sort attributes.
func (t *Table) SortState() (int, SortDirection) {
	return t.sortColumn, t.direction
}

// Toggle applies a header click on the given column: any previously sorted
// column resets, and the clicked column cycles its direction.
func (t *Table) Toggle(columnIndex int) {
	if columnIndex < 0 || columnIndex >= len(t.Columns) || !t.Columns[columnIndex].Sortable {
		return
	}

	previous := SortNone
	if columnIndex == t.sortColumn {
		previous = t.direction
	}

	t.sortColumn = columnIndex
	t.direction = previous.Toggled()
	t.sortRows()
}

// SetDefaultSort seeds the initial sort state, as a page would with a
// default aria-sort attribute, and orders the rows accordingly.
func (t *Table) SetDefaultSort(columnIndex int, direction SortDirection) {
	if columnIndex < 0 || columnIndex >= len(t.Columns) || direction == SortNone {
		return
	}

	t.sortColumn = columnIndex
	t.direction = direction
	t.sortRows()
}

func (t *Table) sortRows() {
	column := t.sortColumn
	ascending := t.direction == SortAscending

	sort.SliceStable(t.Rows, func(i, j int) bool {
		a := cellKey(t.Rows[i], column)
		b := cellKey(t.Rows[j], column)
		if ascending {
			return a < b
		}
		return a > b
	})
}

func cellKey(row Row, column int) string {
	if column < 0 || column >= len(row.Cells) {
		return ""
	}
	return row.Cells[column].sortKey()
}
