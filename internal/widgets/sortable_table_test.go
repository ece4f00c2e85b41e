package widgets

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	columns := []Column{
		{Label: "Name", Sortable: true},
		{Label: "Added", Sortable: true},
		{Label: "Actions", Sortable: false},
	}
	rows := []Row{
		{Cells: []Cell{{Text: "charlie.pdf"}, {Text: "1 Jan 2026", SortValue: "2026-01-01"}, {Text: "Delete"}}},
		{Cells: []Cell{{Text: "alpha.pdf"}, {Text: "3 Mar 2026", SortValue: "2026-03-03"}, {Text: "Delete"}}},
		{Cells: []Cell{{Text: "bravo.pdf"}, {Text: "2 Feb 2026", SortValue: "2026-02-02"}, {Text: "Delete"}}},
	}
	return NewTable(columns, rows)
}

func columnText(t *Table, column int) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Cells[column].Text
	}
	return out
}

func TestToggleSortsAscendingFirst(t *testing.T) {
	table := testTable()

	table.Toggle(0)

	col, dir := table.SortState()
	assert.Equal(t, 0, col)
	assert.Equal(t, SortAscending, dir)
	assert.Equal(t, []string{"alpha.pdf", "bravo.pdf", "charlie.pdf"}, columnText(table, 0))
}

func TestToggleTwiceSortsDescending(t *testing.T) {
	table := testTable()

	table.Toggle(0)
	table.Toggle(0)

	_, dir := table.SortState()
	assert.Equal(t, SortDescending, dir)

	// descending order must match a reference full string comparison
	want := columnText(testTable(), 0)
	sort.Sort(sort.Reverse(sort.StringSlice(want)))
	assert.Equal(t, want, columnText(table, 0))
}

func TestToggleThirdClickReturnsToAscending(t *testing.T) {
	table := testTable()

	table.Toggle(0)
	table.Toggle(0)
	table.Toggle(0)

	_, dir := table.SortState()
	assert.Equal(t, SortAscending, dir)
}

func TestToggleOtherColumnResetsState(t *testing.T) {
	table := testTable()

	table.Toggle(0)
	table.Toggle(0)
	// switching columns starts from ascending, not descending
	table.Toggle(1)

	col, dir := table.SortState()
	assert.Equal(t, 1, col)
	assert.Equal(t, SortAscending, dir)
}

func TestSortValueOverridesVisibleText(t *testing.T) {
	table := testTable()

	table.Toggle(1)

	require.Equal(t, []string{"1 Jan 2026", "2 Feb 2026", "3 Mar 2026"}, columnText(table, 1))
}

func TestToggleIgnoresUnsortableColumn(t *testing.T) {
	table := testTable()

	table.Toggle(2)

	col, dir := table.SortState()
	assert.Equal(t, -1, col)
	assert.Equal(t, SortNone, dir)
	assert.Equal(t, []string{"charlie.pdf", "alpha.pdf", "bravo.pdf"}, columnText(table, 0))
}

func TestSetDefaultSort(t *testing.T) {
	table := testTable()

	table.SetDefaultSort(0, SortDescending)

	assert.Equal(t, []string{"charlie.pdf", "bravo.pdf", "alpha.pdf"}, columnText(table, 0))
}
