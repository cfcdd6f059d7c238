package models

// Sheet is one independently scanned named grid of rows.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string
	// Rows holds the grid in stored order. Rows may be ragged;
	// positions past a row's end are absent.
	Rows []Row
}

// Template is the expected multi-row header signature of one table
// kind: an ordered sequence of row sets, one per header row.
type Template struct {
	// Name is the template name from column 0 of the reference grid.
	Name string
	// Rows holds one RowSet per header row, in reference document order.
	Rows []RowSet
}

// HeaderMatch is a discovered contiguous run of sheet rows satisfying
// one template's full row-set sequence.
type HeaderMatch struct {
	// Template is the name of the matched template.
	Template string
	// RowIndices are the matched sheet row indices, in row order. Its
	// length equals the template's row count.
	RowIndices []int
}

// Start returns the first matched row index.
func (m HeaderMatch) Start() int {
	return m.RowIndices[0]
}

// TableRegion is a resolved, bounded row range in a sheet
// corresponding to one extracted table.
type TableRegion struct {
	// Template is the name of the template that opened the region.
	Template string
	// Start and End delimit the region's rows, inclusive.
	Start int
	End   int
	// HeaderRows are the sheet row indices holding the region's header.
	HeaderRows []int
}
