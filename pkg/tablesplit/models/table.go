package models

// LabelPart is one header level's contribution to a column label.
type LabelPart struct {
	// Text is the raw label text for this level.
	Text string
	// Unplaced is true when the source grid had no name at this level,
	// replacing the legacy string-marker sniffing for auto-generated
	// column names.
	Unplaced bool
}

// Table is one extracted table: flattened column labels plus data
// rows. Tables own their rows and never alias the source sheet.
type Table struct {
	// Name is the table key, "{sheet}_table_{ordinal}".
	Name string `json:"name"`
	// SheetName is the sheet the table was extracted from.
	SheetName string `json:"sheet_name"`
	// Ordinal is the 1-based table index within its sheet.
	Ordinal int `json:"ordinal"`
	// Columns holds one cleaned label per column.
	Columns []string `json:"columns"`
	// Rows holds the data rows, each normalized to len(Columns).
	Rows []Row `json:"rows"`
}

// SheetTables maps table name to Table for one sheet.
type SheetTables map[string]Table

// WorkbookTables is the extraction result for a whole workbook.
type WorkbookTables struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to that sheet's extracted tables. Every
	// sheet appears, with an empty map when nothing matched.
	Sheets map[string]SheetTables `json:"sheets"`
}
