package output

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// SafeFileName makes a sheet or table name usable as a file name:
// path separators become underscores so a hostile name cannot escape
// the output directory.
func SafeFileName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}

// WriteTableCSV writes one table as CSV: a label row followed by the
// data rows. Absent cells render as empty fields.
func WriteTableCSV(w io.Writer, table models.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			if i < len(row) {
				record[i] = row[i].String()
			} else {
				record[i] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVDir writes every extracted table to dir as
// "<table name>.csv".
func WriteCSVDir(wb *models.WorkbookTables, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, tables := range wb.Sheets {
		for name, table := range tables {
			f, err := os.Create(filepath.Join(dir, SafeFileName(name)+".csv"))
			if err != nil {
				return err
			}
			if err := WriteTableCSV(f, table); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
