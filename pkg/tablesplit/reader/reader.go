// Package reader loads xlsx workbooks into the in-memory grid shape
// consumed by the extraction core.
package reader

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// ErrFileNotFound indicates the workbook path does not exist.
var ErrFileNotFound = errors.New("file not found")

// OpenBook opens an xlsx workbook. The caller owns the returned file
// and must Close it.
func OpenBook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// ReadGrid reads every sheet of a workbook into models.Sheet values,
// in workbook sheet order. Row and column order are preserved exactly
// as stored; empty cells become absent cells, and ragged rows are kept
// ragged (missing trailing cells are absent by omission).
func ReadGrid(f *excelize.File) ([]models.Sheet, error) {
	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := ReadSheet(f, name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, models.Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

// ReadSheet reads one sheet's rows in stored order.
func ReadSheet(f *excelize.File, sheetName string) ([]models.Row, error) {
	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, len(raw))
	for i, cells := range raw {
		row := make(models.Row, len(cells))
		for j, cell := range cells {
			row[j] = models.Cell{Value: parseValue(cell)}
		}
		rows[i] = row
	}
	return rows, nil
}

// ReadTemplateGrid reads the reference template workbook's first sheet
// as a flat grid: column 0 holds template names, the remaining columns
// one header row's values. Row order within each name group is
// preserved. An empty workbook yields an empty grid.
func ReadTemplateGrid(f *excelize.File) ([]models.Row, error) {
	list := f.GetSheetList()
	if len(list) == 0 {
		return nil, nil
	}
	return ReadSheet(f, list[0])
}

// parseValue converts a raw cell string to the cell's value. Empty
// strings are absent cells; integers and decimals parse to int64 and
// float64, everything else stays a string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
