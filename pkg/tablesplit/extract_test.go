package tablesplit

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestExtractGridsEndToEnd(t *testing.T) {
	templateGrid := []models.Row{
		models.RowOf("T1", "Region", "Product"),
		models.RowOf("T1", "Q1", "Q2"),
		models.RowOf("T2", "Name", "Total"),
	}
	sheets := []models.Sheet{
		{
			Name: "sheet",
			Rows: []models.Row{
				models.RowOf("Region", "Product"),
				models.RowOf("Q1", "Q2"),
				models.RowOf("north", int64(10)),
				models.RowOf("south", int64(30)),
				models.RowOf("Name", "Total"),
				models.RowOf("bob", int64(99)),
			},
		},
	}

	result := ExtractGrids(sheets, templateGrid, quietOptions())

	tables := result.Sheets["sheet"]
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}

	first := tables["sheet_table_1"]
	if len(first.Rows) != 2 {
		t.Errorf("Expected table 1 to span data rows 2-3, got %d rows", len(first.Rows))
	}
	if first.Rows[0][0].Value != "north" {
		t.Errorf("Expected first data cell \"north\", got %v", first.Rows[0][0].Value)
	}

	second := tables["sheet_table_2"]
	if len(second.Rows) != 1 || second.Rows[0][0].Value != "bob" {
		t.Errorf("Expected table 2 to hold data row 5, got %v", second.Rows)
	}
}

// An empty reference grid is not an error: every sheet still appears,
// mapped to an empty collection.
func TestExtractGridsNoTemplates(t *testing.T) {
	sheets := []models.Sheet{
		{Name: "a", Rows: []models.Row{models.RowOf("x")}},
		{Name: "b"},
	}

	result := ExtractGrids(sheets, nil, quietOptions())

	if len(result.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(result.Sheets))
	}
	for name, tables := range result.Sheets {
		if len(tables) != 0 {
			t.Errorf("Expected no tables for sheet %q, got %d", name, len(tables))
		}
	}
}

func TestExtract(t *testing.T) {
	tmpDir := t.TempDir()

	book := excelize.NewFile()
	defer book.Close()
	sheetName := "Data"
	book.SetSheetName("Sheet1", sheetName)
	book.SetCellValue(sheetName, "A1", "Code")
	book.SetCellValue(sheetName, "B1", "Name")
	book.SetCellValue(sheetName, "A2", 1)
	book.SetCellValue(sheetName, "B2", "alpha")
	book.SetCellValue(sheetName, "A3", 2)
	book.SetCellValue(sheetName, "B3", "beta")
	bookPath := filepath.Join(tmpDir, "input.xlsx")
	if err := book.SaveAs(bookPath); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	ref := excelize.NewFile()
	defer ref.Close()
	ref.SetCellValue("Sheet1", "A1", "inventory")
	ref.SetCellValue("Sheet1", "B1", "Code")
	ref.SetCellValue("Sheet1", "C1", "Name")
	refPath := filepath.Join(tmpDir, "templates.xlsx")
	if err := ref.SaveAs(refPath); err != nil {
		t.Fatalf("Failed to save template workbook: %v", err)
	}

	result, err := Extract(bookPath, refPath, quietOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if result.BookName != "input.xlsx" {
		t.Errorf("Expected book name input.xlsx, got %q", result.BookName)
	}
	table, ok := result.Sheets[sheetName]["Data_table_1"]
	if !ok {
		t.Fatalf("Missing Data_table_1, got %v", result.Sheets)
	}
	if table.Columns[0] != "Code" || table.Columns[1] != "Name" {
		t.Errorf("Unexpected columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Errorf("Expected 2 data rows, got %d", len(table.Rows))
	}
}

func TestExtractInvalidThreshold(t *testing.T) {
	opts := quietOptions()
	opts.OverlapThreshold = 120
	if _, err := Extract("in.xlsx", "ref.xlsx", opts); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("Expected ErrInvalidThreshold, got %v", err)
	}
}
