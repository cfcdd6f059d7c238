package tablesplit

import (
	"path/filepath"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/parser"
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/reader"
)

// Extract reads a workbook and a reference template workbook and
// splits every sheet into its embedded tables. The reference workbook
// enumerates, per template name in column 0, the header rows that open
// one table kind; see ExtractGrids for the matching semantics. A
// reference workbook with no templates is not an error: every sheet
// maps to an empty table collection.
func Extract(path, templatePath string, opts Options) (*models.WorkbookTables, error) {
	if opts.OverlapThreshold < 0 || opts.OverlapThreshold > 100 {
		return nil, ErrInvalidThreshold
	}
	log := opts.logger()

	log.Info("loading reference templates", "path", templatePath)
	ref, err := reader.OpenBook(templatePath)
	if err != nil {
		return nil, NewExtractionError("", "templates", err)
	}
	defer ref.Close()

	templateGrid, err := reader.ReadTemplateGrid(ref)
	if err != nil {
		return nil, NewExtractionError("", "templates", err)
	}

	log.Info("loading workbook", "path", path)
	book, err := reader.OpenBook(path)
	if err != nil {
		return nil, NewExtractionError("", "open", err)
	}
	defer book.Close()

	sheets, err := reader.ReadGrid(book)
	if err != nil {
		return nil, NewExtractionError("", "grid", err)
	}

	result := ExtractGrids(sheets, templateGrid, opts)
	result.BookName = filepath.Base(path)
	return result, nil
}

// ExtractGrids runs the extraction core over in-memory grids. Every
// sheet is scanned independently: each template's header row-set
// sequence is matched against consecutive sheet rows at the configured
// overlap threshold, the discovered headers are resolved into
// non-overlapping row regions, and each region is materialized into a
// table with cleaned column labels. Inputs are read-only for the pass;
// the result never aliases source rows.
func ExtractGrids(sheets []models.Sheet, templateGrid []models.Row, opts Options) *models.WorkbookTables {
	log := opts.logger()

	templates := parser.BuildTemplates(templateGrid)
	log.Info("built reference templates", "count", len(templates))

	result := &models.WorkbookTables{
		Sheets: make(map[string]models.SheetTables, len(sheets)),
	}

	for _, sheet := range sheets {
		log.Info("processing sheet", "sheet", sheet.Name)

		rowSets := parser.ProjectRows(sheet.Rows)
		matches := parser.MatchAll(rowSets, templates, opts.OverlapThreshold)
		regions, overlaps := parser.ResolveRegions(matches, len(sheet.Rows))

		for _, ov := range overlaps {
			log.Warn("header match starts inside previous header block",
				"sheet", sheet.Name,
				"template", ov.PrevTemplate,
				"next_template", ov.NextTemplate,
				"header_end", ov.PrevHeaderEnd,
				"next_start", ov.NextStart)
		}

		tables := parser.ExtractTables(sheet, regions, opts.specialChars())
		for name := range tables {
			log.Info("extracted table", "sheet", sheet.Name, "table", name)
		}
		result.Sheets[sheet.Name] = tables
	}

	return result
}
