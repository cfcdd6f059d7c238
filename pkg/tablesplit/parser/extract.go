package parser

import (
	"fmt"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// ExtractTables materializes one table per region from a sheet. Header
// rows collapse into one flattened, cleaned label per column; every
// remaining row in the region becomes a data row, normalized to the
// table width. Rows are copied, never aliased from the sheet. Tables
// are keyed "{sheet}_table_{ordinal}" with 1-based ordinals in region
// order.
func ExtractTables(sheet models.Sheet, regions []models.TableRegion, specialChars string) models.SheetTables {
	tables := make(models.SheetTables, len(regions))

	for i, region := range regions {
		ordinal := i + 1
		table := extractOne(sheet, region, ordinal, specialChars)
		tables[table.Name] = table
	}

	return tables
}

func extractOne(sheet models.Sheet, region models.TableRegion, ordinal int, specialChars string) models.Table {
	width := regionWidth(sheet, region)

	headerRows := make(map[int]struct{}, len(region.HeaderRows))
	for _, r := range region.HeaderRows {
		headerRows[r] = struct{}{}
	}

	columns := make([]string, width)
	for col := 0; col < width; col++ {
		parts := make([]models.LabelPart, 0, len(region.HeaderRows))
		for _, r := range region.HeaderRows {
			parts = append(parts, labelPart(sheet.Rows[r], col))
		}
		label := FlattenLabel(parts, specialChars)
		if label == "" {
			label = fmt.Sprintf("Unnamed_%d", col)
		}
		columns[col] = label
	}

	var data []models.Row
	for r := region.Start; r <= region.End && r < len(sheet.Rows); r++ {
		if _, ok := headerRows[r]; ok {
			continue
		}
		data = append(data, normalizeRow(sheet.Rows[r], width))
	}

	return models.Table{
		Name:      fmt.Sprintf("%s_table_%d", sheet.Name, ordinal),
		SheetName: sheet.Name,
		Ordinal:   ordinal,
		Columns:   columns,
		Rows:      data,
	}
}

// regionWidth is the widest row in the region; ragged rows pad with
// absent cells up to it.
func regionWidth(sheet models.Sheet, region models.TableRegion) int {
	width := 0
	for r := region.Start; r <= region.End && r < len(sheet.Rows); r++ {
		if n := len(sheet.Rows[r]); n > width {
			width = n
		}
	}
	for _, r := range region.HeaderRows {
		if r < len(sheet.Rows) {
			if n := len(sheet.Rows[r]); n > width {
				width = n
			}
		}
	}
	return width
}

func labelPart(row models.Row, col int) models.LabelPart {
	if col >= len(row) || row[col].Absent() {
		return models.LabelPart{Unplaced: true}
	}
	return models.LabelPart{Text: row[col].String()}
}

// normalizeRow copies a sheet row into a fresh row of exactly width
// cells, treating missing trailing cells as absent.
func normalizeRow(row models.Row, width int) models.Row {
	out := make(models.Row, width)
	copy(out, row)
	return out
}
