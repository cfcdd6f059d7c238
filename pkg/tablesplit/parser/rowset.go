// Package parser implements header recognition and region resolution
// over in-memory grids.
package parser

import (
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// ProjectRow returns the set of a row's non-absent values, discarding
// position and duplicates. Two rows with the same values in different
// positions project to the same set; header detection is
// content-based, not positional.
func ProjectRow(row models.Row) models.RowSet {
	set := make(models.RowSet, len(row))
	for _, cell := range row {
		if cell.Absent() {
			continue
		}
		set[cell.Value] = struct{}{}
	}
	return set
}

// ProjectRows projects every row of a grid.
func ProjectRows(rows []models.Row) []models.RowSet {
	sets := make([]models.RowSet, len(rows))
	for i, row := range rows {
		sets[i] = ProjectRow(row)
	}
	return sets
}

// OverlapPercent returns |A∩B| / |A∪B| * 100. When both sets are
// empty the union is empty and the overlap is defined as 100.
func OverlapPercent(a, b models.RowSet) float64 {
	inter := 0
	for v := range a {
		if b.Contains(v) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 100
	}
	return float64(inter) / float64(union) * 100
}
