package parser

import (
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// MatchHeaders scans a sheet's projected rows against one template and
// returns a HeaderMatch for every place the template's full row-set
// sequence occurs on strictly consecutive rows.
//
// The scan is a consecutive-match state machine: row i is compared
// against the template row at the current match position; meeting the
// overlap threshold records the row and advances, anything else resets
// the attempt and discards its recorded rows. A row that ends a partial
// match is not reconsidered as the start of a new attempt; scanning
// resumes at the next row. After a full match is emitted the state
// resets so the same template can match again later in the sheet.
//
// Templates with no rows never match. threshold is a percentage in
// [0, 100] applied to every row comparison.
func MatchHeaders(rowSets []models.RowSet, tpl models.Template, threshold float64) []models.HeaderMatch {
	if len(tpl.Rows) == 0 {
		return nil
	}

	var matches []models.HeaderMatch
	count := 0
	var pending []int

	for i, set := range rowSets {
		if OverlapPercent(set, tpl.Rows[count]) >= threshold {
			pending = append(pending, i)
			count++
		} else {
			count = 0
			pending = nil
		}

		if count == len(tpl.Rows) {
			matches = append(matches, models.HeaderMatch{
				Template:   tpl.Name,
				RowIndices: pending,
			})
			count = 0
			pending = nil
		}
	}

	return matches
}

// MatchAll runs every template independently over the same projected
// rows and returns the matches in template order, then within-template
// occurrence order. No cross-template exclusivity is enforced.
func MatchAll(rowSets []models.RowSet, templates []models.Template, threshold float64) []models.HeaderMatch {
	var matches []models.HeaderMatch
	for _, tpl := range templates {
		matches = append(matches, MatchHeaders(rowSets, tpl, threshold)...)
	}
	return matches
}
