package parser

import (
	"sort"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// RegionOverlap reports a header match that starts inside the previous
// region's header block after ordering by start row. Bounds are still
// resolved first-discovered-wins; the condition is surfaced so callers
// can warn instead of silently mis-bounding tables.
type RegionOverlap struct {
	// PrevTemplate and NextTemplate name the two colliding matches.
	PrevTemplate string
	NextTemplate string
	// PrevHeaderEnd is the last header row of the earlier match;
	// NextStart is the first row of the later one.
	PrevHeaderEnd int
	NextStart     int
}

// ResolveRegions turns the header matches found across all templates
// into ordered, non-overlapping table regions. Matches are sorted by
// first matched row index (template iteration order is not trusted to
// equal row order), then each region's end is the next region's start
// minus one; the last region runs to the end of the sheet. sheetLen is
// the sheet's row count. Zero matches yield zero regions.
func ResolveRegions(matches []models.HeaderMatch, sheetLen int) ([]models.TableRegion, []RegionOverlap) {
	if len(matches) == 0 {
		return nil, nil
	}

	ordered := make([]models.HeaderMatch, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start() < ordered[j].Start()
	})

	regions := make([]models.TableRegion, len(ordered))
	var overlaps []RegionOverlap

	for i, m := range ordered {
		end := sheetLen - 1
		if i+1 < len(ordered) {
			end = ordered[i+1].Start() - 1
		}

		headerRows := make([]int, len(m.RowIndices))
		copy(headerRows, m.RowIndices)

		regions[i] = models.TableRegion{
			Template:   m.Template,
			Start:      m.Start(),
			End:        end,
			HeaderRows: headerRows,
		}

		if lastHeader := headerRows[len(headerRows)-1]; i+1 < len(ordered) && end < lastHeader {
			overlaps = append(overlaps, RegionOverlap{
				PrevTemplate:  m.Template,
				NextTemplate:  ordered[i+1].Template,
				PrevHeaderEnd: lastHeader,
				NextStart:     ordered[i+1].Start(),
			})
		}
	}

	return regions, overlaps
}
