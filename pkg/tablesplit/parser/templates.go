package parser

import (
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// BuildTemplates groups reference grid rows by the template name in
// column 0, preserving row order within each group, and projects each
// row's remaining columns into a RowSet. Templates are returned in
// first-appearance order. Rows with an absent or empty column 0 are
// skipped. An empty grid yields no templates, in which case no table
// can ever be found.
func BuildTemplates(grid []models.Row) []models.Template {
	var templates []models.Template
	index := make(map[string]int)

	for _, row := range grid {
		if len(row) == 0 || row[0].Absent() {
			continue
		}
		name := row[0].String()
		if name == "" {
			continue
		}

		i, ok := index[name]
		if !ok {
			i = len(templates)
			index[name] = i
			templates = append(templates, models.Template{Name: name})
		}
		templates[i].Rows = append(templates[i].Rows, ProjectRow(row[1:]))
	}

	return templates
}
