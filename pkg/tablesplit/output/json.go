// Package output serializes extraction results for downstream
// consumers.
package output

import (
	"encoding/json"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// ToJSON serializes a whole extraction result.
func ToJSON(wb *models.WorkbookTables, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}

// SheetToJSON serializes one sheet's table collection.
func SheetToJSON(tables models.SheetTables, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(tables, "", "  ")
	}
	return json.Marshal(tables)
}
