// Package models defines data structures for header-guided table extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// Cell is a single grid cell. Value holds a string, int64 or float64;
// a nil Value marks an absent cell. Cells are compared only for
// equality, never ordered.
type Cell struct {
	Value any
}

// Absent reports whether the cell holds no value.
func (c Cell) Absent() bool {
	return c.Value == nil
}

// String renders the cell value for label building. Absent cells
// render as the empty string.
func (c Cell) String() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as its bare value; absent cells encode
// as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value)
}

// Row is an ordered sequence of cells, one per column position. Rows
// are never mutated after they are read.
type Row []Cell

// RowOf builds a row from raw values; nil entries become absent cells.
func RowOf(values ...any) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Cell{Value: v}
	}
	return row
}

// RowSet is the set of a row's non-absent values. Position and
// duplicate counts are dropped so comparison is content-based.
type RowSet map[any]struct{}

// Contains reports set membership.
func (s RowSet) Contains(v any) bool {
	_, ok := s[v]
	return ok
}
