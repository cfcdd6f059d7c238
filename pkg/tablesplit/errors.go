package tablesplit

import (
	"errors"
	"fmt"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/reader"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = reader.ErrFileNotFound

// ErrInvalidThreshold indicates an overlap threshold outside [0, 100].
var ErrInvalidThreshold = errors.New("overlap threshold must be between 0 and 100")

// ExtractionError represents an error while reading or extracting one
// part of a workbook.
type ExtractionError struct {
	SheetName string
	Stage     string // "open", "templates", "grid", "sheet"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, stage string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
