// Package tablesplit locates and extracts multiple tables, each with
// its own possibly multi-row header, from the sheets of an Excel
// workbook, recognizing table starts against a reference workbook of
// named header templates.
package tablesplit

import (
	"log/slog"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/parser"
)

// DefaultOverlapThreshold is the minimum header overlap percentage
// used when none is configured.
const DefaultOverlapThreshold = 50

// Options configures extraction behavior.
type Options struct {
	// OverlapThreshold is the minimum overlap percentage (0-100)
	// between a sheet row and a template header row for the row to
	// count as part of that header.
	OverlapThreshold float64
	// SpecialCharacters are stripped from column labels. Empty means
	// the default punctuation set.
	SpecialCharacters string
	// Logger receives progress and warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		OverlapThreshold:  DefaultOverlapThreshold,
		SpecialCharacters: parser.SpecialCharacters,
	}
}

func (o Options) specialChars() string {
	if o.SpecialCharacters == "" {
		return parser.SpecialCharacters
	}
	return o.SpecialCharacters
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
