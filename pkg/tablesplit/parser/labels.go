package parser

import (
	"strings"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

// SpecialCharacters is the default character set stripped from column
// labels.
const SpecialCharacters = "!@#$%^&*()_+={}[]|\\:;'\"<>,.?/~`"

// unnamedMarker flags a composite label carrying an auto-generated
// segment, kept for callers handing in raw pre-flattened strings.
const unnamedMarker = "Unnamed"

// CleanLabel normalizes a raw column label. A label containing the
// auto-generated column marker is reduced to its last comma-space
// delimited segment, recovering the meaningful part of a composite
// placeholder. Every character in specialChars is then stripped and
// surrounding whitespace trimmed. The function is pure and idempotent;
// an empty result is the caller's cue to substitute a positional
// placeholder.
func CleanLabel(label, specialChars string) string {
	if strings.Contains(label, unnamedMarker) {
		segments := strings.Split(label, ", ")
		label = segments[len(segments)-1]
	}
	label = strings.Map(func(r rune) rune {
		if strings.ContainsRune(specialChars, r) {
			return -1
		}
		return r
	}, label)
	return strings.TrimSpace(label)
}

// FlattenLabel collapses a multi-level header label into one string.
// When every level is named, the levels join with ", " before
// cleaning; when any level is unplaced, only the last named level is
// kept. A label with no named level flattens to the empty string.
func FlattenLabel(parts []models.LabelPart, specialChars string) string {
	var named []string
	unplaced := false
	for _, p := range parts {
		if p.Unplaced || strings.TrimSpace(p.Text) == "" {
			unplaced = true
			continue
		}
		named = append(named, p.Text)
	}
	if len(named) == 0 {
		return ""
	}
	if unplaced {
		return CleanLabel(named[len(named)-1], specialChars)
	}
	return CleanLabel(strings.Join(named, ", "), specialChars)
}
