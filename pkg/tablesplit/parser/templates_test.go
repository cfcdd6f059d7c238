package parser

import (
	"testing"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
)

func TestBuildTemplates(t *testing.T) {
	grid := []models.Row{
		models.RowOf("sales", "Region", "Product"),
		models.RowOf("sales", "Q1", "Q2"),
		models.RowOf("inventory", "Code", "Name"),
		models.RowOf(nil, "skipped"),
	}

	templates := BuildTemplates(grid)

	if len(templates) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(templates))
	}
	if templates[0].Name != "sales" || templates[1].Name != "inventory" {
		t.Errorf("Templates out of first-appearance order: %q, %q", templates[0].Name, templates[1].Name)
	}
	if len(templates[0].Rows) != 2 {
		t.Errorf("Expected 2 header rows for sales, got %d", len(templates[0].Rows))
	}
	if len(templates[1].Rows) != 1 {
		t.Errorf("Expected 1 header row for inventory, got %d", len(templates[1].Rows))
	}

	// the template name column must not leak into the row sets
	if templates[0].Rows[0].Contains("sales") {
		t.Error("Template name leaked into header row set")
	}
	if !templates[0].Rows[0].Contains("Region") || !templates[0].Rows[1].Contains("Q1") {
		t.Errorf("Header row sets out of document order: %v", templates[0].Rows)
	}
}

func TestBuildTemplatesEmptyGrid(t *testing.T) {
	if got := BuildTemplates(nil); len(got) != 0 {
		t.Errorf("Expected no templates from empty grid, got %d", len(got))
	}
}
