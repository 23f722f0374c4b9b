package cli

import (
	"strings"
	"testing"

	"github.com/CuriBio/labware-domain-models/pkg/catalog"
	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

func TestWellGrid(t *testing.T) {
	def, _ := catalog.Get("96-well")
	grid, err := wellGrid(def, false)
	if err != nil {
		t.Fatalf("wellGrid() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	if len(lines) != 9 { // header + 8 rows
		t.Fatalf("wellGrid() produced %d lines, want 9", len(lines))
	}
	if !strings.Contains(lines[1], "A1") || !strings.Contains(lines[1], "A12") {
		t.Errorf("first row %q is missing A1..A12", lines[1])
	}
	if !strings.Contains(lines[8], "H12") {
		t.Errorf("last row %q is missing H12", lines[8])
	}
}

func TestWellGridPadded(t *testing.T) {
	def, _ := catalog.Get("96-well")
	grid, err := wellGrid(def, true)
	if err != nil {
		t.Fatalf("wellGrid() error = %v", err)
	}
	if !strings.Contains(grid, "A01") {
		t.Error("padded grid does not contain A01")
	}
}

func TestWellGrid1536RowLabels(t *testing.T) {
	def, _ := catalog.Get("1536-well")
	grid, err := wellGrid(def, true)
	if err != nil {
		t.Fatalf("wellGrid() error = %v", err)
	}
	if !strings.Contains(grid, "AA01") || !strings.Contains(grid, "AF48") {
		t.Error("1536-well grid is missing the multi-letter rows")
	}
}

func TestWellGridRequiresCounts(t *testing.T) {
	if _, err := wellGrid(&labware.Definition{}, false); err == nil {
		t.Error("wellGrid() without counts succeeded")
	}
}

func TestRowLabelOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"A1", "A"},
		{"AF48", "AF"},
		{"H12", "H"},
	}
	for _, tt := range tests {
		if got := rowLabelOf(tt.name); got != tt.want {
			t.Errorf("rowLabelOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
