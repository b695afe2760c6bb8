package grid

import (
	"errors"
	"testing"
)

func TestSearchNearby(t *testing.T) {
	g := New()
	g.CreateCell(4, 2).SetValue(Number(42))
	g.CreateCell(5, 1).SetValue(Text("Label"))
	g.CreateCell(5, 2).SetValue(Text("Total"))
	g.CreateCell(6, 2).SetValue(Text("below"))

	tests := []struct {
		dir      Direction
		expected string
		ok       bool
	}{
		{Up, "42", true},
		{Left, "Label", true},
		{Down, "below", true},
		{Right, "", false},
		{Direction(9), "", false},
	}
	for _, tt := range tests {
		got, ok := g.SearchNearby("Total", tt.dir)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("SearchNearby(Total, %v) = %q, %v, expected %q, %v", tt.dir, got, ok, tt.expected, tt.ok)
		}
	}

	if _, ok := g.SearchNearby("Missing", Up); ok {
		t.Error("SearchNearby found a missing keyword")
	}
}

func TestSearchNearbyMissingRow(t *testing.T) {
	g := New()
	g.CreateCell(5, 2).SetValue(Text("Total"))
	if v, ok := g.SearchNearby("Total", Up); ok {
		t.Errorf("SearchNearby(Total, Up) = %q, expected absent", v)
	}

	g.CreateCell(0, 0).SetValue(Text("Edge"))
	if _, ok := g.SearchNearby("Edge", Left); ok {
		t.Error("neighbor left of column 0 reported present")
	}
	if _, ok := g.SearchNearby("Edge", Up); ok {
		t.Error("neighbor above row 0 reported present")
	}
}

func TestSearchNearbyThroughMerge(t *testing.T) {
	g := New()
	g.CreateCell(0, 0).SetValue(Text("Name"))
	g.CreateCell(0, 1).SetValue(Text("Alice"))
	g.CreateRow(1)
	g.AddMergedRegion(NewRegion(0, 1, 1, 2))

	if got, ok := g.SearchNearby("Name", Right); !ok || got != "Alice" {
		t.Errorf("SearchNearby(Name, Right) = %q, %v, expected Alice", got, ok)
	}
}

func TestSearchCell(t *testing.T) {
	g := New()
	g.CreateCell(2, 5).SetValue(Text(" k "))
	g.CreateCell(3, 0).SetValue(Text("k"))

	row, col, ok := g.SearchCell("k")
	if !ok || row != 2 || col != 5 {
		t.Errorf("SearchCell(k) = (%d, %d, %v), expected (2, 5, true)", row, col, ok)
	}

	if _, _, ok := g.SearchCell("  "); ok {
		t.Error("blank keyword matched")
	}
	if _, _, ok := g.SearchCell("k*"); ok {
		t.Error("pattern keyword matched")
	}
}

func TestSearchCellInsideRegion(t *testing.T) {
	g := New()
	g.CreateRow(0)
	g.CreateCell(1, 0).SetValue(Text("Head"))
	g.CreateRow(2)
	g.AddMergedRegion(NewRegion(1, 0, 2, 2))

	row, col, ok := g.SearchCell("Head")
	if !ok || row != 1 || col != 0 {
		t.Errorf("SearchCell(Head) = (%d, %d, %v), expected (1, 0, true)", row, col, ok)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"up", Up},
		{"Right", Right},
		{" DOWN ", Down},
		{"left", Left},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParseDirection(%q) = %v, %v, expected %v", tt.input, got, err, tt.expected)
		}
	}
	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseDirection(north) error = %v, expected ErrInvalidArgument", err)
	}
}
