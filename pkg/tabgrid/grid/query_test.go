package grid

import "testing"

func TestMergedRegionContainment(t *testing.T) {
	g := New()
	regions := []Region{NewRegion(1, 1, 3, 2), NewRegion(5, 0, 5, 3)}
	for _, r := range regions {
		if err := g.AddMergedRegion(r); err != nil {
			t.Fatalf("AddMergedRegion(%v) failed: %v", r, err)
		}
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 6; col++ {
			var want *Region
			for i := range regions {
				if regions[i].Contains(row, col) {
					want = &regions[i]
				}
			}
			got, ok := g.MergedRegion(row, col)
			switch {
			case want == nil && ok:
				t.Errorf("MergedRegion(%d, %d) = %v, expected none", row, col, got)
			case want != nil && (!ok || got != *want):
				t.Errorf("MergedRegion(%d, %d) = %v, %v, expected %v", row, col, got, ok, *want)
			}
		}
	}
}

func TestIsAnchor(t *testing.T) {
	g := New()
	g.AddMergedRegion(NewRegion(1, 1, 3, 2))

	tests := []struct {
		row, col int
		expected bool
	}{
		{1, 1, true},
		{1, 2, false},
		{2, 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := g.IsAnchor(tt.row, tt.col); got != tt.expected {
			t.Errorf("IsAnchor(%d, %d) = %v, expected %v", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestEffectiveValueAnchorOnly(t *testing.T) {
	g := New()
	g.CreateCell(1, 1).SetValue(Text("Merged"))
	g.CreateRow(2)
	g.AddMergedRegion(NewRegion(1, 1, 3, 2))

	tests := []struct {
		row, col int
		expected string
		ok       bool
	}{
		{1, 1, "Merged", true},
		{1, 2, "Merged", true},
		{2, 1, "Merged", true},
		{2, 2, "Merged", true},
		// row 3 was never created
		{3, 1, "", false},
		{2, 3, "", false},
	}
	for _, tt := range tests {
		got, ok := g.EffectiveValue(tt.row, tt.col)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("EffectiveValue(%d, %d) = %q, %v, expected %q, %v", tt.row, tt.col, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestEffectiveValueAllCellsStored(t *testing.T) {
	g := New()
	g.CreateCell(0, 0).SetValue(Text("  Merged "))
	g.CreateCell(0, 1).SetValue(Text(""))
	g.CreateCell(1, 0)
	g.CreateCell(1, 1).SetValue(Formula("A1"))
	g.AddMergedRegion(NewRegion(0, 0, 1, 1))

	for row := 0; row <= 1; row++ {
		for col := 0; col <= 1; col++ {
			got, ok := g.EffectiveValue(row, col)
			if !ok || got != "Merged" {
				t.Errorf("EffectiveValue(%d, %d) = %q, %v, expected Merged", row, col, got, ok)
			}
		}
	}
}

func TestEffectiveValuePlainCells(t *testing.T) {
	g := New()
	g.CreateCell(0, 0).SetValue(Number(60))
	g.CreateCell(0, 1)
	g.CreateCell(0, 2).SetValue(Bool(true))

	tests := []struct {
		row, col int
		expected string
		ok       bool
	}{
		{0, 0, "60", true},
		{0, 1, "", true},
		{0, 2, "TRUE", true},
		{0, 3, "", false},
		{1, 0, "", false},
		{-1, 0, "", false},
		{0, -1, "", false},
	}
	for _, tt := range tests {
		got, ok := g.EffectiveValue(tt.row, tt.col)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("EffectiveValue(%d, %d) = %q, %v, expected %q, %v", tt.row, tt.col, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestEffectiveValueIdempotent(t *testing.T) {
	g := New()
	g.CreateCell(2, 0).SetValue(Text("Group"))
	g.CreateCell(3, 0)
	g.AddMergedRegion(NewRegion(2, 0, 3, 0))

	for row := 0; row < 5; row++ {
		for col := 0; col < 2; col++ {
			v1, ok1 := g.EffectiveValue(row, col)
			v2, ok2 := g.EffectiveValue(row, col)
			if v1 != v2 || ok1 != ok2 {
				t.Errorf("EffectiveValue(%d, %d) not idempotent: %q/%v then %q/%v", row, col, v1, ok1, v2, ok2)
			}
		}
	}
}
