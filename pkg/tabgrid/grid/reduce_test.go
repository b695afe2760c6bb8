package grid

import (
	"errors"
	"slices"
	"testing"
)

func groupAGrid(allStored bool) *Grid {
	g := New()
	for i, n := range []float64{10, 20, 30} {
		row := 3 + i
		if allStored || i == 0 {
			g.CreateCell(row, 0).SetValue(Text("GroupA"))
		}
		g.CreateCell(row, 1).SetValue(Number(n))
	}
	g.AddMergedRegion(NewRegion(3, 0, 5, 0))
	return g
}

func TestMergedRegionReduceSum(t *testing.T) {
	for _, allStored := range []bool{true, false} {
		g := groupAGrid(allStored)
		res, err := g.MergedRegionReduce(0, 0, []int{0}, []ColumnAccumulator{{Col: 1, Fn: Sum()}})
		if err != nil {
			t.Fatalf("MergedRegionReduce failed: %v", err)
		}

		if got := g.Value(3, 1); got != "60" {
			t.Errorf("allStored=%v: Value(3, 1) = %q, expected 60", allStored, got)
		}
		if g.Row(4) != nil || g.Row(5) != nil {
			t.Errorf("allStored=%v: consumed rows still present", allStored)
		}
		if !slices.Equal(res.Removed, []int{5, 4}) {
			t.Errorf("allStored=%v: Removed = %v, expected [5 4]", allStored, res.Removed)
		}
		if res.Regions != 1 || res.Groups != 1 {
			t.Errorf("allStored=%v: Regions=%d Groups=%d, expected 1/1", allStored, res.Regions, res.Groups)
		}
	}
}

func TestMergedRegionReduceGroups(t *testing.T) {
	g := New()
	keys := []string{"x", "y", "x", "y"}
	notes := []string{"a", "b", "c", "d"}
	for i := 0; i < 4; i++ {
		row := 1 + i
		g.CreateCell(row, 0).SetValue(Text("Order"))
		g.CreateCell(row, 2).SetValue(Text(keys[i]))
		g.CreateCell(row, 3).SetValue(Number(float64(i + 1)))
		g.CreateCell(row, 4).SetValue(Text(notes[i]))
	}
	g.AddMergedRegion(NewRegion(1, 0, 4, 0))

	res, err := g.MergedRegionReduce(0, 0, []int{0, 2}, []ColumnAccumulator{
		{Col: 3, Fn: Sum()},
		{Col: 4, Fn: Concat(",")},
	})
	if err != nil {
		t.Fatalf("MergedRegionReduce failed: %v", err)
	}

	tests := []struct {
		row, col int
		expected string
	}{
		{1, 3, "4"},
		{2, 3, "6"},
		{1, 4, "a,c"},
		{2, 4, "b,d"},
	}
	for _, tt := range tests {
		if got := g.Value(tt.row, tt.col); got != tt.expected {
			t.Errorf("Value(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
	if !slices.Equal(res.Removed, []int{4, 3}) {
		t.Errorf("Removed = %v, expected [4 3]", res.Removed)
	}
	if res.Groups != 2 {
		t.Errorf("Groups = %d, expected 2", res.Groups)
	}
}

func TestMergedRegionReduceSkipsOtherRegions(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.CreateCell(i, 0).SetValue(Text("k"))
		g.CreateCell(i, 1).SetValue(Number(1))
	}
	g.AddMergedRegion(NewRegion(0, 1, 1, 1)) // other column
	g.AddMergedRegion(NewRegion(2, 0, 2, 2)) // single row

	res, err := g.MergedRegionReduce(0, 0, []int{0}, []ColumnAccumulator{{Col: 1, Fn: Sum()}})
	if err != nil {
		t.Fatalf("MergedRegionReduce failed: %v", err)
	}
	if res.Regions != 0 || len(res.Removed) != 0 {
		t.Errorf("unexpected reduction: %+v", res)
	}
	if g.LastRow() != 2 {
		t.Errorf("LastRow() = %d, expected 2", g.LastRow())
	}
}

func TestMergedRegionReduceIgnoresStartRow(t *testing.T) {
	for _, startRow := range []int{4, 10} {
		g := groupAGrid(true)
		res, err := g.MergedRegionReduce(startRow, 0, []int{0}, []ColumnAccumulator{{Col: 1, Fn: Sum()}})
		if err != nil {
			t.Fatalf("startRow=%d: MergedRegionReduce failed: %v", startRow, err)
		}
		if got := g.Value(3, 1); got != "60" {
			t.Errorf("startRow=%d: Value(3, 1) = %q, expected 60", startRow, got)
		}
		if g.Row(4) != nil {
			t.Errorf("startRow=%d: row 4 still present", startRow)
		}
		if !slices.Equal(res.Removed, []int{5, 4}) {
			t.Errorf("startRow=%d: Removed = %v, expected [5 4]", startRow, res.Removed)
		}
	}
}

func TestMergedRegionReduceInvalid(t *testing.T) {
	g := groupAGrid(true)
	tests := []struct {
		name      string
		startRow  int
		mergedCol int
		sameCols  []int
		accs      []ColumnAccumulator
	}{
		{"negative start", -1, 0, nil, nil},
		{"negative merged col", 0, -1, nil, nil},
		{"negative key col", 0, 0, []int{-2}, nil},
		{"nil accumulator", 0, 0, nil, []ColumnAccumulator{{Col: 1}}},
	}
	for _, tt := range tests {
		_, err := g.MergedRegionReduce(tt.startRow, tt.mergedCol, tt.sameCols, tt.accs)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: error = %v, expected ErrInvalidArgument", tt.name, err)
		}
	}
	if g.Value(3, 1) != "10" || g.Row(5) == nil {
		t.Error("invalid reduce mutated the grid")
	}
}

func TestCompactAfterReduce(t *testing.T) {
	g := groupAGrid(true)
	g.CreateCell(6, 0).SetValue(Text("after"))
	g.CreateCell(7, 1).SetValue(Text("Tail"))
	g.CreateRow(8)
	g.AddMergedRegion(NewRegion(7, 1, 8, 1))

	res, err := g.MergedRegionReduce(0, 0, []int{0}, []ColumnAccumulator{{Col: 1, Fn: Sum()}})
	if err != nil {
		t.Fatalf("MergedRegionReduce failed: %v", err)
	}
	if err := g.Compact(res.Removed); err != nil {
		t.Fatalf("Compact failed: %v", err)
	}

	if got := g.Value(4, 0); got != "after" {
		t.Errorf("Value(4, 0) = %q, expected after", got)
	}
	regions := g.Regions()
	if len(regions) != 1 || regions[0] != NewRegion(5, 1, 6, 1) {
		t.Errorf("regions = %v, expected [B6:B7]", regions)
	}
	if got := g.Value(6, 1); got != "Tail" {
		t.Errorf("Value(6, 1) = %q, expected Tail", got)
	}
	if err := g.Compact([]int{-1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Compact(-1) error = %v, expected ErrInvalidArgument", err)
	}
}

func TestAccumulators(t *testing.T) {
	cell := func(v Value) *Cell {
		c := &Cell{}
		c.SetValue(v)
		return c
	}

	tests := []struct {
		name     string
		fn       Accumulator
		acc, cur Value
		expected string
	}{
		{"sum numbers", Sum(), Number(2), Number(3), "5"},
		{"sum numeric text", Sum(), Text(" 5 "), Number(2), "7"},
		{"sum into blank", Sum(), Blank(), Number(4), "4"},
		{"sum skips text", Sum(), Text("abc"), Number(1), "abc"},
		{"sum skips text cur", Sum(), Number(1), Text("n/a"), "1"},
		{"concat", Concat("/"), Text("a"), Text("b"), "a/b"},
		{"concat into blank", Concat("/"), Blank(), Text("b"), "b"},
		{"concat skips blank", Concat("/"), Text("a"), Blank(), "a"},
		{"max", Max(), Number(2), Number(9), "9"},
		{"max keeps", Max(), Number(9), Number(2), "9"},
		{"min", Min(), Number(2), Number(9), "2"},
		{"min blank acc", Min(), Blank(), Number(9), "9"},
		{"count from text", Count(), Text("x"), Text("y"), "2"},
		{"count from number", Count(), Number(5), Number(5), "2"},
	}
	for _, tt := range tests {
		acc := cell(tt.acc)
		tt.fn(acc, cell(tt.cur))
		if got := acc.Value().Format(); got != tt.expected {
			t.Errorf("%s: got %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestCountAccumulatorNumericCells(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.CreateCell(i, 0).SetValue(Text("k"))
		g.CreateCell(i, 1).SetValue(Number(5))
	}
	g.CreateCell(3, 0).SetValue(Text("m"))
	g.CreateCell(3, 1).SetValue(Number(5))
	g.CreateCell(4, 0).SetValue(Text("m"))
	g.CreateCell(4, 1).SetValue(Number(5))
	g.AddMergedRegion(NewRegion(0, 2, 4, 2))
	for i := 0; i < 5; i++ {
		g.CreateCell(i, 2).SetValue(Text("Order"))
	}

	if _, err := g.MergedRegionReduce(0, 2, []int{0}, []ColumnAccumulator{{Col: 1, Fn: Count()}}); err != nil {
		t.Fatalf("MergedRegionReduce failed: %v", err)
	}
	if got := g.Value(0, 1); got != "3" {
		t.Errorf("Value(0, 1) = %q, expected 3", got)
	}
	if got := g.Value(3, 1); got != "2" {
		t.Errorf("Value(3, 1) = %q, expected 2", got)
	}
}
