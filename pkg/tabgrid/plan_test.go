package tabgrid

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
)

const orderPlan = `
sheet: Orders
merged_col: A
same_cols: [A, b]
accumulators:
  - {col: C, op: sum}
  - {col: D, op: concat, sep: ","}
`

func TestParsePlan(t *testing.T) {
	p, err := ParsePlan([]byte(orderPlan))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	if p.Sheet != "Orders" || p.MergedCol != "A" || p.Compact {
		t.Errorf("Unexpected plan: %+v", p)
	}
	if !slices.Equal(p.SameCols, []string{"A", "b"}) {
		t.Errorf("Expected same_cols [A b], got %v", p.SameCols)
	}
	if len(p.Accumulators) != 2 || p.Accumulators[1] != (AccumulatorSpec{Col: "D", Op: "concat", Sep: ","}) {
		t.Errorf("Unexpected accumulators: %+v", p.Accumulators)
	}

	if _, err := ParsePlan([]byte("sheet: A\nstart_row: 2\n")); err == nil {
		t.Error("Expected unknown key to be rejected")
	}
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(orderPlan), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	p, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if p.Sheet != "Orders" {
		t.Errorf("Expected sheet Orders, got %q", p.Sheet)
	}
}

func TestPlanApply(t *testing.T) {
	g := grid.New()
	g.CreateCell(0, 0).SetValue(grid.Text("Order"))
	keys := []string{"x", "y", "x"}
	for i, key := range keys {
		row := 1 + i
		g.CreateCell(row, 1).SetValue(grid.Text(key))
		g.CreateCell(row, 2).SetValue(grid.Number(float64(row)))
		g.CreateCell(row, 3).SetValue(grid.Text(string(rune('a' + i))))
	}
	g.CreateCell(1, 0).SetValue(grid.Text("Order 1"))
	g.AddMergedRegion(grid.NewRegion(1, 0, 3, 0))

	p, err := ParsePlan([]byte(orderPlan + "compact: true\n"))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	res, err := p.Apply(g)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !slices.Equal(res.Removed, []int{3}) {
		t.Errorf("Expected [3] removed, got %v", res.Removed)
	}
	if got := g.Value(1, 2); got != "4" {
		t.Errorf("Expected C2 4, got %q", got)
	}
	if got := g.Value(1, 3); got != "a,c" {
		t.Errorf("Expected D2 'a,c', got %q", got)
	}
	if regions := g.Regions(); len(regions) != 1 || regions[0] != grid.NewRegion(1, 0, 2, 0) {
		t.Errorf("Expected region A2:A3, got %v", regions)
	}
}

func TestPlanApplyInvalid(t *testing.T) {
	tests := []struct {
		name string
		plan ReducePlan
	}{
		{"bad merged col", ReducePlan{MergedCol: "1"}},
		{"bad same col", ReducePlan{MergedCol: "A", SameCols: []string{"?"}}},
		{"bad op", ReducePlan{MergedCol: "A", Accumulators: []AccumulatorSpec{{Col: "B", Op: "avg"}}}},
	}
	for _, tt := range tests {
		if _, err := tt.plan.Apply(grid.New()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	p := ReducePlan{MergedCol: "A", Accumulators: []AccumulatorSpec{{Col: "B", Op: "avg"}}}
	if _, err := p.Apply(grid.New()); !errors.Is(err, grid.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for unknown op, got %v", err)
	}
}
