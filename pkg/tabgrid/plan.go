package tabgrid

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"gopkg.in/yaml.v3"
)

// ReducePlan is a declarative MergedRegionReduce call. Columns are letters,
// as they appear in a spreadsheet application.
type ReducePlan struct {
	Sheet        string            `yaml:"sheet"`
	MergedCol    string            `yaml:"merged_col"`
	SameCols     []string          `yaml:"same_cols"`
	Accumulators []AccumulatorSpec `yaml:"accumulators"`
	// Compact physically removes the consumed rows afterwards.
	Compact bool `yaml:"compact"`
}

// AccumulatorSpec names the fold applied to one column.
type AccumulatorSpec struct {
	Col string `yaml:"col"`
	// Op is one of sum, concat, max, min, count.
	Op  string `yaml:"op"`
	Sep string `yaml:"sep,omitempty"`
}

// ParsePlan decodes a YAML reduce plan. Unknown keys are rejected.
func ParsePlan(data []byte) (*ReducePlan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p ReducePlan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("reduce plan: %w", err)
	}
	return &p, nil
}

// LoadPlan reads and decodes a YAML reduce plan file.
func LoadPlan(path string) (*ReducePlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

// Apply runs the plan against g and, when Compact is set, closes the gaps
// left by the consumed rows.
func (p *ReducePlan) Apply(g *grid.Grid) (grid.ReduceResult, error) {
	mergedCol, err := grid.ColumnIndex(p.MergedCol)
	if err != nil {
		return grid.ReduceResult{}, fmt.Errorf("reduce plan: merged_col: %w", err)
	}
	sameCols := make([]int, 0, len(p.SameCols))
	for _, name := range p.SameCols {
		col, err := grid.ColumnIndex(name)
		if err != nil {
			return grid.ReduceResult{}, fmt.Errorf("reduce plan: same_cols: %w", err)
		}
		sameCols = append(sameCols, col)
	}
	accs := make([]grid.ColumnAccumulator, 0, len(p.Accumulators))
	for _, spec := range p.Accumulators {
		acc, err := spec.accumulator()
		if err != nil {
			return grid.ReduceResult{}, fmt.Errorf("reduce plan: %w", err)
		}
		accs = append(accs, acc)
	}

	res, err := g.MergedRegionReduce(0, mergedCol, sameCols, accs)
	if err != nil {
		return res, err
	}
	if p.Compact {
		if err := g.Compact(res.Removed); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s AccumulatorSpec) accumulator() (grid.ColumnAccumulator, error) {
	col, err := grid.ColumnIndex(s.Col)
	if err != nil {
		return grid.ColumnAccumulator{}, fmt.Errorf("accumulator col: %w", err)
	}
	var fn grid.Accumulator
	switch strings.ToLower(s.Op) {
	case "sum":
		fn = grid.Sum()
	case "concat":
		fn = grid.Concat(s.Sep)
	case "max":
		fn = grid.Max()
	case "min":
		fn = grid.Min()
	case "count":
		fn = grid.Count()
	default:
		return grid.ColumnAccumulator{}, fmt.Errorf("accumulator op %q: %w", s.Op, grid.ErrInvalidArgument)
	}
	return grid.ColumnAccumulator{Col: col, Fn: fn}, nil
}
