package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/parser"
)

// Row numbers on the command line are 1-based, as shown by spreadsheet
// applications.

func newReduceCmd(gf *globalFlags) *cobra.Command {
	var planPath, outputPath string
	cmd := &cobra.Command{
		Use:   "reduce [input.xlsx]",
		Short: "Collapse rows sharing a key inside merged regions, as described by a YAML plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := tabgrid.LoadPlan(planPath)
			if err != nil {
				return err
			}
			return gf.edit("reduce", plan.Sheet, args[0], outputPath, func(g *grid.Grid) error {
				res, err := plan.Apply(g)
				if err != nil {
					return err
				}
				gf.logger.WithFields(logrus.Fields{
					"regions": res.Regions,
					"groups":  res.Groups,
					"rows":    len(res.Removed),
				}).Info("reduced")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "Reduce plan file (YAML)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	cmd.MarkFlagRequired("plan")
	return cmd
}

func newInsertRowsCmd(gf *globalFlags) *cobra.Command {
	var row, count int
	var outputPath string
	cmd := &cobra.Command{
		Use:   "insert-rows [input.xlsx]",
		Short: "Insert blank rows that copy the height and styles of the row at --row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gf.edit("insert-rows", "", args[0], outputPath, func(g *grid.Grid) error {
				return g.InsertRows(row-1, count)
			})
		},
	}
	cmd.Flags().IntVar(&row, "row", 1, "Row before which rows are inserted")
	cmd.Flags().IntVar(&count, "count", 1, "Number of rows to insert")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	return cmd
}

func newClearCmd(gf *globalFlags) *cobra.Command {
	var rangeRef, outputPath string
	var from, to int
	cmd := &cobra.Command{
		Use:   "clear [input.xlsx]",
		Short: "Blank the values of a range or of whole rows, keeping styles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rangeRef == "" && from == 0 {
				return fmt.Errorf("one of --range or --from is required")
			}
			return gf.edit("clear", "", args[0], outputPath, func(g *grid.Grid) error {
				if rangeRef != "" {
					r, err := parser.ParseRange(rangeRef)
					if err != nil {
						return err
					}
					return g.ClearRange(r.FirstRow, r.FirstCol, r.LastRow, r.LastCol)
				}
				return g.ClearRows(from-1, lastRow(from, to)-1)
			})
		},
	}
	cmd.Flags().StringVar(&rangeRef, "range", "", "Range to clear, e.g. A2:C10")
	cmd.Flags().IntVar(&from, "from", 0, "First row to clear")
	cmd.Flags().IntVar(&to, "to", 0, "Last row to clear (default: --from)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	return cmd
}

func newRemoveRowsCmd(gf *globalFlags) *cobra.Command {
	var from, to int
	var outputPath string
	cmd := &cobra.Command{
		Use:   "remove-rows [input.xlsx]",
		Short: "Delete rows and shift the rows below up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gf.edit("remove-rows", "", args[0], outputPath, func(g *grid.Grid) error {
				return g.RemoveRows(from-1, lastRow(from, to)-1)
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "First row to remove")
	cmd.Flags().IntVar(&to, "to", 0, "Last row to remove (default: --from)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	return cmd
}

func newSumCmd(gf *globalFlags) *cobra.Command {
	var cell, outputPath string
	var from, to int
	cmd := &cobra.Command{
		Use:   "sum [input.xlsx]",
		Short: "Write a SUM formula over rows --from..--to of the target cell's column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := grid.ParseCellName(cell)
			if err != nil {
				return err
			}
			return gf.edit("sum", "", args[0], outputPath, func(g *grid.Grid) error {
				return g.InsertSumFormula(row, col, from-1, to-1)
			})
		},
	}
	cmd.Flags().StringVar(&cell, "cell", "", "Target cell, e.g. B10")
	cmd.Flags().IntVar(&from, "from", 1, "First summed row")
	cmd.Flags().IntVar(&to, "to", 1, "Last summed row")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	cmd.MarkFlagRequired("cell")
	return cmd
}

func lastRow(from, to int) int {
	if to == 0 {
		return from
	}
	return to
}
