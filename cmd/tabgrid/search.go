package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/grid"
)

func newSearchCmd(gf *globalFlags) *cobra.Command {
	var direction string
	cmd := &cobra.Command{
		Use:   "search [input.xlsx] [keyword]",
		Short: "Find a keyword, or read the cell next to it",
		Long: `search prints the address of the first cell whose value equals the keyword.
With --direction it prints the value of the neighboring cell instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := gf.open(args[0])
			if err != nil {
				return err
			}
			defer b.Close()

			g, err := b.Sheet(gf.sheetName(b, ""))
			if err != nil {
				return err
			}

			keyword := args[1]
			if direction != "" {
				d, err := grid.ParseDirection(direction)
				if err != nil {
					return err
				}
				v, ok := g.SearchNearby(keyword, d)
				if !ok {
					return fmt.Errorf("no value %s of %q", d, keyword)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			row, col, ok := g.SearchCell(keyword)
			if !ok {
				return fmt.Errorf("%q not found", keyword)
			}
			name, err := grid.CellName(row, col)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Neighbor to read: up, right, down, left")
	return cmd
}
