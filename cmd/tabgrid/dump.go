package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/models"
	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/output"
)

type dumpFlags struct {
	outputPath string
	pretty     bool
	format     string
	sheetsDir  string
}

func newDumpCmd(gf *globalFlags) *cobra.Command {
	df := &dumpFlags{}
	cmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Print the grids of a workbook as JSON, YAML or a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, gf, df, args[0])
		},
	}
	cmd.Flags().StringVarP(&df.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&df.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&df.format, "format", "json", "Output format: json, yaml, table")
	cmd.Flags().StringVar(&df.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func runDump(cmd *cobra.Command, gf *globalFlags, df *dumpFlags, inputPath string) error {
	b, err := gf.open(inputPath)
	if err != nil {
		return err
	}
	defer b.Close()

	if df.format == "table" {
		sheet := gf.sheetName(b, "")
		g, err := b.Sheet(sheet)
		if err != nil {
			return err
		}
		return output.RenderTable(cmd.OutOrStdout(), g)
	}

	wb := b.Snapshot()
	if gf.sheet != "" {
		sheet, ok := wb.Sheets[gf.sheet]
		if !ok {
			_, err := b.Sheet(gf.sheet)
			return err
		}
		wb.Sheets = map[string]models.GridData{gf.sheet: sheet}
	}

	var data []byte
	switch df.format {
	case "json":
		data, err = output.ToJSON(wb, df.pretty)
	case "yaml":
		data, err = output.ToYAML(wb)
	default:
		return fmt.Errorf("invalid format: %s (must be json, yaml, or table)", df.format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if df.outputPath != "" {
		if err := os.WriteFile(df.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if df.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if df.sheetsDir != "" {
		if err := writeSheetFiles(wb, df); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	return nil
}

func writeSheetFiles(wb *models.WorkbookData, df *dumpFlags) error {
	if err := os.MkdirAll(df.sheetsDir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		var (
			data []byte
			err  error
			ext  string
		)
		if df.format == "yaml" {
			data, err = output.SheetToYAML(&sheet)
			ext = ".yaml"
		} else {
			data, err = output.SheetToJSON(&sheet, df.pretty)
			ext = ".json"
		}
		if err != nil {
			return err
		}

		filename := filepath.Join(df.sheetsDir, sheetFileName(sheetName)+ext)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

var sheetFileReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")

// sheetFileName maps a sheet name to a file name that stays inside the
// output directory.
func sheetFileName(sheetName string) string {
	name := sheetFileReplacer.Replace(sheetName)
	if strings.Trim(name, ".") == "" {
		name = strings.ReplaceAll(name, ".", "_")
	}
	if name == "" {
		name = "_"
	}
	return name
}
