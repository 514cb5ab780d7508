// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qmconvert/internal/hierarchy"
	"github.com/pdiddy/qmconvert/internal/sheet"
	"github.com/pdiddy/qmconvert/internal/yamldoc"
	"github.com/pdiddy/qmconvert/pkg/types"
)

var xlsx2yamlCmd = &cobra.Command{
	Use:   "xlsx2yaml input.xlsx [output.yaml]",
	Short: "Convert the model workbook to the YAML hierarchy",
	Long: `xlsx2yaml reads the seven-column model table from a workbook and writes
the nested YAML document. Blank label cells continue the node opened by the
previous non-blank value, reproducing the workbook's merged cells.

The two published workbook variants place the header on different rows;
pick the matching preset with --layout (header-row1 or header-row3).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runXlsx2yaml,
}

func runXlsx2yaml(cmd *cobra.Command, args []string) error {
	cfg := sheetConfig(cmd)

	rows, err := sheet.ReadModelRows(args[0], cfg)
	if err != nil {
		return err
	}
	model := hierarchy.Build(rows)

	out := outputPath(args, ".yaml")
	if err := yamldoc.Save(out, model); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	printModelSummary(cmd.OutOrStdout(), model)
	return nil
}

// sheetConfig resolves the worksheet name and layout preset from flags,
// falling back to the config file.
func sheetConfig(cmd *cobra.Command) types.SheetConfig {
	name, _ := cmd.Flags().GetString("sheet")
	if name == "" {
		name = viper.GetString("sheet.name")
	}
	layout, _ := cmd.Flags().GetString("layout")
	if layout == "" {
		layout = viper.GetString("sheet.layout")
	}
	return types.SheetConfig{Sheet: name, Layout: types.SheetLayout(layout)}
}

// printModelSummary reports characteristic counts the way the conversion
// has always been sanity-checked: one line per characteristic with its
// sub-characteristic and direct-item counts.
func printModelSummary(w io.Writer, m *types.QualityModel) {
	fmt.Fprintf(w, "characteristics: %d\n", len(m.Characteristics))
	for i, qc := range m.Characteristics {
		fmt.Fprintf(w, "  %d. %s - subcharacteristics: %d, direct items: %d\n",
			i+1, qc.Name, len(qc.SubCharacteristics), len(qc.MeasurementItems))
	}
}

func init() {
	xlsx2yamlCmd.Flags().String("sheet", "", "worksheet holding the model table (default from config)")
	xlsx2yamlCmd.Flags().String("layout", "", "header preset: header-row1 or header-row3 (default from config)")

	rootCmd.AddCommand(xlsx2yamlCmd)
}
