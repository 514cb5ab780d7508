// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qmconvert/internal/csvdoc"
	"github.com/pdiddy/qmconvert/internal/hierarchy"
	"github.com/pdiddy/qmconvert/internal/yamldoc"
)

var yaml2csvCmd = &cobra.Command{
	Use:   "yaml2csv input.yaml [output.csv]",
	Short: "Flatten the YAML hierarchy to CSV with merge emulation",
	Long: `yaml2csv flattens the nested YAML document to the seven-column CSV
form, one row per measurement item. Repeated characteristic and
sub-characteristic labels are blanked after their first row, emulating the
merged cells of the source workbook. Output is UTF-8 with a byte-order
mark so spreadsheet tools open it correctly.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runYaml2csv,
}

func runYaml2csv(cmd *cobra.Command, args []string) error {
	model, err := yamldoc.Load(args[0])
	if err != nil {
		return err
	}

	rows := hierarchy.Flatten(model)
	out := outputPath(args, ".csv")
	if err := csvdoc.Write(out, rows); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", out, len(rows))
	return nil
}

func init() {
	rootCmd.AddCommand(yaml2csvCmd)
}
