// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qmconvert/internal/csvdoc"
	"github.com/pdiddy/qmconvert/internal/hierarchy"
	"github.com/pdiddy/qmconvert/internal/yamldoc"
)

var csv2yamlCmd = &cobra.Command{
	Use:   "csv2yaml input.csv [output.yaml]",
	Short: "Rebuild the YAML hierarchy from a flattened CSV",
	Long: `csv2yaml reads a flattened seven-column CSV and reconstructs the
nested YAML document. Blank label cells continue the node opened by the
previous non-blank value, so a file produced by yaml2csv rebuilds the
original hierarchy.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCsv2yaml,
}

func runCsv2yaml(cmd *cobra.Command, args []string) error {
	rows, err := csvdoc.Read(args[0])
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

func init() {
	rootCmd.AddCommand(csv2yamlCmd)
}
