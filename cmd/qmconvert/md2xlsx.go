// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/qmconvert/internal/markdown"
	"github.com/pdiddy/qmconvert/internal/sheet"
)

var md2xlsxCmd = &cobra.Command{
	Use:   "md2xlsx input.md [output.xlsx]",
	Short: "Convert a quality-model Markdown document to a workbook",
	Long: `md2xlsx parses a quality-model Markdown document (level-1 heading per
sub-characteristic, a description section, level-3 measurement items with
example and violation blocks) and writes a five-column workbook with one
row per measurement item.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMd2xlsx,
}

func runMd2xlsx(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	items, err := markdown.NewParser(parserConfig()).Parse(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	sheetName, _ := cmd.Flags().GetString("sheet")
	out := outputPath(args, ".xlsx")
	if err := sheet.WriteItemSheet(out, sheetName, items); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d measurement items)\n", out, len(items))
	return nil
}

func init() {
	md2xlsxCmd.Flags().String("sheet", "Sheet1", "worksheet name for the output")

	rootCmd.AddCommand(md2xlsxCmd)
}
