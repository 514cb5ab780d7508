// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads and writes the Excel representations of the quality
// model: the seven-column model table on the way in, the five-column
// Markdown-export layout on the way out.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/qmconvert/pkg/types"
)

// ReadModelRows reads the model table from the named worksheet. The layout
// preset decides where data starts; header rows are not inspected. Missing
// trailing cells come back as empty strings, matching how merged or blank
// cells appear in the workbook.
func ReadModelRows(path string, cfg types.SheetConfig) ([]types.Row, error) {
	start, ok := cfg.Layout.DataRow()
	if !ok {
		return nil, fmt.Errorf("unknown sheet layout %q", cfg.Layout)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	raw, err := f.GetRows(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", cfg.Sheet, err)
	}

	var rows []types.Row
	for i := start - 1; i < len(raw); i++ {
		rows = append(rows, rowFromCells(raw[i]))
	}
	return rows, nil
}

// rowFromCells maps one sheet row onto the fixed seven-column layout.
func rowFromCells(cells []string) types.Row {
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return types.Row{
		Characteristic:        cell(0),
		CharacteristicDesc:    cell(1),
		SubCharacteristic:     cell(2),
		SubCharacteristicDesc: cell(3),
		Item:                  cell(4),
		Examples:              cell(5),
		Violations:            cell(6),
	}
}
