// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/qmconvert/internal/markdown"
	"github.com/pdiddy/qmconvert/pkg/types"
)

// WriteItemSheet writes parsed measurement items to a new workbook in the
// five-column Markdown-export layout: sub-characteristic text, description
// text, item title with its body, examples, violations. The item column
// joins title and body lines with newlines.
func WriteItemSheet(path, sheetName string, items []markdown.MeasurementItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "" && sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	} else {
		sheetName = "Sheet1"
	}

	header := make([]interface{}, len(types.ItemSheetColumns))
	for i, c := range types.ItemSheetColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, it := range items {
		row := []interface{}{
			it.TopLevelText,
			it.SubLevelText,
			strings.Join(append([]string{it.Title}, it.BodyLines...), "\n"),
			strings.Join(it.ExampleLines, "\n"),
			strings.Join(it.ViolationLines, "\n"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
