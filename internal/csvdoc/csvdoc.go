// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvdoc reads and writes the flattened seven-column CSV form.
// Files are written UTF-8 with a byte-order mark so spreadsheet tools open
// them correctly; multi-line cell values rely on standard CSV quoting.
package csvdoc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/qmconvert/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write writes the header row and one record per flattened row.
func Write(path string, rows []types.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(types.ModelColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Characteristic,
			row.CharacteristicDesc,
			row.SubCharacteristic,
			row.SubCharacteristicDesc,
			row.Item,
			row.Examples,
			row.Violations,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Read parses a flattened CSV back into rows, stripping an optional BOM and
// skipping a leading header row when present. Short records are padded with
// empty cells.
func Read(path string) ([]types.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var rows []types.Row
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == types.ModelColumns[0] {
			continue
		}
		cell := func(j int) string {
			if j < len(record) {
				return record[j]
			}
			return ""
		}
		rows = append(rows, types.Row{
			Characteristic:        cell(0),
			CharacteristicDesc:    cell(1),
			SubCharacteristic:     cell(2),
			SubCharacteristicDesc: cell(3),
			Item:                  cell(4),
			Examples:              cell(5),
			Violations:            cell(6),
		})
	}
	return rows, nil
}
