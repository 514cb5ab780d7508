// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hierarchy converts between the nested quality-model tree and the
// flattened seven-column row form. The row form carries merged-cell
// semantics: a blank label cell means "same as the previous non-blank value
// above", so building a tree and flattening one are inverse walks over the
// same grouping rule.
package hierarchy

import (
	"github.com/pdiddy/qmconvert/internal/textutil"
	"github.com/pdiddy/qmconvert/pkg/types"
)

// Build groups flattened rows into the nested model tree. A non-empty
// characteristic or sub-characteristic cell that differs from the one
// currently open appends a new node; blank cells continue the open node.
// Rows with a blank item cell contribute labels only. Items on rows before
// any characteristic has opened have nowhere to attach and are dropped.
func Build(rows []types.Row) *types.QualityModel {
	model := &types.QualityModel{}

	var (
		cur    *types.QualityCharacteristic
		curSub *types.SubCharacteristic
	)

	for _, row := range rows {
		name := textutil.Clean(row.Characteristic)
		subName := textutil.Clean(row.SubCharacteristic)
		item := textutil.Clean(row.Item)

		if name != "" && (cur == nil || name != cur.Name) {
			cur = &types.QualityCharacteristic{
				Name:               name,
				Description:        textutil.Clean(row.CharacteristicDesc),
				SubCharacteristics: []*types.SubCharacteristic{},
			}
			model.Characteristics = append(model.Characteristics, cur)
			curSub = nil
		}

		if subName != "" && (curSub == nil || subName != curSub.Name) && cur != nil {
			curSub = &types.SubCharacteristic{
				Name:             subName,
				Description:      textutil.Clean(row.SubCharacteristicDesc),
				MeasurementItems: []types.MeasurementItemRecord{},
			}
			cur.SubCharacteristics = append(cur.SubCharacteristics, curSub)
		}

		if item == "" || cur == nil {
			continue
		}
		rec := types.MeasurementItemRecord{
			Item:       item,
			Examples:   textutil.SplitList(textutil.Clean(row.Examples)),
			Violations: textutil.SplitList(textutil.Clean(row.Violations)),
		}
		if curSub != nil {
			curSub.MeasurementItems = append(curSub.MeasurementItems, rec)
		} else {
			cur.MeasurementItems = append(cur.MeasurementItems, rec)
		}
	}

	return model
}
