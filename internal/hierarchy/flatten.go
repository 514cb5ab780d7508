// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hierarchy

import (
	"github.com/pdiddy/qmconvert/internal/textutil"
	"github.com/pdiddy/qmconvert/pkg/types"
)

// Flatten walks the model tree in document order and emits one row per
// measurement item, then blanks repeated ancestor labels so the table reads
// like the merged cells of the source workbook. Items with blank text are
// skipped. Build(Flatten(m)) reconstructs a tree isomorphic to m.
func Flatten(m *types.QualityModel) []types.Row {
	rows := expand(m)
	blankMerged(rows)
	return rows
}

// expand emits fully-labelled rows: each sub-characteristic's items in
// order, then any items attached directly under the characteristic.
func expand(m *types.QualityModel) []types.Row {
	var rows []types.Row
	for _, qc := range m.Characteristics {
		for _, sub := range qc.SubCharacteristics {
			for _, rec := range sub.MeasurementItems {
				if textutil.Clean(rec.Item) == "" {
					continue
				}
				rows = append(rows, types.Row{
					Characteristic:        qc.Name,
					CharacteristicDesc:    qc.Description,
					SubCharacteristic:     sub.Name,
					SubCharacteristicDesc: sub.Description,
					Item:                  rec.Item,
					Examples:              textutil.JoinList(rec.Examples),
					Violations:            textutil.JoinList(rec.Violations),
				})
			}
		}
		for _, rec := range qc.MeasurementItems {
			if textutil.Clean(rec.Item) == "" {
				continue
			}
			rows = append(rows, types.Row{
				Characteristic:     qc.Name,
				CharacteristicDesc: qc.Description,
				Item:               rec.Item,
				Examples:           textutil.JoinList(rec.Examples),
				Violations:         textutil.JoinList(rec.Violations),
			})
		}
	}
	return rows
}

// blankMerged blanks ancestor-label columns on every row after the first of
// a contiguous run sharing the same grouping key. The two column pairs are
// treated independently: the characteristic pair groups on the
// characteristic name alone, the sub-characteristic pair on the
// (characteristic, sub-characteristic) pair, so a sub-characteristic name
// recurring under a different characteristic is not blanked. Rows with an
// empty grouping key are never blanked.
func blankMerged(rows []types.Row) {
	type key struct {
		qc  string
		sub string
	}
	var prev key
	for i := range rows {
		k := key{qc: rows[i].Characteristic, sub: rows[i].SubCharacteristic}
		if i > 0 {
			if k.qc != "" && k.qc == prev.qc {
				rows[i].Characteristic = ""
				rows[i].CharacteristicDesc = ""
			}
			if k.sub != "" && k == prev {
				rows[i].SubCharacteristic = ""
				rows[i].SubCharacteristicDesc = ""
			}
		}
		prev = k
	}
}
