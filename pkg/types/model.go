// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures of the quality-model
// converter: the nested model tree, the flattened row shape, and the
// configuration structs consumed by the command layer.
package types

// QualityModel is the canonical hierarchical representation of a quality
// model: an ordered list of characteristics, each with sub-characteristics
// and measurement items. It is the shape serialized to and from the YAML
// document.
type QualityModel struct {
	// Characteristics lists the top-level quality characteristics in
	// document order.
	Characteristics []*QualityCharacteristic `json:"characteristics" yaml:"characteristics"`
}

// QualityCharacteristic is a top-level grouping node.
type QualityCharacteristic struct {
	// Name is the characteristic label (e.g. 正確性).
	Name string `json:"name" yaml:"name"`

	// Description is the free-text explanation of the characteristic.
	Description string `json:"description" yaml:"description"`

	// SubCharacteristics lists the second-level nodes in document order.
	SubCharacteristics []*SubCharacteristic `json:"subcharacteristics" yaml:"subcharacteristics"`

	// MeasurementItems holds items attached directly under the
	// characteristic. Populated only while no sub-characteristic has been
	// opened for this characteristic.
	MeasurementItems []MeasurementItemRecord `json:"measurementItems,omitempty" yaml:"measurementItems,omitempty"`
}

// SubCharacteristic is a second-level grouping node nested under a
// characteristic.
type SubCharacteristic struct {
	// Name is the sub-characteristic label.
	Name string `json:"name" yaml:"name"`

	// Description is the free-text explanation of the sub-characteristic.
	Description string `json:"description" yaml:"description"`

	// MeasurementItems lists the leaf records in document order.
	MeasurementItems []MeasurementItemRecord `json:"measurementItems" yaml:"measurementItems"`
}

// MeasurementItemRecord is one leaf criterion of the model with its
// illustrative examples.
type MeasurementItemRecord struct {
	// Item is the criterion text. Records with empty Item are never built.
	Item string `json:"item" yaml:"item"`

	// Examples lists positive example lines.
	Examples []string `json:"examples" yaml:"examples"`

	// Violations lists negative (violation) example lines.
	Violations []string `json:"violations" yaml:"violations"`
}

// Row is one line of the flattened tabular form: the fixed seven-column
// layout shared by the model spreadsheet and the CSV output. Label columns
// may be blank where merge emulation applies; a blank label means "same as
// the previous non-blank value above".
type Row struct {
	Characteristic        string
	CharacteristicDesc    string
	SubCharacteristic     string
	SubCharacteristicDesc string
	Item                  string
	Examples              string
	Violations            string
}

// ModelColumns are the seven column headers of the flattened form, in
// order, as they appear in the source workbook.
var ModelColumns = []string{
	"品質特性",
	"品質特性の説明",
	"品質副特性",
	"品質副特性の説明",
	"測定項目",
	"例",
	"違反例",
}

// ItemSheetColumns are the five column headers of the Markdown-export
// sheet, in order. The Markdown documents describe one characteristic's
// sub-characteristics, so the sheet has no characteristic pair.
var ItemSheetColumns = []string{
	"品質副特性",
	"説明",
	"測定項目",
	"例",
	"違反例",
}
