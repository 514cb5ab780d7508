// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParserConfig holds the labels and layout constants the Markdown parser
// keys on. The ASDoQ source documents are Japanese, so the defaults are the
// Japanese labels; a model authored with other labels only needs a config
// change, not a code change.
type ParserConfig struct {
	// DescriptionLabel is the exact level-2 heading title that opens the
	// sub-level description block (default 説明). Any other level-2 title
	// has its body discarded.
	DescriptionLabel string `json:"description_label" yaml:"description_label"`

	// ExampleLabel is the prefix of a level-4 heading title that switches
	// collection to the examples list (default 例).
	ExampleLabel string `json:"example_label" yaml:"example_label"`

	// ViolationLabel is the prefix of a level-4 heading title that switches
	// collection to the violations list (default 違反例).
	ViolationLabel string `json:"violation_label" yaml:"violation_label"`

	// IndentWidth is the number of leading spaces per bullet nesting unit
	// (default 4).
	IndentWidth int `json:"indent_width" yaml:"indent_width"`
}

// DefaultParserConfig returns the labels used by the ASDoQ Markdown source.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		DescriptionLabel: "説明",
		ExampleLabel:     "例",
		ViolationLabel:   "違反例",
		IndentWidth:      4,
	}
}

// SheetLayout names a header-row preset for the model workbook. The two
// source workbook variants place the header on different rows; nothing in
// the file distinguishes them at runtime, so the caller picks a preset.
type SheetLayout string

const (
	// LayoutHeaderRow1 expects the column headers on the first row, data
	// from the second.
	LayoutHeaderRow1 SheetLayout = "header-row1"

	// LayoutHeaderRow3 expects the column headers on the third row, data
	// from the fourth.
	LayoutHeaderRow3 SheetLayout = "header-row3"
)

// DataRow returns the 1-based index of the first data row for the layout,
// and reports whether the layout is known.
func (l SheetLayout) DataRow() (int, bool) {
	switch l {
	case LayoutHeaderRow1:
		return 2, true
	case LayoutHeaderRow3:
		return 4, true
	}
	return 0, false
}

// SheetConfig selects the worksheet and header layout for spreadsheet reads.
type SheetConfig struct {
	// Sheet is the worksheet name holding the model table.
	Sheet string `json:"sheet" yaml:"sheet"`

	// Layout is the header-row preset.
	Layout SheetLayout `json:"layout" yaml:"layout"`
}

// DefaultModelSheet is the worksheet name of the full model table in the
// published ASDoQ workbook.
const DefaultModelSheet = "品質特性・副特性・測定項目（例・違反例を含む）"
