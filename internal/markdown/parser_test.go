// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/qmconvert/pkg/types"
)

// testConfig uses English labels so the fixtures stay readable; label
// handling itself is covered by TestParse_DefaultLabels.
func testConfig() types.ParserConfig {
	return types.ParserConfig{
		DescriptionLabel: "description",
		ExampleLabel:     "example",
		ViolationLabel:   "violation-example",
		IndentWidth:      4,
	}
}

func parseDoc(t *testing.T, doc string) []MeasurementItem {
	t.Helper()
	return NewParser(testConfig()).ParseLines(strings.Split(doc, "\n"))
}

func TestParse_SingleItem(t *testing.T) {
	items := parseDoc(t, `# A
desc1
## description
subdesc1
### M1
#### example
ex1`)

	want := []MeasurementItem{{
		TopLevelText: "desc1",
		SubLevelText: "subdesc1",
		Title:        "M1",
		ExampleLines: []string{"ex1"},
	}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %+v, want %+v", items, want)
	}
}

func TestParse_InheritedTextShared(t *testing.T) {
	items := parseDoc(t, `# A
desc1
## description
subdesc1
### M1
body M1
### M2
body M2`)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for i, it := range items {
		if it.TopLevelText != "desc1" || it.SubLevelText != "subdesc1" {
			t.Errorf("item %d inherited text = (%q, %q), want (desc1, subdesc1)", i, it.TopLevelText, it.SubLevelText)
		}
	}
	if items[0].Title != "M1" || items[1].Title != "M2" {
		t.Errorf("titles = %q, %q", items[0].Title, items[1].Title)
	}
	if !reflect.DeepEqual(items[1].BodyLines, []string{"body M2"}) {
		t.Errorf("M2 body = %v", items[1].BodyLines)
	}
}

// The inherited text is a snapshot taken when the item's heading opens; a
// later description block must not leak back into earlier items.
func TestParse_InheritedTextSnapshot(t *testing.T) {
	items := parseDoc(t, `# A
top
## description
first
### M1
## description
second
### M2`)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].SubLevelText != "first" {
		t.Errorf("M1 sub text = %q, want %q", items[0].SubLevelText, "first")
	}
	if items[1].SubLevelText != "second" {
		t.Errorf("M2 sub text = %q, want %q", items[1].SubLevelText, "second")
	}
}

func TestParse_BulletDepth(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"top level", "- point", "- point"},
		{"one unit", "    - point", "-- point"},
		{"two units", "        - point", "--- point"},
		{"asterisk marker", "* point", "- point"},
		{"partial indent rounds down", "   - point", "- point"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parseDoc(t, "# A\n### M1\n#### example\n"+tt.line)
			if len(items) != 1 {
				t.Fatalf("got %d items, want 1", len(items))
			}
			if !reflect.DeepEqual(items[0].ExampleLines, []string{tt.want}) {
				t.Errorf("examples = %v, want [%q]", items[0].ExampleLines, tt.want)
			}
		})
	}
}

// A bullet at two indentation units under an example heading carries
// exactly the "-- " marker in the examples list.
func TestParse_NestedBulletMarker(t *testing.T) {
	items := parseDoc(t, `# A
### M1
#### example
- outer
        - inner`)

	want := []string{"- outer", "--- inner"}
	if !reflect.DeepEqual(items[0].ExampleLines, want) {
		t.Errorf("examples = %v, want %v", items[0].ExampleLines, want)
	}
}

func TestParse_ViolationSeparatorDropped(t *testing.T) {
	items := parseDoc(t, `# A
### M1
#### violation-example
***
bad1
***`)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !reflect.DeepEqual(items[0].ViolationLines, []string{"bad1"}) {
		t.Errorf("violations = %v, want [bad1]", items[0].ViolationLines)
	}
}

// The separator is only special inside violation blocks; an example block
// keeps it.
func TestParse_SeparatorKeptInExamples(t *testing.T) {
	items := parseDoc(t, `# A
### M1
#### example
***
good`)

	if !reflect.DeepEqual(items[0].ExampleLines, []string{"***", "good"}) {
		t.Errorf("examples = %v", items[0].ExampleLines)
	}
}

func TestParse_Frontmatter(t *testing.T) {
	items := parseDoc(t, `---
title: quality model
version: 2
---
# A
top text
### M1`)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].TopLevelText != "top text" {
		t.Errorf("top text = %q, frontmatter leaked into the body", items[0].TopLevelText)
	}
}

func TestParse_FifthLevelHeading(t *testing.T) {
	items := parseDoc(t, `# A
### M1
#### example
##### Case 1
line under case`)

	want := []string{"Case 1", "line under case"}
	if !reflect.DeepEqual(items[0].ExampleLines, want) {
		t.Errorf("examples = %v, want %v", items[0].ExampleLines, want)
	}
}

func TestParse_LenientHeadings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []MeasurementItem
	}{
		{
			// A level-2 heading does not close the open item, so an example
			// block after an intervening section still attaches to it.
			name: "level-2 heading keeps item open",
			doc:  "# A\n### M1\n## something else\ndiscarded\n#### example\nex1",
			want: []MeasurementItem{{Title: "M1", ExampleLines: []string{"ex1"}}},
		},
		{
			name: "non-description level-2 body discarded",
			doc:  "# A\n## notes\nignored\n### M1",
			want: []MeasurementItem{{Title: "M1"}},
		},
		{
			// With no open item the level-4 heading is skipped and the mode
			// is left alone, so the following line still lands in the
			// level-1 buffer.
			name: "level-4 heading with no open item ignored",
			doc:  "# A\ntop\n#### example\nstray\n### M1",
			want: []MeasurementItem{{TopLevelText: "top\nstray", Title: "M1"}},
		},
		{
			name: "unrecognized level-4 title stops collection",
			doc:  "# A\n### M1\n#### remarks\ndropped\n",
			want: []MeasurementItem{{Title: "M1"}},
		},
		{
			name: "empty level-3 title produces no record",
			doc:  "# A\n###\norphan line",
			want: nil,
		},
		{
			name: "fifth-level heading outside example blocks ignored",
			doc:  "# A\n### M1\n##### stray",
			want: []MeasurementItem{{Title: "M1"}},
		},
		{
			name: "text before any heading discarded",
			doc:  "loose text\n# A\ntop\n### M1",
			want: []MeasurementItem{{TopLevelText: "top", Title: "M1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDoc(t, tt.doc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("items = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_LevelOneResetsTopBuffer(t *testing.T) {
	items := parseDoc(t, `# A
first top
### M1
# B
second top
### M2`)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].TopLevelText != "first top" {
		t.Errorf("M1 top = %q", items[0].TopLevelText)
	}
	if items[1].TopLevelText != "second top" {
		t.Errorf("M2 top = %q, buffer not reset at level-1 heading", items[1].TopLevelText)
	}
}

func TestParse_DefaultLabels(t *testing.T) {
	doc := `# 明瞭性
文書が明瞭であること。
## 説明
一意に読み取れる。
### 用語が統一されている
- 用語集で定義する
#### 例
用語集の通りに使う。
#### 違反例
***
同じ概念に別の語を使う。`

	items := NewParser(types.DefaultParserConfig()).ParseLines(strings.Split(doc, "\n"))
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.TopLevelText != "文書が明瞭であること。" {
		t.Errorf("top text = %q", it.TopLevelText)
	}
	if it.SubLevelText != "一意に読み取れる。" {
		t.Errorf("sub text = %q", it.SubLevelText)
	}
	if it.Title != "用語が統一されている" {
		t.Errorf("title = %q", it.Title)
	}
	if !reflect.DeepEqual(it.BodyLines, []string{"- 用語集で定義する"}) {
		t.Errorf("body = %v", it.BodyLines)
	}
	if !reflect.DeepEqual(it.ExampleLines, []string{"用語集の通りに使う。"}) {
		t.Errorf("examples = %v", it.ExampleLines)
	}
	if !reflect.DeepEqual(it.ViolationLines, []string{"同じ概念に別の語を使う。"}) {
		t.Errorf("violations = %v", it.ViolationLines)
	}
}

func TestParse_Reader(t *testing.T) {
	doc := "# A\ntop\n### M1\nbody"
	items, err := NewParser(testConfig()).Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 1 || items[0].Title != "M1" {
		t.Errorf("items = %+v", items)
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	items := parseDoc(t, "# A\n\ntop one\n\n\ntop two\n\n### M1\n\nbody\n")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].TopLevelText != "top one\ntop two" {
		t.Errorf("top text = %q", items[0].TopLevelText)
	}
	if !reflect.DeepEqual(items[0].BodyLines, []string{"body"}) {
		t.Errorf("body = %v", items[0].BodyLines)
	}
}
