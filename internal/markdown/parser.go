// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown parses the hand-authored quality-model documents: a
// five-level heading hierarchy (sub-characteristic, description, measurement
// item, example/violation block, example sub-heading) with nested bullet
// lists, preceded by an optional frontmatter block.
//
// The parser is deliberately lenient: headings that make no sense in the
// current state (a level-4 block with no open item, extra heading levels)
// are skipped without error, matching how the source documents have always
// been processed.
package markdown

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/qmconvert/pkg/types"
)

// MeasurementItem is one parsed level-3 section together with the text it
// inherits from its enclosing level-1 and description blocks.
type MeasurementItem struct {
	// TopLevelText is the body of the enclosing level-1 section, snapshotted
	// when the item's heading was opened.
	TopLevelText string

	// SubLevelText is the body of the nearest description section,
	// snapshotted when the item's heading was opened. Empty if none.
	SubLevelText string

	// Title is the level-3 heading text. Always non-empty.
	Title string

	// BodyLines holds the section's own text and bullets, bullets prefixed
	// with a depth marker ("- ", "-- ", ...).
	BodyLines []string

	// ExampleLines holds the lines collected under an example block.
	ExampleLines []string

	// ViolationLines holds the lines collected under a violation block.
	// The "***" separator lines of the source documents are dropped.
	ViolationLines []string
}

// mode tracks which section of the document is currently collecting lines.
type mode int

const (
	modeNone mode = iota
	modeTop
	modeSub
	modeItemBody
	modeExample
	modeViolation
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	bulletRe  = regexp.MustCompile(`^(\s*)([-*])\s+(.*)$`)
)

// frontmatterDelim toggles frontmatter skipping; the delimiter lines
// themselves are consumed.
const frontmatterDelim = "---"

// violationSeparator is a decorative divider inside violation blocks. It is
// dropped, never stored.
const violationSeparator = "***"

// Parser turns a quality-model Markdown document into measurement items.
type Parser struct {
	cfg types.ParserConfig
}

// NewParser returns a Parser using the given labels. Zero-value label fields
// fall back to the defaults.
func NewParser(cfg types.ParserConfig) *Parser {
	def := types.DefaultParserConfig()
	if cfg.DescriptionLabel == "" {
		cfg.DescriptionLabel = def.DescriptionLabel
	}
	if cfg.ExampleLabel == "" {
		cfg.ExampleLabel = def.ExampleLabel
	}
	if cfg.ViolationLabel == "" {
		cfg.ViolationLabel = def.ViolationLabel
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = def.IndentWidth
	}
	return &Parser{cfg: cfg}
}

// Parse reads the whole document from r and returns its measurement items
// in document order. The only possible error is a read failure.
func (p *Parser) Parse(r io.Reader) ([]MeasurementItem, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.ParseLines(lines), nil
}

// ParseLines parses an in-memory document. Malformed heading sequences are
// skipped, never reported.
func (p *Parser) ParseLines(lines []string) []MeasurementItem {
	st := &docState{}
	inFrontmatter := false

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\n")

		if strings.TrimSpace(line) == frontmatterDelim {
			inFrontmatter = !inFrontmatter
			continue
		}
		if inFrontmatter {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			p.handleHeading(st, len(m[1]), strings.TrimSpace(m[2]))
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil && st.current != nil {
			p.handleBullet(st, m[1], m[3])
			continue
		}

		st.handleText(strings.TrimSpace(line))
	}

	st.closeItem()
	return st.items
}

// handleHeading dispatches on the heading level. Only level-1 and level-3
// headings close the open item; in particular a level-2 heading leaves it
// open, so a description block between items does not truncate the earlier
// item.
func (p *Parser) handleHeading(st *docState, level int, title string) {
	switch level {
	case 1:
		st.closeItem()
		st.topBuf = nil
		st.mode = modeTop
	case 2:
		if title == p.cfg.DescriptionLabel {
			st.subBuf = nil
			st.mode = modeSub
		} else {
			// Other level-2 sections carry no model text; their body is
			// discarded.
			st.mode = modeNone
		}
	case 3:
		st.closeItem()
		if title == "" {
			st.mode = modeNone
			return
		}
		st.current = &MeasurementItem{
			TopLevelText: strings.TrimSpace(strings.Join(st.topBuf, "\n")),
			SubLevelText: strings.TrimSpace(strings.Join(st.subBuf, "\n")),
			Title:        title,
		}
		st.mode = modeItemBody
	case 4:
		if st.current == nil {
			return
		}
		switch {
		case strings.HasPrefix(title, p.cfg.ExampleLabel):
			st.mode = modeExample
		case strings.HasPrefix(title, p.cfg.ViolationLabel):
			st.mode = modeViolation
		default:
			st.mode = modeNone
		}
	default: // level 5 and 6
		if st.current == nil {
			return
		}
		// Example sub-headings keep their title verbatim, with no depth
		// marker.
		switch st.mode {
		case modeExample:
			st.current.ExampleLines = append(st.current.ExampleLines, title)
		case modeViolation:
			st.current.ViolationLines = append(st.current.ViolationLines, title)
		}
	}
}

// handleBullet appends a bullet with its depth marker: indentation is
// measured in IndentWidth units, and a bullet at depth n is prefixed with
// n+1 dashes and a space.
func (p *Parser) handleBullet(st *docState, indent, text string) {
	depth := len(indent) / p.cfg.IndentWidth
	line := strings.Repeat("-", depth+1) + " " + strings.TrimSpace(text)
	switch st.mode {
	case modeItemBody:
		st.current.BodyLines = append(st.current.BodyLines, line)
	case modeExample:
		st.current.ExampleLines = append(st.current.ExampleLines, line)
	case modeViolation:
		st.current.ViolationLines = append(st.current.ViolationLines, line)
	}
}

// docState is the parser's explicit state: the collection mode, the item
// under construction, and the level-1/description text accumulators. The
// accumulators are joined and copied into each item when its heading opens,
// so later lines never mutate an already-built item.
type docState struct {
	mode    mode
	current *MeasurementItem
	topBuf  []string
	subBuf  []string
	items   []MeasurementItem
}

// closeItem moves the item under construction into the output list.
func (st *docState) closeItem() {
	if st.current != nil {
		st.items = append(st.items, *st.current)
		st.current = nil
	}
}

// handleText routes a plain (non-heading, non-bullet) line to the collector
// selected by the current mode. Lines with no collector are discarded.
func (st *docState) handleText(text string) {
	switch st.mode {
	case modeTop:
		st.topBuf = append(st.topBuf, text)
	case modeSub:
		st.subBuf = append(st.subBuf, text)
	case modeItemBody:
		if st.current != nil {
			st.current.BodyLines = append(st.current.BodyLines, text)
		}
	case modeExample:
		if st.current != nil {
			st.current.ExampleLines = append(st.current.ExampleLines, text)
		}
	case modeViolation:
		if st.current != nil && text != violationSeparator {
			st.current.ViolationLines = append(st.current.ViolationLines, text)
		}
	}
}
