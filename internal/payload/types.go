package payload

import "fmt"

// Kind is the Lexical node "type" discriminator.
type Kind string

const (
	KindRoot           Kind = "root"
	KindParagraph      Kind = "paragraph"
	KindHeading        Kind = "heading"
	KindQuote          Kind = "quote"
	KindCode           Kind = "code"
	KindCodeHighlight  Kind = "code-highlight"
	KindLineBreak      Kind = "linebreak"
	KindHorizontalRule Kind = "horizontalrule"
	KindList           Kind = "list"
	KindListItem       Kind = "listitem"
	KindTable          Kind = "table"
	KindTableRow       Kind = "tablerow"
	KindTableCell      Kind = "tablecell"
	KindText           Kind = "text"
	KindLink           Kind = "link"
)

// Text format bit flags. Values are additive.
const (
	FormatBold   = 1
	FormatItalic = 2
	FormatCode   = 16
)

// List types.
const (
	ListBullet = "bullet"
	ListNumber = "number"
)

// Node is any node of a Lexical document tree.
type Node interface {
	NodeType() Kind
}

// Element holds the attributes shared by every Lexical element node.
type Element struct {
	Direction string `json:"direction"`
	Format    string `json:"format"`
	Indent    int    `json:"indent"`
	Version   int    `json:"version"`
}

func newElement() Element {
	return Element{Direction: "ltr", Version: 1}
}

// Document is the rich-text field value stored by the CMS.
type Document struct {
	Root *Root `json:"root"`
}

// Root is the top of a document. Its children are block nodes only.
type Root struct {
	Type     Kind   `json:"type"`
	Children []Node `json:"children"`
	Element
}

// Paragraph is a block of inline nodes.
type Paragraph struct {
	Type     Kind   `json:"type"`
	Children []Node `json:"children"`
	Element
	TextFormat int    `json:"textFormat"`
	TextStyle  string `json:"textStyle"`
}

// Heading is a block of inline nodes tagged h1..h6.
type Heading struct {
	Type     Kind   `json:"type"`
	Tag      string `json:"tag"`
	Children []Node `json:"children"`
	Element
}

// Quote is a block quote flattened to one run of inline nodes.
type Quote struct {
	Type     Kind   `json:"type"`
	Children []Node `json:"children"`
	Element
}

// Code is a fenced code block. Children alternate CodeHighlight and LineBreak.
type Code struct {
	Type     Kind   `json:"type"`
	Children []Node `json:"children"`
	Element
	Language string `json:"language"`
}

// CodeHighlight is one literal line of a code block.
type CodeHighlight struct {
	Type          Kind    `json:"type"`
	Text          string  `json:"text"`
	HighlightType *string `json:"highlightType"`
	Version       int     `json:"version"`
}

// LineBreak separates code lines.
type LineBreak struct {
	Type    Kind `json:"type"`
	Version int  `json:"version"`
}

// HorizontalRule is a thematic break.
type HorizontalRule struct {
	Type    Kind `json:"type"`
	Version int  `json:"version"`
}

// List is a bulleted or numbered list.
type List struct {
	Type     Kind        `json:"type"`
	ListType string      `json:"listType"`
	Children []*ListItem `json:"children"`
	Element
	Start int    `json:"start"`
	Tag   string `json:"tag"`
}

// ListItem wraps exactly one paragraph. Value is its 1-based position.
type ListItem struct {
	Type     Kind         `json:"type"`
	Children []*Paragraph `json:"children"`
	Element
	Value int `json:"value"`
}

// Table holds rows in source order.
type Table struct {
	Type     Kind        `json:"type"`
	Children []*TableRow `json:"children"`
	Element
}

// TableRow holds cells in source order. Rows are not padded.
type TableRow struct {
	Type     Kind         `json:"type"`
	Children []*TableCell `json:"children"`
	Element
}

// TableCell wraps one paragraph of inline nodes.
type TableCell struct {
	Type     Kind         `json:"type"`
	Children []*Paragraph `json:"children"`
	Element
	HeaderState int  `json:"headerState"`
	Width       *int `json:"width"`
	ColSpan     int  `json:"colSpan"`
}

// Text is a run of literal text with a format mask.
type Text struct {
	Type    Kind   `json:"type"`
	Text    string `json:"text"`
	Format  int    `json:"format"`
	Detail  int    `json:"detail"`
	Mode    string `json:"mode"`
	Style   string `json:"style"`
	Version int    `json:"version"`
}

// LinkFields is the link target as stored by the CMS link feature.
type LinkFields struct {
	URL      string `json:"url"`
	LinkType string `json:"linkType"`
	NewTab   bool   `json:"newTab"`
}

// Link carries exactly one Text child holding the visible label.
type Link struct {
	Type     Kind       `json:"type"`
	Children []*Text    `json:"children"`
	Fields   LinkFields `json:"fields"`
	Element
}

func (*Root) NodeType() Kind           { return KindRoot }
func (*Paragraph) NodeType() Kind      { return KindParagraph }
func (*Heading) NodeType() Kind        { return KindHeading }
func (*Quote) NodeType() Kind          { return KindQuote }
func (*Code) NodeType() Kind           { return KindCode }
func (*CodeHighlight) NodeType() Kind  { return KindCodeHighlight }
func (*LineBreak) NodeType() Kind      { return KindLineBreak }
func (*HorizontalRule) NodeType() Kind { return KindHorizontalRule }
func (*List) NodeType() Kind           { return KindList }
func (*ListItem) NodeType() Kind       { return KindListItem }
func (*Table) NodeType() Kind          { return KindTable }
func (*TableRow) NodeType() Kind       { return KindTableRow }
func (*TableCell) NodeType() Kind      { return KindTableCell }
func (*Text) NodeType() Kind           { return KindText }
func (*Link) NodeType() Kind           { return KindLink }

// NewText creates a text leaf.
func NewText(text string, format int) *Text {
	return &Text{Type: KindText, Text: text, Format: format, Mode: "normal", Version: 1}
}

// NewLink creates a link whose label carries the given format. url must
// already be sanitized.
func NewLink(label, url string, format int) *Link {
	return &Link{
		Type:     KindLink,
		Children: []*Text{NewText(label, format)},
		Fields:   LinkFields{URL: url, LinkType: "custom"},
		Element:  newElement(),
	}
}

// NewParagraph creates a paragraph from inline nodes.
func NewParagraph(children []Node) *Paragraph {
	return &Paragraph{Type: KindParagraph, Children: children, Element: newElement()}
}

// NewHeading creates a heading. level is clamped to 1..6.
func NewHeading(level int, children []Node) *Heading {
	level = min(max(level, 1), 6)
	return &Heading{
		Type:     KindHeading,
		Tag:      fmt.Sprintf("h%d", level),
		Children: children,
		Element:  newElement(),
	}
}

// Level returns the heading level, 1..6.
func (h *Heading) Level() int {
	if len(h.Tag) != 2 || h.Tag[1] < '1' || h.Tag[1] > '6' {
		return 0
	}
	return int(h.Tag[1] - '0')
}

// NewQuote creates a quote block.
func NewQuote(children []Node) *Quote {
	return &Quote{Type: KindQuote, Children: children, Element: newElement()}
}

// NewCode creates a code block from literal lines, inserting a line break
// between consecutive lines. A block with no lines still holds one empty line.
func NewCode(lines []string, language string) *Code {
	if len(lines) == 0 {
		lines = []string{""}
	}
	children := make([]Node, 0, len(lines)*2-1)
	for i, line := range lines {
		children = append(children, &CodeHighlight{Type: KindCodeHighlight, Text: line, Version: 1})
		if i < len(lines)-1 {
			children = append(children, &LineBreak{Type: KindLineBreak, Version: 1})
		}
	}
	return &Code{Type: KindCode, Children: children, Element: newElement(), Language: language}
}

// NewHorizontalRule creates a thematic break.
func NewHorizontalRule() *HorizontalRule {
	return &HorizontalRule{Type: KindHorizontalRule, Version: 1}
}

// NewList creates a list, numbering items by position.
func NewList(listType string, items [][]Node) *List {
	tag := "ul"
	if listType == ListNumber {
		tag = "ol"
	}
	children := make([]*ListItem, 0, len(items))
	for i, inline := range items {
		children = append(children, &ListItem{
			Type:     KindListItem,
			Children: []*Paragraph{NewParagraph(inline)},
			Element:  newElement(),
			Value:    i + 1,
		})
	}
	return &List{
		Type:     KindList,
		ListType: listType,
		Children: children,
		Element:  newElement(),
		Start:    1,
		Tag:      tag,
	}
}

// NewTableCell creates a cell wrapping one paragraph.
func NewTableCell(children []Node, header bool) *TableCell {
	state := 0
	if header {
		state = 1
	}
	return &TableCell{
		Type:        KindTableCell,
		Children:    []*Paragraph{NewParagraph(children)},
		Element:     newElement(),
		HeaderState: state,
		ColSpan:     1,
	}
}

// IsHeader reports whether the cell belongs to the header row.
func (c *TableCell) IsHeader() bool { return c.HeaderState != 0 }

// NewTableRow creates a row.
func NewTableRow(cells []*TableCell) *TableRow {
	return &TableRow{Type: KindTableRow, Children: cells, Element: newElement()}
}

// NewTable creates a table.
func NewTable(rows []*TableRow) *Table {
	return &Table{Type: KindTable, Children: rows, Element: newElement()}
}

// NewDocument wraps block nodes into a root.
func NewDocument(blocks []Node) *Document {
	if blocks == nil {
		blocks = []Node{}
	}
	return &Document{Root: &Root{Type: KindRoot, Children: blocks, Element: newElement()}}
}
