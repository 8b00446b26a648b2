package markdown

import (
	"strings"

	"github.com/ivco-ai/blogsync/internal/payload"
)

// Converter turns markdown into Lexical documents. It holds no mutable state
// and may be shared between goroutines.
type Converter struct {
	sanitizer *URLSanitizer
}

// NewConverter creates a converter whose links are checked by sanitizer.
func NewConverter(sanitizer *URLSanitizer) *Converter {
	return &Converter{sanitizer: sanitizer}
}

type spanKind int

const (
	spanBold spanKind = iota
	spanItalic
	spanCode
	spanLink
)

// span is one recognized piece of inline markup, s[start:end].
type span struct {
	kind       spanKind
	start, end int
	content    string // emphasis/code content or link label
	url        string
}

// Inline converts a single line of markdown into text and link nodes covering
// all of it. Recognized spans are **bold**, *italic*, `code` and
// [label](url); the earliest span wins and ties go to that order. Emphasis
// does not nest. An empty line yields one empty text node.
func (c *Converter) Inline(text string) []payload.Node {
	var nodes []payload.Node

	pos := 0
	for {
		sp, ok := nextSpan(text, pos)
		if !ok {
			break
		}
		if sp.start > pos {
			nodes = append(nodes, payload.NewText(text[pos:sp.start], 0))
		}
		nodes = append(nodes, c.spanNodes(sp)...)
		pos = sp.end
	}

	if pos < len(text) {
		nodes = append(nodes, payload.NewText(text[pos:], 0))
	}

	if len(nodes) == 0 {
		return []payload.Node{payload.NewText(text, 0)}
	}
	return nodes
}

func (c *Converter) spanNodes(sp span) []payload.Node {
	switch sp.kind {
	case spanBold:
		return c.boldNodes(sp.content)
	case spanItalic:
		return []payload.Node{payload.NewText(sp.content, payload.FormatItalic)}
	case spanCode:
		return []payload.Node{payload.NewText(sp.content, payload.FormatCode)}
	default:
		return []payload.Node{c.link(sp.content, sp.url, 0)}
	}
}

// boldNodes renders bold content. Links inside it become bold links; the
// remaining text stays bold.
func (c *Converter) boldNodes(content string) []payload.Node {
	var nodes []payload.Node
	pos := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '[' {
			continue
		}
		sp, ok := matchLink(content, i)
		if !ok {
			continue
		}
		if sp.start > pos {
			nodes = append(nodes, payload.NewText(content[pos:sp.start], payload.FormatBold))
		}
		nodes = append(nodes, c.link(sp.content, sp.url, payload.FormatBold))
		pos = sp.end
		i = sp.end - 1
	}
	if pos < len(content) || len(nodes) == 0 {
		nodes = append(nodes, payload.NewText(content[pos:], payload.FormatBold))
	}
	return nodes
}

// link builds a link node, or plain text carrying the label when the target
// is rejected.
func (c *Converter) link(label, rawURL string, format int) payload.Node {
	if c.sanitizer != nil {
		if safe, ok := c.sanitizer.Sanitize(rawURL); ok {
			return payload.NewLink(label, safe, format)
		}
	}
	return payload.NewText(label, format)
}

// nextSpan finds the earliest span at or after from.
func nextSpan(s string, from int) (span, bool) {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '*':
			if sp, ok := matchBold(s, i); ok {
				return sp, true
			}
			if sp, ok := matchItalic(s, i); ok {
				return sp, true
			}
		case '`':
			if sp, ok := matchCode(s, i); ok {
				return sp, true
			}
		case '[':
			if sp, ok := matchLink(s, i); ok {
				return sp, true
			}
		}
	}
	return span{}, false
}

// matchBold matches **content** at i with the shortest non-empty content on
// a single line.
func matchBold(s string, i int) (span, bool) {
	if !strings.HasPrefix(s[i:], "**") || i+3 > len(s) {
		return span{}, false
	}
	k := strings.Index(s[i+3:], "**")
	if k < 0 {
		return span{}, false
	}
	k += i + 3
	content := s[i+2 : k]
	if strings.ContainsRune(content, '\n') {
		return span{}, false
	}
	return span{kind: spanBold, start: i, end: k + 2, content: content}, true
}

// matchItalic matches *content* at i with the shortest non-empty content on
// a single line.
func matchItalic(s string, i int) (span, bool) {
	if s[i] != '*' || i+2 > len(s) {
		return span{}, false
	}
	k := strings.IndexByte(s[i+2:], '*')
	if k < 0 {
		return span{}, false
	}
	k += i + 2
	content := s[i+1 : k]
	if strings.ContainsRune(content, '\n') {
		return span{}, false
	}
	return span{kind: spanItalic, start: i, end: k + 1, content: content}, true
}

// matchCode matches `content` at i with non-empty content.
func matchCode(s string, i int) (span, bool) {
	if s[i] != '`' {
		return span{}, false
	}
	k := strings.IndexByte(s[i+1:], '`')
	if k <= 0 {
		return span{}, false
	}
	k += i + 1
	return span{kind: spanCode, start: i, end: k + 1, content: s[i+1 : k]}, true
}

// matchLink matches [label](url) at i. The label ends at the first "]". The
// url ends at the first ")" that closes its balanced parentheses, or at the
// first ")" when they never balance.
func matchLink(s string, i int) (span, bool) {
	if s[i] != '[' {
		return span{}, false
	}
	k := strings.IndexByte(s[i+1:], ']')
	if k <= 0 {
		return span{}, false
	}
	k += i + 1
	if k+1 >= len(s) || s[k+1] != '(' {
		return span{}, false
	}

	open := k + 2
	end := closingParen(s, open)
	if end < 0 {
		end = strings.IndexByte(s[open:], ')')
		if end < 0 {
			return span{}, false
		}
		end += open
	}
	if end == open {
		return span{}, false
	}
	return span{kind: spanLink, start: i, end: end + 1, content: s[i+1 : k], url: s[open:end]}, true
}

// closingParen returns the index of the ")" balancing an already opened
// parenthesis, scanning from start, or -1.
func closingParen(s string, start int) int {
	depth := 0
	for j := start; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return j
			}
			depth--
		}
	}
	return -1
}
