package markdown

import (
	"regexp"
	"strings"

	"github.com/ivco-ai/blogsync/internal/payload"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.*\S.*)$`)
	bulletRe  = regexp.MustCompile(`^\s*[-*+]\s`)
	orderedRe = regexp.MustCompile(`^\s*\d+\.\s`)
	ruleRe    = regexp.MustCompile(`^-{3,}$`)
)

// Document converts a markdown body into a Lexical document.
func (c *Converter) Document(body string) *payload.Document {
	return payload.NewDocument(c.Blocks(body))
}

// Blocks scans body line by line and returns its block nodes in order.
// Lines that match no other construct become paragraphs, so every line is
// consumed.
func (c *Converter) Blocks(body string) []payload.Node {
	lines := splitLines(body)
	blocks := []payload.Node{}
	i := 0

	for i < len(lines) {
		line := lines[i]

		// Empty line - skip
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		// Code block; an unterminated fence runs to the end of the document.
		if isFence(line) {
			lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			var codeLines []string
			i++
			for i < len(lines) && !isFence(lines[i]) {
				codeLines = append(codeLines, lines[i])
				i++
			}
			i++ // closing fence
			blocks = append(blocks, payload.NewCode(codeLines, lang))
			continue
		}

		// Horizontal rule
		if isRule(line) {
			blocks = append(blocks, payload.NewHorizontalRule())
			i++
			continue
		}

		// Heading
		if level, text, ok := parseHeading(line); ok {
			blocks = append(blocks, payload.NewHeading(level, c.Inline(text)))
			i++
			continue
		}

		// Table
		if isTableLine(line) {
			var tableLines []string
			for i < len(lines) && isTableLine(lines[i]) {
				tableLines = append(tableLines, lines[i])
				i++
			}
			if table := c.parseTable(tableLines); table != nil {
				blocks = append(blocks, table)
			}
			continue
		}

		// Blockquote, flattened into one run of inline text
		if isQuote(line) {
			var quoteLines []string
			for i < len(lines) && isQuote(lines[i]) {
				quoteLines = append(quoteLines, stripQuoteMarker(lines[i]))
				i++
			}
			blocks = append(blocks, payload.NewQuote(c.Inline(strings.Join(quoteLines, " "))))
			continue
		}

		// Unordered list
		if bulletRe.MatchString(line) {
			var items [][]payload.Node
			items, i = c.collectItems(lines, i, bulletRe)
			blocks = append(blocks, payload.NewList(payload.ListBullet, items))
			continue
		}

		// Ordered list
		if orderedRe.MatchString(line) {
			var items [][]payload.Node
			items, i = c.collectItems(lines, i, orderedRe)
			blocks = append(blocks, payload.NewList(payload.ListNumber, items))
			continue
		}

		// Regular paragraph - collect until empty line or block element
		paraLines := []string{strings.TrimSpace(line)}
		i++
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !startsBlock(lines[i]) {
			paraLines = append(paraLines, strings.TrimSpace(lines[i]))
			i++
		}
		if text := strings.TrimSpace(strings.Join(paraLines, " ")); text != "" {
			blocks = append(blocks, payload.NewParagraph(c.Inline(text)))
		}
	}

	return blocks
}

// collectItems consumes consecutive lines matching marker starting at i. It
// returns the inline content of each item and the index of the first line
// after the list.
func (c *Converter) collectItems(lines []string, i int, marker *regexp.Regexp) ([][]payload.Node, int) {
	var items [][]payload.Node
	for i < len(lines) {
		loc := marker.FindStringIndex(lines[i])
		if loc == nil {
			break
		}
		items = append(items, c.Inline(strings.TrimSpace(lines[i][loc[1]:])))
		i++
	}
	return items, i
}

// parseTable builds a table from consecutive pipe-delimited lines. Separator
// rows are dropped; the first kept row is the header. Returns nil when no row
// is left.
func (c *Converter) parseTable(lines []string) *payload.Table {
	var rows []*payload.TableRow
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isSeparatorRow(trimmed) {
			continue
		}

		header := len(rows) == 0
		parts := strings.Split(trimmed, "|")
		cells := make([]*payload.TableCell, 0, len(parts))
		if len(parts) >= 2 {
			for _, cell := range parts[1 : len(parts)-1] {
				cells = append(cells, payload.NewTableCell(c.Inline(strings.TrimSpace(cell)), header))
			}
		}
		rows = append(rows, payload.NewTableRow(cells))
	}
	if len(rows) == 0 {
		return nil
	}
	return payload.NewTable(rows)
}

// parseHeading returns the heading level and text of an ATX heading line.
func parseHeading(line string) (int, string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimSpace(m[2]), true
}

func startsBlock(line string) bool {
	if _, _, ok := parseHeading(line); ok {
		return true
	}
	return isFence(line) || isRule(line) || isTableLine(line) || isQuote(line) ||
		bulletRe.MatchString(line) || orderedRe.MatchString(line)
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

func isRule(line string) bool {
	return ruleRe.MatchString(strings.TrimSpace(line))
}

func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// isSeparatorRow reports a row made only of pipes, dashes, colons and
// blanks, such as "|---|:--:|" or "| | |".
func isSeparatorRow(trimmed string) bool {
	return len(trimmed) > 2 && strings.Trim(trimmed, "|-: \t") == ""
}

func isQuote(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ">")
}

func stripQuoteMarker(line string) string {
	rest := strings.TrimPrefix(strings.TrimSpace(line), ">")
	if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t") {
		rest = rest[1:]
	}
	return rest
}
