package markdown

import (
	"strings"
	"unicode/utf8"
)

const wordsPerMinute = 200

// ParseArticle converts a markdown file with frontmatter into an Article.
// The leading title heading and the FAQ section are left out of the
// document: the CMS renders the title itself and the FAQ travels as separate
// records. It fails only with a MalformedFrontmatterError.
func (c *Converter) ParseArticle(content string) (*Article, error) {
	header, body, err := SplitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	contentBody := strings.TrimSpace(stripFAQSection(stripTitleHeading(body)))

	return &Article{
		Frontmatter: ParseFrontmatter(header),
		Body:        body,
		Content:     c.Document(contentBody),
		FAQ:         ExtractFAQ(body),
		ReadingTime: ReadingTime(body),
	}, nil
}

// stripTitleHeading removes a leading "# Title" line from the body.
func stripTitleHeading(body string) string {
	trimmed := strings.TrimLeft(body, "\r\n")
	lines := strings.SplitN(trimmed, "\n", 2)
	if level, _, ok := parseHeading(strings.TrimRight(lines[0], "\r")); !ok || level != 1 {
		return body
	}
	if len(lines) > 1 {
		return lines[1]
	}
	return ""
}

// stripFAQSection removes the lines ExtractFAQ reads from.
func stripFAQSection(body string) string {
	lines := splitLines(body)
	start, end, ok := findFAQSection(lines)
	if !ok {
		return body
	}
	kept := append(lines[:start:start], lines[end:]...)
	return strings.Join(kept, "\n")
}

// ReadingTime estimates minutes of reading at 200 words per minute, rounded
// up, never less than one.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

// Truncate shortens s to at most limit runes, replacing the tail with "...".
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 3 {
		return string([]rune(s)[:limit])
	}
	return string([]rune(s)[:limit-3]) + "..."
}
