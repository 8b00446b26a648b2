package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ivco-ai/blogsync/internal/payload"
)

var (
	faqHeadingRe  = regexp.MustCompile(`(?i)^(#{1,6})[ \t]*(?:faq|frequently asked questions)[ \t]*:?[ \t]*$`)
	faqQuestionRe = regexp.MustCompile(`^###[ \t]+(.*)$`)
)

const minQuestionLen = 3

// ExtractFAQ returns the question/answer pairs of the FAQ section of body.
// The section starts at a heading named "FAQ" or "Frequently Asked Questions"
// (any level, any case) and ends at the next heading of the same or higher
// level, a horizontal rule, or the end of the body. Inside it every "### "
// line opens a question; the lines that follow form its answer. Pairs with a
// question shorter than three characters or an empty answer are dropped.
func ExtractFAQ(body string) []payload.FAQ {
	lines := splitLines(body)
	faqs := []payload.FAQ{}

	start, end, ok := findFAQSection(lines)
	if !ok {
		return faqs
	}

	var question string
	var answer []string
	open, inFence := false, false
	flush := func() {
		if !open {
			return
		}
		if faq, ok := newFAQ(question, answer); ok {
			faqs = append(faqs, faq)
		}
	}

	for _, line := range lines[start+1 : end] {
		if isFence(line) {
			inFence = !inFence
		}
		if m := faqQuestionRe.FindStringSubmatch(line); m != nil && !inFence {
			flush()
			question, answer, open = m[1], nil, true
			continue
		}
		if open {
			answer = append(answer, line)
		}
	}
	flush()

	return faqs
}

func newFAQ(rawQuestion string, answerLines []string) (payload.FAQ, bool) {
	q := strings.TrimSpace(rawQuestion)
	q = strings.TrimPrefix(q, "**")
	q = strings.TrimSuffix(q, "**")
	q = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(q), "?"))
	q += "?"

	var parts []string
	for _, line := range answerLines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	a := strings.Join(parts, " ")

	if utf8.RuneCountInString(q) < minQuestionLen || a == "" {
		return payload.FAQ{}, false
	}
	return payload.FAQ{Question: q, Answer: a}, true
}

// findFAQSection locates the FAQ heading line and the index one past the
// section's last line. Headings inside fenced code are ignored.
func findFAQSection(lines []string) (start, end int, ok bool) {
	level := 0
	start = -1
	inFence := false

	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		if start < 0 {
			if m := faqHeadingRe.FindStringSubmatch(line); m != nil {
				start, level = i, len(m[1])
			}
			continue
		}

		if isRule(line) {
			return start, i, true
		}
		if l, _, isHeading := parseHeading(line); isHeading && l <= level {
			return start, i, true
		}
	}

	if start < 0 {
		return 0, 0, false
	}
	return start, len(lines), true
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
