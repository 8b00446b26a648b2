package markdown

import (
	"errors"
	"strings"
)

const frontmatterMarker = "---"

// ErrMalformedFrontmatter matches every MalformedFrontmatterError via errors.Is.
var ErrMalformedFrontmatter = errors.New("malformed frontmatter")

// MalformedFrontmatterError reports a document whose header delimiters are
// missing or unmatched.
type MalformedFrontmatterError struct {
	Reason string
}

func (e *MalformedFrontmatterError) Error() string {
	return "malformed frontmatter: " + e.Reason
}

func (e *MalformedFrontmatterError) Is(target error) bool {
	return target == ErrMalformedFrontmatter
}

// SplitFrontmatter separates the header block from the body. The content must
// open with a "---" line and the header ends at the next "---" line. The
// returned body starts right after the closing marker line.
func SplitFrontmatter(content string) (header, body string, err error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, frontmatterMarker+"\n") {
		return "", "", &MalformedFrontmatterError{Reason: "document must start with a --- line"}
	}

	rest := content[len(frontmatterMarker)+1:]
	switch {
	case rest == frontmatterMarker:
		return "", "", nil
	case strings.HasPrefix(rest, frontmatterMarker+"\n"):
		return "", rest[len(frontmatterMarker)+1:], nil
	}

	idx := strings.Index(rest, "\n"+frontmatterMarker+"\n")
	if idx < 0 {
		if strings.HasSuffix(rest, "\n"+frontmatterMarker) {
			return rest[:len(rest)-len(frontmatterMarker)-1], "", nil
		}
		return "", "", &MalformedFrontmatterError{Reason: "no closing --- line"}
	}

	return rest[:idx], rest[idx+len(frontmatterMarker)+2:], nil
}

// ParseFrontmatter extracts the fixed header keys. Scalar values may be
// wrapped in single or double quotes. Tags are read only from the bracket
// form "tags: [a, b]"; any other form yields no tags.
func ParseFrontmatter(header string) Frontmatter {
	return Frontmatter{
		Title:       headerValue(header, "title"),
		Slug:        headerValue(header, "slug"),
		Category:    headerValue(header, "category"),
		Tags:        headerTags(header),
		Description: headerValue(header, "description"),
	}
}

// headerValue returns the value of the first "key: value" line.
func headerValue(header, key string) string {
	raw, ok := headerLine(header, key)
	if !ok {
		return ""
	}
	return unquote(raw)
}

// headerTags unquotes each entry and drops empty ones, so "[a, , 'b',]"
// yields [a b].
func headerTags(header string) []string {
	tags := []string{}
	raw, ok := headerLine(header, "tags")
	if !ok || len(raw) < 3 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return tags
	}
	for _, part := range strings.Split(raw[1:len(raw)-1], ",") {
		if tag := unquote(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func headerLine(header, key string) (string, bool) {
	prefix := key + ":"
	for _, line := range strings.Split(header, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		value := strings.TrimSpace(line[len(prefix):])
		if value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if s != "" && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}
