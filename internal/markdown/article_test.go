package markdown_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ivco-ai/blogsync/internal/markdown"
	"github.com/ivco-ai/blogsync/internal/payload"
)

func loadArticle(t *testing.T) *markdown.Article {
	t.Helper()
	data, err := os.ReadFile("testdata/post.md")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	article, err := newConverter(t).ParseArticle(string(data))
	if err != nil {
		t.Fatalf("ParseArticle returned error: %v", err)
	}
	return article
}

func TestParseArticleFrontmatter(t *testing.T) {
	a := loadArticle(t)

	if a.Frontmatter.Title != "Owner Earnings: The Number Buffett Actually Uses" {
		t.Fatalf("title mismatch, got %q", a.Frontmatter.Title)
	}
	if a.Frontmatter.Slug != "owner-earnings-explained" {
		t.Fatalf("slug mismatch, got %q", a.Frontmatter.Slug)
	}
	if strings.Join(a.Frontmatter.Tags, ",") != "buffett,owner-earnings,valuation" {
		t.Fatalf("tags mismatch, got %q", a.Frontmatter.Tags)
	}
}

func TestParseArticleContent(t *testing.T) {
	a := loadArticle(t)

	blocks := a.Content.Root.Children
	if len(blocks) == 0 {
		t.Fatalf("expected content blocks")
	}
	if h, ok := blocks[0].(*payload.Heading); ok && h.Level() == 1 {
		t.Fatalf("expected leading title heading to be stripped")
	}

	text := payload.TextContent(a.Content.Root)
	for _, unwanted := range []string{"What are owner earnings", "FAQ"} {
		if strings.Contains(text, unwanted) {
			t.Fatalf("expected FAQ section to be stripped, found %q", unwanted)
		}
	}
	for _, wanted := range []string{"Owner earnings are what", "Maintenance capex", "owner_earnings = ", "Price is what you pay", "Written by the research team.", "Unsafe"} {
		if !strings.Contains(text, wanted) {
			t.Fatalf("expected %q in content text", wanted)
		}
	}

	var tables, codes, links int
	payload.Walk(a.Content.Root, func(n payload.Node) bool {
		switch v := n.(type) {
		case *payload.Table:
			tables++
		case *payload.Code:
			codes++
			if v.Language != "python" {
				t.Fatalf("language mismatch, got %q", v.Language)
			}
		case *payload.Link:
			links++
			if v.Fields.URL != "https://www.berkshirehathaway.com/letters/1986.html" {
				t.Fatalf("unexpected link %q", v.Fields.URL)
			}
		}
		return true
	})
	if tables != 1 || codes != 1 || links != 1 {
		t.Fatalf("expected 1 table, 1 code block, 1 link; got %d, %d, %d", tables, codes, links)
	}
}

func TestParseArticleFAQ(t *testing.T) {
	a := loadArticle(t)

	if len(a.FAQ) != 3 {
		t.Fatalf("expected 3 FAQ records, got %d", len(a.FAQ))
	}
	if a.FAQ[0].Question != "What are owner earnings?" {
		t.Fatalf("question mismatch, got %q", a.FAQ[0].Question)
	}
	if a.ReadingTime != 1 {
		t.Fatalf("reading time mismatch, got %d", a.ReadingTime)
	}
}

func TestParseArticleMalformed(t *testing.T) {
	_, err := newConverter(t).ParseArticle("# No frontmatter\n\nbody")
	if !errors.Is(err, markdown.ErrMalformedFrontmatter) {
		t.Fatalf("expected ErrMalformedFrontmatter, got %v", err)
	}
}

func TestParseArticleKeepsNonTitleHeading(t *testing.T) {
	a, err := newConverter(t).ParseArticle("---\ntitle: x\n---\n## Section\n\ntext")
	if err != nil {
		t.Fatalf("ParseArticle returned error: %v", err)
	}
	if h, ok := a.Content.Root.Children[0].(*payload.Heading); !ok || h.Tag != "h2" {
		t.Fatalf("expected h2 first block, got %T", a.Content.Root.Children[0])
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tt := range tests {
		text := strings.Repeat("word ", tt.words)
		if got := markdown.ReadingTime(text); got != tt.want {
			t.Fatalf("ReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is too long", 10, "this is..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := markdown.Truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
