package markdown_test

import (
	"strings"
	"testing"

	"github.com/ivco-ai/blogsync/internal/markdown"
)

func TestRenderHTML(t *testing.T) {
	html, err := markdown.RenderHTML("## Hello\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}

	for _, want := range []string{`<h2 id="hello">Hello</h2>`, "<table>", "<td>1</td>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected raw HTML to be omitted:\n%s", html)
	}
}
