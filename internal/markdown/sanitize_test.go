package markdown_test

import (
	"testing"

	"github.com/ivco-ai/blogsync/internal/markdown"
)

func newSanitizer(t *testing.T) *markdown.URLSanitizer {
	t.Helper()
	s, err := markdown.NewURLSanitizer("https://ivco.ai/blog/")
	if err != nil {
		t.Fatalf("NewURLSanitizer returned error: %v", err)
	}
	return s
}

func TestNewURLSanitizerRejectsRelativeOrigin(t *testing.T) {
	for _, origin := range []string{"", "/blog", "ftp://example.com", "https://"} {
		if _, err := markdown.NewURLSanitizer(origin); err == nil {
			t.Fatalf("expected error for origin %q", origin)
		}
	}
}

func TestSanitize(t *testing.T) {
	s := newSanitizer(t)

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "absolute https", raw: "https://example.com", want: "https://example.com/", ok: true},
		{name: "host lowercased", raw: "HTTPS://Example.COM/Path", want: "https://example.com/Path", ok: true},
		{name: "plain http", raw: "http://example.com/a?b=c#d", want: "http://example.com/a?b=c#d", ok: true},
		{name: "root relative", raw: "/about", want: "https://ivco.ai/about", ok: true},
		{name: "document relative", raw: "post-2", want: "https://ivco.ai/blog/post-2", ok: true},
		{name: "fragment only", raw: "#faq", want: "https://ivco.ai/blog/#faq", ok: true},
		{name: "mailto", raw: "mailto:hi@ivco.ai", want: "mailto:hi@ivco.ai", ok: true},
		{name: "surrounding spaces", raw: "  https://example.com/x  ", want: "https://example.com/x", ok: true},
		{name: "same scheme without authority", raw: "https:foo", want: "https://ivco.ai/blog/foo", ok: true},
		{name: "same scheme rooted path", raw: "https:/about", want: "https://ivco.ai/about", ok: true},
		{name: "other scheme without authority", raw: "http:foo", want: "http://foo/", ok: true},
		{name: "other scheme with path", raw: "http:/example.com/x", want: "http://example.com/x", ok: true},
		{name: "other scheme without host", raw: "http:", ok: false},
		{name: "nested javascript", raw: "https:javascript:alert(1)", ok: false},
		{name: "javascript", raw: "javascript:alert(1)", ok: false},
		{name: "javascript mixed case", raw: "JavaScript:alert(1)", ok: false},
		{name: "data", raw: "data:text/html;base64,PHNjcmlwdD4=", ok: false},
		{name: "ftp", raw: "ftp://example.com/file", ok: false},
		{name: "unparseable", raw: "http://[::1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Sanitize(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Sanitize(%q) ok = %v, want %v (got %q)", tt.raw, ok, tt.ok, got)
			}
			if got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
