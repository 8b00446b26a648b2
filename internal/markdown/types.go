package markdown

import "github.com/ivco-ai/blogsync/internal/payload"

// Frontmatter is the header record of a blog article.
type Frontmatter struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Article is the intermediate representation between a markdown file and a
// CMS post.
type Article struct {
	Frontmatter Frontmatter       `json:"frontmatter"`
	Body        string            `json:"-"` // markdown body, frontmatter removed
	Content     *payload.Document `json:"content"`
	FAQ         []payload.FAQ     `json:"faq"`
	ReadingTime int               `json:"readingTime"`
}
