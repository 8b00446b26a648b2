package payload

// Collection slugs exposed by the CMS REST API.
const (
	CollectionUsers      = "users"
	CollectionAuthors    = "authors"
	CollectionCategories = "categories"
	CollectionTags       = "tags"
	CollectionPosts      = "posts"
)

// FAQ is one question/answer pair attached to a post.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Author is the body for POST /api/authors.
type Author struct {
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// Category is the body for POST /api/categories.
type Category struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Order       int    `json:"order"`
}

// Tag is the body for POST /api/tags.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SEO holds the search-engine overrides of a post.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Schema holds structured-data switches of a post.
type Schema struct {
	EnableHowTo bool   `json:"enableHowTo"`
	AuthorBio   string `json:"authorBio"`
}

// Provenance records where a post came from.
type Provenance struct {
	SourceAgent string `json:"sourceAgent"`
	SourceDoc   string `json:"sourceDoc"`
}

// Post is the body for POST /api/posts.
type Post struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	ContentType string     `json:"contentType"`
	Author      int64      `json:"author"`
	Content     *Document  `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Category    int64      `json:"category,omitempty"`
	Tags        []int64    `json:"tags"`
	ReadingTime int        `json:"readingTime"`
	Difficulty  string     `json:"difficulty"`
	Status      string     `json:"status"`
	PublishedAt string     `json:"publishedAt"`
	SEO         SEO        `json:"seo"`
	FAQ         []FAQ      `json:"faq"`
	Schema      Schema     `json:"schema"`
	Provenance  Provenance `json:"provenance"`
}

// Credentials is the body for POST /api/users/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
