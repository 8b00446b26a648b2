package blog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"

	"github.com/ivco-ai/blogsync/internal/markdown"
	"github.com/ivco-ai/blogsync/internal/payload"
)

const (
	minFAQ            = 3
	maxFAQ            = 5
	maxSEOTitle       = 60
	maxSEODescription = 160
)

// Store is the subset of the CMS API the publisher needs. *payload.Client
// satisfies it.
type Store interface {
	Login(ctx context.Context) error
	FindOne(ctx context.Context, collection, field, value string) (int64, bool, error)
	Create(ctx context.Context, collection string, doc any) (int64, error)
}

// Options configures a Publisher.
type Options struct {
	AuthorName  string
	AuthorBio   string
	SourceAgent string
	DryRun      bool
	Now         func() time.Time
}

// Source is one markdown file to publish.
type Source struct {
	Path    string
	Content string
}

// Result summarizes a publishing run.
type Result struct {
	Created int
	Skipped int
	Failed  int
	// Posts holds every post payload that was built, in source order.
	Posts []payload.Post
}

// Publisher converts blog articles and creates them as CMS posts.
type Publisher struct {
	store     Store
	converter *markdown.Converter
	opts      Options
	log       logrus.FieldLogger
}

// NewPublisher creates a publisher. store may be nil for dry runs.
func NewPublisher(store Store, converter *markdown.Converter, opts Options, log logrus.FieldLogger) *Publisher {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Publisher{store: store, converter: converter, opts: opts, log: log}
}

// LoadDir reads every *.md file of dir, sorted by file name.
func LoadDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading blog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, Source{Path: path, Content: string(data)})
	}
	return sources, nil
}

type parsedSource struct {
	source  Source
	article *markdown.Article
}

// refs holds the CMS ids the post payloads point at.
type refs struct {
	author     int64
	categories map[string]int64
	tags       map[string]int64
}

// Publish converts all sources and creates a post for each article whose
// slug does not exist yet. Files with malformed frontmatter are counted as
// failed and skipped. Setup errors (login, author, categories, tags) abort
// the run; errors creating a single post do not.
func (p *Publisher) Publish(ctx context.Context, sources []Source) (Result, error) {
	var res Result

	var parsed []parsedSource
	for _, src := range sources {
		article, err := p.converter.ParseArticle(src.Content)
		if err != nil {
			p.log.WithField("file", src.Path).WithError(err).Error("skipping article")
			res.Failed++
			continue
		}
		parsed = append(parsed, parsedSource{source: src, article: article})
	}

	r := refs{categories: map[string]int64{}, tags: map[string]int64{}}
	if !p.opts.DryRun {
		if p.store == nil {
			return res, errors.New("publishing requires a CMS store")
		}
		if err := p.store.Login(ctx); err != nil {
			return res, err
		}
		p.log.Info("authenticated")

		var err error
		if r.author, err = p.ensureAuthor(ctx); err != nil {
			return res, err
		}
		if r.categories, err = p.ensureCategories(ctx); err != nil {
			return res, err
		}
		if r.tags, err = p.ensureTags(ctx, collectTags(parsed)); err != nil {
			return res, err
		}
	}

	p.log.WithField("count", len(parsed)).Info("publishing articles")

	for _, ps := range parsed {
		fm := ps.article.Frontmatter
		log := p.log.WithFields(logrus.Fields{"slug": fm.Slug, "file": ps.source.Path})
		post := p.buildPost(ps.article, ps.source.Path, r)

		if p.opts.DryRun {
			res.Posts = append(res.Posts, post)
			continue
		}

		_, exists, err := p.store.FindOne(ctx, payload.CollectionPosts, "slug", fm.Slug)
		if err != nil {
			log.WithError(err).Error("checking for existing post")
			res.Failed++
			continue
		}
		if exists {
			log.Info("already exists, skipping")
			res.Skipped++
			continue
		}

		res.Posts = append(res.Posts, post)
		id, err := p.store.Create(ctx, payload.CollectionPosts, post)
		if err != nil {
			log.WithError(err).Error("creating post")
			res.Failed++
			continue
		}
		log.WithField("id", id).Info("published")
		res.Created++
	}

	return res, nil
}

// buildPost assembles the CMS payload for an article.
func (p *Publisher) buildPost(a *markdown.Article, sourcePath string, r refs) payload.Post {
	fm := a.Frontmatter

	faqs := a.FAQ
	if len(faqs) < minFAQ {
		faqs = DefaultFAQ(fm.Title, fm.Description)
	}
	if len(faqs) > maxFAQ {
		faqs = faqs[:maxFAQ]
	}

	category, ok := r.categories[fm.Category]
	if !ok {
		category = r.categories[fallbackCategory]
	}

	tagIDs := []int64{}
	for _, slug := range fm.Tags {
		if id, ok := r.tags[slug]; ok {
			tagIDs = append(tagIDs, id)
		}
	}

	return payload.Post{
		Title:       fm.Title,
		Slug:        fm.Slug,
		ContentType: "article",
		Author:      r.author,
		Content:     a.Content,
		Excerpt:     fm.Description,
		Category:    category,
		Tags:        tagIDs,
		ReadingTime: a.ReadingTime,
		Difficulty:  "intermediate",
		Status:      "published",
		PublishedAt: p.opts.Now().UTC().Format(time.RFC3339),
		SEO: payload.SEO{
			Title:       markdown.Truncate(fm.Title, maxSEOTitle),
			Description: markdown.Truncate(fm.Description, maxSEODescription),
		},
		FAQ: faqs,
		Schema: payload.Schema{
			AuthorBio: p.opts.AuthorBio,
		},
		Provenance: payload.Provenance{
			SourceAgent: p.opts.SourceAgent,
			SourceDoc:   filepath.ToSlash(sourcePath),
		},
	}
}

func (p *Publisher) ensureAuthor(ctx context.Context) (int64, error) {
	log := p.log.WithField("author", p.opts.AuthorName)

	id, found, err := p.store.FindOne(ctx, payload.CollectionAuthors, "name", p.opts.AuthorName)
	if err != nil {
		return 0, fmt.Errorf("looking up author: %w", err)
	}
	if found {
		log.WithField("id", id).Debug("author exists")
		return id, nil
	}

	id, err = p.store.Create(ctx, payload.CollectionAuthors, payload.Author{Name: p.opts.AuthorName, Bio: p.opts.AuthorBio})
	if err != nil {
		return 0, fmt.Errorf("creating author: %w", err)
	}
	log.WithField("id", id).Info("author created")
	return id, nil
}

func (p *Publisher) ensureCategories(ctx context.Context) (map[string]int64, error) {
	ids := make(map[string]int64, len(Categories))
	for i, cat := range Categories {
		cat.Order = i
		id, err := p.ensure(ctx, payload.CollectionCategories, cat.Slug, cat)
		if err != nil {
			return nil, err
		}
		ids[cat.Slug] = id
	}
	return ids, nil
}

func (p *Publisher) ensureTags(ctx context.Context, slugs []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(slugs))
	for _, slug := range slugs {
		id, err := p.ensure(ctx, payload.CollectionTags, slug, payload.Tag{Name: TagName(slug), Slug: slug})
		if err != nil {
			return nil, err
		}
		ids[slug] = id
	}
	return ids, nil
}

// ensure returns the id of the document of collection with the given slug,
// creating it from doc when missing.
func (p *Publisher) ensure(ctx context.Context, collection, slug string, doc any) (int64, error) {
	log := p.log.WithFields(logrus.Fields{"collection": collection, "slug": slug})

	id, found, err := p.store.FindOne(ctx, collection, "slug", slug)
	if err != nil {
		return 0, fmt.Errorf("looking up %s %q: %w", collection, slug, err)
	}
	if found {
		log.WithField("id", id).Debug("exists")
		return id, nil
	}

	id, err = p.store.Create(ctx, collection, doc)
	if err != nil {
		return 0, fmt.Errorf("creating %s %q: %w", collection, slug, err)
	}
	log.WithField("id", id).Info("created")
	return id, nil
}

// collectTags returns the distinct tag slugs of all articles, sorted.
func collectTags(parsed []parsedSource) []string {
	set := mapset.NewSet[string]()
	for _, ps := range parsed {
		for _, tag := range ps.article.Frontmatter.Tags {
			set.Add(tag)
		}
	}
	slugs := set.ToSlice()
	sort.Strings(slugs)
	return slugs
}
