package sitegen

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Environment names the build mode. It is read once at the CLI boundary and
// passed explicitly to every entry point.
type Environment string

// Known environments. Any other value behaves like EnvDevelopment.
const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

// IsProduction reports whether drafts must be hidden. The match is exact:
// "Production" is not production.
func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

// VisibilityPolicy decides which documents a build publishes.
type VisibilityPolicy struct {
	IncludeDrafts bool
}

// everyDocument is the policy the Loader fetches with, so drafts are
// validated in every environment before the build policy hides them.
var everyDocument = VisibilityPolicy{IncludeDrafts: true}

// PolicyFor returns the visibility policy of env: drafts are excluded in
// production and included otherwise.
func PolicyFor(env Environment) VisibilityPolicy {
	return VisibilityPolicy{IncludeDrafts: !env.IsProduction()}
}

// Allows reports whether a document with fm is visible under the policy.
func (p VisibilityPolicy) Allows(fm Frontmatter) bool {
	return p.IncludeDrafts || !fm.Draft
}

// Store is a content backing store.
type Store interface {
	// Collections lists the collection names the store holds.
	Collections(ctx context.Context) ([]string, error)
	// FetchCollection returns the documents of one collection that policy
	// allows. The Loader fetches with drafts included and filters itself.
	FetchCollection(ctx context.Context, name string, policy VisibilityPolicy) ([]Document, error)
}

// Loader loads collections from a Store and derives per-document fields.
type Loader struct {
	store   Store
	baseURL string
	logger  *zap.Logger
}

// NewLoader creates a Loader. baseURL is the public site address used for
// preview image URLs.
func NewLoader(store Store, baseURL string, opts ...Option) *Loader {
	o := applyOptions(opts)
	return &Loader{
		store:   store,
		baseURL: baseURL,
		logger:  o.logger,
	}
}

// Load returns the visible documents of collection under env, newest first.
//
// Documents are sorted by publish date descending with ties broken by slug
// ascending. Any store failure, missing required field or duplicate slug
// fails the whole load with a *ContentLoadError. Drafts are validated too,
// so a collection that fails in development also fails in production.
func (l *Loader) Load(ctx context.Context, collection string, env Environment) ([]EnrichedDocument, error) {
	if strings.TrimSpace(collection) == "" {
		return nil, &ContentLoadError{Err: ErrEmptyCollection}
	}

	policy := PolicyFor(env)

	docs, err := l.store.FetchCollection(ctx, collection, everyDocument)
	if err != nil {
		return nil, &ContentLoadError{Collection: collection, Err: err}
	}

	visible := make([]Document, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if err := validateDocument(doc); err != nil {
			return nil, &ContentLoadError{Collection: collection, Slug: doc.Slug, Err: err}
		}
		if _, dup := seen[doc.Slug]; dup {
			return nil, &ContentLoadError{Collection: collection, Slug: doc.Slug, Err: ErrDuplicateSlug}
		}
		seen[doc.Slug] = struct{}{}

		if !policy.Allows(doc.Frontmatter) {
			continue
		}
		if doc.Collection == "" {
			doc.Collection = collection
		}
		visible = append(visible, doc)
	}

	sortDocuments(visible)

	out := make([]EnrichedDocument, len(visible))
	for i, doc := range visible {
		out[i] = EnrichedDocument{
			Document:        doc,
			PreviewImageURL: PreviewImageURL(l.baseURL, doc.Collection, doc.Slug),
		}
	}

	l.logger.Debug("loaded collection",
		zap.String("collection", collection),
		zap.Int("fetched", len(docs)),
		zap.Int("visible", len(out)),
		zap.Bool("includeDrafts", policy.IncludeDrafts),
	)
	return out, nil
}

// LoadAll loads every collection the store lists, in name order, under the
// same policy as Load.
func (l *Loader) LoadAll(ctx context.Context, env Environment) ([]EnrichedDocument, error) {
	names, err := l.store.Collections(ctx)
	if err != nil {
		return nil, &ContentLoadError{Err: fmt.Errorf("listing collections: %w", err)}
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	var all []EnrichedDocument
	for _, name := range names {
		docs, err := l.Load(ctx, name, env)
		if err != nil {
			return nil, err
		}
		all = append(all, docs...)
	}
	return all, nil
}

// PreviewImageURL returns the public address of a document's preview image:
// {baseURL}/og/{collection}/{slug}.png.
func PreviewImageURL(baseURL, collection, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/og/" + collection + "/" + slug + ".png"
}

// validateDocument checks the required schema fields.
func validateDocument(doc Document) error {
	switch {
	case strings.TrimSpace(doc.Slug) == "":
		return fmt.Errorf("%w: slug", ErrMissingField)
	case strings.TrimSpace(doc.Frontmatter.Title) == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case strings.TrimSpace(doc.Frontmatter.Description) == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	case doc.Frontmatter.PublishDate.IsZero():
		return fmt.Errorf("%w: publishDate", ErrMissingField)
	}
	return nil
}

// sortDocuments orders docs newest first, then by slug.
func sortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i].Frontmatter.PublishDate, docs[j].Frontmatter.PublishDate
		if !a.Equal(b) {
			return a.After(b)
		}
		return docs[i].Slug < docs[j].Slug
	})
}
