package sitegen

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-sitegen/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ Store                         = (*FileStore)(nil)
	_ Store                         = (*MemoryStore)(nil)
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Sentinel errors for build configuration.
var (
	ErrInvalidSiteURL = errors.New("site URL must be an absolute http(s) URL")
	ErrNilStore       = errors.New("store cannot be nil")
)

// BuildConfig describes one build. Env is explicit: the library never reads
// process environment.
type BuildConfig struct {
	Env             Environment
	SiteURL         string // public address, e.g. "https://aidankinzett.com"
	FeedCollection  string // collection syndicated in the feed, e.g. "blog"
	FeedTitle       string
	FeedDescription string
	Theme           Theme
	ColorPath       string       // DefaultColorPath if empty
	Image           ImageOptions // DefaultImageOptions if zero
}

// BuildResult holds every artifact parameter a build derives.
type BuildResult struct {
	Documents []EnrichedDocument // all visible documents, every collection
	Routes    Routes
	Feed      Feed
	Skipped   []*ArtifactRenderError
}

// Builder orchestrates one build over a Store.
type Builder struct {
	store  Store
	opts   []Option
	logger *zap.Logger
}

// NewBuilder creates a Builder. Options are forwarded to the Loader and
// FeedBuilder it creates.
func NewBuilder(store Store, opts ...Option) *Builder {
	o := applyOptions(opts)
	return &Builder{store: store, opts: opts, logger: o.logger}
}

// Build resolves the brand color, loads content once, then derives the
// image routes over all collections and the feed over FeedCollection.
// Draft filtering is the same for both artifacts.
func (b *Builder) Build(ctx context.Context, cfg BuildConfig) (*BuildResult, error) {
	if b.store == nil {
		return nil, ErrNilStore
	}
	if err := validateSiteURL(cfg.SiteURL); err != nil {
		return nil, err
	}
	start := time.Now()

	colorPath := cfg.ColorPath
	if colorPath == "" {
		colorPath = DefaultColorPath
	}
	brand, err := ResolveColor(cfg.Theme, colorPath)
	if err != nil {
		return nil, err
	}

	loader := NewLoader(b.store, cfg.SiteURL, b.opts...)

	all, err := loader.LoadAll(ctx, cfg.Env)
	if err != nil {
		return nil, err
	}

	image := cfg.Image
	if image.isZero() {
		image = DefaultImageOptions()
	}
	routes, err := NewRouteGenerator(image, brand).Generate(all)
	if err != nil {
		return nil, err
	}

	if cfg.FeedCollection != "" {
		found, err := hasCollection(ctx, b.store, cfg.FeedCollection)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &ContentLoadError{Collection: cfg.FeedCollection, Err: ErrCollectionAbsent}
		}
	}
	feedDocs := filterCollection(all, cfg.FeedCollection)

	report, err := NewFeedBuilder(cfg.SiteURL, b.opts...).Build(ctx, feedDocs)
	if err != nil {
		return nil, err
	}

	b.logger.Info("build complete",
		zap.String("env", string(cfg.Env)),
		zap.Int("documents", len(all)),
		zap.Int("routes", len(routes)),
		zap.Int("feedItems", len(report.Items)),
		zap.Int("skipped", len(report.Skipped)),
		zap.String("brandColor", brand.String()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &BuildResult{
		Documents: all,
		Routes:    routes,
		Feed: Feed{
			Title:       cfg.FeedTitle,
			Description: cfg.FeedDescription,
			Site:        cfg.SiteURL,
			Items:       report.Items,
		},
		Skipped: report.Skipped,
	}, nil
}

// filterCollection keeps the documents of one collection, in order.
func filterCollection(docs []EnrichedDocument, collection string) []EnrichedDocument {
	if collection == "" {
		return nil
	}
	var out []EnrichedDocument
	for _, d := range docs {
		if d.Collection == collection {
			out = append(out, d)
		}
	}
	return out
}

// hasCollection reports whether the store lists name. A listing failure is
// a content load error, not an absent collection.
func hasCollection(ctx context.Context, store Store, name string) (bool, error) {
	names, err := store.Collections(ctx)
	if err != nil {
		return false, &ContentLoadError{Collection: name, Err: fmt.Errorf("listing collections: %w", err)}
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func validateSiteURL(site string) error {
	if site == "" {
		return nil
	}
	u, err := url.Parse(site)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSiteURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidSiteURL, site)
	}
	return nil
}
