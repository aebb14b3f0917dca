package sitegen

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-sitegen/internal/pipeline"
)

// FeedReport is the outcome of a feed build.
type FeedReport struct {
	Items   []FeedItem
	Skipped []*ArtifactRenderError // empty unless skipping is enabled
}

// FeedBuilder maps documents to feed items with sanitized HTML content.
//
// Embedded components in MDX bodies are not evaluated; only the literal
// Markdown is rendered.
type FeedBuilder struct {
	renderer *pipeline.MarkupRenderer
	siteURL  string
	workers  int
	skip     bool
	logger   *zap.Logger
}

// NewFeedBuilder creates a FeedBuilder. siteURL, when set, is used to make
// relative links in content absolute; item links stay site-relative.
func NewFeedBuilder(siteURL string, opts ...Option) *FeedBuilder {
	o := applyOptions(opts)

	list := DefaultAllowList()
	if o.allowList != nil {
		list = *o.allowList
	}

	return &FeedBuilder{
		renderer: pipeline.NewMarkupRenderer(list, pipeline.WithMaxBodySize(o.maxBodySize)),
		siteURL:  strings.TrimRight(siteURL, "/"),
		workers:  ResolveWorkers(o.workers),
		skip:     o.skipRenderErrors,
		logger:   o.logger,
	}
}

// Build renders one item per document, preserving input order.
//
// A document whose body fails to render yields *ArtifactRenderError. The
// build fails on the first such error unless WithSkipRenderErrors was set,
// in which case the document is left out and reported in Skipped.
func (b *FeedBuilder) Build(ctx context.Context, docs []EnrichedDocument) (FeedReport, error) {
	results := make([]FeedItem, len(docs))
	failures := make([]*ArtifactRenderError, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, doc := range docs {
		g.Go(func() error {
			item, err := b.item(gctx, doc)
			if err == nil {
				results[i] = item
				return nil
			}
			// Cancellation is not a document failure.
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			renderErr := &ArtifactRenderError{Slug: doc.Slug, Err: err}
			if !b.skip {
				return renderErr
			}
			failures[i] = renderErr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return FeedReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return FeedReport{}, err
	}

	report := FeedReport{Items: make([]FeedItem, 0, len(docs))}
	for i := range docs {
		if failures[i] != nil {
			b.logger.Warn("skipping document in feed",
				zap.String("slug", failures[i].Slug),
				zap.Error(failures[i].Err),
			)
			report.Skipped = append(report.Skipped, failures[i])
			continue
		}
		report.Items = append(report.Items, results[i])
	}
	return report, nil
}

func (b *FeedBuilder) item(ctx context.Context, doc EnrichedDocument) (FeedItem, error) {
	link := FeedLink(doc.Collection, doc.Slug)

	var pageURL string
	if b.siteURL != "" {
		pageURL = b.siteURL + link
	}

	content, err := b.renderer.Render(ctx, doc.Body, pageURL)
	if err != nil {
		return FeedItem{}, err
	}

	return FeedItem{
		Title:       doc.Frontmatter.Title,
		Description: doc.Frontmatter.Description,
		PublishDate: doc.Frontmatter.PublishDate,
		Link:        link,
		Content:     content,
	}, nil
}

// FeedLink returns the site-relative address of a document: /{collection}/{slug}/.
func FeedLink(collection, slug string) string {
	return "/" + collection + "/" + slug + "/"
}
