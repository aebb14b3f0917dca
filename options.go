package sitegen

import (
	"go.uber.org/zap"

	"github.com/alnah/go-sitegen/internal/pipeline"
)

// AllowList is the declarative sanitization policy applied to feed content.
type AllowList = pipeline.AllowList

// DefaultAllowList returns the default feed content allow-list.
func DefaultAllowList() AllowList {
	return pipeline.DefaultAllowList()
}

// options collects settings shared by Loader, FeedBuilder and Builder.
// Each constructor reads the fields it needs.
type options struct {
	logger           *zap.Logger
	workers          int
	skipRenderErrors bool
	allowList        *AllowList
	maxBodySize      int
}

// Option configures Loader, FeedBuilder or Builder.
type Option func(*options)

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers sets the number of documents rendered in parallel.
// Zero or negative selects a value from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSkipRenderErrors makes the feed skip documents whose body fails to
// render instead of failing the build. Skipped slugs are reported.
func WithSkipRenderErrors(skip bool) Option {
	return func(o *options) {
		o.skipRenderErrors = skip
	}
}

// WithAllowList replaces the default feed sanitization allow-list.
func WithAllowList(list AllowList) Option {
	return func(o *options) {
		o.allowList = &list
	}
}

// WithMaxBodySize sets the largest document body rendered into the feed, in bytes.
func WithMaxBodySize(n int) Option {
	return func(o *options) {
		o.maxBodySize = n
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
