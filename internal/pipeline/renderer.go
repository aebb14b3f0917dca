package pipeline

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxBodySize is the largest Markdown body the renderer accepts (4MB).
const DefaultMaxBodySize = 4 * 1024 * 1024

// Sentinel errors for rendering failures.
var (
	ErrInvalidUTF8  = errors.New("body is not valid UTF-8")
	ErrBodyTooLarge = errors.New("body exceeds maximum size")
)

// MarkupRenderer turns a Markdown body into sanitized feed HTML.
// A MarkupRenderer is safe for concurrent use.
type MarkupRenderer struct {
	preprocessor MarkdownPreprocessor
	converter    HTMLConverter
	sanitizer    *Sanitizer
	maxBodySize  int
}

// RendererOption configures a MarkupRenderer.
type RendererOption func(*MarkupRenderer)

// WithConverter replaces the Markdown to HTML converter.
func WithConverter(c HTMLConverter) RendererOption {
	return func(r *MarkupRenderer) {
		r.converter = c
	}
}

// WithMaxBodySize sets the body size limit in bytes. Values <= 0 keep the default.
func WithMaxBodySize(n int) RendererOption {
	return func(r *MarkupRenderer) {
		if n > 0 {
			r.maxBodySize = n
		}
	}
}

// NewMarkupRenderer creates a renderer enforcing the given allow-list.
func NewMarkupRenderer(list AllowList, opts ...RendererOption) *MarkupRenderer {
	r := &MarkupRenderer{
		preprocessor: &CommonMarkPreprocessor{},
		converter:    NewGoldmarkConverter(),
		sanitizer:    NewSanitizer(list),
		maxBodySize:  DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render runs preprocessing, conversion and sanitization on body, then
// resolves relative references against pageURL (skipped when empty).
func (r *MarkupRenderer) Render(ctx context.Context, body, pageURL string) (string, error) {
	if len(body) > r.maxBodySize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrBodyTooLarge, len(body), r.maxBodySize)
	}
	if !utf8.ValidString(body) {
		return "", ErrInvalidUTF8
	}

	md := r.preprocessor.PreprocessMarkdown(ctx, body)

	htmlContent, err := r.converter.ToHTML(ctx, md)
	if err != nil {
		return "", err
	}

	htmlContent = r.sanitizer.Sanitize(htmlContent)

	htmlContent, err = ResolveRelativeURLs(htmlContent, pageURL)
	if err != nil {
		return "", fmt.Errorf("resolving links: %w", err)
	}

	return htmlContent, nil
}
