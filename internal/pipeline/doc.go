// Package pipeline implements the Markdown-to-feed-HTML conversion pipeline.
//
// A document body goes through these stages:
//   - Markdown preprocessing (line normalization, blank-line compression)
//   - Markdown to HTML conversion via Goldmark (GFM, footnotes, chroma classes)
//   - Allow-list sanitization via bluemonday
//   - Relative URL resolution against the document's public address
//
// Embedded components (MDX/JSX expressions) are not evaluated: only the
// literal Markdown is rendered. Serializing the result into a feed document
// is left to the consumer of the feed manifest.
package pipeline
