package sitegen

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Frontmatter holds the validated metadata of a document.
type Frontmatter struct {
	Title       string
	Description string
	PublishDate time.Time
	UpdatedDate time.Time // zero when absent
	Draft       bool
	HeroImage   string
	Tags        []string
}

// Document is one authored content entry. Immutable after load.
type Document struct {
	Slug        string // unique within Collection
	Collection  string
	SourcePath  string // virtual path, e.g. "/src/content/blog/foo.md"
	Frontmatter Frontmatter
	Body        string // raw Markdown
}

// EnrichedDocument is a Document with build-time derived fields.
type EnrichedDocument struct {
	Document
	PreviewImageURL string
}

// RGBColor is a color with 8-bit channels.
type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// MarshalJSON encodes the color as a [r, g, b] triple, the form image
// renderers take for gradients and font colors.
func (c RGBColor) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "[%d,%d,%d]", c.Red, c.Green, c.Blue), nil
}

// String returns the color in #rrggbb form.
func (c RGBColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// FontStyle describes one text block of a preview image.
type FontStyle struct {
	Families []string `json:"families"`
	Weight   string   `json:"weight,omitempty"`
	Color    RGBColor `json:"color"`
}

// LogoSpec locates the logo drawn on a preview image.
type LogoSpec struct {
	Path string `json:"path"`
}

// FontSpec groups the title and description text styles.
type FontSpec struct {
	Title       FontStyle `json:"title"`
	Description FontStyle `json:"description"`
}

// ImageRenderSpec is everything an external renderer needs to draw one
// preview image.
type ImageRenderSpec struct {
	RouteKey           string     `json:"-"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Logo               LogoSpec   `json:"logo"`
	Font               FontSpec   `json:"font"`
	Fonts              []string   `json:"fonts"`
	BackgroundGradient []RGBColor `json:"bgGradient"`
}

// ImagePath returns the route key with its extension replaced by ".png",
// the path the rendered image is published under.
func (s ImageRenderSpec) ImagePath() string {
	return strings.TrimSuffix(s.RouteKey, path.Ext(s.RouteKey)) + ".png"
}

// FeedItem is one entry of the syndication feed.
type FeedItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishDate time.Time `json:"pubDate"`
	Link        string    `json:"link"`
	Content     string    `json:"content"` // sanitized HTML
}

// Feed is the syndication feed handed to an external serializer.
type Feed struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Site        string     `json:"site"`
	Items       []FeedItem `json:"items"`
}
