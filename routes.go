package sitegen

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// RouteParam is the name of the dynamic route segment preview images are
// published under ("/og/[...route].png").
const RouteParam = "route"

// Defaults for preview image rendering.
const (
	DefaultLogoPath = "./public/apple-icon.png"
	DefaultFontURL  = "https://aidankinzett.com/fonts/BerkeleyMonoVariable-Regular.ttf"
)

// ImageOptions holds the preview image settings shared by every route.
type ImageOptions struct {
	// ContentRoot is stripped once from each source path to form the route
	// key. Empty keeps source paths as they are.
	ContentRoot     string
	LogoPath        string
	Fonts           []string
	TitleFont       FontStyle
	DescriptionFont FontStyle
}

// DefaultImageOptions returns the stock preview image settings.
func DefaultImageOptions() ImageOptions {
	families := []string{"BerkleyMono", "monospaced"}
	return ImageOptions{
		ContentRoot: DefaultContentRoot,
		LogoPath:    DefaultLogoPath,
		Fonts:       []string{DefaultFontURL},
		TitleFont: FontStyle{
			Families: families,
			Weight:   "Bold",
			Color:    RGBColor{},
		},
		DescriptionFont: FontStyle{
			Families: append([]string(nil), families...),
			Color:    RGBColor{},
		},
	}
}

func (o ImageOptions) isZero() bool {
	return o.ContentRoot == "" && o.LogoPath == "" && len(o.Fonts) == 0 &&
		len(o.TitleFont.Families) == 0 && len(o.DescriptionFont.Families) == 0
}

// Routes maps route keys to image render specs.
type Routes map[string]ImageRenderSpec

// Keys returns the route keys, sorted.
func (r Routes) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the specs ordered by route key.
func (r Routes) Entries() []ImageRenderSpec {
	keys := r.Keys()
	out := make([]ImageRenderSpec, len(keys))
	for i, k := range keys {
		out[i] = r[k]
	}
	return out
}

// RouteGenerator derives one image render spec per document.
type RouteGenerator struct {
	opts       ImageOptions
	brandColor RGBColor
}

// NewRouteGenerator creates a generator drawing every image over brandColor.
func NewRouteGenerator(opts ImageOptions, brandColor RGBColor) *RouteGenerator {
	return &RouteGenerator{opts: opts, brandColor: brandColor}
}

// Generate maps every document to a spec keyed by its route key.
//
// All keys are computed and checked before any spec is built, so a
// collision fails with *RouteKeyCollisionError and no partial result.
// A source outside the content root fails with ErrRouteOutsideRoot.
func (g *RouteGenerator) Generate(docs []EnrichedDocument) (Routes, error) {
	ordered := make([]EnrichedDocument, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SourcePath < ordered[j].SourcePath
	})

	keys := make([]string, len(ordered))
	owner := make(map[string]string, len(ordered))
	for i, doc := range ordered {
		key, err := NormalizeRouteKey(doc.SourcePath, g.opts.ContentRoot)
		if err != nil {
			return nil, err
		}
		if first, ok := owner[key]; ok {
			return nil, &RouteKeyCollisionError{RouteKey: key, First: first, Second: doc.SourcePath}
		}
		owner[key] = doc.SourcePath
		keys[i] = key
	}

	routes := make(Routes, len(ordered))
	for i, doc := range ordered {
		routes[keys[i]] = g.spec(keys[i], doc)
	}
	return routes, nil
}

func (g *RouteGenerator) spec(key string, doc EnrichedDocument) ImageRenderSpec {
	return ImageRenderSpec{
		RouteKey:    key,
		Title:       doc.Frontmatter.Title,
		Description: doc.Frontmatter.Description,
		Logo:        LogoSpec{Path: g.opts.LogoPath},
		Font: FontSpec{
			Title:       cloneFontStyle(g.opts.TitleFont),
			Description: cloneFontStyle(g.opts.DescriptionFont),
		},
		Fonts:              append([]string(nil), g.opts.Fonts...),
		BackgroundGradient: []RGBColor{g.brandColor},
	}
}

// NormalizeRouteKey cleans sourcePath and strips contentRoot from its start
// exactly once: "/src/content/blog/foo.md" becomes "/blog/foo.md".
func NormalizeRouteKey(sourcePath, contentRoot string) (string, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return "", fmt.Errorf("%w: empty source path", ErrRouteOutsideRoot)
	}
	clean := path.Clean("/" + strings.TrimPrefix(sourcePath, "/"))

	root := strings.TrimSuffix(path.Clean("/"+strings.TrimPrefix(contentRoot, "/")), "/")
	if root == "" {
		return clean, nil
	}

	if !strings.HasPrefix(clean, root+"/") {
		return "", fmt.Errorf("%w: %q not under %q", ErrRouteOutsideRoot, sourcePath, root)
	}
	return strings.TrimPrefix(clean, root), nil
}

func cloneFontStyle(fs FontStyle) FontStyle {
	fs.Families = append([]string(nil), fs.Families...)
	return fs
}
