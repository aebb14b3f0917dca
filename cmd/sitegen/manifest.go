package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-json"

	sitegen "github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/dateutil"
	"github.com/alnah/go-sitegen/internal/fileutil"
)

// ErrWriteManifest indicates a manifest could not be encoded or written.
var ErrWriteManifest = errors.New("failed to write manifest")

// Manifest locations, relative to the output directory.
const (
	routesManifest    = "og/routes.json"
	feedManifest      = "feed.json"
	documentsManifest = "documents.json"
)

// routeManifest is consumed by the preview image renderer.
type routeManifest struct {
	Param  string       `json:"param"`
	Routes []routeEntry `json:"routes"`
}

type routeEntry struct {
	RouteKey  string                  `json:"routeKey"`
	ImagePath string                  `json:"imagePath"`
	Spec      sitegen.ImageRenderSpec `json:"spec"`
}

// documentEntry carries the per-page metadata pages need for their head
// tags.
type documentEntry struct {
	Collection      string   `json:"collection"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PublishDate     string   `json:"publishDate"`
	UpdatedDate     string   `json:"updatedDate,omitempty"`
	HeroImage       string   `json:"heroImage,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Link            string   `json:"link"`
	PreviewImageURL string   `json:"previewImageUrl"`
}

func newRouteManifest(routes sitegen.Routes) routeManifest {
	m := routeManifest{Param: sitegen.RouteParam, Routes: make([]routeEntry, 0, len(routes))}
	for _, spec := range routes.Entries() {
		m.Routes = append(m.Routes, routeEntry{
			RouteKey:  spec.RouteKey,
			ImagePath: spec.ImagePath(),
			Spec:      spec,
		})
	}
	return m
}

func newDocumentEntries(docs []sitegen.EnrichedDocument) []documentEntry {
	out := make([]documentEntry, 0, len(docs))
	for _, d := range docs {
		e := documentEntry{
			Collection:      d.Collection,
			Slug:            d.Slug,
			Title:           d.Frontmatter.Title,
			Description:     d.Frontmatter.Description,
			PublishDate:     dateutil.FormatISODate(d.Frontmatter.PublishDate),
			HeroImage:       d.Frontmatter.HeroImage,
			Tags:            d.Frontmatter.Tags,
			Link:            sitegen.FeedLink(d.Collection, d.Slug),
			PreviewImageURL: d.PreviewImageURL,
		}
		if !d.Frontmatter.UpdatedDate.IsZero() {
			e.UpdatedDate = dateutil.FormatISODate(d.Frontmatter.UpdatedDate)
		}
		out = append(out, e)
	}
	return out
}

// writeManifests encodes the build result under outDir and returns the
// written paths, in write order.
func writeManifests(outDir string, result *sitegen.BuildResult) ([]string, error) {
	feed := result.Feed
	if feed.Items == nil {
		feed.Items = []sitegen.FeedItem{}
	}

	manifests := []struct {
		name  string
		value any
	}{
		{routesManifest, newRouteManifest(result.Routes)},
		{feedManifest, feed},
		{documentsManifest, newDocumentEntries(result.Documents)},
	}

	written := make([]string, 0, len(manifests))
	for _, m := range manifests {
		data, err := json.MarshalIndent(m.value, "", "  ")
		if err != nil {
			return written, fmt.Errorf("%w: encoding %s: %v", ErrWriteManifest, m.name, err)
		}
		data = append(data, '\n')

		p := filepath.Join(outDir, filepath.FromSlash(m.name))
		if err := fileutil.WriteFileAtomic(p, data); err != nil {
			return written, fmt.Errorf("%w: %s: %w", ErrWriteManifest, p, err)
		}
		written = append(written, p)
	}

	return written, nil
}
