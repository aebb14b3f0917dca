package sitegen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-sitegen/internal/dateutil"
	"github.com/alnah/go-sitegen/internal/fileutil"
	"github.com/alnah/go-sitegen/internal/yamlutil"
)

// DefaultContentRoot is the virtual directory source paths are rooted at.
const DefaultContentRoot = "/src/content"

// FileStore reads collections from a directory tree: every sub-directory of
// Dir is a collection, every Markdown file below it a document.
//
// Files are visited in lexical order so builds are reproducible regardless
// of filesystem enumeration order.
type FileStore struct {
	Dir         string // content directory on disk
	ContentRoot string // virtual root for SourcePath; DefaultContentRoot if empty
}

// rawFrontmatter mirrors the YAML block at the top of a content file.
type rawFrontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PublishDate string   `yaml:"publishDate"`
	UpdatedDate string   `yaml:"updatedDate"`
	Draft       bool     `yaml:"draft"`
	HeroImage   string   `yaml:"heroImage"`
	Tags        []string `yaml:"tags"`
	Slug        string   `yaml:"slug"`
}

// Collections lists the sub-directories of Dir, sorted. Hidden directories
// and those starting with '_' are skipped.
func (s *FileStore) Collections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || isIgnoredName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// FetchCollection parses every Markdown file of the named collection and
// returns the documents policy allows.
func (s *FileStore) FetchCollection(ctx context.Context, name string, policy VisibilityPolicy) ([]Document, error) {
	dir := filepath.Join(s.Dir, name)
	if !fileutil.DirExists(dir) {
		return nil, fmt.Errorf("%w: %q in %s", ErrCollectionAbsent, name, s.Dir)
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && isIgnoredName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if fileutil.IsMarkdown(p) && !isIgnoredName(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning collection %q: %w", name, err)
	}
	sort.Strings(files)

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		doc, err := s.readDocument(dir, name, file)
		if err != nil {
			return nil, err
		}
		if !policy.Allows(doc.Frontmatter) {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readDocument parses one content file.
func (s *FileStore) readDocument(dir, collection, file string) (Document, error) {
	rel, err := filepath.Rel(dir, file)
	if err != nil {
		return Document{}, err
	}
	rel = filepath.ToSlash(rel)

	data, err := os.ReadFile(file) // #nosec G304 -- path comes from walking the configured content dir
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", rel, err)
	}

	var raw rawFrontmatter
	body, err := yamlutil.ParseFrontmatter(data, &raw)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", rel, err)
	}

	fm, err := raw.toFrontmatter()
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", rel, err)
	}

	// Route keys derive from the source path, so the slug must too.
	slug := strings.TrimSuffix(rel, path.Ext(rel))
	if err := validateSlug(slug); err != nil {
		return Document{}, fmt.Errorf("%s: %w", rel, err)
	}
	if override := strings.TrimSpace(raw.Slug); override != "" && override != slug {
		return Document{}, fmt.Errorf("%s: %w: frontmatter slug %q differs from file name %q; rename the file",
			rel, ErrInvalidSlug, override, slug)
	}

	root := s.ContentRoot
	if root == "" {
		root = DefaultContentRoot
	}

	return Document{
		Slug:        slug,
		Collection:  collection,
		SourcePath:  path.Join(root, collection, rel),
		Frontmatter: fm,
		Body:        string(body),
	}, nil
}

// toFrontmatter parses date fields. An absent publishDate stays zero and is
// reported by the Loader as a missing field.
func (r rawFrontmatter) toFrontmatter() (Frontmatter, error) {
	fm := Frontmatter{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Draft:       r.Draft,
		HeroImage:   r.HeroImage,
		Tags:        r.Tags,
	}

	var err error
	if fm.PublishDate, err = parseOptionalDate(r.PublishDate); err != nil {
		return Frontmatter{}, fmt.Errorf("publishDate: %w", err)
	}
	if fm.UpdatedDate, err = parseOptionalDate(r.UpdatedDate); err != nil {
		return Frontmatter{}, fmt.Errorf("updatedDate: %w", err)
	}
	return fm, nil
}

func parseOptionalDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return dateutil.ParseTimestamp(value)
}

// validateSlug rejects slugs that cannot be used as a URL path segment.
func validateSlug(slug string) error {
	if slug == "" || strings.HasPrefix(slug, "/") || strings.HasSuffix(slug, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	for _, seg := range strings.Split(slug, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
		}
	}
	if strings.ContainsAny(slug, "\\?#") {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

func isIgnoredName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

