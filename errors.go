package sitegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
// Typed errors below match their sentinel with errors.Is.
var (
	ErrConfigLookup      = errors.New("config lookup failed")
	ErrContentLoad       = errors.New("content load failed")
	ErrRouteKeyCollision = errors.New("route key collision")
	ErrArtifactRender    = errors.New("artifact render failed")

	// Color resolution errors.
	ErrInvalidColorPath = errors.New("invalid color path")
	ErrMissingSegment   = errors.New("segment not found")
	ErrNotAString       = errors.New("value is not a string")
	ErrInvalidHexColor  = errors.New("invalid hex color")

	// Content validation errors.
	ErrMissingField     = errors.New("missing required field")
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrEmptyCollection  = errors.New("collection name cannot be empty")
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrCollectionAbsent = errors.New("collection not found")

	// Route generation errors.
	ErrRouteOutsideRoot = errors.New("source path outside content root")
)

// ConfigLookupError reports a theme color token that cannot be resolved.
type ConfigLookupError struct {
	Path    string // full color path, e.g. "primary.200"
	Segment string // segment where resolution failed
	Err     error
}

func (e *ConfigLookupError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("resolving color %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("resolving color %q at %q: %v", e.Path, e.Segment, e.Err)
}

func (e *ConfigLookupError) Is(target error) bool { return target == ErrConfigLookup }

func (e *ConfigLookupError) Unwrap() error { return e.Err }

// ContentLoadError reports a failed collection load. Slug is empty when the
// failure is not tied to one document.
type ContentLoadError struct {
	Collection string
	Slug       string
	Err        error
}

func (e *ContentLoadError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("loading collection %q: %v", e.Collection, e.Err)
	}
	return fmt.Sprintf("loading collection %q, document %q: %v", e.Collection, e.Slug, e.Err)
}

func (e *ContentLoadError) Is(target error) bool { return target == ErrContentLoad }

func (e *ContentLoadError) Unwrap() error { return e.Err }

// RouteKeyCollisionError reports two source documents normalizing to the same route key.
type RouteKeyCollisionError struct {
	RouteKey string
	First    string // source path that claimed the key first
	Second   string
}

func (e *RouteKeyCollisionError) Error() string {
	return fmt.Sprintf("%v: %q from %q and %q", ErrRouteKeyCollision, e.RouteKey, e.First, e.Second)
}

func (e *RouteKeyCollisionError) Is(target error) bool { return target == ErrRouteKeyCollision }

// ArtifactRenderError reports a document whose body could not be rendered.
type ArtifactRenderError struct {
	Slug string
	Err  error
}

func (e *ArtifactRenderError) Error() string {
	return fmt.Sprintf("rendering %q: %v", e.Slug, e.Err)
}

func (e *ArtifactRenderError) Is(target error) bool { return target == ErrArtifactRender }

func (e *ArtifactRenderError) Unwrap() error { return e.Err }
