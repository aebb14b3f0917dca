package main

import (
	"errors"
	"os"

	sitegen "github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/config"
)

// Exit codes for the sitegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, theme or color token
	ExitIO      = 3 // Content or output not readable/writable
	ExitContent = 4 // Invalid content: load, collision or render errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, assets.ErrThemeNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrThemeParse) ||
		errors.Is(err, sitegen.ErrConfigLookup) ||
		errors.Is(err, sitegen.ErrInvalidSiteURL) {
		return ExitUsage
	}

	// Content errors (exit 4)
	if errors.Is(err, sitegen.ErrContentLoad) ||
		errors.Is(err, sitegen.ErrRouteKeyCollision) ||
		errors.Is(err, sitegen.ErrArtifactRender) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrContentDir) ||
		errors.Is(err, ErrWriteManifest) {
		return ExitIO
	}

	return ExitGeneral
}
