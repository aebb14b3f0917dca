// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// InCI reports whether the process runs under a CI system.
var InCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/sitegen.yaml"

	userDir := string(filepath.Separator) + "go-sitegen" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentDir returns hints when the content directory cannot be read.
func ForContentDir(dir string) string {
	hints := []string{"set content.dir or pass --content"}
	if InCI() && !filepath.IsAbs(dir) {
		hints = append(hints, "relative to the working directory "+workingDir())
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForThemeNotFound returns hints for theme not found errors.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForColorLookup returns hints for unresolvable color tokens.
func ForColorLookup(colorPath string) string {
	return format("theme.colorPath " + quote(colorPath) + " must name a hex leaf, e.g. primary.200 or brand.light[100]")
}

// ForMissingField returns hints for documents with incomplete frontmatter.
func ForMissingField() string {
	return format("frontmatter requires title, description and publishDate")
}

// ForRouteCollision returns hints for two sources sharing one route key.
func ForRouteCollision() string {
	return format("rename one of the files or check content.root")
}

// ForRenderError returns hints for documents whose body failed to render.
func ForRenderError() string {
	return format("fix the document or use --skip-render-errors to leave it out of the feed")
}

// ForSiteURL returns hints for an invalid site URL.
func ForSiteURL() string {
	return format("site.url must be absolute, e.g. https://example.com")
}

func quote(s string) string {
	return `"` + s + `"`
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
