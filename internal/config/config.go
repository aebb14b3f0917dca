package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-sitegen/internal/logger"
	"github.com/alnah/go-sitegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxURLLength         = 2048 // Browser limit
	MaxTitleLength       = 200  // Feed title
	MaxDescriptionLength = 1000 // Feed description
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxNameLength        = 100  // Collection, theme, environment names
	MaxColorPathLength   = 200  // "primary.200", "brand.light[100]"
	MaxWorkers           = 64
)

// Default values.
const (
	DefaultContentDir     = "src/content"
	DefaultContentRoot    = "/src/content"
	DefaultFeedCollection = "blog"
	DefaultThemeName      = "default"
	DefaultColorPath      = "primary.200"
	DefaultOutputDir      = "dist"
	DefaultEnv            = "development"
	DefaultSiteURL        = "https://aidankinzett.com"
)

var (
	hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// Config holds all configuration for a site build.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Theme   ThemeConfig   `yaml:"theme"`
	Image   ImageConfig   `yaml:"image"`
	Feed    FeedConfig    `yaml:"feed"`
	Build   BuildConfig   `yaml:"build"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     logger.Config `yaml:"log"`
}

// SiteConfig describes the published site.
type SiteConfig struct {
	URL         string `yaml:"url"`         // Public address, used for preview image URLs
	Title       string `yaml:"title"`       // Feed title
	Description string `yaml:"description"` // Feed description
}

// ContentConfig locates the content collections.
type ContentConfig struct {
	Dir            string `yaml:"dir"`            // Content directory on disk
	Root           string `yaml:"root"`           // Virtual root stripped from route keys
	FeedCollection string `yaml:"feedCollection"` // Collection syndicated in the feed
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name      string `yaml:"name"`      // Theme name or path to a theme YAML file
	ColorPath string `yaml:"colorPath"` // Token used for the preview image background
}

// ImageConfig defines preview image parameters shared by every route.
type ImageConfig struct {
	Logo              string   `yaml:"logo"`
	Fonts             []string `yaml:"fonts"`
	Families          []string `yaml:"families"`
	TitleWeight       string   `yaml:"titleWeight"`
	DescriptionWeight string   `yaml:"descriptionWeight"`
	TextColor         string   `yaml:"textColor"` // hex, e.g. "#000000"
}

// FeedConfig defines feed rendering options.
type FeedConfig struct {
	SkipRenderErrors bool            `yaml:"skipRenderErrors"`
	MaxBodySize      int             `yaml:"maxBodySize"` // bytes, 0 = default
	AllowList        AllowListConfig `yaml:"allowList"`
}

// AllowListConfig overrides the sanitization allow-list. Empty Tags keeps
// the default list.
type AllowListConfig struct {
	Tags       []string            `yaml:"tags"`
	Attributes map[string][]string `yaml:"attributes"`
	Schemes    []string            `yaml:"schemes"`
}

// BuildConfig defines build execution options.
type BuildConfig struct {
	Env       string `yaml:"env"`       // "production" hides drafts
	OutputDir string `yaml:"outputDir"` // Manifest output directory
	Workers   int    `yaml:"workers"`   // 0 = auto
}

// AssetsConfig defines custom asset settings.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Custom theme directory (empty = embedded only)
}

// Validate checks field lengths and values.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.url", c.Site.URL, MaxURLLength},
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"content.root", c.Content.Root, MaxPathLength},
		{"content.feedCollection", c.Content.FeedCollection, MaxNameLength},
		{"theme.name", c.Theme.Name, MaxPathLength},
		{"theme.colorPath", c.Theme.ColorPath, MaxColorPathLength},
		{"image.logo", c.Image.Logo, MaxPathLength},
		{"build.env", c.Build.Env, MaxNameLength},
		{"build.outputDir", c.Build.OutputDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Site.URL != "" {
		if err := validateSiteURL(c.Site.URL); err != nil {
			return err
		}
	}
	for i, font := range c.Image.Fonts {
		if err := validateFieldLength(fmt.Sprintf("image.fonts[%d]", i), font, MaxURLLength); err != nil {
			return err
		}
	}
	if c.Image.TextColor != "" && !hexColorPattern.MatchString(c.Image.TextColor) {
		return fmt.Errorf("%w: image.textColor %q is not a hex color", ErrInvalidField, c.Image.TextColor)
	}
	if c.Content.FeedCollection != "" && !namePattern.MatchString(c.Content.FeedCollection) {
		return fmt.Errorf("%w: content.feedCollection %q", ErrInvalidField, c.Content.FeedCollection)
	}
	if c.Build.Env != "" && !namePattern.MatchString(c.Build.Env) {
		return fmt.Errorf("%w: build.env %q", ErrInvalidField, c.Build.Env)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers %d (must be 0-%d)", ErrInvalidField, c.Build.Workers, MaxWorkers)
	}
	if c.Feed.MaxBodySize < 0 {
		return fmt.Errorf("%w: feed.maxBodySize %d (must be >= 0)", ErrInvalidField, c.Feed.MaxBodySize)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateSiteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: site.url %q must be an absolute http(s) URL", ErrInvalidField, raw)
	}
	return nil
}

// DefaultConfig returns the configuration of the stock site.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{URL: DefaultSiteURL},
		Content: ContentConfig{
			Dir:            DefaultContentDir,
			Root:           DefaultContentRoot,
			FeedCollection: DefaultFeedCollection,
		},
		Theme: ThemeConfig{Name: DefaultThemeName, ColorPath: DefaultColorPath},
		Build: BuildConfig{Env: DefaultEnv, OutputDir: DefaultOutputDir},
		Log:   logger.Config{Level: logger.DefaultLevel, Format: logger.DefaultFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// SearchPaths returns the locations LoadConfig tries for a config name, in
// order: current directory, then the user config directory, .yaml before
// .yml in each.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-sitegen", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
