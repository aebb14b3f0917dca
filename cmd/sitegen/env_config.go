package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-sitegen/internal/config"
)

// envPrefix marks the variables the CLI reads.
const envPrefix = "SITEGEN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // SITEGEN_CONFIG: config file name or path
	Env        string // SITEGEN_ENV: build environment
	SiteURL    string // SITEGEN_SITE_URL: public site URL

	// Tier 2 - I/O
	ContentDir string // SITEGEN_CONTENT_DIR: content directory
	OutputDir  string // SITEGEN_OUTPUT_DIR: manifest output directory
	Theme      string // SITEGEN_THEME: theme name or path
	AssetPath  string // SITEGEN_ASSET_PATH: custom theme directory

	// Tier 3 - Tuning
	LogLevel         string // SITEGEN_LOG_LEVEL: debug, info, warn, error
	LogFormat        string // SITEGEN_LOG_FORMAT: json, console
	Workers          int    // SITEGEN_WORKERS: parallel workers
	SkipRenderErrors *bool  // SITEGEN_SKIP_RENDER_ERRORS: true/false
}

// knownEnvVars lists valid SITEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"SITEGEN_CONFIG":   true,
	"SITEGEN_ENV":      true,
	"SITEGEN_SITE_URL": true,
	// Tier 2 - I/O
	"SITEGEN_CONTENT_DIR": true,
	"SITEGEN_OUTPUT_DIR":  true,
	"SITEGEN_THEME":       true,
	"SITEGEN_ASSET_PATH":  true,
	// Tier 3 - Tuning
	"SITEGEN_LOG_LEVEL":          true,
	"SITEGEN_LOG_FORMAT":         true,
	"SITEGEN_WORKERS":            true,
	"SITEGEN_SKIP_RENDER_ERRORS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized SITEGEN_* values.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: getenv("SITEGEN_CONFIG"),
		Env:        getenv("SITEGEN_ENV"),
		SiteURL:    getenv("SITEGEN_SITE_URL"),
		// Tier 2
		ContentDir: getenv("SITEGEN_CONTENT_DIR"),
		OutputDir:  getenv("SITEGEN_OUTPUT_DIR"),
		Theme:      getenv("SITEGEN_THEME"),
		AssetPath:  getenv("SITEGEN_ASSET_PATH"),
		// Tier 3
		LogLevel:  getenv("SITEGEN_LOG_LEVEL"),
		LogFormat: getenv("SITEGEN_LOG_FORMAT"),
	}

	// Invalid or non-positive values are ignored
	if workers := getenv("SITEGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if skip := getenv("SITEGEN_SKIP_RENDER_ERRORS"); skip != "" {
		if b, err := strconv.ParseBool(skip); err == nil {
			cfg.SkipRenderErrors = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SITEGEN_* variables.
// Helps catch typos like SITEGEN_SITEURL instead of SITEGEN_SITE_URL.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	if env.Env != "" {
		cfg.Build.Env = env.Env
	}
	if env.SiteURL != "" {
		cfg.Site.URL = env.SiteURL
	}

	// Tier 2
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Build.OutputDir = env.OutputDir
	}
	if env.Theme != "" {
		cfg.Theme.Name = env.Theme
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	// Tier 3
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
	if env.SkipRenderErrors != nil {
		cfg.Feed.SkipRenderErrors = *env.SkipRenderErrors
	}
}
