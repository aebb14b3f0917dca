package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	sitegen "github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/config"
	"github.com/alnah/go-sitegen/internal/fileutil"
	"github.com/alnah/go-sitegen/internal/hints"
	"github.com/alnah/go-sitegen/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrContentDir         = errors.New("content directory not found")
	ErrThemeParse         = errors.New("invalid theme")
)

// buildMode distinguishes the build and check commands.
type buildMode int

const (
	modeBuild buildMode = iota // derive and write manifests
	modeCheck                  // derive only, report warnings
)

// runBuild orchestrates one build or check pass.
func runBuild(ctx context.Context, name string, args []string, mode buildMode, env *Environment) error {
	flags, rest, err := parseBuildFlags(name, args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	defer func() { _ = log.Sync() }()

	theme, err := loadTheme(cfg)
	if err != nil {
		return err
	}
	image, err := imageOptions(cfg)
	if err != nil {
		return err
	}

	if !fileutil.DirExists(cfg.Content.Dir) {
		return fmt.Errorf("%w: %s%s", ErrContentDir, cfg.Content.Dir, hints.ForContentDir(cfg.Content.Dir))
	}
	store := &sitegen.FileStore{Dir: cfg.Content.Dir, ContentRoot: cfg.Content.Root}

	start := env.Now()
	result, err := sitegen.NewBuilder(store, builderOptions(cfg, log)...).Build(ctx, sitegen.BuildConfig{
		Env:             sitegen.Environment(cfg.Build.Env),
		SiteURL:         cfg.Site.URL,
		FeedCollection:  cfg.Content.FeedCollection,
		FeedTitle:       cfg.Site.Title,
		FeedDescription: cfg.Site.Description,
		Theme:           theme,
		ColorPath:       cfg.Theme.ColorPath,
		Image:           image,
	})
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		fmt.Fprintf(env.Stderr, "SKIPPED %s: %v\n", skipped.Slug, skipped.Err)
	}

	if mode == modeCheck {
		warnings := checkWarnings(cfg)
		for _, w := range warnings {
			fmt.Fprintf(env.Stderr, "warning: %s\n", w)
		}
		if !flags.common.quiet {
			printSummary(env, result, env.Now().Sub(start), flags.common.verbose)
			fmt.Fprintln(env.Stdout, "Check passed")
		}
		return nil
	}

	written, err := writeManifests(cfg.Build.OutputDir, result)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			for _, p := range written {
				fmt.Fprintf(env.Stdout, "Wrote %s\n", p)
			}
		}
		printSummary(env, result, env.Now().Sub(start), flags.common.verbose)
	}

	return nil
}

// loadConfig loads the config named by the flag, then SITEGEN_CONFIG.
// Without either, defaults are used.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		paths := []string{name}
		if !fileutil.IsFilePath(name) {
			paths = config.SearchPaths(name)
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(paths))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags to the config (CLI wins).
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Build.OutputDir = flags.output
	}
	if flags.env != "" {
		cfg.Build.Env = flags.env
	}
	if flags.siteURL != "" {
		cfg.Site.URL = flags.siteURL
	}
	if flags.set["workers"] {
		cfg.Build.Workers = flags.workers
	}
	if flags.set["skip-render-errors"] {
		cfg.Feed.SkipRenderErrors = flags.skipRenderErrors
	}

	// Content
	if flags.content.dir != "" {
		cfg.Content.Dir = flags.content.dir
	}
	if flags.set["content-root"] {
		cfg.Content.Root = flags.content.root
	}
	if flags.content.feedCollection != "" {
		cfg.Content.FeedCollection = flags.content.feedCollection
	}

	// Theme
	if flags.theme.name != "" {
		cfg.Theme.Name = flags.theme.name
	}
	if flags.theme.colorPath != "" {
		cfg.Theme.ColorPath = flags.theme.colorPath
	}
	if flags.theme.assetPath != "" {
		cfg.Assets.BasePath = flags.theme.assetPath
	}

	// Logging
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	} else if flags.common.quiet {
		cfg.Log.Level = "error"
	}
}

// validateWorkers rejects worker counts outside 0 (auto) to config.MaxWorkers.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// loadTheme resolves theme.name as a file path or a theme name.
// Names are looked up in assets.basePath first, then in the embedded themes.
func loadTheme(cfg *config.Config) (sitegen.Theme, error) {
	var data []byte
	var err error

	if fileutil.IsFilePath(cfg.Theme.Name) {
		data, err = assets.ReadThemeFile(cfg.Theme.Name)
	} else {
		var resolver *assets.AssetResolver
		resolver, err = assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return sitegen.Theme{}, err
		}
		data, err = resolver.LoadTheme(cfg.Theme.Name)
	}
	if err != nil {
		return sitegen.Theme{}, err
	}

	theme, err := sitegen.ParseTheme(data)
	if err != nil {
		return sitegen.Theme{}, fmt.Errorf("%w %q: %v", ErrThemeParse, cfg.Theme.Name, err)
	}
	return theme, nil
}

// imageOptions starts from the stock image settings and applies config
// overrides.
func imageOptions(cfg *config.Config) (sitegen.ImageOptions, error) {
	opts := sitegen.DefaultImageOptions()
	opts.ContentRoot = cfg.Content.Root

	img := cfg.Image
	if img.Logo != "" {
		opts.LogoPath = img.Logo
	}
	if len(img.Fonts) > 0 {
		opts.Fonts = append([]string(nil), img.Fonts...)
	}
	if len(img.Families) > 0 {
		opts.TitleFont.Families = append([]string(nil), img.Families...)
		opts.DescriptionFont.Families = append([]string(nil), img.Families...)
	}
	if img.TitleWeight != "" {
		opts.TitleFont.Weight = img.TitleWeight
	}
	if img.DescriptionWeight != "" {
		opts.DescriptionFont.Weight = img.DescriptionWeight
	}
	if img.TextColor != "" {
		color, err := sitegen.ParseHexColor(img.TextColor)
		if err != nil {
			return sitegen.ImageOptions{}, fmt.Errorf("%w: image.textColor: %v", config.ErrInvalidField, err)
		}
		opts.TitleFont.Color = color
		opts.DescriptionFont.Color = color
	}

	return opts, nil
}

// builderOptions translates config into library options.
func builderOptions(cfg *config.Config, log *zap.Logger) []sitegen.Option {
	opts := []sitegen.Option{
		sitegen.WithLogger(log),
		sitegen.WithWorkers(cfg.Build.Workers),
		sitegen.WithSkipRenderErrors(cfg.Feed.SkipRenderErrors),
		sitegen.WithMaxBodySize(cfg.Feed.MaxBodySize),
	}
	if list := cfg.Feed.AllowList; len(list.Tags) > 0 {
		opts = append(opts, sitegen.WithAllowList(sitegen.AllowList{
			Tags:       list.Tags,
			Attributes: list.Attributes,
			Schemes:    list.Schemes,
		}))
	}
	return opts
}

// checkWarnings reports problems that do not fail a build.
func checkWarnings(cfg *config.Config) []string {
	var warnings []string
	logo := cfg.Image.Logo
	if logo == "" {
		logo = sitegen.DefaultLogoPath
	}
	if !fileutil.IsURL(logo) && !fileutil.FileExists(logo) {
		warnings = append(warnings, fmt.Sprintf("logo %s not found", logo))
	}
	if cfg.Site.URL == "" {
		warnings = append(warnings, "site.url is empty; preview image URLs will be site-relative")
	}
	if cfg.Content.FeedCollection == "" {
		warnings = append(warnings, "content.feedCollection is empty; the feed has no items")
	}
	return warnings
}

// printSummary prints counts for one build.
func printSummary(env *Environment, result *sitegen.BuildResult, elapsed time.Duration, verbose bool) {
	fmt.Fprintf(env.Stdout, "%d documents, %d image routes, %d feed items",
		len(result.Documents), len(result.Routes), len(result.Feed.Items))
	if n := len(result.Skipped); n > 0 {
		fmt.Fprintf(env.Stdout, " (%d skipped)", n)
	}
	if verbose {
		fmt.Fprintf(env.Stdout, " in %v", elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(env.Stdout)
}
