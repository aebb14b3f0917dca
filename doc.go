// Package sitegen derives static-site artifacts from a collection of
// Markdown documents: social preview image specifications and a
// syndication feed.
//
// # Quick Start
//
// Build every artifact from a content directory:
//
//	theme, err := sitegen.ParseTheme(themeYAML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := &sitegen.FileStore{Dir: "content"}
//	result, err := sitegen.NewBuilder(store).Build(ctx, sitegen.BuildConfig{
//	    Env:            sitegen.EnvProduction,
//	    SiteURL:        "https://aidankinzett.com",
//	    FeedCollection: "blog",
//	    Theme:          theme,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// result.Routes maps each route key ("/blog/foo.md") to the parameters an
// image renderer needs; result.Feed holds the feed items with sanitized
// HTML content, newest first.
//
// # Pipeline
//
// A build runs these stages once:
//
//  1. Brand color resolution from the theme (ResolveColor)
//  2. Collection loading with draft filtering and ordering (Loader)
//  3. Route generation with collision detection (RouteGenerator)
//  4. Feed rendering: Markdown to HTML via Goldmark, then bluemonday
//     allow-list sanitization (FeedBuilder)
//
// The environment is always an explicit parameter. In EnvProduction,
// documents marked draft are excluded from every artifact.
//
// # Configuration
//
// Use functional options to customize builders:
//
//	b := sitegen.NewBuilder(store,
//	    sitegen.WithLogger(logger),
//	    sitegen.WithWorkers(4),
//	    sitegen.WithSkipRenderErrors(true),
//	)
//
// # Errors
//
// Failures are typed and match a sentinel with errors.Is:
// *ConfigLookupError (ErrConfigLookup), *ContentLoadError (ErrContentLoad),
// *RouteKeyCollisionError (ErrRouteKeyCollision) and *ArtifactRenderError
// (ErrArtifactRender).
package sitegen
