package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// contentFlags holds content location flags.
type contentFlags struct {
	dir            string
	root           string
	feedCollection string
}

// themeFlags holds theme selection flags.
type themeFlags struct {
	name      string
	colorPath string
	assetPath string
}

// buildFlags holds all flags for the build and check commands.
type buildFlags struct {
	common           commonFlags
	content          contentFlags
	theme            themeFlags
	output           string
	env              string
	siteURL          string
	workers          int
	skipRenderErrors bool

	// set records flags given explicitly, so zero values can override config.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and written files")
}

// addContentFlags adds content location flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.StringVar(&f.dir, "content", "", "content directory")
	fs.StringVar(&f.root, "content-root", "", "virtual root stripped from route keys")
	fs.StringVar(&f.feedCollection, "feed-collection", "", "collection syndicated in the feed")
}

// addThemeFlags adds theme flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.name, "theme", "", "theme name or path to a theme file")
	fs.StringVar(&f.colorPath, "color", "", "theme token for the image background (e.g. primary.200)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom themes")
}

// parseBuildFlags parses flags for the build and check commands.
func parseBuildFlags(name string, args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "manifest output directory")
	fs.StringVarP(&f.env, "env", "e", "", "build environment (production hides drafts)")
	fs.StringVar(&f.siteURL, "site", "", "public site URL")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.skipRenderErrors, "skip-render-errors", false, "leave documents that fail to render out of the feed")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addContentFlags(fs, &f.content)
	addThemeFlags(fs, &f.theme)

	fs.Usage = func() { printBuildUsage(stderr, name) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
