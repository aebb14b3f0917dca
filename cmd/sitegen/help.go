package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Derive image routes and the feed, write JSON manifests")
	fmt.Fprintln(w, "  check      Run a build without writing, report warnings")
	fmt.Fprintln(w, "  themes     List built-in color themes")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitegen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build and check commands.
func printBuildUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: sitegen %s [flags]\n", name)
	fmt.Fprintln(w)
	if name == "check" {
		fmt.Fprintln(w, "Load content and derive every artifact without writing manifests.")
	} else {
		fmt.Fprintln(w, "Load content, derive preview image routes and the feed, and write")
		fmt.Fprintln(w, "og/routes.json, feed.json and documents.json to the output directory.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --content <dir>         Content directory (default src/content)")
	fmt.Fprintln(w, "      --content-root <path>   Virtual root stripped from route keys")
	fmt.Fprintln(w, "  -o, --output <dir>          Manifest output directory (default dist)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -e, --env <name>            Environment: production hides drafts")
	fmt.Fprintln(w, "      --site <url>            Public site URL")
	fmt.Fprintln(w, "      --feed-collection <s>   Collection syndicated in the feed")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --skip-render-errors    Leave failing documents out of the feed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --theme <name|path>     Theme name or theme file")
	fmt.Fprintln(w, "      --color <token>         Background token, e.g. primary.200")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with custom themes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug logs and written files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEGEN_CONFIG, SITEGEN_ENV, SITEGEN_SITE_URL, SITEGEN_CONTENT_DIR,")
	fmt.Fprintln(w, "  SITEGEN_OUTPUT_DIR, SITEGEN_THEME, SITEGEN_ASSET_PATH, SITEGEN_WORKERS,")
	fmt.Fprintln(w, "  SITEGEN_SKIP_RENDER_ERRORS, SITEGEN_LOG_LEVEL, SITEGEN_LOG_FORMAT")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build", "check":
		printBuildUsage(env.Stdout, args[0])
	case "themes":
		fmt.Fprintln(env.Stdout, "Usage: sitegen themes [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List built-in color themes.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
