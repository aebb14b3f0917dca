package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	sitegen "github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch cmd {
	case "build", "check":
		mode := modeBuild
		if cmd == "check" {
			mode = modeCheck
		}

		ctx, stop := notifyContext(context.Background())
		defer stop()

		err := runBuild(ctx, cmd, rest, mode, env)
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "themes":
		return runThemes(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "sitegen %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// hintFor returns an actionable hint for err, or "". Hints that need
// context the error does not carry are attached where the error is created.
func hintFor(err error) string {
	var collision *sitegen.RouteKeyCollisionError
	var lookup *sitegen.ConfigLookupError

	switch {
	case errors.Is(err, assets.ErrThemeNotFound):
		return hints.ForThemeNotFound(assets.NewEmbeddedLoader().ThemeNames())
	case errors.As(err, &lookup):
		return hints.ForColorLookup(lookup.Path)
	case errors.Is(err, sitegen.ErrMissingField):
		return hints.ForMissingField()
	case errors.As(err, &collision):
		return hints.ForRouteCollision()
	case errors.Is(err, sitegen.ErrArtifactRender):
		return hints.ForRenderError()
	case errors.Is(err, sitegen.ErrInvalidSiteURL):
		return hints.ForSiteURL()
	case errors.Is(err, ErrWriteManifest):
		return hints.ForOutputDirectory()
	}
	return ""
}
