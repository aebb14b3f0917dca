package main

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/alnah/go-sitegen/internal/assets"
)

// runThemes lists the embedded themes and returns an exit code.
func runThemes(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	names := assets.NewEmbeddedLoader().ThemeNames()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(names); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitGeneral
		}
		return ExitSuccess
	}

	for _, name := range names {
		if name == assets.DefaultThemeName {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return ExitSuccess
}
