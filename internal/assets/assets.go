package assets

import (
	"fmt"
	"os"
)

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "default"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads a theme by name using the default embedded loader.
// The name should not include the .yaml extension or path components.
// Returns ErrThemeNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTheme(name string) ([]byte, error) {
	return defaultLoader.LoadTheme(name)
}

// ReadThemeFile reads a theme from an explicit file path.
// Returns ErrThemeNotFound if the file does not exist.
func ReadThemeFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- theme path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return data, nil
}
