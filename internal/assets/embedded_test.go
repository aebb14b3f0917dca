package assets

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name      string
		theme     string
		wantAlias string
		wantErr   error
	}{
		{"default theme", "default", `primary: "forest-green"`, nil},
		{"blue variant", "blue-chill", `primary: "blue-chill"`, nil},
		{"nonexistent", "nonexistent-xyz", "", ErrThemeNotFound},
		{"empty name", "", "", ErrInvalidAssetName},
		{"traversal", "../default", "", ErrInvalidAssetName},
		{"extension", "default.yaml", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTheme(tt.theme)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.theme, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme(%q) unexpected error: %v", tt.theme, err)
			}
			if !strings.Contains(string(got), tt.wantAlias) {
				t.Errorf("LoadTheme(%q) missing alias %q", tt.theme, tt.wantAlias)
			}
			if !strings.Contains(string(got), `"200": "#b9f9bc"`) {
				t.Errorf("LoadTheme(%q) missing forest-green 200", tt.theme)
			}
		})
	}
}

func TestEmbeddedLoader_ThemeNames(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().ThemeNames()
	want := []string{"blue-chill", "default"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ThemeNames() = %v, want %v", got, want)
	}
}

func TestLoadTheme_PackageLevel(t *testing.T) {
	t.Parallel()

	got, err := LoadTheme(DefaultThemeName)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if len(got) == 0 {
		t.Error("LoadTheme() returned empty content")
	}
}
