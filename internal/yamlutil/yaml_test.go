package yamlutil_test

// Notes:
// - ParseFrontmatter is tested through the observable split (decoded metadata
//   plus remaining body). Delimiter edge cases belong to adrg/frontmatter.
// - Key coercion (numeric YAML keys into string map keys) is covered because
//   theme files rely on it for shade names like 200.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-sitegen/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

type testFrontmatter struct {
	Title       string `yaml:"title"`
	Draft       bool   `yaml:"draft"`
	PublishDate string `yaml:"publishDate"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" {
					t.Errorf("Name = %q, want %q", cfg.Name, "test")
				}
				if cfg.Count != 42 {
					t.Errorf("Count = %d, want %d", cfg.Count, 42)
				}
				if !cfg.Enabled {
					t.Error("Enabled = false, want true")
				}
			},
		},
		{
			name: "quoted numeric keys into string map",
			data: []byte("\"200\": \"#a7edfa\"\n\"300\": \"#6bdef5\""),
			dest: &map[string]string{},
			check: func(t *testing.T, v any) {
				m := *v.(*map[string]string)
				if m["200"] != "#a7edfa" {
					t.Errorf(`m["200"] = %q, want "#a7edfa"`, m["200"])
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields only", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("name: strict\ncount: 10"), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "strict" || cfg.Count != 10 {
			t.Errorf("got %+v, want name=strict count=10", cfg)
		}
	})

	t.Run("unknown field causes error", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: test\nunknown_field: value"), &cfg)
		if err == nil {
			t.Fatal("expected error for unknown field, got nil")
		}
		if !strings.Contains(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want yamlutil prefix", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("name: test"), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseFrontmatter - Splits metadata block from document body
// ---------------------------------------------------------------------------

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("decodes metadata and returns body", func(t *testing.T) {
		t.Parallel()

		doc := "---\ntitle: Hello\ndraft: true\npublishDate: \"2024-03-01\"\nheroImage: /x.png\n---\n# Heading\n\nBody text.\n"

		var fm testFrontmatter
		body, err := yamlutil.ParseFrontmatter([]byte(doc), &fm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fm.Title != "Hello" {
			t.Errorf("Title = %q, want %q", fm.Title, "Hello")
		}
		if !fm.Draft {
			t.Error("Draft = false, want true")
		}
		if fm.PublishDate != "2024-03-01" {
			t.Errorf("PublishDate = %q, want %q", fm.PublishDate, "2024-03-01")
		}
		if !strings.Contains(string(body), "# Heading") {
			t.Errorf("body = %q, want to contain heading", body)
		}
		if strings.Contains(string(body), "title:") {
			t.Errorf("body = %q, should not contain frontmatter", body)
		}
	})

	t.Run("missing block", func(t *testing.T) {
		t.Parallel()

		var fm testFrontmatter
		_, err := yamlutil.ParseFrontmatter([]byte("# Just markdown\n"), &fm)
		if !errors.Is(err, yamlutil.ErrNoFrontmatter) {
			t.Errorf("error = %v, want ErrNoFrontmatter", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		var fm testFrontmatter
		_, err := yamlutil.ParseFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody\n"), &fm)
		if err == nil {
			t.Fatal("expected error for malformed frontmatter, got nil")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		var fm testFrontmatter
		_, err := yamlutil.ParseFrontmatter(nil, &fm)
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Note: This test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests to avoid data races.

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	t.Run("input exceeding limit fails", func(t *testing.T) {
		yamlutil.MaxInputSize = 100
		data := make([]byte, 101)
		copy(data, []byte("name: x"))
		var cfg testConfig
		err := yamlutil.Unmarshal(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})

	t.Run("error message includes sizes", func(t *testing.T) {
		yamlutil.MaxInputSize = 50
		data := make([]byte, 100)
		var cfg testConfig
		err := yamlutil.Unmarshal(data, &cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		msg := err.Error()
		if !strings.Contains(msg, "100 bytes") {
			t.Errorf("error should contain actual size, got: %s", msg)
		}
		if !strings.Contains(msg, "max 50") {
			t.Errorf("error should contain max size, got: %s", msg)
		}
	})

	t.Run("frontmatter also enforces limit", func(t *testing.T) {
		yamlutil.MaxInputSize = 10
		var fm testFrontmatter
		_, err := yamlutil.ParseFrontmatter([]byte("---\ntitle: long enough\n---\n"), &fm)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
