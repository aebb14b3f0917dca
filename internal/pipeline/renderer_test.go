package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// failingConverter always fails conversion.
type failingConverter struct{}

func (failingConverter) ToHTML(context.Context, string) (string, error) {
	return "", ErrHTMLConversion
}

func TestMarkupRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewMarkupRenderer(DefaultAllowList())
	ctx := context.Background()

	tests := []struct {
		name         string
		body         string
		pageURL      string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "plain markdown",
			body:         "# Hello\n\nWorld",
			wantContains: []string{"<h1", "Hello", "<p>World</p>"},
		},
		{
			name:         "script stripped",
			body:         "Hi\n\n<script>alert(1)</script>",
			wantContains: []string{"<p>Hi</p>"},
			wantNot:      []string{"<script", "alert(1)"},
		},
		{
			name:         "highlight becomes mark",
			body:         "This is ==important==.",
			wantContains: []string{"<mark>important</mark>"},
		},
		{
			name:         "highlight wraps inline markup",
			body:         "==**hot** take==",
			wantContains: []string{"<mark><strong>hot</strong> take</mark>"},
		},
		{
			name:         "equality in code spans stays literal",
			body:         "Use `a == b` or `c == d`.",
			wantContains: []string{"<code>a == b</code>", "<code>c == d</code>"},
			wantNot:      []string{"<mark"},
		},
		{
			name:         "equality in fenced code stays literal",
			body:         "```js\nif (x === y || z === w) {}\n```",
			wantContains: []string{"==="},
			wantNot:      []string{"<mark", "</mark"},
		},
		{
			name:         "spaced operators are text",
			body:         "a == b and c === d",
			wantContains: []string{"<p>a == b and c === d</p>"},
			wantNot:      []string{"<mark"},
		},
		{
			name:         "relative image resolved",
			body:         "![logo](/logo.png)",
			pageURL:      "https://aidankinzett.com/blog/hello-world/",
			wantContains: []string{`src="https://aidankinzett.com/logo.png"`},
		},
		{
			name:         "relative image kept without page URL",
			body:         "![logo](/logo.png)",
			wantContains: []string{`src="/logo.png"`},
		},
		{
			name:    "empty body",
			body:    "",
			wantNot: []string{"<"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(ctx, tt.body, tt.pageURL)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() should contain %q\nGot:\n%s", want, got)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("Render() should NOT contain %q\nGot:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestMarkupRenderer_RenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []RendererOption
		body    string
		pageURL string
		wantErr error
	}{
		{
			name:    "invalid UTF-8",
			body:    "ok \xff\xfe bad",
			wantErr: ErrInvalidUTF8,
		},
		{
			name:    "body over limit",
			opts:    []RendererOption{WithMaxBodySize(8)},
			body:    "0123456789",
			wantErr: ErrBodyTooLarge,
		},
		{
			name:    "converter failure",
			opts:    []RendererOption{WithConverter(failingConverter{})},
			body:    "# Title",
			wantErr: ErrHTMLConversion,
		},
		{
			name:    "relative page URL",
			body:    "[x](y)",
			pageURL: "/blog/x/",
			wantErr: ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewMarkupRenderer(DefaultAllowList(), tt.opts...)
			_, err := r.Render(context.Background(), tt.body, tt.pageURL)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithMaxBodySize_NonPositiveKeepsDefault(t *testing.T) {
	t.Parallel()

	r := NewMarkupRenderer(DefaultAllowList(), WithMaxBodySize(0))
	if r.maxBodySize != DefaultMaxBodySize {
		t.Errorf("maxBodySize = %d, want %d", r.maxBodySize, DefaultMaxBodySize)
	}
}

func TestMarkupRenderer_HighlightFollowsAllowList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list AllowList
		want string
	}{
		{"default list keeps mark", DefaultAllowList(), "<p>plain <mark>marked</mark> text</p>"},
		{"list without mark strips it", AllowList{Tags: []string{"p"}}, "<p>plain marked text</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewMarkupRenderer(tt.list).Render(context.Background(), "plain ==marked== text", "")
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
