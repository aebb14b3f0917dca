package pipeline

// Notes:
// - Tests observable sanitizer output only; bluemonday internals are not inspected
// - Attribute ordering in output follows bluemonday, so assertions use substrings

import (
	"strings"
	"testing"
)

func TestSanitizer_DefaultAllowList(t *testing.T) {
	t.Parallel()

	s := NewSanitizer(DefaultAllowList())

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:    "script removed with content",
			input:   "<p>Hi</p><script>alert(1)</script>",
			wantNot: []string{"<script", "alert(1)"},
			wantContains: []string{
				"<p>Hi</p>",
			},
		},
		{
			name:    "style removed with content",
			input:   "<style>p{color:red}</style><p>ok</p>",
			wantNot: []string{"<style", "color:red"},
		},
		{
			name:         "event handler stripped",
			input:        `<img src="a.png" onerror="alert(1)" alt="x">`,
			wantContains: []string{`src="a.png"`, `alt="x"`},
			wantNot:      []string{"onerror"},
		},
		{
			name:    "javascript link stripped",
			input:   `<a href="javascript:alert(1)">x</a>`,
			wantNot: []string{"javascript:"},
		},
		{
			name:         "https link kept",
			input:        `<a href="https://example.com" title="t">x</a>`,
			wantContains: []string{`href="https://example.com"`, `title="t"`},
		},
		{
			name:         "relative link kept",
			input:        `<a href="/blog/other/">x</a>`,
			wantContains: []string{`href="/blog/other/"`},
		},
		{
			name:         "mailto kept",
			input:        `<a href="mailto:me@example.com">mail</a>`,
			wantContains: []string{`href="mailto:me@example.com"`},
		},
		{
			name:         "chroma classes kept",
			input:        `<pre class="chroma"><code><span class="kd">func</span></code></pre>`,
			wantContains: []string{`<pre class="chroma">`, `<span class="kd">`},
		},
		{
			name:    "inline style dropped",
			input:   `<span style="color:#fff">x</span>`,
			wantNot: []string{"style="},
		},
		{
			name:         "iframe removed",
			input:        `<iframe src="https://evil.example"></iframe><p>after</p>`,
			wantContains: []string{"<p>after</p>"},
			wantNot:      []string{"iframe"},
		},
		{
			name:         "table structure kept",
			input:        "<table><thead><tr><th>A</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>",
			wantContains: []string{"<table>", "<th>A</th>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() should contain %q\nGot:\n%s", want, got)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("Sanitize() should NOT contain %q\nGot:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestSanitizer_CustomAllowList(t *testing.T) {
	t.Parallel()

	list := AllowList{
		Tags:       []string{"p", "a", "abbr"},
		Attributes: map[string][]string{"a": {"href"}, GlobalAttributes: {"title"}},
		Schemes:    []string{"https"},
	}
	s := NewSanitizer(list)

	got := s.Sanitize(`<h1>Gone</h1><p title="p"><a href="http://plain.example">x</a><abbr title="HTML">HTML</abbr></p>`)

	if strings.Contains(got, "<h1>") {
		t.Errorf("Sanitize() kept element outside allow-list: %s", got)
	}
	if !strings.Contains(got, "Gone") {
		t.Errorf("Sanitize() should keep text of dropped element: %s", got)
	}
	if strings.Contains(got, "http://plain.example") {
		t.Errorf("Sanitize() kept scheme outside allow-list: %s", got)
	}
	if !strings.Contains(got, `<abbr title="HTML">`) || !strings.Contains(got, `<p title="p">`) {
		t.Errorf("Sanitize() should keep global attribute: %s", got)
	}
}
