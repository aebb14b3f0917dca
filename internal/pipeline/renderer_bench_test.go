//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkMarkupRenderer benchmarks the full feed rendering path
// (preprocess, convert, sanitize, resolve links).
func BenchmarkMarkupRenderer(b *testing.B) {
	r := NewMarkupRenderer(DefaultAllowList())
	ctx := context.Background()

	for _, sections := range []int{1, 10, 50, 200} {
		body := generatePostMarkdown(sections)
		b.Run(fmt.Sprintf("sections_%d", sections), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := r.Render(ctx, body, "https://example.com/blog/post/"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMarkupRendererParallel benchmarks concurrent rendering, the way
// the feed builder drives it.
func BenchmarkMarkupRendererParallel(b *testing.B) {
	r := NewMarkupRenderer(DefaultAllowList())
	ctx := context.Background()
	body := generatePostMarkdown(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := r.Render(ctx, body, ""); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkSanitizer isolates the bluemonday pass.
func BenchmarkSanitizer(b *testing.B) {
	s := NewSanitizer(DefaultAllowList())
	html, err := NewGoldmarkConverter().ToHTML(context.Background(), generatePostMarkdown(50))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Sanitize(html)
	}
}

func generatePostMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Post Title\n\n")
	sb.WriteString("Intro with **bold**, *italic* and ==highlighted== text.\n\n")

	for i := 0; i < sections; i++ {
		sb.WriteString(fmt.Sprintf("## Section %d\n\n", i+1))
		sb.WriteString("A paragraph with [a link](../other/) and `inline code`.\n\n")
		sb.WriteString("![diagram](./img/diagram.png)\n\n")

		if i%3 == 0 {
			sb.WriteString("```go\nfunc main() {\n    fmt.Println(\"Hello\")\n}\n```\n\n")
		}
		if i%5 == 0 {
			sb.WriteString("| A | B |\n|---|---|\n| 1 | 2 |\n\n<script>alert(1)</script>\n\n")
		}
	}

	return sb.String()
}
