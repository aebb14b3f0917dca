package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv returns an Environment with captured output and the given
// variables as its process environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	env := &Environment{
		Now:     func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
	}
	return env, &stdout, &stderr
}

// writeSite creates a content tree with a draft, two published posts and
// one project, and returns the content directory.
func writeSite(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "content")
	files := map[string]string{
		"blog/first.md":    "---\ntitle: First\ndescription: About first\npublishDate: \"2024-01-01\"\ndraft: true\n---\n\nDraft body\n",
		"blog/second.md":   "---\ntitle: Second\ndescription: About second\npublishDate: \"2024-02-01\"\n---\n\nSecond body\n",
		"blog/third.md":    "---\ntitle: Third\ndescription: About third\npublishDate: \"2024-03-01\"\ntags: [go]\n---\n\n![logo](/logo.png)\n",
		"projects/site.md": "---\ntitle: Site\ndescription: About site\npublishDate: \"2023-06-01\"\n---\n\nProject body\n",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
