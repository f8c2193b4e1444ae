package markdown

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-localize/internal/registry"
)

func testFile(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func newTestLoader(t *testing.T, fsys fstest.MapFS, cfg LoaderConfig) *Loader {
	t.Helper()
	reg := registry.MustNew("en", []string{"en", "es", "de"})
	return NewLoader(fsys, reg, cfg)
}

func TestLoaderDetectsLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello.md":    testFile("---\ntitle: Hello\nslug: hello\n---\nbody"),
		"posts/hello.es.md": testFile("---\ntitle: Hola\nslug: hola\n---\nbody"),
		"de/posts/hello.md": testFile("---\ntitle: Hallo\nslug: hallo\n---\nbody"),
		"posts/pinned.md":   testFile("---\ntitle: Pinned\nslug: pinned\nlocale: es\n---\nbody"),
	}
	loader := newTestLoader(t, fsys, LoaderConfig{Recursive: true})
	ctx := context.Background()

	cases := []struct {
		path   string
		locale string
	}{
		{"posts/hello.md", "en"},
		{"posts/hello.es.md", "es"},
		{"de/posts/hello.md", "de"},
		{"posts/pinned.md", "es"}, // frontmatter wins over path
	}
	for _, tc := range cases {
		doc, err := loader.LoadFile(ctx, tc.path)
		if err != nil {
			t.Fatalf("LoadFile(%q) error = %v", tc.path, err)
		}
		if doc.Locale != tc.locale {
			t.Fatalf("LoadFile(%q) locale = %q, want %q", tc.path, doc.Locale, tc.locale)
		}
	}
}

func TestLoaderRejectsUnknownLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/bad.md": testFile("---\ntitle: Bad\nslug: bad\nlocale: fr\n---\nbody"),
	}
	loader := newTestLoader(t, fsys, LoaderConfig{})

	_, err := loader.LoadFile(context.Background(), "posts/bad.md")
	if err == nil {
		t.Fatal("expected unknown locale error")
	}
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	var unknown *UnknownLocaleError
	if !errors.As(err, &unknown) || unknown.Locale != "fr" {
		t.Fatalf("expected UnknownLocaleError for fr, got %v", err)
	}
}

func TestLoaderGroupKey(t *testing.T) {
	loader := newTestLoader(t, fstest.MapFS{}, LoaderConfig{})

	cases := []struct {
		path string
		want string
	}{
		{"posts/hello.md", "posts/hello.md"},
		{"posts/hello.es.md", "posts/hello.md"},
		{"es/posts/hello.md", "posts/hello.md"},
		{"de/guide.md", "guide.md"},
		{"notes/release.notes.md", "notes/release.notes.md"},
	}
	for _, tc := range cases {
		if got := loader.GroupKey(tc.path); got != tc.want {
			t.Fatalf("GroupKey(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLoaderDirectoryTraversal(t *testing.T) {
	fsys := fstest.MapFS{
		"top.md":           testFile("---\ntitle: Top\nslug: top\n---\nbody"),
		"nested/deep.md":   testFile("---\ntitle: Deep\nslug: deep\n---\nbody"),
		"nested/skip.html": testFile("<p>not markdown</p>"),
	}

	recursive := newTestLoader(t, fsys, LoaderConfig{Recursive: true})
	docs, err := recursive.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Path != "nested/deep.md" || docs[1].Path != "top.md" {
		t.Fatalf("unexpected order: %q, %q", docs[0].Path, docs[1].Path)
	}

	flat := newTestLoader(t, fsys, LoaderConfig{Recursive: false})
	docs, err = flat.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Path != "top.md" {
		t.Fatalf("expected only top.md without recursion, got %d docs", len(docs))
	}
}
