package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-localize/internal/registry"
)

// LoaderConfig configures Markdown discovery within a content filesystem.
type LoaderConfig struct {
	// Pattern limits discovered files to the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader discovers Markdown files and resolves which locale each file belongs
// to. A file's locale comes from, in order: an explicit frontmatter locale, a
// secondary filename extension ("guide.es.md"), or the leading directory
// segment ("es/guide.md"). Files with no marker belong to the default locale.
type Loader struct {
	fs        fs.FS
	registry  *registry.Registry
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader over filesystem using the registry to
// recognise locale markers in paths.
func NewLoader(filesystem fs.FS, reg *registry.Registry, cfg LoaderConfig) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:        filesystem,
		registry:  reg,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads and parses a single Markdown document. The path is slash
// separated and relative to the loader's filesystem root.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath = path.Clean(filePath)
	data, err := fs.ReadFile(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("markdown: read %s: %w", filePath, err)
	}
	info, err := fs.Stat(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("markdown: stat %s: %w", filePath, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("markdown: %s: %w", filePath, err)
	}

	locale := strings.TrimSpace(meta.Locale)
	if locale == "" {
		locale = l.localeFromPath(filePath)
	}
	if !l.registry.Contains(locale) {
		return nil, &UnknownLocaleError{Path: filePath, Locale: locale}
	}

	sum := sha256.Sum256(data)
	return &Document{
		Path:         filePath,
		Locale:       locale,
		FrontMatter:  meta,
		Body:         body,
		LastModified: info.ModTime(),
		Checksum:     sum[:],
	}, nil
}

// LoadDirectory walks dir and returns every matching document sorted by path.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := path.Clean(dir)
	var docs []*Document

	walkErr := fs.WalkDir(l.fs, root, func(current string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !l.recursive && path.Clean(current) != root {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !l.matchesPattern(current) {
			return nil
		}
		doc, err := l.LoadFile(ctx, current)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// GroupKey links translations of the same source document: the file path with
// its locale marker removed. "es/posts/hello.md" and "posts/hello.es.md" both
// collapse to "posts/hello.md".
func (l *Loader) GroupKey(filePath string) string {
	filePath = path.Clean(filePath)

	if first, rest, ok := strings.Cut(filePath, "/"); ok && l.registry.Contains(first) {
		return rest
	}

	base := path.Base(filePath)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if localeExt := path.Ext(stem); localeExt != "" && l.registry.Contains(strings.TrimPrefix(localeExt, ".")) {
		base = strings.TrimSuffix(stem, localeExt) + ext
	}
	return path.Join(path.Dir(filePath), base)
}

func (l *Loader) localeFromPath(filePath string) string {
	if first, _, ok := strings.Cut(filePath, "/"); ok && l.registry.Contains(first) {
		return first
	}

	base := path.Base(filePath)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if localeExt := path.Ext(stem); localeExt != "" {
		if code := strings.TrimPrefix(localeExt, "."); l.registry.Contains(code) {
			return code
		}
	}
	return l.registry.Default().Code
}

func (l *Loader) matchesPattern(filePath string) bool {
	pattern := l.pattern
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := filePath
	if !strings.Contains(pattern, "/") {
		target = path.Base(filePath)
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}
