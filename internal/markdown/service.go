package markdown

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Config drives a content-directory import run.
type Config struct {
	// ContentDir is the root directory where Markdown documents live.
	ContentDir string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Kind is the record kind for documents whose frontmatter omits one.
	Kind string
}

// ServiceOption configures the import service.
type ServiceOption func(*Service)

// WithFS overrides the content filesystem; the default is os.DirFS over the
// configured content directory.
func WithFS(filesystem fs.FS) ServiceOption {
	return func(s *Service) {
		if filesystem != nil {
			s.fs = filesystem
		}
	}
}

// WithServiceParser overrides the Markdown renderer used by the importer.
func WithServiceParser(parser Parser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithServiceLogger attaches a module logger.
func WithServiceLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service ties discovery and import together: it walks the content directory,
// groups files into translation sets, and applies them to the record store.
type Service struct {
	loader   *Loader
	importer *Importer
	fs       fs.FS
	parser   Parser
	logger   interfaces.Logger
}

// NewService builds the import service from configuration.
func NewService(cfg Config, recordService records.Service, reg *registry.Registry, opts ...ServiceOption) (*Service, error) {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return nil, ErrContentDirRequired
	}
	if reg == nil {
		return nil, ErrRegistryRequired
	}

	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.fs == nil {
		svc.fs = os.DirFS(cfg.ContentDir)
	}

	svc.loader = NewLoader(svc.fs, reg, LoaderConfig{
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	importerOpts := []ImporterOption{WithKind(cfg.Kind)}
	if svc.parser != nil {
		importerOpts = append(importerOpts, WithParser(svc.parser))
	}
	if svc.logger != nil {
		importerOpts = append(importerOpts, WithLogger(svc.logger))
	}
	importer, err := NewImporter(recordService, reg, importerOpts...)
	if err != nil {
		return nil, err
	}
	svc.importer = importer

	return svc, nil
}

// Import walks the content directory and applies every discovered translation
// group to the record store.
func (s *Service) Import(ctx context.Context) (*ImportResult, error) {
	docs, err := s.loader.LoadDirectory(ctx, ".")
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*Document, len(docs))
	for _, doc := range docs {
		key := s.loader.GroupKey(doc.Path)
		groups[key] = append(groups[key], doc)
	}

	return s.importer.ImportDocuments(ctx, groups)
}

// Load parses a single file without importing it, for previews and dry runs.
func (s *Service) Load(ctx context.Context, path string) (*Document, error) {
	return s.loader.LoadFile(ctx, path)
}
