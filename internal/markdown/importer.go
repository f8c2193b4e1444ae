package markdown

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// ImporterOption configures the importer at construction time.
type ImporterOption func(*Importer)

// WithParser overrides the Markdown renderer.
func WithParser(parser Parser) ImporterOption {
	return func(i *Importer) {
		if parser != nil {
			i.parser = parser
		}
	}
}

// WithKind sets the record kind assigned to documents whose frontmatter omits
// one. Defaults to post.
func WithKind(kind string) ImporterOption {
	return func(i *Importer) {
		if strings.TrimSpace(kind) != "" {
			i.kind = strings.TrimSpace(kind)
		}
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// Importer applies parsed documents to the record store. Record identities are
// derived from the kind and default-locale slug, so re-running an import
// updates records in place instead of duplicating them.
type Importer struct {
	service  records.Service
	registry *registry.Registry
	parser   Parser
	kind     string
	logger   interfaces.Logger
}

// NewImporter wires the importer against the record service and locale
// registry.
func NewImporter(service records.Service, reg *registry.Registry, opts ...ImporterOption) (*Importer, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}
	if reg == nil {
		return nil, ErrRegistryRequired
	}

	imp := &Importer{
		service:  service,
		registry: reg,
		parser:   NewGoldmarkParser(RenderOptions{}),
		kind:     records.KindPost,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp, nil
}

// ImportResult summarises one import run.
type ImportResult struct {
	Created []uuid.UUID
	Updated []uuid.UUID
	Skipped []uuid.UUID
	Errors  []error
}

func (r *ImportResult) merge(other *ImportResult) {
	if other == nil {
		return
	}
	r.Created = append(r.Created, other.Created...)
	r.Updated = append(r.Updated, other.Updated...)
	r.Skipped = append(r.Skipped, other.Skipped...)
	r.Errors = append(r.Errors, other.Errors...)
}

// ImportDocuments groups docs by their shared source key and applies each
// group. Failures are collected per group; one broken group never blocks the
// rest of the run.
func (i *Importer) ImportDocuments(ctx context.Context, groups map[string][]*Document) (*ImportResult, error) {
	result := &ImportResult{}
	for _, key := range sortedKeys(groups) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		groupResult, err := i.importGroup(ctx, key, groups[key])
		result.merge(groupResult)
		if err != nil {
			result.Errors = append(result.Errors, err)
			i.logger.Error("markdown group import failed", "group", key, "error", err)
		}
	}
	return result, nil
}

func (i *Importer) importGroup(ctx context.Context, key string, docs []*Document) (*ImportResult, error) {
	result := &ImportResult{}

	live := docs[:0:0]
	for _, doc := range docs {
		if doc.FrontMatter.Draft {
			i.logger.Debug("skipping draft document", "path", doc.Path, "locale", doc.Locale)
			continue
		}
		live = append(live, doc)
	}
	if len(live) == 0 {
		return result, nil
	}

	var defaultDoc *Document
	byLocale := make(map[string]*Document, len(live))
	for _, doc := range live {
		byLocale[doc.Locale] = doc
		if i.registry.IsDefault(doc.Locale) {
			defaultDoc = doc
		}
	}
	if defaultDoc == nil {
		return result, &MissingDefaultError{Key: key, Locales: mapLocales(byLocale)}
	}

	input, err := i.translationInput(defaultDoc)
	if err != nil {
		return result, err
	}
	kind := i.documentKind(defaultDoc)
	recordID := identity.RecordUUID(kind, input.Slug)

	record, err := i.service.Get(ctx, recordID)
	switch {
	case err == nil:
		shared := sharedFields(defaultDoc.FrontMatter)
		if shared != nil && sharedMatches(record, *shared) {
			shared = nil
		}
		applied, err := i.applyTranslation(ctx, record.ID, defaultDoc.Locale, input, shared)
		if err != nil {
			return result, err
		}
		if applied {
			result.Updated = append(result.Updated, record.ID)
		} else {
			result.Skipped = append(result.Skipped, record.ID)
		}
	case isNotFound(err):
		created, err := i.service.Create(ctx, records.CreateRecordRequest{
			ID:     recordID,
			Kind:   kind,
			Locale: defaultDoc.Locale,
			Fields: input,
			Shared: sharedFieldsValue(defaultDoc.FrontMatter),
		})
		if err != nil {
			return result, fmt.Errorf("markdown: create %s: %w", defaultDoc.Path, err)
		}
		record = created
		result.Created = append(result.Created, record.ID)
	default:
		return result, err
	}

	for _, code := range i.registry.Codes() {
		if i.registry.IsDefault(code) {
			continue
		}
		doc, ok := byLocale[code]
		if !ok {
			continue
		}
		input, err := i.translationInput(doc)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		if _, err := i.applyTranslation(ctx, record.ID, code, input, nil); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("markdown: save %s: %w", doc.Path, err))
		}
	}

	return result, nil
}

// applyTranslation persists input for one locale, reporting whether anything
// changed. Saves that match the stored translation are skipped.
func (i *Importer) applyTranslation(ctx context.Context, recordID uuid.UUID, locale string, input records.TranslationInput, shared *records.SharedFieldsInput) (bool, error) {
	existing, err := i.service.GetTranslation(ctx, recordID, locale)
	if err == nil && translationMatches(existing, input) && shared == nil {
		return false, nil
	}
	if err != nil && !isNotFound(err) {
		return false, err
	}

	if _, err := i.service.SaveTranslation(ctx, records.SaveTranslationRequest{
		RecordID: recordID,
		Locale:   locale,
		Fields:   input,
		Shared:   shared,
	}); err != nil {
		return false, err
	}
	i.logger.Info("translation imported", "record_id", recordID.String(), "locale", locale)
	return true, nil
}

func (i *Importer) translationInput(doc *Document) (records.TranslationInput, error) {
	html, err := i.parser.Render(doc.Body)
	if err != nil {
		return records.TranslationInput{}, fmt.Errorf("markdown: render %s: %w", doc.Path, err)
	}

	meta := doc.FrontMatter
	slug := records.NormalizeSlug(meta.Slug)
	if slug == "" {
		slug = records.NormalizeSlug(meta.Title)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = fallbackTitle(slug)
	}

	return records.TranslationInput{
		Title:           title,
		Body:            string(html),
		Description:     optionalString(meta.Description),
		MetaTitle:       optionalString(meta.MetaTitle),
		MetaDescription: optionalString(meta.MetaDescription),
		Slug:            slug,
	}, nil
}

func (i *Importer) documentKind(doc *Document) string {
	if kind := strings.TrimSpace(doc.FrontMatter.Kind); kind != "" {
		return kind
	}
	return i.kind
}

func sharedFields(meta FrontMatter) *records.SharedFieldsInput {
	shared := sharedFieldsValue(meta)
	if shared.Icon == nil && shared.FeaturedImage == nil && shared.Author == nil {
		return nil
	}
	return &shared
}

func sharedFieldsValue(meta FrontMatter) records.SharedFieldsInput {
	return records.SharedFieldsInput{
		Icon:          optionalString(meta.Icon),
		FeaturedImage: optionalString(meta.FeaturedImage),
		Author:        optionalString(meta.Author),
	}
}

func sharedMatches(record *records.Record, in records.SharedFieldsInput) bool {
	return equalOptional(record.Icon, in.Icon) &&
		equalOptional(record.FeaturedImage, in.FeaturedImage) &&
		equalOptional(record.Author, in.Author)
}

func translationMatches(existing *records.Translation, in records.TranslationInput) bool {
	return existing.Title == in.Title &&
		existing.Body == in.Body &&
		existing.Slug == in.Slug &&
		equalOptional(existing.Description, in.Description) &&
		equalOptional(existing.MetaTitle, in.MetaTitle) &&
		equalOptional(existing.MetaDescription, in.MetaDescription)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func fallbackTitle(slug string) string {
	return strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
}

func isNotFound(err error) bool {
	var notFound *records.NotFoundError
	return errors.As(err, &notFound)
}

func mapLocales(docs map[string]*Document) []string {
	out := make([]string, 0, len(docs))
	for locale := range docs {
		out = append(out, locale)
	}
	return out
}

func sortedKeys(groups map[string][]*Document) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
