package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes the localizable-record use cases consumed by the admin API.
type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (*Record, error)
	SaveTranslation(ctx context.Context, req SaveTranslationRequest) (*Translation, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	GetTranslation(ctx context.Context, id uuid.UUID, locale string) (*Translation, error)
	ListTranslations(ctx context.Context, id uuid.UUID) ([]*Translation, error)
	List(ctx context.Context, kind string) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AvailableLocales(ctx context.Context, id uuid.UUID) ([]string, error)
	Completeness(ctx context.Context, id uuid.UUID, drafts map[string]Draft) (map[string]Status, error)
}

// TranslationInput carries the locale-specific fields supplied on save.
type TranslationInput struct {
	Title           string
	Body            string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Slug            string
}

// SharedFieldsInput carries the record-level shared fields. Only the default
// locale save path may change them; non-default saves may echo current values
// back (disabled mirror inputs) but never alter them.
type SharedFieldsInput struct {
	Icon          *string
	FeaturedImage *string
	Author        *string
}

// CreateRecordRequest creates the record identity together with its
// default-locale translation.
type CreateRecordRequest struct {
	ID     uuid.UUID // optional; assigned when zero
	Kind   string
	Locale string
	Fields TranslationInput
	Shared SharedFieldsInput
}

// SaveTranslationRequest creates or updates one locale's translation.
type SaveTranslationRequest struct {
	RecordID uuid.UUID
	Locale   string
	Fields   TranslationInput
	Shared   *SharedFieldsInput
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides identity-key allocation.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	records      RecordRepository
	translations TranslationRepository
	locales      LocaleRepository
	registry     *registry.Registry
	logger       interfaces.Logger
	now          func() time.Time
	id           func() uuid.UUID
}

// NewService wires the record use cases against the supplied repositories and
// the immutable locale registry.
func NewService(recordRepo RecordRepository, translationRepo TranslationRepository, localeRepo LocaleRepository, reg *registry.Registry, opts ...ServiceOption) Service {
	svc := &service{
		records:      recordRepo,
		translations: translationRepo,
		locales:      localeRepo,
		registry:     reg,
		logger:       logging.NoOp(),
		now:          time.Now,
		id:           uuid.New,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Create(ctx context.Context, req CreateRecordRequest) (*Record, error) {
	kind := strings.TrimSpace(req.Kind)
	if kind != KindPost && kind != KindCopilotTip {
		return nil, ErrKindInvalid
	}
	locale, err := s.requireLocale(req.Locale)
	if err != nil {
		return nil, err
	}
	// The identity key is allocated by the first default-locale save.
	if !s.registry.IsDefault(locale.Code) {
		return nil, ErrDefaultLocaleFirst
	}
	if err := validateTranslationInput(req.Fields); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Record{
		ID:            req.ID,
		Kind:          kind,
		Icon:          cloneStringPtr(req.Shared.Icon),
		FeaturedImage: cloneStringPtr(req.Shared.FeaturedImage),
		Author:        cloneStringPtr(req.Shared.Author),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if record.ID == uuid.Nil {
		record.ID = s.id()
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	tr, err := s.translations.Create(ctx, s.buildTranslation(created.ID, locale, req.Fields, now))
	if err != nil {
		return nil, err
	}
	created.Translations = []*Translation{tr}

	s.logger.Info("record created", "record_id", created.ID.String(), "kind", kind, "locale", locale.Code)
	return created, nil
}

func (s *service) SaveTranslation(ctx context.Context, req SaveTranslationRequest) (*Translation, error) {
	if req.RecordID == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	locale, err := s.requireLocale(req.Locale)
	if err != nil {
		return nil, err
	}
	if err := validateTranslationInput(req.Fields); err != nil {
		return nil, err
	}

	record, err := s.records.GetByID(ctx, req.RecordID)
	if err != nil {
		return nil, err
	}

	isDefault := s.registry.IsDefault(locale.Code)
	if req.Shared != nil {
		if changed := sharedFieldChanges(record, req.Shared); len(changed) > 0 && !isDefault {
			return nil, &SharedFieldsError{RecordID: record.ID, Locale: locale.Code, Fields: changed}
		}
	}

	now := s.now()
	existing, err := s.translations.GetByRecordAndLocale(ctx, record.ID, locale.ID)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		existing = nil
	}

	var saved *Translation
	if existing == nil {
		saved, err = s.translations.Create(ctx, s.buildTranslation(record.ID, locale, req.Fields, now))
	} else {
		applyTranslationInput(existing, req.Fields)
		existing.UpdatedAt = now
		saved, err = s.translations.Update(ctx, existing)
	}
	if err != nil {
		return nil, err
	}

	if isDefault && req.Shared != nil {
		record.Icon = cloneStringPtr(req.Shared.Icon)
		record.FeaturedImage = cloneStringPtr(req.Shared.FeaturedImage)
		record.Author = cloneStringPtr(req.Shared.Author)
		record.UpdatedAt = now
		if _, err := s.records.Update(ctx, record); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("translation saved", "record_id", record.ID.String(), "locale", locale.Code)
	return saved, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	return s.records.GetByID(ctx, id)
}

func (s *service) GetTranslation(ctx context.Context, id uuid.UUID, locale string) (*Translation, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	loc, err := s.requireLocale(locale)
	if err != nil {
		return nil, err
	}
	return s.translations.GetByRecordAndLocale(ctx, id, loc.ID)
}

func (s *service) ListTranslations(ctx context.Context, id uuid.UUID) ([]*Translation, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	return s.translations.ListByRecord(ctx, id)
}

func (s *service) List(ctx context.Context, kind string) ([]*Record, error) {
	return s.records.List(ctx, strings.TrimSpace(kind))
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrRecordIDRequired
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("record deleted", "record_id", id.String())
	return nil
}

func (s *service) AvailableLocales(ctx context.Context, id uuid.UUID) ([]string, error) {
	translations, err := s.ListTranslations(ctx, id)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(translations))
	seen := map[string]struct{}{}
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		code := strings.TrimSpace(tr.LocaleCode)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

func (s *service) Completeness(ctx context.Context, id uuid.UUID, drafts map[string]Draft) (map[string]Status, error) {
	available, err := s.AvailableLocales(ctx, id)
	if err != nil {
		return nil, err
	}
	return Classify(s.registry, available, drafts), nil
}

func (s *service) requireLocale(code string) (registry.Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return registry.Locale{}, ErrLocaleRequired
	}
	if !s.registry.Contains(code) {
		return registry.Locale{}, ErrUnknownLocale
	}
	return s.registry.Resolve(code), nil
}

func (s *service) buildTranslation(recordID uuid.UUID, locale registry.Locale, in TranslationInput, now time.Time) *Translation {
	return &Translation{
		ID:              s.id(),
		RecordID:        recordID,
		LocaleID:        locale.ID,
		LocaleCode:      locale.Code,
		Title:           strings.TrimSpace(in.Title),
		Body:            in.Body,
		Description:     cloneStringPtr(in.Description),
		MetaTitle:       cloneStringPtr(in.MetaTitle),
		MetaDescription: cloneStringPtr(in.MetaDescription),
		Slug:            NormalizeSlug(in.Slug),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func validateTranslationInput(in TranslationInput) error {
	issues := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		issues[FieldTitle] = ErrTitleRequired.Error()
	}
	slug := NormalizeSlug(in.Slug)
	if slug == "" {
		issues["slug"] = ErrSlugRequired.Error()
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func applyTranslationInput(tr *Translation, in TranslationInput) {
	tr.Title = strings.TrimSpace(in.Title)
	tr.Body = in.Body
	tr.Description = cloneStringPtr(in.Description)
	tr.MetaTitle = cloneStringPtr(in.MetaTitle)
	tr.MetaDescription = cloneStringPtr(in.MetaDescription)
	tr.Slug = NormalizeSlug(in.Slug)
}

func sharedFieldChanges(record *Record, in *SharedFieldsInput) []string {
	if record == nil || in == nil {
		return nil
	}
	changed := make([]string, 0, 3)
	if in.Icon != nil && !equalStringPtr(in.Icon, record.Icon) {
		changed = append(changed, "icon")
	}
	if in.FeaturedImage != nil && !equalStringPtr(in.FeaturedImage, record.FeaturedImage) {
		changed = append(changed, "featured_image")
	}
	if in.Author != nil && !equalStringPtr(in.Author, record.Author) {
		changed = append(changed, "author")
	}
	return changed
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}
