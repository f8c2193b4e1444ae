package editor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// State names the editing session's lifecycle position.
type State string

const (
	StateIdle              State = "idle"
	StateLoading           State = "loading"
	StateEditing           State = "editing"
	StateSaving            State = "saving"
	StateTranslateInFlight State = "translate_in_flight"
)

// Session is an explicit state machine over one record's editing lifecycle:
// Idle -> Loading -> Editing(locale) -> Saving/TranslateInFlight -> Editing.
// Draft state lives per locale and survives failed saves and failed
// translations, so the editor can always retry without losing typed input.
// A Session is not shared across records; open a new one per record.
type Session struct {
	mu         sync.Mutex
	service    records.Service
	registry   *registry.Registry
	translator *translate.Orchestrator
	logger     interfaces.Logger

	state    State
	recordID uuid.UUID
	kind     string
	active   string

	// persisted mirrors saved translation fields keyed by locale; drafts hold
	// unsaved per-locale edits layered on top.
	persisted map[string]records.Draft
	drafts    map[string]records.Draft
	slugs     map[string]string
	shared    records.SharedFieldsInput
}

// SessionOption configures the session at construction time.
type SessionOption func(*Session)

// WithTranslator wires the auto-translate orchestrator.
func WithTranslator(translator *translate.Orchestrator) SessionOption {
	return func(s *Session) {
		s.translator = translator
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession builds an idle session over the record service and registry.
func NewSession(service records.Service, reg *registry.Registry, opts ...SessionOption) (*Session, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}
	if reg == nil {
		return nil, ErrRegistryRequired
	}
	s := &Session{
		service:  service,
		registry: reg,
		logger:   logging.NoOp(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ActiveLocale reports the locale tab currently being edited. Empty outside
// Editing.
func (s *Session) ActiveLocale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// RecordID reports the open record's identity key; uuid.Nil before first save
// of a new record.
func (s *Session) RecordID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordID
}

// NewRecord starts editing a record that does not exist yet. The identity key
// is allocated by the first save, which must target the default locale.
func (s *Session) NewRecord(kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return &TransitionError{State: s.state, Event: "start new record"}
	}
	s.reset()
	s.kind = strings.TrimSpace(kind)
	s.active = s.registry.Default().Code
	s.state = StateEditing
	return nil
}

// Open loads an existing record and enters Editing on the default locale. On
// load failure the session returns to Idle.
func (s *Session) Open(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return &TransitionError{State: s.state, Event: "open record"}
	}

	s.state = StateLoading
	record, err := s.service.Get(ctx, id)
	if err != nil {
		s.state = StateIdle
		return fmt.Errorf("editor: load record: %w", err)
	}

	s.reset()
	s.recordID = record.ID
	s.kind = record.Kind
	s.shared = records.SharedFieldsInput{
		Icon:          record.Icon,
		FeaturedImage: record.FeaturedImage,
		Author:        record.Author,
	}
	for _, translation := range record.Translations {
		s.persisted[translation.LocaleCode] = translationDraft(translation)
		s.slugs[translation.LocaleCode] = translation.Slug
	}

	s.active = s.registry.Default().Code
	s.state = StateEditing
	return nil
}

// SwitchLocale changes the active tab. Unsupported candidates resolve to the
// default locale; tab switching never fails on locale input.
func (s *Session) SwitchLocale(candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return &TransitionError{State: s.state, Event: "switch locale"}
	}
	s.active = s.registry.Resolve(candidate).Code
	return nil
}

// SetField records an unsaved edit for the active locale.
func (s *Session) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return &TransitionError{State: s.state, Event: "edit field"}
	}
	if !records.IsTranslatableField(field) {
		return fmt.Errorf("editor: field %q is not locale-specific", field)
	}
	draft, ok := s.drafts[s.active]
	if !ok {
		draft = records.Draft{}
		s.drafts[s.active] = draft
	}
	draft[field] = value
	return nil
}

// SetSlug records the active locale's slug; normalized on save.
func (s *Session) SetSlug(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return &TransitionError{State: s.state, Event: "edit slug"}
	}
	s.slugs[s.active] = slug
	return nil
}

// Field reads the active locale's current value for a field: the unsaved edit
// when one exists, otherwise the persisted value.
func (s *Session) Field(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergedLocked(s.active)[field]
}

// Shared reads the record's shared fields. They render in every locale tab but
// only default-locale saves can change them.
func (s *Session) Shared() records.SharedFieldsInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.SharedFieldsInput{
		Icon:          s.shared.Icon,
		FeaturedImage: s.shared.FeaturedImage,
		Author:        s.shared.Author,
	}
}

// SetShared stages shared-field edits. They are only sent on default-locale
// saves; the server rejects shared-field changes from any other locale.
func (s *Session) SetShared(shared records.SharedFieldsInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return &TransitionError{State: s.state, Event: "edit shared fields"}
	}
	if !s.registry.IsDefault(s.active) {
		return &records.SharedFieldsError{RecordID: s.recordID, Locale: s.active}
	}
	s.shared = shared
	return nil
}

// Completeness classifies every registry locale for badge rendering. Pure view
// over persisted rows plus unsaved drafts; recomputed on demand.
func (s *Session) Completeness() map[string]records.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.Classify(s.registry, s.savedLocalesLocked(), s.drafts)
}

// CanAutoTranslate reports whether the auto-translate action is enabled:
// the default locale must be saved or carry non-empty draft content, and the
// active tab must not be the default.
func (s *Session) CanAutoTranslate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing || s.registry.IsDefault(s.active) {
		return false
	}
	return records.CanAutoTranslate(s.registry, s.savedLocalesLocked(), s.drafts)
}

// Save persists the active locale's current field values. The session moves
// Editing -> Saving -> Editing; on failure every draft is left in place so the
// user retries without re-typing. The first save of a new record allocates the
// identity key and must target the default locale.
func (s *Session) Save(ctx context.Context) (*records.Translation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return nil, &TransitionError{State: s.state, Event: "save"}
	}

	locale := s.active
	input := s.translationInputLocked(locale)
	s.state = StateSaving

	var (
		translation *records.Translation
		err         error
	)
	if s.recordID == uuid.Nil {
		var record *records.Record
		record, err = s.service.Create(ctx, records.CreateRecordRequest{
			Kind:   s.kind,
			Locale: locale,
			Fields: input,
			Shared: s.shared,
		})
		if err == nil {
			s.recordID = record.ID
			if len(record.Translations) > 0 {
				translation = record.Translations[0]
			}
		}
	} else {
		req := records.SaveTranslationRequest{
			RecordID: s.recordID,
			Locale:   locale,
			Fields:   input,
		}
		if s.registry.IsDefault(locale) {
			shared := s.shared
			req.Shared = &shared
		}
		translation, err = s.service.SaveTranslation(ctx, req)
	}

	s.state = StateEditing
	if err != nil {
		return nil, fmt.Errorf("editor: save %s: %w", locale, err)
	}

	if translation != nil {
		s.persisted[locale] = translationDraft(translation)
		s.slugs[locale] = translation.Slug
	} else {
		s.persisted[locale] = s.mergedLocked(locale)
	}
	delete(s.drafts, locale)
	return translation, nil
}

// AutoTranslate fills the active locale's draft from the default locale, one
// field at a time. Preconditions fail before any provider call; partial
// failures keep the fields that did translate and report the rest in the
// result. The session returns to Editing either way.
func (s *Session) AutoTranslate(ctx context.Context, fields []string) (translate.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return translate.Result{}, &TransitionError{State: s.state, Event: "auto-translate"}
	}
	if s.translator == nil {
		return translate.Result{}, ErrTranslatorRequired
	}
	if !records.CanAutoTranslate(s.registry, s.savedLocalesLocked(), s.drafts) {
		return translate.Result{}, ErrTranslateBlocked
	}

	defaultLocale := s.registry.Default().Code
	target := s.active

	s.state = StateTranslateInFlight
	result, err := s.translator.Translate(ctx, translate.Request{
		SourceLocale: defaultLocale,
		TargetLocale: target,
		Fields:       fields,
		Source:       s.mergedLocked(defaultLocale),
		Target:       s.mergedLocked(target),
	})
	s.state = StateEditing
	if err != nil {
		return translate.Result{}, err
	}

	s.drafts[target] = result.Draft
	if !result.Ok() {
		s.logger.Warn("auto-translate finished with field failures",
			"record_id", s.recordID.String(),
			"target_locale", target,
			"failed_fields", len(result.Failed),
		)
	}
	return result, nil
}

// Close abandons the session and returns to Idle. Unsaved drafts are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.state = StateIdle
}

func (s *Session) reset() {
	s.recordID = uuid.Nil
	s.kind = ""
	s.active = ""
	s.persisted = map[string]records.Draft{}
	s.drafts = map[string]records.Draft{}
	s.slugs = map[string]string{}
	s.shared = records.SharedFieldsInput{}
}

func (s *Session) savedLocalesLocked() []string {
	return records.SavedLocales(s.registry, mapKeys(s.persisted))
}

// mergedLocked layers unsaved edits over persisted values for one locale.
func (s *Session) mergedLocked(locale string) records.Draft {
	merged := records.Draft{}
	for field, value := range s.persisted[locale] {
		merged[field] = value
	}
	for field, value := range s.drafts[locale] {
		merged[field] = value
	}
	return merged
}

func (s *Session) translationInputLocked(locale string) records.TranslationInput {
	merged := s.mergedLocked(locale)
	input := records.TranslationInput{
		Title: merged[records.FieldTitle],
		Body:  merged[records.FieldBody],
		Slug:  s.slugs[locale],
	}
	if value, ok := merged[records.FieldDescription]; ok && value != "" {
		input.Description = &value
	}
	if value, ok := merged[records.FieldMetaTitle]; ok && value != "" {
		input.MetaTitle = &value
	}
	if value, ok := merged[records.FieldMetaDescription]; ok && value != "" {
		input.MetaDescription = &value
	}
	return input
}

func translationDraft(translation *records.Translation) records.Draft {
	draft := records.Draft{
		records.FieldTitle: translation.Title,
		records.FieldBody:  translation.Body,
	}
	if translation.Description != nil {
		draft[records.FieldDescription] = *translation.Description
	}
	if translation.MetaTitle != nil {
		draft[records.FieldMetaTitle] = *translation.MetaTitle
	}
	if translation.MetaDescription != nil {
		draft[records.FieldMetaDescription] = *translation.MetaDescription
	}
	return draft
}

func mapKeys(m map[string]records.Draft) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
