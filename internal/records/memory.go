package records

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRecordRepository is an in-memory implementation for scaffolding and
// tests. It shares the translation store so cascade deletes stay atomic under
// a single lock.
type MemoryRecordRepository struct {
	mu           sync.RWMutex
	records      map[uuid.UUID]*Record
	translations *MemoryTranslationRepository
}

// NewMemoryRecordRepository creates an empty record repository bound to the
// supplied translation store.
func NewMemoryRecordRepository(translations *MemoryTranslationRepository) *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records:      make(map[uuid.UUID]*Record),
		translations: translations,
	}
}

// Create inserts the supplied record.
func (m *MemoryRecordRepository) Create(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	m.records[copied.ID] = copied
	return cloneRecord(copied), nil
}

// GetByID retrieves a record with its translations attached.
func (m *MemoryRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	rec, ok := m.records[id]
	m.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: id.String()}
	}

	copied := cloneRecord(rec)
	if m.translations != nil {
		translations, err := m.translations.ListByRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		copied.Translations = translations
	}
	return copied, nil
}

// List returns records, optionally filtered by kind.
func (m *MemoryRecordRepository) List(_ context.Context, kind string) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	kind = strings.TrimSpace(kind)
	out := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		if kind != "" && rec.Kind != kind {
			continue
		}
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

// Update replaces the stored record.
func (m *MemoryRecordRepository) Update(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "record", Key: record.ID.String()}
	}
	copied := cloneRecord(record)
	m.records[copied.ID] = copied
	return cloneRecord(copied), nil
}

// Delete removes the record and all of its translations. Both stores mutate
// under this repository's lock so a concurrent reader never observes a
// partial delete.
func (m *MemoryRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: "record", Key: id.String()}
	}
	if m.translations != nil {
		m.translations.deleteByRecord(id)
	}
	delete(m.records, id)
	return nil
}

// MemoryTranslationRepository stores translations keyed by (record, locale).
type MemoryTranslationRepository struct {
	mu           sync.RWMutex
	translations map[uuid.UUID]*Translation
}

// NewMemoryTranslationRepository constructs the repository.
func NewMemoryTranslationRepository() *MemoryTranslationRepository {
	return &MemoryTranslationRepository{
		translations: make(map[uuid.UUID]*Translation),
	}
}

// Create inserts a translation, rejecting duplicate (record, locale) pairs.
func (m *MemoryTranslationRepository) Create(_ context.Context, tr *Translation) (*Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.translations {
		if existing.RecordID == tr.RecordID && existing.LocaleID == tr.LocaleID {
			return nil, &TranslationExistsError{RecordID: tr.RecordID, Locale: tr.LocaleCode}
		}
	}
	copied := cloneTranslation(tr)
	m.translations[copied.ID] = copied
	return cloneTranslation(copied), nil
}

// Update replaces an existing translation.
func (m *MemoryTranslationRepository) Update(_ context.Context, tr *Translation) (*Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.translations[tr.ID]; !ok {
		return nil, &NotFoundError{Resource: "translation", Key: tr.ID.String()}
	}
	copied := cloneTranslation(tr)
	m.translations[copied.ID] = copied
	return cloneTranslation(copied), nil
}

// GetByRecordAndLocale resolves the unique (record, locale) row.
func (m *MemoryTranslationRepository) GetByRecordAndLocale(_ context.Context, recordID, localeID uuid.UUID) (*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tr := range m.translations {
		if tr.RecordID == recordID && tr.LocaleID == localeID {
			return cloneTranslation(tr), nil
		}
	}
	return nil, &NotFoundError{Resource: "translation", Key: recordID.String() + "/" + localeID.String()}
}

// ListByRecord returns every translation for the record.
func (m *MemoryTranslationRepository) ListByRecord(_ context.Context, recordID uuid.UUID) ([]*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Translation, 0)
	for _, tr := range m.translations {
		if tr.RecordID == recordID {
			out = append(out, cloneTranslation(tr))
		}
	}
	return out, nil
}

func (m *MemoryTranslationRepository) deleteByRecord(recordID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, tr := range m.translations {
		if tr.RecordID == recordID {
			delete(m.translations, id)
		}
	}
}

// MemoryLocaleRepository stores locales by code.
type MemoryLocaleRepository struct {
	mu      sync.RWMutex
	order   []string
	locales map[string]*Locale
}

// NewMemoryLocaleRepository constructs the repository.
func NewMemoryLocaleRepository() *MemoryLocaleRepository {
	return &MemoryLocaleRepository{
		locales: make(map[string]*Locale),
	}
}

// GetByCode resolves a locale by exact code.
func (m *MemoryLocaleRepository) GetByCode(_ context.Context, code string) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loc, ok := m.locales[code]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: code}
	}
	copied := *loc
	return &copied, nil
}

// List returns locales in insertion order.
func (m *MemoryLocaleRepository) List(_ context.Context) ([]*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Locale, 0, len(m.order))
	for _, code := range m.order {
		copied := *m.locales[code]
		out = append(out, &copied)
	}
	return out, nil
}

// Upsert inserts or replaces a locale by code.
func (m *MemoryLocaleRepository) Upsert(_ context.Context, locale *Locale) (*Locale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *locale
	if _, ok := m.locales[locale.Code]; !ok {
		m.order = append(m.order, locale.Code)
	}
	m.locales[locale.Code] = &copied
	result := copied
	return &result, nil
}

func cloneRecord(src *Record) *Record {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Icon = cloneStringPtr(src.Icon)
	copied.FeaturedImage = cloneStringPtr(src.FeaturedImage)
	copied.Author = cloneStringPtr(src.Author)
	if len(src.Translations) > 0 {
		copied.Translations = make([]*Translation, len(src.Translations))
		for i, tr := range src.Translations {
			copied.Translations[i] = cloneTranslation(tr)
		}
	}
	if src.Metadata != nil {
		copied.Metadata = make(map[string]any, len(src.Metadata))
		for k, v := range src.Metadata {
			copied.Metadata[k] = v
		}
	}
	return &copied
}

func cloneTranslation(src *Translation) *Translation {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Description = cloneStringPtr(src.Description)
	copied.MetaTitle = cloneStringPtr(src.MetaTitle)
	copied.MetaDescription = cloneStringPtr(src.MetaDescription)
	return &copied
}
