package records

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository abstracts storage for localizable records. GetByID loads
// the record aggregate including its translations. Delete removes the record
// and every translation in one atomic operation; partial deletion must never
// be observable.
type RecordRepository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context, kind string) ([]*Record, error)
	Update(ctx context.Context, record *Record) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TranslationRepository abstracts storage for per-locale variants.
type TranslationRepository interface {
	Create(ctx context.Context, tr *Translation) (*Translation, error)
	Update(ctx context.Context, tr *Translation) (*Translation, error)
	GetByRecordAndLocale(ctx context.Context, recordID, localeID uuid.UUID) (*Translation, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Translation, error)
}

// LocaleRepository resolves persisted locales and supports idempotent seeding
// from the compiled-in registry.
type LocaleRepository interface {
	GetByCode(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	Upsert(ctx context.Context, locale *Locale) (*Locale, error)
}
