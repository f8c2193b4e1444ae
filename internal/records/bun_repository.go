package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRecordRepository implements RecordRepository with optional caching.
type BunRecordRepository struct {
	db   *bun.DB
	repo repository.Repository[*Record]
}

// NewBunRecordRepository creates a record repository without caching.
func NewBunRecordRepository(db *bun.DB) *BunRecordRepository {
	return NewBunRecordRepositoryWithCache(db, nil, nil)
}

// NewBunRecordRepositoryWithCache creates a record repository with caching
// services. Marketing list views are read-heavy; pass a cache service to keep
// hot records out of the database.
func NewBunRecordRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRecordRepository {
	base := NewRecordModelRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRecordRepository{db: db, repo: base}
}

func (r *BunRecordRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "record", id.String())
	}
	if record != nil && r.db != nil {
		var translations []*Translation
		if err := r.db.NewSelect().
			Model(&translations).
			Where("?TableAlias.record_id = ?", id).
			Order("created_at ASC").
			Scan(ctx); err != nil {
			return nil, fmt.Errorf("record repository error: %w", err)
		}
		record.Translations = translations
	}
	return record, nil
}

func (r *BunRecordRepository) List(ctx context.Context, kind string) ([]*Record, error) {
	if kind == "" {
		records, _, err := r.repo.List(ctx)
		return records, err
	}
	if r.db == nil {
		return nil, fmt.Errorf("record repository: database not configured")
	}
	var out []*Record
	if err := r.db.NewSelect().
		Model(&out).
		Where("?TableAlias.kind = ?", kind).
		Order("created_at DESC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("record repository error: %w", err)
	}
	return out, nil
}

func (r *BunRecordRepository) Update(ctx context.Context, record *Record) (*Record, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "record", record.ID.String())
	}
	return updated, nil
}

// Delete removes the record and all of its translations in one transaction so
// a partial delete is never observable.
func (r *BunRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("record repository: database not configured")
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*Record)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return &NotFoundError{Resource: "record", Key: id.String()}
		}
		if _, err := tx.NewDelete().
			Model((*Translation)(nil)).
			Where("?TableAlias.record_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete record translations: %w", err)
		}
		return nil
	})
}

// BunTranslationRepository implements TranslationRepository.
type BunTranslationRepository struct {
	db   *bun.DB
	repo repository.Repository[*Translation]
}

// NewBunTranslationRepository creates a translation repository.
func NewBunTranslationRepository(db *bun.DB) *BunTranslationRepository {
	return &BunTranslationRepository{db: db, repo: NewTranslationModelRepository(db)}
}

func (r *BunTranslationRepository) Create(ctx context.Context, tr *Translation) (*Translation, error) {
	if r.db != nil {
		exists, err := r.db.NewSelect().
			Model((*Translation)(nil)).
			Where("?TableAlias.record_id = ? AND ?TableAlias.locale_id = ?", tr.RecordID, tr.LocaleID).
			Exists(ctx)
		if err != nil {
			return nil, fmt.Errorf("translation repository error: %w", err)
		}
		if exists {
			return nil, &TranslationExistsError{RecordID: tr.RecordID, Locale: tr.LocaleCode}
		}
	}
	created, err := r.repo.Create(ctx, tr)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTranslationRepository) Update(ctx context.Context, tr *Translation) (*Translation, error) {
	updated, err := r.repo.Update(ctx, tr)
	if err != nil {
		return nil, mapRepositoryError(err, "translation", tr.ID.String())
	}
	return updated, nil
}

func (r *BunTranslationRepository) GetByRecordAndLocale(ctx context.Context, recordID, localeID uuid.UUID) (*Translation, error) {
	if r.db == nil {
		return nil, fmt.Errorf("translation repository: database not configured")
	}
	tr := new(Translation)
	err := r.db.NewSelect().
		Model(tr).
		Where("?TableAlias.record_id = ? AND ?TableAlias.locale_id = ?", recordID, localeID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Resource: "translation", Key: recordID.String() + "/" + localeID.String()}
		}
		return nil, fmt.Errorf("translation repository error: %w", err)
	}
	return tr, nil
}

func (r *BunTranslationRepository) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Translation, error) {
	if r.db == nil {
		return nil, fmt.Errorf("translation repository: database not configured")
	}
	var out []*Translation
	if err := r.db.NewSelect().
		Model(&out).
		Where("?TableAlias.record_id = ?", recordID).
		Order("created_at ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("translation repository error: %w", err)
	}
	return out, nil
}

// BunLocaleRepository implements LocaleRepository with optional caching.
type BunLocaleRepository struct {
	db   *bun.DB
	repo repository.Repository[*Locale]
}

// NewBunLocaleRepository constructs a LocaleRepository without caching.
func NewBunLocaleRepository(db *bun.DB) *BunLocaleRepository {
	return NewBunLocaleRepositoryWithCache(db, nil, nil)
}

// NewBunLocaleRepositoryWithCache constructs a LocaleRepository with optional caching.
func NewBunLocaleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunLocaleRepository {
	base := NewLocaleModelRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunLocaleRepository{db: db, repo: base}
}

func (r *BunLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	result, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "locale", code)
	}
	return result, nil
}

func (r *BunLocaleRepository) List(ctx context.Context) ([]*Locale, error) {
	locales, _, err := r.repo.List(ctx)
	return locales, err
}

// Upsert seeds registry locales idempotently, keyed by deterministic IDs.
func (r *BunLocaleRepository) Upsert(ctx context.Context, locale *Locale) (*Locale, error) {
	if r.db == nil {
		return nil, fmt.Errorf("locale repository: database not configured")
	}
	if _, err := r.db.NewInsert().
		Model(locale).
		On("CONFLICT (id) DO UPDATE").
		Set("code = EXCLUDED.code").
		Set("display_name = EXCLUDED.display_name").
		Set("is_default = EXCLUDED.is_default").
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("locale repository error: %w", err)
	}
	return r.GetByCode(ctx, locale.Code)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
