package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record kinds mirror the content entities managed by the marketing admin.
const (
	KindPost       = "post"
	KindCopilotTip = "copilot_tip"
)

// Locale represents supported languages, seeded from the compiled-in registry.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID        uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Code      string     `bun:"code,notnull"         json:"code"`
	Display   string     `bun:"display_name,notnull" json:"display_name"`
	IsDefault bool       `bun:"is_default,notnull,default:false" json:"is_default"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Record is the logical localizable entity. Its identity key is shared by
// every translation; the shared presentation fields (icon, featured image,
// author) live here and are writable only through the default-locale save
// path.
type Record struct {
	bun.BaseModel `bun:"table:records,alias:r"`

	ID            uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Kind          string         `bun:"kind,notnull" json:"kind"`
	Icon          *string        `bun:"icon" json:"icon,omitempty"`
	FeaturedImage *string        `bun:"featured_image" json:"featured_image,omitempty"`
	Author        *string        `bun:"author" json:"author,omitempty"`
	Metadata      map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	DeletedAt     *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*Translation `bun:"rel:has-many,join:id=record_id" json:"translations,omitempty"`
}

// Translation stores the locale-specific variant of a record. At most one row
// exists per (record_id, locale_id) pair.
type Translation struct {
	bun.BaseModel `bun:"table:record_translations,alias:rt"`

	ID              uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	RecordID        uuid.UUID  `bun:"record_id,notnull,type:uuid" json:"record_id"`
	LocaleID        uuid.UUID  `bun:"locale_id,notnull,type:uuid" json:"locale_id"`
	LocaleCode      string     `bun:"locale_code,notnull" json:"locale"`
	Title           string     `bun:"title,notnull" json:"title"`
	Body            string     `bun:"body,notnull" json:"body"`
	Description     *string    `bun:"description" json:"description,omitempty"`
	MetaTitle       *string    `bun:"meta_title" json:"meta_title,omitempty"`
	MetaDescription *string    `bun:"meta_description" json:"meta_description,omitempty"`
	Slug            string     `bun:"slug,notnull" json:"slug"`
	DeletedAt       *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Locale *Locale `bun:"rel:belongs-to,join:locale_id=id" json:"-"`
}

// TextFields returns the locale-specific free-text fields by name. Field names
// double as auto-translate targets.
func (t *Translation) TextFields() map[string]string {
	if t == nil {
		return nil
	}
	fields := map[string]string{
		FieldTitle: t.Title,
		FieldBody:  t.Body,
	}
	if t.Description != nil {
		fields[FieldDescription] = *t.Description
	}
	if t.MetaTitle != nil {
		fields[FieldMetaTitle] = *t.MetaTitle
	}
	if t.MetaDescription != nil {
		fields[FieldMetaDescription] = *t.MetaDescription
	}
	return fields
}

// Translatable field names accepted by the auto-translate operation. Slug is
// intentionally absent: slugs are normalized, not machine translated.
const (
	FieldTitle           = "title"
	FieldBody            = "body"
	FieldDescription     = "description"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
)

// TranslatableFields lists every field name the orchestrator may target.
func TranslatableFields() []string {
	return []string{FieldTitle, FieldBody, FieldDescription, FieldMetaTitle, FieldMetaDescription}
}

// IsTranslatableField reports whether name is a known translatable field.
func IsTranslatableField(name string) bool {
	switch name {
	case FieldTitle, FieldBody, FieldDescription, FieldMetaTitle, FieldMetaDescription:
		return true
	}
	return false
}
