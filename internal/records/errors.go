package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrRecordIDRequired     = errors.New("records: record id required")
	ErrKindInvalid          = errors.New("records: record kind is invalid")
	ErrLocaleRequired       = errors.New("records: locale is required")
	ErrUnknownLocale        = errors.New("records: unknown locale")
	ErrDefaultLocaleFirst   = errors.New("records: default locale translation must be saved first")
	ErrTranslationExists    = errors.New("records: translation already exists")
	ErrTranslationNotFound  = errors.New("records: translation not found")
	ErrSharedFieldsReadOnly = errors.New("records: shared fields are writable only via the default locale")
	ErrSlugRequired         = errors.New("records: slug is required")
	ErrSlugInvalid          = errors.New("records: slug contains invalid characters")
	ErrTitleRequired        = errors.New("records: title is required")
	ErrValidationFailed     = errors.New("records: validation failed")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// TranslationExistsError captures duplicate (record, locale) saves and
// unwraps to ErrTranslationExists.
type TranslationExistsError struct {
	RecordID uuid.UUID
	Locale   string
}

func (e *TranslationExistsError) Error() string {
	if e == nil {
		return ErrTranslationExists.Error()
	}
	locale := strings.TrimSpace(e.Locale)
	if locale != "" {
		return fmt.Sprintf("%s: locale=%s", ErrTranslationExists.Error(), locale)
	}
	return ErrTranslationExists.Error()
}

func (e *TranslationExistsError) Unwrap() error {
	return ErrTranslationExists
}

// SharedFieldsError reports which shared fields a non-default-locale save
// attempted to change. It unwraps to ErrSharedFieldsReadOnly.
type SharedFieldsError struct {
	RecordID uuid.UUID
	Locale   string
	Fields   []string
}

func (e *SharedFieldsError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrSharedFieldsReadOnly.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSharedFieldsReadOnly.Error(), strings.Join(e.Fields, ", "))
}

func (e *SharedFieldsError) Unwrap() error {
	return ErrSharedFieldsReadOnly
}

// ValidationError aggregates field-level issues caught before any I/O. It
// unwraps to ErrValidationFailed so callers can branch on the class.
type ValidationError struct {
	Issues map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for field, msg := range e.Issues {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
