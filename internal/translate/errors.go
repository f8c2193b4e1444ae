package translate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTargetLocale rejects auto-translate requests whose source is
	// not the registry default or whose target is the default. Checked before
	// any network call.
	ErrInvalidTargetLocale = errors.New("translate: invalid target locale")
	// ErrNoSourceContent rejects requests where every named field is empty in
	// the source locale. Checked before any network call.
	ErrNoSourceContent = errors.New("translate: no source content")
	// ErrQuotaExceeded marks rate/quota failures from the external
	// capability; surfaced distinctly so the UI can show remediation.
	ErrQuotaExceeded = errors.New("translate: quota exceeded")
	// ErrTranslateFailed is the generic per-field failure.
	ErrTranslateFailed = errors.New("translate: translation failed")
	// ErrProviderRequired indicates the orchestrator has no provider wired.
	ErrProviderRequired = errors.New("translate: provider is required")
	// ErrUnknownField rejects field names outside the translatable set.
	ErrUnknownField = errors.New("translate: unknown field")
)

// FieldError wraps a per-field provider failure, keeping sibling fields
// unaffected.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return ErrTranslateFailed.Error()
	}
	return fmt.Sprintf("%s: field=%s: %v", ErrTranslateFailed.Error(), e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrTranslateFailed
	}
	return e.Err
}
