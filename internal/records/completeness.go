package records

import (
	"strings"

	"github.com/goliatone/go-localize/internal/registry"
)

// Status classifies one registry locale for a record being edited.
type Status string

const (
	// StatusSaved means a persisted translation exists for the locale.
	StatusSaved Status = "saved"
	// StatusDraftUnsaved means no persisted translation exists but the
	// in-memory editing state carries non-empty text for the locale.
	StatusDraftUnsaved Status = "draft"
	// StatusMissing means the locale has neither a saved translation nor
	// draft content.
	StatusMissing Status = "missing"
)

// Draft is the unsaved in-memory editing state for one locale tab: field name
// to current text value.
type Draft map[string]string

// HasContent reports whether any locale-specific field holds non-empty text.
func (d Draft) HasContent() bool {
	for _, value := range d {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// LocaleStatus pairs a registry locale with its classification, in registry
// order, for tab badge rendering.
type LocaleStatus struct {
	Locale registry.Locale
	Status Status
}

// Classify computes the completeness view for every registry locale. It is a
// pure function over persisted state (available) and editing state (drafts);
// it is recomputed on every edit and persists nothing.
func Classify(reg *registry.Registry, available []string, drafts map[string]Draft) map[string]Status {
	out := make(map[string]Status, reg.Len())
	for _, ls := range ClassifyOrdered(reg, available, drafts) {
		out[ls.Locale.Code] = ls.Status
	}
	return out
}

// ClassifyOrdered is Classify preserving registry order.
func ClassifyOrdered(reg *registry.Registry, available []string, drafts map[string]Draft) []LocaleStatus {
	if reg == nil {
		return nil
	}
	saved := make(map[string]struct{}, len(available))
	for _, code := range available {
		saved[strings.TrimSpace(code)] = struct{}{}
	}

	out := make([]LocaleStatus, 0, reg.Len())
	for _, loc := range reg.Locales() {
		status := StatusMissing
		if _, ok := saved[loc.Code]; ok {
			status = StatusSaved
		} else if drafts[loc.Code].HasContent() {
			status = StatusDraftUnsaved
		}
		out = append(out, LocaleStatus{Locale: loc, Status: status})
	}
	return out
}

// SavedLocales filters a classification down to the saved codes, in registry
// order. Used for the compact language badge list on record tables.
func SavedLocales(reg *registry.Registry, available []string) []string {
	out := make([]string, 0, len(available))
	for _, ls := range ClassifyOrdered(reg, available, nil) {
		if ls.Status == StatusSaved {
			out = append(out, ls.Locale.Code)
		}
	}
	return out
}

// CanAutoTranslate reports whether the auto-translate action should be
// enabled: the default locale must be saved or carry non-empty draft content,
// since it is the single source for translation inputs.
func CanAutoTranslate(reg *registry.Registry, available []string, drafts map[string]Draft) bool {
	if reg == nil {
		return false
	}
	def := reg.Default().Code
	switch Classify(reg, available, drafts)[def] {
	case StatusSaved, StatusDraftUnsaved:
		return true
	}
	return false
}
