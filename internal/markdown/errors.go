package markdown

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceRequired is returned when the importer is built without a
	// record service.
	ErrServiceRequired = errors.New("markdown: record service is required")
	// ErrRegistryRequired is returned when no locale registry is supplied.
	ErrRegistryRequired = errors.New("markdown: locale registry is required")
	// ErrContentDirRequired is returned when the import service has no content
	// directory to walk.
	ErrContentDirRequired = errors.New("markdown: content directory is required")
	// ErrUnknownLocale marks a file whose locale marker is outside the registry.
	ErrUnknownLocale = errors.New("markdown: unknown locale")
	// ErrMissingDefaultDocument marks a translation group with no
	// default-locale source file.
	ErrMissingDefaultDocument = errors.New("markdown: missing default-locale document")
)

// UnknownLocaleError reports a file carrying a locale the registry does not
// serve.
type UnknownLocaleError struct {
	Path   string
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("markdown: %s: locale %q is not in the registry", e.Path, e.Locale)
}

func (e *UnknownLocaleError) Unwrap() error { return ErrUnknownLocale }

// MissingDefaultError reports a translation group that has localized files but
// no default-locale source to anchor the record identity.
type MissingDefaultError struct {
	Key     string
	Locales []string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("markdown: group %s has locales %v but no default-locale document", e.Key, e.Locales)
}

func (e *MissingDefaultError) Unwrap() error { return ErrMissingDefaultDocument }
