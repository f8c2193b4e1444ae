package localize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/records"
)

var (
	// ErrLocaleCodeRequired indicates locale lookups require a non-empty code.
	ErrLocaleCodeRequired = errors.New("localize: locale code is required")
	// ErrUnknownLocale indicates the locale code is outside the registry.
	ErrUnknownLocale = records.ErrUnknownLocale
)

// LocaleNotFoundError describes unknown locale-code lookups and unwraps to
// ErrUnknownLocale.
type LocaleNotFoundError struct {
	Code string
}

func (e *LocaleNotFoundError) Error() string {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return "localize: locale not found"
	}
	return fmt.Sprintf("localize: locale %q not found", code)
}

func (e *LocaleNotFoundError) Unwrap() error {
	return ErrUnknownLocale
}

// LocaleInfo is the stable public locale view.
type LocaleInfo struct {
	ID        uuid.UUID
	Code      string
	Display   string
	IsDefault bool
}

// LocaleService resolves locale records through the public contract. Lookups
// are case-sensitive exact matches against the registry; callers wanting the
// total resolve-or-default behaviour should use Locales().Resolve.
type LocaleService interface {
	ResolveByCode(ctx context.Context, code string) (LocaleInfo, error)
	List(ctx context.Context) ([]LocaleInfo, error)
}

type localeService struct {
	module *Module
}

func newLocaleService(m *Module) LocaleService {
	return &localeService{module: m}
}

func (s *localeService) ResolveByCode(ctx context.Context, code string) (LocaleInfo, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return LocaleInfo{}, ErrLocaleCodeRequired
	}

	reg := s.module.Locales()
	if !reg.Contains(trimmed) {
		return LocaleInfo{}, &LocaleNotFoundError{Code: trimmed}
	}

	stored, err := s.module.container.LocaleRepository().GetByCode(ctx, trimmed)
	if err != nil {
		var notFound *records.NotFoundError
		if errors.As(err, &notFound) {
			return LocaleInfo{}, &LocaleNotFoundError{Code: trimmed}
		}
		return LocaleInfo{}, err
	}

	return LocaleInfo{
		ID:        stored.ID,
		Code:      stored.Code,
		Display:   stored.Display,
		IsDefault: stored.IsDefault,
	}, nil
}

// List returns the registry locales in registry order with their stored
// identifiers.
func (s *localeService) List(ctx context.Context) ([]LocaleInfo, error) {
	reg := s.module.Locales()
	infos := make([]LocaleInfo, 0, reg.Len())
	for _, locale := range reg.Locales() {
		info := LocaleInfo{
			Code:      locale.Code,
			Display:   locale.Display,
			IsDefault: reg.IsDefault(locale.Code),
		}
		if stored, err := s.module.container.LocaleRepository().GetByCode(ctx, locale.Code); err == nil {
			info.ID = stored.ID
			info.Display = stored.Display
		}
		infos = append(infos, info)
	}
	return infos, nil
}
