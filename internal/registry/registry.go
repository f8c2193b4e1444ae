package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-localize/internal/identity"
	"github.com/google/uuid"
)

var (
	ErrDefaultLocaleRequired = errors.New("registry: default locale is required")
	ErrNoLocales             = errors.New("registry: at least one locale is required")
	ErrDuplicateLocale       = errors.New("registry: duplicate locale code")
)

// Locale is one supported language entry. IDs are derived deterministically
// from the code so storage seeding stays idempotent across processes.
type Locale struct {
	ID      uuid.UUID
	Code    string
	Display string
}

// Registry is the fixed, ordered set of supported locales plus one designated
// default. It is immutable once constructed; inject it instead of reaching for
// package-level state so tests can swap smaller registries in.
type Registry struct {
	locales []Locale
	index   map[string]int
	def     int
}

// Option customises registry construction.
type Option func(*builderState)

type builderState struct {
	display map[string]string
}

// WithDisplayName sets the human-readable name for a locale code.
func WithDisplayName(code, display string) Option {
	return func(st *builderState) {
		st.display[code] = display
	}
}

// New builds a registry from an ordered code list. The default code must be a
// member of the list.
func New(defaultCode string, codes []string, opts ...Option) (*Registry, error) {
	defaultCode = strings.TrimSpace(defaultCode)
	if defaultCode == "" {
		return nil, ErrDefaultLocaleRequired
	}
	if len(codes) == 0 {
		return nil, ErrNoLocales
	}

	st := &builderState{display: map[string]string{}}
	for _, opt := range opts {
		opt(st)
	}

	reg := &Registry{
		index: make(map[string]int, len(codes)),
		def:   -1,
	}
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}
		if _, ok := reg.index[code]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, code)
		}
		display := st.display[code]
		if display == "" {
			display = code
		}
		reg.index[code] = len(reg.locales)
		reg.locales = append(reg.locales, Locale{
			ID:      identity.LocaleUUID(code),
			Code:    code,
			Display: display,
		})
	}
	if len(reg.locales) == 0 {
		return nil, ErrNoLocales
	}

	idx, ok := reg.index[defaultCode]
	if !ok {
		return nil, fmt.Errorf("%w: default %q not in locale list", ErrDefaultLocaleRequired, defaultCode)
	}
	reg.def = idx
	return reg, nil
}

// MustNew panics on invalid input. Intended for compiled-in registries.
func MustNew(defaultCode string, codes []string, opts ...Option) *Registry {
	reg, err := New(defaultCode, codes, opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Resolve maps an arbitrary untrusted candidate (typically a URL segment) to a
// registry locale. Matching is exact and case-sensitive; anything else falls
// back to the default. Resolution is total: it never fails.
func (r *Registry) Resolve(candidate string) Locale {
	if r == nil || r.def < 0 {
		return Locale{}
	}
	if idx, ok := r.index[candidate]; ok {
		return r.locales[idx]
	}
	return r.locales[r.def]
}

// Contains reports exact membership of a locale code.
func (r *Registry) Contains(code string) bool {
	if r == nil {
		return false
	}
	_, ok := r.index[code]
	return ok
}

// Default returns the designated default locale.
func (r *Registry) Default() Locale {
	if r == nil || r.def < 0 {
		return Locale{}
	}
	return r.locales[r.def]
}

// IsDefault reports whether code is the default locale code.
func (r *Registry) IsDefault(code string) bool {
	if r == nil || r.def < 0 {
		return false
	}
	return r.locales[r.def].Code == code
}

// Codes returns locale codes in registry order.
func (r *Registry) Codes() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.locales))
	for i, loc := range r.locales {
		out[i] = loc.Code
	}
	return out
}

// Locales returns a copy of the registry entries in order.
func (r *Registry) Locales() []Locale {
	if r == nil {
		return nil
	}
	return append([]Locale(nil), r.locales...)
}

// Len returns the number of registered locales.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.locales)
}
