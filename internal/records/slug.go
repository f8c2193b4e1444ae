package records

import (
	"strings"
	"unicode"

	slug "github.com/goliatone/go-slug"
)

// NormalizeSlug applies the locale-aware slug rules used by URL-facing slug
// fields. Case and extended Latin letters are preserved so non-English locales
// keep readable slugs; whitespace runs and disallowed characters collapse to a
// single hyphen, consecutive hyphens collapse, and edge hyphens are stripped.
// The function is idempotent and maps "" to "".
func NormalizeSlug(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingHyphen := false
	for _, r := range raw {
		if isSlugRune(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		// Whitespace, punctuation, and explicit hyphens all act as a
		// single separator.
		pendingHyphen = true
	}
	return b.String()
}

// isSlugRune reports whether r may appear in a normalized slug: ASCII digits
// and Latin-script letters, which covers extended Latin (ñ, é, ß, Ü) without
// admitting other scripts.
func isSlugRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return unicode.In(r, unicode.Latin)
}

// NormalizeSlugStrict applies the shared go-slug rules (lowercased ASCII).
// Used where a locale-agnostic identifier is needed, e.g. record kinds.
func NormalizeSlugStrict(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether value is already in locale-aware normal form.
func IsValidSlug(value string) bool {
	return value == NormalizeSlug(value)
}
