package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LocaleUUID derives the seed identifier for a registry locale.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("go-localize:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

// RecordUUID derives a stable identifier for imported records keyed by kind
// and default-locale slug. Editor-created records use random UUIDs instead.
func RecordUUID(kind, slug string) uuid.UUID {
	return UUID("go-localize:record:" + strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.TrimSpace(slug))
}
