package interfaces

import "context"

// TranslateRequest carries one field's worth of text to an external
// translation capability. The capability is treated as opaque text-in,
// text-out; providers decide how the locale pair maps onto their API.
type TranslateRequest struct {
	Text         string
	SourceLocale string
	TargetLocale string
}

// TranslateProvider is the external translation capability consumed by the
// auto-translate orchestrator. Implementations must distinguish quota
// exhaustion from generic failure (see translate.ErrQuotaExceeded).
type TranslateProvider interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}
