package translate

import (
	"context"
	"strings"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Request asks for a field-by-field translation of the source draft into the
// target locale. Source must carry the default-locale field values.
type Request struct {
	SourceLocale string
	TargetLocale string
	Fields       []string
	Source       records.Draft
	// Target is the current draft for the target locale; translated values
	// are applied on top so untouched fields survive partial failure.
	Target records.Draft
}

// Result reports the updated target draft and any per-field failures. Fields
// translated before a failure stay applied; nothing is rolled back.
type Result struct {
	Draft  records.Draft
	Failed map[string]error
}

// Ok reports whether every requested field translated.
func (r Result) Ok() bool {
	return len(r.Failed) == 0
}

// Orchestrator drives the external translation capability one field at a
// time. Field granularity bounds partial failure to a single field instead of
// the whole record.
type Orchestrator struct {
	registry *registry.Registry
	provider interfaces.TranslateProvider
	logger   interfaces.Logger
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator builds an orchestrator over the registry and provider.
func NewOrchestrator(reg *registry.Registry, provider interfaces.TranslateProvider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: reg,
		provider: provider,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Translate runs the auto-translate operation. Preconditions are validated
// before any provider call:
//   - the source locale must be the registry default, and the target must be
//     a different registry locale (the default is never auto-written);
//   - at least one named field must carry non-empty source text.
//
// Fields with empty source text are skipped without a provider call. The
// operation is not atomic across fields: successes stay applied and failures
// are reported per field in Result.Failed. The caller re-triggers explicitly;
// there is no automatic retry.
func (o *Orchestrator) Translate(ctx context.Context, req Request) (Result, error) {
	if o == nil || o.provider == nil {
		return Result{}, ErrProviderRequired
	}
	if !o.registry.IsDefault(req.SourceLocale) {
		return Result{}, ErrInvalidTargetLocale
	}
	if !o.registry.Contains(req.TargetLocale) || o.registry.IsDefault(req.TargetLocale) {
		return Result{}, ErrInvalidTargetLocale
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = records.TranslatableFields()
	}
	for _, field := range fields {
		if !records.IsTranslatableField(field) {
			return Result{}, &FieldError{Field: field, Err: ErrUnknownField}
		}
	}

	if !hasSourceContent(req.Source, fields) {
		return Result{}, ErrNoSourceContent
	}

	draft := make(records.Draft, len(req.Target)+len(fields))
	for field, value := range req.Target {
		draft[field] = value
	}

	result := Result{Draft: draft, Failed: map[string]error{}}
	for _, field := range fields {
		text := strings.TrimSpace(req.Source[field])
		if text == "" {
			continue
		}
		translated, err := o.provider.Translate(ctx, interfaces.TranslateRequest{
			Text:         req.Source[field],
			SourceLocale: req.SourceLocale,
			TargetLocale: req.TargetLocale,
		})
		if err != nil {
			result.Failed[field] = &FieldError{Field: field, Err: err}
			o.logger.Warn("field translation failed",
				"field", field,
				"target_locale", req.TargetLocale,
				"error", err.Error(),
			)
			continue
		}
		result.Draft[field] = translated
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result, nil
}

func hasSourceContent(source records.Draft, fields []string) bool {
	for _, field := range fields {
		if strings.TrimSpace(source[field]) != "" {
			return true
		}
	}
	return false
}
