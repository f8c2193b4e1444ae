package translatecmd

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

const autoTranslateMessageType = "localize.translate.auto"

// AutoTranslateCommand requests a field-by-field translation of a record's
// default-locale content into a target locale.
type AutoTranslateCommand struct {
	RecordID     uuid.UUID `json:"record_id"`
	TargetLocale string    `json:"target_locale"`
	Fields       []string  `json:"fields,omitempty"`
}

// Type implements command.Message.
func (AutoTranslateCommand) Type() string { return autoTranslateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m AutoTranslateCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("localize.translate.auto.record_id_required", "record_id is required")
	}
	if strings.TrimSpace(m.TargetLocale) == "" {
		errs["target_locale"] = validation.NewError("localize.translate.auto.target_locale_required", "target_locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DraftSink receives the translated draft for a record/locale pair. The
// orchestration never persists on its own; an editor (or an explicit import
// pipeline) confirms the draft into a saved translation.
type DraftSink func(ctx context.Context, recordID uuid.UUID, locale string, result translate.Result) error

// AutoTranslateHandler drives the translate orchestrator from the command bus.
type AutoTranslateHandler struct {
	inner *commands.Handler[AutoTranslateCommand]
}

// NewAutoTranslateHandler constructs a handler over the record service and
// orchestrator. A nil sink discards the produced draft after logging.
func NewAutoTranslateHandler(
	service records.Service,
	translator *translate.Orchestrator,
	reg *registry.Registry,
	sink DraftSink,
	logger interfaces.Logger,
	opts ...commands.HandlerOption[AutoTranslateCommand],
) *AutoTranslateHandler {
	exec := func(ctx context.Context, msg AutoTranslateCommand) error {
		defaultLocale := reg.Default().Code

		source, err := service.GetTranslation(ctx, msg.RecordID, defaultLocale)
		if err != nil {
			var notFound *records.NotFoundError
			if errors.As(err, &notFound) {
				return translate.ErrNoSourceContent
			}
			return err
		}

		target := records.Draft{}
		if existing, err := service.GetTranslation(ctx, msg.RecordID, msg.TargetLocale); err == nil {
			target = draftFromTranslation(existing)
		} else {
			var notFound *records.NotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}

		result, err := translator.Translate(ctx, translate.Request{
			SourceLocale: defaultLocale,
			TargetLocale: msg.TargetLocale,
			Fields:       msg.Fields,
			Source:       draftFromTranslation(source),
			Target:       target,
		})
		if err != nil {
			return err
		}
		if sink == nil {
			return nil
		}
		return sink(ctx, msg.RecordID, msg.TargetLocale, result)
	}

	handlerOpts := []commands.HandlerOption[AutoTranslateCommand]{
		commands.WithLogger[AutoTranslateCommand](logger),
		commands.WithOperation[AutoTranslateCommand]("translate.auto"),
		commands.WithTelemetry[AutoTranslateCommand](commands.DefaultTelemetry[AutoTranslateCommand](logger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AutoTranslateHandler{
		inner: commands.NewHandler[AutoTranslateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AutoTranslateCommand].Execute.
func (h *AutoTranslateHandler) Execute(ctx context.Context, msg AutoTranslateCommand) error {
	return h.inner.Execute(ctx, msg)
}

func draftFromTranslation(translation *records.Translation) records.Draft {
	draft := records.Draft{
		records.FieldTitle: translation.Title,
		records.FieldBody:  translation.Body,
	}
	if translation.Description != nil {
		draft[records.FieldDescription] = *translation.Description
	}
	if translation.MetaTitle != nil {
		draft[records.FieldMetaTitle] = *translation.MetaTitle
	}
	if translation.MetaDescription != nil {
		draft[records.FieldMetaDescription] = *translation.MetaDescription
	}
	return draft
}
