package recordscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

const saveTranslationMessageType = "localize.records.save_translation"

// SaveTranslationCommand creates or updates one locale's translation for an
// existing record.
type SaveTranslationCommand struct {
	RecordID        uuid.UUID `json:"record_id"`
	Locale          string    `json:"locale"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	Description     *string   `json:"description,omitempty"`
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	Slug            string    `json:"slug"`
	Icon            *string   `json:"icon,omitempty"`
	FeaturedImage   *string   `json:"featured_image,omitempty"`
	Author          *string   `json:"author,omitempty"`
}

// Type implements command.Message.
func (SaveTranslationCommand) Type() string { return saveTranslationMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SaveTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("localize.records.save.record_id_required", "record_id is required")
	}
	if strings.TrimSpace(m.Locale) == "" {
		errs["locale"] = validation.NewError("localize.records.save.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveTranslationHandler persists translations via the record service.
type SaveTranslationHandler struct {
	inner *commands.Handler[SaveTranslationCommand]
}

// NewSaveTranslationHandler constructs a handler wired to the provided record service.
func NewSaveTranslationHandler(service records.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveTranslationCommand]) *SaveTranslationHandler {
	exec := func(ctx context.Context, msg SaveTranslationCommand) error {
		req := records.SaveTranslationRequest{
			RecordID: msg.RecordID,
			Locale:   msg.Locale,
			Fields: records.TranslationInput{
				Title:           msg.Title,
				Body:            msg.Body,
				Description:     msg.Description,
				MetaTitle:       msg.MetaTitle,
				MetaDescription: msg.MetaDescription,
				Slug:            msg.Slug,
			},
		}
		if msg.Icon != nil || msg.FeaturedImage != nil || msg.Author != nil {
			req.Shared = &records.SharedFieldsInput{
				Icon:          msg.Icon,
				FeaturedImage: msg.FeaturedImage,
				Author:        msg.Author,
			}
		}
		_, err := service.SaveTranslation(ctx, req)
		return err
	}

	handlerOpts := []commands.HandlerOption[SaveTranslationCommand]{
		commands.WithLogger[SaveTranslationCommand](logger),
		commands.WithOperation[SaveTranslationCommand]("records.save_translation"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveTranslationHandler{
		inner: commands.NewHandler[SaveTranslationCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveTranslationCommand].Execute.
func (h *SaveTranslationHandler) Execute(ctx context.Context, msg SaveTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}
