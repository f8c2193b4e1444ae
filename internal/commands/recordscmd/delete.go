package recordscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

const deleteRecordMessageType = "localize.records.delete"

// DeleteRecordCommand requests a cascading delete of a record and every one of
// its translations.
type DeleteRecordCommand struct {
	RecordID uuid.UUID `json:"record_id"`
}

// Type implements command.Message.
func (DeleteRecordCommand) Type() string { return deleteRecordMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteRecordCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("localize.records.delete.record_id_required", "record_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteRecordHandler removes records via the record service using the shared
// command handler foundation.
type DeleteRecordHandler struct {
	inner *commands.Handler[DeleteRecordCommand]
}

// NewDeleteRecordHandler constructs a handler wired to the provided record service.
func NewDeleteRecordHandler(service records.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteRecordCommand]) *DeleteRecordHandler {
	exec := func(ctx context.Context, msg DeleteRecordCommand) error {
		return service.Delete(ctx, msg.RecordID)
	}

	handlerOpts := []commands.HandlerOption[DeleteRecordCommand]{
		commands.WithLogger[DeleteRecordCommand](logger),
		commands.WithOperation[DeleteRecordCommand]("records.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteRecordHandler{
		inner: commands.NewHandler[DeleteRecordCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteRecordCommand].Execute.
func (h *DeleteRecordHandler) Execute(ctx context.Context, msg DeleteRecordCommand) error {
	return h.inner.Execute(ctx, msg)
}
