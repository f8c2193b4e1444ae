package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/internal/validation"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Issues  map[string]string `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

// decodeValidated reads the body once, rejects shapes the schema disallows,
// then unmarshals into target.
func decodeValidated(r *http.Request, target any, schema *validation.Schema) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := schema.ValidateJSON(body); err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var notFound *records.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
		}
	}

	var payloadErr *validation.PayloadError
	if errors.As(err, &payloadErr) {
		issues := make(map[string]string, len(payloadErr.Issues))
		for _, issue := range payloadErr.Issues {
			location := issue.Location
			if location == "" {
				location = "#"
			}
			issues[location] = issue.Message
		}
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: payloadErr.Error(),
			Issues:  issues,
		}
	}

	var validationErr *records.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: validationErr.Error(),
			Issues:  validationErr.Issues,
		}
	}
	if errors.Is(err, records.ErrValidationFailed) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, records.ErrTranslationExists) ||
		errors.Is(err, records.ErrSharedFieldsReadOnly) {
		return http.StatusConflict, errorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	if errors.Is(err, translate.ErrQuotaExceeded) {
		return http.StatusTooManyRequests, errorResponse{
			Error:   "quota_exceeded",
			Message: err.Error(),
		}
	}

	if errors.Is(err, records.ErrRecordIDRequired) ||
		errors.Is(err, records.ErrKindInvalid) ||
		errors.Is(err, records.ErrLocaleRequired) ||
		errors.Is(err, records.ErrUnknownLocale) ||
		errors.Is(err, records.ErrDefaultLocaleFirst) ||
		errors.Is(err, records.ErrSlugRequired) ||
		errors.Is(err, records.ErrSlugInvalid) ||
		errors.Is(err, translate.ErrInvalidTargetLocale) ||
		errors.Is(err, translate.ErrNoSourceContent) ||
		errors.Is(err, translate.ErrUnknownField) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}
