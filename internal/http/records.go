package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/internal/validation"
)

type translationPayload struct {
	Locale          string  `json:"locale"`
	Title           string  `json:"title"`
	Body            string  `json:"body"`
	Description     *string `json:"description,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	Slug            string  `json:"slug"`
	Icon            *string `json:"icon,omitempty"`
	FeaturedImage   *string `json:"featured_image,omitempty"`
	Author          *string `json:"author,omitempty"`
}

type recordCreatePayload struct {
	Kind string `json:"kind"`
	translationPayload
}

type translationsResponse struct {
	Translations []*records.Translation `json:"translations"`
}

type completenessResponse struct {
	Statuses map[string]records.Status `json:"statuses"`
}

func (p translationPayload) fields() records.TranslationInput {
	return records.TranslationInput{
		Title:           p.Title,
		Body:            p.Body,
		Description:     p.Description,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Slug:            p.Slug,
	}
}

func (p translationPayload) shared() records.SharedFieldsInput {
	return records.SharedFieldsInput{
		Icon:          p.Icon,
		FeaturedImage: p.FeaturedImage,
		Author:        p.Author,
	}
}

func (p translationPayload) hasShared() bool {
	return p.Icon != nil || p.FeaturedImage != nil || p.Author != nil
}

func (api *AdminAPI) registerRecordRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "records")
	mux.HandleFunc("GET "+root, api.handleRecordList)
	mux.HandleFunc("POST "+root, api.handleRecordCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleRecordGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleRecordUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleRecordDelete)
	mux.HandleFunc("GET "+root+"/{id}/completeness", api.handleRecordCompleteness)
	mux.HandleFunc("POST "+root+"/{id}/translate", api.handleRecordTranslate)
}

func (api *AdminAPI) handleRecordList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	list, err := api.records.List(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleRecordCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload recordCreatePayload
	if err := decodeValidated(r, &payload, validation.RecordCreate); err != nil {
		writeError(w, err)
		return
	}
	created, err := api.records.Create(r.Context(), records.CreateRecordRequest{
		Kind:   payload.Kind,
		Locale: payload.Locale,
		Fields: payload.fields(),
		Shared: payload.shared(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleRecordGet serves three retrieval modes: ?locale=<code> returns that
// locale's translation (404 when missing), ?all=true returns every
// translation, and no query returns the record row itself. In all=true mode a
// deleted identity key reads back as an empty set, never a partial one and
// never an error.
func (api *AdminAPI) handleRecordGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	query := r.URL.Query()
	if parseBoolQuery(query.Get("all"), false) {
		translations, err := api.records.ListTranslations(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if translations == nil {
			translations = []*records.Translation{}
		}
		writeJSON(w, http.StatusOK, translationsResponse{Translations: translations})
		return
	}

	if locale := strings.TrimSpace(query.Get("locale")); locale != "" {
		translation, err := api.records.GetTranslation(r.Context(), id, locale)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, translation)
		return
	}

	record, err := api.records.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleRecordUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload translationPayload
	if err := decodeValidated(r, &payload, validation.TranslationPayload); err != nil {
		writeError(w, err)
		return
	}

	req := records.SaveTranslationRequest{
		RecordID: id,
		Locale:   payload.Locale,
		Fields:   payload.fields(),
	}
	if payload.hasShared() {
		shared := payload.shared()
		req.Shared = &shared
	}

	saved, err := api.records.SaveTranslation(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (api *AdminAPI) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.records.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleRecordCompleteness(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	statuses, err := api.records.Completeness(r.Context(), id, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completenessResponse{Statuses: statuses})
}

type translateRequestPayload struct {
	TargetLocale string   `json:"target_locale"`
	Fields       []string `json:"fields,omitempty"`
}

type translateFieldFailure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type translateResponsePayload struct {
	TargetLocale string                           `json:"target_locale"`
	Draft        map[string]string                `json:"draft"`
	Failed       map[string]translateFieldFailure `json:"failed,omitempty"`
}

// handleRecordTranslate runs the auto-translate orchestration for one record:
// source fields come from the persisted default-locale translation, the
// target locale's persisted values (if any) seed the prior draft. Precondition
// violations reject the whole request; per-field failures come back in the
// response body alongside the fields that did translate.
func (api *AdminAPI) handleRecordTranslate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.records == nil || api.translator == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload translateRequestPayload
	if err := decodeValidated(r, &payload, validation.AutoTranslate); err != nil {
		writeError(w, err)
		return
	}

	defaultLocale := api.registry.Default().Code
	source, err := api.records.GetTranslation(r.Context(), id, defaultLocale)
	if err != nil {
		var notFound *records.NotFoundError
		if errors.As(err, &notFound) {
			writeError(w, translate.ErrNoSourceContent)
			return
		}
		writeError(w, err)
		return
	}

	target := records.Draft{}
	if existing, err := api.records.GetTranslation(r.Context(), id, payload.TargetLocale); err == nil {
		target = translationFields(existing)
	} else {
		var notFound *records.NotFoundError
		if !errors.As(err, &notFound) {
			writeError(w, err)
			return
		}
	}

	result, err := api.translator.Translate(r.Context(), translate.Request{
		SourceLocale: defaultLocale,
		TargetLocale: payload.TargetLocale,
		Fields:       payload.Fields,
		Source:       translationFields(source),
		Target:       target,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	response := translateResponsePayload{
		TargetLocale: payload.TargetLocale,
		Draft:        result.Draft,
	}
	if len(result.Failed) > 0 {
		response.Failed = make(map[string]translateFieldFailure, len(result.Failed))
		for field, ferr := range result.Failed {
			code := "translation_failed"
			if errors.Is(ferr, translate.ErrQuotaExceeded) {
				code = "quota_exceeded"
			}
			response.Failed[field] = translateFieldFailure{Code: code, Message: ferr.Error()}
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func translationFields(translation *records.Translation) records.Draft {
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
