package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-localize/internal/urls"
)

type localePayload struct {
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
	Default bool   `json:"default"`
}

type localesResponse struct {
	Default string          `json:"default"`
	Locales []localePayload `json:"locales"`
}

type pathResponse struct {
	Locale string `json:"locale"`
	URL    string `json:"url"`
}

type alternatesResponse struct {
	Alternates []urls.AlternateLink `json:"alternates"`
}

func (api *AdminAPI) registerLocaleRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET "+joinPath(base, "locales"), api.handleLocaleList)
}

// handleLocaleList exposes the immutable registry in declaration order.
func (api *AdminAPI) handleLocaleList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	response := localesResponse{Default: api.registry.Default().Code}
	for _, locale := range api.registry.Locales() {
		response.Locales = append(response.Locales, localePayload{
			Code:    locale.Code,
			Display: locale.Display,
			Default: api.registry.IsDefault(locale.Code),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (api *AdminAPI) registerPathRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "paths")
	mux.HandleFunc("GET "+root, api.handlePathBuild)
	mux.HandleFunc("GET "+root+"/alternates", api.handlePathAlternates)
}

// handlePathBuild builds one localized URL: ?route=post&locale=es&slug=hello.
// Query parameters other than route and locale pass through as route params.
func (api *AdminAPI) handlePathBuild(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.paths == nil || api.registry == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	query := r.URL.Query()
	route := strings.TrimSpace(query.Get("route"))
	locale := api.registry.Resolve(query.Get("locale")).Code

	built, err := api.paths.Path(route, locale, routeParams(query))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Locale: locale, URL: built})
}

// handlePathAlternates builds the hreflang alternate set for a route: one
// entry per registry locale, registry order.
func (api *AdminAPI) handlePathAlternates(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.paths == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	query := r.URL.Query()
	route := strings.TrimSpace(query.Get("route"))

	links, err := api.paths.AlternateLinks(route, routeParams(query))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alternatesResponse{Alternates: links})
}

func routeParams(query map[string][]string) urls.Params {
	params := urls.Params{}
	for key, values := range query {
		if key == "route" || key == "locale" || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}
	return params
}
