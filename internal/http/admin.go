package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/internal/urls"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// AdminAPI registers the admin endpoints for localizable records, locale
// metadata, localized path building, and auto-translate.
type AdminAPI struct {
	basePath   string
	registry   *registry.Registry
	records    records.Service
	translator *translate.Orchestrator
	paths      *urls.Builder
	logger     interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithRegistry wires the locale registry.
func WithRegistry(reg *registry.Registry) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.registry = reg
		}
	}
}

// WithRecordService wires the record service.
func WithRecordService(service records.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.records = service
		}
	}
}

// WithTranslator wires the auto-translate orchestrator.
func WithTranslator(translator *translate.Orchestrator) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.translator = translator
		}
	}
}

// WithPathBuilder wires the localized path builder.
func WithPathBuilder(builder *urls.Builder) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.paths = builder
		}
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts the admin routes on the supplied mux.
func (api *AdminAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	api.registerLocaleRoutes(mux, api.basePath)
	api.registerRecordRoutes(mux, api.basePath)
	api.registerPathRoutes(mux, api.basePath)
}
