// Package localize manages per-locale content records: a fixed locale
// registry, translations with completeness tracking, shared record fields
// owned by the default locale, localized path building with hreflang
// alternates, auto-translate orchestration, and Markdown import.
package localize

import (
	"net/http"

	"github.com/goliatone/go-localize/internal/di"
	"github.com/goliatone/go-localize/internal/editor"
	localhttp "github.com/goliatone/go-localize/internal/http"
	"github.com/goliatone/go-localize/internal/markdown"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/internal/urls"
)

// RecordService exposes record and translation use cases.
type RecordService = records.Service

// Record is the localizable entity; Translation one locale's content for it.
type (
	Record      = records.Record
	Translation = records.Translation
)

// Registry is the immutable ordered locale set.
type Registry = registry.Registry

// PathBuilder produces locale-prefixed URLs and hreflang alternates.
type PathBuilder = urls.Builder

// Translator runs field-by-field auto-translation.
type Translator = translate.Orchestrator

// EditorSession drives the per-record editing state machine.
type EditorSession = editor.Session

// MarkdownService imports frontmatter-annotated Markdown content.
type MarkdownService = markdown.Service

// AdminAPI is the HTTP admin surface.
type AdminAPI = localhttp.AdminAPI

// Module is the top-level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs the module from configuration plus optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Enabled reports whether the module is switched on in configuration.
func (m *Module) Enabled() bool {
	return m.container.Config.Enabled
}

// Locales returns the immutable locale registry.
func (m *Module) Locales() *Registry {
	return m.container.Registry()
}

// Records returns the record service.
func (m *Module) Records() RecordService {
	return m.container.Records()
}

// Translator returns the auto-translate orchestrator; nil when the translate
// feature is disabled.
func (m *Module) Translator() *Translator {
	return m.container.Translator()
}

// Paths returns the localized path builder; nil when navigation is not
// configured.
func (m *Module) Paths() *PathBuilder {
	return m.container.Paths()
}

// Markdown returns the content import service; nil when the markdown feature
// is disabled.
func (m *Module) Markdown() *MarkdownService {
	return m.container.Markdown()
}

// LocaleInfos returns the public locale lookup service.
func (m *Module) LocaleInfos() LocaleService {
	return newLocaleService(m)
}

// NewEditorSession opens an editing session over the module's services.
func (m *Module) NewEditorSession() (*EditorSession, error) {
	return m.container.NewEditorSession()
}

// AdminAPI builds the HTTP admin surface.
func (m *Module) AdminAPI() *AdminAPI {
	return m.container.AdminAPI()
}

// Register mounts the admin API routes on mux.
func (m *Module) Register(mux *http.ServeMux) {
	m.container.AdminAPI().Register(mux)
}
