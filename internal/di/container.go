// Package di assembles the module's dependency graph from runtime
// configuration: locale registry, repositories, record service, translator,
// path builder, markdown importer, and the admin API.
package di

import (
	"context"
	"errors"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-localize/internal/editor"
	localhttp "github.com/goliatone/go-localize/internal/http"
	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/logging/console"
	"github.com/goliatone/go-localize/internal/logging/gologger"
	"github.com/goliatone/go-localize/internal/markdown"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/internal/translate"
	"github.com/goliatone/go-localize/internal/urls"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

var (
	// ErrBunDBRequired is returned when the bun storage provider is configured
	// without a database handle.
	ErrBunDBRequired = errors.New("di: bun storage requires a *bun.DB, use WithBunDB")
)

// Container holds the wired module dependencies.
type Container struct {
	Config runtimeconfig.Config

	registry *registry.Registry
	provider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	recordRepo      records.RecordRepository
	translationRepo records.TranslationRepository
	localeRepo      records.LocaleRepository

	recordSvc         records.Service
	translateProvider interfaces.TranslateProvider
	translator        *translate.Orchestrator
	routeManager      *urlkit.RouteManager
	pathBuilder       *urls.Builder
	markdownSvc       *markdown.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies the database handle backing the bun storage provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logging provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithTranslateProvider overrides the HTTP translation provider built from
// configuration, typically with a test double.
func WithTranslateProvider(provider interfaces.TranslateProvider) Option {
	return func(c *Container) {
		c.translateProvider = provider
	}
}

// WithRecordService overrides the assembled record service.
func WithRecordService(service records.Service) Option {
	return func(c *Container) {
		c.recordSvc = service
	}
}

// NewContainer validates cfg and wires every enabled component.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	c.registry = reg

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCache()
	if err := c.configureRepositories(); err != nil {
		return nil, err
	}
	c.seedLocales()

	if c.recordSvc == nil {
		c.recordSvc = records.NewService(
			c.recordRepo,
			c.translationRepo,
			c.localeRepo,
			c.registry,
			records.WithLogger(logging.RecordsLogger(c.provider)),
		)
	}

	if err := c.configureTranslator(); err != nil {
		return nil, err
	}
	if err := c.configureNavigation(); err != nil {
		return nil, err
	}
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}

	return c, nil
}

func buildRegistry(cfg runtimeconfig.Config) (*registry.Registry, error) {
	var opts []registry.Option
	for code, display := range cfg.DisplayNames {
		opts = append(opts, registry.WithDisplayName(code, display))
	}
	return registry.New(cfg.DefaultLocale, cfg.Locales, opts...)
}

func (c *Container) configureLogging() error {
	if c.provider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch c.Config.Logging.Provider {
	case runtimeconfig.LoggingProviderGologger:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.provider = provider
	default:
		c.provider = console.NewProvider(console.Options{})
	}
	return nil
}

func (c *Container) configureCache() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
			cfg.TTL = ttl
		} else {
			cfg.TTL = time.Minute
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() error {
	switch c.Config.Storage.Provider {
	case runtimeconfig.StorageProviderBun:
		if c.bunDB == nil {
			return ErrBunDBRequired
		}
		var (
			cacheService  repocache.CacheService
			keySerializer repocache.KeySerializer
		)
		if c.Config.Features.AdvancedCache {
			cacheService = c.cacheService
			keySerializer = c.keySerializer
		}
		c.recordRepo = records.NewBunRecordRepositoryWithCache(c.bunDB, cacheService, keySerializer)
		c.translationRepo = records.NewBunTranslationRepository(c.bunDB)
		c.localeRepo = records.NewBunLocaleRepositoryWithCache(c.bunDB, cacheService, keySerializer)
	default:
		translations := records.NewMemoryTranslationRepository()
		c.recordRepo = records.NewMemoryRecordRepository(translations)
		c.translationRepo = translations
		c.localeRepo = records.NewMemoryLocaleRepository()
	}
	return nil
}

// seedLocales mirrors the registry into the locale table with deterministic
// identifiers so repeated boots converge on the same rows.
func (c *Container) seedLocales() {
	ctx := context.Background()
	logger := logging.ModuleLogger(c.provider, "localize.di")

	for _, locale := range c.registry.Locales() {
		_, err := c.localeRepo.Upsert(ctx, &records.Locale{
			ID:        identity.LocaleUUID(locale.Code),
			Code:      locale.Code,
			Display:   locale.Display,
			IsDefault: c.registry.IsDefault(locale.Code),
			CreatedAt: time.Now(),
		})
		if err != nil {
			logger.Warn("locale seed failed", "locale", locale.Code, "error", err)
		}
	}
}

func (c *Container) configureTranslator() error {
	if !c.Config.Features.Translate {
		return nil
	}

	if c.translateProvider == nil {
		provider, err := translate.NewHTTPProvider(translate.HTTPProviderConfig{
			Endpoint: c.Config.Translate.Endpoint,
			APIKey:   c.Config.Translate.APIKey,
			Timeout:  c.Config.Translate.Timeout,
		})
		if err != nil {
			return err
		}
		c.translateProvider = provider
	}

	c.translator = translate.NewOrchestrator(
		c.registry,
		c.translateProvider,
		translate.WithLogger(logging.TranslateLogger(c.provider)),
	)
	return nil
}

func (c *Container) configureNavigation() error {
	nav := c.Config.Navigation

	routeConfig := nav.RouteConfig
	if routeConfig == nil {
		if nav.BaseURL == "" || len(nav.Routes) == 0 {
			return nil
		}
		routeConfig = urls.RouteConfig(nav.BaseURL, c.registry, nav.Routes, nav.LocalizedRoutes)
	}

	c.routeManager = urlkit.NewRouteManager(routeConfig)

	builder, err := urls.NewBuilder(urls.Options{
		Manager:      c.routeManager,
		Registry:     c.registry,
		DefaultGroup: nav.DefaultGroup,
		LocaleGroups: nav.LocaleGroups,
		Logger:       logging.PathsLogger(c.provider),
	})
	if err != nil {
		return err
	}
	c.pathBuilder = builder
	return nil
}

func (c *Container) configureMarkdown() error {
	if !c.Config.Features.Markdown || !c.Config.Markdown.Enabled {
		return nil
	}

	svc, err := markdown.NewService(markdown.Config{
		ContentDir: c.Config.Markdown.ContentDir,
		Pattern:    c.Config.Markdown.Pattern,
		Recursive:  c.Config.Markdown.Recursive,
		Kind:       c.Config.Markdown.Kind,
	}, c.recordSvc, c.registry, markdown.WithServiceLogger(logging.MarkdownLogger(c.provider)))
	if err != nil {
		return err
	}
	c.markdownSvc = svc
	return nil
}

// Registry exposes the immutable locale registry.
func (c *Container) Registry() *registry.Registry {
	return c.registry
}

// Records exposes the record service.
func (c *Container) Records() records.Service {
	return c.recordSvc
}

// Translator exposes the auto-translate orchestrator; nil when the translate
// feature is disabled.
func (c *Container) Translator() *translate.Orchestrator {
	return c.translator
}

// Paths exposes the localized path builder; nil when no navigation routes are
// configured.
func (c *Container) Paths() *urls.Builder {
	return c.pathBuilder
}

// RouteManager exposes the underlying urlkit route manager.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// Markdown exposes the content import service; nil when the markdown feature
// is disabled.
func (c *Container) Markdown() *markdown.Service {
	return c.markdownSvc
}

// LoggerProvider exposes the logging provider; nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// LocaleRepository exposes the seeded locale repository.
func (c *Container) LocaleRepository() records.LocaleRepository {
	return c.localeRepo
}

// NewEditorSession opens an editing session over the wired services.
func (c *Container) NewEditorSession() (*editor.Session, error) {
	opts := []editor.SessionOption{
		editor.WithLogger(logging.EditorLogger(c.provider)),
	}
	if c.translator != nil {
		opts = append(opts, editor.WithTranslator(c.translator))
	}
	return editor.NewSession(c.recordSvc, c.registry, opts...)
}

// AdminAPI builds the HTTP admin surface over the wired services.
func (c *Container) AdminAPI() *localhttp.AdminAPI {
	opts := []localhttp.AdminOption{
		localhttp.WithRegistry(c.registry),
		localhttp.WithRecordService(c.recordSvc),
		localhttp.WithLogger(logging.APILogger(c.provider)),
	}
	if c.translator != nil {
		opts = append(opts, localhttp.WithTranslator(c.translator))
	}
	if c.pathBuilder != nil {
		opts = append(opts, localhttp.WithPathBuilder(c.pathBuilder))
	}
	return localhttp.NewAdminAPI(opts...)
}
