package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	// ErrLocalesRequired indicates the locale registry has no members.
	ErrLocalesRequired = errors.New("localize config: at least one locale is required")
	// ErrDefaultLocaleRequired indicates no default locale was configured.
	ErrDefaultLocaleRequired = errors.New("localize config: default locale is required")
	// ErrDefaultLocaleUnknown indicates the default locale is not in the locale list.
	ErrDefaultLocaleUnknown = errors.New("localize config: default locale must be one of the configured locales")
	// ErrStorageProviderUnknown indicates an unsupported storage provider identifier.
	ErrStorageProviderUnknown = errors.New("localize config: storage provider is invalid")
	// ErrTranslateEndpointRequired indicates the translate feature is on without an endpoint.
	ErrTranslateEndpointRequired = errors.New("localize config: translate endpoint is required when translation is enabled")
	// ErrAdvancedCacheRequiresEnabledCache ensures repository caching builds only when cache is enabled.
	ErrAdvancedCacheRequiresEnabledCache = errors.New("localize config: advanced cache feature requires cache to be enabled")
	// ErrMarkdownContentDirRequired indicates markdown import is on without a content directory.
	ErrMarkdownContentDirRequired = errors.New("localize config: markdown content directory is required when markdown is enabled")
	// ErrLoggingProviderRequired indicates the logging feature is on without a provider.
	ErrLoggingProviderRequired = errors.New("localize config: logging provider is required when logging feature is enabled")
	// ErrLoggingProviderUnknown indicates an unsupported logging provider identifier.
	ErrLoggingProviderUnknown = errors.New("localize config: logging provider is invalid")
	// ErrLoggingLevelInvalid indicates an unsupported logging level.
	ErrLoggingLevelInvalid = errors.New("localize config: logging level is invalid")
	// ErrLoggingFormatInvalid indicates an unsupported logging format.
	ErrLoggingFormatInvalid = errors.New("localize config: logging format is invalid")
)

// Config aggregates feature flags and adapter bindings for the localization
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	DisplayNames  map[string]string
	Storage       StorageConfig
	Cache         CacheConfig
	Navigation    NavigationConfig
	Translate     TranslateConfig
	Markdown      MarkdownConfig
	Logging       LoggingConfig
	Features      Features
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures repository cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig captures routing configuration for localized path building.
// When RouteConfig is nil the module assembles one from BaseURL, Routes, and
// LocalizedRoutes with one child group per non-default locale.
type NavigationConfig struct {
	RouteConfig     *urlkit.Config
	BaseURL         string
	Routes          map[string]string
	LocalizedRoutes map[string]map[string]string
	DefaultGroup    string
	LocaleGroups    map[string]string
}

// TranslateConfig wires the external translation capability.
type TranslateConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// MarkdownConfig captures filesystem and parser behaviour for markdown import.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Kind       string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Translate     bool
	Markdown      bool
	AdvancedCache bool
	Logger        bool
}

// Supported storage and logging provider identifiers.
const (
	StorageProviderBun    = "bun"
	StorageProviderMemory = "memory"

	LoggingProviderConsole  = "console"
	LoggingProviderGologger = "gologger"
)

// DefaultConfig returns opinionated defaults: English-only registry, bun
// storage, caching on, everything optional off.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en"},
		DisplayNames:  map[string]string{},
		Storage: StorageConfig{
			Provider: StorageProviderBun,
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{},
		Translate: TranslateConfig{
			Timeout: 30 * time.Second,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Locales) == 0 {
		return ErrLocalesRequired
	}
	defaultLocale := strings.TrimSpace(cfg.DefaultLocale)
	if defaultLocale == "" {
		return ErrDefaultLocaleRequired
	}
	if !slices.Contains(cfg.Locales, defaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnknown, defaultLocale)
	}
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Features.Translate {
		if strings.TrimSpace(cfg.Translate.Endpoint) == "" {
			return ErrTranslateEndpointRequired
		}
	}
	if cfg.Features.Markdown && cfg.Markdown.Enabled {
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLogging(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == LoggingProviderGologger {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case StorageProviderBun, StorageProviderMemory:
		return true
	default:
		return false
	}
}

func isSupportedLogging(provider string) bool {
	switch provider {
	case LoggingProviderConsole, LoggingProviderGologger:
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
