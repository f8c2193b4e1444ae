package localize

import "github.com/goliatone/go-localize/internal/runtimeconfig"

var (
	ErrLocalesRequired                   = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleRequired             = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleUnknown              = runtimeconfig.ErrDefaultLocaleUnknown
	ErrStorageProviderUnknown            = runtimeconfig.ErrStorageProviderUnknown
	ErrTranslateEndpointRequired         = runtimeconfig.ErrTranslateEndpointRequired
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrMarkdownContentDirRequired        = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	StorageConfig    = runtimeconfig.StorageConfig
	CacheConfig      = runtimeconfig.CacheConfig
	NavigationConfig = runtimeconfig.NavigationConfig
	TranslateConfig  = runtimeconfig.TranslateConfig
	MarkdownConfig   = runtimeconfig.MarkdownConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	Features         = runtimeconfig.Features
)

// Supported provider identifiers.
const (
	StorageProviderBun    = runtimeconfig.StorageProviderBun
	StorageProviderMemory = runtimeconfig.StorageProviderMemory

	LoggingProviderConsole  = runtimeconfig.LoggingProviderConsole
	LoggingProviderGologger = runtimeconfig.LoggingProviderGologger
)

// DefaultConfig returns the module defaults: English-only registry, bun
// storage, caching on, optional features off.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
