package di

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

func memoryConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = "en"
	cfg.Locales = []string{"en", "es", "de"}
	cfg.DisplayNames = map[string]string{"es": "Español"}
	cfg.Storage.Provider = runtimeconfig.StorageProviderMemory
	return cfg
}

type containerStubProvider struct {
	calls int
}

func (s *containerStubProvider) Translate(_ context.Context, req interfaces.TranslateRequest) (string, error) {
	s.calls++
	return fmt.Sprintf("%s:%s", req.TargetLocale, req.Text), nil
}

func TestNewContainerWiresMemoryStack(t *testing.T) {
	container, err := NewContainer(memoryConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	reg := container.Registry()
	if reg == nil || reg.Len() != 3 {
		t.Fatalf("expected 3-locale registry, got %v", reg)
	}
	if reg.Default().Code != "en" {
		t.Fatalf("default locale = %q", reg.Default().Code)
	}
	if got := reg.Resolve("es").Display; got != "Español" {
		t.Fatalf("display name = %q", got)
	}

	if container.Records() == nil {
		t.Fatal("expected record service")
	}
	if container.Translator() != nil {
		t.Fatal("translator should be nil when the feature is off")
	}
	if container.AdminAPI() == nil {
		t.Fatal("expected admin API")
	}

	session, err := container.NewEditorSession()
	if err != nil {
		t.Fatalf("NewEditorSession() error = %v", err)
	}
	if session == nil {
		t.Fatal("expected editor session")
	}
}

func TestNewContainerSeedsDeterministicLocales(t *testing.T) {
	container, err := NewContainer(memoryConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	locales, err := container.LocaleRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(locales) != 3 {
		t.Fatalf("expected 3 seeded locales, got %d", len(locales))
	}

	byCode := map[string]*records.Locale{}
	for _, locale := range locales {
		byCode[locale.Code] = locale
	}
	en, ok := byCode["en"]
	if !ok || !en.IsDefault {
		t.Fatalf("expected default en locale, got %+v", en)
	}
	if en.ID != identity.LocaleUUID("en") {
		t.Fatalf("locale id = %s, want deterministic %s", en.ID, identity.LocaleUUID("en"))
	}

	// A second boot converges on the same rows.
	again, err := NewContainer(memoryConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	rerun, err := again.LocaleRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, locale := range rerun {
		if locale.ID != identity.LocaleUUID(locale.Code) {
			t.Fatalf("locale %s id drifted: %s", locale.Code, locale.ID)
		}
	}
}

func TestNewContainerRequiresBunDB(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Provider = runtimeconfig.StorageProviderBun

	_, err := NewContainer(cfg)
	if !errors.Is(err, ErrBunDBRequired) {
		t.Fatalf("expected ErrBunDBRequired, got %v", err)
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.Locales = nil

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrLocalesRequired) {
		t.Fatalf("expected ErrLocalesRequired, got %v", err)
	}
}

func TestNewContainerTranslateFeature(t *testing.T) {
	cfg := memoryConfig()
	cfg.Features.Translate = true

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrTranslateEndpointRequired) {
		t.Fatalf("expected endpoint requirement, got %v", err)
	}

	cfg.Translate.Endpoint = "https://translate.internal/v1"
	provider := &containerStubProvider{}
	container, err := NewContainer(cfg, WithTranslateProvider(provider))
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	if container.Translator() == nil {
		t.Fatal("expected translator")
	}
}

func TestNewContainerNavigation(t *testing.T) {
	cfg := memoryConfig()
	cfg.Navigation.BaseURL = "https://example.com"
	cfg.Navigation.Routes = map[string]string{"post": "/posts/:slug"}
	cfg.Navigation.LocalizedRoutes = map[string]map[string]string{
		"es": {"post": "/publicaciones/:slug"},
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	paths := container.Paths()
	if paths == nil {
		t.Fatal("expected path builder")
	}

	url, err := paths.Path("post", "es", map[string]any{"slug": "hola"})
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if url != "https://example.com/es/publicaciones/hola" {
		t.Fatalf("url = %q", url)
	}

	links, err := paths.AlternateLinks("post", map[string]any{"slug": "hola"})
	if err != nil {
		t.Fatalf("AlternateLinks() error = %v", err)
	}
	if len(links) != container.Registry().Len() {
		t.Fatalf("expected one alternate per locale, got %d", len(links))
	}
}

func TestNewContainerMarkdownFeature(t *testing.T) {
	cfg := memoryConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = t.TempDir()

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	if container.Markdown() == nil {
		t.Fatal("expected markdown service")
	}
}
