package localize

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-localize/internal/di"
	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/testsupport"
)

func memoryModuleConfig() Config {
	cfg := DefaultConfig()
	cfg.DefaultLocale = "en"
	cfg.Locales = []string{"en", "es", "de"}
	cfg.DisplayNames = map[string]string{"es": "Español", "de": "Deutsch"}
	cfg.Storage.Provider = StorageProviderMemory
	return cfg
}

func TestNewModuleMemoryStack(t *testing.T) {
	module, err := New(memoryModuleConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !module.Enabled() {
		t.Fatal("expected module enabled")
	}
	if module.Locales().Len() != 3 {
		t.Fatalf("expected 3 locales, got %d", module.Locales().Len())
	}
	if module.Translator() != nil {
		t.Fatal("translator should be nil with the feature off")
	}

	ctx := context.Background()
	record, err := module.Records().Create(ctx, records.CreateRecordRequest{
		Kind:   records.KindPost,
		Locale: "en",
		Fields: records.TranslationInput{Title: "Hello", Body: "World", Slug: "hello"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	statuses, err := module.Records().Completeness(ctx, record.ID, nil)
	if err != nil {
		t.Fatalf("Completeness() error = %v", err)
	}
	if statuses["en"] != records.StatusSaved || statuses["es"] != records.StatusMissing {
		t.Fatalf("unexpected statuses %v", statuses)
	}
}

func TestLocaleServiceResolveByCode(t *testing.T) {
	module, err := New(memoryModuleConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()
	locales := module.LocaleInfos()

	info, err := locales.ResolveByCode(ctx, "es")
	if err != nil {
		t.Fatalf("ResolveByCode() error = %v", err)
	}
	if info.Display != "Español" || info.IsDefault {
		t.Fatalf("unexpected locale info %+v", info)
	}
	if info.ID != identity.LocaleUUID("es") {
		t.Fatalf("locale id = %s", info.ID)
	}

	if _, err := locales.ResolveByCode(ctx, ""); !errors.Is(err, ErrLocaleCodeRequired) {
		t.Fatalf("expected ErrLocaleCodeRequired, got %v", err)
	}

	_, err = locales.ResolveByCode(ctx, "fr")
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	var notFound *LocaleNotFoundError
	if !errors.As(err, &notFound) || notFound.Code != "fr" {
		t.Fatalf("expected LocaleNotFoundError for fr, got %v", err)
	}

	all, err := locales.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].Code != "en" || !all[0].IsDefault {
		t.Fatalf("unexpected locale list %+v", all)
	}
}

func TestEditorSessionThroughModule(t *testing.T) {
	module, err := New(memoryModuleConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	session, err := module.NewEditorSession()
	if err != nil {
		t.Fatalf("NewEditorSession() error = %v", err)
	}
	ctx := context.Background()

	if err := session.NewRecord(records.KindPost); err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	if err := session.SetField(records.FieldTitle, "Hello"); err != nil {
		t.Fatalf("SetField(title) error = %v", err)
	}
	if err := session.SetField(records.FieldBody, "World"); err != nil {
		t.Fatalf("SetField(body) error = %v", err)
	}
	if err := session.SetSlug("hello world"); err != nil {
		t.Fatalf("SetSlug() error = %v", err)
	}
	if _, err := session.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	saved, err := module.Records().GetTranslation(ctx, session.RecordID(), "en")
	if err != nil {
		t.Fatalf("GetTranslation() error = %v", err)
	}
	if saved.Slug != "hello-world" {
		t.Fatalf("slug = %q", saved.Slug)
	}
}

func TestNewModuleBunStorage(t *testing.T) {
	db, err := testsupport.NewBunDB()
	if err != nil {
		t.Fatalf("NewBunDB() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := CreateSchema(ctx, db); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}

	cfg := memoryModuleConfig()
	cfg.Storage.Provider = StorageProviderBun
	module, err := New(cfg, di.WithBunDB(db))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	record, err := module.Records().Create(ctx, records.CreateRecordRequest{
		Kind:   records.KindPost,
		Locale: "en",
		Fields: records.TranslationInput{Title: "Hello", Body: "World", Slug: "hello"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := module.Records().Get(ctx, record.ID); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}

func TestNewModuleRejectsInvalidConfig(t *testing.T) {
	cfg := memoryModuleConfig()
	cfg.DefaultLocale = "fr"

	if _, err := New(cfg); !errors.Is(err, ErrDefaultLocaleUnknown) {
		t.Fatalf("expected ErrDefaultLocaleUnknown, got %v", err)
	}
}
