// Command example boots the module with in-memory storage and walks through
// the main flows: creating a record, saving a translation, checking
// completeness, and building localized paths with hreflang alternates.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	localize "github.com/goliatone/go-localize"
	"github.com/goliatone/go-localize/internal/records"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("example: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg := localize.DefaultConfig()
	cfg.DefaultLocale = "en"
	cfg.Locales = []string{"en", "es", "de"}
	cfg.DisplayNames = map[string]string{
		"en": "English",
		"es": "Español",
		"de": "Deutsch",
	}
	cfg.Storage.Provider = localize.StorageProviderMemory
	cfg.Features.Logger = true
	cfg.Navigation.BaseURL = "https://example.com"
	cfg.Navigation.Routes = map[string]string{
		"post": "/posts/:slug",
	}
	cfg.Navigation.LocalizedRoutes = map[string]map[string]string{
		"es": {"post": "/publicaciones/:slug"},
	}

	module, err := localize.New(cfg)
	if err != nil {
		return err
	}

	record, err := module.Records().Create(ctx, records.CreateRecordRequest{
		Kind:   records.KindPost,
		Locale: "en",
		Fields: records.TranslationInput{
			Title: "Payment Gateways in Brazil",
			Body:  "A full comparison of providers.",
			Slug:  "payment-gateways-brazil",
		},
	})
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	if _, err := module.Records().SaveTranslation(ctx, records.SaveTranslationRequest{
		RecordID: record.ID,
		Locale:   "es",
		Fields: records.TranslationInput{
			Title: "Pasarelas de pago en Brasil",
			Body:  "Una comparativa completa de proveedores.",
			Slug:  "pasarelas-de-pago-brasil",
		},
	}); err != nil {
		return fmt.Errorf("save translation: %w", err)
	}

	statuses, err := module.Records().Completeness(ctx, record.ID, nil)
	if err != nil {
		return fmt.Errorf("completeness: %w", err)
	}
	printJSON("completeness", statuses)

	paths := module.Paths()
	esURL, err := paths.Path("post", "es", map[string]any{"slug": "pasarelas-de-pago-brasil"})
	if err != nil {
		return fmt.Errorf("build path: %w", err)
	}
	fmt.Printf("es path: %s\n", esURL)

	links, err := paths.AlternateLinks("post", map[string]any{"slug": "payment-gateways-brazil"})
	if err != nil {
		return fmt.Errorf("alternate links: %w", err)
	}
	printJSON("alternates", links)

	return nil
}

func printJSON(label string, value any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	fmt.Printf("%s:\n", label)
	_ = encoder.Encode(value)
}
