package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
)

const defaultDoc = `---
title: Payment Gateways in Brazil
slug: payment-gateways-brazil
icon: credit-card
author: Ana
description: Comparing providers.
---
# Gateways

A **full** comparison.
`

const spanishDoc = `---
title: Pasarelas de pago en Brasil
slug: pasarelas-de-pago-brasil
---
# Pasarelas

Una comparativa **completa**.
`

func newImportService(t *testing.T, fsys fstest.MapFS) (*Service, records.Service) {
	t.Helper()
	reg := registry.MustNew("en", []string{"en", "es", "de"})
	translations := records.NewMemoryTranslationRepository()
	recordService := records.NewService(
		records.NewMemoryRecordRepository(translations),
		translations,
		records.NewMemoryLocaleRepository(),
		reg,
	)

	svc, err := NewService(Config{ContentDir: "content", Recursive: true}, recordService, reg, WithFS(fsys))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc, recordService
}

func TestImportCreatesRecordWithTranslations(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/payment-gateways.md":    testFile(defaultDoc),
		"posts/payment-gateways.es.md": testFile(spanishDoc),
	}
	svc, recordService := newImportService(t, fsys)
	ctx := context.Background()

	result, err := svc.Import(ctx)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(result.Created) != 1 || len(result.Errors) != 0 {
		t.Fatalf("expected 1 created and no errors, got %+v", result)
	}

	wantID := identity.RecordUUID(records.KindPost, "payment-gateways-brazil")
	if result.Created[0] != wantID {
		t.Fatalf("record id = %s, want deterministic %s", result.Created[0], wantID)
	}

	record, err := recordService.Get(ctx, wantID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.Icon == nil || *record.Icon != "credit-card" {
		t.Fatalf("expected shared icon from default document, got %v", record.Icon)
	}
	if record.Author == nil || *record.Author != "Ana" {
		t.Fatalf("expected shared author from default document, got %v", record.Author)
	}

	en, err := recordService.GetTranslation(ctx, wantID, "en")
	if err != nil {
		t.Fatalf("GetTranslation(en) error = %v", err)
	}
	if !strings.Contains(en.Body, "<strong>full</strong>") {
		t.Fatalf("expected rendered body, got %q", en.Body)
	}
	if en.Description == nil || *en.Description != "Comparing providers." {
		t.Fatalf("description = %v", en.Description)
	}

	es, err := recordService.GetTranslation(ctx, wantID, "es")
	if err != nil {
		t.Fatalf("GetTranslation(es) error = %v", err)
	}
	if es.Slug != "pasarelas-de-pago-brasil" {
		t.Fatalf("es slug = %q", es.Slug)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/payment-gateways.md":    testFile(defaultDoc),
		"posts/payment-gateways.es.md": testFile(spanishDoc),
	}
	svc, _ := newImportService(t, fsys)
	ctx := context.Background()

	if _, err := svc.Import(ctx); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}

	result, err := svc.Import(ctx)
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if len(result.Created) != 0 || len(result.Updated) != 0 {
		t.Fatalf("expected unchanged run, got %+v", result)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped record, got %d", len(result.Skipped))
	}
}

func TestImportDetectsChanges(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/payment-gateways.md": testFile(defaultDoc),
	}
	svc, _ := newImportService(t, fsys)
	ctx := context.Background()

	if _, err := svc.Import(ctx); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}

	fsys["posts/payment-gateways.md"] = testFile(strings.Replace(defaultDoc, "A **full** comparison.", "Updated copy.", 1))
	result, err := svc.Import(ctx)
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if len(result.Updated) != 1 {
		t.Fatalf("expected 1 updated record, got %+v", result)
	}
}

func TestImportRequiresDefaultLocaleDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/payment-gateways.md": testFile(defaultDoc),
		"es/posts/orphan.md":        testFile("---\ntitle: Solo\nslug: solo\n---\nbody"),
	}
	svc, recordService := newImportService(t, fsys)
	ctx := context.Background()

	result, err := svc.Import(ctx)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected healthy group to import, got %+v", result)
	}
	if len(result.Errors) != 1 || !errors.Is(result.Errors[0], ErrMissingDefaultDocument) {
		t.Fatalf("expected missing-default error, got %v", result.Errors)
	}

	all, err := recordService.List(ctx, records.KindPost)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected orphan group to create nothing, got %d records", len(all))
	}
}

func TestImportSkipsDrafts(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/wip.md": testFile("---\ntitle: WIP\nslug: wip\ndraft: true\n---\nbody"),
	}
	svc, recordService := newImportService(t, fsys)
	ctx := context.Background()

	result, err := svc.Import(ctx)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(result.Created)+len(result.Updated)+len(result.Skipped) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected draft to be ignored, got %+v", result)
	}

	all, err := recordService.List(ctx, records.KindPost)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no records, got %d", len(all))
	}
}
