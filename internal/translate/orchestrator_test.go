package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/registry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

type stubProvider struct {
	calls  int
	failOn map[string]error
}

func (s *stubProvider) Translate(_ context.Context, req interfaces.TranslateRequest) (string, error) {
	s.calls++
	if err, ok := s.failOn[req.Text]; ok {
		return "", err
	}
	return fmt.Sprintf("%s:%s", req.TargetLocale, req.Text), nil
}

func newTestOrchestrator(t *testing.T, provider interfaces.TranslateProvider) *Orchestrator {
	t.Helper()
	reg := registry.MustNew("en", []string{"en", "es", "de", "pt"})
	return NewOrchestrator(reg, provider)
}

func TestTranslateRejectsNonDefaultSourceWithoutCalls(t *testing.T) {
	provider := &stubProvider{}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.Translate(context.Background(), Request{
		SourceLocale: "es",
		TargetLocale: "de",
		Source:       records.Draft{records.FieldTitle: "hola"},
	})
	if !errors.Is(err, ErrInvalidTargetLocale) {
		t.Fatalf("expected ErrInvalidTargetLocale, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("expected zero provider calls, got %d", provider.calls)
	}
}

func TestTranslateRejectsDefaultTargetWithoutCalls(t *testing.T) {
	provider := &stubProvider{}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "en",
		Source:       records.Draft{records.FieldTitle: "hello"},
	})
	if !errors.Is(err, ErrInvalidTargetLocale) {
		t.Fatalf("expected ErrInvalidTargetLocale, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("expected zero provider calls, got %d", provider.calls)
	}
}

func TestTranslateRejectsEmptySourceWithoutCalls(t *testing.T) {
	provider := &stubProvider{}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "es",
		Fields:       []string{records.FieldTitle, records.FieldBody},
		Source:       records.Draft{records.FieldTitle: "  ", records.FieldBody: ""},
	})
	if !errors.Is(err, ErrNoSourceContent) {
		t.Fatalf("expected ErrNoSourceContent, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("expected zero provider calls, got %d", provider.calls)
	}
}

func TestTranslateSkipsEmptyFields(t *testing.T) {
	provider := &stubProvider{}
	orch := newTestOrchestrator(t, provider)

	result, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "es",
		Fields:       []string{records.FieldTitle, records.FieldDescription},
		Source:       records.Draft{records.FieldTitle: "Pricing", records.FieldDescription: ""},
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.calls)
	}
	if got := result.Draft[records.FieldTitle]; got != "es:Pricing" {
		t.Fatalf("title draft = %q", got)
	}
	if _, ok := result.Draft[records.FieldDescription]; ok {
		t.Fatal("empty source field must not mutate the draft")
	}
}

func TestTranslatePartialFailureKeepsSuccesses(t *testing.T) {
	provider := &stubProvider{
		failOn: map[string]error{"B": errors.New("upstream boom")},
	}
	orch := newTestOrchestrator(t, provider)

	result, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "de",
		Fields:       []string{records.FieldTitle, records.FieldBody, records.FieldDescription},
		Source: records.Draft{
			records.FieldTitle:       "A",
			records.FieldBody:        "B",
			records.FieldDescription: "C",
		},
		Target: records.Draft{records.FieldBody: "prior draft"},
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 provider calls, got %d", provider.calls)
	}
	if result.Ok() {
		t.Fatal("expected a reported failure")
	}
	if result.Draft[records.FieldTitle] != "de:A" || result.Draft[records.FieldDescription] != "de:C" {
		t.Fatalf("successful fields missing from draft: %+v", result.Draft)
	}
	if result.Draft[records.FieldBody] != "prior draft" {
		t.Fatalf("failed field's prior draft must stay untouched, got %q", result.Draft[records.FieldBody])
	}

	fieldErr, ok := result.Failed[records.FieldBody]
	if !ok {
		t.Fatalf("expected failure for body, got %v", result.Failed)
	}
	var fe *FieldError
	if !errors.As(fieldErr, &fe) || fe.Field != records.FieldBody {
		t.Fatalf("expected FieldError for body, got %v", fieldErr)
	}
	if !strings.Contains(fieldErr.Error(), "upstream boom") {
		t.Fatalf("field error should carry the cause, got %q", fieldErr.Error())
	}
}

func TestTranslateQuotaSurfacesDistinctly(t *testing.T) {
	provider := &stubProvider{
		failOn: map[string]error{"A": ErrQuotaExceeded},
	}
	orch := newTestOrchestrator(t, provider)

	result, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "es",
		Fields:       []string{records.FieldTitle},
		Source:       records.Draft{records.FieldTitle: "A"},
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !errors.Is(result.Failed[records.FieldTitle], ErrQuotaExceeded) {
		t.Fatalf("expected quota error class, got %v", result.Failed[records.FieldTitle])
	}
}

func TestTranslateUnknownField(t *testing.T) {
	provider := &stubProvider{}
	orch := newTestOrchestrator(t, provider)

	_, err := orch.Translate(context.Background(), Request{
		SourceLocale: "en",
		TargetLocale: "es",
		Fields:       []string{"icon"},
		Source:       records.Draft{records.FieldTitle: "x"},
	})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("expected zero provider calls, got %d", provider.calls)
	}
}
