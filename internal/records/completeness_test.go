package records

import (
	"testing"

	"github.com/goliatone/go-localize/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.MustNew("en", []string{"en", "es", "de", "pt"})
}

func TestClassify(t *testing.T) {
	reg := testRegistry(t)

	t.Run("saved and missing", func(t *testing.T) {
		got := Classify(reg, []string{"en", "es"}, nil)
		want := map[string]Status{
			"en": StatusSaved,
			"es": StatusSaved,
			"de": StatusMissing,
			"pt": StatusMissing,
		}
		for code, status := range want {
			if got[code] != status {
				t.Fatalf("Classify()[%q] = %q, want %q", code, got[code], status)
			}
		}
	})

	t.Run("draft reclassifies missing locale", func(t *testing.T) {
		drafts := map[string]Draft{
			"de": {FieldTitle: "Zahlungsabwicklung"},
		}
		got := Classify(reg, []string{"en", "es"}, drafts)
		if got["de"] != StatusDraftUnsaved {
			t.Fatalf("de = %q, want %q", got["de"], StatusDraftUnsaved)
		}
		if got["pt"] != StatusMissing {
			t.Fatalf("pt = %q, want %q", got["pt"], StatusMissing)
		}
	})

	t.Run("whitespace-only draft stays missing", func(t *testing.T) {
		drafts := map[string]Draft{
			"de": {FieldTitle: "   ", FieldBody: ""},
		}
		got := Classify(reg, nil, drafts)
		if got["de"] != StatusMissing {
			t.Fatalf("de = %q, want %q", got["de"], StatusMissing)
		}
	})

	t.Run("saved wins over draft", func(t *testing.T) {
		drafts := map[string]Draft{
			"es": {FieldTitle: "pending edit"},
		}
		got := Classify(reg, []string{"es"}, drafts)
		if got["es"] != StatusSaved {
			t.Fatalf("es = %q, want %q", got["es"], StatusSaved)
		}
	})
}

func TestClassifyOrderedCoversRegistry(t *testing.T) {
	reg := testRegistry(t)
	got := ClassifyOrdered(reg, []string{"pt"}, nil)
	if len(got) != reg.Len() {
		t.Fatalf("ClassifyOrdered() length = %d, want %d", len(got), reg.Len())
	}
	for i, code := range reg.Codes() {
		if got[i].Locale.Code != code {
			t.Fatalf("ClassifyOrdered()[%d] = %q, want %q", i, got[i].Locale.Code, code)
		}
	}
}

func TestSavedLocalesKeepsRegistryOrder(t *testing.T) {
	reg := testRegistry(t)
	got := SavedLocales(reg, []string{"pt", "en"})
	if len(got) != 2 || got[0] != "en" || got[1] != "pt" {
		t.Fatalf("SavedLocales() = %v, want [en pt]", got)
	}
}

func TestCanAutoTranslate(t *testing.T) {
	reg := testRegistry(t)

	if CanAutoTranslate(reg, nil, nil) {
		t.Fatal("expected false with no default content")
	}
	if !CanAutoTranslate(reg, []string{"en"}, nil) {
		t.Fatal("expected true with saved default")
	}
	drafts := map[string]Draft{"en": {FieldBody: "draft body"}}
	if !CanAutoTranslate(reg, nil, drafts) {
		t.Fatal("expected true with default draft content")
	}
	onlyOther := map[string]Draft{"es": {FieldBody: "contenido"}}
	if CanAutoTranslate(reg, nil, onlyOther) {
		t.Fatal("expected false when only a non-default locale has content")
	}
}
