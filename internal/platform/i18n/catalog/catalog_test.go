package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
	}
	if got, ok := bundle.Message("en-US", "problems.not_found"); !ok || got != "Component not found!" {
		t.Fatalf("Message(problems.not_found) = %q, %v", got, ok)
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for key := range bundle.locales[BaseLocale] {
		for _, locale := range bundle.Locales() {
			if _, ok := bundle.locales[locale][key]; !ok {
				t.Fatalf("locale %s is missing key %q", locale, key)
			}
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.only: base\n")},
		"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.other: outro\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "core.only"); !ok || got != "base" {
		t.Fatalf("Message() = %q, %v, want base fallback", got, ok)
	}
	if got := bundle.Printer(language.BrazilianPortuguese).Sprintf("core.only"); got != "base" {
		t.Fatalf("Printer fallback = %q, want base", got)
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "no files",
			fsys: fstest.MapFS{},
		},
		{
			name: "missing base locale",
			fsys: fstest.MapFS{
				"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.a: a\n")},
			},
		},
		{
			name: "locale mismatch",
			fsys: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.a: a\n")},
			},
		},
		{
			name: "key outside namespace",
			fsys: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  core.a: a\n")},
			},
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: [\n")},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMatchPrefersSupportedLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if got := bundle.Match("pt-BR,pt;q=0.9"); got != language.BrazilianPortuguese {
		t.Fatalf("Match(pt-BR) = %v", got)
	}
	if got := bundle.Match(""); got != language.AmericanEnglish {
		t.Fatalf("Match(empty) = %v, want en-US", got)
	}
	if got := bundle.Printer(bundle.Match("pt-BR")).Sprintf("core.reset"); got != "Reiniciar" {
		t.Fatalf("pt-BR reset = %q", got)
	}
}
