package i18n

import "testing"

func loadBundle(t *testing.T) *Bundle {
	t.Helper()

	bundle, err := Load("es")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return bundle
}

func TestLoadUnknownDefault(t *testing.T) {
	if _, err := Load("tlh"); err == nil {
		t.Error("expected an error for a default language with no locale file")
	}
}

func TestResolve(t *testing.T) {
	bundle := loadBundle(t)

	tests := []struct {
		lang      string
		wantLang  string
		wantFound bool
	}{
		{"es", "es", true},
		{"en", "en", true},
		{"fr", "es", false},
		{"", "es", false},
	}

	for _, tt := range tests {
		lang, found := bundle.Resolve(tt.lang)
		if lang != tt.wantLang || found != tt.wantFound {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.lang, lang, found, tt.wantLang, tt.wantFound)
		}
	}
}

func TestEventText(t *testing.T) {
	bundle := loadBundle(t)

	en := bundle.Event("en", "nawruz")
	if en.Name != "Naw-Rúz (Bahá'í New Year)" {
		t.Errorf("en nawruz name = %q", en.Name)
	}
	if en.Description == "" {
		t.Error("en nawruz has no description")
	}
	if en.URL == "" {
		t.Error("en nawruz has no URL")
	}

	es := bundle.Event("es", "nawruz")
	if es.Name == en.Name {
		t.Error("es and en names should differ")
	}

	// Unknown key falls back to the key itself as name.
	unknown := bundle.Event("es", "bogusKey")
	if unknown.Name != "bogusKey" {
		t.Errorf("unknown key name = %q, want the key itself", unknown.Name)
	}

	// Unknown language serves the default locale.
	fallback := bundle.Event("de", "nawruz")
	if fallback.Name != es.Name {
		t.Errorf("unknown language name = %q, want default-locale %q", fallback.Name, es.Name)
	}
}

func TestMonthTextComplete(t *testing.T) {
	bundle := loadBundle(t)

	for _, lang := range []string{"es", "en"} {
		for month := 0; month <= 19; month++ {
			name, desc := bundle.Month(lang, month)
			if name == "" {
				t.Errorf("%s: month %d has no name", lang, month)
			}
			if desc == "" {
				t.Errorf("%s: month %d has no description", lang, month)
			}
		}
	}
}

func TestTitleAndSunsetNote(t *testing.T) {
	bundle := loadBundle(t)

	if bundle.Title("es") == "" || bundle.Title("en") == "" {
		t.Error("every locale needs a title")
	}
	if bundle.SunsetNote("es") == "" || bundle.SunsetNote("en") == "" {
		t.Error("every locale needs a sunset note")
	}
	if bundle.DefaultLanguage() != "es" {
		t.Errorf("DefaultLanguage = %q, want es", bundle.DefaultLanguage())
	}
}
