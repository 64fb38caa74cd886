// Package i18n loads the embedded translation bundles for event and month
// names. Bundles are parsed once at startup and read-only afterwards.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// locale is the parsed form of one translation file.
type locale struct {
	Title  string `yaml:"title"`
	Events struct {
		Names        map[string]string `yaml:"names"`
		Descriptions map[string]string `yaml:"descriptions"`
		URLs         map[string]string `yaml:"urls"`
	} `yaml:"events"`
	Months struct {
		Names        map[int]string `yaml:"names"`
		Descriptions map[int]string `yaml:"descriptions"`
	} `yaml:"months"`
	SunsetNote string `yaml:"sunset_note"`
}

// EventText is the localized display form of an event.
type EventText struct {
	Name        string
	Description string
	URL         string
}

// Bundle holds every loaded locale and the fallback language.
type Bundle struct {
	defaultLang string
	locales     map[string]*locale
}

// Load parses all embedded locale files. defaultLang must name one of them.
func Load(defaultLang string) (*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	locales := make(map[string]*locale, len(entries))
	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		loc := &locale{}
		if err := yaml.Unmarshal(data, loc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		locales[lang] = loc
	}

	if _, ok := locales[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q has no locale file", defaultLang)
	}

	return &Bundle{defaultLang: defaultLang, locales: locales}, nil
}

// DefaultLanguage returns the fallback language code.
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

// Resolve returns the language that will actually serve the request: lang if
// a locale exists for it, otherwise the default. The second return reports
// whether the requested language was available.
func (b *Bundle) Resolve(lang string) (string, bool) {
	if _, ok := b.locales[lang]; ok {
		return lang, true
	}
	return b.defaultLang, false
}

func (b *Bundle) locale(lang string) *locale {
	if loc, ok := b.locales[lang]; ok {
		return loc
	}
	return b.locales[b.defaultLang]
}

// Event returns the localized name, description and reference URL for an
// event key. A key with no translation falls back to the key itself as name.
func (b *Bundle) Event(lang, key string) EventText {
	loc := b.locale(lang)
	text := EventText{
		Name:        loc.Events.Names[key],
		Description: loc.Events.Descriptions[key],
		URL:         loc.Events.URLs[key],
	}
	if text.Name == "" {
		text.Name = key
	}
	return text
}

// Month returns the localized name and description of a Badí month number.
func (b *Bundle) Month(lang string, month int) (name, desc string) {
	loc := b.locale(lang)
	return loc.Months.Names[month], loc.Months.Descriptions[month]
}

// Title returns the localized calendar title (used as the month-event prefix).
func (b *Bundle) Title(lang string) string {
	return b.locale(lang).Title
}

// SunsetNote returns the localized reminder that days begin at the previous
// sunset.
func (b *Bundle) SunsetNote(lang string) string {
	return b.locale(lang).SunsetNote
}
