package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileLoader reads locale keyed catalog files. Each file maps locale codes
// to catalogs in either the nested or the flat shape:
//
//	{"en": {"filesChosen": {"one": "%{count} file chosen", "other": "%{count} files chosen"}}}
//	{"cy": {"filesChosen.one": "...", "filesChosen.other": "..."}}
//
// JSON, YAML and TOML are supported. Later files override earlier ones key by key.
type FileLoader struct {
	paths []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Translations, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	buckets := make(map[string]map[string]any)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		src, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}
		mergeRawCatalogs(buckets, src)
	}

	translations := make(Translations, len(buckets))
	for locale, raw := range buckets {
		catalog, err := ParseCatalog(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %s: %w", locale, err)
		}
		translations[locale] = catalog
	}

	return translations, nil
}

func decodeCatalogFile(path string, data []byte) (map[string]map[string]any, error) {
	var raw map[string]map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty translations file")
	}

	for locale := range raw {
		if normalizeLocale(locale) == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
	}

	return raw, nil
}

func mergeRawCatalogs(dst, src map[string]map[string]any) {
	for locale, catalog := range src {
		locale = normalizeLocale(locale)
		target := dst[locale]
		if target == nil {
			target = make(map[string]any, len(catalog))
			dst[locale] = target
		}
		for key, value := range catalog {
			target[key] = value
		}
	}
}

// GoI18nLoader imports go-i18n message files such as "active.cy.toml". The
// locale comes from the file name; Zero..Other become plural forms and simple
// template references like {{.Name}} become %{name} placeholders.
type GoI18nLoader struct {
	paths []string
}

var _ Loader = &GoI18nLoader{}

func NewGoI18nLoader(paths ...string) *GoI18nLoader {
	return &GoI18nLoader{paths: append([]string(nil), paths...)}
}

var goI18nUnmarshalers = map[string]goi18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

func (l *GoI18nLoader) Load() (Translations, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	buckets := make(map[string]map[string]any)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		file, err := goi18n.ParseMessageFileBytes(data, path, goI18nUnmarshalers)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		locale := file.Tag.String()
		if locale == "" || locale == "und" {
			return nil, fmt.Errorf("i18n: no language tag in file name %s", path)
		}

		mergeRawCatalogs(buckets, map[string]map[string]any{
			locale: goI18nMessages(file.Messages),
		})
	}

	translations := make(Translations, len(buckets))
	for locale, raw := range buckets {
		catalog, err := ParseCatalog(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %s: %w", locale, err)
		}
		translations[locale] = catalog
	}

	return translations, nil
}

func goI18nMessages(messages []*goi18n.Message) map[string]any {
	out := make(map[string]any, len(messages))
	for _, msg := range messages {
		if msg == nil || msg.ID == "" {
			continue
		}

		convert := goI18nTemplateConverter(msg.LeftDelim, msg.RightDelim)
		forms := map[PluralCategory]string{}
		for category, template := range map[PluralCategory]string{
			PluralZero:  msg.Zero,
			PluralOne:   msg.One,
			PluralTwo:   msg.Two,
			PluralFew:   msg.Few,
			PluralMany:  msg.Many,
			PluralOther: msg.Other,
		} {
			if template != "" {
				forms[category] = convert(template)
			}
		}

		switch {
		case len(forms) == 0:
			continue
		case len(forms) == 1 && forms[PluralOther] != "":
			out[msg.ID] = forms[PluralOther]
		default:
			out[msg.ID] = Plural(forms)
		}
	}
	return out
}

func goI18nTemplateConverter(left, right string) func(string) string {
	if left == "" {
		left = "{{"
	}
	if right == "" {
		right = "}}"
	}
	pattern := regexp.MustCompile(regexp.QuoteMeta(left) + `\s*\.([A-Za-z_][A-Za-z0-9_]*)\s*` + regexp.QuoteMeta(right))

	return func(template string) string {
		return pattern.ReplaceAllStringFunc(template, func(match string) string {
			name := pattern.FindStringSubmatch(match)[1]
			return "%{" + goI18nPlaceholderName(name) + "}"
		})
	}
}

func goI18nPlaceholderName(field string) string {
	if field == "PluralCount" || field == "Count" {
		return CountKey
	}
	r, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToLower(r)) + field[size:]
}
