// Package i18n renders localised component messages: it picks the CLDR plural
// form of an entry for a count, substitutes %{name} placeholders and formats
// numbers for the translator locale.
//
// A Translator is pinned to one locale and one Catalog:
//
//	catalog := i18n.MustParseCatalog(map[string]any{
//		"filesChosen": map[string]string{
//			"one":   "%{count} file chosen",
//			"other": "%{count} files chosen",
//		},
//	})
//	t, err := i18n.New(catalog, i18n.WithLocale("en"))
//	msg, err := t.Translate("filesChosen", i18n.Options{"count": 1500}) // "1,500 files chosen"
//
// Plural forms come from golang.org/x/text when it knows the locale, else from
// a small set of built-in rulesets. A missing form falls back to "other" with a
// warning; a missing "other" is a configuration error.
package i18n
