package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// PluralCategory is one of the CLDR plural categories.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralCategories lists every category in CLDR order.
var PluralCategories = []PluralCategory{
	PluralZero,
	PluralOne,
	PluralTwo,
	PluralFew,
	PluralMany,
	PluralOther,
}

// Options carries the plural count and placeholder values for a single
// Translate call. A nil Options means no data was supplied.
type Options map[string]any

// CountKey is the Options key holding the plural count.
const CountKey = "count"

// Entry is a catalog value: either a plain message template or a record of
// plural forms keyed by category.
type Entry struct {
	text   string
	forms  map[PluralCategory]string
	plural bool
}

// Text builds a plain message entry.
func Text(template string) Entry {
	return Entry{text: template}
}

// Plural builds a pluralized entry. The forms map is copied.
func Plural(forms map[PluralCategory]string) Entry {
	entry := Entry{plural: true, forms: make(map[PluralCategory]string, len(forms))}
	for category, template := range forms {
		entry.forms[category] = template
	}
	return entry
}

// IsPlural reports whether the entry holds plural forms.
func (e Entry) IsPlural() bool {
	return e.plural
}

// Text returns the template of a plain entry.
func (e Entry) Text() string {
	return e.text
}

// Form returns the template registered for category. Plain entries have no forms.
func (e Entry) Form(category PluralCategory) (string, bool) {
	if !e.plural || e.forms == nil {
		return "", false
	}
	template, ok := e.forms[category]
	return template, ok
}

// HasForm reports whether the plural record defines category.
func (e Entry) HasForm(category PluralCategory) bool {
	_, ok := e.Form(category)
	return ok
}

// Categories returns the defined plural categories in CLDR order.
func (e Entry) Categories() []PluralCategory {
	if !e.plural || len(e.forms) == 0 {
		return nil
	}
	out := make([]PluralCategory, 0, len(e.forms))
	for category := range e.forms {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool {
		return pluralCategoryOrder(out[i]) < pluralCategoryOrder(out[j])
	})
	return out
}

func (e Entry) withForm(category PluralCategory, template string) Entry {
	out := Entry{plural: true, forms: make(map[PluralCategory]string, len(e.forms)+1)}
	for c, t := range e.forms {
		out.forms[c] = t
	}
	out.forms[category] = template
	return out
}

// ParsePluralCategory converts a category name, case-insensitively.
func ParsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

// isPluralCategory matches the exact lowercase category names, so "one " or
// "One" are not plural suffixes.
func isPluralCategory(raw string) bool {
	switch PluralCategory(raw) {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

func pluralCategoryOrder(category PluralCategory) int {
	switch category {
	case PluralZero:
		return 0
	case PluralOne:
		return 1
	case PluralTwo:
		return 2
	case PluralFew:
		return 3
	case PluralMany:
		return 4
	case PluralOther:
		return 5
	default:
		return 99
	}
}
