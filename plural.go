package i18n

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRules is a locale aware plural category selector. Implementations
// report which locales they support; unsupported locales use the built-in
// fallback rulesets.
type PluralRules interface {
	Supports(locale string) bool
	Select(locale string, count float64) PluralCategory
}

// CLDRPluralRules selects cardinal categories with the CLDR data shipped in
// golang.org/x/text/feature/plural.
//
// That data predates the CLDR "many" category for compact large numbers in
// es, fr, it, pt and pt-PT: a count of 1,000,000 selects "other" here while
// browsers, and the built-in spanish ruleset for es, it and pt-PT, select
// "many". Catalogs for those locales should keep the two forms identical, or
// use WithPluralRules(nil) to rely on the built-in rulesets.
type CLDRPluralRules struct{}

var _ PluralRules = CLDRPluralRules{}

// Supports reports whether locale parses as a known BCP 47 tag.
func (CLDRPluralRules) Supports(locale string) bool {
	_, ok := parseTag(locale)
	return ok
}

// Select returns the cardinal plural category for count.
func (CLDRPluralRules) Select(locale string, count float64) PluralCategory {
	tag, ok := parseTag(locale)
	if !ok || math.IsNaN(count) || math.IsInf(count, 0) {
		return PluralOther
	}
	i, v, w, f, t := pluralOperands(count)
	return fromPluralForm(plural.Cardinal.MatchPlural(tag, i, v, w, f, t))
}

func parseTag(locale string) (language.Tag, bool) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return language.Und, false
	}
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

func fromPluralForm(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// pluralOperands derives the CLDR operands i, v, w, f and t from the shortest
// decimal representation of count.
func pluralOperands(count float64) (i, v, w, f, t int) {
	n := math.Abs(count)
	if n >= 1<<53 {
		return int(math.Mod(n, 1e6)) + 1e6, 0, 0, 0, 0
	}

	formatted := strconv.FormatFloat(n, 'f', -1, 64)
	intPart, fraction, _ := strings.Cut(formatted, ".")

	i, _ = strconv.Atoi(intPart)
	if fraction == "" {
		return i, 0, 0, 0, 0
	}
	if len(fraction) > 9 {
		fraction = fraction[:9]
	}

	v = len(fraction)
	f, _ = strconv.Atoi(fraction)

	trimmed := strings.TrimRight(fraction, "0")
	w = len(trimmed)
	if trimmed != "" {
		t, _ = strconv.Atoi(trimmed)
	}
	return i, v, w, f, t
}

// PluralMissingEvent records a fallback from the preferred category to other.
type PluralMissingEvent struct {
	Requested PluralCategory
	Fallback  PluralCategory
}

// PluralCategory resolves the plural category used to render key for count.
// Non-finite counts select other. When the entry lacks the preferred form the
// other form is used and a warning is logged; an entry without other is a
// configuration error.
func (t *Translator) PluralCategory(key string, count float64) (PluralCategory, error) {
	entry, _ := t.catalog.Entry(key)
	category, _, err := t.resolveCategory(key, entry, count)
	return category, err
}

func (t *Translator) resolveCategory(key string, entry Entry, count float64) (PluralCategory, *PluralMissingEvent, error) {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return PluralOther, nil, nil
	}

	preferred := t.preferredCategory(count)

	if entry.HasForm(preferred) {
		return preferred, nil, nil
	}

	if entry.HasForm(PluralOther) {
		t.logger.Warn("i18n: missing plural form, falling back to other",
			zap.String("key", key),
			zap.String("locale", t.locale),
			zap.String("requested", string(preferred)),
		)
		return PluralOther, &PluralMissingEvent{Requested: preferred, Fallback: PluralOther}, nil
	}

	err := configError("plural", key, t.locale, ErrPluralOtherRequired)
	err.Detail = "missing ." + string(preferred) + " and .other"
	return "", nil, err
}

func (t *Translator) preferredCategory(count float64) PluralCategory {
	if t.pluralRules != nil && t.pluralRules.Supports(t.locale) {
		return t.pluralRules.Select(t.locale, count)
	}
	return FallbackPluralCategory(t.locale, count)
}
