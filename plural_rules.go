package i18n

import (
	"math"
	"strings"
)

// PluralRuleset maps a non-negative integer to a plural category. The
// built-in rulesets are used when no native plural rules support a locale.
type PluralRuleset func(n int64) PluralCategory

// Ruleset names.
const (
	RulesetArabic   = "arabic"
	RulesetChinese  = "chinese"
	RulesetFrench   = "french"
	RulesetGerman   = "german"
	RulesetIrish    = "irish"
	RulesetRussian  = "russian"
	RulesetScottish = "scottish"
	RulesetSpanish  = "spanish"
	RulesetWelsh    = "welsh"
)

// pluralRulesetOrder fixes the lookup order; locale coverage is disjoint.
var pluralRulesetOrder = []string{
	RulesetArabic,
	RulesetChinese,
	RulesetFrench,
	RulesetGerman,
	RulesetIrish,
	RulesetRussian,
	RulesetScottish,
	RulesetSpanish,
	RulesetWelsh,
}

var pluralRulesetLocales = map[string][]string{
	RulesetArabic:   {"ar"},
	RulesetChinese:  {"my", "zh", "id", "ja", "jv", "ko", "ms", "th", "vi"},
	RulesetFrench:   {"hy", "bn", "fr", "gu", "hi", "fa", "pa", "zu"},
	RulesetGerman:   {"af", "sq", "az", "eu", "bg", "ca", "da", "nl", "en", "et", "fi", "ka", "de", "el", "hu", "lb", "no", "so", "sw", "sv", "ta", "te", "tr", "ur"},
	RulesetIrish:    {"ga"},
	RulesetRussian:  {"ru", "uk"},
	RulesetScottish: {"gd"},
	RulesetSpanish:  {"pt-PT", "it", "es"},
	RulesetWelsh:    {"cy"},
}

var pluralRulesets = map[string]PluralRuleset{
	RulesetArabic: func(n int64) PluralCategory {
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		}
		switch mod := n % 100; {
		case mod >= 3 && mod <= 10:
			return PluralFew
		case mod >= 11 && mod <= 99:
			return PluralMany
		}
		return PluralOther
	},
	RulesetChinese: func(int64) PluralCategory {
		return PluralOther
	},
	RulesetFrench: func(n int64) PluralCategory {
		if n == 0 || n == 1 {
			return PluralOne
		}
		return PluralOther
	},
	RulesetGerman: func(n int64) PluralCategory {
		if n == 1 {
			return PluralOne
		}
		return PluralOther
	},
	RulesetIrish: func(n int64) PluralCategory {
		switch {
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		case n >= 3 && n <= 6:
			return PluralFew
		case n >= 7 && n <= 10:
			return PluralMany
		}
		return PluralOther
	},
	RulesetRussian: func(n int64) PluralCategory {
		lastTwo := n % 100
		last := lastTwo % 10
		switch {
		case last == 1 && lastTwo != 11:
			return PluralOne
		case last >= 2 && last <= 4 && !(lastTwo >= 12 && lastTwo <= 14):
			return PluralFew
		case last == 0 || (last >= 5 && last <= 9) || (lastTwo >= 11 && lastTwo <= 14):
			return PluralMany
		}
		return PluralOther
	},
	RulesetScottish: func(n int64) PluralCategory {
		switch {
		case n == 1 || n == 11:
			return PluralOne
		case n == 2 || n == 12:
			return PluralTwo
		case (n >= 3 && n <= 10) || (n >= 13 && n <= 19):
			return PluralFew
		}
		return PluralOther
	},
	RulesetSpanish: func(n int64) PluralCategory {
		if n == 1 {
			return PluralOne
		}
		if n != 0 && n%1000000 == 0 {
			return PluralMany
		}
		return PluralOther
	},
	RulesetWelsh: func(n int64) PluralCategory {
		switch n {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		case 2:
			return PluralTwo
		case 3:
			return PluralFew
		case 6:
			return PluralMany
		}
		return PluralOther
	},
}

// LookupPluralRuleset returns the fallback ruleset name for locale, matching
// the full tag first and then its language subtag.
func LookupPluralRuleset(locale string) (string, bool) {
	if locale == "" {
		return "", false
	}
	short := locale
	if idx := strings.Index(locale, "-"); idx >= 0 {
		short = locale[:idx]
	}
	for _, name := range pluralRulesetOrder {
		for _, candidate := range pluralRulesetLocales[name] {
			if candidate == locale || candidate == short {
				return name, true
			}
		}
	}
	return "", false
}

// PluralRulesetByName returns a built-in ruleset.
func PluralRulesetByName(name string) (PluralRuleset, bool) {
	rule, ok := pluralRulesets[name]
	return rule, ok
}

// PluralRulesetLocales returns the locales covered by a built-in ruleset.
func PluralRulesetLocales(name string) []string {
	locales := pluralRulesetLocales[name]
	if len(locales) == 0 {
		return nil
	}
	return append([]string(nil), locales...)
}

// FallbackPluralCategory selects a category using the built-in rulesets only.
// Negative and fractional counts degrade to the absolute value of their floor.
func FallbackPluralCategory(locale string, count float64) PluralCategory {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return PluralOther
	}
	name, ok := LookupPluralRuleset(locale)
	if !ok {
		return PluralOther
	}
	return pluralRulesets[name](rulesetOperand(count))
}

// rulesetOperand returns abs(floor(count)) as an integer. Values beyond the
// exactly representable range keep their residue modulo 1e6, which is all the
// rulesets inspect, and stay above every small-number comparison.
func rulesetOperand(count float64) int64 {
	n := math.Abs(math.Floor(count))
	if n >= 1<<53 {
		return int64(math.Mod(n, 1e6)) + 1e6
	}
	return int64(n)
}
