package i18n

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// ParentFallbackResolver falls back through the CLDR parents of a locale and
// then through the tag truncated at each hyphen, so "pt-BR" resolves to "pt".
type ParentFallbackResolver struct{}

func (ParentFallbackResolver) Resolve(locale string) []string {
	return localeParentChain(locale)
}

// StaticFallbackResolver maps locales to explicit fallback chains, such as
// "cy" -> ["en"]. Locales without a chain use their parents.
type StaticFallbackResolver map[string][]string

func (s StaticFallbackResolver) Resolve(locale string) []string {
	locale = normalizeLocale(locale)
	chain := localeParentChain(locale)

	explicit, ok := s[locale]
	if !ok {
		return chain
	}

	seen := map[string]struct{}{locale: {}}
	for _, parent := range chain {
		seen[parent] = struct{}{}
	}
	for _, fallback := range explicit {
		fallback = normalizeLocale(fallback)
		if fallback == "" {
			continue
		}
		if _, exists := seen[fallback]; exists {
			continue
		}
		seen[fallback] = struct{}{}
		chain = append(chain, fallback)
	}
	return chain
}
