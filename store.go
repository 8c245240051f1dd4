package i18n

import (
	"sort"
)

// Translations maps locale codes to their catalogs.
type Translations map[string]*Catalog

// Store exposes read only access to per-locale catalogs
type Store interface {
	// Catalog returns the catalog for locale, walking its parent chain, and
	// the locale it was found under
	Catalog(locale string) (*Catalog, string, bool)
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the translations used to seed a Store
type Loader interface {
	Load() (Translations, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Translations, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Translations, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	translations Translations
	locales      []string
	fallback     FallbackResolver
}

// StoreOption configures a StaticStore
type StoreOption func(*StaticStore)

// WithStoreFallback replaces the parent based fallback resolution.
func WithStoreFallback(resolver FallbackResolver) StoreOption {
	return func(s *StaticStore) {
		if resolver != nil {
			s.fallback = resolver
		}
	}
}

var _ Store = &StaticStore{}

// NewStaticStore builds a snapshot of the given translations. Locale codes
// are normalised; catalogs are immutable and shared.
func NewStaticStore(data Translations, opts ...StoreOption) *StaticStore {
	store := &StaticStore{
		translations: make(Translations, len(data)),
		fallback:     ParentFallbackResolver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	translations := store.translations
	locales := make([]string, 0, len(data))

	for locale, catalog := range data {
		code := normalizeLocale(locale)
		if catalog == nil || code == "" {
			continue
		}
		if existing, ok := translations[code]; ok {
			catalog = MergeCatalogs(existing, catalog)
		} else {
			locales = append(locales, code)
		}
		translations[code] = catalog
	}

	// make locales deterministic
	sort.Strings(locales)

	store.locales = locales
	return store
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader, opts ...StoreOption) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil, opts...), nil
	}

	translations, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(translations, opts...), nil
}

// Catalog returns the catalog for locale. A locale without its own catalog
// resolves through the fallback chain, by default its closest parent, so
// "pt-BR" finds "pt".
func (s *StaticStore) Catalog(locale string) (*Catalog, string, bool) {
	if s == nil {
		return nil, "", false
	}

	locale = normalizeLocale(locale)
	if catalog, ok := s.translations[locale]; ok {
		return catalog, locale, true
	}

	for _, parent := range s.fallback.Resolve(locale) {
		if catalog, ok := s.translations[parent]; ok {
			return catalog, parent, true
		}
	}

	return nil, "", false
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Translator builds a translator pinned to locale. The locale keeps its own
// plural rules even when the catalog comes from a parent locale; an unknown
// locale gets an empty catalog so every key renders as itself.
func (s *StaticStore) Translator(locale string, opts ...Option) (*Translator, error) {
	catalog, _, ok := s.Catalog(locale)
	if !ok {
		catalog = NewCatalog(nil)
	}

	options := make([]Option, 0, len(opts)+1)
	options = append(options, opts...)
	options = append(options, WithLocale(locale))

	return New(catalog, options...)
}
