package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Catalog is an immutable set of message entries for a single locale.
// Translators hold catalogs by reference; nothing mutates a catalog after
// construction.
type Catalog struct {
	entries map[string]Entry
	keys    []string
}

// NewCatalog builds a catalog from already normalised entries. The map is copied.
func NewCatalog(entries map[string]Entry) *Catalog {
	out := make(map[string]Entry, len(entries))
	for key, entry := range entries {
		if key == "" {
			continue
		}
		out[key] = entry
	}
	return newCatalog(out)
}

func newCatalog(entries map[string]Entry) *Catalog {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Catalog{entries: entries, keys: keys}
}

// ParseCatalog normalises a decoded catalog into entries. Values may be plain
// strings or records of plural forms. Flat keys such as "filesChosen.one" are
// folded into a plural entry for "filesChosen" unless "filesChosen" is itself
// a plain string.
func ParseCatalog(raw map[string]any) (*Catalog, error) {
	entries := make(map[string]Entry, len(raw))

	for key, value := range raw {
		if key == "" {
			return nil, fmt.Errorf("i18n: empty catalog key")
		}
		entry, err := entryFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("i18n: catalog key %q: %w", key, err)
		}
		entries[key] = entry
	}

	foldFlatPluralKeys(entries)

	return newCatalog(entries), nil
}

// MustParseCatalog is like ParseCatalog but panics on error.
func MustParseCatalog(raw map[string]any) *Catalog {
	catalog, err := ParseCatalog(raw)
	if err != nil {
		panic(err)
	}
	return catalog
}

func entryFromValue(value any) (Entry, error) {
	switch v := value.(type) {
	case string:
		return Text(v), nil
	case Entry:
		return v, nil
	case map[PluralCategory]string:
		return Plural(v), nil
	case map[string]string:
		forms := make(map[PluralCategory]string, len(v))
		for name, template := range v {
			category, err := ParsePluralCategory(name)
			if err != nil {
				return Entry{}, err
			}
			forms[category] = template
		}
		return Plural(forms), nil
	case map[string]any:
		forms := make(map[PluralCategory]string, len(v))
		for name, template := range v {
			category, err := ParsePluralCategory(name)
			if err != nil {
				return Entry{}, err
			}
			text, ok := template.(string)
			if !ok {
				return Entry{}, fmt.Errorf("plural form %s must be a string, got %T", name, template)
			}
			forms[category] = text
		}
		return Plural(forms), nil
	default:
		return Entry{}, fmt.Errorf("%w: %T", ErrUnsupportedMessage, value)
	}
}

func foldFlatPluralKeys(entries map[string]Entry) {
	flat := make([]string, 0)
	for key, entry := range entries {
		if entry.IsPlural() {
			continue
		}
		if _, _, ok := splitPluralKey(key); ok {
			flat = append(flat, key)
		}
	}
	sort.Strings(flat)

	for _, key := range flat {
		base, category, _ := splitPluralKey(key)
		existing, ok := entries[base]
		if ok && !existing.IsPlural() {
			continue
		}
		if existing.HasForm(category) {
			delete(entries, key)
			continue
		}
		entries[base] = existing.withForm(category, entries[key].Text())
		delete(entries, key)
	}
}

func splitPluralKey(key string) (string, PluralCategory, bool) {
	idx := strings.LastIndex(key, ".")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}
	suffix := key[idx+1:]
	if !isPluralCategory(suffix) {
		return "", "", false
	}
	return key[:idx], PluralCategory(suffix), true
}

// Entry returns the entry stored under key. A dotted key "base.category"
// with no entry of its own resolves to that form of the plural entry "base".
func (c *Catalog) Entry(key string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	if entry, ok := c.entries[key]; ok {
		return entry, true
	}
	base, category, ok := splitPluralKey(key)
	if !ok {
		return Entry{}, false
	}
	parent, ok := c.entries[base]
	if !ok {
		return Entry{}, false
	}
	template, ok := parent.Form(category)
	if !ok {
		return Entry{}, false
	}
	return Text(template), true
}

// Has reports whether key resolves to an entry.
func (c *Catalog) Has(key string) bool {
	_, ok := c.Entry(key)
	return ok
}

// Keys returns the catalog keys sorted alphabetically.
func (c *Catalog) Keys() []string {
	if c == nil || len(c.keys) == 0 {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Validate reports every plural entry that lacks the "other" form. Such
// entries fail at translate time for any count whose preferred form is absent.
func (c *Catalog) Validate(locale string) error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, key := range c.keys {
		entry := c.entries[key]
		if !entry.IsPlural() || entry.HasForm(PluralOther) {
			continue
		}
		errs = append(errs, configError("validate", key, locale, ErrPluralOtherRequired))
	}
	return errors.Join(errs...)
}

// MergeCatalogs layers catalogs left to right; later catalogs override
// earlier ones key by key. When both entries are plural the forms are merged,
// later forms winning, so overriding "key.other" keeps "key.one". Text
// entries replace whole. Nil catalogs are skipped.
func MergeCatalogs(catalogs ...*Catalog) *Catalog {
	entries := make(map[string]Entry)
	for _, catalog := range catalogs {
		if catalog == nil {
			continue
		}
		for key, entry := range catalog.entries {
			existing, ok := entries[key]
			if ok && existing.IsPlural() && entry.IsPlural() {
				for _, category := range entry.Categories() {
					form, _ := entry.Form(category)
					existing = existing.withForm(category, form)
				}
				entry = existing
			}
			entries[key] = entry
		}
	}
	return newCatalog(entries)
}
