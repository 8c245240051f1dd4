package i18n

import (
	"errors"

	"go.uber.org/zap"
)

// Translator renders messages from one catalog for one locale. It is
// immutable after construction and safe for concurrent use when its hooks are.
type Translator struct {
	catalog     *Catalog
	locale      string
	pluralRules PluralRules
	numbers     NumberFormatter
	logger      *zap.Logger
	hooks       []TranslationHook
}

// New builds a Translator for catalog. Without WithLocale the locale comes
// from the environment, else DefaultLocale. Without WithLogger warnings go to
// zap.L(), silent unless zap.ReplaceGlobals was called.
func New(catalog *Catalog, opts ...Option) (*Translator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildTranslator(catalog)
}

// Locale returns the locale the translator is pinned to.
func (t *Translator) Locale() string {
	return t.locale
}

// Catalog returns the catalog the translator renders from.
func (t *Translator) Catalog() *Catalog {
	return t.catalog
}

// Translate resolves key to a message and interpolates its placeholders.
//
// A numeric opts["count"] selects the plural form of a plural entry. Keys
// without an entry render as the key itself. Errors are *ConfigurationError
// values: empty key, plural entry without the "other" form, or placeholders
// without data.
func (t *Translator) Translate(key string, opts Options) (string, error) {
	ctx := &HookContext{
		Locale:  t.locale,
		Key:     key,
		Options: opts,
	}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	ctx.Result, ctx.Error = t.translate(ctx)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, ctx.Error
}

// T is like Translate but logs errors and renders the key instead.
func (t *Translator) T(key string, opts Options) string {
	result, err := t.Translate(key, opts)
	if err != nil {
		t.logger.Error("i18n: translate failed",
			zap.String("key", key),
			zap.String("locale", t.locale),
			zap.Error(err),
		)
		return key
	}
	return result
}

func (t *Translator) translate(ctx *HookContext) (string, error) {
	key, opts := ctx.Key, ctx.Options
	if key == "" {
		return "", configError("translate", "", t.locale, ErrLookupKeyMissing)
	}

	entry, ok := t.catalog.Entry(key)
	if !ok {
		ctx.SetMetadata(MetadataTranslationMissing, true)
		return key, nil
	}

	template := entry.Text()
	if entry.IsPlural() {
		count, hasCount := opts.Count()
		if !hasCount {
			return key, nil
		}

		category, missing, err := t.resolveCategory(key, entry, count)
		if err != nil {
			return "", err
		}

		ctx.SetMetadata(MetadataPluralCategory, category)
		ctx.SetMetadata(MetadataPluralCount, opts[CountKey])
		if missing != nil {
			ctx.SetMetadata(MetadataPluralMissing, *missing)
		}

		form, _ := entry.Form(category)
		if form == "" {
			return key, nil
		}
		template = form
	}

	if !HasPlaceholders(template) {
		return template, nil
	}

	if opts == nil {
		return "", configError("translate", key, t.locale, ErrNoPlaceholderData)
	}

	result, err := Interpolate(template, opts, t.locale, t.numbers)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Key = key
		}
		return "", err
	}
	return result, nil
}

// Count returns the numeric plural count. Zero is a valid count; non numeric
// values are ignored.
func (o Options) Count() (float64, bool) {
	if o == nil {
		return 0, false
	}
	value, ok := o[CountKey]
	if !ok {
		return 0, false
	}
	return toFloat64(value)
}
