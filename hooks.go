package i18n

// Hook metadata keys populated by Translate.
const (
	MetadataPluralCategory     = "plural.category"
	MetadataPluralCount        = "plural.count"
	MetadataPluralMissing      = "plural.missing"
	MetadataTranslationMissing = "translation.missing"
)

// TranslationHook observes Translate calls. Hooks run synchronously in
// registration order; AfterTranslate sees the result, error and metadata.
type TranslationHook interface {
	BeforeTranslate(ctx *HookContext)
	AfterTranslate(ctx *HookContext)
}

// HookFuncs adapts optional functions to TranslationHook.
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeTranslate(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterTranslate(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

type HookContext struct {
	Locale   string
	Key      string
	Options  Options
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *HookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// TranslationMissing reports whether the key had no catalog entry and was
// rendered as itself.
func (ctx *HookContext) TranslationMissing() bool {
	value, ok := ctx.MetadataValue(MetadataTranslationMissing)
	if !ok {
		return false
	}
	missing, _ := value.(bool)
	return missing
}

// PluralHookMetadata summarises plural resolution for a Translate call.
type PluralHookMetadata struct {
	Category PluralCategory
	Count    any
	Missing  *PluralMissingEvent
}

// PluralMetadata returns plural-specific hook metadata if present.
func (ctx *HookContext) PluralMetadata() (PluralHookMetadata, bool) {
	if ctx == nil || len(ctx.Metadata) == 0 {
		return PluralHookMetadata{}, false
	}

	meta := PluralHookMetadata{}
	seen := false

	if value, ok := ctx.Metadata[MetadataPluralCategory]; ok {
		if category, okCast := value.(PluralCategory); okCast {
			meta.Category = category
			seen = true
		}
	}

	if value, ok := ctx.Metadata[MetadataPluralCount]; ok {
		meta.Count = value
		seen = true
	}

	if value, ok := ctx.Metadata[MetadataPluralMissing]; ok {
		if event, okCast := value.(PluralMissingEvent); okCast {
			meta.Missing = &event
			seen = true
		}
	}

	return meta, seen
}
