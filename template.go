package i18n

import "fmt"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// TemplateHelperKey names the translate helper, "t" by default
	TemplateHelperKey string
	// OnError renders a failed translation; the key is rendered when nil
	OnError func(key string, err error) string
}

// TemplateHelpers exposes translator helpers for html/template and
// text/template:
//
//	{{ t "filesChosen" "count" .Count }}
//	{{ tn "filesChosen" .Count "name" .User }}
//	{{ locale }}
//
// Placeholder values are passed as name/value pairs.
func TemplateHelpers(t *Translator, cfg HelperConfig) map[string]any {
	key := cfg.TemplateHelperKey
	if key == "" {
		key = "t"
	}

	render := func(msgKey string, opts Options, err error) string {
		if err == nil && t != nil {
			var result string
			result, err = t.Translate(msgKey, opts)
			if err == nil {
				return result
			}
		}
		if cfg.OnError != nil && err != nil {
			return cfg.OnError(msgKey, err)
		}
		return msgKey
	}

	return map[string]any{
		key: func(msgKey string, pairs ...any) string {
			opts, err := optionsFromPairs(pairs)
			return render(msgKey, opts, err)
		},
		"tn": func(msgKey string, count any, pairs ...any) string {
			opts, err := optionsFromPairs(pairs)
			if opts == nil {
				opts = Options{}
			}
			opts[CountKey] = count
			return render(msgKey, opts, err)
		},
		"locale": func() string {
			if t == nil {
				return ""
			}
			return t.Locale()
		},
	}
}

func optionsFromPairs(pairs []any) (Options, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("i18n: odd number of placeholder arguments (%d)", len(pairs))
	}
	opts := make(Options, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("i18n: placeholder name at position %d must be a non-empty string, got %T", i, pairs[i])
		}
		opts[name] = pairs[i+1]
	}
	return opts, nil
}
