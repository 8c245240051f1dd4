package i18n

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultLocale is used when neither an explicit locale nor the environment
// provides one.
const DefaultLocale = "en"

// Config captures translator setup
type Config struct {
	Locale          string
	Environment     Environment
	PluralRules     PluralRules
	NumberFormatter NumberFormatter
	Logger          *zap.Logger
	Hooks           []TranslationHook

	pluralRulesSet     bool
	numberFormatterSet bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Environment == nil {
		cfg.Environment = EnvLanguage{}
	}

	if !cfg.pluralRulesSet {
		cfg.PluralRules = CLDRPluralRules{}
	}

	if !cfg.numberFormatterSet {
		cfg.NumberFormatter = CLDRNumberFormatter{}
	}

	// zap.L() is a no-op logger unless the globals were replaced
	if cfg.Logger == nil {
		cfg.Logger = zap.L()
	}

	cfg.Locale = cfg.resolveLocale()

	return cfg, nil
}

// WithLocale pins the translator locale.
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = normalizeLocale(locale)
		return nil
	}
}

// WithEnvironment sets the source of the ambient language used when no
// locale is given.
func WithEnvironment(env Environment) Option {
	return func(c *Config) error {
		c.Environment = env
		return nil
	}
}

// WithPluralRules replaces the native plural rules. A nil value disables
// them so that only the built-in fallback rulesets are used.
func WithPluralRules(rules PluralRules) Option {
	return func(c *Config) error {
		c.PluralRules = rules
		c.pluralRulesSet = true
		return nil
	}
}

// WithNumberFormatter replaces the number formatter. A nil value renders
// numbers as plain decimals.
func WithNumberFormatter(formatter NumberFormatter) Option {
	return func(c *Config) error {
		c.NumberFormatter = formatter
		c.numberFormatterSet = true
		return nil
	}
}

// WithLogger sets the logger receiving plural fallback warnings and T
// failures. Without it the translator logs to zap.L(), which discards
// everything until the application calls zap.ReplaceGlobals.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("i18n: nil logger")
		}
		c.Logger = logger
		return nil
	}
}

func WithTranslatorHooks(hooks ...TranslationHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// BuildTranslator binds catalog to the configured locale and capabilities.
func (cfg *Config) BuildTranslator(catalog *Catalog) (*Translator, error) {
	if cfg == nil {
		return nil, errors.New("i18n: nil config")
	}
	if catalog == nil {
		catalog = NewCatalog(nil)
	}

	locale := cfg.Locale
	if locale == "" {
		locale = cfg.resolveLocale()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	return &Translator{
		catalog:     catalog,
		locale:      locale,
		pluralRules: cfg.PluralRules,
		numbers:     cfg.NumberFormatter,
		logger:      logger,
		hooks:       append([]TranslationHook(nil), cfg.Hooks...),
	}, nil
}

func (cfg *Config) resolveLocale() string {
	if cfg.Locale != "" {
		return cfg.Locale
	}
	if cfg.Environment != nil {
		if lang := normalizeLocale(cfg.Environment.Language()); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}
