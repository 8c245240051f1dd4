package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	i18n "github.com/goliatone/go-frontend-i18n"
)

type envConfig struct {
	Locale   string   `env:"I18N_LOCALE"`
	Catalogs []string `env:"I18N_CATALOGS" envSeparator:","`
	LogLevel string   `env:"I18N_LOG_LEVEL" envDefault:"info"`
	LogEnv   string   `env:"I18N_LOG_ENV" envDefault:"dev"`
}

type cliConfig struct {
	catalogs       []string
	goI18nCatalogs []string
	locale         string
	count          string
	values         []string
	fallbacks      []string
	check          bool
	logLevel       string
	logEnv         string
	keys           []string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		reportError(fmt.Errorf("load .env: %w", err))
	}

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		reportError(err)
	}

	cfg, err := parseFlags(os.Args[1:], defaults)
	if err != nil {
		reportError(err)
	}

	logger := buildLogger(cfg.logLevel, cfg.logEnv)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "i18n-translate: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string, defaults envConfig) (cliConfig, error) {
	var cfg cliConfig

	flags := pflag.NewFlagSet("i18n-translate", pflag.ContinueOnError)
	flags.StringSliceVarP(&cfg.catalogs, "catalog", "c", defaults.Catalogs, "locale keyed catalog file (.json, .yaml, .toml); repeatable")
	flags.StringSliceVar(&cfg.goI18nCatalogs, "goi18n", nil, "go-i18n message file such as active.cy.toml; repeatable")
	flags.StringVarP(&cfg.locale, "locale", "l", defaults.Locale, "locale to translate into")
	flags.StringVarP(&cfg.count, "count", "n", "", "plural count")
	flags.StringArrayVarP(&cfg.values, "set", "s", nil, "placeholder value as name=value; repeatable")
	flags.StringArrayVar(&cfg.fallbacks, "fallback", nil, "fallback chain as locale=fallback[,fallback]; repeatable")
	flags.BoolVar(&cfg.check, "check", false, "validate catalogs instead of translating")
	flags.StringVar(&cfg.logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.logEnv, "log-env", defaults.LogEnv, "dev or prod")

	if err := flags.Parse(args); err != nil {
		return cliConfig{}, err
	}
	cfg.keys = flags.Args()

	if len(cfg.catalogs) == 0 && len(cfg.goI18nCatalogs) == 0 {
		return cliConfig{}, errors.New("at least one --catalog or --goi18n file is required")
	}
	if !cfg.check && len(cfg.keys) == 0 {
		return cliConfig{}, errors.New("at least one key is required")
	}
	if _, err := fallbackResolver(cfg.fallbacks); err != nil {
		return cliConfig{}, err
	}
	if cfg.count != "" {
		if _, err := strconv.ParseFloat(cfg.count, 64); err != nil {
			return cliConfig{}, fmt.Errorf("invalid --count %q: %w", cfg.count, err)
		}
	}

	return cfg, nil
}

func buildLogger(level, logEnv string) *zap.Logger {
	var zcfg zap.Config
	if logEnv == "prod" {
		zcfg = zap.NewProductionConfig()
		zcfg.Encoding = "json"
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if err := zcfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(cfg cliConfig, logger *zap.Logger, out io.Writer) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	if cfg.check {
		return checkStore(store, logger, out)
	}

	translator, err := store.Translator(cfg.locale, i18n.WithLogger(logger))
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	for _, key := range cfg.keys {
		result, err := translator.Translate(key, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result)
	}
	return nil
}

func loadStore(cfg cliConfig) (*i18n.StaticStore, error) {
	var loaders []i18n.Loader
	if len(cfg.catalogs) > 0 {
		loaders = append(loaders, i18n.NewFileLoader(cfg.catalogs...))
	}
	if len(cfg.goI18nCatalogs) > 0 {
		loaders = append(loaders, i18n.NewGoI18nLoader(cfg.goI18nCatalogs...))
	}

	resolver, err := fallbackResolver(cfg.fallbacks)
	if err != nil {
		return nil, err
	}

	return i18n.NewStaticStoreFromLoader(i18n.LoaderFunc(func() (i18n.Translations, error) {
		merged := make(i18n.Translations)
		for _, loader := range loaders {
			translations, err := loader.Load()
			if err != nil {
				return nil, err
			}
			for locale, catalog := range translations {
				merged[locale] = i18n.MergeCatalogs(merged[locale], catalog)
			}
		}
		return merged, nil
	}), i18n.WithStoreFallback(resolver))
}

func fallbackResolver(specs []string) (i18n.FallbackResolver, error) {
	if len(specs) == 0 {
		return i18n.ParentFallbackResolver{}, nil
	}

	resolver := make(i18n.StaticFallbackResolver, len(specs))
	for _, spec := range specs {
		locale, chain, ok := strings.Cut(spec, "=")
		locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
		if !ok || locale == "" || strings.TrimSpace(chain) == "" {
			return nil, fmt.Errorf("invalid --fallback %q, want locale=fallback[,fallback]", spec)
		}
		for _, fallback := range strings.Split(chain, ",") {
			resolver[locale] = append(resolver[locale], strings.TrimSpace(fallback))
		}
	}
	return resolver, nil
}

func buildOptions(cfg cliConfig) (i18n.Options, error) {
	if cfg.count == "" && len(cfg.values) == 0 {
		return nil, nil
	}

	opts := make(i18n.Options, len(cfg.values)+1)
	for _, pair := range cfg.values {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", pair)
		}
		opts[name] = parseValue(value)
	}
	if cfg.count != "" {
		opts[i18n.CountKey] = parseValue(cfg.count)
	}
	return opts, nil
}

// parseValue maps "false" to false and numeric text to numbers so they are
// suppressed or locale formatted like programmatic values.
func parseValue(raw string) any {
	if raw == "false" {
		return false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// checkStore fails on plural entries without the other form and warns about
// plural forms the locale uses for counts 0..1000 that an entry does not define.
func checkStore(store *i18n.StaticStore, logger *zap.Logger, out io.Writer) error {
	var errs []error
	rules := i18n.CLDRPluralRules{}

	for _, locale := range store.Locales() {
		catalog, _, _ := store.Catalog(locale)
		if err := catalog.Validate(locale); err != nil {
			errs = append(errs, err)
		}

		used := usedCategories(rules, locale)
		for _, key := range catalog.Keys() {
			entry, _ := catalog.Entry(key)
			if !entry.IsPlural() {
				continue
			}
			for _, category := range used {
				if entry.HasForm(category) {
					continue
				}
				logger.Warn("i18n: plural form not defined",
					zap.String("locale", locale),
					zap.String("key", key),
					zap.String("category", string(category)),
				)
			}
		}
		fmt.Fprintf(out, "%s: %d entries\n", locale, catalog.Len())
	}

	return errors.Join(errs...)
}

func usedCategories(rules i18n.PluralRules, locale string) []i18n.PluralCategory {
	seen := make(map[i18n.PluralCategory]struct{})
	for n := 0; n <= 1000; n++ {
		var category i18n.PluralCategory
		if rules.Supports(locale) {
			category = rules.Select(locale, float64(n))
		} else {
			category = i18n.FallbackPluralCategory(locale, float64(n))
		}
		seen[category] = struct{}{}
	}

	out := make([]i18n.PluralCategory, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
