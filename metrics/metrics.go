// Package metrics exports translation counters to Prometheus through an
// i18n.TranslationHook.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	i18n "github.com/goliatone/go-frontend-i18n"
)

// Hook counts translations by locale and outcome.
type Hook struct {
	translations    *prometheus.CounterVec
	missing         *prometheus.CounterVec
	pluralFallbacks *prometheus.CounterVec
	errors          *prometheus.CounterVec
}

var _ i18n.TranslationHook = (*Hook)(nil)

// NewHook creates the counters and registers them with reg. Collectors that
// are already registered are reused.
func NewHook(reg prometheus.Registerer, namespace string) (*Hook, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	h := &Hook{
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "i18n",
			Name:      "translations_total",
			Help:      "Translate calls by locale.",
		}, []string{"locale"}),
		missing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "i18n",
			Name:      "missing_translations_total",
			Help:      "Keys rendered as themselves because the catalog has no entry.",
		}, []string{"locale"}),
		pluralFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "i18n",
			Name:      "plural_fallbacks_total",
			Help:      "Plural lookups that fell back to the other form.",
		}, []string{"locale", "requested"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "i18n",
			Name:      "errors_total",
			Help:      "Translate calls that failed with a configuration error.",
		}, []string{"locale"}),
	}

	var err error
	if h.translations, err = register(reg, h.translations); err != nil {
		return nil, err
	}
	if h.missing, err = register(reg, h.missing); err != nil {
		return nil, err
	}
	if h.pluralFallbacks, err = register(reg, h.pluralFallbacks); err != nil {
		return nil, err
	}
	if h.errors, err = register(reg, h.errors); err != nil {
		return nil, err
	}

	return h, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (h *Hook) BeforeTranslate(*i18n.HookContext) {}

func (h *Hook) AfterTranslate(ctx *i18n.HookContext) {
	if ctx == nil {
		return
	}

	h.translations.WithLabelValues(ctx.Locale).Inc()

	if ctx.Error != nil {
		h.errors.WithLabelValues(ctx.Locale).Inc()
		return
	}

	if ctx.TranslationMissing() {
		h.missing.WithLabelValues(ctx.Locale).Inc()
	}

	if meta, ok := ctx.PluralMetadata(); ok && meta.Missing != nil {
		h.pluralFallbacks.WithLabelValues(ctx.Locale, string(meta.Missing.Requested)).Inc()
	}
}
