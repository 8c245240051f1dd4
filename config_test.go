package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(WithEnvironment(StaticLanguage("")))
	require.NoError(t, err)

	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.IsType(t, CLDRPluralRules{}, cfg.PluralRules)
	assert.IsType(t, CLDRNumberFormatter{}, cfg.NumberFormatter)
	assert.NotNil(t, cfg.Logger)
}

func TestNewConfigLocaleResolution(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "explicit locale wins",
			opts: []Option{WithLocale("en_GB"), WithEnvironment(StaticLanguage("cy"))},
			want: "en-GB",
		},
		{
			name: "environment language",
			opts: []Option{WithEnvironment(StaticLanguage("cy_GB"))},
			want: "cy-GB",
		},
		{
			name: "language func",
			opts: []Option{WithEnvironment(LanguageFunc(func() string { return "pt" }))},
			want: "pt",
		},
		{
			name: "blank environment",
			opts: []Option{WithEnvironment(StaticLanguage("  "))},
			want: DefaultLocale,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Locale)
		})
	}
}

func TestNewConfigNilCapabilities(t *testing.T) {
	cfg, err := NewConfig(WithLocale("en"), WithPluralRules(nil), WithNumberFormatter(nil), nil)
	require.NoError(t, err)
	assert.Nil(t, cfg.PluralRules)
	assert.Nil(t, cfg.NumberFormatter)

	translator, err := cfg.BuildTranslator(MustParseCatalog(map[string]any{
		"filesChosen": map[string]string{"one": "%{count} file", "other": "%{count} files"},
	}))
	require.NoError(t, err)

	got, err := translator.Translate("filesChosen", Options{"count": 1000})
	require.NoError(t, err)
	assert.Equal(t, "1000 files", got)
}

func TestNewConfigRejectsNilLogger(t *testing.T) {
	_, err := NewConfig(WithLogger(nil))
	assert.Error(t, err)
}

func TestNewConfigPropagatesOptionErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewConfig(func(*Config) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestBuildTranslatorNilCatalog(t *testing.T) {
	cfg, err := NewConfig(WithLocale("cy"), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	translator, err := cfg.BuildTranslator(nil)
	require.NoError(t, err)
	assert.Equal(t, "cy", translator.Locale())
	assert.Equal(t, "title", translator.T("title", nil))

	var nilCfg *Config
	_, err = nilCfg.BuildTranslator(nil)
	assert.Error(t, err)
}
