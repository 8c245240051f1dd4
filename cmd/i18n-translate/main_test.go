package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	i18n "github.com/goliatone/go-frontend-i18n"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		defaults envConfig
		wantErr  bool
		check    func(t *testing.T, cfg cliConfig)
	}{
		{
			name: "catalog and keys",
			args: []string{"-c", "a.json", "--catalog", "b.yaml", "-l", "cy", "-n", "2", "-s", "name=Ada", "filesChosen", "title"},
			check: func(t *testing.T, cfg cliConfig) {
				assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.catalogs)
				assert.Equal(t, "cy", cfg.locale)
				assert.Equal(t, "2", cfg.count)
				assert.Equal(t, []string{"name=Ada"}, cfg.values)
				assert.Equal(t, []string{"filesChosen", "title"}, cfg.keys)
			},
		},
		{
			name:     "environment defaults",
			args:     []string{"title"},
			defaults: envConfig{Locale: "pt", Catalogs: []string{"env.json"}, LogLevel: "warn", LogEnv: "prod"},
			check: func(t *testing.T, cfg cliConfig) {
				assert.Equal(t, []string{"env.json"}, cfg.catalogs)
				assert.Equal(t, "pt", cfg.locale)
				assert.Equal(t, "warn", cfg.logLevel)
				assert.Equal(t, "prod", cfg.logEnv)
			},
		},
		{
			name: "check without keys",
			args: []string{"--goi18n", "active.cy.toml", "--check"},
			check: func(t *testing.T, cfg cliConfig) {
				assert.True(t, cfg.check)
				assert.Empty(t, cfg.keys)
			},
		},
		{name: "no catalogs", args: []string{"title"}, wantErr: true},
		{name: "no keys", args: []string{"-c", "a.json"}, wantErr: true},
		{name: "bad count", args: []string{"-c", "a.json", "-n", "many", "title"}, wantErr: true},
		{name: "bad fallback", args: []string{"-c", "a.json", "--fallback", "cy", "title"}, wantErr: true},
		{name: "unknown flag", args: []string{"-c", "a.json", "--nope", "title"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parseFlags(tc.args, tc.defaults)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, false, parseValue("false"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, "true", parseValue("true"))
	assert.Equal(t, "Ada", parseValue("Ada"))
}

func TestBuildOptions(t *testing.T) {
	opts, err := buildOptions(cliConfig{})
	require.NoError(t, err)
	assert.Nil(t, opts)

	opts, err = buildOptions(cliConfig{count: "3", values: []string{"name=Ada", "empty="}})
	require.NoError(t, err)
	assert.Equal(t, i18n.Options{"count": int64(3), "name": "Ada", "empty": ""}, opts)

	_, err = buildOptions(cliConfig{values: []string{"=x"}})
	assert.Error(t, err)
}

func TestRunTranslates(t *testing.T) {
	tests := []struct {
		name string
		cfg  cliConfig
		want string
	}{
		{
			name: "english plural",
			cfg:  cliConfig{catalogs: []string{fixture("catalog_en.json")}, locale: "en", count: "1500", keys: []string{"filesChosen"}},
			want: "1,500 files chosen\n",
		},
		{
			name: "welsh from go-i18n",
			cfg:  cliConfig{goI18nCatalogs: []string{fixture("active.cy.toml")}, locale: "cy", count: "1", keys: []string{"filesChosen"}},
			want: "1 ffeil wedi'i dewis\n",
		},
		{
			name: "regional locale uses parent catalog",
			cfg:  cliConfig{catalogs: []string{fixture("catalog_pt.toml")}, locale: "pt-BR", count: "0", keys: []string{"filesChosen", "title"}},
			want: "0 ficheiro escolhido\nCarregar um ficheiro\n",
		},
		{
			name: "explicit fallback chain",
			cfg:  cliConfig{catalogs: []string{fixture("catalog_en.json")}, locale: "cy", fallbacks: []string{"cy_GB=cy", "cy=en"}, count: "2", keys: []string{"filesChosen"}},
			want: "2 files chosen\n",
		},
		{
			name: "placeholder values",
			cfg:  cliConfig{goI18nCatalogs: []string{fixture("active.cy.toml")}, locale: "cy", values: []string{"name=Ada"}, keys: []string{"greeting"}},
			want: "Helo Ada\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tc.cfg, zap.NewNop(), &out))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunFailsOnMissingPlaceholderData(t *testing.T) {
	cfg := cliConfig{goI18nCatalogs: []string{fixture("active.cy.toml")}, locale: "cy", keys: []string{"greeting"}}
	err := run(cfg, zap.NewNop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, i18n.ErrConfiguration)
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"cy": {"filesChosen": {"one": "%{count} ffeil", "other": "%{count} ffeil"}},
		"en": {"title": "Upload a file"}
	}`), 0o600))

	core, logs := observer.New(zapcore.WarnLevel)
	var out bytes.Buffer

	require.NoError(t, run(cliConfig{catalogs: []string{path}, check: true}, zap.New(core), &out))
	assert.Equal(t, "cy: 1 entries\nen: 1 entries\n", out.String())

	missing := map[string]bool{}
	for _, entry := range logs.FilterMessage("i18n: plural form not defined").All() {
		missing[entry.ContextMap()["category"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"zero": true, "two": true, "few": true, "many": true}, missing)
}

func TestRunCheckReportsMissingOther(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("en:\n  filesChosen.one: \"%{count} file\"\n"), 0o600))

	err := run(cliConfig{catalogs: []string{path}, check: true}, zap.NewNop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, i18n.ErrPluralOtherRequired)
}

func TestFallbackResolver(t *testing.T) {
	resolver, err := fallbackResolver(nil)
	require.NoError(t, err)
	assert.Equal(t, i18n.ParentFallbackResolver{}, resolver)

	resolver, err = fallbackResolver([]string{"cy_GB=cy, en", "ga=en"})
	require.NoError(t, err)
	assert.Equal(t, i18n.StaticFallbackResolver{"cy-GB": {"cy", "en"}, "ga": {"en"}}, resolver)

	_, err = fallbackResolver([]string{"=en"})
	assert.Error(t, err)
}
