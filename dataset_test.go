package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogFromDataset(t *testing.T) {
	attrs := map[string]string{
		"data-module":                             "character-count",
		"data-i18n.characters-under-limit.one":    "One character left",
		"data-i18n.characters-under-limit.other":  "%{count} characters left",
		"data-i18n.characters-at-limit":           "No characters left",
		"i18n.textarea-description.other":         "You can enter up to %{count} characters",
		"data-I18N.Words-Over-Limit.other":        "%{count} words too many",
		"data-other.characters-under-limit.other": "ignored",
	}

	catalog, err := CatalogFromDataset(attrs, "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"charactersAtLimit",
		"charactersUnderLimit",
		"textareaDescription",
		"wordsOverLimit",
	}, catalog.Keys())

	entry, ok := catalog.Entry("charactersUnderLimit")
	require.True(t, ok)
	assert.True(t, entry.IsPlural())
	assert.Equal(t, []PluralCategory{PluralOne, PluralOther}, entry.Categories())

	entry, ok = catalog.Entry("charactersAtLimit")
	require.True(t, ok)
	assert.Equal(t, "No characters left", entry.Text())
}

func TestCatalogFromDatasetOverridesConfig(t *testing.T) {
	config := MustParseCatalog(map[string]any{
		"charactersUnderLimit": map[string]string{
			"one":   "You have %{count} character remaining",
			"other": "You have %{count} characters remaining",
		},
	})
	dataset, err := CatalogFromDataset(map[string]string{
		"data-i18n.characters-under-limit.other": "%{count} left",
	}, DefaultDatasetNamespace)
	require.NoError(t, err)

	translator, err := New(MergeCatalogs(config, dataset), WithLocale("en"), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	got, err := translator.Translate("charactersUnderLimit", Options{"count": 10})
	require.NoError(t, err)
	assert.Equal(t, "10 left", got)

	got, err = translator.Translate("charactersUnderLimit", Options{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "You have 1 character remaining", got, "overriding one form keeps the others")
}

func TestCatalogFromDatasetCustomNamespace(t *testing.T) {
	catalog, err := CatalogFromDataset(map[string]string{
		"data-lang.choose-file": "Choose file",
		"data-i18n.choose-file": "ignored",
	}, "lang")
	require.NoError(t, err)
	assert.Equal(t, []string{"chooseFile"}, catalog.Keys())
}

func TestCatalogFromDatasetEmptyKey(t *testing.T) {
	_, err := CatalogFromDataset(map[string]string{"data-i18n.": "x"}, "")
	assert.Error(t, err)
}

func TestKebabToCamel(t *testing.T) {
	tests := map[string]string{
		"files-chosen":           "filesChosen",
		"characters-under-limit": "charactersUnderLimit",
		"title":                  "title",
		"double--dash":           "doubleDash",
		"-leading":               "leading",
	}
	for in, want := range tests {
		assert.Equal(t, want, kebabToCamel(in), in)
	}
}
