package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParentFallbackResolver(t *testing.T) {
	resolver := ParentFallbackResolver{}

	assert.Equal(t, []string{"pt"}, resolver.Resolve("pt_BR"))
	assert.Equal(t, []string{"de"}, resolver.Resolve("de-AT"))
	assert.Empty(t, resolver.Resolve("cy"))
	assert.Empty(t, resolver.Resolve(""))
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := StaticFallbackResolver{
		"cy":    {"en", "cy", ""},
		"cy-GB": {"cy", "en-GB"},
	}

	assert.Equal(t, []string{"en"}, resolver.Resolve("cy"))
	assert.Equal(t, []string{"cy", "en-GB"}, resolver.Resolve("cy_GB"))
	assert.Equal(t, []string{"pt"}, resolver.Resolve("pt-PT"))
}

func TestStaticStoreWithFallbackResolver(t *testing.T) {
	store := NewStaticStore(Translations{
		"en": MustParseCatalog(map[string]any{
			"filesChosen": map[string]string{
				"one":   "%{count} file chosen",
				"other": "%{count} files chosen",
			},
		}),
	}, WithStoreFallback(StaticFallbackResolver{"cy": {"en"}}), nil)

	catalog, found, ok := store.Catalog("cy")
	require.True(t, ok)
	assert.Equal(t, "en", found)
	assert.True(t, catalog.Has("filesChosen"))

	translator, err := store.Translator("cy", WithLogger(zap.NewNop()))
	require.NoError(t, err)

	// Welsh rules pick "two", which the English catalog lacks.
	got, err := translator.Translate("filesChosen", Options{"count": 2})
	require.NoError(t, err)
	assert.Equal(t, "2 files chosen", got)

	_, _, ok = store.Catalog("de")
	assert.False(t, ok)
}
