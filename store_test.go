package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticStoreCatalog(t *testing.T) {
	store := NewStaticStore(Translations{
		"en":    MustParseCatalog(map[string]any{"title": "Welcome"}),
		"cy":    MustParseCatalog(map[string]any{"title": "Croeso"}),
		"pt":    MustParseCatalog(map[string]any{"title": "Bem-vindo"}),
		"en_GB": MustParseCatalog(map[string]any{"colour": "colour"}),
		"fr":    nil,
	})

	assert.Equal(t, []string{"cy", "en", "en-GB", "pt"}, store.Locales())

	tests := []struct {
		locale    string
		wantFound string
		ok        bool
	}{
		{locale: "cy", wantFound: "cy", ok: true},
		{locale: "cy-GB", wantFound: "cy", ok: true},
		{locale: "en_GB", wantFound: "en-GB", ok: true},
		{locale: "pt-BR", wantFound: "pt", ok: true},
		{locale: "fr", ok: false},
		{locale: "de", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			catalog, found, ok := store.Catalog(tc.locale)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.wantFound, found)
			if ok {
				assert.NotNil(t, catalog)
			}
		})
	}
}

func TestStaticStoreTranslator(t *testing.T) {
	store := NewStaticStore(Translations{
		"pt": MustParseCatalog(map[string]any{
			"files": map[string]any{"one": "%{count} ficheiro", "other": "%{count} ficheiros"},
		}),
	})

	// pt-PT keeps its own rules: 0 is other in pt-PT, one in pt
	translator, err := store.Translator("pt-PT", WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, "pt-PT", translator.Locale())

	got, err := translator.Translate("files", Options{"count": 0})
	require.NoError(t, err)
	assert.Equal(t, "0 ficheiros", got)

	unknown, err := store.Translator("de", WithLogger(zap.NewNop()))
	require.NoError(t, err)
	got, err = unknown.Translate("files", Options{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "files", got)
}

func TestNewStaticStoreFromLoader(t *testing.T) {
	called := false
	loader := LoaderFunc(func() (Translations, error) {
		called = true
		return Translations{
			"en": MustParseCatalog(map[string]any{"home.title": "Welcome"}),
		}, nil
	})

	store, err := NewStaticStoreFromLoader(loader)
	require.NoError(t, err)
	assert.True(t, called)

	catalog, _, ok := store.Catalog("en")
	require.True(t, ok)
	assert.True(t, catalog.Has("home.title"))
}

func TestNewStaticStoreFromLoaderErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewStaticStoreFromLoader(LoaderFunc(func() (Translations, error) {
		return nil, boom
	}))
	assert.ErrorIs(t, err, boom)

	store, err := NewStaticStoreFromLoader(nil)
	require.NoError(t, err)
	assert.Empty(t, store.Locales())
}
