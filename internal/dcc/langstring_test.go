package dcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLangString_RejectsBlankCode(t *testing.T) {
	_, err := NewLangString(map[string]string{"": "value"})
	require.Error(t, err)

	_, err = NewLangString(map[string]string{"  ": "value"})
	require.Error(t, err)

	ls, err := NewLangString(map[string]string{"id": "nilai", "en": "value"})
	require.NoError(t, err)
	assert.Equal(t, "nilai", ls.Get("id"))
	assert.Equal(t, "value", ls.Get("en"))
}

func TestLangString_HasAny(t *testing.T) {
	tests := []struct {
		name string
		ls   LangString
		want bool
	}{
		{"nil map", nil, false},
		{"empty map", LangString{}, false},
		{"only blank values", LangString{"id": "", "en": "   "}, false},
		{"one value", LangString{"id": "nilai"}, true},
		{"value among blanks", LangString{"id": "", "en": "value"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ls.HasAny())
		})
	}
}

func TestLangString_Missing(t *testing.T) {
	ls := LangString{"id": "nilai", "en": "  ", "fr": "valeur"}

	// Order follows the input langs, not the map.
	missing := ls.Missing([]string{"en", "id", "de"})
	assert.Equal(t, []string{"en", "de"}, missing)

	assert.Nil(t, ls.Missing([]string{"id", "fr"}))
	assert.Nil(t, ls.Missing(nil))
}

func TestLangString_MissingKeepsDuplicates(t *testing.T) {
	ls := LangString{"id": "nilai"}
	missing := ls.Missing([]string{"en", "en"})
	assert.Equal(t, []string{"en", "en"}, missing)
}

func TestLangString_Clone(t *testing.T) {
	orig := LangString{"id": "nilai"}
	clone := orig.Clone()
	clone["id"] = "lain"
	clone["en"] = "other"

	assert.Equal(t, "nilai", orig.Get("id"))
	assert.Equal(t, "", orig.Get("en"))

	assert.Nil(t, LangString(nil).Clone())
}

func TestLangString_Languages_Sorted(t *testing.T) {
	ls := LangString{"id": "a", "en": "b", "de": ""}
	assert.Equal(t, []string{"de", "en", "id"}, ls.Languages())
}

func TestValidLanguageCode(t *testing.T) {
	assert.True(t, ValidLanguageCode("id"))
	assert.True(t, ValidLanguageCode("en"))
	assert.True(t, ValidLanguageCode("en-US"))
	assert.False(t, ValidLanguageCode(""))
	assert.False(t, ValidLanguageCode("not a language"))
}
