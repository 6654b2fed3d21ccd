package glang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDictionaries(t *testing.T) {
	lw, err := NewGUILangWorker("assets/lang", "en")
	require.NoError(t, err)
	assert.Equal(t, EN, lw.GetLang())
	assert.Equal(t, "Promote pawn to:", lw.T("play.promote"))
	assert.Equal(t, "no.such.key", lw.T("no.such.key"))

	require.NoError(t, lw.SetLang(RU))
	assert.Equal(t, "ru", lw.GetLang().String())
	assert.NotEqual(t, "play.newgame", lw.T("play.newgame"))
}

func TestUnsupportedLang(t *testing.T) {
	_, err := NewGUILangWorker("assets/lang", "de")
	assert.ErrorIs(t, err, ErrUnsupportedLang)
}

func TestDictionariesHaveSameKeys(t *testing.T) {
	en, err := NewGUILangWorker("assets/lang", "en")
	require.NoError(t, err)
	ru, err := NewGUILangWorker("assets/lang", "ru")
	require.NoError(t, err)

	assert.Len(t, ru.dict, len(en.dict))
	for k := range en.dict {
		assert.Contains(t, ru.dict, k)
	}
}
