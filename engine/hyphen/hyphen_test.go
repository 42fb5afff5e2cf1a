package hyphen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/engine/view"
)

func TestTrieDictExceptionLookup(t *testing.T) {
	d := NewTrieDict("hy-phen-ation")
	weights := d.Hyphenate([]rune("hyphenation"))
	require.Len(t, weights, len([]rune("hyphenation"))-1)
	assert.Equal(t, 1, weights[1]) // after "hy"
	assert.Equal(t, 1, weights[5]) // after "hyphen"
}

func TestTrieDictMissesUnknownWord(t *testing.T) {
	d := NewTrieDict("hy-phen-ation")
	assert.Nil(t, d.Hyphenate([]rune("banana")))
}

func TestPlaceSkipsWordsWithManualSoftHyphen(t *testing.T) {
	text := []rune{'h', 'y', 0x00AD, 'p', 'h', 'e', 'n'}
	v := view.New(text, make([]int8, len(text)), attrs.Slice(nil))
	dicts := MapDicts{"": NewTrieDict("hy-phen")}
	require.NoError(t, Place(v, dicts, 1))
	for i := range text {
		assert.False(t, v.Hyphen(i))
	}
}

func TestPlaceMarksOddWeightBoundaries(t *testing.T) {
	text := []rune("hyphen")
	v := view.New(text, make([]int8, len(text)), attrs.Slice(nil))
	dicts := MapDicts{"": NewTrieDict("hy-phen")}
	require.NoError(t, Place(v, dicts, 1))
	assert.True(t, v.Hyphen(1))
	assert.False(t, v.Hyphen(0))
}

func TestRequireDictErrorsWhenNoneConfigured(t *testing.T) {
	err := RequireDict(nil, true)
	assert.Error(t, err)
}

func TestLangOfFallsBackToUnd(t *testing.T) {
	v := view.New([]rune("x"), make([]int8, 1), attrs.Slice(nil))
	assert.Equal(t, language.Und, LangOf(v, 0))
}
