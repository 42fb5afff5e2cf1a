package stll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shape"
	"github.com/go-typeset/stll/core/shaping/monospace"
)

type testFont struct{}

func (testFont) Ascender() dimen.Dimen           { return 10 * dimen.PX }
func (testFont) Descender() dimen.Dimen          { return -2 * dimen.PX }
func (testFont) UnderlinePosition() dimen.Dimen  { return -1 * dimen.PX }
func (testFont) UnderlineThickness() dimen.Dimen { return dimen.PX / 2 }
func (testFont) ContainsGlyph(cp rune) bool      { return true }
func (testFont) FaceHandle() interface{}         { return nil }

func attrsFor(text string) attrs.Slice {
	r := []rune(text)
	a := make(attrs.Slice, len(r))
	for i := range a {
		a[i] = attrs.Attributes{Fonts: font.Single{Font: testFont{}}}
	}
	return a
}

func TestLayoutParagraphGreedyEndToEnd(t *testing.T) {
	text := []rune("the quick brown fox jumps over the lazy dog")
	tl, err := LayoutParagraph(text, attrsFor(string(text)), shape.Rectangle{L: 0, R: 80 * dimen.PX},
		props.Properties{LTR: true}, monospace.New(6*dimen.PX), nil, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, tl.Commands)
	assert.Greater(t, tl.Height(), dimen.Dimen(0))
}

func TestLayoutParagraphOptimizeEndToEnd(t *testing.T) {
	text := []rune("the quick brown fox jumps over the lazy dog")
	tl, err := LayoutParagraph(text, attrsFor(string(text)), shape.Rectangle{L: 0, R: 80 * dimen.PX},
		props.Properties{LTR: true, OptimizeLinebreaks: true}, monospace.New(6*dimen.PX), nil, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, tl.Commands)
}

func TestLayoutParagraphHyphenateWithoutDictFails(t *testing.T) {
	text := []rune("hyphenation")
	_, err := LayoutParagraph(text, attrsFor(string(text)), shape.Rectangle{L: 0, R: 80 * dimen.PX},
		props.Properties{LTR: true, Hyphenate: true}, monospace.New(6*dimen.PX), nil, 0)
	require.Error(t, err)
}

func TestLayoutParagraphEmptyText(t *testing.T) {
	tl, err := LayoutParagraph(nil, attrs.Slice(nil), shape.Rectangle{L: 0, R: 80 * dimen.PX},
		props.Properties{LTR: true}, monospace.New(6*dimen.PX), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, tl.Commands)
}
