package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shaping/monospace"
	"github.com/go-typeset/stll/engine/breaks"
	"github.com/go-typeset/stll/engine/view"
)

type testFont struct{}

func (testFont) Ascender() dimen.Dimen           { return 10 * dimen.PX }
func (testFont) Descender() dimen.Dimen          { return -2 * dimen.PX }
func (testFont) UnderlinePosition() dimen.Dimen  { return -1 * dimen.PX }
func (testFont) UnderlineThickness() dimen.Dimen { return dimen.PX / 2 }
func (testFont) ContainsGlyph(cp rune) bool      { return true }
func (testFont) FaceHandle() interface{}         { return nil }

func attrsFor(n int) attrs.Slice {
	a := make(attrs.Slice, n)
	for i := range a {
		a[i] = attrs.Attributes{Fonts: font.Single{Font: testFont{}}}
	}
	return a
}

type testInline struct {
	h, w dimen.Dimen
	data []command.Command
}

func (o testInline) Height() dimen.Dimen     { return o.h }
func (o testInline) Right() dimen.Dimen      { return o.w }
func (o testInline) Data() []command.Command { return o.data }

func TestBuildSegmentsOnSpaceAndBreaksLastsShape(t *testing.T) {
	text := []rune("one two")
	v := view.New(text, make([]int8, len(text)), attrsFor(len(text)))
	breaks.Analyze(v)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)
	require.NotEmpty(t, runs)
	assert.True(t, runs[len(runs)-1].ForcedBreak)
}

func TestBuildProducesOneSpaceRunForEachSpace(t *testing.T) {
	text := []rune("a b")
	v := view.New(text, make([]int8, len(text)), attrsFor(len(text)))
	breaks.Analyze(v)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	spaces := 0
	for _, r := range runs {
		if r.Space {
			spaces++
		}
	}
	assert.Equal(t, 1, spaces)
}

func TestBuildInsertsSyntheticShyRunAfterHyphenationPoint(t *testing.T) {
	text := []rune("hyphen")
	v := view.New(text, make([]int8, len(text)), attrsFor(len(text)))
	breaks.Analyze(v)
	v.SetHyphen(1)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	foundShy := false
	for _, r := range runs {
		if r.Shy {
			foundShy = true
		}
	}
	assert.True(t, foundShy)
}

func TestBuildSyntheticShyRunShapesDashGlyphNotRawSoftHyphen(t *testing.T) {
	text := []rune("hyphen")
	v := view.New(text, make([]int8, len(text)), attrsFor(len(text)))
	breaks.Analyze(v)
	v.SetHyphen(1)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	var shy *Run
	for i := range runs {
		if runs[i].Shy {
			shy = &runs[i]
		}
	}
	require.NotNil(t, shy)

	var glyph command.Command
	found := false
	for _, lc := range shy.Commands {
		if lc.Command.Tag == command.Glyph {
			glyph = lc.Command
			found = true
		}
	}
	require.True(t, found, "shy run produced no glyph command")
	assert.NotEqual(t, rune(0x00AD), glyph.CodePoint)
	assert.Equal(t, rune(0x2010), glyph.CodePoint) // testFont.ContainsGlyph is unconditionally true
}

type testFontNoDash struct{ testFont }

func (testFontNoDash) ContainsGlyph(cp rune) bool { return cp != 0x2010 }

func TestBuildSyntheticShyRunFallsBackToAsciiHyphenWhenFontLacksDash(t *testing.T) {
	text := []rune("hyphen")
	a := make(attrs.Slice, len(text))
	for i := range a {
		a[i] = attrs.Attributes{Fonts: font.Single{Font: testFontNoDash{}}}
	}
	v := view.New(text, make([]int8, len(text)), a)
	breaks.Analyze(v)
	v.SetHyphen(1)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	var shy *Run
	for i := range runs {
		if runs[i].Shy {
			shy = &runs[i]
		}
	}
	require.NotNil(t, shy)

	var glyph command.Command
	found := false
	for _, lc := range shy.Commands {
		if lc.Command.Tag == command.Glyph {
			glyph = lc.Command
			found = true
		}
	}
	require.True(t, found, "shy run produced no glyph command")
	assert.Equal(t, rune(0x002D), glyph.CodePoint)
}

func TestBuildInlineObjectShiftsEmbeddedCommandsAndSetsAscenderDescender(t *testing.T) {
	text := []rune("a*b")
	a := attrsFor(len(text))
	obj := testInline{
		h: 20 * dimen.PX,
		w: 30 * dimen.PX,
		data: []command.Command{
			{Tag: command.Rect, X: 5 * dimen.PX, Y: 3 * dimen.PX, W: 10 * dimen.PX, H: 10 * dimen.PX},
		},
	}
	a[1] = attrs.Attributes{Inline: obj, BaselineShift: 2 * dimen.PX}
	v := view.New(text, make([]int8, len(text)), a)
	breaks.Analyze(v)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	var inl *Run
	for i := range runs {
		if runs[i].Dx == 30*dimen.PX {
			inl = &runs[i]
		}
	}
	require.NotNil(t, inl)
	assert.Equal(t, 22*dimen.PX, inl.Ascender)  // height + baseline_shift
	assert.Equal(t, -2*dimen.PX, inl.Descender) // height - ascender == -baseline_shift

	var shifted command.Command
	found := false
	for _, lc := range inl.Commands {
		if lc.Command.Tag == command.Rect && lc.Command.W == 10*dimen.PX {
			shifted = lc.Command
			found = true
		}
	}
	require.True(t, found, "embedded command was not appended")
	assert.Equal(t, 5*dimen.PX, shifted.X) // run-local dx offset is zero
	assert.Equal(t, 3*dimen.PX-(22*dimen.PX-dimen.SP), shifted.Y)
}

func TestBuildUnderlineRectangleGeometry(t *testing.T) {
	text := []rune("ab")
	a := attrsFor(len(text))
	for i := range a {
		a[i].Flags |= attrs.Underline
	}
	v := view.New(text, make([]int8, len(text)), a)
	breaks.Analyze(v)

	runs, err := Build(v, props.Properties{}, monospace.New(6*dimen.PX))
	require.NoError(t, err)

	var underline command.Command
	found := false
	for _, r := range runs {
		for _, lc := range r.Commands {
			if lc.Command.Tag == command.Rect {
				underline = lc.Command
				found = true
			}
		}
	}
	require.True(t, found, "no underline rectangle emitted")

	f := testFont{}
	assert.Equal(t, -(f.UnderlinePosition() + f.UnderlineThickness()/2), underline.Y)
	assert.Equal(t, dimen.Max(dimen.PX, f.UnderlineThickness()), underline.H)
	assert.Equal(t, 6*dimen.PX+dimen.PX, underline.W) // one glyph's x_advance + 64
}
