// Package attrs holds the per-codepoint attributes a caller attaches to
// the logical string being laid out: font, color, language, shadows,
// underline, baseline shift, inline objects and hyperlinks.
package attrs

import (
	"image/color"

	"golang.org/x/text/language"

	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
)

// Flags is a bit set of boolean codepoint attributes.
type Flags uint8

// Underline requests an underline rectangle under the run's advance.
const Underline Flags = 1 << 0

// Shadow is one drop-shadow layer behind a glyph or underline.
type Shadow struct {
	DX, DY dimen.Dimen
	Color  color.RGBA
	Blur   dimen.Dimen
}

// InlineObject is an externally supplied, pre-rendered block of drawing
// commands treated as a single atomic glyph-like cluster, e.g. an image.
type InlineObject interface {
	// Height is the object's height above its baseline-anchored origin.
	Height() dimen.Dimen
	// Right is the object's advance width.
	Right() dimen.Dimen
	// Data returns the object's own draw commands, in local coordinates.
	Data() []command.Command
}

// Attributes describes the rendering of a single codepoint.
type Attributes struct {
	Fonts         font.Set
	Color         color.RGBA
	Lang          language.Tag
	BaselineShift dimen.Dimen
	Inline        InlineObject // nil unless this codepoint is an inline object
	Link          int          // 0 = none, else 1..N index into Properties.Links
	Shadows       []Shadow
	Flags         Flags
}

// Underlined reports whether the Underline flag is set.
func (a Attributes) Underlined() bool {
	return a.Flags&Underline != 0
}

// FontFor resolves the font to use for codepoint cp under these
// attributes, applying the fallback chain in Fonts.
func (a Attributes) FontFor(cp rune) font.Font {
	if a.Fonts == nil {
		return nil
	}
	return a.Fonts.Get(cp)
}

// Index is a (possibly sparse) per-codepoint attribute lookup over the
// original, un-normalized logical string.
type Index interface {
	Attribute(i int) Attributes
	HasAttribute(i int) bool
}

// Slice is a dense Index backed by a plain slice, indices outside its
// bounds report HasAttribute false and return the zero Attributes.
type Slice []Attributes

// Attribute implements Index.
func (s Slice) Attribute(i int) Attributes {
	if i < 0 || i >= len(s) {
		return Attributes{}
	}
	return s[i]
}

// HasAttribute implements Index.
func (s Slice) HasAttribute(i int) bool {
	return i >= 0 && i < len(s)
}

var _ Index = Slice(nil)
