// Package font declares the metrics interface the layout engine needs
// from a scaled font face. Loading font files, parsing OpenType tables
// and rasterizing glyphs are collaborator concerns outside this module;
// callers hand in an implementation backed by whatever font stack they
// use (go-text/typesetting, FreeType, a platform text system, ...).
package font

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/go-typeset/stll/core/dimen"
)

// Font is a single scaled font face. All metrics are in 26.6 units.
type Font interface {
	// Ascender returns the distance from the baseline to the top of the
	// font's bounding box, positive upwards.
	Ascender() dimen.Dimen
	// Descender returns the distance from the baseline to the bottom of
	// the font's bounding box, positive upwards (i.e. normally negative).
	Descender() dimen.Dimen
	// UnderlinePosition returns the recommended underline offset from the
	// baseline, positive upwards.
	UnderlinePosition() dimen.Dimen
	// UnderlineThickness returns the recommended underline stroke width.
	UnderlineThickness() dimen.Dimen
	// ContainsGlyph reports whether the face has a glyph for cp, used to
	// decide between U+2010 and U+002D for a synthesized soft hyphen.
	ContainsGlyph(cp rune) bool
	// FaceHandle returns an opaque handle a shaper implementation can use
	// to bind this font, e.g. a *sfnt.Font or a go-text font.Face.
	FaceHandle() interface{}
}

// Set resolves a Font for a given codepoint, picking a glyph-bearing
// fallback by codepoint when the preferred font lacks the glyph.
type Set interface {
	Get(cp rune) Font
}

// Single adapts one Font into a Set that always returns it, regardless
// of codepoint. Convenient for callers with no fallback chain.
type Single struct {
	Font Font
}

// Get implements Set.
func (s Single) Get(cp rune) Font {
	return s.Font
}

// Chain tries each Font in order, falling back to the next one when the
// preceding font does not contain the requested glyph. The last entry is
// used unconditionally if none of the others contain the glyph.
type Chain []Font

// Get implements Set.
func (c Chain) Get(cp rune) Font {
	if len(c) == 0 {
		return nil
	}
	for _, f := range c[:len(c)-1] {
		if f != nil && f.ContainsGlyph(cp) {
			return f
		}
	}
	return c[len(c)-1]
}

// Cached memoizes an underlying Set's fallback resolution per codepoint.
// Run segmentation calls Set.Get once per codepoint boundary, so a long
// run of repeated glyphs (digits, punctuation, CJK-free Latin prose)
// otherwise re-walks the whole fallback Chain on every boundary; Cached
// remembers the answer in insertion order, mirroring the original
// implementation's hb_ft_fonts lookup-by-key cache.
type Cached struct {
	Set Set
	m   *linkedhashmap.Map
}

// NewCached wraps set with a per-codepoint resolution cache.
func NewCached(set Set) *Cached {
	return &Cached{Set: set, m: linkedhashmap.New()}
}

// Get implements Set.
func (c *Cached) Get(cp rune) Font {
	if v, found := c.m.Get(cp); found {
		f, _ := v.(Font)
		return f
	}
	f := c.Set.Get(cp)
	c.m.Put(cp, f)
	return f
}
