// Package hbshape adapts github.com/go-text/typesetting's HarfBuzz-
// derived shaping engine (the same OpenType shaping machinery exercised
// by boxesandglue/textshape) to this module's shaping.Shaper interface.
// It is the shaper callers should wire in for production use; tests in
// this module use the lighter core/shaping/monospace shaper instead so
// they do not depend on a loaded font file.
package hbshape

import (
	"golang.org/x/image/math/fixed"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	gotextlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/go-typeset/stll/core/dimen"
	stllshaping "github.com/go-typeset/stll/core/shaping"
)

// Face is the subset of go-text/typesetting's font.Face that FaceHandle
// must return for Shaper to bind a run to it.
type Face = gotext.Face

// Shaper shapes runs with go-text/typesetting's HarfBuzz-derived shaper.
type Shaper struct {
	hb   shaping.HarfbuzzShaper
	size fixed.Int26_6
}

// New creates a Shaper that shapes at the given point size (26.6 units).
func New(size dimen.Dimen) *Shaper {
	return &Shaper{size: size.Fixed()}
}

// Shape implements shaping.Shaper.
func (s *Shaper) Shape(text []rune, p stllshaping.Params) (stllshaping.Output, error) {
	if len(text) == 0 {
		return stllshaping.Output{}, nil
	}
	face, _ := p.Font.FaceHandle().(Face)
	dir := di.DirectionLTR
	if p.Direction == stllshaping.RightToLeft {
		dir = di.DirectionRTL
	}
	script, _ := gotextlang.ParseScript(p.Script.String())
	in := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: dir,
		Face:      face,
		Size:      s.size,
		Script:    script,
		Language:  gotextlang.NewLanguage(p.Language.String()),
	}
	out := s.hb.Shape(in)
	if len(out.Glyphs) == 0 {
		return stllshaping.Output{}, nil
	}
	glyphs := make([]stllshaping.Glyph, len(out.Glyphs))
	for i, g := range out.Glyphs {
		glyphs[i] = stllshaping.Glyph{
			ClusterIndex: g.ClusterIndex,
			GID:          uint32(g.GlyphID),
			XAdvance:     dimen.FromFixed(g.XAdvance),
			YAdvance:     dimen.FromFixed(g.YAdvance),
			XOffset:      dimen.FromFixed(g.XOffset),
			YOffset:      dimen.FromFixed(g.YOffset),
		}
	}
	return stllshaping.Output{Glyphs: glyphs}, nil
}

var _ stllshaping.Shaper = (*Shaper)(nil)
