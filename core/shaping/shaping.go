// Package shaping declares the text-shaping collaborator: it turns a
// run of code-points sharing one font, direction, script and language
// into a sequence of positioned glyphs. Actual shaping (OpenType GSUB/
// GPOS, complex scripts, ...) is implemented outside this module; see
// the hbshape and monospace subpackages for two concrete adapters.
package shaping

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
)

// Direction is the direction to shape a run in.
type Direction int

// Direction values. The run builder derives this from embedding-level
// parity: even levels shape left-to-right, odd levels right-to-left.
const (
	LeftToRight Direction = iota
	RightToLeft
)

// Glyph is one shaped glyph, in design space (26.6 units already scaled
// to the font's point size).
type Glyph struct {
	// ClusterIndex is the index, within the text slice passed to Shape,
	// of the first code-point that produced this glyph.
	ClusterIndex int
	GID          uint32
	XAdvance     dimen.Dimen
	YAdvance     dimen.Dimen
	XOffset      dimen.Dimen
	YOffset      dimen.Dimen
}

func (g Glyph) String() string {
	return fmt.Sprintf("(gid=%d cluster=%d advance=%s)", g.GID, g.ClusterIndex, g.XAdvance)
}

// Params collects the shaping parameters for one run.
type Params struct {
	Font      font.Font
	Direction Direction
	Script    language.Script
	Language  language.Tag
}

// Output is the result of shaping one run.
type Output struct {
	Glyphs []Glyph
}

// Shaper shapes a slice of code-points that already share a single
// font/direction/script/language into positioned glyphs. The run builder
// wraps an error returned by Shape as ShaperFailure, also fails with
// ShaperFailure if shaping non-empty text yields no glyphs, and fails
// with NonLinearScript if any glyph reports a non-zero YAdvance, since
// this engine only supports horizontal, line-based scripts.
type Shaper interface {
	Shape(text []rune, p Params) (Output, error)
}
