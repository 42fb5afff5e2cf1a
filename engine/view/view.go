// Package view builds the normalized view of a paragraph's codepoints
// that the rest of the pipeline operates on: bidi formatting characters
// stripped out, with an index back to the original attribute positions,
// one embedding level per retained position, and slots for the
// line-break classification and hyphenation mask that later stages fill
// in (see spec section 4.1).
package view

import "github.com/go-typeset/stll/core/attrs"

// Break classes for the trailing edge of a normalized position.
type Break byte

// Break classification values.
const (
	NoBreak Break = iota
	AllowBreak
	MustBreak
	InsideAChar
)

const (
	lre = 0x202A // LEFT-TO-RIGHT EMBEDDING
	rle = 0x202B // RIGHT-TO-LEFT EMBEDDING
	pdf = 0x202C // POP DIRECTIONAL FORMATTING
)

func isBidiControl(r rune) bool {
	return r == lre || r == rle || r == pdf
}

// View is the normalized codepoint stream plus the per-position data the
// pipeline accumulates as it runs.
type View struct {
	Runes      []rune  // normalized text, bidi controls removed
	Idx        []int   // Idx[i] is the original index of Runes[i]
	Levels     []int8  // embedding level per normalized position
	Linebreaks []Break // line-break class per normalized position

	attr    attrs.Index
	hyphens []bool // lazily allocated on first SetHyphen call
}

// New strips {U+202A, U+202B, U+202C} from original, building the index
// map and projecting the per-original-codepoint embedding levels (which
// must already have been computed over the un-stripped string) through
// it. linebreaks is zero-allocated at the normalized length.
func New(original []rune, levels []int8, attr attrs.Index) *View {
	v := &View{attr: attr}
	v.Runes = make([]rune, 0, len(original))
	v.Idx = make([]int, 0, len(original))
	v.Levels = make([]int8, 0, len(original))
	for i, r := range original {
		if isBidiControl(r) {
			continue
		}
		v.Runes = append(v.Runes, r)
		v.Idx = append(v.Idx, i)
		var lvl int8
		if i < len(levels) {
			lvl = levels[i]
		}
		v.Levels = append(v.Levels, lvl)
	}
	v.Linebreaks = make([]Break, len(v.Runes))
	return v
}

// Len returns the number of normalized codepoints.
func (v *View) Len() int { return len(v.Runes) }

// Rune returns the normalized codepoint at i.
func (v *View) Rune(i int) rune { return v.Runes[i] }

// Attribute returns the original attributes for normalized position i.
func (v *View) Attribute(i int) attrs.Attributes {
	return v.attr.Attribute(v.Idx[i])
}

// HasAttribute reports whether normalized position i has an attribute
// entry in the original (possibly sparse) index.
func (v *View) HasAttribute(i int) bool {
	return v.attr.HasAttribute(v.Idx[i])
}

// Level returns the embedding level at normalized position i.
func (v *View) Level(i int) int8 { return v.Levels[i] }

// Linebreak returns the line-break class at normalized position i.
func (v *View) Linebreak(i int) Break { return v.Linebreaks[i] }

// SetHyphen marks i as a hyphenation point, allocating the mask lazily.
func (v *View) SetHyphen(i int) {
	if v.hyphens == nil {
		v.hyphens = make([]bool, len(v.Runes))
	}
	v.hyphens[i] = true
}

// Hyphen reports whether i is marked as a hyphenation point.
func (v *View) Hyphen(i int) bool {
	return i < len(v.hyphens) && v.hyphens[i]
}
