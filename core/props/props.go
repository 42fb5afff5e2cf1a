// Package props holds paragraph-level layout properties: direction,
// alignment, indent, hyphenation and optimizer toggles, and the link
// URL table referenced by Attributes.Link.
package props

import (
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
)

// Alignment selects how a line's runs are positioned between the shape's
// left and right edges.
type Alignment int

// Alignment values.
const (
	Left Alignment = iota
	Right
	Center
	JustifyLeft
	JustifyRight
)

// Properties holds the paragraph-level layout configuration.
type Properties struct {
	// LTR is the paragraph's base direction; false means RTL.
	LTR bool
	// Align selects the alignment/justification mode.
	Align Alignment
	// Indent is applied to the first line only, in 26.6 units.
	Indent dimen.Dimen
	// Hyphenate enables soft-hyphen insertion via a language dictionary.
	Hyphenate bool
	// OptimizeLinebreaks selects the Knuth-Plass-style breaker over the
	// greedy one.
	OptimizeLinebreaks bool
	// UnderlineFont, if set, supplies uniform underline metrics instead
	// of each run's own font.
	UnderlineFont font.Font
	// Links is the paragraph-level URL table; Attributes.Link indexes
	// into it as 1..len(Links).
	Links []string
}
