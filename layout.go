// Package stll lays out a single paragraph of attributed Unicode text
// into a flat, already-positioned stream of draw commands: it resolves
// bidirectional embedding levels, finds line-break and hyphenation
// points, segments and shapes runs, breaks the runs into lines (greedily
// or with a Knuth-Plass-style optimizer), and assembles each line in
// visual order with alignment, justification and link-rectangle
// tracking applied.
package stll

import (
	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shape"
	"github.com/go-typeset/stll/core/shaping"
	"github.com/go-typeset/stll/engine/bidiresolve"
	"github.com/go-typeset/stll/engine/breaks"
	"github.com/go-typeset/stll/engine/hyphen"
	"github.com/go-typeset/stll/engine/line"
	"github.com/go-typeset/stll/engine/run"
	"github.com/go-typeset/stll/engine/view"
)

// LayoutParagraph lays out text (indexed 1:1 by attr) into sh, a shape
// describing the available horizontal space at every vertical position,
// using p for direction/alignment/indent/hyphenation and a Shaper for
// turning runs into glyphs. ystart is the y-coordinate the first line's
// top is measured from. dicts may be nil when p.Hyphenate is false; with
// p.Hyphenate set and dicts nil, LayoutParagraph fails with an
// UnsupportedHyphenation error (see hyphen.RequireDict).
func LayoutParagraph(text []rune, attr attrs.Index, sh shape.Shape, p props.Properties, shaper shaping.Shaper, dicts hyphen.Dicts, ystart dimen.Dimen) (*command.TextLayout, error) {
	levels, err := bidiresolve.Levels(text, p.LTR)
	if err != nil {
		return nil, err
	}

	v := view.New(text, levels, attr)

	breaks.Analyze(v)

	if p.Hyphenate {
		if err := hyphen.RequireDict(dicts, p.Hyphenate); err != nil {
			return nil, err
		}
		if err := hyphen.Place(v, dicts, 4); err != nil {
			return nil, err
		}
	}

	runs, err := run.Build(v, p, shaper)
	if err != nil {
		return nil, err
	}

	if p.OptimizeLinebreaks {
		return line.Optimize(runs, sh, p, ystart), nil
	}
	return line.Greedy(runs, sh, p, ystart), nil
}
