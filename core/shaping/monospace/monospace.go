// Package monospace provides a trivial Shaper that advances every
// grapheme cluster by a fixed em-fraction. It does no font rasterization
// and needs no font file, which makes it useful as a default for
// callers without a real shaping backend, and as the shaper used by this
// module's own tests.
package monospace

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"

	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/shaping"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type msshape struct {
	em dimen.Dimen
}

// New creates a monospace shaper. em is the advance width of one grapheme
// cluster; if zero it defaults to 6px (a typical monospace digit width
// at 10pt).
func New(em dimen.Dimen) shaping.Shaper {
	if em == 0 {
		T().Debugf("monospace shaper created with em=0, defaulting to 6px")
		em = 6 * dimen.PX
	}
	grapheme.SetupGraphemeClasses()
	return msshape{em: em}
}

// Shape implements shaping.Shaper.
func (ms msshape) Shape(text []rune, p shaping.Params) (shaping.Output, error) {
	if len(text) == 0 {
		return shaping.Output{}, nil
	}
	splitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	splitter.Init(strings.NewReader(string(text)))

	out := shaping.Output{Glyphs: make([]shaping.Glyph, 0, len(text))}
	clusterStart := 0
	for splitter.Next() {
		n := len([]rune(splitter.Text()))
		g := shaping.Glyph{
			ClusterIndex: clusterStart,
			GID:          uint32(text[clusterStart]),
			XAdvance:     ms.em,
		}
		out.Glyphs = append(out.Glyphs, g)
		clusterStart += n
	}
	if p.Direction == shaping.RightToLeft {
		reverse(out.Glyphs)
	}
	return out, nil
}

func reverse(g []shaping.Glyph) {
	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
}

// SetScript and SetLanguage are no-ops for this shaper; present so a
// caller can treat it uniformly with richer shapers during experiments.
func (ms msshape) SetScript(language.Script) {}
func (ms msshape) SetLanguage(language.Tag)  {}

var _ shaping.Shaper = msshape{}
