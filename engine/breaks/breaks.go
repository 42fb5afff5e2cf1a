// Package breaks classifies every position in a view as a possible line
// break, a mandatory line break, a forbidden break, or a position inside
// an unbreakable cluster, per UAX#14. It walks the view with
// npillmayer/uax's uax14 line-wrap breaker, the same engine the teacher
// repo drives through a segment.Segmenter in its own typesetting
// pipeline.
package breaks

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	"github.com/go-typeset/stll/engine/view"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Analyze fills v.Linebreaks in place by scanning v.Runes with a UAX#14
// line-wrap breaker. The final position is always forced to MustBreak,
// independent of what the breaker itself reports, so callers can rely on
// every paragraph having a break opportunity at its end regardless of
// the exact penalty convention the underlying library uses.
func Analyze(v *view.View) {
	n := v.Len()
	if n == 0 {
		return
	}
	lw := uax14.NewLineWrap()
	seg := segment.NewSegmenter(lw)
	seg.Init(strings.NewReader(string(v.Runes)))

	pos := 0
	for seg.Next() {
		frag := []rune(seg.Text())
		pos += len(frag)
		if pos == 0 || pos > n {
			T().Debugf("line-break fragment position %d out of range for view of length %d, skipping", pos, n)
			continue
		}
		p1, _ := seg.Penalties()
		v.Linebreaks[pos-1] = classify(p1)
	}
	v.Linebreaks[n-1] = view.MustBreak
}

func classify(penalty int) view.Break {
	switch {
	case penalty <= -uax.InfinitePenalty:
		return view.MustBreak
	case penalty >= uax.InfinitePenalty:
		return view.NoBreak
	default:
		return view.AllowBreak
	}
}
