// Package line turns the flat run sequence from engine/run into an
// actual TextLayout: greedy or Knuth-Plass line breaking followed by
// addLine-style assembly (visual reordering, alignment/justification,
// layered command emission, link merging). Grounded on the original
// STLL implementation's addLine, breakLines and breakLinesOptimize.
package line

import (
	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shape"
	"github.com/go-typeset/stll/engine/run"
)

// lineFlags mirror the C++ implementation's LF_FIRST/LF_LAST/LF_SMALL_SPACE.
type lineFlags int

const (
	flagFirst lineFlags = 1 << iota
	flagLast
	flagSmallSpace
)

// addLine places runs[runstart:spos] on one line at height ypos (the
// line's ascender-adjusted baseline y), between left and right, and
// appends its commands and links to l.
func addLine(runstart, spos int, runs []run.Run, l *command.TextLayout, ypos, curWidth, left, right dimen.Dimen, flags lineFlags, numSpace int, p props.Properties) {
	order := visualOrder(runs[runstart:spos])
	for i := range order {
		order[i] += runstart
	}

	spaceLeft := right - left - curWidth

	var xpos dimen.Dimen
	var spaceAdder dimen.Dimen
	switch p.Align {
	case props.Left:
		xpos = left
		if flags&flagFirst != 0 {
			xpos += p.Indent
		}
	case props.Right:
		xpos = left + spaceLeft
	case props.Center:
		xpos = left + spaceLeft/2
	case props.JustifyLeft:
		xpos = left
		if numSpace > 0 && flags&flagLast == 0 {
			spaceAdder = spaceLeft / dimen.Dimen(numSpace)
		}
		if flags&flagFirst != 0 {
			xpos += p.Indent
		}
	case props.JustifyRight:
		if numSpace > 0 && flags&flagLast == 0 {
			xpos = left
			spaceAdder = spaceLeft / dimen.Dimen(numSpace)
		} else {
			xpos = left + spaceLeft
		}
	}

	type placed struct {
		idx  int
		x    dimen.Dimen
		wide dimen.Dimen // justification widening applied to this run
	}
	placements := make([]placed, 0, len(order))

	xcur := xpos
	spaceCount := 0
	for _, ri := range order {
		r := &runs[ri]
		if r.Shy && ri != spos-1 {
			continue // soft hyphens only draw when they end the line
		}
		wide := dimen.Dimen(0)
		if r.Space {
			wide = spaceAdder
		}
		placements = append(placements, placed{idx: ri, x: xcur, wide: wide})

		for _, lk := range r.Links {
			shifted := lk
			shifted.Areas = widenAreas(lk.Areas, wide)
			l.MergeLink(shifted, xcur, ypos)
		}

		if r.Space {
			spaceCount++
			if flags&flagSmallSpace != 0 {
				xcur += 9 * r.Dx / 10
			} else {
				xcur += r.Dx
			}
		} else {
			xcur += r.Dx
		}
		if r.Space {
			xcur += spaceAdder
		}
	}

	maxLayer := 0
	for _, pl := range placements {
		for _, c := range runs[pl.idx].Commands {
			if c.Layer+1 > maxLayer {
				maxLayer = c.Layer + 1
			}
		}
	}

	for layer := maxLayer - 1; layer >= 0; layer-- {
		for _, pl := range placements {
			r := &runs[pl.idx]
			for _, c := range r.Commands {
				if c.Layer != layer {
					continue
				}
				if r.Space && c.Command.Tag != command.Rect {
					continue
				}
				cmd := c.Command
				cmd.X += pl.x
				cmd.Y += ypos
				if r.Space && cmd.Tag == command.Rect {
					cmd.W += pl.wide
				}
				l.AddCommand(cmd)
			}
		}
	}
}

func widenAreas(areas []dimen.Rect, wide dimen.Dimen) []dimen.Rect {
	if wide == 0 || len(areas) == 0 {
		return areas
	}
	out := make([]dimen.Rect, len(areas))
	copy(out, areas)
	out[0].BotR.X += wide
	return out
}

// visualOrder reorders run indices [0,len(rs)) from logical to visual
// order by reversing maximal same-or-deeper-level stretches from the
// highest embedding level down to 1, the standard UAX#9 L2 rule
// restricted to one line's worth of runs.
func visualOrder(rs []run.Run) []int {
	order := make([]int, len(rs))
	var maxLevel int8
	for i := range rs {
		order[i] = i
		if rs[i].EmbeddingLevel > maxLevel {
			maxLevel = rs[i].EmbeddingLevel
		}
	}
	for lvl := maxLevel; lvl >= 1; lvl-- {
		j := 0
		for j < len(order) {
			if rs[order[j]].EmbeddingLevel >= lvl {
				k := j + 1
				for k < len(order) && rs[order[k]].EmbeddingLevel >= lvl {
					k++
				}
				reverseInts(order[j:k])
				j = k
			} else {
				j++
			}
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// edges adapts a core/shape.Shape to the per-row left/right edges the
// breakers need; kept as a thin helper so both breakers share it.
func edges(sh shape.Shape, top, bottom dimen.Dimen) (left, right dimen.Dimen) {
	return sh.Left(top, bottom), sh.Right(top, bottom)
}
