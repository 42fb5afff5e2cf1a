package line

import (
	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shape"
	"github.com/go-typeset/stll/engine/run"
	"github.com/go-typeset/stll/engine/view"
)

// Greedy breaks runs into lines within sh using a single-pass, one-line-
// lookahead-group algorithm: it grows the candidate line up to the next
// break opportunity, commits the group if it still fits, and stops as
// soon as a group would overrun (except when the line is still empty,
// in which case the overrunning group is committed anyway, so a single
// over-wide run always ends up on a line of its own rather than looping
// forever).
func Greedy(runs []run.Run, sh shape.Shape, p props.Properties, ystart dimen.Dimen) *command.TextLayout {
	l := &command.TextLayout{}
	runstart := 0
	ypos := ystart
	first := true

	for runstart < len(runs) {
		for runstart < len(runs) && runs[runstart].Space {
			runstart++
		}
		if runstart >= len(runs) {
			break
		}

		var ascend, descend, width dimen.Dimen
		spos := runstart
		numSpace := 0
		forcebreak := false
		if first && p.Align != props.Center {
			width = p.Indent
		}

		for spos < len(runs) {
			newAscend, newDescend, newWidth := ascend, descend, width
			newspos := spos
			newSpace := numSpace

			for newspos < len(runs) {
				if runs[newspos].Ascender > newAscend {
					newAscend = runs[newspos].Ascender
				}
				if runs[newspos].Descender < newDescend {
					newDescend = runs[newspos].Descender
				}
				newWidth += runs[newspos].Dx
				if runs[newspos].Space {
					newSpace++
				}

				if breaksHere(runs, newspos) {
					break
				}
				newspos++
			}
			newspos++

			if spos > runstart {
				left, right := edges(sh, ypos, ypos+newAscend-newDescend)
				if left+newWidth > right {
					break
				}
			}

			if spos > runstart && runs[spos-1].Shy {
				newWidth -= runs[spos-1].Dx
			}

			ascend, descend, width = newAscend, newDescend, newWidth
			spos = newspos
			numSpace = newSpace

			if runs[spos-1].Linebreak == view.MustBreak ||
				(spos < len(runs) && runs[spos].Space && runs[spos].Linebreak == view.MustBreak) {
				forcebreak = true
				break
			}
		}
		forcebreak = forcebreak || spos == len(runs)

		flags := lineFlags(0)
		if first {
			flags |= flagFirst
		}
		if forcebreak {
			flags |= flagLast
		}

		top, bottom := ypos, ypos+ascend-descend
		left, right := edges(sh, top, bottom)
		addLine(runstart, spos, runs, l, ypos+ascend, width, left, right, flags, numSpace, p)
		if first {
			l.SetFirstBaseline(ypos + ascend)
		}
		ypos = ypos + ascend - descend
		runstart = spos
		first = false
	}

	l.SetHeight(ypos)
	l.SetLeft(sh.Left2(ystart, ypos))
	l.SetRight(sh.Right2(ystart, ypos))
	return l
}

// breaksHere implements the original implementation's two break
// conditions: either the current run itself ends at an allowed/forced
// break and is not a space, or the next run is a space run that itself
// ends at an allowed/forced break (liblinebreak places the break after
// the space, but trailing spaces must not count toward line width).
func breaksHere(runs []run.Run, i int) bool {
	allow := func(b view.Break) bool { return b == view.AllowBreak || b == view.MustBreak }
	if i+1 < len(runs) && runs[i+1].Space && allow(runs[i+1].Linebreak) {
		return true
	}
	if !runs[i].Space && allow(runs[i].Linebreak) {
		return true
	}
	return false
}
