package line

import (
	"math"

	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shape"
	"github.com/go-typeset/stll/engine/run"
	"github.com/go-typeset/stll/engine/view"
)

// Line classification used by the demerits formula below: how far a
// line's actual fill is from its optimal fill.
const (
	tight      = 0
	decent     = 1
	loose      = 2
	veryLoose  = 3
)

type lineinfo struct {
	from      int
	demerits  float64
	ascend    dimen.Dimen
	descend   dimen.Dimen
	width     dimen.Dimen
	spaces    int
	ypos      dimen.Dimen
	forcebreak bool
	linetype  int
	hyphen    bool
	start     bool
}

const infiniteDemerits = math.MaxFloat64

// Optimize breaks runs into lines using a Knuth-Plass-style dynamic
// program: every admissible break position considers every earlier
// admissible break position it could have come from, scoring the
// resulting line's badness and picking the minimum-demerit path. To
// keep the DP bounded it commits and restarts at the first forced break
// (a MUSTBREAK run or the end of the paragraph) rather than running the
// whole paragraph as one DP pass.
func Optimize(runs []run.Run, sh shape.Shape, p props.Properties, ystart dimen.Dimen) *command.TextLayout {
	l := &command.TextLayout{}
	ypos := ystart
	first := true

	for len(runs) > 0 {
		li := make([]lineinfo, len(runs)+1)
		li[0].ypos = ypos
		li[0].start = true

		committed := -1
		for i := 1; i <= len(runs); i++ {
			li[i].demerits = infiniteDemerits

			if runs[i-1].Linebreak != view.AllowBreak && runs[i-1].Linebreak != view.MustBreak {
				continue
			}

			for start := i; start > 0; start-- {
				if li[start-1].demerits == infiniteDemerits {
					continue
				}

				var ascend, descend, width dimen.Dimen
				spaceCount := 0
				var spaceWidth dimen.Dimen

				if first && start == 1 && p.Align != props.Center {
					width = p.Indent
				}

				s1, s2 := start-1, i
				for s1 < len(runs) && runs[s1].Space {
					s1++
				}
				for s2 > s1 && runs[s2-1].Space {
					s2--
				}

				for j := s1; j < s2; j++ {
					if runs[j].Shy && j != s2-1 {
						continue
					}
					if runs[j].Ascender > ascend {
						ascend = runs[j].Ascender
					}
					if runs[j].Descender < descend {
						descend = runs[j].Descender
					}
					if runs[j].Space {
						spaceCount++
						width += 9 * runs[j].Dx / 10
						spaceWidth += runs[j].Dx
					} else {
						width += runs[j].Dx
					}
				}

				top, bottom := li[start-1].ypos, li[start-1].ypos+ascend-descend
				left, right := edges(sh, top, bottom)
				if left+width > right {
					break
				}

				fillin := float64(right - left - width)
				optimalFillin := float64(spaceWidth - width)
				var badness float64
				if optimalFillin != 0 {
					ratio := math.Abs(fillin-optimalFillin) / optimalFillin
					badness = 100.0 * ratio * ratio * ratio
				}

				linetype := decent
				switch {
				case badness >= 100:
					linetype = veryLoose
				case badness >= 13:
					if fillin > optimalFillin {
						linetype = loose
					} else {
						linetype = tight
					}
				}

				demerits := (10 + badness) * (10 + badness)

				hyph := s2 > s1 && runs[s2-1].Shy
				if hyph && li[start-1].hyphen {
					demerits += 10000
				}
				if abs(linetype-li[start-1].linetype) > 1 {
					demerits += 10000
				}
				if linetype != li[start-1].linetype {
					demerits += 5000
				}

				force := false
				if runs[i-1].Linebreak == view.MustBreak || i == len(runs) {
					if width > (right-left)/3 {
						demerits = 0
					} else {
						demerits = 100000
					}
					force = true
				}

				demerits += li[start-1].demerits

				if demerits < li[i].demerits {
					li[i] = lineinfo{
						from: start - 1, demerits: demerits,
						ascend: ascend, descend: descend, width: width, spaces: spaceCount,
						ypos: li[start-1].ypos + ascend - descend,
						forcebreak: force, linetype: linetype, hyphen: hyph,
					}
				}
			}

			if runs[i-1].Linebreak == view.MustBreak || i == len(runs) {
				committed = i
				break
			}
		}

		if committed < 0 {
			committed = len(runs)
		}

		var breaks []int
		ii := committed
		for !li[ii].start {
			breaks = append(breaks, ii)
			ii = li[ii].from
		}
		breaks = append(breaks, ii)

		for k := len(breaks) - 1; k > 0; k-- {
			bb := li[breaks[k-1]]
			cc := li[breaks[k]]

			s1, s2 := breaks[k], breaks[k-1]
			for s1 < len(runs) && runs[s1].Space {
				s1++
			}
			for s2 > s1 && runs[s2-1].Space {
				s2--
			}

			flags := flagSmallSpace
			if first && k == len(breaks)-1 {
				flags |= flagFirst
			}
			if k == 1 {
				flags |= flagLast
			}

			top, bottom := cc.ypos, cc.ypos+bb.ascend-bb.descend
			left, right := edges(sh, top, bottom)
			addLine(s1, s2, runs, l, cc.ypos+bb.ascend, bb.width, left, right, flags, bb.spaces, p)
			if first && k == len(breaks)-1 {
				l.SetFirstBaseline(cc.ypos + bb.ascend)
			}
			li[breaks[k]].ypos = cc.ypos + bb.ascend - bb.descend
		}
		first = false

		ypos = li[committed].ypos
		runs = runs[committed:]
	}

	l.SetHeight(ypos)
	l.SetLeft(sh.Left2(ystart, ypos))
	l.SetRight(sh.Right2(ystart, ypos))
	return l
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
