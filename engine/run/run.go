// Package run segments a view into shaping runs — maximal stretches
// sharing one embedding level, language, font and baseline shift with
// no break opportunity, space, forced break or hyphen inside them —
// shapes each run, and turns the shaped glyphs into draw commands
// (glyph, shadow, underline, inline-object and link-rectangle),
// grounded on the original STLL implementation's createTextRuns and
// createRun.
package run

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/go-typeset/stll/core"
	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/core/command"
	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
	"github.com/go-typeset/stll/core/props"
	"github.com/go-typeset/stll/core/shaping"
	"github.com/go-typeset/stll/engine/view"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const (
	softHyphen  = 0x00AD
	hyphenDash  = 0x2010 // preferred glyph for a synthesized soft hyphen
	hyphenMinus = 0x002D // fallback when the font lacks hyphenDash
)

// hyphenRune picks the rune a synthesized soft-hyphen run is actually
// shaped with: U+2010 when f has that glyph, else the plain ASCII
// hyphen-minus every font is expected to carry.
func hyphenRune(f font.Font) rune {
	if f != nil && f.ContainsGlyph(hyphenDash) {
		return hyphenDash
	}
	return hyphenMinus
}

// Run is one shaped, measured stretch of the paragraph: either text
// glyphs, a single space, a soft hyphen, or an inline object.
type Run struct {
	EmbeddingLevel int8
	Space          bool
	Shy            bool
	ForcedBreak    bool // run ends in a mandatory break (e.g. '\n')
	Linebreak      view.Break
	Ascender       dimen.Dimen
	Descender      dimen.Dimen // negative or zero
	Dx             dimen.Dimen
	Commands       []command.Layered
	Links          []command.Link
}

// Build segments v into runs and shapes each one. shaper is the single
// collaborator used for every run; font selection per run comes from
// the view's own attributes.
func Build(v *view.View, p props.Properties, shaper shaping.Shaper) ([]Run, error) {
	n := v.Len()
	var runs []Run
	runstart := 0
	for runstart < n {
		spos := runstart + 1
		f := v.Attribute(runstart).FontFor(v.Rune(runstart))
		for spos < n && sameRun(v, runstart, spos, f) {
			spos++
		}

		r, err := buildOne(v, runstart, spos, p, f, shaper)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)

		// a position marked as an automatically-inserted hyphenation
		// point (not a literal U+00AD in the text) gets a synthetic
		// one-rune soft-hyphen run appended right after the run it
		// splits, since the view itself is never mutated.
		if spos < n && v.Hyphen(spos-1) && v.Rune(spos-1) != softHyphen {
			shy, err := buildShy(v, runstart, p, f, shaper)
			if err != nil {
				return nil, err
			}
			runs = append(runs, shy)
		}

		runstart = spos
	}
	return runs, nil
}

func sameRun(v *view.View, runstart, spos int, f font.Font) bool {
	a0 := v.Attribute(runstart)
	a := v.Attribute(spos)
	if v.Level(runstart) != v.Level(spos) {
		return false
	}
	if a0.Lang != a.Lang || a0.BaselineShift != a.BaselineShift {
		return false
	}
	if a.FontFor(v.Rune(spos)) != f {
		return false
	}
	if a.Inline != nil || a0.Inline != nil {
		return false
	}
	lb := v.Linebreak(spos - 1)
	if lb != view.NoBreak && lb != view.InsideAChar {
		return false
	}
	if isSpace(v.Rune(spos)) || isSpace(v.Rune(spos-1)) {
		return false
	}
	if isNewline(v.Rune(spos)) || isNewline(v.Rune(spos-1)) {
		return false
	}
	if v.Rune(spos) == softHyphen {
		return false
	}
	if v.Hyphen(spos - 1) {
		return false
	}
	return true
}

func isSpace(r rune) bool { return r == ' ' }
func isNewline(r rune) bool { return r == '\n' }

func direction(level int8) shaping.Direction {
	if level%2 == 1 {
		return shaping.RightToLeft
	}
	return shaping.LeftToRight
}

func buildShy(v *view.View, runstart int, p props.Properties, f font.Font, shaper shaping.Shaper) (Run, error) {
	sv := view.New([]rune{softHyphen}, []int8{v.Level(runstart)}, attrs.Slice{v.Attribute(runstart)})
	sv.Linebreaks[0] = view.AllowBreak
	return buildOne(sv, 0, 1, p, f, shaper)
}

func buildOne(v *view.View, runstart, spos int, p props.Properties, f font.Font, shaper shaping.Shaper) (Run, error) {
	text := v.Runes[runstart:spos]
	lvl := v.Level(runstart)

	space := spos-runstart == 1 && (isSpace(text[0]) || isNewline(text[0]))
	shy := spos-runstart == 1 && text[0] == softHyphen

	r := Run{
		EmbeddingLevel: lvl,
		Space:          space,
		Shy:            shy,
		Linebreak:      v.Linebreak(spos - 1),
	}
	if r.Linebreak == view.MustBreak {
		r.ForcedBreak = true
	}

	if f == nil || v.Attribute(runstart).Inline != nil {
		// inline object: width/height come from the object, not a shaper.
		a0 := v.Attribute(runstart)
		inl := a0.Inline
		if inl == nil {
			T().Errorf("no font and no inline object at position %d", runstart)
			return r, core.NewError(core.ShaperFailure, "no font and no inline object at position %d", runstart)
		}
		baseline := a0.BaselineShift
		r.Ascender = inl.Height() + baseline
		r.Descender = inl.Height() - r.Ascender
		r.Dx = inl.Right()
		r.Commands = append(r.Commands, command.Layered{Layer: 0, Command: command.Command{
			Tag: command.InlineObjectCmd, W: inl.Right(), H: inl.Height(), ObjectRef: inl,
		}})

		// the object's own commands are in its local coordinates; shift
		// them to the run's origin before appending.
		dx, dy := dimen.Zero, -(r.Ascender - dimen.SP)
		for _, c := range inl.Data() {
			c.X += dx
			c.Y += dy
			r.Commands = append(r.Commands, command.Layered{Layer: 0, Command: c})
		}

		if a0.Underlined() {
			if uf := resolveUnderlineFont(p, f); uf != nil {
				addUnderline(&r, dx, r.Dx, uf)
			}
		}
		return r, nil
	}

	shapeText := text
	if shy {
		// a soft hyphen has no glyph in most fonts; shape the dash it
		// will actually render as instead of the raw U+00AD.
		shapeText = []rune{hyphenRune(f)}
	}

	runScript, _ := v.Attribute(runstart).Lang.Script()
	out, err := shaper.Shape(shapeText, shaping.Params{
		Font:      f,
		Direction: direction(lvl),
		Script:    runScript,
		Language:  v.Attribute(runstart).Lang,
	})
	if err != nil {
		T().Errorf("shaper failed for run at %d: %v", runstart, err)
		return r, core.WrapError(err, core.ShaperFailure)
	}
	if len(shapeText) > 0 && len(out.Glyphs) == 0 {
		T().Errorf("shaping produced no glyphs for %d runes at %d", len(shapeText), runstart)
		return r, core.NewError(core.ShaperFailure, "shaping produced no glyphs for %d runes", len(shapeText))
	}

	a0 := v.Attribute(runstart)
	baseline := a0.BaselineShift

	r.Ascender = f.Ascender() + baseline
	r.Descender = f.Descender() + baseline

	// First pass: absolute x position per glyph, in shaped (visual)
	// order, walking glyphs in the order the shaper returned them.
	var dx dimen.Dimen
	xpos := make([]dimen.Dimen, len(out.Glyphs))
	for i, g := range out.Glyphs {
		if g.YAdvance != 0 {
			T().Errorf("run at %d uses a non-linear script", runstart)
			return r, core.NewError(core.NonLinearScript, "run at %d uses a non-linear script", runstart)
		}
		xpos[i] = dx
		dx += g.XAdvance
	}
	r.Dx = dx

	var linkRect dimen.Rect
	var curLink int
	var linkStart dimen.Dimen

	emit := func(i int) {
		g := out.Glyphs[i]
		cp := shapeText[g.ClusterIndex]
		a := v.Attribute(runstart + g.ClusterIndex)
		gx := xpos[i] + g.XOffset
		gy := -g.YOffset - baseline

		for li, sh := range a.Shadows {
			r.Commands = append(r.Commands, command.Layered{
				Layer: len(a.Shadows) - li,
				Command: command.Command{
					Tag: command.Glyph, X: gx + sh.DX, Y: gy + sh.DY,
					Font: f, GlyphID: g.GID, CodePoint: cp, Color: sh.Color, Blur: sh.Blur,
				},
			})
		}
		r.Commands = append(r.Commands, command.Layered{Layer: 0, Command: command.Command{
			Tag: command.Glyph, X: gx, Y: gy, Font: f, GlyphID: g.GID, CodePoint: cp, Color: a.Color,
		}})

		if a.Underlined() {
			if uf := resolveUnderlineFont(p, f); uf != nil {
				addUnderline(&r, gx, g.XAdvance, uf)
			}
		}

		if curLink != 0 && curLink != a.Link {
			r.Links = append(r.Links, command.Link{URL: linkURL(p, curLink), Areas: []dimen.Rect{linkRect}})
			curLink = 0
		}
		if a.Link != 0 {
			if curLink == 0 {
				linkStart = xpos[i]
				linkRect = dimen.Rect{
					TopL: dimen.Point{X: linkStart, Y: -r.Ascender},
					BotR: dimen.Point{X: xpos[i] + g.XAdvance, Y: -r.Descender},
				}
				curLink = a.Link
			} else {
				linkRect.TopL.X = dimen.Min(linkRect.TopL.X, xpos[i])
				linkRect.BotR.X = dimen.Max(linkRect.BotR.X, xpos[i]+g.XAdvance)
			}
		}
	}

	// Second pass: emit in logical order (clusters ascending), restoring
	// the append order RTL shaping reversed, while keeping the absolute
	// positions computed in visual order above.
	if lvl%2 == 1 {
		for i := len(out.Glyphs) - 1; i >= 0; i-- {
			emit(i)
		}
	} else {
		for i := range out.Glyphs {
			emit(i)
		}
	}

	if curLink != 0 {
		r.Links = append(r.Links, command.Link{URL: linkURL(p, curLink), Areas: []dimen.Rect{linkRect}})
	}

	return r, nil
}

func linkURL(p props.Properties, idx int) string {
	if idx-1 < 0 || idx-1 >= len(p.Links) {
		return ""
	}
	return p.Links[idx-1]
}

// resolveUnderlineFont picks the font whose metrics drive underline
// placement: the paragraph-wide override if set, else the run's own font
// (which may be nil for an inline object with no override, in which case
// there is no font to draw an underline under).
func resolveUnderlineFont(p props.Properties, f font.Font) font.Font {
	if p.UnderlineFont != nil {
		return p.UnderlineFont
	}
	return f
}

// addUnderline appends an underline rectangle spanning one glyph's (or
// inline object's) advance, starting at x with the unshifted advance
// width xAdvance.
func addUnderline(r *Run, x, xAdvance dimen.Dimen, uf font.Font) {
	r.Commands = append(r.Commands, command.Layered{Layer: 0, Command: command.Command{
		Tag: command.Rect,
		X:   x, Y: -(uf.UnderlinePosition() + uf.UnderlineThickness()/2),
		W: xAdvance + dimen.PX, H: dimen.Max(dimen.PX, uf.UnderlineThickness()),
	}})
}
