// Package command defines the flat draw-command output of the layout
// pipeline: glyphs, filled rectangles (shadows, underlines) and inline
// object placements, plus the hyperlink hit-region list. Consuming these
// into actual pixels is a collaborator concern (a blitter) outside this
// module.
package command

import (
	"image/color"

	"github.com/go-typeset/stll/core/dimen"
	"github.com/go-typeset/stll/core/font"
)

// Kind tags the variant held by a Command.
type Kind int

const (
	// Glyph draws a single glyph from a font.
	Glyph Kind = iota
	// Rect fills a solid rectangle, used for shadows and underlines.
	Rect
	// InlineObjectCmd places a previously-shaped inline object's own
	// drawing commands at an offset; see Attributes.Inline.
	InlineObjectCmd
)

// Command is a tagged union of the three primitives the layout engine
// emits. Fields not relevant to Tag are left zero.
type Command struct {
	Tag Kind

	// Coordinates, local to the run until line assembly shifts them into
	// paragraph space.
	X, Y dimen.Dimen

	// Glyph fields.
	Font      font.Font
	GlyphID   uint32
	CodePoint rune // informational, for debugging/back-reference

	// Rect fields (also reused for a glyph's shadow/underline color+blur).
	W, H  dimen.Dimen
	Color color.RGBA
	Blur  dimen.Dimen

	// InlineObjectCmd fields.
	ObjectRef interface{}
}

// Layered pairs a Command with its paint layer. The assembler emits in
// descending layer order, so higher layers (shadows) paint first and lie
// beneath, and layer 0 (the base glyphs) paints last, landing on top.
type Layered struct {
	Layer   int
	Command Command
}

// Link is a hyperlink: a URL and the rectangles (one per line it spans)
// that are its clickable hit-regions.
type Link struct {
	URL   string
	Areas []dimen.Rect
}

// TextLayout is the opaque output of one LayoutParagraph call: a flat,
// already visually-ordered and layer-ordered draw-command stream plus
// the merged link table and overall paragraph metrics.
type TextLayout struct {
	Commands      []Command
	Links         []Link
	FirstBaseline dimen.Dimen
	height        dimen.Dimen
	left, right   dimen.Dimen
}

// AddCommand appends one draw command, in final paint order.
func (t *TextLayout) AddCommand(c Command) {
	t.Commands = append(t.Commands, c)
}

// SetFirstBaseline records the y-coordinate of the first line's baseline.
func (t *TextLayout) SetFirstBaseline(y dimen.Dimen) {
	t.FirstBaseline = y
}

// SetHeight records the total height of the paragraph.
func (t *TextLayout) SetHeight(h dimen.Dimen) {
	t.height = h
}

// SetLeft records the paragraph's left envelope.
func (t *TextLayout) SetLeft(l dimen.Dimen) {
	t.left = l
}

// SetRight records the paragraph's right envelope.
func (t *TextLayout) SetRight(r dimen.Dimen) {
	t.right = r
}

// Height returns the total height accumulated across all lines.
func (t *TextLayout) Height() dimen.Dimen { return t.height }

// Left returns the paragraph's left envelope over its vertical extent.
func (t *TextLayout) Left() dimen.Dimen { return t.left }

// Right returns the paragraph's right envelope over its vertical extent.
func (t *TextLayout) Right() dimen.Dimen { return t.right }

// MergeLink merges a link's rectangles into t, shifted by (dx, dy).
// Rectangles for the same URL are coalesced into a single Link entry,
// regardless of which line contributed them.
func (t *TextLayout) MergeLink(l Link, dx, dy dimen.Dimen) {
	var target *Link
	for i := range t.Links {
		if t.Links[i].URL == l.URL {
			target = &t.Links[i]
			break
		}
	}
	if target == nil {
		t.Links = append(t.Links, Link{URL: l.URL})
		target = &t.Links[len(t.Links)-1]
	}
	for _, r := range l.Areas {
		r.TopL.X += dx
		r.TopL.Y += dy
		r.BotR.X += dx
		r.BotR.Y += dy
		target.Areas = append(target.Areas, r)
	}
}
