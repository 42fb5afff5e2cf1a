// Package shape declares the vertical column-edge profile a paragraph is
// laid out into.
package shape

import "github.com/go-typeset/stll/core/dimen"

// Shape is a pure function of vertical position to the column's left and
// right edges. Implementations must be pure: the engine re-queries them
// whenever the tentative line height changes, so side effects or
// non-determinism produce undefined layouts.
type Shape interface {
	// Left returns the left edge of the column between top and bottom.
	Left(top, bottom dimen.Dimen) dimen.Dimen
	// Right returns the right edge of the column between top and bottom.
	Right(top, bottom dimen.Dimen) dimen.Dimen
	// Left2 returns the bounding (minimal) left edge over [top,bottom).
	Left2(top, bottom dimen.Dimen) dimen.Dimen
	// Right2 returns the bounding (maximal) right edge over [top,bottom).
	Right2(top, bottom dimen.Dimen) dimen.Dimen
}

// Rectangle is the simplest Shape: a column with constant, vertically
// independent edges.
type Rectangle struct {
	L, R dimen.Dimen
}

// Left implements Shape.
func (r Rectangle) Left(top, bottom dimen.Dimen) dimen.Dimen { return r.L }

// Right implements Shape.
func (r Rectangle) Right(top, bottom dimen.Dimen) dimen.Dimen { return r.R }

// Left2 implements Shape.
func (r Rectangle) Left2(top, bottom dimen.Dimen) dimen.Dimen { return r.L }

// Right2 implements Shape.
func (r Rectangle) Right2(top, bottom dimen.Dimen) dimen.Dimen { return r.R }

var _ Shape = Rectangle{}
