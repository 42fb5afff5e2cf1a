// Package dimen implements the 26.6 fixed-point coordinate type used
// throughout the layout pipeline: every length, advance and offset the
// engine produces is a Dimen, i.e. an integer count of 1/64 pixel.
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Dimen is a length or coordinate in 26.6 fixed-point units, i.e. units
// of 1/64 pixel. It is laid out identically to fixed.Int26_6 so that
// glyph positions read from a shaper can be stored without conversion.
type Dimen fixed.Int26_6

// Pre-defined dimensions.
const (
	Zero Dimen = 0
	SP   Dimen = 1  // 1/64 pixel, the base unit
	PX   Dimen = 64 // one pixel
)

// Infinity is the largest representable dimension, used for unbounded glue.
const Infinity = math.MaxInt32

// Fil, Fill and Filll are increasingly stretchable infinite dimensions,
// mirroring TeX's glue orders.
const (
	Fil   Dimen = Infinity - 3
	Fill  Dimen = Infinity - 2
	Filll Dimen = Infinity - 1
)

// String renders a dimension as "<n>/64px".
func (d Dimen) String() string {
	return fmt.Sprintf("%d/64px", int32(d))
}

// Pixels returns the dimension as a floating-point pixel count.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// Round rounds a dimension to the nearest whole pixel, matching the
// consumer-side rounding rule (v+32)>>6 from the wire format.
func (d Dimen) Round() int32 {
	return int32((d + 32) >> 6)
}

// Fixed converts a Dimen to the golang.org/x/image/math/fixed type it is
// interchangeable with, for callers that hand coordinates to a shaper or
// font face expecting that representation.
func (d Dimen) Fixed() fixed.Int26_6 {
	return fixed.Int26_6(d)
}

// FromFixed wraps a fixed.Int26_6 coming back from a shaper or font face.
func FromFixed(f fixed.Int26_6) Dimen {
	return Dimen(f)
}

// Point is a coordinate pair on the page.
type Point struct {
	X, Y Dimen
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Shift moves a point by a vector, in place, and returns it for chaining.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is an axis-aligned rectangle on the page, used for link hit-regions
// and underline/shadow fill boxes.
type Rect struct {
	TopL, BotR Point
}

// Width is the difference between the right and left edge.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height is the difference between the bottom and top edge.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a dimension.
func Abs(a Dimen) Dimen {
	if a < 0 {
		return -a
	}
	return a
}
