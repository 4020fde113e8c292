// Package cubic provides arithmetic for one-dimensional cubic Bézier
// segments, i.e. cubics given by four ordinates over a normalized
// parameter interval [0,1].
//
// The package supports the Hermite view on such a segment as well: a
// segment of a given width with ordinates and slopes at both ends maps to
// Bézier form by placing the interior control ordinates at one third of
// the width along each end slope.
//
// # BSD License
//
// # Copyright (c) Norbert Pillmayer
//
// All rights reserved.
//
// Please refer to the license file for more information.
package cubic

// Bez is a cubic in Bernstein form, holding the four control ordinates.
type Bez struct {
	Y0, Y1, Y2, Y3 float64
}

// FromHermite converts a Hermite-style segment description to Bernstein
// form. y0 and y3 are the ordinates at the segment ends, m0 and m3 the
// slopes there, and width is the extent of the segment along the axis of
// the curve parameter (before normalization to [0,1]).
func FromHermite(y0, y3, m0, m3, width float64) Bez {
	d := width / 3
	return Bez{
		Y0: y0,
		Y1: y0 + d*m0,
		Y2: y3 - d*m3,
		Y3: y3,
	}
}

// Eval evaluates the cubic at parameter t in [0,1].
func (b Bez) Eval(t float64) float64 {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return b.Y0*omt3 + b.Y1*3*omt2*t + b.Y2*3*omt*t2 + b.Y3*t3
}

// Deriv evaluates the first derivative of the cubic with respect to t.
// Callers evaluating a segment of width w along the curve axis divide by
// w to obtain the slope in curve coordinates.
func (b Bez) Deriv(t float64) float64 {
	omt := 1 - t
	d0 := b.Y1 - b.Y0
	d1 := b.Y2 - b.Y1
	d2 := b.Y3 - b.Y2
	return 3 * (d0*omt*omt + 2*d1*omt*t + d2*t*t)
}
