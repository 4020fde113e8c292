package envelope

import "github.com/npillmayer/curved"

// New creates an empty curve, to be filled point by point. An empty curve
// samples to 0 everywhere.
func New() *Curve {
	return &Curve{}
}

// Identity creates the identity preset: control points at (0,0) and (1,1)
// with default Linear tangents, sampling to y = x.
func Identity() *Curve {
	crv := New()
	crv.AddPoint(PointAt(curved.Origin))
	crv.AddPoint(PointAt(curved.UnitSquare))
	return crv
}

// Smooth creates an ease-in-out preset: control points at (0,0) and (1,1)
// with flat Free tangents, sampling to the smoothstep cubic.
func Smooth() *Curve {
	crv := New()
	crv.AddPoint(Point{At: curved.Origin, LeftMode: Free, RightMode: Free})
	crv.AddPoint(Point{At: curved.UnitSquare, LeftMode: Free, RightMode: Free})
	return crv
}

// Constant creates a one-point preset sampling to y everywhere. y is
// clamped into [0,1].
func Constant(y float64) *Curve {
	crv := New()
	crv.AddPoint(PointAt(curved.P(0, y)))
	return crv
}
