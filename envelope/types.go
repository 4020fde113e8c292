package envelope

import (
	"errors"

	"github.com/npillmayer/curved"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'envelope'
func tracer() tracing.Trace {
	return tracing.Select("envelope")
}

// Segments narrower than _epsilon along x are degenerate.
const _epsilon = 0.00001

var (
	// ErrUnknownTangentMode indicates a serialized tangent mode with an
	// unrecognized name.
	ErrUnknownTangentMode = errors.New("unknown tangent mode")
)

// TangentMode governs how the tangent on one side of a control point is
// obtained. A Linear tangent tracks the straight line towards the
// neighboring control point on that side and is recomputed whenever
// positions change. A Free tangent holds a manually set slope and is never
// touched by automatic recomputation.
type TangentMode int

const (
	// Linear is the default mode: the tangent follows the neighbor.
	Linear TangentMode = iota
	// Free marks a manually set tangent.
	Free
)

// String returns the serialized name of a tangent mode.
func (m TangentMode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Free:
		return "free"
	}
	return "unknown"
}

// Point is one control point of a curve: a position within the unit
// square, plus an independent tangent slope and tangent mode for each
// side. The zero value is a point at the origin with zero tangents and
// Linear modes on both sides.
//
// Points do not constrain their own position; the containing Curve clamps
// positions into the unit square on insertion and repositioning.
type Point struct {
	At           curved.Pair
	LeftTangent  float64
	RightTangent float64
	LeftMode     TangentMode
	RightMode    TangentMode
}

// PointAt creates a point at a given position, with default tangents.
func PointAt(at curved.Pair) Point {
	return Point{At: at}
}

// Curve is an ordered sequence of control points over the unit square,
// evaluable at any x in [0,1] by piecewise cubic interpolation. Points are
// kept sorted by ascending x at all times; an index always denotes the
// i-th point in that order.
//
// The zero value is an empty curve, ready for use. A Curve is a
// self-contained value: independent instances may be used concurrently,
// but a single instance must not be mutated from multiple goroutines.
type Curve struct {
	points []Point
}
