package envelope

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/npillmayer/curved"
	"github.com/npillmayer/curved/cubic"
	"gonum.org/v1/gonum/floats"
)

// N returns the number of control points.
func (crv *Curve) N() int {
	return len(crv.points)
}

// AddPoint inserts a control point, keeping the point sequence sorted by
// ascending x. The point's position is clamped into the unit square
// first. Automatic tangent recomputation runs for the new point, so
// Linear-mode tangents of the point and its new neighbors stay
// consistent.
//
// AddPoint returns the index the point ended up at.
func (crv *Curve) AddPoint(pt Point) int {
	pt.At = pt.At.Clamped(curved.Origin, curved.UnitSquare)
	var index int
	switch {
	case len(crv.points) == 0:
		crv.points = append(crv.points, pt)
		index = 0
	case len(crv.points) == 1:
		if pt.At.X()-crv.points[0].At.X() > 0 {
			crv.points = append(crv.points, pt)
			index = 1
		} else {
			crv.points = slices.Insert(crv.points, 0, pt)
			index = 0
		}
	default:
		i := crv.SegmentIndex(pt.At.X())
		if i == 0 && pt.At.X() < crv.points[0].At.X() {
			crv.points = slices.Insert(crv.points, 0, pt)
			index = 0
		} else {
			crv.points = slices.Insert(crv.points, i+1, pt)
			index = i + 1
		}
	}
	tracer().Debugf("added point %s at index %d", ptstring(pt.At), index)
	crv.updateAutoTangents(index)
	return index
}

// RemovePoint removes the control point at index. Out-of-range indices
// are ignored. Tangents of the newly adjacent neighbors are not
// recomputed; the next positional change will refresh them.
func (crv *Curve) RemovePoint(index int) {
	if index < 0 || index >= len(crv.points) {
		return
	}
	crv.points = slices.Delete(crv.points, index, index+1)
}

// ClearPoints removes all control points.
func (crv *Curve) ClearPoints() {
	crv.points = crv.points[:0]
}

// SegmentIndex runs a binary search for the segment containing x and
// returns the index of the segment's left endpoint. For x beyond the last
// point's x the last index is returned. The search is meaningful for
// curves of two or more points; smaller curves yield index 0.
func (crv *Curve) SegmentIndex(x float64) int {
	if len(crv.points) < 2 {
		return 0
	}
	min, max := 0, len(crv.points)-1
	for max-min > 1 {
		m := (min + max) / 2
		a := crv.points[m].At.X()
		b := crv.points[m+1].At.X()
		if a < x && b < x {
			min = m
		} else if a > x {
			max = m
		} else {
			return m
		}
	}
	if x > crv.points[max].At.X() {
		return max
	}
	return min
}

// Sample evaluates the curve at x. An empty curve samples to 0 and a
// single point yields a constant curve. Beyond the first or last point's
// x the curve extrapolates flat. The result is limited to [0,1].
func (crv *Curve) Sample(x float64) float64 {
	if len(crv.points) == 0 {
		return 0
	}
	if len(crv.points) == 1 {
		return crv.points[0].At.Y()
	}
	i := crv.SegmentIndex(x)
	if i == len(crv.points)-1 {
		return crv.points[i].At.Y()
	}
	local := x - crv.points[i].At.X()
	if i == 0 && local <= 0 {
		return crv.points[0].At.Y()
	}
	return crv.sampleSegment(i, local)
}

// Slope evaluates the first derivative dy/dx of the sampled curve at x.
// In the flat extrapolation regions and on degenerate segments the slope
// is 0.
func (crv *Curve) Slope(x float64) float64 {
	if len(crv.points) < 2 {
		return 0
	}
	i := crv.SegmentIndex(x)
	if i == len(crv.points)-1 {
		return 0
	}
	local := x - crv.points[i].At.X()
	if i == 0 && local <= 0 {
		return 0
	}
	a, b := crv.points[i], crv.points[i+1]
	d := b.At.X() - a.At.X()
	if math.Abs(d) < _epsilon {
		return 0
	}
	seg := cubic.FromHermite(a.At.Y(), b.At.Y(), a.RightTangent, b.LeftTangent, d)
	return seg.Deriv(local/d) / d
}

// Cubic segment evaluation between the points at index and index+1.
// local is the offset of x from the left endpoint and must be
// non-negative. A (near-)zero-width segment evaluates to its right
// endpoint's value.
func (crv *Curve) sampleSegment(index int, local float64) float64 {
	a := crv.points[index]
	b := crv.points[index+1]
	d := b.At.X() - a.At.X()
	if math.Abs(d) < _epsilon {
		return b.At.Y()
	}
	seg := cubic.FromHermite(a.At.Y(), b.At.Y(), a.RightTangent, b.LeftTangent, d)
	return curved.Clamp(seg.Eval(local/d), 0, 1)
}

// Positions returns the positions of all control points in ascending-x
// order.
func (crv *Curve) Positions() []curved.Pair {
	pos := make([]curved.Pair, len(crv.points))
	for i, pt := range crv.points {
		pos[i] = pt.At
	}
	return pos
}

// Polyline samples the curve at n equidistant x values spanning [0,1] and
// returns the resulting points, ready for rendering as a line strip.
// n is raised to 2 if smaller.
func (crv *Curve) Polyline(n int) []curved.Pair {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), 0, 1)
	line := make([]curved.Pair, n)
	for i, x := range xs {
		line[i] = curved.P(x, crv.Sample(x))
	}
	return line
}

// Position returns the position of the control point at index, or false
// for an out-of-range index.
func (crv *Curve) Position(index int) (curved.Pair, bool) {
	if index < 0 || index >= len(crv.points) {
		return curved.Origin, false
	}
	return crv.points[index].At, true
}

// SetPosition moves the control point at index to pos, clamped into the
// unit square. The move is ignored if index is out of range or if the new
// x would cross a neighboring point's x, so the sort order of points is
// preserved. On success the point's Linear tangents and those of its
// neighbors' facing sides are recomputed.
func (crv *Curve) SetPosition(index int, pos curved.Pair) {
	pos = pos.Clamped(curved.Origin, curved.UnitSquare)
	if index < 0 || index >= len(crv.points) {
		return
	}
	if index > 0 && crv.points[index-1].At.X() > pos.X() {
		tracer().Debugf("rejected move of point %d to %s: crosses left neighbor", index, ptstring(pos))
		return
	}
	if index < len(crv.points)-1 && crv.points[index+1].At.X() < pos.X() {
		tracer().Debugf("rejected move of point %d to %s: crosses right neighbor", index, ptstring(pos))
		return
	}
	crv.points[index].At = pos
	crv.updateAutoTangents(index)
}

// LeftTangent returns the left tangent slope of the control point at
// index, or false for an out-of-range index.
func (crv *Curve) LeftTangent(index int) (float64, bool) {
	if index < 0 || index >= len(crv.points) {
		return 0, false
	}
	return crv.points[index].LeftTangent, true
}

// SetLeftTangent sets the left tangent slope of the control point at
// index and switches that side to mode Free. Out-of-range indices and
// non-finite slopes are ignored.
func (crv *Curve) SetLeftTangent(index int, tangent float64) {
	if index < 0 || index >= len(crv.points) || !curved.IsFinite(tangent) {
		return
	}
	crv.points[index].LeftTangent = tangent
	crv.points[index].LeftMode = Free
}

// RightTangent returns the right tangent slope of the control point at
// index, or false for an out-of-range index.
func (crv *Curve) RightTangent(index int) (float64, bool) {
	if index < 0 || index >= len(crv.points) {
		return 0, false
	}
	return crv.points[index].RightTangent, true
}

// SetRightTangent sets the right tangent slope of the control point at
// index and switches that side to mode Free. Out-of-range indices and
// non-finite slopes are ignored.
func (crv *Curve) SetRightTangent(index int, tangent float64) {
	if index < 0 || index >= len(crv.points) || !curved.IsFinite(tangent) {
		return
	}
	crv.points[index].RightTangent = tangent
	crv.points[index].RightMode = Free
}

// LeftMode returns the tangent mode of the left side of the control point
// at index, or false for an out-of-range index.
func (crv *Curve) LeftMode(index int) (TangentMode, bool) {
	if index < 0 || index >= len(crv.points) {
		return Linear, false
	}
	return crv.points[index].LeftMode, true
}

// RightMode returns the tangent mode of the right side of the control
// point at index, or false for an out-of-range index.
func (crv *Curve) RightMode(index int) (TangentMode, bool) {
	if index < 0 || index >= len(crv.points) {
		return Linear, false
	}
	return crv.points[index].RightMode, true
}

// IsFirst is a predicate: is index the first control point?
func (crv *Curve) IsFirst(index int) bool {
	return index == 0
}

// IsLast is a predicate: is index the last control point?
func (crv *Curve) IsLast(index int) bool {
	return index == len(crv.points)-1
}

// IsFirstOrLast is a predicate: is index an endpoint of the curve?
func (crv *Curve) IsFirstOrLast(index int) bool {
	return crv.IsFirst(index) || crv.IsLast(index)
}

// Clone returns an independent copy of the curve.
func (crv *Curve) Clone() *Curve {
	return &Curve{points: slices.Clone(crv.points)}
}

// Recompute Linear-mode tangents after a positional change of the point
// at index. Up to two points change: both Linear sides of the point
// itself, and the facing Linear side of each existing neighbor. Neighbor
// entries are written first, the target point last, from a working copy.
// A side whose x-run to the neighbor is (near-)zero is skipped, so stored
// tangents stay finite.
func (crv *Curve) updateAutoTangents(index int) {
	p := crv.points[index]
	if index > 0 {
		prev := crv.points[index-1]
		if p.LeftMode == Linear {
			if tan, ok := linearTangent(p.At, prev.At); ok {
				p.LeftTangent = tan
			}
		}
		if prev.RightMode == Linear {
			if tan, ok := linearTangent(prev.At, p.At); ok {
				crv.points[index-1].RightTangent = tan
			}
		}
	}
	if index+1 < len(crv.points) {
		next := crv.points[index+1]
		if p.RightMode == Linear {
			if tan, ok := linearTangent(p.At, next.At); ok {
				p.RightTangent = tan
			}
		}
		if next.LeftMode == Linear {
			if tan, ok := linearTangent(next.At, p.At); ok {
				crv.points[index+1].LeftTangent = tan
			}
		}
	}
	crv.points[index] = p
}

// Slope of the straight line from one point towards another. The second
// return value is false for a (near-)vertical line, which has no finite
// slope.
func linearTangent(from, to curved.Pair) (float64, bool) {
	if curved.Is0(to.X() - from.X()) {
		return 0, false
	}
	v := (to - from).Normalized()
	return v.Y() / v.X(), true
}

// String returns the control point positions as a (debugging) string,
// e.g. "(0,0) .. (0.5,0.9) .. (1,1)".
func (crv Curve) String() string {
	var sb strings.Builder
	for i, pt := range crv.points {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(ptstring(pt.At))
	}
	return sb.String()
}

func ptstring(p curved.Pair) string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}
