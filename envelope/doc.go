// Package envelope deals with editable one-dimensional parameter curves,
// as used for animation easing, gradients and envelope generators.
/*

A curve maps the unit interval onto itself through an ordered set of
control points, each carrying an independent tangent slope on its left and
right side. Between two consecutive control points the curve is a cubic,
given in Bézier form with the interior control ordinates derived from the
endpoint tangents:

   c1 = A.y + (d/3)·A.rightTangent
   c2 = B.y − (d/3)·B.leftTangent       with d = B.x − A.x

This is the classic Hermite-to-Bézier correspondence: endpoint values are
interpolated exactly and the tangent slopes determine the derivative at
each boundary. The model follows the Curve resource of the Godot engine:

   https://docs.godotengine.org/en/stable/classes/class_curve.html

Tangents on either side of a control point are governed by a mode. In mode
Linear (the default) a tangent tracks the straight line towards the
neighboring point and is recomputed automatically whenever positions
change. Setting a tangent explicitly switches its side to mode Free, after
which automatic recomputation leaves it alone.

# Usage

Clients either start from a preset or build a curve point by point:

   crv := envelope.Identity()                      // (0,0) .. (1,1)
   crv.AddPoint(envelope.PointAt(curved.P(0.5, 0.9)))
   y := crv.Sample(0.25)

Sampling is total: an empty curve samples to 0, a single point yields a
constant curve, and inputs outside the covered x-range extrapolate flat.
Mutators never fail either; out-of-range indices and non-finite tangent
values are silently ignored. This suits the intended caller, an
interactive editing surface evaluating the curve once per rendered pixel
column, where propagating errors mid-paint is not an option. Callers
needing strict validation pre-check indices against N().

# Caveats

Two control points may come to share an x coordinate (the editing surface
can drag a point onto its neighbor). Such zero-width segments evaluate to
their right endpoint's value, and automatic tangent recomputation skips
the degenerate side so stored tangents stay finite.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package envelope
