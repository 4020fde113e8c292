package envelope

import (
	"fmt"
	"slices"

	"github.com/npillmayer/curved"
	"gopkg.in/yaml.v3"
)

// Serialized shape of one control point. Default modes (Linear) and zero
// tangents are omitted from the document and restored on decoding.
type pointRecord struct {
	X            float64     `yaml:"x"`
	Y            float64     `yaml:"y"`
	LeftTangent  float64     `yaml:"left_tangent,omitempty"`
	RightTangent float64     `yaml:"right_tangent,omitempty"`
	LeftMode     TangentMode `yaml:"left_mode,omitempty"`
	RightMode    TangentMode `yaml:"right_mode,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. A curve serializes as the
// sequence of its control points.
func (crv Curve) MarshalYAML() (interface{}, error) {
	recs := make([]pointRecord, len(crv.points))
	for i, pt := range crv.points {
		recs[i] = pointRecord{
			X:            pt.At.X(),
			Y:            pt.At.Y(),
			LeftTangent:  pt.LeftTangent,
			RightTangent: pt.RightTangent,
			LeftMode:     pt.LeftMode,
			RightMode:    pt.RightMode,
		}
	}
	return recs, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Positions are clamped into
// the unit square, points are ordered by ascending x, and non-finite
// tangent values fall back to 0, so a hand-edited document cannot put a
// decoded curve into an invalid state. Finite tangent values are taken as
// stored; no recomputation runs.
func (crv *Curve) UnmarshalYAML(value *yaml.Node) error {
	var recs []pointRecord
	if err := value.Decode(&recs); err != nil {
		return fmt.Errorf("decoding curve points: %w", err)
	}
	points := make([]Point, len(recs))
	for i, rec := range recs {
		points[i] = Point{
			At:           curved.P(rec.X, rec.Y).Clamped(curved.Origin, curved.UnitSquare),
			LeftTangent:  finiteOrZero(rec.LeftTangent),
			RightTangent: finiteOrZero(rec.RightTangent),
			LeftMode:     rec.LeftMode,
			RightMode:    rec.RightMode,
		}
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		switch {
		case a.At.X() < b.At.X():
			return -1
		case a.At.X() > b.At.X():
			return 1
		}
		return 0
	})
	crv.points = points
	return nil
}

// A decoded tangent slope must be finite, like one passed to a setter.
func finiteOrZero(tangent float64) float64 {
	if !curved.IsFinite(tangent) {
		return 0
	}
	return tangent
}

// MarshalYAML implements yaml.Marshaler, serializing the mode by name.
func (m TangentMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A missing or empty mode
// decodes to Linear, the default.
func (m *TangentMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("decoding tangent mode: %w", err)
	}
	switch name {
	case "", "linear":
		*m = Linear
	case "free":
		*m = Free
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTangentMode, name)
	}
	return nil
}
