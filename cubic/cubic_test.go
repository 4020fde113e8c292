package cubic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalEndpoints(t *testing.T) {
	b := Bez{Y0: 0.2, Y1: 0.4, Y2: 0.6, Y3: 0.9}
	assert.InDelta(t, 0.2, b.Eval(0), 1e-12)
	assert.InDelta(t, 0.9, b.Eval(1), 1e-12)
}

func TestFromHermiteLine(t *testing.T) {
	// Slope 1 at both ends of a unit-width segment from 0 to 1 is a
	// straight line.
	b := FromHermite(0, 1, 1, 1, 1)
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, x, b.Eval(x), 1e-12, "at t=%g", x)
	}
}

func TestFromHermiteFlatTangents(t *testing.T) {
	// Zero end slopes give the smoothstep cubic 3t²-2t³.
	b := FromHermite(0, 1, 0, 0, 1)
	assert.InDelta(t, 0.5, b.Eval(0.5), 1e-12)
	assert.InDelta(t, 0.15625, b.Eval(0.25), 1e-12)
	assert.InDelta(t, 0, b.Deriv(0), 1e-12)
	assert.InDelta(t, 0, b.Deriv(1), 1e-12)
}

func TestDerivMatchesDifferenceQuotient(t *testing.T) {
	b := FromHermite(0.1, 0.8, -2, 0.5, 0.6)
	const h = 1e-6
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		dq := (b.Eval(x+h) - b.Eval(x-h)) / (2 * h)
		assert.InDelta(t, dq, b.Deriv(x), 1e-5, "at t=%g", x)
	}
}

func TestHalfWidthScalesControls(t *testing.T) {
	b := FromHermite(0, 1, 3, 3, 0.5)
	assert.InDelta(t, 0.5, b.Y1, 1e-12)
	assert.InDelta(t, 0.5, b.Y2, 1e-12)
}
