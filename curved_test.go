package curved

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Clamp(1.5, 0, 1) != 1 || Clamp(-0.5, 0, 1) != 0 || Clamp(0.3, 0, 1) != 0.3 {
		t.Errorf("Expected Clamp to limit into [0,1], does not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestPairClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(-1, 2).Clamped(Origin, UnitSquare)
	if !p.Equal(P(0, 1)) {
		t.Errorf("Expected (-1,2) clamped to unit square to be (0,1), is %v", p)
	}
	q := P(0.25, 0.75).Clamped(Origin, UnitSquare)
	if !q.Equal(P(0.25, 0.75)) {
		t.Errorf("Expected interior point to be unchanged, is %v", q)
	}
}

func TestPairNormalized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := P(3, 4).Normalized()
	if !v.Equal(P(0.6, 0.8)) {
		t.Errorf("Expected (3,4) normalized to be (0.6,0.8), is %v", v)
	}
	if !Origin.Normalized().IsOrigin() {
		t.Errorf("Expected origin to survive normalization, does not")
	}
}
