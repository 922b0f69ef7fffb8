package icc

import (
	"math"
	"testing"
)

func TestCCTD65(t *testing.T) {
	// D65 is approximately 6504K.
	d65 := XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}
	got := CCT(d65)
	if math.Abs(got-6504) > 300 {
		t.Errorf("CCT(D65) = %v, want near 6504", got)
	}
}

func TestAdaptBradfordIdentity(t *testing.T) {
	white := XYZ{X: 0.9642, Y: 1.0, Z: 0.8249}
	v := XYZ{X: 0.4, Y: 0.3, Z: 0.2}
	got := AdaptBradford(v, white, white)
	const eps = 1e-9
	if math.Abs(got.X-v.X) > eps || math.Abs(got.Y-v.Y) > eps || math.Abs(got.Z-v.Z) > eps {
		t.Errorf("AdaptBradford with src==dst = %+v, want %+v", got, v)
	}
}
