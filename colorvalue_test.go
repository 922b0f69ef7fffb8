package icc

import (
	"math"
	"testing"
)

func TestYxyXYZRoundTrip(t *testing.T) {
	tests := []XYZ{
		{0.9505, 1.0, 1.0890}, // D65-ish
		{0.4361, 0.2225, 0.0139},
		{0.1, 0.2, 0.3},
	}
	for _, v := range tests {
		got := YxyToXYZ(XYZToYxy(v))
		if math.Abs(got.X-v.X) > 1e-9 || math.Abs(got.Y-v.Y) > 1e-9 || math.Abs(got.Z-v.Z) > 1e-9 {
			t.Errorf("round-trip %+v -> %+v, want %+v", v, got, v)
		}
	}
}

func TestYxyZeroLuminance(t *testing.T) {
	if got := YxyToXYZ(Yxy{Y: 0}); got != (XYZ{}) {
		t.Errorf("YxyToXYZ with Y=0 = %+v, want zero", got)
	}
	if got := XYZToYxy(XYZ{}); got != (Yxy{}) {
		t.Errorf("XYZToYxy of zero = %+v, want zero", got)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := RGB8{uint8(i), uint8(i), uint8(i)}
		back := RGBToRGB8(RGB8ToRGB(v))
		if back != v {
			t.Errorf("RGB8 round-trip %d: got %+v, want %+v", i, back, v)
		}
	}

	floats := []RGB{{0, 0, 0}, {1, 1, 1}, {0.5, 0.25, 0.75}}
	for _, v := range floats {
		back := RGB8ToRGB(RGBToRGB8(v))
		const eps = 1.0 / 255.0
		if math.Abs(back.R-v.R) > eps || math.Abs(back.G-v.G) > eps || math.Abs(back.B-v.B) > eps {
			t.Errorf("RGB round-trip %+v -> %+v, differs by more than 1/255", v, back)
		}
	}
}

func TestRGBClamp(t *testing.T) {
	v := RGBToRGB8(RGB{R: -1, G: 2, B: 0.5})
	if v.R != 0 || v.G != 255 {
		t.Errorf("RGBToRGB8 clamp = %+v, want R=0 G=255", v)
	}
}
