// go-colord - read and manipulate ICC colour profiles
// Copyright (C) 2026  Richard Hughes <richard@hughsie.com>
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with this library; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301 USA

package icc

import "math"

// Warnings runs the closed set of sanity checks colord applies to a loaded
// profile and returns every warning that fires. Profiles are expected to
// carry at least a description and copyright; RGB profiles additionally
// get a whitepoint, VCGT monotonicity, scum-dot, gray-axis, primaries and
// D50-whitepoint check.
func (p *Profile) Warnings() []ProfileWarning {
	var warnings []ProfileWarning

	if s, err := p.Description(""); err != nil || s == "" {
		warnings = append(warnings, WarningDescriptionMissing)
	}
	if s, err := p.CopyrightText(""); err != nil || s == "" {
		warnings = append(warnings, WarningCopyrightMissing)
	}

	if p.ColorSpace != RGBSpace {
		return warnings
	}

	if w := p.checkWhitepoint(); w != WarningNone {
		warnings = append(warnings, w)
	}
	if w := p.checkVcgt(); w != WarningNone {
		warnings = append(warnings, w)
	}
	if w := p.checkScumDot(); w != WarningNone {
		warnings = append(warnings, w)
	}
	if w := p.checkGrayAxis(); w != WarningNone {
		warnings = append(warnings, w)
	}
	if w := p.checkPrimaries(); w != WarningNone {
		warnings = append(warnings, w)
	}
	if w := p.checkD50Whitepoint(); w != WarningNone {
		warnings = append(warnings, w)
	}

	return warnings
}

// checkWhitepoint flags a correlated colour temperature outside the
// plausible 3000K-10000K range.
func (p *Profile) checkWhitepoint() ProfileWarning {
	if p.TemperatureK == 0 {
		return WarningNone
	}
	if p.TemperatureK < 3000 || p.TemperatureK > 10000 {
		return WarningWhitepointUnlikely
	}
	return WarningNone
}

// checkVcgt flags a VCGT table that is not monotonically increasing across
// a 32-sample probe, sampled the same way [Profile.VCGT] would.
func (p *Profile) checkVcgt() ProfileWarning {
	const probeSize = 32
	samples, err := p.VCGT(probeSize)
	if err != nil {
		return WarningNone
	}
	var prev RGB
	for i, c := range samples {
		if i > 0 {
			if c.R < prev.R || c.G < prev.G || c.B < prev.B {
				return WarningVcgtNonMonotonic
			}
		}
		prev = c
	}
	return WarningNone
}

// checkScumDot flags a profile where Lab (100,0,0) (paper white) does not
// map to device RGB (255,255,255) under relative colorimetric intent --
// meaning ink will still be laid down on the whitest area of the page.
func (p *Profile) checkScumDot() ProfileWarning {
	t, err := NewTransform(p, PCSToDevice, RelativeColorimetric)
	if err != nil {
		return WarningNone
	}
	white := LabToXYZ(Lab{L: 100}, D50WhitePoint)
	rgb := t.FromXYZ(white.X, white.Y, white.Z)
	if len(rgb) < 3 {
		return WarningNone
	}
	r8 := RGBToRGB8(RGB{R: rgb[0], G: rgb[1], B: rgb[2]})
	if r8.R != 255 || r8.G != 255 || r8.B != 255 {
		return WarningScumDot
	}
	return WarningNone
}

// checkGrayAxis flags a display profile whose neutral ramp drifts off the
// a*/b* axis by more than 5 units, or is not monotonically increasing in
// L*.
func (p *Profile) checkGrayAxis() ProfileWarning {
	if p.Class != DisplayDeviceProfile {
		return WarningNone
	}
	t, err := NewTransform(p, DeviceToPCS, RelativeColorimetric)
	if err != nil {
		return WarningNone
	}
	const steps = 16
	const grayError = 5.0
	lastL := -1.0
	for i := 0; i < steps; i++ {
		v := float64(i) / float64(steps-1)
		x, y, z := t.ToXYZ([]float64{v, v, v})
		lab := XYZToLab(XYZ{X: x, Y: y, Z: z}, p.White)
		if math.Abs(lab.A) > grayError || math.Abs(lab.B) > grayError {
			return WarningGrayAxisInvalid
		}
		if lastL > 0 && lab.L < lastL {
			return WarningGrayAxisNonMonotonic
		}
		lastL = lab.L
	}
	return WarningNone
}

// checkPrimaries flags raw matrix-column primaries outside the envelope of
// known ultra-wide-gamut working spaces (CIE RGB / ProPhoto RGB), which
// would indicate a corrupt or nonsensical tag.
func (p *Profile) checkPrimaries() ProfileWarning {
	r, g, b := p.Red, p.Green, p.Blue
	if r == (XYZ{}) && g == (XYZ{}) && b == (XYZ{}) {
		return WarningNone
	}
	if r.X > 0.85 || r.Y < 0.15 || r.Z < -0.01 {
		return WarningPrimariesInvalid
	}
	if g.X < 0.10 || g.Y > 0.85 || g.Z < -0.01 {
		return WarningPrimariesInvalid
	}
	if b.X < 0.01 || b.Y < 0.0 || b.Z > 0.87 {
		return WarningPrimariesInvalid
	}
	return WarningNone
}

// checkD50Whitepoint runs RGBW through a relative-colorimetric transform
// into PCS XYZ and checks that the primaries' chromaticities do not lie more
// than rgbError outside a wide-gamut envelope (red x <= 0.735, y >= 0.265;
// green x >= 0.160, y <= 0.840; blue x >= 0.037, y <= 0.358), and (for
// display profiles) that white lands
// close to D50 and that the three primaries sum close to D50.
func (p *Profile) checkD50Whitepoint() ProfileWarning {
	t, err := NewTransform(p, DeviceToPCS, RelativeColorimetric)
	if err != nil {
		return WarningNone
	}

	const rgbError = 0.05
	rx, ry, rz := t.ToXYZ([]float64{1, 0, 0})
	gx, gy, gz := t.ToXYZ([]float64{0, 1, 0})
	bx, by, bz := t.ToXYZ([]float64{0, 0, 1})
	wx, wy, wz := t.ToXYZ([]float64{1, 1, 1})

	rChroma := XYZToYxy(XYZ{X: rx, Y: ry, Z: rz})
	if rChroma.X-0.735 > rgbError || 0.265-rChroma.Yc > rgbError {
		return WarningPrimariesUnlikely
	}
	gChroma := XYZToYxy(XYZ{X: gx, Y: gy, Z: gz})
	if 0.160-gChroma.X > rgbError || gChroma.Yc-0.840 > rgbError {
		return WarningPrimariesUnlikely
	}
	bChroma := XYZToYxy(XYZ{X: bx, Y: by, Z: bz})
	if 0.037-bChroma.X > rgbError || bChroma.Yc-0.358 > rgbError {
		return WarningPrimariesUnlikely
	}

	if p.Class != DisplayDeviceProfile {
		return WarningNone
	}

	const whiteError = 0.05
	if math.Abs(wx-d50WhitePoint[0]) > whiteError ||
		math.Abs(wy-d50WhitePoint[1]) > whiteError ||
		math.Abs(wz-d50WhitePoint[2]) > whiteError {
		return WarningWhitepointInvalid
	}

	const additiveError = 0.1
	sumX, sumY, sumZ := rx+gx+bx, ry+gy+by, rz+gz+bz
	if math.Abs(sumX-d50WhitePoint[0]) > additiveError ||
		math.Abs(sumY-d50WhitePoint[1]) > additiveError ||
		math.Abs(sumZ-d50WhitePoint[2]) > additiveError {
		return WarningPrimariesNonAdditive
	}

	return WarningNone
}
