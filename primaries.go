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

// loadPrimaries populates Red, Green, Blue, White and TemperatureK.
//
// The matrix-column tags, when present, give the primaries directly. When
// they are absent (LUT-based profiles), the primaries are instead obtained
// by running pure red/green/blue through a perceptual device-to-PCS
// transform, and the white point by running 255,255,255 through an
// absolute-colorimetric transform (so that the media white point, not the
// PCS illuminant, is what gets reported).
func (p *Profile) loadPrimaries() error {
	if err := p.loadWhitePoint(); err != nil {
		return err
	}

	if rXYZ, ok := p.TagData[RedMatrixColumn]; ok {
		gXYZ, gok := p.TagData[GreenMatrixColumn]
		bXYZ, bok := p.TagData[BlueMatrixColumn]
		if !gok || !bok {
			return newError(ErrFailedToParse, "incomplete matrix-column primaries")
		}
		r, err := parseXYZ(rXYZ)
		if err != nil {
			return wrapError(ErrFailedToParse, "rXYZ tag", err)
		}
		g, err := parseXYZ(gXYZ)
		if err != nil {
			return wrapError(ErrFailedToParse, "gXYZ tag", err)
		}
		b, err := parseXYZ(bXYZ)
		if err != nil {
			return wrapError(ErrFailedToParse, "bXYZ tag", err)
		}
		p.Red = r
		p.Green = g
		p.Blue = b
		return nil
	}

	t, err := NewTransform(p, DeviceToPCS, Perceptual)
	if err != nil {
		return wrapError(ErrFailedToSetupTransform, "perceptual device-to-PCS transform for primaries", err)
	}
	rx, ry, rz := t.ToXYZ([]float64{1, 0, 0})
	gx, gy, gz := t.ToXYZ([]float64{0, 1, 0})
	bx, by, bz := t.ToXYZ([]float64{0, 0, 1})
	p.Red = XYZ{X: rx, Y: ry, Z: rz}
	p.Green = XYZ{X: gx, Y: gy, Z: gz}
	p.Blue = XYZ{X: bx, Y: by, Z: bz}
	return nil
}

// loadWhitePoint computes the profile's media white point and correlated
// colour temperature by running device white (1,1,1) through an
// absolute-colorimetric transform, matching cd_icc_calc_whitepoint.
// TemperatureK is rounded down to the nearest 100K, as colord does.
func (p *Profile) loadWhitePoint() error {
	t, err := NewTransform(p, DeviceToPCS, AbsoluteColorimetric)
	if err != nil {
		return wrapError(ErrFailedToSetupTransform, "absolute colorimetric transform for white point", err)
	}
	x, y, z := t.ToXYZ([]float64{1, 1, 1})
	p.White = XYZ{X: x, Y: y, Z: z}

	temp := CCT(p.White)
	if temp > 0 {
		p.TemperatureK = (uint32(temp) / 100) * 100
	}
	return nil
}
