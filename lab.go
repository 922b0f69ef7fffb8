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

// D50WhitePoint is the CIE standard illuminant D50 white point in XYZ
// coordinates, the reference white of the ICC Profile Connection Space.
var D50WhitePoint = XYZ{X: d50WhitePoint[0], Y: d50WhitePoint[1], Z: d50WhitePoint[2]}

// XYZToLab converts a PCS XYZ value to CIE L*a*b*, relative to white. The
// zero value of white is treated as D50.
func XYZToLab(v XYZ, white XYZ) Lab {
	if white == (XYZ{}) {
		white = D50WhitePoint
	}

	// normalise by white point
	xr := v.X / white.X
	yr := v.Y / white.Y
	zr := v.Z / white.Z

	// f function threshold (6/29)^3
	const threshold = 216.0 / 24389.0
	// scale factor for linear part: 841/108 = (29/6)^2 / 3
	const scale = 841.0 / 108.0
	const offset = 16.0 / 116.0

	f := func(r float64) float64 {
		if r > threshold {
			return math.Cbrt(r)
		}
		return r*scale + offset
	}
	fx, fy, fz := f(xr), f(yr), f(zr)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ converts a CIE L*a*b* value to PCS XYZ, relative to white. The
// zero value of white is treated as D50.
func LabToXYZ(v Lab, white XYZ) XYZ {
	if white == (XYZ{}) {
		white = D50WhitePoint
	}

	// normalise L from [0,100] to f(Y/Yn)
	fy := (v.L + 16) / 116
	fx := v.A/500 + fy
	fz := fy - v.B/200

	// inverse f function threshold: 6/29
	const threshold = 6.0 / 29.0
	// scale factor: 108/841 = 3 * (6/29)^2
	const scale = 108.0 / 841.0
	const offset = 16.0 / 116.0

	finv := func(f float64) float64 {
		if f > threshold {
			return f * f * f
		}
		return (f - offset) * scale
	}

	return XYZ{
		X: finv(fx) * white.X,
		Y: finv(fy) * white.Y,
		Z: finv(fz) * white.Z,
	}
}

// NormaliseLab rescales a Lab value (L in [0,100], a/b in [-128,127]) to the
// [0,1] encoding [Transform.Apply] uses for LUT-based profiles.
func NormaliseLab(v Lab) []float64 {
	return []float64{
		v.L / 100.0,           // L: [0, 100] -> [0, 1]
		(v.A + 128.0) / 255.0, // a: [-128, 127] -> [0, 1]
		(v.B + 128.0) / 255.0, // b: [-128, 127] -> [0, 1]
	}
}

// DenormaliseLab reverses [NormaliseLab].
func DenormaliseLab(v []float64) Lab {
	if len(v) < 3 {
		return Lab{}
	}
	return Lab{
		L: v[0] * 100.0,       // L: [0, 1] -> [0, 100]
		A: v[1]*255.0 - 128.0, // a: [0, 1] -> [-128, 127]
		B: v[2]*255.0 - 128.0, // b: [0, 1] -> [-128, 127]
	}
}
