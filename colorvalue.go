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

// XYZ is a CIE 1931 tristimulus colour value.
type XYZ struct {
	X, Y, Z float64
}

// Yxy is a CIE xyY colour value: Y is luminance, X and Yc are the x and y
// chromaticity coordinates (renamed from the lower-case "x"/"y" of the CIE
// notation, which Go cannot use as exported struct field names).
type Yxy struct {
	Y, X, Yc float64
}

// Lab is a CIE L*a*b* colour value.
type Lab struct {
	L, A, B float64
}

// RGB is a floating point RGB colour value, components normally in [0, 1]
// but not clamped by construction.
type RGB struct {
	R, G, B float64
}

// RGB8 is an 8-bit-per-channel RGB colour value.
type RGB8 struct {
	R, G, B uint8
}

// Swatch is a single named colour, as found in an ICC named-colour (NC2) tag.
type Swatch struct {
	Name string
	Lab  Lab
}

const yxyEpsilon = 1e-6

// YxyToXYZ converts a Yxy value to XYZ. It returns the zero XYZ value when
// v.Y is below 1e-6, matching the ICC convention that a vanishing luminance
// carries no chromaticity information.
func YxyToXYZ(v Yxy) XYZ {
	if v.Y < yxyEpsilon {
		return XYZ{}
	}
	return XYZ{
		X: v.X * v.Y / v.Yc,
		Y: v.Y,
		Z: (1 - v.X - v.Yc) * v.Y / v.Yc,
	}
}

// XYZToYxy converts an XYZ value to Yxy. It returns the zero Yxy value when
// |X+Y+Z| is below 1e-6.
func XYZToYxy(v XYZ) Yxy {
	sum := v.X + v.Y + v.Z
	if sum < 0 {
		sum = -sum
	}
	if sum < yxyEpsilon {
		return Yxy{}
	}
	return Yxy{
		Y:  v.Y,
		X:  v.X / (v.X + v.Y + v.Z),
		Yc: v.Y / (v.X + v.Y + v.Z),
	}
}

// RGBToRGB8 converts a float RGB value (expected in [0,1]) to an 8-bit RGB
// value, clamping out-of-range components to [0, 255].
func RGBToRGB8(v RGB) RGB8 {
	return RGB8{
		R: clampByte(v.R),
		G: clampByte(v.G),
		B: clampByte(v.B),
	}
}

// RGB8ToRGB converts an 8-bit RGB value to a float RGB value in [0,1].
func RGB8ToRGB(v RGB8) RGB {
	const scale = 1.0 / 255.0
	return RGB{
		R: float64(v.R) * scale,
		G: float64(v.G) * scale,
		B: float64(v.B) * scale,
	}
}

func clampByte(v float64) uint8 {
	v = v*255.0 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
