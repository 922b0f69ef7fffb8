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

// Response generates a perceptual response curve by running three
// orthogonal ramps (pure red, pure green, pure blue) through a
// device-to-PCS-to-sRGB round trip: this profile's perceptual transform
// into PCS XYZ, then sRGB's perceptual transform from PCS XYZ to sRGB
// device space. Only RGB profiles are supported.
//
// Negative results (out-of-gamut) are clamped to zero, matching colord's
// "only save curve data if it is positive" rule.
func (p *Profile) Response(size int) ([]RGB, error) {
	if p.ColorSpace != RGBSpace {
		return nil, newError(ErrInvalidColorspace, "only RGB colorspaces are supported")
	}
	if size < 2 {
		return nil, newError(ErrNoData, "response curve size must be at least 2")
	}

	toPCS, err := NewTransform(p, DeviceToPCS, Perceptual)
	if err != nil {
		return nil, wrapError(ErrFailedToSetupTransform, "device-to-PCS transform", err)
	}
	srgb := CreateDefaultSRGB()
	toDevice, err := NewTransform(srgb, PCSToDevice, Perceptual)
	if err != nil {
		return nil, wrapError(ErrFailedToSetupTransform, "PCS-to-sRGB transform", err)
	}

	out := make([]RGB, size)
	for i := 0; i < size; i++ {
		v := float64(i) / float64(size-1)

		rx, ry, rz := toPCS.ToXYZ([]float64{v, 0, 0})
		gx, gy, gz := toPCS.ToXYZ([]float64{0, v, 0})
		bx, by, bz := toPCS.ToXYZ([]float64{0, 0, v})

		rOut := toDevice.FromXYZ(rx, ry, rz)
		gOut := toDevice.FromXYZ(gx, gy, gz)
		bOut := toDevice.FromXYZ(bx, by, bz)

		var c RGB
		if len(rOut) > 0 && rOut[0] > 0 {
			c.R = rOut[0]
		}
		if len(gOut) > 1 && gOut[1] > 0 {
			c.G = gOut[1]
		}
		if len(bOut) > 2 && bOut[2] > 0 {
			c.B = bOut[2]
		}
		out[i] = c
	}
	return out, nil
}
