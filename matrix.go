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

// Matrix3x3 is a row-major 3x3 matrix, used for the device-RGB-to-XYZ
// colorant matrix carried by matrix/TRC profiles.
type Matrix3x3 [9]float64

// Apply returns m*v.
func (m Matrix3x3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Invert returns the inverse of m. ok is false if m is singular.
func (m Matrix3x3) Invert() (inv Matrix3x3, ok bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Matrix3x3{}, false
	}
	invDet := 1.0 / det

	return Matrix3x3{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}

// IsIdentity reports whether m is the 3x3 identity matrix.
func (m Matrix3x3) IsIdentity() bool {
	return m == Matrix3x3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Matrix3x4 holds the 12 values of the "mAB "/"mBA " LUT matrix stage in
// ICC tag order: m[0:9] is the row-major 3x3 matrix and m[9:12] is the
// translation applied after it.
type Matrix3x4 [12]float64

// Apply returns m*v plus the translation.
func (m Matrix3x4) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[9],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2] + m[10],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2] + m[11],
	}
}

// IsIdentity reports whether m is the identity matrix with a zero
// translation.
func (m Matrix3x4) IsIdentity() bool {
	return m == Matrix3x4{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}
}
