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

// bradfordToCone is the Bradford chromatic adaptation transform matrices, used to
// adapt an XYZ colour between two reference white points. Values taken from
// the standard Bradford cone-response matrices.
var bradfordToCone = [3][3]float64{
	{+0.8951, +0.2664, -0.1614},
	{-0.7502, +1.7135, +0.0367},
	{+0.0389, -0.0685, +1.0296},
}

var bradfordFromCone = [3][3]float64{
	{0.9869929054667121, -0.14705425642099013, 0.15996265166373122},
	{0.4323052697233945, 0.5183602715367774, 0.049291228212855594},
	{-0.00852866457517732, 0.04004282165408486, 0.96848669578755},
}

func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// AdaptBradford adapts an XYZ colour from the source white point to the
// destination white point using the Bradford chromatic adaptation
// transform.
func AdaptBradford(v XYZ, src, dst XYZ) XYZ {
	coneSrc := mulVec(bradfordToCone, [3]float64{src.X, src.Y, src.Z})
	coneDst := mulVec(bradfordToCone, [3]float64{dst.X, dst.Y, dst.Z})

	cone := mulVec(bradfordToCone, [3]float64{v.X, v.Y, v.Z})
	if coneSrc[0] != 0 {
		cone[0] *= coneDst[0] / coneSrc[0]
	}
	if coneSrc[1] != 0 {
		cone[1] *= coneDst[1] / coneSrc[1]
	}
	if coneSrc[2] != 0 {
		cone[2] *= coneDst[2] / coneSrc[2]
	}

	out := mulVec(bradfordFromCone, cone)
	return XYZ{X: out[0], Y: out[1], Z: out[2]}
}

// CCT returns the correlated colour temperature in Kelvin for the given
// chromaticity, using McCamy's cubic approximation. The result is only
// meaningful for chromaticities reasonably close to the Planckian locus; it
// degrades gracefully (but inaccurately) outside that range.
func CCT(v XYZ) float64 {
	yxy := XYZToYxy(v)
	if yxy.X == 0 && yxy.Yc == 0 {
		return 0
	}

	// McCamy's approximation, via the "n" auxiliary variable.
	const xe, ye = 0.3320, 0.1858
	n := (yxy.X - xe) / (yxy.Yc - ye)
	return -449*n*n*n + 3525*n*n - 6823.3*n + 5520.33
}
