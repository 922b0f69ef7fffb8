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

import "testing"

func TestWarningsDefaultSRGBIsClean(t *testing.T) {
	p := CreateDefaultSRGB()
	// checkD50Whitepoint only runs its whitepoint/additive checks for
	// display profiles; force the class so this test exercises them.
	p.Class = DisplayDeviceProfile

	for _, w := range p.Warnings() {
		if w == WarningPrimariesNonAdditive || w == WarningPrimariesUnlikely || w == WarningPrimariesInvalid || w == WarningWhitepointInvalid {
			t.Errorf("default sRGB profile raised unexpected warning %v", w)
		}
	}
}

func TestWarningsWhitepointInvalidWhenPrimariesDontAdd(t *testing.T) {
	p := CreateDefaultSRGB()
	p.Class = DisplayDeviceProfile

	// Scale the green matrix-column primary down so red.Y + green.Y + blue.Y
	// no longer sums close to D50's Y. checkD50Whitepoint reads the matrix
	// columns back out of TagData via a transform, not the convenience
	// struct fields, so the tag itself must be rewritten.
	p.Green.Y *= 0.5
	p.TagData[GreenMatrixColumn] = encodeXYZType(p.Green)

	found := false
	for _, w := range p.Warnings() {
		if w == WarningWhitepointInvalid {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings() = %v, want WarningWhitepointInvalid", p.Warnings())
	}
}
