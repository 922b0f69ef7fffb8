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

import "unicode/utf8"

// decodeNamedColors decodes an ICC 'ncl2' (namedColor2Type) tag into a list
// of swatches. Names are nominally 7-bit ASCII but some profile vendors
// emit Latin-1 "clever" characters that break UTF-8 validation; those are
// repaired the same way colord repairs them before giving up on the entry.
func decodeNamedColors(data []byte) ([]Swatch, error) {
	if err := checkType("ncl2", data); err != nil {
		return nil, err
	}
	if len(data) < 84 {
		return nil, errInvalidTagData
	}

	count := getUint32(data, 12)
	numDeviceCoords := getUint32(data, 16)

	const nameLen = 32
	pcsLen := 6 // 3 x uint16 PCS XYZ/Lab
	deviceLen := int(numDeviceCoords) * 2
	recordLen := nameLen + pcsLen + deviceLen

	start := 84
	out := make([]Swatch, 0, count)
	for i := uint32(0); i < count; i++ {
		pos := start + int(i)*recordLen
		if pos+recordLen > len(data) {
			return nil, errInvalidTagData
		}

		name := fixUTF8String(data[pos : pos+nameLen])
		// Lab16Number encoding (ICC spec 6.3.4.2): unsigned 16-bit values
		// covering L* in [0,100] and a*/b* in [-128,127].
		l := float64(getUint16(data, pos+nameLen)) / 65535.0 * 100.0
		a := float64(getUint16(data, pos+nameLen+2))/65535.0*255.0 - 128.0
		b := float64(getUint16(data, pos+nameLen+4))/65535.0*255.0 - 128.0

		out = append(out, Swatch{
			Name: name,
			Lab:  Lab{L: l, A: a, B: b},
		})
	}
	return out, nil
}

// fixUTF8String extracts a NUL-terminated ASCII/Latin-1 name field and
// repairs the two "clever" byte sequences colord has observed in the wild:
// a bare registered-trademark sign (0xAE, meant as U+00AE) is rewritten as
// its proper two-byte UTF-8 encoding, and a stray 0x86 (an unrecognised
// formatting byte) is dropped. If the result still isn't valid UTF-8 the
// bytes beyond the first invalid one are discarded rather than returned
// corrupted.
func fixUTF8String(raw []byte) string {
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	raw = raw[:end]

	fixed := make([]byte, 0, len(raw)+4)
	for _, b := range raw {
		switch b {
		case 0xAE:
			fixed = append(fixed, 0xC2, 0xAE)
		case 0x86:
			// drop
		default:
			fixed = append(fixed, b)
		}
	}

	if utf8.Valid(fixed) {
		return string(fixed)
	}
	// give up past the first invalid byte rather than returning mojibake
	for i := range fixed {
		if !utf8.Valid(fixed[:i+1]) {
			return string(fixed[:i])
		}
	}
	return string(fixed)
}

// loadNamedColors populates p.NamedColors from the profile's 'ncl2' tag, if
// present; it is not an error for the tag to be absent.
func (p *Profile) loadNamedColors() error {
	data, ok := p.TagData[NamedColor2]
	if !ok {
		return nil
	}
	swatches, err := decodeNamedColors(data)
	if err != nil {
		return wrapError(ErrFailedToParse, "ncl2 tag", err)
	}
	p.NamedColors = swatches
	return nil
}
