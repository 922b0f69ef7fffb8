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

// VCGT returns size samples of the profile's video-card gamma table ('vcgt'
// tag), each an RGB triple in [0,1] evenly spaced over the input domain. It
// returns [ErrNoData] if the profile carries no VCGT tag.
func (p *Profile) VCGT(size int) ([]RGB, error) {
	data, ok := p.TagData[Vcgt]
	if !ok {
		return nil, newError(ErrNoData, "icc does not have any VCGT data")
	}
	curves, err := decodeVcgtCurves(data)
	if err != nil {
		return nil, wrapError(ErrFailedToParse, "vcgt tag", err)
	}

	out := make([]RGB, size)
	for i := 0; i < size; i++ {
		in := float64(i) / float64(size-1)
		out[i] = RGB{
			R: curves[0].Evaluate(in),
			G: curves[1].Evaluate(in),
			B: curves[2].Evaluate(in),
		}
	}
	return out, nil
}

// SetVCGT writes a video-card gamma table to the profile's 'vcgt' tag. Each
// channel is 5-tap box-smoothed before encoding, matching the smoothing
// cmsSmoothToneCurve applies in the reference implementation.
func (p *Profile) SetVCGT(vcgt []RGB) error {
	if len(vcgt) == 0 {
		return newError(ErrNoData, "empty VCGT data")
	}
	red := make([]uint16, len(vcgt))
	green := make([]uint16, len(vcgt))
	blue := make([]uint16, len(vcgt))
	for i, c := range vcgt {
		red[i] = uint16(clamp(c.R, 0, 1) * 65535.0)
		green[i] = uint16(clamp(c.G, 0, 1) * 65535.0)
		blue[i] = uint16(clamp(c.B, 0, 1) * 65535.0)
	}
	smoothTable(red, 5)
	smoothTable(green, 5)
	smoothTable(blue, 5)

	p.TagData[Vcgt] = encodeVcgtTable(red, green, blue)
	return nil
}

// smoothTable applies a simple box filter of the given odd width in place,
// clamping at the table boundaries.
func smoothTable(table []uint16, width int) {
	if width < 3 || len(table) < width {
		return
	}
	half := width / 2
	out := make([]uint16, len(table))
	for i := range table {
		var sum, n int
		for j := -half; j <= half; j++ {
			idx := i + j
			if idx < 0 || idx >= len(table) {
				continue
			}
			sum += int(table[idx])
			n++
		}
		out[i] = uint16(sum / n)
	}
	copy(table, out)
}

func decodeVcgtCurves(data []byte) ([3]*Curve, error) {
	var curves [3]*Curve
	if err := checkType("vcgt", data); err != nil {
		return curves, err
	}
	if len(data) < 12 {
		return curves, errInvalidTagData
	}
	gammaType := getUint32(data, 8)
	switch gammaType {
	case 0:
		// formula: gamma, min, max per channel
		if len(data) < 12+3*12 {
			return curves, errInvalidTagData
		}
		for ch := 0; ch < 3; ch++ {
			off := 12 + ch*12
			gamma := getS15Fixed16(data, off)
			curves[ch] = &Curve{Gamma: gamma}
		}
	case 1:
		// table: channels, entry count, entry size, then samples
		if len(data) < 18 {
			return curves, errInvalidTagData
		}
		numChannels := int(getUint16(data, 12))
		numEntries := int(getUint16(data, 14))
		entrySize := int(getUint16(data, 16))
		if numChannels != 3 {
			return curves, errInvalidTagData
		}
		pos := 18
		for ch := 0; ch < 3; ch++ {
			table := make([]uint16, numEntries)
			for i := 0; i < numEntries; i++ {
				switch entrySize {
				case 1:
					v := uint16(data[pos])
					table[i] = v<<8 | v
					pos++
				case 2:
					table[i] = getUint16(data, pos)
					pos += 2
				default:
					return curves, errInvalidTagData
				}
			}
			curves[ch] = &Curve{Table: table}
		}
	default:
		return curves, errInvalidTagData
	}
	return curves, nil
}

func encodeVcgtTable(red, green, blue []uint16) []byte {
	n := len(red)
	buf := make([]byte, 18+n*3*2)
	copy(buf[0:4], "vcgt")
	putUint32(buf, 8, 1) // table type
	putUint16(buf, 12, 3)
	putUint16(buf, 14, uint16(n))
	putUint16(buf, 16, 2)

	pos := 18
	for _, table := range [][]uint16{red, green, blue} {
		for _, v := range table {
			putUint16(buf, pos, v)
			pos += 2
		}
	}
	return buf
}
