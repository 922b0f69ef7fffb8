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

package transform

import icc "github.com/hughsie/go-colord"

const byteScale = 1.0 / 255.0

// decodePixel reads one pixel at buf[offset:] in the given format and
// returns its channels normalised to [0,1], in device-component order
// (alpha channels, where present, are dropped).
func decodePixel(format icc.PixelFormat, buf []byte, offset int) []float64 {
	switch format {
	case icc.PixelFormatRGB24:
		return []float64{
			float64(buf[offset]) * byteScale,
			float64(buf[offset+1]) * byteScale,
			float64(buf[offset+2]) * byteScale,
		}
	case icc.PixelFormatARGB32:
		return []float64{
			float64(buf[offset+1]) * byteScale,
			float64(buf[offset+2]) * byteScale,
			float64(buf[offset+3]) * byteScale,
		}
	case icc.PixelFormatRGBA32:
		return []float64{
			float64(buf[offset]) * byteScale,
			float64(buf[offset+1]) * byteScale,
			float64(buf[offset+2]) * byteScale,
		}
	case icc.PixelFormatBGRA32:
		return []float64{
			float64(buf[offset+2]) * byteScale,
			float64(buf[offset+1]) * byteScale,
			float64(buf[offset]) * byteScale,
		}
	case icc.PixelFormatCMYK32:
		return []float64{
			float64(buf[offset]) * byteScale,
			float64(buf[offset+1]) * byteScale,
			float64(buf[offset+2]) * byteScale,
			float64(buf[offset+3]) * byteScale,
		}
	default:
		return nil
	}
}

// encodePixel writes channels (normalised [0,1], device-component order)
// into buf[offset:] in the given format, clamping out-of-range values and
// setting alpha to opaque where the format carries one.
func encodePixel(format icc.PixelFormat, buf []byte, offset int, channels []float64) {
	b := func(v float64) byte {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return byte(v*255 + 0.5)
	}
	ch := func(i int) float64 {
		if i < len(channels) {
			return channels[i]
		}
		return 0
	}
	switch format {
	case icc.PixelFormatRGB24:
		buf[offset] = b(ch(0))
		buf[offset+1] = b(ch(1))
		buf[offset+2] = b(ch(2))
	case icc.PixelFormatARGB32:
		buf[offset] = 255
		buf[offset+1] = b(ch(0))
		buf[offset+2] = b(ch(1))
		buf[offset+3] = b(ch(2))
	case icc.PixelFormatRGBA32:
		buf[offset] = b(ch(0))
		buf[offset+1] = b(ch(1))
		buf[offset+2] = b(ch(2))
		buf[offset+3] = 255
	case icc.PixelFormatBGRA32:
		buf[offset] = b(ch(2))
		buf[offset+1] = b(ch(1))
		buf[offset+2] = b(ch(0))
		buf[offset+3] = 255
	case icc.PixelFormatCMYK32:
		buf[offset] = b(ch(0))
		buf[offset+1] = b(ch(1))
		buf[offset+2] = b(ch(2))
		buf[offset+3] = b(ch(3))
	}
}
