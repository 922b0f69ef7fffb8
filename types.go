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

import (
	"errors"
	"unicode/utf16"
)

func decodeText(data []byte) (string, error) {
	err := checkType("text", data)
	if err != nil {
		return "", err
	}

	if len(data) < 8 {
		return "", errInvalidTagData
	}
	start := 8
	end := len(data)
	for end-1 > start && data[end-1] == 0 {
		end--
	}
	return string(data[start:end]), nil
}

// MultiLocalizedUnicode represents a localized Unicode string.
type MultiLocalizedUnicode []LocalizedUnicode

// LocalizedUnicode represents a language-country pair.
type LocalizedUnicode struct {
	Language string
	Country  string
	Value    string
}

func decodeMLUC(data []byte) (MultiLocalizedUnicode, error) {
	err := checkType("mluc", data)
	if err != nil {
		return nil, err
	}

	if len(data) < 12 {
		return nil, errInvalidTagData
	}
	n := getUint32(data, 8)

	if n == 0 || uint64(len(data)) < 16+12*uint64(n) {
		return nil, errInvalidTagData
	}
	res := make(MultiLocalizedUnicode, n)
	for i := range res {
		language := string(data[16+12*i : 16+12*i+2])
		country := string(data[16+12*i+2 : 16+12*i+4])
		length := getUint32(data, 16+12*i+4)
		offset := getUint32(data, 16+12*i+8)

		start := uint64(offset)
		end := start + uint64(length)
		if end > uint64(len(data)) || length&1 != 0 {
			return nil, errInvalidTagData
		}

		d16 := make([]uint16, length/2)
		for j := range d16 {
			d16[j] = uint16(data[start+2*uint64(j)])<<8 | uint16(data[start+2*uint64(j)+1])
		}
		res[i] = LocalizedUnicode{
			Language: language,
			Country:  country,
			Value:    string(utf16.Decode(d16)),
		}
	}
	return res, nil
}

// encodeMLUC encodes a single-entry multiLocalizedUnicodeType tag for the
// "en"/"US" locale, the only locale the profile constructors in profiles.go
// need to emit.
func encodeMLUC(value string) []byte {
	d16 := utf16.Encode([]rune(value))
	strBytes := make([]byte, len(d16)*2)
	for i, u := range d16 {
		strBytes[2*i] = byte(u >> 8)
		strBytes[2*i+1] = byte(u)
	}

	const recordsOffset = 16
	buf := make([]byte, recordsOffset+12+len(strBytes))
	copy(buf[0:4], "mluc")
	putUint32(buf, 8, 1)  // number of records
	putUint32(buf, 12, 12) // record size
	copy(buf[recordsOffset:recordsOffset+2], "en")
	copy(buf[recordsOffset+2:recordsOffset+4], "US")
	putUint32(buf, recordsOffset+4, uint32(len(strBytes)))
	putUint32(buf, recordsOffset+8, uint32(recordsOffset+12))
	copy(buf[recordsOffset+12:], strBytes)
	return buf
}

// encodeXYZType encodes an XYZType tag (a single XYZNumber) as used by the
// rXYZ/gXYZ/bXYZ/wtpt tags of a matrix/TRC profile.
func encodeXYZType(v XYZ) []byte {
	buf := make([]byte, 20)
	copy(buf[0:4], "XYZ ")
	putS15Fixed16(buf, 8, v.X)
	putS15Fixed16(buf, 12, v.Y)
	putS15Fixed16(buf, 16, v.Z)
	return buf
}

func checkType(typeID string, data []byte) error {
	bb := []byte(typeID)
	for i, b := range bb {
		if i >= len(data) || data[i] != b {
			return errUnexpectedType
		}
	}
	return nil
}

var (
	errMissingTag     = errors.New("missing tag")
	errUnexpectedType = errors.New("unexpected tag data type")
	errInvalidTagData = errors.New("invalid tag data")
)
