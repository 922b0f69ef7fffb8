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
	"unicode/utf16"
	"unicode/utf8"
)

// OrderedMap is a string-keyed dictionary that preserves insertion order,
// used for the profile's 'meta' tag. Unlike a plain Go map, iterating an
// OrderedMap always visits keys in the order they were first set, so a
// profile round-tripped through [Profile.Metadata] and back produces the
// same tag bytes.
type OrderedMap struct {
	keys   []string
	values map[string]string
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]string)}
}

// Set records a key/value pair, appending the key to the iteration order if
// it is new.
func (m *OrderedMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, if present.
func (m *OrderedMap) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// decodeMetadata decodes an ICC 'meta' dictType tag: a record count, a
// per-record size (4 uint32 offsets/lengths: name offset, name size, value
// offset, value size, each relative to the tag start), followed by UTF-16BE
// name/value pairs.
func decodeMetadata(data []byte) (*OrderedMap, error) {
	if err := checkType("meta", data); err != nil {
		return nil, err
	}
	if len(data) < 16 {
		return nil, errInvalidTagData
	}
	count := getUint32(data, 8)
	recordSize := getUint32(data, 12)
	if recordSize < 16 {
		return nil, errInvalidTagData
	}

	m := NewOrderedMap()
	base := 16
	for i := uint32(0); i < count; i++ {
		rec := base + int(i*recordSize)
		if rec+16 > len(data) {
			return nil, errInvalidTagData
		}
		nameOff := getUint32(data, rec)
		nameSize := getUint32(data, rec+4)
		valueOff := getUint32(data, rec+8)
		valueSize := getUint32(data, rec+12)

		name, err := decodeUTF16BE(data, nameOff, nameSize)
		if err != nil {
			return nil, err
		}
		value, err := decodeUTF16BE(data, valueOff, valueSize)
		if err != nil {
			return nil, err
		}
		m.Set(name, value)
	}
	return m, nil
}

func decodeUTF16BE(data []byte, offset, size uint32) (string, error) {
	start := uint64(offset)
	end := start + uint64(size)
	if end > uint64(len(data)) || size&1 != 0 {
		return "", errInvalidTagData
	}
	d16 := make([]uint16, size/2)
	for j := range d16 {
		d16[j] = getUint16(data, int(start)+2*j)
	}
	s := string(utf16.Decode(d16))
	if !utf8.ValidString(s) {
		return "", newError(ErrCorruptionDetected, "metadata entry is not valid UTF-8")
	}
	return s, nil
}

// encode encodes m as an ICC 'meta' dictType tag.
func (m *OrderedMap) encode() []byte {
	keys := m.Keys()
	recordSize := uint32(16)
	base := 16
	strings := base + int(recordSize)*len(keys)

	var strBuf []byte
	offsets := make([][4]uint32, len(keys))
	for i, k := range keys {
		v, _ := m.Get(k)
		nameBytes := encodeUTF16BE(k)
		valueBytes := encodeUTF16BE(v)
		offsets[i] = [4]uint32{
			uint32(strings + len(strBuf)),
			uint32(len(nameBytes)),
			0, 0,
		}
		strBuf = append(strBuf, nameBytes...)
		offsets[i][2] = uint32(strings + len(strBuf))
		offsets[i][3] = uint32(len(valueBytes))
		strBuf = append(strBuf, valueBytes...)
	}

	buf := make([]byte, strings+len(strBuf))
	copy(buf[0:4], "meta")
	putUint32(buf, 8, uint32(len(keys)))
	putUint32(buf, 12, recordSize)
	for i := range keys {
		rec := base + i*int(recordSize)
		putUint32(buf, rec, offsets[i][0])
		putUint32(buf, rec+4, offsets[i][1])
		putUint32(buf, rec+8, offsets[i][2])
		putUint32(buf, rec+12, offsets[i][3])
	}
	copy(buf[strings:], strBuf)
	return buf
}

func encodeUTF16BE(s string) []byte {
	runes := []rune(s)
	var out []byte
	for _, r := range runes {
		if r <= 0xFFFF {
			out = append(out, byte(r>>8), byte(r))
			continue
		}
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		out = append(out, byte(hi>>8), byte(hi), byte(lo>>8), byte(lo))
	}
	return out
}

// SetMetadata records a key/value pair in p.Metadata and re-encodes the
// profile's 'meta' tag so the change survives a subsequent [Profile.Encode].
func (p *Profile) SetMetadata(key, value string) {
	if p.Metadata == nil {
		p.Metadata = NewOrderedMap()
	}
	p.Metadata.Set(key, value)
	p.TagData[Metadata] = p.Metadata.encode()
}

// loadMetadata reads the profile's 'meta' tag, if present, into p.Metadata.
// When the tag is absent it sets p.Metadata to an empty OrderedMap and
// returns nil.
func (p *Profile) loadMetadata() error {
	data, ok := p.TagData[Metadata]
	if !ok {
		p.Metadata = NewOrderedMap()
		return nil
	}
	m, err := decodeMetadata(data)
	if err != nil {
		return wrapError(ErrFailedToParse, "meta tag", err)
	}
	p.Metadata = m
	return nil
}
