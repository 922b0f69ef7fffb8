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

// loadCharacterization populates p.CharacterizationData from the profile's
// 'targ' tag (the CGATS measurement data the profile was built from, as
// plain ASCII text). It is not an error for the tag to be absent.
func (p *Profile) loadCharacterization() error {
	data, ok := p.TagData[CharTarget]
	if !ok {
		return nil
	}
	s, err := decodeText(data)
	if err != nil {
		return wrapError(ErrFailedToParse, "targ tag", err)
	}
	p.CharacterizationData = s
	return nil
}

// SetCharacterizationData sets or clears (data == "") the profile's 'targ'
// tag.
func (p *Profile) SetCharacterizationData(data string) {
	p.CharacterizationData = data
	if data == "" {
		delete(p.TagData, CharTarget)
		return
	}
	buf := make([]byte, 8+len(data))
	copy(buf[0:4], "text")
	copy(buf[8:], data)
	p.TagData[CharTarget] = buf
}
