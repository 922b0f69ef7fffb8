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

import "os"

// SaveFlags controls optional behaviour of [Profile.SaveBytes] and
// [Profile.SaveFile].
type SaveFlags uint32

const (
	// SaveFlagsNone performs a plain save.
	SaveFlagsNone SaveFlags = 0
)

// SaveBytes serializes the profile to binary ICC data, recomputing the
// Profile ID for version 4 and later (see [Profile.Encode]). Unlike the
// reference implementation, there is only one serialization path: Go's
// in-memory []byte encode has no analogue of the broken-CMM-memory-write
// bug the temporary-file fallback guarded against, so that fallback path
// is not implemented here.
func (p *Profile) SaveBytes(_ SaveFlags) ([]byte, error) {
	data, err := p.Encode()
	if err != nil {
		return nil, wrapError(ErrFailedToSave, "encoding profile", err)
	}
	return data, nil
}

// SaveFile serializes the profile and writes it to the named file.
func (p *Profile) SaveFile(path string, flags SaveFlags) error {
	data, err := p.SaveBytes(flags)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapError(ErrFailedToSave, "writing "+path, err)
	}
	p.Filename = path
	return nil
}

// SaveDefault serializes the profile and writes it back to [Profile.Filename].
func (p *Profile) SaveDefault(flags SaveFlags) error {
	if p.Filename == "" {
		return newError(ErrFailedToSave, "profile has no associated filename")
	}
	return p.SaveFile(p.Filename, flags)
}
