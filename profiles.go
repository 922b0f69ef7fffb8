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
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"time"
)

// LoadFlags controls which optional processing [LoadBytes], [LoadFile] and
// [LoadHandle] perform while bringing a decoded profile up to its full,
// queryable state.
type LoadFlags uint32

const (
	// LoadFlagsNone performs only the mandatory finalisation steps (metadata,
	// named colours, primaries and white point).
	LoadFlagsNone LoadFlags = 0

	// LoadFlagsFallbackMD5 sets [Profile.ProfileID] to the MD5 of the profile
	// data when the header carries no profile ID, and accepts an embedded ID
	// whose checksum did not validate by setting [CheckSum] to
	// [CheckSumValid] instead of leaving it at [CheckSumInvalid]. Some profiles in the wild have a stale profile ID
	// left over from an editing tool that did not update it.
	LoadFlagsFallbackMD5 LoadFlags = 1 << iota
)

// finalize runs the post-decode steps every Profile needs regardless of how
// it was constructed: decoding the 'meta', 'ncl2' tags and computing the
// primaries/white point/CCT from the profile's own transforms.
func (p *Profile) finalize(flags LoadFlags) error {
	if err := p.loadMetadata(); err != nil {
		return err
	}
	if err := p.loadNamedColors(); err != nil {
		return err
	}
	if err := p.loadCharacterization(); err != nil {
		return err
	}
	if p.ColorSpace == RGBSpace || p.ColorSpace == GraySpace {
		if err := p.loadPrimaries(); err != nil {
			return err
		}
	}
	if flags&LoadFlagsFallbackMD5 != 0 && p.CheckSum == CheckSumInvalid {
		p.CheckSum = CheckSumValid
	}
	p.loaded = true
	return nil
}

// LoadBytes decodes an ICC profile from in-memory data and brings it to its
// fully loaded state (see [Profile.finalize]).
func LoadBytes(data []byte, flags LoadFlags) (*Profile, error) {
	// Decode zeroes the header's ID field while verifying it, so keep a copy.
	var id []byte
	if len(data) >= 100 && !isZero(data[84:100]) {
		id = append([]byte(nil), data[84:100]...)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, wrapError(ErrFailedToParse, "decoding profile", err)
	}
	if err := p.finalize(flags); err != nil {
		return nil, err
	}
	if id != nil {
		p.ProfileID = hex.EncodeToString(id)
	} else if flags&LoadFlagsFallbackMD5 != 0 {
		sum := md5.Sum(data)
		p.ProfileID = hex.EncodeToString(sum[:])
	}
	return p, nil
}

// LoadFile reads and decodes an ICC profile from the named file.
func LoadFile(path string, flags LoadFlags) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrFailedToOpen, "reading "+path, err)
	}
	p, err := LoadBytes(data, flags)
	if err != nil {
		return nil, err
	}
	p.Filename = path
	p.CanDelete = true
	return p, nil
}

// LoadHandle reads and decodes an ICC profile from an already-open reader,
// for example a file descriptor shared over a D-Bus connection.
func LoadHandle(r io.Reader, flags LoadFlags) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapError(ErrFailedToOpen, "reading profile handle", err)
	}
	return LoadBytes(data, flags)
}

// sRGB primaries and white point, as matrix-column XYZ values Bradford
// adapted from the sRGB reference illuminant D65 to the ICC PCS illuminant
// D50. These are the same constants used by every hand-built sRGB ICC
// profile (e.g. Compact-ICC-Profiles' sRGB-v4.icc).
var (
	srgbRedXYZ   = XYZ{X: 0.4360747, Y: 0.2225045, Z: 0.0139322}
	srgbGreenXYZ = XYZ{X: 0.3850649, Y: 0.7168786, Z: 0.0971045}
	srgbBlueXYZ  = XYZ{X: 0.1430804, Y: 0.0606169, Z: 0.7141733}
)

// sRGB's piecewise tone curve, as ICC parametricCurveType 3 parameters
// [g, a, b, c, d]: y = (a*x+b)^g for x >= d, else y = c*x.
var srgbCurveParams = []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045}

// CreateDefaultSRGB builds a matrix/TRC ICC v4 display profile for sRGB
// entirely in memory, for use as a fallback rendering target when no device
// profile is available. It is always valid and never needs to be loaded
// from disk.
func CreateDefaultSRGB() *Profile {
	p := newMatrixProfile(
		"sRGB built-in",
		"No copyright, use freely",
		srgbRedXYZ, srgbGreenXYZ, srgbBlueXYZ,
		&Curve{FuncType: 3, Params: srgbCurveParams},
	)
	p.Class = DisplayDeviceProfile
	if err := p.finalize(LoadFlagsNone); err != nil {
		// the profile is built from known-good constants; finalize cannot
		// fail for lack of transform data.
		panic(err)
	}
	p.SetMetadata("DATA_source", "standard")
	p.SetMetadata("STANDARD_space", "srgb")
	return p
}

// EDID is the subset of parsed monitor EDID data [CreateFromEDIDData] needs:
// the basic display chromaticities and an approximate device gamma, plus the
// optional identifying strings colord records as profile metadata.
type EDID struct {
	Gamma               float64
	Red, Green, Blue    Yxy
	White               Yxy
	MD5                 string
	MonitorName         string
	SerialNumber        string
	PNPID               string
	VendorName          string
}

// Profile metadata keys used to record a profile's EDID provenance, mirrored
// from colord's CD_PROFILE_METADATA_EDID_* constants.
const (
	MetadataEDIDMd5    = "EDID_md5"
	MetadataEDIDModel  = "EDID_model"
	MetadataEDIDSerial = "EDID_serial"
	MetadataEDIDMnft   = "EDID_mnft"
	MetadataEDIDVendor = "EDID_vendor"
)

// CreateFromEDIDData builds a matrix/TRC display profile from parsed EDID
// data, attaching whatever identifying metadata the EDID carried.
func CreateFromEDIDData(edid EDID) (*Profile, error) {
	p, err := CreateFromEDID(edid.Gamma, edid.Red, edid.Green, edid.Blue, edid.White)
	if err != nil {
		return nil, err
	}
	p.TagData[Copyright] = encodeMLUC("This profile is free of known copyright restrictions.")

	if edid.MD5 != "" {
		p.SetMetadata(MetadataEDIDMd5, edid.MD5)
	}
	if edid.MonitorName != "" {
		p.SetMetadata(MetadataEDIDModel, edid.MonitorName)
	}
	if edid.SerialNumber != "" {
		p.SetMetadata(MetadataEDIDSerial, edid.SerialNumber)
	}
	if edid.PNPID != "" {
		p.SetMetadata(MetadataEDIDMnft, edid.PNPID)
	}
	if edid.VendorName != "" {
		p.SetMetadata(MetadataEDIDVendor, edid.VendorName)
	}
	return p, nil
}

// CreateFromEDID builds a matrix/TRC display profile directly from a
// device's basic display chromaticities (red/green/blue/white in CIE xyY)
// and an approximate gamma, the same inputs EDID's basic-display-parameters
// block provides.
func CreateFromEDID(gammaValue float64, red, green, blue, white Yxy) (*Profile, error) {
	if gammaValue <= 0 {
		gammaValue = 2.2
	}
	r, g, b, err := rgbPrimariesFromChromaticity(red, green, blue, white)
	if err != nil {
		return nil, err
	}

	p := newMatrixProfile("EDID-derived profile", "", r, g, b, &Curve{Gamma: gammaValue})
	p.Class = DisplayDeviceProfile
	p.RenderingIntent = Perceptual
	if err := p.finalize(LoadFlagsNone); err != nil {
		return nil, err
	}
	return p, nil
}

// rgbPrimariesFromChromaticity solves for the matrix-column primaries (in
// PCS XYZ, Bradford-adapted from the given white point to D50) that give an
// additive RGB space with the requested red/green/blue/white chromaticities
// and unit luminance at RGB (1,1,1). This is the same linear-algebra step
// lcms's cmsCreateRGBProfileTHR performs before building the profile.
func rgbPrimariesFromChromaticity(red, green, blue, white Yxy) (r, g, b XYZ, err error) {
	red.Y, green.Y, blue.Y = 1, 1, 1
	if white.Y == 0 {
		white.Y = 1
	}

	rXYZ := YxyToXYZ(red)
	gXYZ := YxyToXYZ(green)
	bXYZ := YxyToXYZ(blue)
	wXYZ := YxyToXYZ(white)

	m := [3][3]float64{
		{rXYZ.X, gXYZ.X, bXYZ.X},
		{rXYZ.Y, gXYZ.Y, bXYZ.Y},
		{rXYZ.Z, gXYZ.Z, bXYZ.Z},
	}
	inv, ok := invert3x3(m)
	if !ok {
		return XYZ{}, XYZ{}, XYZ{}, newError(ErrFailedToCreate, "degenerate primaries (red/green/blue are collinear)")
	}
	s := mulVec(inv, [3]float64{wXYZ.X, wXYZ.Y, wXYZ.Z})

	r = XYZ{X: rXYZ.X * s[0], Y: rXYZ.Y * s[0], Z: rXYZ.Z * s[0]}
	g = XYZ{X: gXYZ.X * s[1], Y: gXYZ.Y * s[1], Z: gXYZ.Z * s[1]}
	b = XYZ{X: bXYZ.X * s[2], Y: bXYZ.Y * s[2], Z: bXYZ.Z * s[2]}

	d50 := XYZ{X: d50WhitePoint[0], Y: d50WhitePoint[1], Z: d50WhitePoint[2]}
	r = AdaptBradford(r, wXYZ, d50)
	g = AdaptBradford(g, wXYZ, d50)
	b = AdaptBradford(b, wXYZ, d50)
	return r, g, b, nil
}

// invert3x3 returns the inverse of m, or ok=false if m is singular.
func invert3x3(m [3][3]float64) (inv [3][3]float64, ok bool) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return inv, false
	}
	invDet := 1 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return inv, true
}

// newMatrixProfile assembles an in-memory matrix/TRC RGB profile: the given
// primaries and a shared TRC curve for all three channels, a D50 media
// white point, and en/US description and copyright text.
func newMatrixProfile(description, copyright string, red, green, blue XYZ, trc *Curve) *Profile {
	p := &Profile{
		Version:         Version4_4_0,
		Class:           ColorSpaceProfile,
		ColorSpace:      RGBSpace,
		PCS:             PCSXYZSpace,
		CreationDate:    time.Now().UTC(),
		RenderingIntent: Perceptual,
		TagData:         make(map[TagType][]byte),
		Metadata:        NewOrderedMap(),
		CanDelete:       true,
	}

	p.TagData[ProfileDescription] = encodeMLUC(description)
	if copyright != "" {
		p.TagData[Copyright] = encodeMLUC(copyright)
	}
	p.TagData[RedMatrixColumn] = encodeXYZType(red)
	p.TagData[GreenMatrixColumn] = encodeXYZType(green)
	p.TagData[BlueMatrixColumn] = encodeXYZType(blue)
	p.TagData[MediaWhitePoint] = encodeXYZType(XYZ{X: d50WhitePoint[0], Y: d50WhitePoint[1], Z: d50WhitePoint[2]})

	curveData := trc.Encode()
	p.TagData[RedTRC] = curveData
	p.TagData[GreenTRC] = curveData
	p.TagData[BlueTRC] = curveData

	return p
}
