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
)

// Direction specifies the direction of a colour transformation.
type Direction int

const (
	// DeviceToPCS converts from device colour space to Profile Connection Space.
	DeviceToPCS Direction = iota
	// PCSToDevice converts from Profile Connection Space to device colour space.
	PCSToDevice
)

// Transform performs colour conversions using an ICC profile.
//
// Create a Transform using [NewTransform], then use [Transform.ToXYZ] or
// [Transform.FromXYZ] to convert colours. The Transform supports matrix/TRC
// profiles (common for displays), grayscale profiles, and LUT-based profiles
// (common for printers).
//
// A Transform is not safe for concurrent use. If the same Transform needs to be
// used from multiple goroutines, callers must provide their own synchronisation.
type Transform struct {
	profile   *Profile
	direction Direction
	intent    RenderingIntent

	// profile type determines which fields are used
	profileType profileType

	// for matrix/TRC profiles (RGB)
	matrix    Matrix3x3 // device RGB to XYZ
	matrixInv Matrix3x3 // XYZ to device RGB, valid only when direction is PCSToDevice
	trc       [3]*Curve // R, G, B TRCs
	trcInv    [3]*Curve // inverted TRCs (only for PCSToDevice)

	// for gray TRC profiles
	grayTRC    *Curve
	grayTRCInv *Curve

	// for LUT-based profiles
	lut Lut

	// white point for chromatic adaptation
	whitePoint XYZ // media white point
}

type profileType int

const (
	profileTypeUnknown profileType = iota
	profileTypeMatrixTRC
	profileTypeGrayTRC
	profileTypeLut
)

// NewTransform creates a colour transform from an ICC profile.
//
// The direction specifies whether to convert from device colours to PCS
// ([DeviceToPCS]) or from PCS to device colours ([PCSToDevice]).
// The intent selects which rendering intent to use for LUT-based profiles.
//
// After creating the transform, use [Transform.ToXYZ] or [Transform.FromXYZ]
// to convert colours.
func NewTransform(p *Profile, dir Direction, intent RenderingIntent) (*Transform, error) {
	t := &Transform{
		profile:   p,
		direction: dir,
		intent:    intent,
	}

	// detect profile type
	t.profileType = detectProfileType(p)

	switch t.profileType {
	case profileTypeMatrixTRC:
		if err := t.initMatrixTRC(); err != nil {
			return nil, err
		}
	case profileTypeGrayTRC:
		if err := t.initGrayTRC(); err != nil {
			return nil, err
		}
	case profileTypeLut:
		if err := t.initLut(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("icc: unsupported profile type")
	}

	// parse white point if available
	if data, ok := p.TagData[MediaWhitePoint]; ok {
		t.parseWhitePoint(data)
	} else {
		// default D50 white point
		t.whitePoint = D50WhitePoint
	}

	return t, nil
}

// WhitePoint returns the media white point this Transform resolved, in PCS
// XYZ. It falls back to D50 when the profile carries no mediaWhitePointTag.
func (t *Transform) WhitePoint() XYZ {
	return t.whitePoint
}

func detectProfileType(p *Profile) profileType {
	// check for LUT-based profile (takes precedence)
	if _, ok := p.TagData[AToB0]; ok {
		return profileTypeLut
	}
	if _, ok := p.TagData[AToB1]; ok {
		return profileTypeLut
	}
	if _, ok := p.TagData[AToB2]; ok {
		return profileTypeLut
	}
	if _, ok := p.TagData[BToA0]; ok {
		return profileTypeLut
	}
	if _, ok := p.TagData[BToA1]; ok {
		return profileTypeLut
	}
	if _, ok := p.TagData[BToA2]; ok {
		return profileTypeLut
	}

	// check for matrix/TRC profile
	_, hasRXYZ := p.TagData[RedMatrixColumn]
	_, hasGXYZ := p.TagData[GreenMatrixColumn]
	_, hasBXYZ := p.TagData[BlueMatrixColumn]
	_, hasRTRC := p.TagData[RedTRC]
	_, hasGTRC := p.TagData[GreenTRC]
	_, hasBTRC := p.TagData[BlueTRC]
	if hasRXYZ && hasGXYZ && hasBXYZ && hasRTRC && hasGTRC && hasBTRC {
		return profileTypeMatrixTRC
	}

	// check for gray TRC profile
	if _, ok := p.TagData[GrayTRC]; ok {
		return profileTypeGrayTRC
	}

	return profileTypeUnknown
}

func (t *Transform) initMatrixTRC() error {
	p := t.profile

	// parse matrix columns
	rXYZ, err := parseXYZ(p.TagData[RedMatrixColumn])
	if err != nil {
		return err
	}
	gXYZ, err := parseXYZ(p.TagData[GreenMatrixColumn])
	if err != nil {
		return err
	}
	bXYZ, err := parseXYZ(p.TagData[BlueMatrixColumn])
	if err != nil {
		return err
	}

	// build 3x3 matrix (columns are the XYZ values)
	t.matrix = Matrix3x3{
		rXYZ.X, gXYZ.X, bXYZ.X,
		rXYZ.Y, gXYZ.Y, bXYZ.Y,
		rXYZ.Z, gXYZ.Z, bXYZ.Z,
	}

	// compute inverse matrix only when needed
	if t.direction == PCSToDevice {
		inv, ok := t.matrix.Invert()
		if !ok {
			return errors.New("icc: singular colour matrix")
		}
		t.matrixInv = inv
	}

	// parse TRCs
	rTRC, err := DecodeCurve(p.TagData[RedTRC])
	if err != nil {
		return err
	}
	gTRC, err := DecodeCurve(p.TagData[GreenTRC])
	if err != nil {
		return err
	}
	bTRC, err := DecodeCurve(p.TagData[BlueTRC])
	if err != nil {
		return err
	}

	t.trc = [3]*Curve{rTRC, gTRC, bTRC}
	t.trcInv = [3]*Curve{rTRC, gTRC, bTRC} // same curves used for inversion

	return nil
}

func (t *Transform) initGrayTRC() error {
	p := t.profile

	grayTRC, err := DecodeCurve(p.TagData[GrayTRC])
	if err != nil {
		return err
	}

	t.grayTRC = grayTRC
	t.grayTRCInv = grayTRC

	return nil
}

func (t *Transform) initLut() error {
	p := t.profile

	// select appropriate LUT based on direction and intent
	var tagType TagType
	if t.direction == DeviceToPCS {
		switch t.intent {
		case Perceptual:
			tagType = AToB0
		case RelativeColorimetric, AbsoluteColorimetric:
			tagType = AToB1
		case Saturation:
			tagType = AToB2
		}
		// fall back to AToB0 if specific intent not available
		if _, ok := p.TagData[tagType]; !ok {
			tagType = AToB0
		}
	} else {
		switch t.intent {
		case Perceptual:
			tagType = BToA0
		case RelativeColorimetric, AbsoluteColorimetric:
			tagType = BToA1
		case Saturation:
			tagType = BToA2
		}
		// fall back to BToA0 if specific intent not available
		if _, ok := p.TagData[tagType]; !ok {
			tagType = BToA0
		}
	}

	data, ok := p.TagData[tagType]
	if !ok {
		return errors.New("icc: missing LUT tag")
	}

	lut, err := DecodeLut(data)
	if err != nil {
		return err
	}

	t.lut = lut
	return nil
}

func (t *Transform) parseWhitePoint(data []byte) {
	xyz, err := parseXYZ(data)
	if err == nil {
		t.whitePoint = xyz
	}
}

func parseXYZ(data []byte) (XYZ, error) {
	if len(data) < 20 {
		return XYZ{}, errInvalidTagData
	}
	if string(data[0:4]) != "XYZ " {
		return XYZ{}, errUnexpectedType
	}

	x := getS15Fixed16(data, 8)
	y := getS15Fixed16(data, 12)
	z := getS15Fixed16(data, 16)

	return XYZ{X: x, Y: y, Z: z}, nil
}

// Apply transforms a colour. Input/output are normalised [0,1] slices.
// For DeviceToPCS direction, input is device colour, output is PCS XYZ or Lab.
// For PCSToDevice direction, input is PCS XYZ or Lab, output is device colour.
func (t *Transform) Apply(input []float64) []float64 {
	switch t.profileType {
	case profileTypeMatrixTRC:
		return t.applyMatrixTRC(input)
	case profileTypeGrayTRC:
		return t.applyGrayTRC(input)
	case profileTypeLut:
		return t.applyLut(input)
	}
	return input
}

func (t *Transform) applyMatrixTRC(input []float64) []float64 {
	if len(input) != 3 {
		return make([]float64, 3)
	}

	if t.direction == DeviceToPCS {
		// apply TRCs to linearise
		r := t.trc[0].Evaluate(input[0])
		g := t.trc[1].Evaluate(input[1])
		b := t.trc[2].Evaluate(input[2])

		// apply matrix to get XYZ
		xyz := t.matrix.Apply([3]float64{r, g, b})
		return xyz[:]
	}

	// PCSToDevice: apply inverse matrix to get linear RGB
	rgb := t.matrixInv.Apply([3]float64{input[0], input[1], input[2]})

	// apply inverse TRCs
	r := t.trcInv[0].Invert(clamp(rgb[0], 0, 1))
	g := t.trcInv[1].Invert(clamp(rgb[1], 0, 1))
	b := t.trcInv[2].Invert(clamp(rgb[2], 0, 1))

	return []float64{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)}
}

func (t *Transform) applyGrayTRC(input []float64) []float64 {
	if len(input) != 1 {
		return make([]float64, 1)
	}

	if t.direction == DeviceToPCS {
		// apply TRC to get linear, then Y = linear value
		// XYZ for gray is (0.9642*Y, Y, 0.8249*Y) scaled by D50 white
		y := t.grayTRC.Evaluate(input[0])
		return []float64{
			t.whitePoint.X * y,
			t.whitePoint.Y * y,
			t.whitePoint.Z * y,
		}
	}

	// PCSToDevice: extract Y and apply inverse TRC
	y := input[0]
	if len(input) >= 2 {
		y = input[1] // use Y from XYZ
	}
	// normalise by white point Y
	if t.whitePoint.Y != 0 {
		y /= t.whitePoint.Y
	}
	return []float64{t.grayTRCInv.Invert(clamp(y, 0, 1))}
}

func (t *Transform) applyLut(input []float64) []float64 {
	if t.lut == nil {
		return input
	}
	return t.lut.Apply(input)
}

// ToXYZ converts device colour to PCS XYZ (D50).
// Input is a normalised [0,1] slice with the device colour values.
func (t *Transform) ToXYZ(device []float64) (X, Y, Z float64) {
	if t.direction != DeviceToPCS {
		return 0, 0, 0
	}

	result := t.Apply(device)

	// handle Lab to XYZ conversion if needed
	if t.profile.PCS == PCSLabSpace {
		if len(result) < 3 {
			return 0, 0, 0
		}
		lab := Lab{L: result[0], A: result[1], B: result[2]}
		// LUT outputs are normalised [0,1]; convert to Lab ranges
		if t.profileType == profileTypeLut {
			lab = DenormaliseLab(result)
		}
		xyz := LabToXYZ(lab, t.whitePoint)
		return xyz.X, xyz.Y, xyz.Z
	}

	if len(result) >= 3 {
		return result[0], result[1], result[2]
	}
	return 0, 0, 0
}

// FromXYZ converts PCS XYZ (D50) to device colour.
// Returns a normalised [0,1] slice with the device colour values.
func (t *Transform) FromXYZ(X, Y, Z float64) []float64 {
	if t.direction != PCSToDevice {
		return nil
	}

	var input []float64
	if t.profile.PCS == PCSLabSpace {
		lab := XYZToLab(XYZ{X: X, Y: Y, Z: Z}, t.whitePoint)
		// LUT inputs are normalised [0,1]; convert from Lab ranges
		if t.profileType == profileTypeLut {
			input = NormaliseLab(lab)
		} else {
			input = []float64{lab.L, lab.A, lab.B}
		}
	} else {
		input = []float64{X, Y, Z}
	}

	return t.Apply(input)
}

// ProfileType returns the detected type of the profile.
func (t *Transform) ProfileType() string {
	switch t.profileType {
	case profileTypeMatrixTRC:
		return "Matrix/TRC"
	case profileTypeGrayTRC:
		return "Gray TRC"
	case profileTypeLut:
		return "LUT"
	default:
		return "Unknown"
	}
}
