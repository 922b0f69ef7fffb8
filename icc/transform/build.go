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

import (
	icc "github.com/hughsie/go-colord"
	"go.uber.org/zap"
)

// build resolves missing endpoints to sRGB, compiles the input/output (and
// optional abstract) transforms, and caches the result. Callers must hold
// pl.mu.
func (pl *Pipeline) build() error {
	if pl.intent == icc.IntentUnknown {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "rendering intent not set"}
	}
	if pl.inFormat == icc.PixelFormatUnknown || pl.outFormat == icc.PixelFormatUnknown {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "pixel format not set"}
	}
	if pl.abstract != nil && pl.abstract.PCS != icc.PCSLabSpace {
		return &icc.Error{Kind: icc.ErrInvalidColorspace, Msg: "abstract profile PCS must be Lab"}
	}

	input, output := pl.input, pl.output
	if input == nil {
		input = icc.CreateDefaultSRGB()
	}
	if output == nil {
		output = icc.CreateDefaultSRGB()
	}

	ri := pl.intent.ToRenderingIntent()

	inT, err := icc.NewTransform(input, icc.DeviceToPCS, ri)
	if err != nil {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "input profile: " + err.Error(), Wrapped: err}
	}
	outT, err := icc.NewTransform(output, icc.PCSToDevice, ri)
	if err != nil {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "output profile: " + err.Error(), Wrapped: err}
	}

	c := &compiled{in: inT, out: outT, white: icc.D50WhitePoint}

	if pl.abstract != nil {
		abT, err := icc.NewTransform(pl.abstract, icc.DeviceToPCS, ri)
		if err != nil {
			return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "abstract profile: " + err.Error(), Wrapped: err}
		}
		c.abstract = abT
	}

	// Warm up any lazily-built lookup tables (matrix/TRC inverse curves) while
	// still single-threaded, so the compiled transform is genuinely read-only
	// once handed to the worker pool.
	_ = outT.FromXYZ(icc.D50WhitePoint.X, icc.D50WhitePoint.Y, icc.D50WhitePoint.Z)
	if c.abstract != nil {
		c.abstract.Apply(icc.NormaliseLab(icc.Lab{L: 50, A: 0, B: 0}))
	}

	if pl.bpc {
		c.srcBlack = blackPointXYZ(inT)
		c.dstBlack = blackPointXYZ(outT)
	}

	pl.compiled = c
	pl.logger.Info("compiled transform pipeline built",
		zap.String("intent", pl.intent.String()),
		zap.Bool("bpc", pl.bpc),
		zap.Bool("abstract", pl.abstract != nil))
	return nil
}

// blackPointXYZ runs the device value (0,0,0) through t to find the PCS
// black point, the reference the scaling-method BPC below anchors to.
func blackPointXYZ(t *icc.Transform) icc.XYZ {
	x, y, z := t.ToXYZ([]float64{0, 0, 0})
	return icc.XYZ{X: x, Y: y, Z: z}
}

// applyBPC rescales v componentwise so that the source black point maps to
// the destination black point and the PCS white point is left fixed. This
// is the "scaling" black-point compensation method; it is cheaper than a
// full perceptual re-rendering and is the same approximation lcms2 falls
// back to when no ICC-tagged black point is available.
func applyBPC(v icc.XYZ, src, dst icc.XYZ, white icc.XYZ) icc.XYZ {
	scale := func(value, s, d, w float64) float64 {
		denom := w - s
		if denom == 0 {
			return value
		}
		return d + (value-s)*(w-d)/denom
	}
	return icc.XYZ{
		X: scale(v.X, src.X, dst.X, white.X),
		Y: scale(v.Y, src.Y, dst.Y, white.Y),
		Z: scale(v.Z, src.Z, dst.Z, white.Z),
	}
}
