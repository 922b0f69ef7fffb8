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
	"context"
	"testing"

	icc "github.com/hughsie/go-colord"
	"github.com/stretchr/testify/require"
)

func TestProcessIdentitySRGB(t *testing.T) {
	pl := New()
	pl.SetInput(icc.CreateDefaultSRGB())
	pl.SetOutput(icc.CreateDefaultSRGB())
	pl.SetInputPixelFormat(icc.PixelFormatRGB24)
	pl.SetOutputPixelFormat(icc.PixelFormatRGB24)
	pl.SetRenderingIntent(icc.IntentPerceptual)

	const width, height = 16, 16
	in := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		in[3*i] = 128
		in[3*i+1] = 64
		in[3*i+2] = 32
	}
	out := make([]byte, width*height*3)

	err := pl.Process(context.Background(), in, out, width, height, width)
	require.NoError(t, err)

	for i := 0; i < width*height; i++ {
		require.InDelta(t, 128, int(out[3*i]), 1)
		require.InDelta(t, 64, int(out[3*i+1]), 1)
		require.InDelta(t, 32, int(out[3*i+2]), 1)
	}
}

func TestProcessSingleVsMultiThreadMatch(t *testing.T) {
	const width, height = 32, 17 // odd height exercises the remainder band

	in := make([]byte, width*height*3)
	for i := range in {
		in[i] = byte((i * 37) % 256)
	}

	run := func(maxThreads int) []byte {
		pl := New()
		pl.SetInput(icc.CreateDefaultSRGB())
		pl.SetOutput(icc.CreateDefaultSRGB())
		pl.SetInputPixelFormat(icc.PixelFormatRGB24)
		pl.SetOutputPixelFormat(icc.PixelFormatRGB24)
		pl.SetRenderingIntent(icc.IntentRelativeColorimetric)
		pl.SetMaxThreads(maxThreads)
		out := make([]byte, width*height*3)
		err := pl.Process(context.Background(), in, out, width, height, width)
		require.NoError(t, err)
		return out
	}

	single := run(1)
	multi := run(4)
	require.Equal(t, single, multi, "multi-thread output must match single-thread output pixel for pixel")
}

func TestProcessRejectsMissingIntent(t *testing.T) {
	pl := New()
	pl.SetInputPixelFormat(icc.PixelFormatRGB24)
	pl.SetOutputPixelFormat(icc.PixelFormatRGB24)

	out := make([]byte, 3)
	in := make([]byte, 3)
	err := pl.Process(context.Background(), in, out, 1, 1, 1)
	require.Error(t, err)

	var iccErr *icc.Error
	require.ErrorAs(t, err, &iccErr)
	require.Equal(t, icc.ErrFailedToSetupTransform, iccErr.Kind)
}

func TestProcessRejectsNonLabAbstract(t *testing.T) {
	pl := New()
	pl.SetAbstract(icc.CreateDefaultSRGB()) // PCS is XYZ, not Lab
	pl.SetInputPixelFormat(icc.PixelFormatRGB24)
	pl.SetOutputPixelFormat(icc.PixelFormatRGB24)
	pl.SetRenderingIntent(icc.IntentPerceptual)

	out := make([]byte, 3)
	in := make([]byte, 3)
	err := pl.Process(context.Background(), in, out, 1, 1, 1)
	require.Error(t, err)

	var iccErr *icc.Error
	require.ErrorAs(t, err, &iccErr)
	require.Equal(t, icc.ErrInvalidColorspace, iccErr.Kind)
}

func TestProcessCancellation(t *testing.T) {
	pl := New()
	pl.SetInput(icc.CreateDefaultSRGB())
	pl.SetOutput(icc.CreateDefaultSRGB())
	pl.SetInputPixelFormat(icc.PixelFormatRGB24)
	pl.SetOutputPixelFormat(icc.PixelFormatRGB24)
	pl.SetRenderingIntent(icc.IntentPerceptual)
	pl.SetMaxThreads(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	const width, height = 4, 4
	in := make([]byte, width*height*3)
	out := make([]byte, width*height*3)
	err := pl.Process(ctx, in, out, width, height, width)
	require.Error(t, err)

	var iccErr *icc.Error
	require.ErrorAs(t, err, &iccErr)
	require.Equal(t, icc.ErrUserAbort, iccErr.Kind)
}
