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
	"runtime"
	"sync"

	icc "github.com/hughsie/go-colord"
)

// Process converts a rectangular pixel buffer from the input colour space to
// the output colour space, following spec steps 1-7: validate, resolve the
// worker count, build (or reuse) the compiled transform, dispatch rows
// single- or multi-threaded, and honour cancellation.
//
// dataIn and dataOut are row-major pixel buffers; stride is the number of
// pixels between the start of consecutive rows in each buffer (normally
// equal to width, but may be larger to allow for row padding). Process does
// not allocate dataIn/dataOut; callers size them for width*height pixels at
// minimum stride.
func (pl *Pipeline) Process(ctx context.Context, dataIn, dataOut []byte, width, height, stride int) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.intent == icc.IntentUnknown {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "rendering intent not set"}
	}
	if pl.inFormat == icc.PixelFormatUnknown || pl.outFormat == icc.PixelFormatUnknown {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "pixel format not set"}
	}
	if pl.abstract != nil && pl.abstract.PCS != icc.PCSLabSpace {
		return &icc.Error{Kind: icc.ErrInvalidColorspace, Msg: "abstract profile PCS must be Lab"}
	}

	maxThreads := pl.maxThreads
	if maxThreads == 0 {
		maxThreads = runtime.NumCPU()
		if maxThreads < 1 {
			maxThreads = 1
		}
	}

	if pl.compiled == nil {
		if err := pl.build(); err != nil {
			return err
		}
	}
	c := pl.compiled

	bppIn := pl.inFormat.BytesPerPixel()
	bppOut := pl.outFormat.BytesPerPixel()
	if bppIn == 0 || bppOut == 0 {
		return &icc.Error{Kind: icc.ErrFailedToSetupTransform, Msg: "unsupported pixel format"}
	}

	rowBytesIn := stride * bppIn
	rowBytesOut := stride * bppOut

	if maxThreads == 1 {
		for row := 0; row < height; row++ {
			select {
			case <-ctx.Done():
				return &icc.Error{Kind: icc.ErrUserAbort, Msg: "transform cancelled", Wrapped: ctx.Err()}
			default:
			}
			in := dataIn[row*rowBytesIn:]
			out := dataOut[row*rowBytesOut:]
			processRow(c, pl.inFormat, pl.outFormat, pl.bpc, in, out, width)
		}
		return nil
	}

	return pl.processMultiThread(ctx, c, dataIn, dataOut, width, height, rowBytesIn, rowBytesOut, maxThreads)
}

// band is one horizontal slice of rows handed to a worker.
type band struct {
	firstRow, rows int
}

func (pl *Pipeline) processMultiThread(ctx context.Context, c *compiled, dataIn, dataOut []byte, width, height, rowBytesIn, rowBytesOut, maxThreads int) error {
	rowsPerBand := height / maxThreads
	bands := make([]band, maxThreads)
	for i := 0; i < maxThreads; i++ {
		start := i * rowsPerBand
		rows := rowsPerBand
		if i == maxThreads-1 {
			rows = height - start // last band absorbs the remainder
		}
		bands[i] = band{firstRow: start, rows: rows}
	}

	jobs := make(chan band)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	worker := func() {
		defer wg.Done()
		for b := range jobs {
			select {
			case <-ctx.Done():
				mu.Lock()
				if firstErr == nil {
					firstErr = &icc.Error{Kind: icc.ErrUserAbort, Msg: "transform cancelled", Wrapped: ctx.Err()}
				}
				mu.Unlock()
				continue
			default:
			}
			for r := 0; r < b.rows; r++ {
				row := b.firstRow + r
				in := dataIn[row*rowBytesIn:]
				out := dataOut[row*rowBytesOut:]
				processRow(c, pl.inFormat, pl.outFormat, pl.bpc, in, out, width)
			}
		}
	}

	wg.Add(maxThreads)
	for i := 0; i < maxThreads; i++ {
		go worker()
	}
	for _, b := range bands {
		select {
		case <-ctx.Done():
			mu.Lock()
			if firstErr == nil {
				firstErr = &icc.Error{Kind: icc.ErrUserAbort, Msg: "transform cancelled", Wrapped: ctx.Err()}
			}
			mu.Unlock()
		case jobs <- b:
		}
	}
	close(jobs)
	wg.Wait()

	return firstErr
}

// processRow converts the pixels of one row from in to out, threading them
// through the input transform, the optional Lab abstract transform, black
// point compensation, and the output transform.
func processRow(c *compiled, inFormat, outFormat icc.PixelFormat, bpc bool, in, out []byte, width int) {
	bppIn := inFormat.BytesPerPixel()
	bppOut := outFormat.BytesPerPixel()
	for col := 0; col < width; col++ {
		device := decodePixel(inFormat, in, col*bppIn)
		x, y, z := c.in.ToXYZ(device)
		xyz := icc.XYZ{X: x, Y: y, Z: z}

		if c.abstract != nil {
			lab := icc.XYZToLab(xyz, c.white)
			normIn := icc.NormaliseLab(lab)
			normOut := c.abstract.Apply(normIn)
			xyz = icc.LabToXYZ(icc.DenormaliseLab(normOut), c.white)
		}

		if bpc {
			xyz = applyBPC(xyz, c.srcBlack, c.dstBlack, c.white)
		}

		result := c.out.FromXYZ(xyz.X, xyz.Y, xyz.Z)
		encodePixel(outFormat, out, col*bppOut, result)
	}
}
