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

// Package transform composes one to three ICC profiles into a pixel-buffer
// conversion pipeline: an input profile, an optional Lab abstract profile,
// and an output profile, with a configurable rendering intent, black-point
// compensation flag, pixel formats, and bounded worker-pool parallelism.
package transform

import (
	"sync"

	icc "github.com/hughsie/go-colord"
	"go.uber.org/zap"
)

// Pipeline chains one to three ICC profiles into a device-to-device colour
// transform. The zero value is not usable; create one with [New].
//
// Setters invalidate the cached compiled transform; [Pipeline.Process]
// rebuilds it lazily on first use after a setter call. A Pipeline does not
// own the profiles' storage, but holds strong references to them for its
// lifetime.
type Pipeline struct {
	mu sync.Mutex

	input, abstract, output *icc.Profile
	intent                  icc.Intent
	bpc                     bool
	inFormat, outFormat     icc.PixelFormat
	maxThreads              int

	compiled *compiled
	logger   *zap.Logger
}

// compiled is the lazily-built, concurrency-safe transform pair a Process
// call runs against. Once built it is read-only: workers share it without
// further locking.
type compiled struct {
	in       *icc.Transform
	out      *icc.Transform
	abstract *icc.Transform
	white    icc.XYZ
	srcBlack icc.XYZ
	dstBlack icc.XYZ
}

// New creates an empty Pipeline. Logging is silent until [Pipeline.SetLogger]
// is called; this mirrors how the core icc package stays silent while
// packages closer to the service boundary, like this one, report through
// zap.
func New() *Pipeline {
	return &Pipeline{logger: zap.NewNop()}
}

// SetLogger installs a structured logger used to report cache invalidation
// and compiled-transform rebuilds.
func (pl *Pipeline) SetLogger(logger *zap.Logger) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	pl.logger = logger
}

func (pl *Pipeline) invalidate(setter string) {
	pl.compiled = nil
	pl.logger.Debug("transform pipeline setter invalidated compiled transform", zap.String("setter", setter))
}

// SetInput sets the input (source) profile. A nil profile resolves to the
// built-in default sRGB profile at build time.
func (pl *Pipeline) SetInput(p *icc.Profile) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.input = p
	pl.invalidate("SetInput")
}

// SetOutput sets the output (destination) profile. A nil profile resolves
// to the built-in default sRGB profile at build time.
func (pl *Pipeline) SetOutput(p *icc.Profile) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.output = p
	pl.invalidate("SetOutput")
}

// SetAbstract sets an optional abstract (Lab-to-Lab) profile spliced between
// the input and output stages, or clears it when p is nil.
func (pl *Pipeline) SetAbstract(p *icc.Profile) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.abstract = p
	pl.invalidate("SetAbstract")
}

// SetInputPixelFormat sets the memory layout of input pixel buffers.
func (pl *Pipeline) SetInputPixelFormat(f icc.PixelFormat) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.inFormat = f
	pl.invalidate("SetInputPixelFormat")
}

// SetOutputPixelFormat sets the memory layout of output pixel buffers.
func (pl *Pipeline) SetOutputPixelFormat(f icc.PixelFormat) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.outFormat = f
	pl.invalidate("SetOutputPixelFormat")
}

// SetRenderingIntent sets the rendering intent. The zero value,
// [icc.IntentUnknown], is rejected by [Pipeline.Process]: a caller must pick
// an intent explicitly rather than receive a silently-perceptual transform.
func (pl *Pipeline) SetRenderingIntent(intent icc.Intent) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.intent = intent
	pl.invalidate("SetRenderingIntent")
}

// SetBPC enables or disables black-point compensation. Off by default.
func (pl *Pipeline) SetBPC(bpc bool) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.bpc = bpc
	pl.invalidate("SetBPC")
}

// SetMaxThreads sets the worker-pool size used by [Pipeline.Process]. 0
// selects the host core count at process time; a failure to detect it
// falls back to 1.
func (pl *Pipeline) SetMaxThreads(n int) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.maxThreads = n
	pl.invalidate("SetMaxThreads")
}
