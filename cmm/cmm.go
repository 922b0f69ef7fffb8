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

// Package cmm provides the thread-local error-capture context that every
// call into the colour-management back-end is sandwiched by.
//
// In the original colord design the CMM is an external library (lcms2)
// reached through cgo, and the context is a thin wrapper around an opaque
// handle with a logging callback that writes into a per-context error slot.
// This rewrite's CMM back-end is the pure-Go curve/LUT evaluator in the icc
// package itself, but the error-capture discipline is unchanged: every
// operation that can fail clears the slot first and checks it after, so
// that a nil Go error and a latched CMM error can never disagree.
package cmm

import "fmt"

// Context is an opaque per-thread handle wrapping a colour-management
// back-end. It owns a latched error slot and tracks whether the Rec.709
// parametric-curve plug-in has been registered, so that profiles using ICC
// parametric curve type 1024 round-trip correctly.
//
// A Context is not safe for concurrent use; each [icc.Profile] owns exactly
// one Context for its lifetime.
type Context struct {
	err      error
	rec709   bool
	initLock chan struct{} // 1-buffered, used as a cheap mutex for compiled-transform builds
}

// New creates a CMM context with an empty error slot and registers the
// Rec.709 parametric-curve plug-in.
func New() *Context {
	c := &Context{
		rec709:   true,
		initLock: make(chan struct{}, 1),
	}
	c.initLock <- struct{}{}
	return c
}

// Free unregisters plug-ins and clears the error slot. The context must not
// be used afterwards.
func (c *Context) Free() {
	c.rec709 = false
	c.err = nil
}

// Rec709Registered reports whether the Rec.709 parametric-curve plug-in is
// active on this context.
func (c *Context) Rec709Registered() bool {
	return c.rec709
}

// Log is the logging hook a back-end call installs on the context: it
// translates a back-end failure into a latched Go error. If the slot is
// already holding an error, the existing message is prefixed with the new
// message and " & " rather than being replaced, matching the upstream
// logger's behaviour of never silently discarding the first failure in a
// chain.
func (c *Context) Log(err error) {
	if err == nil {
		return
	}
	if c.err == nil {
		c.err = err
		return
	}
	c.err = fmt.Errorf("%s & %s", err.Error(), c.err.Error())
}

// ErrorClear discards any latched error. Callers must call this before any
// operation that might latch a new one.
func (c *Context) ErrorClear() {
	c.err = nil
}

// ErrorCheck moves the latched error out of the slot, clearing it, and
// returns it (nil if none was latched).
func (c *Context) ErrorCheck() error {
	err := c.err
	c.err = nil
	return err
}

// NoData fabricates a generic "no data" error carrying the failed tag's
// 4-character signature, for use when a back-end call returns a null
// result without latching a more specific error.
func NoData(tagSignature string) error {
	return fmt.Errorf("no data for tag %q", tagSignature)
}

// Lock acquires the context's build lock, used to serialize the one-time
// compiled-transform construction; the compiled transform itself is then
// safe for concurrent read-only use by worker goroutines.
func (c *Context) Lock() {
	<-c.initLock
}

// Unlock releases the build lock acquired by Lock.
func (c *Context) Unlock() {
	c.initLock <- struct{}{}
}
