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

package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrNoMatch is returned by [Device.GetProfileForQualifiers] when no
// qualifier pattern matched any bound profile, or the device is inhibited.
var ErrNoMatch = errors.New("client: no profile matched the given qualifiers")

// Device is a cache-only proxy for a colour device registered with the
// authority. The zero value is not bound to anything; call
// [Device.SetObjectPath] before using the other methods.
type Device struct {
	mu         sync.RWMutex
	authority  Authority
	logger     *zap.Logger
	objectPath string
	props      DeviceProperties
	bound      bool
}

// NewDevice creates a Device handle backed by the given authority.
func NewDevice(authority Authority, logger *zap.Logger) *Device {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Device{authority: authority, logger: logger}
}

// SetObjectPath performs the one-time bind to a device object path and
// caches all of its properties. Calling it again rebinds to a different
// object and refreshes the cache.
func (d *Device) SetObjectPath(ctx context.Context, objectPath string) error {
	props, err := d.authority.GetDevice(ctx, objectPath)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.objectPath = objectPath
	d.props = props
	d.bound = true
	return nil
}

// Invalidate drops the cached snapshot and re-fetches it from the authority.
// Call this on the authority's change notification for this object path.
func (d *Device) Invalidate(ctx context.Context) error {
	d.mu.RLock()
	path := d.objectPath
	bound := d.bound
	d.mu.RUnlock()
	if !bound {
		return errors.New("client: device handle is not bound")
	}
	props, err := d.authority.GetDevice(ctx, path)
	if err != nil {
		d.logger.Warn("device cache refresh failed", zap.String("object_path", path), zap.Error(err))
		return err
	}
	d.mu.Lock()
	d.props = props
	d.mu.Unlock()
	return nil
}

// Properties returns the cached device snapshot.
func (d *Device) Properties() DeviceProperties {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.props
}

// setProperty round-trips a key/value write to the authority and then
// re-fetches the device's properties through [Device.Invalidate] rather than
// optimistically updating the local copy, since the authority may reject or
// coerce the write.
func (d *Device) setProperty(ctx context.Context, key, value string) error {
	d.mu.RLock()
	path := d.objectPath
	d.mu.RUnlock()
	if err := d.authority.SetDeviceProperty(ctx, path, key, value); err != nil {
		return err
	}
	return d.Invalidate(ctx)
}

// SetModel writes the device's model property.
func (d *Device) SetModel(ctx context.Context, model string) error {
	return d.setProperty(ctx, "Model", model)
}

// SetVendor writes the device's vendor property.
func (d *Device) SetVendor(ctx context.Context, vendor string) error {
	return d.setProperty(ctx, "Vendor", vendor)
}

// SetInhibited sets the two-state profiling-inhibit latch. While inhibited,
// [Device.GetProfileForQualifiers] always returns [ErrNoMatch].
func (d *Device) SetInhibited(ctx context.Context, inhibited bool) error {
	value := "false"
	if inhibited {
		value = "true"
	}
	return d.setProperty(ctx, "Inhibited", value)
}

// Profiles returns the device's bound profiles in authority-defined order
// (hard bindings first; the first entry is the default).
func (d *Device) Profiles() []ProfileBinding {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]ProfileBinding, len(d.props.Profiles))
	copy(out, d.props.Profiles)
	return out
}

// ProfilesAsync returns a channel that receives the device's profile list
// exactly once. It shares its implementation with [Device.Profiles]; this is
// the promise-style entry point the same operation exposes under one name,
// per spec.md's "avoid two spellings" guidance.
func (d *Device) ProfilesAsync(ctx context.Context) <-chan Result[[]ProfileBinding] {
	out := make(chan Result[[]ProfileBinding], 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- Result[[]ProfileBinding]{Err: ctx.Err()}
		default:
			out <- Result[[]ProfileBinding]{Value: d.Profiles()}
		}
	}()
	return out
}

// GetProfileForQualifiers picks the highest-priority bound profile whose
// qualifier matches one of the given patterns. Each pattern is three
// dot-separated tokens, each token either a literal or "*"; patterns are
// tried left-to-right and the first match (against the already
// priority-ordered profile list) wins. While inhibited, this always returns
// [ErrNoMatch].
func (d *Device) GetProfileForQualifiers(qualifiers []string) (ProfileBinding, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.props.Inhibited {
		return ProfileBinding{}, ErrNoMatch
	}
	for _, pattern := range qualifiers {
		for _, pb := range d.props.Profiles {
			if qualifierMatches(pattern, pb.Qualifier) {
				return pb, nil
			}
		}
	}
	return ProfileBinding{}, ErrNoMatch
}

// GetProfileForQualifiersAsync is the promise-style entry point for
// [Device.GetProfileForQualifiers].
func (d *Device) GetProfileForQualifiersAsync(ctx context.Context, qualifiers []string) <-chan Result[ProfileBinding] {
	out := make(chan Result[ProfileBinding], 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- Result[ProfileBinding]{Err: ctx.Err()}
		default:
			pb, err := d.GetProfileForQualifiers(qualifiers)
			out <- Result[ProfileBinding]{Value: pb, Err: err}
		}
	}()
	return out
}

// qualifierMatches reports whether a dot-separated qualifier pattern matches
// a qualifier string. Both are split into exactly three tokens; a pattern
// token of "*" matches any corresponding qualifier token.
func qualifierMatches(pattern, qualifier string) bool {
	p := strings.SplitN(pattern, ".", 3)
	q := strings.SplitN(qualifier, ".", 3)
	if len(p) != 3 || len(q) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if p[i] != "*" && p[i] != q[i] {
			return false
		}
	}
	return true
}
