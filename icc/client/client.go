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

// Package client provides thin, typed proxies a host application uses to
// address a colour device, profile, or sensor by stable object path. A
// handle caches the properties of the object it was bound to; authoritative
// state lives in the external daemon reached through the [Authority] seam.
package client

import (
	"context"
	"time"

	icc "github.com/hughsie/go-colord"
)

// Authority is this repository's interface seam for the external session-bus
// daemon that owns device/profile/sensor registry state. A handle never
// talks to the bus directly; every round trip goes through this interface,
// so the daemon and its transport can be swapped or faked in tests.
type Authority interface {
	// GetDevice fetches the current snapshot of a device by object path.
	GetDevice(ctx context.Context, objectPath string) (DeviceProperties, error)
	// SetDeviceProperty writes one key/value pair to a device.
	SetDeviceProperty(ctx context.Context, objectPath, key, value string) error

	// GetProfile fetches the current snapshot of a profile by object path.
	GetProfile(ctx context.Context, objectPath string) (ProfileProperties, error)
	// SetProfileProperty writes one key/value pair to a profile.
	SetProfileProperty(ctx context.Context, objectPath, key, value string) error

	// GetSensor fetches the current snapshot of a sensor by object path.
	GetSensor(ctx context.Context, objectPath string) (SensorProperties, error)
}

// ProfileBinding is one device-to-profile association, as returned in a
// device's profile list.
type ProfileBinding struct {
	ObjectPath string
	Relation   icc.DeviceRelation
	Qualifier  string
}

// DeviceProperties is the authority-provided snapshot of a device.
type DeviceProperties struct {
	ID         string
	Kind       icc.DeviceKind
	Mode       icc.DeviceMode
	Colorspace icc.ColorSpace
	Model      string
	Vendor     string
	Serial     string
	Created    time.Time
	Modified   time.Time
	Metadata   map[string]string
	// Profiles is in authority-defined order: hard bindings first, and the
	// first entry is the default.
	Profiles []ProfileBinding
	Inhibited bool
}

// ProfileProperties is the authority-provided snapshot of a profile.
type ProfileProperties struct {
	ID           string
	Kind         icc.ProfileClass
	Filename     string
	Qualifier    string
	Format       string
	Title        string
	Colorspace   icc.ColorSpace
	Created      time.Time
	HasVCGT      bool
	IsSystemWide bool
	Scope        icc.ObjectScope
	Owner        string
	Metadata     map[string]string
	Warnings     []icc.ProfileWarning
}

// SensorProperties is the authority-provided snapshot of a sensor.
type SensorProperties struct {
	ID           string
	Kind         icc.SensorKind
	State        icc.SensorState
	Capabilities []icc.SensorCapability
	Serial       string
	Model        string
	Vendor       string
}

// Result is the outcome of an asynchronous authority round trip.
type Result[T any] struct {
	Value T
	Err   error
}
