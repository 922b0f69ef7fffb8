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
	"testing"

	icc "github.com/hughsie/go-colord"
	"github.com/stretchr/testify/require"
)

// fakeAuthority is an in-memory [Authority] stand-in for tests: it has no
// daemon/bus to round-trip to, so writes just update the stored snapshot
// directly.
type fakeAuthority struct {
	devices  map[string]DeviceProperties
	profiles map[string]ProfileProperties
	sensors  map[string]SensorProperties
}

func newFakeAuthority() *fakeAuthority {
	return &fakeAuthority{
		devices:  make(map[string]DeviceProperties),
		profiles: make(map[string]ProfileProperties),
		sensors:  make(map[string]SensorProperties),
	}
}

func (a *fakeAuthority) GetDevice(_ context.Context, objectPath string) (DeviceProperties, error) {
	return a.devices[objectPath], nil
}

func (a *fakeAuthority) SetDeviceProperty(_ context.Context, objectPath, key, value string) error {
	d := a.devices[objectPath]
	switch key {
	case "Model":
		d.Model = value
	case "Vendor":
		d.Vendor = value
	case "Inhibited":
		d.Inhibited = value == "true"
	}
	a.devices[objectPath] = d
	return nil
}

func (a *fakeAuthority) GetProfile(_ context.Context, objectPath string) (ProfileProperties, error) {
	return a.profiles[objectPath], nil
}

func (a *fakeAuthority) SetProfileProperty(_ context.Context, objectPath, key, value string) error {
	p := a.profiles[objectPath]
	switch key {
	case "Qualifier":
		p.Qualifier = value
	case "Title":
		p.Title = value
	}
	a.profiles[objectPath] = p
	return nil
}

func (a *fakeAuthority) GetSensor(_ context.Context, objectPath string) (SensorProperties, error) {
	return a.sensors[objectPath], nil
}

func TestDeviceGetProfileForQualifiers(t *testing.T) {
	auth := newFakeAuthority()
	auth.devices["/device/scanner0"] = DeviceProperties{
		ID:   "scanner0",
		Kind: icc.DeviceKindScanner,
		Profiles: []ProfileBinding{
			{ObjectPath: "/profile/hard", Relation: icc.DeviceRelationHard, Qualifier: "RGB.Matte.300dpi"},
			{ObjectPath: "/profile/soft", Relation: icc.DeviceRelationSoft, Qualifier: "RGB.Glossy.300dpi"},
		},
	}

	d := NewDevice(auth, nil)
	require.NoError(t, d.SetObjectPath(context.Background(), "/device/scanner0"))

	pb, err := d.GetProfileForQualifiers([]string{"RGB.*.*"})
	require.NoError(t, err)
	require.Equal(t, "/profile/hard", pb.ObjectPath, "hard binding must win over soft when the pattern matches both")
}

func TestDeviceGetProfileForQualifiersInhibited(t *testing.T) {
	auth := newFakeAuthority()
	auth.devices["/device/scanner0"] = DeviceProperties{
		Profiles: []ProfileBinding{
			{ObjectPath: "/profile/hard", Relation: icc.DeviceRelationHard, Qualifier: "RGB.Matte.300dpi"},
		},
	}

	d := NewDevice(auth, nil)
	require.NoError(t, d.SetObjectPath(context.Background(), "/device/scanner0"))
	require.NoError(t, d.SetInhibited(context.Background(), true))

	_, err := d.GetProfileForQualifiers([]string{"RGB.*.*"})
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestDeviceGetProfileForQualifiersNoMatch(t *testing.T) {
	auth := newFakeAuthority()
	auth.devices["/device/scanner0"] = DeviceProperties{
		Profiles: []ProfileBinding{
			{ObjectPath: "/profile/cmyk", Relation: icc.DeviceRelationHard, Qualifier: "CMYK.Matte.300dpi"},
		},
	}

	d := NewDevice(auth, nil)
	require.NoError(t, d.SetObjectPath(context.Background(), "/device/scanner0"))

	_, err := d.GetProfileForQualifiers([]string{"RGB.*.*"})
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestDeviceProfilesAsync(t *testing.T) {
	auth := newFakeAuthority()
	auth.devices["/device/display0"] = DeviceProperties{
		Profiles: []ProfileBinding{{ObjectPath: "/profile/a"}},
	}

	d := NewDevice(auth, nil)
	require.NoError(t, d.SetObjectPath(context.Background(), "/device/display0"))

	result := <-d.ProfilesAsync(context.Background())
	require.NoError(t, result.Err)
	require.Len(t, result.Value, 1)
	require.Equal(t, "/profile/a", result.Value[0].ObjectPath)
}

func TestQualifierMatches(t *testing.T) {
	cases := []struct {
		pattern, qualifier string
		want               bool
	}{
		{"RGB.*.*", "RGB.Matte.300dpi", true},
		{"RGB.Matte.*", "RGB.Matte.300dpi", true},
		{"RGB.Glossy.*", "RGB.Matte.300dpi", false},
		{"*.*.*", "CMYK.Glossy.1200dpi", true},
		{"RGB.*", "RGB.Matte.300dpi", false}, // too few tokens
	}
	for _, c := range cases {
		require.Equal(t, c.want, qualifierMatches(c.pattern, c.qualifier), "%s vs %s", c.pattern, c.qualifier)
	}
}
