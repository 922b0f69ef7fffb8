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

func TestSensorCapabilitiesAndState(t *testing.T) {
	auth := newFakeAuthority()
	auth.sensors["/sensor/colorimeter0"] = SensorProperties{
		Kind:         icc.SensorKindColorHug,
		State:        icc.SensorStateIdle,
		Capabilities: []icc.SensorCapability{icc.SensorCapLCD, icc.SensorCapProjector},
	}

	s := NewSensor(auth, nil)
	require.NoError(t, s.SetObjectPath(context.Background(), "/sensor/colorimeter0"))

	require.True(t, s.Ready())
	require.True(t, s.HasCapability(icc.SensorCapLCD))
	require.False(t, s.HasCapability(icc.SensorCapCRT))
}
