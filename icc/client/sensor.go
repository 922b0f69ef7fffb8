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
	"sync"

	icc "github.com/hughsie/go-colord"
	"go.uber.org/zap"
)

// Sensor is a cache-only proxy for a measurement sensor registered with the
// authority. Sensor drivers themselves live outside this repository; this
// handle only speaks the wire vocabulary (kind, state, capabilities) a
// client needs to decide whether a sensor is usable.
type Sensor struct {
	mu         sync.RWMutex
	authority  Authority
	logger     *zap.Logger
	objectPath string
	props      SensorProperties
	bound      bool
}

// NewSensor creates a Sensor handle backed by the given authority.
func NewSensor(authority Authority, logger *zap.Logger) *Sensor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sensor{authority: authority, logger: logger}
}

// SetObjectPath performs the one-time bind to a sensor object path and
// caches its properties.
func (s *Sensor) SetObjectPath(ctx context.Context, objectPath string) error {
	props, err := s.authority.GetSensor(ctx, objectPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objectPath = objectPath
	s.props = props
	s.bound = true
	return nil
}

// Invalidate drops the cached snapshot and re-fetches it from the authority.
func (s *Sensor) Invalidate(ctx context.Context) error {
	s.mu.RLock()
	path := s.objectPath
	bound := s.bound
	s.mu.RUnlock()
	if !bound {
		return errors.New("client: sensor handle is not bound")
	}
	props, err := s.authority.GetSensor(ctx, path)
	if err != nil {
		s.logger.Warn("sensor cache refresh failed", zap.String("object_path", path), zap.Error(err))
		return err
	}
	s.mu.Lock()
	s.props = props
	s.mu.Unlock()
	return nil
}

// Properties returns the cached sensor snapshot.
func (s *Sensor) Properties() SensorProperties {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props
}

// HasCapability reports whether the sensor advertises the given capability.
func (s *Sensor) HasCapability(cap icc.SensorCapability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.props.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// Ready reports whether the sensor is idle and available for use.
func (s *Sensor) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.State == icc.SensorStateIdle
}

// PropertiesAsync is the promise-style entry point for [Sensor.Properties];
// like [Profile.PropertiesAsync] it re-fetches rather than trusting a stale
// local cache.
func (s *Sensor) PropertiesAsync(ctx context.Context) <-chan Result[SensorProperties] {
	out := make(chan Result[SensorProperties], 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- Result[SensorProperties]{Err: ctx.Err()}
		default:
			err := s.Invalidate(ctx)
			out <- Result[SensorProperties]{Value: s.Properties(), Err: err}
		}
	}()
	return out
}
