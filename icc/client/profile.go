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

	"go.uber.org/zap"
)

// Profile is a cache-only proxy for an ICC profile registered with the
// authority. It exposes the registry-level metadata (filename, qualifier,
// scope, ownership, ...); use the core `icc` package directly to load and
// inspect the profile's own bytes.
type Profile struct {
	mu         sync.RWMutex
	authority  Authority
	logger     *zap.Logger
	objectPath string
	props      ProfileProperties
	bound      bool
}

// NewProfile creates a Profile handle backed by the given authority.
func NewProfile(authority Authority, logger *zap.Logger) *Profile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profile{authority: authority, logger: logger}
}

// SetObjectPath performs the one-time bind to a profile object path and
// caches all of its properties.
func (p *Profile) SetObjectPath(ctx context.Context, objectPath string) error {
	props, err := p.authority.GetProfile(ctx, objectPath)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.objectPath = objectPath
	p.props = props
	p.bound = true
	return nil
}

// Invalidate drops the cached snapshot and re-fetches it from the authority.
func (p *Profile) Invalidate(ctx context.Context) error {
	p.mu.RLock()
	path := p.objectPath
	bound := p.bound
	p.mu.RUnlock()
	if !bound {
		return errors.New("client: profile handle is not bound")
	}
	props, err := p.authority.GetProfile(ctx, path)
	if err != nil {
		p.logger.Warn("profile cache refresh failed", zap.String("object_path", path), zap.Error(err))
		return err
	}
	p.mu.Lock()
	p.props = props
	p.mu.Unlock()
	return nil
}

// Properties returns the cached profile snapshot.
func (p *Profile) Properties() ProfileProperties {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.props
}

func (p *Profile) setProperty(ctx context.Context, key, value string) error {
	p.mu.RLock()
	path := p.objectPath
	p.mu.RUnlock()
	if err := p.authority.SetProfileProperty(ctx, path, key, value); err != nil {
		return err
	}
	return p.Invalidate(ctx)
}

// SetQualifier writes the profile's qualifier property, the string
// [Device.GetProfileForQualifiers] matches patterns against.
func (p *Profile) SetQualifier(ctx context.Context, qualifier string) error {
	return p.setProperty(ctx, "Qualifier", qualifier)
}

// SetTitle writes the profile's display title.
func (p *Profile) SetTitle(ctx context.Context, title string) error {
	return p.setProperty(ctx, "Title", title)
}

// PropertiesAsync is the promise-style entry point for [Profile.Properties];
// it re-fetches from the authority rather than returning the local cache, so
// callers get a consistent read even if a change notification has not yet
// arrived.
func (p *Profile) PropertiesAsync(ctx context.Context) <-chan Result[ProfileProperties] {
	out := make(chan Result[ProfileProperties], 1)
	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- Result[ProfileProperties]{Err: ctx.Err()}
		default:
			err := p.Invalidate(ctx)
			out <- Result[ProfileProperties]{Value: p.Properties(), Err: err}
		}
	}()
	return out
}
