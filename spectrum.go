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

package icc

// Spectrum is a measured or synthetic spectral power distribution, as
// captured by a sensor or used for irradiance calibration. It carries no
// colour science of its own; callers convert it to XYZ/Lab using the
// colorimetric observer of their choice.
type Spectrum struct {
	// Start and End are the wavelength range in nanometres of the first and
	// last sample.
	Start, End float64

	samples []float64
	pos     int
}

// NewSpectrum creates a spectrum from evenly spaced samples between start
// and end nanometres.
func NewSpectrum(start, end float64, samples []float64) *Spectrum {
	return &Spectrum{Start: start, End: end, samples: samples}
}

// Len returns the number of samples in the spectrum.
func (s *Spectrum) Len() int { return len(s.samples) }

// At returns the i-th sample value.
func (s *Spectrum) At(i int) float64 { return s.samples[i] }

// Next returns the next sample in the sequence and advances the internal
// cursor. The second return value is false once the sequence is exhausted.
func (s *Spectrum) Next() (float64, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	v := s.samples[s.pos]
	s.pos++
	return v, true
}

// Restart resets the sequence cursor to the first sample, so that Next can
// be used again from the beginning.
func (s *Spectrum) Restart() { s.pos = 0 }

// Samples returns the underlying sample slice. Callers must not modify it.
func (s *Spectrum) Samples() []float64 { return s.samples }

// WavelengthStep returns the spacing between consecutive samples, or 0 if
// the spectrum has fewer than two samples.
func (s *Spectrum) WavelengthStep() float64 {
	n := len(s.samples)
	if n < 2 {
		return 0
	}
	return (s.End - s.Start) / float64(n-1)
}
