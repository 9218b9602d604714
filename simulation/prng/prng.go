// Copyright 2026 Driftlab
// This file is part of Drift, a histogram drift simulation toolkit.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Drift. If not, see <http://www.gnu.org/licenses/>.

// Package prng provides the deterministic pseudo-random stream used for
// trial generation. A trial's samples can be regenerated byte-for-byte
// from its identifier alone; the generator is not suitable for security
// purposes.
package prng

// SeedFromID hashes an identifier into a 32-bit seed using a polynomial
// rolling hash with multiplier 31 over the identifier's bytes. The hash
// wraps around in signed 32-bit arithmetic and the absolute value is
// taken, so the same identifier always yields the same seed.
func SeedFromID(id string) uint32 {
	var h int32
	for i := 0; i < len(id); i++ {
		h = h*31 + int32(id[i])
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// Stream is an xorshift32 generator. The state is never zero, so every
// draw lies in the open interval (0,1) once the stream is running.
type Stream struct {
	state uint32
}

// NewStream creates a stream for the given seed. A zero seed is mapped to
// one; xorshift32 has a fixed point at zero and would otherwise never
// leave it.
func NewStream(seed uint32) *Stream {
	if seed == 0 {
		seed = 1
	}
	return &Stream{state: seed}
}

// Float64 advances the stream and returns a uniform draw in [0,1).
func (s *Stream) Float64() float64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return float64(x) / (1 << 32)
}
