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

// Package identifier generates human-readable entity identifiers. Word
// identifiers are two or three English words joined by dashes; collision
// probability is not bounded or checked. Version identifiers follow the
// <7-hex-sha>[@<tag>] scheme.
package identifier

import (
	crand "crypto/rand"
	"math/big"
	"strings"
)

// Uniform yields uniform draws in [0,1).
type Uniform interface {
	Float64() float64
}

var adjectives = []string{
	"amber", "brisk", "calm", "daring", "eager", "fuzzy", "gentle", "hazy",
	"ivory", "jolly", "keen", "lively", "mellow", "nimble", "opal", "plucky",
	"quiet", "rustic", "sleek", "tidy", "urban", "vivid", "wispy", "zesty",
}

var nouns = []string{
	"anchor", "beacon", "comet", "delta", "ember", "falcon", "glacier",
	"harbor", "island", "jungle", "kestrel", "lantern", "meadow", "nebula",
	"orchid", "prairie", "quarry", "ridge", "summit", "thicket", "valley",
	"willow", "yonder", "zenith",
}

var verbs = []string{
	"drifts", "flows", "glides", "hums", "leaps", "rolls", "settles",
	"soars", "spins", "sways", "turns", "wanders",
}

// cryptoSource adapts crypto/rand to the Uniform interface. Word picks
// for ad-hoc identifiers are cryptographically sourced; this has nothing
// to do with the deterministic trial stream.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	const resolution = 1 << 53
	n, err := crand.Int(crand.Reader, big.NewInt(resolution))
	if err != nil {
		panic("identifier: crypto random source failed: " + err.Error())
	}
	return float64(n.Int64()) / resolution
}

func pick(rg Uniform, words []string) string {
	i := int(rg.Float64() * float64(len(words)))
	if i >= len(words) {
		i = len(words) - 1
	}
	return words[i]
}

// NewWith draws a word identifier from the given uniform source. Half of
// the identifiers carry a trailing verb.
func NewWith(rg Uniform) string {
	parts := []string{pick(rg, adjectives), pick(rg, nouns)}
	if rg.Float64() < 0.5 {
		parts = append(parts, pick(rg, verbs))
	}
	return strings.Join(parts, "-")
}

// New draws a word identifier from the crypto random source.
func New() string {
	return NewWith(cryptoSource{})
}
