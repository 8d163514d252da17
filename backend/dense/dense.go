// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"math/rand"

	internaldense "github.com/geodesic-ml/geodesic/internal/backend/dense"
	"github.com/geodesic-ml/geodesic/linalg"
)

// Map is a real dense matrix backed by gonum.
type Map = internaldense.Map

// Compile-time check that *Map satisfies the linalg.Map contract.
var _ linalg.Map[*Map] = (*Map)(nil)

// Errors returned by the isometric projection.
var (
	ErrNoConvergence     = internaldense.ErrNoConvergence
	ErrNotTall           = internaldense.ErrNotTall
	ErrUnknownProjection = internaldense.ErrUnknownProjection
)

// NewMap builds an r×c map from row-major data. A nil data slice yields a
// zero map; otherwise len(data) must be r*c. The map takes ownership of
// data.
//
// Example:
//
//	a, err := dense.NewMap(2, 2, []float64{0, -1, 1, 0})
func NewMap(r, c int, data []float64) (*Map, error) {
	return internaldense.NewMap(r, c, data)
}

// Zeros returns an r×c zero map.
func Zeros(r, c int) *Map {
	return internaldense.Zeros(r, c)
}

// FromRows builds a map from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Map, error) {
	return internaldense.FromRows(rows)
}

// Identity returns the n×n identity map.
func Identity(n int) *Map {
	return internaldense.Identity(n)
}

// RandomNormal returns an r×c map with independent standard normal
// entries. A nil rng uses the global source.
func RandomNormal(r, c int, rng *rand.Rand) *Map {
	return internaldense.RandomNormal(r, c, rng)
}

// RandomAntiHermitian returns a random n×n anti-Hermitian generator.
func RandomAntiHermitian(n int, rng *rand.Rand) *Map {
	return internaldense.RandomAntiHermitian(n, rng)
}

// RandomIsometry returns a uniformly random r×c isometry, r >= c.
//
// Example:
//
//	w, err := dense.RandomIsometry(8, 3, nil)
//	p := manifold.NewPoint(w)
func RandomIsometry(r, c int, rng *rand.Rand) (*Map, error) {
	return internaldense.RandomIsometry(r, c, rng)
}
