// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Map is the linear-map contract manifold types are generic over. A type
// satisfies it by returning itself from its algebraic operations.
type Map[M any] = linalg.Map[M]

// Algorithm selects how a nearly isometric map is re-projected onto the
// manifold.
type Algorithm = linalg.Algorithm

const (
	// AlgSVD re-projects via the polar factor of a thin SVD.
	AlgSVD = linalg.AlgSVD
	// AlgQRPos re-projects via a thin QR with positive diagonal.
	AlgQRPos = linalg.AlgQRPos
)

// IsIsometry reports whether WᴴW is the identity within tol.
//
// Example:
//
//	w, _ := dense.RandomIsometry(8, 3, nil)
//	linalg.IsIsometry(w, 1e-12) // true
func IsIsometry[M Map[M]](w M, tol float64) bool {
	return linalg.IsIsometry(w, tol)
}
