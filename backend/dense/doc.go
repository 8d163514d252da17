// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides the gonum-backed dense matrix backend for the
// manifold engine.
//
// # Overview
//
// This package contains:
//   - Map: a real dense matrix satisfying the linalg.Map contract
//   - Constructors: NewMap, Zeros, Identity
//   - Random generators for points and tangent directions
//
// The backend delegates factorizations and the matrix exponential to
// gonum/mat and vector arithmetic to gonum/floats. Shape violations are
// programmer errors and panic, following gonum convention; the manifold
// layer validates shapes and returns errors before they can reach the
// backend.
//
// # Basic Usage
//
//	import (
//	    "github.com/geodesic-ml/geodesic/backend/dense"
//	    "github.com/geodesic-ml/geodesic/manifold"
//	)
//
//	func main() {
//	    w, err := dense.RandomIsometry(8, 3, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    p := manifold.NewPoint(w)
//	    _ = p
//	}
package dense
