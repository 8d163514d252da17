// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg defines the linear-map contract the manifold engine is
// generic over.
//
// # Overview
//
// This package contains:
//   - Map: the self-referential interface a backend matrix type satisfies
//   - Algorithm: the isometric re-projection algorithm selector
//   - IsIsometry: a numerical check for column orthonormality
//
// A Map implementation supplies matrix algebra (multiply, adjoint, scale,
// axpy), the matrix exponential, and the two projections the manifold
// needs: onto anti-Hermitian generators and onto isometric maps. The
// reference implementation backed by gonum lives in backend/dense.
//
// # Basic Usage
//
//	import (
//	    "github.com/geodesic-ml/geodesic/backend/dense"
//	    "github.com/geodesic-ml/geodesic/linalg"
//	)
//
//	func main() {
//	    w, _ := dense.RandomIsometry(8, 3, nil)
//	    fmt.Println(linalg.IsIsometry(w, 1e-12)) // true
//	}
package linalg
