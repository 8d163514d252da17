// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package manifold provides Riemannian geometry on the manifold of
// isometric linear maps: column-orthonormal matrices W with WᴴW = I.
//
// # Overview
//
// This package contains:
//   - Point: a base point on the manifold with an identity token
//   - Tangent: a tangent vector anchored at a point, stored as its
//     anti-Hermitian generator
//   - Retract: geodesic movement via the matrix exponential
//   - Transport: carrying tangent vectors to a new base point
//   - Inner, Project: the Riemannian metric and the ambient projection
//
// Tangent vectors at W take the form W·A with A anti-Hermitian, so only
// the small A is stored. Moving along a tangent direction follows the
// geodesic W·exp(αA), re-projected to stay on the manifold. Vectors left
// behind at the old point are carried over by vector transport.
//
// # Basic Usage
//
//	import (
//	    "github.com/geodesic-ml/geodesic/backend/dense"
//	    "github.com/geodesic-ml/geodesic/manifold"
//	)
//
//	func main() {
//	    w, _ := dense.RandomIsometry(8, 3, nil)
//	    p := manifold.NewPoint(w)
//
//	    // Project an ambient gradient onto the tangent space.
//	    grad, _ := manifold.Project(ambient, p, manifold.MetricEuclidean)
//
//	    // Take a geodesic step against the gradient.
//	    q, _, err := manifold.Retract(p, grad, -0.1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Carry momentum to the new point.
//	    m, _ = manifold.Transport(m, p, grad, -0.1, q, manifold.TransportParallel)
//	}
//
// # Base Point Identity
//
// Every Point carries a unique identity token. Operations that combine
// tangent vectors require the same token, not merely equal matrix
// entries: a retraction returns a fresh point, and stale vectors must be
// transported before they can be used there. This turns silent numerical
// drift into explicit ErrBasePointMismatch errors.
//
// # Concurrency
//
// Points are immutable after creation. Tangent vectors are not safe for
// concurrent mutation; the non-mutating operations return fresh vectors
// and may run concurrently on shared inputs.
package manifold
