// Copyright 2026 Geodesic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"github.com/google/uuid"

	"github.com/geodesic-ml/geodesic/internal/linalg"
	"github.com/geodesic-ml/geodesic/internal/manifold"
	"github.com/geodesic-ml/geodesic/internal/parallel"
)

// Point is a base point on the manifold: an isometric map W plus the
// identity token that anchors tangent vectors to it.
type Point[M linalg.Map[M]] = manifold.Point[M]

// Tangent is a tangent vector at a base point, stored as its
// anti-Hermitian generator.
type Tangent[M linalg.Map[M]] = manifold.Tangent[M]

// Metric selects the Riemannian metric.
type Metric = manifold.Metric

// MetricEuclidean is the Frobenius metric inherited from the ambient space.
const MetricEuclidean = manifold.MetricEuclidean

// TransportMode selects the vector transport algorithm.
type TransportMode = manifold.TransportMode

const (
	// TransportParallel conjugates the generator by the half-step
	// geodesic factor.
	TransportParallel = manifold.TransportParallel
	// TransportStiefel reuses the generator unchanged at the new point.
	TransportStiefel = manifold.TransportStiefel
)

// Errors returned by manifold operations.
var (
	ErrBasePointMismatch = manifold.ErrBasePointMismatch
	ErrInvalidTangent    = manifold.ErrInvalidTangent
	ErrUnsupportedMetric = manifold.ErrUnsupportedMetric
	ErrUnknownAlgorithm  = manifold.ErrUnknownAlgorithm
	ErrDimensionMismatch = manifold.ErrDimensionMismatch
)

// NewPoint wraps an isometric map as a base point with a fresh identity
// token. The point takes ownership of w.
//
// Example:
//
//	w, _ := dense.RandomIsometry(8, 3, nil)
//	p := manifold.NewPoint(w)
func NewPoint[M linalg.Map[M]](w M) *Point[M] {
	return manifold.NewPoint(w)
}

// RestorePoint rebuilds a point with a known identity token, as recorded
// by a checkpoint. Tangent vectors anchored to the original token combine
// with the restored point.
func RestorePoint[M linalg.Map[M]](id uuid.UUID, w M) *Point[M] {
	return manifold.RestorePoint(id, w)
}

// NewTangent anchors the generator gen at base. The generator must be
// square with the base point's domain dimension; the tangent vector takes
// ownership of it.
func NewTangent[M linalg.Map[M]](base *Point[M], gen M) (*Tangent[M], error) {
	return manifold.NewTangent(base, gen)
}

// ZeroTangent returns the zero tangent vector at p.
func ZeroTangent[M linalg.Map[M]](p *Point[M]) *Tangent[M] {
	return manifold.ZeroTangent(p)
}

// CheckBase returns the base point shared by a and b, or
// ErrBasePointMismatch when they are anchored at different points.
func CheckBase[M linalg.Map[M]](a, b *Tangent[M]) (*Point[M], error) {
	return manifold.CheckBase(a, b)
}

// Inner returns the Riemannian inner product of two tangent vectors
// anchored at p.
//
// Example:
//
//	sq, err := manifold.Inner(p, grad, grad, manifold.MetricEuclidean)
//	// sq == grad.Norm()²
func Inner[M linalg.Map[M]](p *Point[M], a, b *Tangent[M], metric Metric) (float64, error) {
	return manifold.Inner(p, a, b, metric)
}

// Project maps an ambient direction x to the closest tangent vector at p.
// This is how an ambient gradient becomes a Riemannian one.
func Project[M linalg.Map[M]](x M, p *Point[M], metric Metric) (*Tangent[M], error) {
	return manifold.Project(x, p, metric)
}

// Retract moves from p along delta by step alpha on the geodesic
// W·exp(αA), re-projected onto the manifold. It returns the new point and
// delta rebased there.
//
// Example:
//
//	q, moved, err := manifold.Retract(p, grad, -0.1)
func Retract[M linalg.Map[M]](p *Point[M], delta *Tangent[M], alpha float64) (*Point[M], *Tangent[M], error) {
	return manifold.Retract(p, delta, alpha)
}

// Transport carries theta, anchored at p, to the point q reached by
// retracting along delta with step alpha. The result is a fresh tangent
// vector; theta is untouched.
//
// Example:
//
//	m, err := manifold.Transport(m, p, grad, -0.1, q, manifold.TransportParallel)
func Transport[M linalg.Map[M]](theta *Tangent[M], p *Point[M], delta *Tangent[M], alpha float64, q *Point[M], mode TransportMode) (*Tangent[M], error) {
	return manifold.Transport(theta, p, delta, alpha, q, mode)
}

// TransportInPlace is Transport writing into theta's generator storage.
// On error theta is left untouched.
func TransportInPlace[M linalg.Map[M]](theta *Tangent[M], p *Point[M], delta *Tangent[M], alpha float64, q *Point[M], mode TransportMode) (*Tangent[M], error) {
	return manifold.TransportInPlace(theta, p, delta, alpha, q, mode)
}

// TransportAll carries every vector in thetas from p to q along the same
// step, evaluating the geodesic factor once for the whole batch and
// fanning the per-vector work out across CPU cores. Use it when moving
// optimizer state with many slots.
func TransportAll[M linalg.Map[M]](thetas []*Tangent[M], p *Point[M], delta *Tangent[M], alpha float64, q *Point[M], mode TransportMode) ([]*Tangent[M], error) {
	return manifold.TransportAll(thetas, p, delta, alpha, q, mode, parallel.DefaultConfig())
}
