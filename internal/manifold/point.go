package manifold

import (
	"github.com/google/uuid"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Point is a base point on the manifold: an isometric map W together with
// an identity token. The engine never mutates W; one Point may be shared
// read-only by any number of tangent vectors.
//
// Identity is the token, not the tensor payload. Two Points built from
// numerically equal maps are different base points, and Retract issues a
// fresh token for the point it lands on. This keeps base-point checks
// O(1) and unambiguous when an optimizer revisits coordinates it has seen
// before.
type Point[M linalg.Map[M]] struct {
	id uuid.UUID
	w  M
}

// NewPoint wraps an isometric map as a base point with a fresh identity
// token. The map is not validated; use linalg.IsIsometry when ingesting
// data of unknown provenance.
func NewPoint[M linalg.Map[M]](w M) *Point[M] {
	return &Point[M]{id: uuid.New(), w: w}
}

// RestorePoint rebuilds a base point under a previously issued token.
// Intended for persistence layers that must keep tangent bookkeeping
// valid across restarts; everything else should use NewPoint.
func RestorePoint[M linalg.Map[M]](id uuid.UUID, w M) *Point[M] {
	return &Point[M]{id: id, w: w}
}

// ID returns the identity token.
func (p *Point[M]) ID() uuid.UUID {
	return p.id
}

// Map returns the underlying isometric map. Callers must treat it as
// read-only; mutating it invalidates every tangent vector anchored here.
func (p *Point[M]) Map() M {
	return p.w
}

// Same reports whether q is the same base point, by token.
func (p *Point[M]) Same(q *Point[M]) bool {
	return q != nil && p.id == q.id
}
