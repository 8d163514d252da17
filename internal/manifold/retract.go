package manifold

import (
	"fmt"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Retract moves from base point p along delta by step alpha and returns
// the new base point together with delta re-expressed there.
//
// The step follows the geodesic W·exp(α·A): since α·A is anti-Hermitian
// its exponential is unitary, so the candidate W·E is isometric in exact
// arithmetic. The candidate is still re-projected onto the manifold (SVD
// polar factor) to absorb the exponential's floating-point drift. The
// generator is base-point-intrinsic along a geodesic, so the outgoing
// tangent vector carries an unchanged copy of A anchored at the new
// point.
//
// Fails with ErrInvalidTangent if delta is not anchored at p.
func Retract[M linalg.Map[M]](p *Point[M], delta *Tangent[M], alpha float64) (*Point[M], *Tangent[M], error) {
	if !delta.base.Same(p) {
		return nil, nil, fmt.Errorf("%w: retraction base %v, tangent anchored at %v",
			ErrInvalidTangent, p.ID(), delta.base.ID())
	}
	e := delta.gen.Scale(alpha).Exp()
	wNew, err := p.Map().Mul(e).ProjectIsometric(linalg.AlgSVD)
	if err != nil {
		return nil, nil, fmt.Errorf("manifold: retraction re-projection: %w", err)
	}
	q := NewPoint(wNew)
	return q, &Tangent[M]{base: q, gen: delta.gen.Clone()}, nil
}
