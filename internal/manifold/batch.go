package manifold

import (
	"fmt"

	"github.com/geodesic-ml/geodesic/internal/linalg"
	"github.com/geodesic-ml/geodesic/internal/parallel"
)

// TransportAll carries every vector in thetas from p to q along the same
// step, sharing one evaluation of the geodesic factor across the batch.
// This is the bulk form of Transport for optimizer state with many slots
// or for tracking a whole subspace of directions.
//
// All inputs are validated before any work starts; the inputs are
// read-only and the results own fresh generators. Conjugations of
// distinct vectors are independent, so large batches fan out per cfg.
func TransportAll[M linalg.Map[M]](thetas []*Tangent[M], p *Point[M], delta *Tangent[M], alpha float64, q *Point[M], mode TransportMode, cfg parallel.Config) ([]*Tangent[M], error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, mode)
	}
	if !delta.base.Same(p) {
		return nil, fmt.Errorf("%w: transport base %v, direction anchored at %v",
			ErrInvalidTangent, p.ID(), delta.base.ID())
	}
	for i, theta := range thetas {
		if !theta.base.Same(p) {
			return nil, fmt.Errorf("%w: vector %d anchored at %v, the rest at %v",
				ErrBasePointMismatch, i, theta.base.ID(), p.ID())
		}
	}

	out := make([]*Tangent[M], len(thetas))
	if len(thetas) == 0 {
		return out, nil
	}

	switch mode {
	case TransportStiefel:
		for i, theta := range thetas {
			out[i] = &Tangent[M]{base: q, gen: theta.gen.Clone()}
		}
	case TransportParallel:
		e := delta.gen.Scale(alpha / 2).Exp()
		eh := e.Adjoint()
		parallel.For(len(thetas), func(i int) {
			gen := eh.Mul(thetas[i].gen).Mul(e).ProjectAntiHermitian()
			out[i] = &Tangent[M]{base: q, gen: gen}
		}, cfg)
	}

	return out, nil
}
