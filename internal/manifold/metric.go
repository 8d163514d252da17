package manifold

import (
	"fmt"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Metric selects the Riemannian metric on the manifold. Only the
// Euclidean (embedded Frobenius) metric is implemented; the parameter
// exists so call sites state their assumption and adding a metric is a
// compile-visible change rather than a new stringly-typed mode.
type Metric int

const (
	// MetricEuclidean is the Frobenius metric inherited from the ambient
	// space.
	MetricEuclidean Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Inner returns the Riemannian inner product of two tangent vectors, both
// of which must be anchored at p. When a and b are the same object it
// returns ‖a‖² without a conjugate multiply; otherwise Re<a, b>.
func Inner[M linalg.Map[M]](p *Point[M], a, b *Tangent[M], metric Metric) (float64, error) {
	if metric != MetricEuclidean {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedMetric, metric)
	}
	if !a.base.Same(p) || !b.base.Same(p) {
		return 0, fmt.Errorf("%w: inner product at %v with vectors anchored at %v and %v",
			ErrBasePointMismatch, p.ID(), a.base.ID(), b.base.ID())
	}
	if a == b {
		n := a.Norm()
		return n * n, nil
	}
	d, err := a.Dot(b)
	if err != nil {
		return 0, err
	}
	return real(d), nil
}

// Project maps an arbitrary ambient direction x (same shape as W) to the
// tangent vector at p closest to it: P = Wᴴ·x expresses x in the local
// frame, and the anti-Hermitian projection of P removes the component
// normal to the manifold. This is how an ambient gradient becomes a
// Riemannian one.
func Project[M linalg.Map[M]](x M, p *Point[M], metric Metric) (*Tangent[M], error) {
	if metric != MetricEuclidean {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, metric)
	}
	w := p.Map()
	if x.Rows() != w.Rows() || x.Cols() != w.Cols() {
		return nil, fmt.Errorf("%w: ambient direction %dx%d at base point %dx%d",
			ErrDimensionMismatch, x.Rows(), x.Cols(), w.Rows(), w.Cols())
	}
	gen := w.Adjoint().Mul(x).ProjectAntiHermitian()
	return &Tangent[M]{base: p, gen: gen}, nil
}
