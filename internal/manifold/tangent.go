package manifold

import (
	"fmt"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Tangent is a tangent vector Δ = (W, A): an anti-Hermitian generator A
// anchored at a base point with isometry W, representing the ambient
// direction W·A.
//
// A Tangent owns its generator exclusively. Constructors and the manifold
// operators deep-copy generators instead of aliasing them, so mutating
// methods (ScaleInPlace, Axpy, Axpby, TransportInPlace) only ever write
// to the receiver's storage. The base point is shared and immutable.
type Tangent[M linalg.Map[M]] struct {
	base *Point[M]
	gen  M
}

// NewTangent anchors generator gen at base. The generator must be square
// on the base's domain space (Cols(W)×Cols(W)); NewTangent takes
// ownership of gen, so pass a clone if the caller keeps using it.
func NewTangent[M linalg.Map[M]](base *Point[M], gen M) (*Tangent[M], error) {
	n := base.Map().Cols()
	if gen.Rows() != gen.Cols() || gen.Rows() != n {
		return nil, fmt.Errorf("%w: generator %dx%d for base with domain dimension %d",
			ErrDimensionMismatch, gen.Rows(), gen.Cols(), n)
	}
	return &Tangent[M]{base: base, gen: gen}, nil
}

// CheckBase returns the base point shared by a and b, or
// ErrBasePointMismatch if their tokens differ. Every binary vector
// operation calls this first.
func CheckBase[M linalg.Map[M]](a, b *Tangent[M]) (*Point[M], error) {
	if !a.base.Same(b.base) {
		return nil, ErrBasePointMismatch
	}
	return a.base, nil
}

// Base returns the base point.
func (t *Tangent[M]) Base() *Point[M] {
	return t.base
}

// Generator returns the owned generator. It is live storage: callers must
// not mutate it directly; use the vector operations instead.
func (t *Tangent[M]) Generator() M {
	return t.gen
}

// Clone returns a tangent vector at the same base point with an
// independent copy of the generator.
func (t *Tangent[M]) Clone() *Tangent[M] {
	return &Tangent[M]{base: t.base, gen: t.gen.Clone()}
}

// Zero returns the zero tangent vector at the same base point.
func (t *Tangent[M]) Zero() *Tangent[M] {
	return &Tangent[M]{base: t.base, gen: t.gen.Zero()}
}

// ZeroTangent returns the zero tangent vector at p, for seeding
// accumulators before a first gradient exists.
func ZeroTangent[M linalg.Map[M]](p *Point[M]) *Tangent[M] {
	return &Tangent[M]{base: p, gen: p.Map().Eye().ScaleInPlace(0)}
}

// Materialize returns the ambient-space representative W·A, for callers
// that need the direction in ambient coordinates (line searches,
// diagnostics).
func (t *Tangent[M]) Materialize() M {
	return t.base.Map().Mul(t.gen)
}

// Add returns t + u. Fails unless both vectors share a base point.
func (t *Tangent[M]) Add(u *Tangent[M]) (*Tangent[M], error) {
	base, err := CheckBase(t, u)
	if err != nil {
		return nil, err
	}
	gen := t.gen.Clone()
	if err := axpyGen(1, u.gen, gen); err != nil {
		return nil, err
	}
	return &Tangent[M]{base: base, gen: gen}, nil
}

// Sub returns t - u. Fails unless both vectors share a base point.
func (t *Tangent[M]) Sub(u *Tangent[M]) (*Tangent[M], error) {
	base, err := CheckBase(t, u)
	if err != nil {
		return nil, err
	}
	gen := t.gen.Clone()
	if err := axpyGen(-1, u.gen, gen); err != nil {
		return nil, err
	}
	return &Tangent[M]{base: base, gen: gen}, nil
}

// Neg returns -t.
func (t *Tangent[M]) Neg() *Tangent[M] {
	return t.Scale(-1)
}

// Scale returns alpha·t.
func (t *Tangent[M]) Scale(alpha float64) *Tangent[M] {
	return &Tangent[M]{base: t.base, gen: t.gen.Scale(alpha)}
}

// Div returns t/alpha. Left-division by a real scalar is the same
// operation.
func (t *Tangent[M]) Div(alpha float64) *Tangent[M] {
	return t.Scale(1 / alpha)
}

// ScaleInPlace multiplies t by alpha in place and returns t. Scalar
// operations never check base points.
func (t *Tangent[M]) ScaleInPlace(alpha float64) *Tangent[M] {
	scaleGen(t.gen, alpha)
	return t
}

// Axpy performs t += alpha·u, mutating only t's generator. Fails before
// mutation unless both vectors share a base point.
func (t *Tangent[M]) Axpy(alpha float64, u *Tangent[M]) error {
	if _, err := CheckBase(t, u); err != nil {
		return err
	}
	return axpyGen(alpha, u.gen, t.gen)
}

// Axpby performs t = alpha·u + beta·t, mutating only t's generator.
// Fails before mutation unless both vectors share a base point. u must
// not alias t; clone first to fold a vector into itself.
func (t *Tangent[M]) Axpby(alpha float64, u *Tangent[M], beta float64) error {
	if _, err := CheckBase(t, u); err != nil {
		return err
	}
	return axpbyGen(alpha, u.gen, beta, t.gen)
}

// Dot returns the Frobenius inner product <t, u>, conjugate-linear in t.
// Fails unless both vectors share a base point.
func (t *Tangent[M]) Dot(u *Tangent[M]) (complex128, error) {
	if _, err := CheckBase(t, u); err != nil {
		return 0, err
	}
	return innerGen(t.gen, u.gen)
}

// Norm returns the Frobenius norm of t.
func (t *Tangent[M]) Norm() float64 {
	return normGen(t.gen, 2)
}

// NormP returns the entrywise p-norm of t.
func (t *Tangent[M]) NormP(p float64) float64 {
	return normGen(t.gen, p)
}
