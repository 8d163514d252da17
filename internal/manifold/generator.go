package manifold

import (
	"fmt"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Generator algebra: elementwise arithmetic on anti-Hermitian generators
// with eager shape validation and no manifold semantics. The tangent
// vector operations delegate here after their base-point checks.

func sameShape[M linalg.Map[M]](a, b M) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

func shapeErr[M linalg.Map[M]](a, b M) error {
	return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
		a.Rows(), a.Cols(), b.Rows(), b.Cols())
}

// scaleGen multiplies a by the real scalar alpha in place.
func scaleGen[M linalg.Map[M]](a M, alpha float64) M {
	return a.ScaleInPlace(alpha)
}

// axpyGen performs dst += alpha·src. Validates shapes before mutating.
func axpyGen[M linalg.Map[M]](alpha float64, src, dst M) error {
	if !sameShape(src, dst) {
		return shapeErr(src, dst)
	}
	dst.Axpy(alpha, src)
	return nil
}

// axpbyGen performs dst = alpha·src + beta·dst. Validates shapes before
// mutating.
func axpbyGen[M linalg.Map[M]](alpha float64, src M, beta float64, dst M) error {
	if !sameShape(src, dst) {
		return shapeErr(src, dst)
	}
	dst.Axpby(alpha, src, beta)
	return nil
}

// innerGen returns the Frobenius inner product <a, b>, conjugate-linear
// in a.
func innerGen[M linalg.Map[M]](a, b M) (complex128, error) {
	if !sameShape(a, b) {
		return 0, shapeErr(a, b)
	}
	return a.Inner(b), nil
}

// normGen returns the entrywise p-norm of a.
func normGen[M linalg.Map[M]](a M, p float64) float64 {
	return a.Norm(p)
}
