package dense

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

var (
	// ErrNoConvergence is returned when the singular value decomposition
	// behind the isometric projection fails to converge.
	ErrNoConvergence = errors.New("dense: singular value decomposition did not converge")

	// ErrNotTall is returned when an isometric projection is requested for
	// a map with fewer rows than columns; such a map has no isometric
	// neighbour.
	ErrNotTall = errors.New("dense: isometric projection requires rows >= cols")

	// ErrUnknownProjection is returned for projection algorithms this
	// backend does not implement.
	ErrUnknownProjection = errors.New("dense: unknown projection algorithm")
)

// ProjectAntiHermitian returns the anti-Hermitian (for real scalars,
// skew-symmetric) part (a - aᴴ)/2. Panics if the receiver is not square.
func (a *Map) ProjectAntiHermitian() *Map {
	r, c := a.m.Dims()
	if r != c {
		panic(fmt.Sprintf("dense: ProjectAntiHermitian requires a square map, got %dx%d", r, c))
	}
	var out mat.Dense
	out.Sub(a.m, a.m.T())
	out.Scale(0.5, &out)
	return wrap(&out)
}

// ProjectIsometric returns the nearest column-orthonormal map under the
// chosen algorithm.
//
// AlgSVD computes the polar factor U·Vᴴ of a thin SVD, the closest
// isometry in Frobenius distance. AlgQRPos computes a thin QR factor with
// diag(R) > 0; it is cheaper but not distance-minimizing. Both leave an
// already isometric input unchanged up to roundoff.
func (a *Map) ProjectIsometric(alg linalg.Algorithm) (*Map, error) {
	r, c := a.m.Dims()
	if r < c {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNotTall, r, c)
	}
	switch alg {
	case linalg.AlgSVD:
		return a.projectIsometricSVD()
	case linalg.AlgQRPos:
		return a.projectIsometricQRPos()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownProjection, alg)
	}
}

func (a *Map) projectIsometricSVD() (*Map, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a.m, mat.SVDThin); !ok {
		return nil, ErrNoConvergence
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var out mat.Dense
	out.Mul(&u, v.T())
	return wrap(&out), nil
}

func (a *Map) projectIsometricQRPos() (*Map, error) {
	var qr mat.QR
	qr.Factorize(a.m)
	var qFull, rr mat.Dense
	qr.QTo(&qFull)
	qr.RTo(&rr)

	rows, cols := a.m.Dims()
	q := mat.DenseCopyOf(qFull.Slice(0, rows, 0, cols))
	// Fix the gauge so diag(R) > 0; flipping a column of Q together with a
	// row of R leaves the product unchanged.
	for j := 0; j < cols; j++ {
		if rr.At(j, j) < 0 {
			for i := 0; i < rows; i++ {
				q.Set(i, j, -q.At(i, j))
			}
		}
	}
	return wrap(q), nil
}
