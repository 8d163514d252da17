package dense

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/geodesic-ml/geodesic/internal/linalg"
)

// Zeros creates an r×c zero map. Panics on non-positive dimensions.
func Zeros(r, c int) *Map {
	return wrap(mat.NewDense(r, c, nil))
}

// Identity creates the n×n identity map.
func Identity(n int) *Map {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return wrap(id)
}

// FromRows creates a map from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("dense: FromRows requires a non-empty row set")
	}
	c := len(rows[0])
	out := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("dense: row %d has %d entries, want %d", i, len(row), c)
		}
		out.SetRow(i, row)
	}
	return wrap(out), nil
}

// RandomNormal creates an r×c map with i.i.d. standard normal entries.
// A nil rng falls back to the shared math/rand source.
func RandomNormal(r, c int, rng *rand.Rand) *Map {
	out := mat.NewDense(r, c, nil)
	data := out.RawMatrix().Data
	for i := range data {
		if rng != nil {
			data[i] = rng.NormFloat64()
		} else {
			data[i] = rand.NormFloat64() //nolint:gosec // statistical use, not security
		}
	}
	return wrap(out)
}

// RandomAntiHermitian creates a random n×n anti-Hermitian map, the
// anti-Hermitian projection of a standard normal sample.
func RandomAntiHermitian(n int, rng *rand.Rand) *Map {
	return RandomNormal(n, n, rng).ProjectAntiHermitian()
}

// RandomIsometry creates a random r×c isometry (r >= c), the isometric
// projection of a standard normal sample. The result is Haar-distributed.
func RandomIsometry(r, c int, rng *rand.Rand) (*Map, error) {
	return RandomNormal(r, c, rng).ProjectIsometric(linalg.AlgSVD)
}
