// Package dense implements the linalg.Map contract for real (float64)
// dense matrices on top of gonum. Adjoint degenerates to plain transpose
// and inner products carry a zero imaginary part; anti-Hermitian means
// skew-symmetric.
//
// Decompositions, the matrix exponential and norms are delegated to
// gonum/mat and gonum/floats; this package only adapts them to the
// contract. Every Map owns a contiguous *mat.Dense (never a view), which
// is what lets the in-place operations work on the raw backing slice.
package dense

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Map is a real dense matrix satisfying linalg.Map[*Map].
type Map struct {
	m *mat.Dense
}

// NewMap creates an r×c map from row-major data. A nil data slice yields a
// zero map; otherwise len(data) must be r*c.
func NewMap(r, c int, data []float64) (*Map, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("dense: invalid shape %dx%d", r, c)
	}
	if data != nil && len(data) != r*c {
		return nil, fmt.Errorf("dense: shape %dx%d requires %d elements, got %d", r, c, r*c, len(data))
	}
	return &Map{m: mat.NewDense(r, c, data)}, nil
}

// wrap takes ownership of a freshly computed gonum matrix.
func wrap(m *mat.Dense) *Map {
	return &Map{m: m}
}

// Rows returns the codomain (large space) dimension.
func (a *Map) Rows() int {
	r, _ := a.m.Dims()
	return r
}

// Cols returns the domain (small space) dimension.
func (a *Map) Cols() int {
	_, c := a.m.Dims()
	return c
}

// At returns the entry at row i, column j.
func (a *Map) At(i, j int) float64 {
	return a.m.At(i, j)
}

// Set assigns the entry at row i, column j.
func (a *Map) Set(i, j int, v float64) {
	a.m.Set(i, j, v)
}

// Dense exposes the underlying gonum matrix for interoperation with other
// gonum code. Mutating it mutates the Map.
func (a *Map) Dense() *mat.Dense {
	return a.m
}

// RawData returns the row-major backing slice. Mutations write through.
func (a *Map) RawData() []float64 {
	return a.m.RawMatrix().Data
}

// Clone returns an independent deep copy.
func (a *Map) Clone() *Map {
	return wrap(mat.DenseCopyOf(a.m))
}

// Zero returns a zero map of the same shape.
func (a *Map) Zero() *Map {
	r, c := a.m.Dims()
	return wrap(mat.NewDense(r, c, nil))
}

// Eye returns the identity on the domain space (Cols×Cols).
func (a *Map) Eye() *Map {
	_, c := a.m.Dims()
	id := mat.NewDense(c, c, nil)
	for i := 0; i < c; i++ {
		id.Set(i, i, 1)
	}
	return wrap(id)
}

// CopyFrom overwrites the receiver's entries with src's and returns the
// receiver. Panics if shapes differ.
func (a *Map) CopyFrom(src *Map) *Map {
	mustSameShape("CopyFrom", a, src)
	copy(a.m.RawMatrix().Data, src.m.RawMatrix().Data)
	return a
}

// Adjoint returns the transpose (real scalars carry no conjugation).
func (a *Map) Adjoint() *Map {
	return wrap(mat.DenseCopyOf(a.m.T()))
}

// Mul returns the matrix product a·b.
func (a *Map) Mul(b *Map) *Map {
	var out mat.Dense
	out.Mul(a.m, b.m)
	return wrap(&out)
}

// Add returns the entrywise sum a+b.
func (a *Map) Add(b *Map) *Map {
	var out mat.Dense
	out.Add(a.m, b.m)
	return wrap(&out)
}

// Scale returns alpha·a.
func (a *Map) Scale(alpha float64) *Map {
	var out mat.Dense
	out.Scale(alpha, a.m)
	return wrap(&out)
}

// ScaleInPlace multiplies the receiver by alpha and returns it.
func (a *Map) ScaleInPlace(alpha float64) *Map {
	floats.Scale(alpha, a.m.RawMatrix().Data)
	return a
}

// Axpy performs a += alpha·x and returns the receiver.
func (a *Map) Axpy(alpha float64, x *Map) *Map {
	mustSameShape("Axpy", a, x)
	floats.AddScaled(a.m.RawMatrix().Data, alpha, x.m.RawMatrix().Data)
	return a
}

// Axpby performs a = alpha·x + beta·a and returns the receiver. The
// receiver is scaled before x is read, so x must not alias it.
func (a *Map) Axpby(alpha float64, x *Map, beta float64) *Map {
	mustSameShape("Axpby", a, x)
	data := a.m.RawMatrix().Data
	floats.Scale(beta, data)
	floats.AddScaled(data, alpha, x.m.RawMatrix().Data)
	return a
}

// Inner returns the Frobenius inner product <a, b>. The imaginary part is
// always zero for real maps.
func (a *Map) Inner(b *Map) complex128 {
	mustSameShape("Inner", a, b)
	return complex(floats.Dot(a.m.RawMatrix().Data, b.m.RawMatrix().Data), 0)
}

// Norm returns the entrywise p-norm of the map; p=2 is Frobenius.
func (a *Map) Norm(p float64) float64 {
	return floats.Norm(a.m.RawMatrix().Data, p)
}

// Exp returns the matrix exponential. Panics if the receiver is not
// square.
func (a *Map) Exp() *Map {
	r, c := a.m.Dims()
	if r != c {
		panic(fmt.Sprintf("dense: Exp requires a square map, got %dx%d", r, c))
	}
	var out mat.Dense
	out.Exp(a.m)
	return wrap(&out)
}

// Equal reports exact entrywise equality.
func (a *Map) Equal(b *Map) bool {
	return mat.Equal(a.m, b.m)
}

// EqualApprox reports entrywise equality within an absolute tolerance.
func (a *Map) EqualApprox(b *Map, tol float64) bool {
	return mat.EqualApprox(a.m, b.m, tol)
}

func mustSameShape(op string, a, b *Map) {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if ar != br || ac != bc {
		panic(fmt.Sprintf("dense: %s shape mismatch %dx%d vs %dx%d", op, ar, ac, br, bc))
	}
}
