package linalg

// Map is the self-referential constraint a linear-map type must satisfy to
// drive the manifold engine. M is always instantiated with the backend's
// own (pointer) map type, so binary operations are closed over one concrete
// representation and mixing backends is a compile error.
//
// Shape conventions: a map is a Rows×Cols matrix taking the "small"
// (domain) space into the "large" (codomain) space. Isometric base points
// are tall (Rows >= Cols) with orthonormal columns; generators are square
// Cols×Cols anti-Hermitian maps on the small space.
//
// Mutation: methods suffixed InPlace, plus Axpy, Axpby and CopyFrom, write
// into the receiver and return it; everything else allocates. No method
// mutates its argument.
type Map[M any] interface {
	// Rows and Cols report the matrix dimensions.
	Rows() int
	Cols() int

	// Clone returns an independent deep copy.
	Clone() M
	// Zero returns a zero map of the same shape.
	Zero() M
	// Eye returns the identity on the receiver's domain space (Cols×Cols).
	Eye() M
	// CopyFrom overwrites the receiver's entries with src's and returns the
	// receiver. Shapes must match.
	CopyFrom(src M) M

	// Adjoint returns the conjugate transpose (plain transpose for real
	// scalar backends).
	Adjoint() M
	// Mul returns the matrix product receiver·other.
	Mul(other M) M
	// Add returns the entrywise sum receiver+other.
	Add(other M) M
	// Scale returns alpha·receiver.
	Scale(alpha float64) M
	// ScaleInPlace multiplies the receiver by alpha and returns it.
	ScaleInPlace(alpha float64) M
	// Axpy performs receiver += alpha·x and returns the receiver.
	Axpy(alpha float64, x M) M
	// Axpby performs receiver = alpha·x + beta·receiver and returns the
	// receiver. x must not alias the receiver.
	Axpby(alpha float64, x M, beta float64) M

	// Inner returns the Frobenius inner product <receiver, other>,
	// conjugate-linear in the receiver. Real backends return a zero
	// imaginary part.
	Inner(other M) complex128
	// Norm returns the entrywise p-norm; p=2 is the Frobenius norm.
	Norm(p float64) float64

	// Exp returns the matrix exponential. The receiver must be square.
	Exp() M
	// ProjectAntiHermitian returns the anti-Hermitian part
	// (receiver - receiverᴴ)/2. The receiver must be square.
	ProjectAntiHermitian() M
	// ProjectIsometric returns the nearest isometric map under the chosen
	// decomposition algorithm. Fails if the decomposition does not
	// converge.
	ProjectIsometric(alg Algorithm) (M, error)

	// Equal reports exact entrywise equality, EqualApprox equality within
	// an absolute tolerance.
	Equal(other M) bool
	EqualApprox(other M, tol float64) bool
}

// IsIsometry reports whether wᴴ·w is the identity on w's domain space to
// within tol.
func IsIsometry[M Map[M]](w M, tol float64) bool {
	gram := w.Adjoint().Mul(w)
	return gram.EqualApprox(gram.Eye(), tol)
}
