package linalg

import "fmt"

// Algorithm selects the decomposition used by Map.ProjectIsometric.
type Algorithm int

const (
	// AlgSVD projects via the polar factor U·Vᴴ of a singular value
	// decomposition. This is the nearest isometry in Frobenius distance
	// and the algorithm retraction relies on.
	AlgSVD Algorithm = iota
	// AlgQRPos projects via a thin QR factorization with the sign
	// convention diag(R) > 0, which makes the factor unique.
	AlgQRPos
)

func (a Algorithm) String() string {
	switch a {
	case AlgSVD:
		return "svd"
	case AlgQRPos:
		return "qrpos"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}
