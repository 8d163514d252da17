// Package linalg defines the contract between the manifold engine and the
// host linear-algebra library.
//
// The engine never performs matrix decompositions, exponentials, or
// projections itself; it orchestrates them through the Map constraint. A
// backend satisfies the constraint with a concrete map type (see
// backend/dense for the gonum-based real implementation) and the engine is
// instantiated generically over it, so swapping the numeric representation
// (real vs. complex scalars, dense vs. structured storage) never touches
// manifold code.
package linalg
