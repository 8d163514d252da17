// Package manifold implements tangent vectors, retraction and vector
// transport for the manifold of isometric (column-orthonormal) linear
// maps, the building blocks a Riemannian optimizer needs to walk the
// manifold.
//
// A tangent vector at a base point W is stored as an anti-Hermitian
// generator A on W's domain space, representing the ambient direction
// W·A. The geodesic through W with direction A is t ↦ W·exp(t·A), which
// is what Retract evaluates; Transport re-expresses previously computed
// tangent vectors in the frame of the new base point so an optimizer can
// combine them with fresh gradients.
//
// Every Point carries an identity token issued at creation. Operations
// that combine tangent vectors compare tokens, never tensor payloads:
// numerically equal but independently created base points are distinct
// on purpose, and a retraction always yields a fresh token.
//
// The package is purely computational. Nothing here spawns goroutines or
// performs I/O; mutating methods are not safe for concurrent use on the
// same vector, while read-only use of distinct vectors sharing a Point is
// safe because base points are never written after creation.
package manifold
