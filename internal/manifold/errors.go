package manifold

import "errors"

// Sentinel errors. They signal manifold bookkeeping mistakes by the
// caller, not transient conditions: nothing here is retried or recovered,
// and every check runs before the operation mutates anything. Match with
// errors.Is; context added at call sites wraps these with %w.
var (
	// ErrBasePointMismatch is returned when two tangent vectors anchored
	// at different base points are combined.
	ErrBasePointMismatch = errors.New("manifold: tangent vectors anchored at different base points")

	// ErrInvalidTangent is returned when a retraction or transport is
	// invoked with a tangent vector that is not anchored at the supplied
	// base point.
	ErrInvalidTangent = errors.New("manifold: tangent vector not anchored at the given base point")

	// ErrUnsupportedMetric is returned for any metric other than
	// MetricEuclidean.
	ErrUnsupportedMetric = errors.New("manifold: unsupported metric")

	// ErrUnknownAlgorithm is returned for an unrecognized transport mode.
	ErrUnknownAlgorithm = errors.New("manifold: unknown transport algorithm")

	// ErrDimensionMismatch is returned when generator or ambient shapes
	// are incompatible with the base point.
	ErrDimensionMismatch = errors.New("manifold: dimension mismatch")
)
