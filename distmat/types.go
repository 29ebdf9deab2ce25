package distmat

import "errors"

// Sentinel errors returned by the distmat constructors and builders.
// Every message is prefixed with "distmat: " for easy grepping; callers
// match them via errors.Is.
var (
	// ErrBadShape indicates that a requested dimension (point count,
	// coordinate dimension or matrix order) is not positive.
	ErrBadShape = errors.New("distmat: dimensions must be > 0")

	// ErrBufferSize indicates that a flat data buffer does not have the
	// length implied by the declared shape (n·d for points, n² for a
	// precomputed distance matrix).
	ErrBufferSize = errors.New("distmat: buffer length does not match shape")

	// ErrBadPowerIndex indicates a power index outside the interval (0, 2].
	// Outside that range the powered Euclidean distance is not a metric of
	// negative type and the energy statistic loses its meaning.
	ErrBadPowerIndex = errors.New("distmat: power index must be in (0, 2]")

	// ErrNilPoints indicates that a nil *Points was passed to a builder.
	ErrNilPoints = errors.New("distmat: nil point set")
)
