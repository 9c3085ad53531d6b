package correlation

import "errors"

var (
	// ErrTooFewObservations indicates a matrix with fewer than two columns;
	// no row pair has a defined correlation, so this fails before any
	// computation instead of returning silently-wrong numbers.
	ErrTooFewObservations = errors.New("correlation: need at least 2 observations per row")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("correlation: nil matrix")

	// ErrNilMetric indicates a nil metric function on the generic path.
	ErrNilMetric = errors.New("correlation: nil metric")

	// ErrBadIndex indicates a subset index outside [0, rows).
	ErrBadIndex = errors.New("correlation: subset index out of range")

	// ErrUnknownGene indicates a subset gene label absent from the labeled
	// input matrix.
	ErrUnknownGene = errors.New("correlation: unknown gene in subset")
)
