package correlation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Metric returns a scalar similarity for two equal-length numeric vectors.
// Implementations must be pure; the engine may evaluate (x, y) but never
// (y, x) for a given pair, relying on symmetry of the result.
type Metric func(x, y []float64) float64

// Correlate computes the full pairwise similarity matrix of data's rows
// under an arbitrary metric. The metric runs once per unordered pair (i ≤ j)
// and the value is mirrored; the diagonal is metric(row, row), not an
// assumed constant.
//
// A matrix with zero rows yields an empty result. Fewer than two columns is
// ErrTooFewObservations: no pair has a defined correlation.
func Correlate(metric Metric, data *mat.Dense) (*mat.Dense, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if err := validate(data); err != nil {
		return nil, err
	}
	n, _ := data.Dims()
	if n == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		xi := data.RawRowView(i)
		for j := i; j < n; j++ {
			v := metric(xi, data.RawRowView(j))
			out.Set(i, j, v)
			if i != j {
				out.Set(j, i, v)
			}
		}
	}
	return out, nil
}

// CorrelateSubset compares every row of data against the rows picked out by
// indices, returning a len(data)×len(indices) matrix with entry (i, t) =
// metric(row i, row indices[t]). Unlike Correlate it cannot exploit
// symmetry, since the result is generally not square.
func CorrelateSubset(metric Metric, data *mat.Dense, indices []int) (*mat.Dense, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if err := validate(data); err != nil {
		return nil, err
	}
	n, _ := data.Dims()
	if err := validateIndices(indices, n); err != nil {
		return nil, err
	}
	if n == 0 || len(indices) == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(n, len(indices), nil)
	for i := 0; i < n; i++ {
		xi := data.RawRowView(i)
		for t, idx := range indices {
			out.Set(i, t, metric(xi, data.RawRowView(idx)))
		}
	}
	return out, nil
}

// validate applies the shared preconditions: non-nil input, and at least two
// observations per row unless the matrix is empty.
func validate(data *mat.Dense) error {
	if data == nil {
		return ErrNilMatrix
	}
	n, c := data.Dims()
	if n > 0 && c < 2 {
		return fmt.Errorf("correlation: matrix has %d columns: %w", c, ErrTooFewObservations)
	}
	return nil
}

func validateIndices(indices []int, n int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("correlation: index %d with %d rows: %w", idx, n, ErrBadIndex)
		}
	}
	return nil
}
