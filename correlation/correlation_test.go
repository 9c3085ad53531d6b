package correlation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/varbio/varbio/correlation"
)

const tol = 1e-12

// TestPearson_AntiCorrelatedRows is the canonical scenario: two perfectly
// anti-correlated profiles.
func TestPearson_AntiCorrelatedRows(t *testing.T) {
	data := mat.NewDense(2, 3, []float64{
		1.0, 2.0, 3.0,
		3.0, 2.0, 1.0,
	})
	sim, err := correlation.Pearson(data)
	require.NoError(t, err, "well-formed matrix must correlate")

	r, c := sim.Dims()
	require.Equal(t, 2, r, "square result rows")
	require.Equal(t, 2, c, "square result cols")
	assert.InDelta(t, 1.0, sim.At(0, 0), tol, "self-similarity")
	assert.InDelta(t, 1.0, sim.At(1, 1), tol, "self-similarity")
	assert.InDelta(t, -1.0, sim.At(0, 1), tol, "anti-correlated")
	assert.InDelta(t, -1.0, sim.At(1, 0), tol, "anti-correlated, mirrored")
}

// TestPearson_SymmetryAndDiagonal checks the structural invariants on a
// larger, irregular matrix.
func TestPearson_SymmetryAndDiagonal(t *testing.T) {
	data := mat.NewDense(4, 5, []float64{
		0.5, 2.25, -1.0, 4.0, 0.0,
		1.0, 1.5, 2.0, -0.5, 3.25,
		-2.0, 0.75, 1.25, 1.0, -1.5,
		3.0, -1.0, 0.5, 2.5, 1.75,
	})
	sim, err := correlation.Pearson(data)
	require.NoError(t, err, "must correlate")

	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1.0, sim.At(i, i), tol, "diagonal is 1 for non-degenerate row %d", i)
		for j := 0; j < 4; j++ {
			assert.Equal(t, sim.At(i, j), sim.At(j, i), "symmetry at (%d,%d)", i, j)
			if i != j {
				v := sim.At(i, j)
				assert.True(t, v >= -1 && v <= 1, "coefficient in range at (%d,%d)", i, j)
			}
		}
	}
}

// TestPearson_AgreesWithGenericPath: the fast path and
// Correlate(PearsonMetric, ·) must match entry by entry.
func TestPearson_AgreesWithGenericPath(t *testing.T) {
	data := mat.NewDense(3, 4, []float64{
		1.0, 2.0, 4.0, 8.0,
		0.1, -0.2, 0.3, -0.4,
		5.0, 5.5, 4.5, 6.0,
	})
	fast, err := correlation.Pearson(data)
	require.NoError(t, err, "fast path")
	generic, err := correlation.Correlate(correlation.PearsonMetric, data)
	require.NoError(t, err, "generic path")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, generic.At(i, j), fast.At(i, j), tol, "paths agree at (%d,%d)", i, j)
		}
	}
}

// TestPearson_DegenerateRow: a constant row yields NaN across its whole row
// and column, diagonal included, on both paths; other entries stay valid.
func TestPearson_DegenerateRow(t *testing.T) {
	data := mat.NewDense(3, 3, []float64{
		1.0, 2.0, 3.0,
		5.0, 5.0, 5.0, // zero variance
		3.0, 2.0, 1.0,
	})
	for name, compute := range map[string]func(*mat.Dense) (*mat.Dense, error){
		"fast": correlation.Pearson,
		"generic": func(d *mat.Dense) (*mat.Dense, error) {
			return correlation.Correlate(correlation.PearsonMetric, d)
		},
	} {
		t.Run(name, func(t *testing.T) {
			sim, err := compute(data)
			require.NoError(t, err, "degenerate rows are sentinel values, not errors")
			for i := 0; i < 3; i++ {
				assert.True(t, math.IsNaN(sim.At(1, i)), "row of degenerate entity is NaN at col %d", i)
				assert.True(t, math.IsNaN(sim.At(i, 1)), "column of degenerate entity is NaN at row %d", i)
			}
			assert.InDelta(t, 1.0, sim.At(0, 0), tol, "valid diagonal untouched")
			assert.InDelta(t, -1.0, sim.At(0, 2), tol, "valid off-diagonal untouched")
		})
	}
}

// TestCorrelate_DiagonalUsesMetric: a metric whose self-similarity is not 1
// must see its own value on the diagonal, not an assumed constant.
func TestCorrelate_DiagonalUsesMetric(t *testing.T) {
	dot := func(x, y []float64) float64 {
		var s float64
		for i := range x {
			s += x[i] * y[i]
		}
		return s
	}
	data := mat.NewDense(2, 2, []float64{
		1.0, 2.0,
		3.0, 4.0,
	})
	sim, err := correlation.Correlate(dot, data)
	require.NoError(t, err, "must correlate")
	assert.Equal(t, 5.0, sim.At(0, 0), "diagonal is metric(row, row)")
	assert.Equal(t, 25.0, sim.At(1, 1), "diagonal is metric(row, row)")
	assert.Equal(t, 11.0, sim.At(0, 1), "cross term")
}

// TestCorrelate_HalvesEvaluations: the metric runs once per unordered pair.
func TestCorrelate_HalvesEvaluations(t *testing.T) {
	calls := 0
	counting := func(x, y []float64) float64 {
		calls++
		return correlation.PearsonMetric(x, y)
	}
	data := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		3, 1, 2,
		0, -1, 1,
	})
	_, err := correlation.Correlate(counting, data)
	require.NoError(t, err, "must correlate")
	assert.Equal(t, 10, calls, "4 rows: 4*(4+1)/2 unordered pairs")
}

// TestCorrelate_Preconditions: too few observations fails before any metric
// call, empty matrices yield empty results, nil inputs are rejected.
func TestCorrelate_Preconditions(t *testing.T) {
	single := mat.NewDense(2, 1, []float64{1, 2})

	called := false
	spy := func(x, y []float64) float64 { called = true; return 0 }
	_, err := correlation.Correlate(spy, single)
	assert.ErrorIs(t, err, correlation.ErrTooFewObservations, "one column cannot correlate")
	assert.False(t, called, "precondition fails before computation")

	_, err = correlation.Pearson(single)
	assert.ErrorIs(t, err, correlation.ErrTooFewObservations, "fast path checks too")

	empty, err := correlation.Pearson(&mat.Dense{})
	require.NoError(t, err, "zero rows is a trivial, not an erroneous, input")
	r, c := empty.Dims()
	assert.Equal(t, 0, r, "empty result rows")
	assert.Equal(t, 0, c, "empty result cols")

	_, err = correlation.Pearson(nil)
	assert.ErrorIs(t, err, correlation.ErrNilMatrix, "nil matrix rejected")
	_, err = correlation.Correlate(nil, single)
	assert.ErrorIs(t, err, correlation.ErrNilMetric, "nil metric rejected")
}

// TestPearsonSubset_MatchesFullColumns: the subset result equals the
// corresponding columns of the full matrix.
func TestPearsonSubset_MatchesFullColumns(t *testing.T) {
	data := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		3, 1, 2,
		0, -1, 1,
	})
	full, err := correlation.Pearson(data)
	require.NoError(t, err, "full matrix")

	indices := []int{2, 0}
	sub, err := correlation.PearsonSubset(data, indices)
	require.NoError(t, err, "subset")

	r, c := sub.Dims()
	require.Equal(t, 4, r, "all rows present")
	require.Equal(t, 2, c, "one column per subset index")
	for i := 0; i < 4; i++ {
		for t2, idx := range indices {
			assert.InDelta(t, full.At(i, idx), sub.At(i, t2), tol,
				"subset column %d matches full column %d", t2, idx)
		}
	}
}

// TestPearsonSubset_BadIndex rejects out-of-range indices up front.
func TestPearsonSubset_BadIndex(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err := correlation.PearsonSubset(data, []int{0, 5})
	assert.ErrorIs(t, err, correlation.ErrBadIndex, "index beyond rows must error")
	_, err = correlation.CorrelateSubset(correlation.PearsonMetric, data, []int{-1})
	assert.ErrorIs(t, err, correlation.ErrBadIndex, "negative index must error")
}

// TestPearsonMetric_Degenerate returns NaN, never a number, for undefined
// inputs.
func TestPearsonMetric_Degenerate(t *testing.T) {
	assert.True(t, math.IsNaN(correlation.PearsonMetric([]float64{1, 1, 1}, []float64{1, 2, 3})),
		"constant vector has no correlation")
	assert.True(t, math.IsNaN(correlation.PearsonMetric([]float64{1, 2}, []float64{1, 2, 3})),
		"length mismatch has no correlation")
	assert.True(t, math.IsNaN(correlation.PearsonMetric(nil, nil)),
		"empty vectors have no correlation")
}
