package correlation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pearson computes the full N×N Pearson correlation matrix of data's rows
// on the vectorised path: every row is mean-centered once, a single product
// of the centered matrix with its transpose produces every cross term, and
// entry (i, j) is divided by norm(i)·norm(j).
//
// A zero-variance row has zero norm; every entry involving it, its diagonal
// included, is NaN. Finite entries are clipped to [-1, 1].
func Pearson(data *mat.Dense) (*mat.Dense, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	if n, _ := data.Dims(); n == 0 {
		return &mat.Dense{}, nil
	}
	return pearson(data, nil), nil
}

// PearsonSubset is Pearson restricted on the second axis to the rows picked
// out by indices: entry (i, t) correlates row i with row indices[t]. The
// centering and norm work is still done once for the whole matrix.
func PearsonSubset(data *mat.Dense, indices []int) (*mat.Dense, error) {
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
	return pearson(data, indices), nil
}

// PearsonMetric is Pearson's r as a plain Metric for the generic path. It
// performs the same arithmetic as one row pair of the fast path — centered
// sums, √ssx·√ssy denominator, clip — so Correlate(PearsonMetric, m) and
// Pearson(m) agree entry for entry, NaN for degenerate rows included.
//
// Vectors of unequal or zero length have no defined correlation and yield
// NaN.
func PearsonMetric(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	n := float64(len(x))
	meanX /= n
	meanY /= n

	var num, ssX, ssY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		ssX += dx * dx
		ssY += dy * dy
	}
	denom := math.Sqrt(ssX) * math.Sqrt(ssY)
	if denom == 0 {
		return math.NaN()
	}
	return clip(num / denom)
}

// pearson runs the vectorised computation. nil indices means all rows, in
// which case the centered matrix multiplies its own transpose and no row
// gather is needed. Preconditions are the callers' job.
func pearson(data *mat.Dense, indices []int) *mat.Dense {
	n, c := data.Dims()

	// Center each row once and record its L2 norm.
	xc := mat.NewDense(n, c, nil)
	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)
		var mean float64
		for _, v := range row {
			mean += v
		}
		mean /= float64(c)

		centered := xc.RawRowView(i)
		var ss float64
		for j, v := range row {
			d := v - mean
			centered[j] = d
			ss += d * d
		}
		norms[i] = math.Sqrt(ss)
	}

	// Right-hand side: the whole centered matrix, or the gathered subset.
	rhs, colNorms := xc, norms
	if indices != nil {
		rhs = mat.NewDense(len(indices), c, nil)
		colNorms = make([]float64, len(indices))
		for t, idx := range indices {
			copy(rhs.RawRowView(t), xc.RawRowView(idx))
			colNorms[t] = norms[idx]
		}
	}

	// One matrix product yields every Σ (xᵢ−x̄)(yᵢ−ȳ).
	var prod mat.Dense
	prod.Mul(xc, rhs.T())

	k := len(colNorms)
	out := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for t := 0; t < k; t++ {
			denom := norms[i] * colNorms[t]
			if denom == 0 {
				out.Set(i, t, math.NaN())
				continue
			}
			out.Set(i, t, clip(prod.At(i, t)/denom))
		}
	}
	return out
}

// clip bounds a finite coefficient to [-1, 1]; NaN passes through.
func clip(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
