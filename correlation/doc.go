// Package correlation computes pairwise similarity matrices between the
// rows of a numeric matrix.
//
// Two code paths exist on purpose:
//
//   - Correlate applies any Metric — a plain func(x, y []float64) float64 —
//     to every unordered row pair (i ≤ j) and mirrors the result across the
//     diagonal, halving the metric evaluations. The diagonal is computed
//     with metric(row, row) rather than assumed, so metrics whose
//     self-similarity is not 1 behave correctly.
//   - Pearson is the vectorised fast path for Pearson's r: the matrix is
//     mean-centered per row once, a single product of the centered matrix
//     with its transpose yields every cross term, and the result is
//     normalised by the outer product of the row norms. One O(N²·M) gonum
//     multiply instead of N² scalar dot products with re-derived means.
//
// Both paths agree exactly: PearsonMetric performs the same arithmetic as
// one row pair of the fast path, so Correlate(PearsonMetric, m) and
// Pearson(m) match entry for entry.
//
// A row with zero variance has no defined correlation; such entries are NaN
// in the result, never zero or an arbitrary number. Finite entries are
// clipped to [-1, 1] so accumulated rounding can not leak a coefficient
// outside its mathematical range.
//
// Positional functions work on gonum *mat.Dense; CorrelateMatrix,
// PearsonMatrix and PearsonMatrixSubset decorate them with the gene labels
// of an expr.Matrix, attaching the labels to both axes of the result.
//
// Subset variants compare every row against a subset of rows (the typical
// genes-versus-baits query) and return a len(data)×len(subset) matrix.
package correlation
