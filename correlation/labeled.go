package correlation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/varbio/varbio/expr"
)

// SimilarityMatrix is a similarity matrix with gene labels attached to both
// axes, for callers that need labeled rather than positional results. It is
// a thin decoration over the positional core: same numbers, plus label
// lookup.
type SimilarityMatrix struct {
	rows     []string
	cols     []string
	rowIndex map[string]int
	colIndex map[string]int
	data     *mat.Dense
}

func newSimilarityMatrix(rows, cols []string, data *mat.Dense) *SimilarityMatrix {
	s := &SimilarityMatrix{
		rows:     append([]string(nil), rows...),
		cols:     append([]string(nil), cols...),
		rowIndex: make(map[string]int, len(rows)),
		colIndex: make(map[string]int, len(cols)),
		data:     data,
	}
	for i, r := range rows {
		s.rowIndex[r] = i
	}
	for j, c := range cols {
		s.colIndex[c] = j
	}
	return s
}

// RowLabels returns the labels of the first axis.
func (s *SimilarityMatrix) RowLabels() []string { return append([]string(nil), s.rows...) }

// ColLabels returns the labels of the second axis. For the full-matrix
// functions these equal RowLabels.
func (s *SimilarityMatrix) ColLabels() []string { return append([]string(nil), s.cols...) }

// At returns the similarity at positional indices (i, j).
func (s *SimilarityMatrix) At(i, j int) float64 { return s.data.At(i, j) }

// Lookup returns the similarity between two labeled entities and whether
// both labels exist.
func (s *SimilarityMatrix) Lookup(row, col string) (float64, bool) {
	i, ok := s.rowIndex[row]
	if !ok {
		return 0, false
	}
	j, ok := s.colIndex[col]
	if !ok {
		return 0, false
	}
	return s.data.At(i, j), true
}

// Dense returns a copy of the underlying positional matrix.
func (s *SimilarityMatrix) Dense() *mat.Dense {
	if r, _ := s.data.Dims(); r == 0 {
		return &mat.Dense{}
	}
	return mat.DenseCopyOf(s.data)
}

// CorrelateMatrix is Correlate with labels: the input's gene labels become
// the row and column labels of the result.
func CorrelateMatrix(metric Metric, m *expr.Matrix) (*SimilarityMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := Correlate(metric, m.Dense())
	if err != nil {
		return nil, err
	}
	genes := m.Genes()
	return newSimilarityMatrix(genes, genes, out), nil
}

// PearsonMatrix is Pearson with labels: the input's gene labels become the
// row and column labels of the result.
func PearsonMatrix(m *expr.Matrix) (*SimilarityMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := Pearson(m.Dense())
	if err != nil {
		return nil, err
	}
	genes := m.Genes()
	return newSimilarityMatrix(genes, genes, out), nil
}

// PearsonMatrixSubset correlates every gene against the named subset
// (typically a bait list). Row labels are all genes; column labels are the
// subset, in the given order. A subset gene absent from the matrix is
// ErrUnknownGene.
func PearsonMatrixSubset(m *expr.Matrix, subset []string) (*SimilarityMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	indices := make([]int, len(subset))
	for t, gene := range subset {
		i, ok := m.GeneIndex(gene)
		if !ok {
			return nil, fmt.Errorf("correlation: gene %q: %w", gene, ErrUnknownGene)
		}
		indices[t] = i
	}
	out, err := PearsonSubset(m.Dense(), indices)
	if err != nil {
		return nil, err
	}
	return newSimilarityMatrix(m.Genes(), subset, out), nil
}
