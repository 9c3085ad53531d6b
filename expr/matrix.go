package expr

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a gene expression matrix: genes as rows, conditions as columns,
// both in insertion order, with unique labels on each axis. A Matrix is
// immutable after construction; every accessor that exposes internal state
// returns a copy.
type Matrix struct {
	name  string
	genes []string
	conds []string
	data  []float64 // row-major, len == len(genes)*len(conds)
	index map[string]int
}

// NewMatrix constructs a Matrix from labels and per-gene value rows.
//
// Errors:
//   - ErrDuplicateGene / ErrDuplicateCondition — repeated labels.
//   - ErrEmptyGeneName — an empty gene label.
//   - ErrShape — len(values) != len(genes), or a row whose length differs
//     from len(conditions).
func NewMatrix(name string, genes, conditions []string, values [][]float64) (*Matrix, error) {
	if len(values) != len(genes) {
		return nil, fmt.Errorf("expr: %d value rows for %d genes: %w", len(values), len(genes), ErrShape)
	}
	seen := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("expr: condition %q: %w", c, ErrDuplicateCondition)
		}
		seen[c] = struct{}{}
	}

	m := &Matrix{
		name:  name,
		genes: append([]string(nil), genes...),
		conds: append([]string(nil), conditions...),
		data:  make([]float64, 0, len(genes)*len(conditions)),
		index: make(map[string]int, len(genes)),
	}
	for i, g := range genes {
		if g == "" {
			return nil, fmt.Errorf("expr: gene %d: %w", i, ErrEmptyGeneName)
		}
		if _, ok := m.index[g]; ok {
			return nil, fmt.Errorf("expr: gene %q: %w", g, ErrDuplicateGene)
		}
		m.index[g] = i
		if len(values[i]) != len(conditions) {
			return nil, fmt.Errorf("expr: gene %q has %d values for %d conditions: %w",
				g, len(values[i]), len(conditions), ErrShape)
		}
		m.data = append(m.data, values[i]...)
	}
	return m, nil
}

// Name returns the matrix name; may be empty for TSV-parsed matrices.
func (m *Matrix) Name() string { return m.name }

// WithName returns a copy of the matrix carrying the given name. The
// receiver is unchanged. The name must be a valid matrix name.
func (m *Matrix) WithName(name string) (*Matrix, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	cp := *m
	cp.name = name
	return &cp, nil
}

// Rows returns the number of genes.
func (m *Matrix) Rows() int { return len(m.genes) }

// Cols returns the number of conditions.
func (m *Matrix) Cols() int { return len(m.conds) }

// Genes returns the gene labels in insertion order.
func (m *Matrix) Genes() []string { return append([]string(nil), m.genes...) }

// Conditions returns the condition labels in insertion order.
func (m *Matrix) Conditions() []string { return append([]string(nil), m.conds...) }

// Gene returns the label of row i.
func (m *Matrix) Gene(i int) string { return m.genes[i] }

// GeneIndex returns the row position of a gene label and whether it exists.
func (m *Matrix) GeneIndex(gene string) (int, bool) {
	i, ok := m.index[gene]
	return i, ok
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*len(m.conds)+j]
}

// Row returns a copy of the expression profile of row i.
func (m *Matrix) Row(i int) []float64 {
	n := len(m.conds)
	return append([]float64(nil), m.data[i*n:(i+1)*n]...)
}

// RowByGene returns a copy of the expression profile of the named gene and
// whether the gene exists.
func (m *Matrix) RowByGene(gene string) ([]float64, bool) {
	i, ok := m.index[gene]
	if !ok {
		return nil, false
	}
	return m.Row(i), true
}

// Dense returns the values as a fresh gonum dense matrix, the positional
// currency of the correlation package. A matrix with no genes or no
// conditions yields an empty Dense.
func (m *Matrix) Dense() *mat.Dense {
	if len(m.genes) == 0 || len(m.conds) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(m.genes), len(m.conds), append([]float64(nil), m.data...))
}

// validateName enforces the matrix naming rules shared by WithName and the
// YAML parser.
func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("expr: name is empty: %w", ErrBadName)
	case strings.ContainsRune(name, '\x00'):
		return fmt.Errorf("expr: name contains NUL: %w", ErrBadName)
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("expr: name is whitespace only: %w", ErrBadName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("expr: name %q is surrounded by whitespace: %w", name, ErrBadName)
	}
	return nil
}
