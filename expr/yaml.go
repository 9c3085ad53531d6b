package expr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlMatrix is the wire shape of a YAML matrix document. Cells stay as
// nodes so labels keep their scalar text while values decode as floats
// (including .nan / .inf literals).
type yamlMatrix struct {
	Name *string       `yaml:"name"`
	Data [][]yaml.Node `yaml:"data"`
}

// ParseYAML parses an expression matrix embedded in a YAML document:
//
//	name: matrix1
//	data: [
//	    [genes, col1, col2],
//	    [gene1, 12.34, 132],
//	]
//
// data[0] is the header row (first cell ignored); every later row is a gene
// label followed by one numeric cell per condition. Unlike TSV input the
// name is part of the document and is required.
//
// Errors: ErrBadDocument (not a matrix-shaped document), ErrBadName,
// ErrColumnCount, ErrBadValue, ErrDuplicateGene, ErrDuplicateCondition,
// ErrEmptyGeneName.
func ParseYAML(doc []byte) (*Matrix, error) {
	var ym yamlMatrix
	if err := yaml.Unmarshal(doc, &ym); err != nil {
		return nil, fmt.Errorf("expr: %v: %w", err, ErrBadDocument)
	}
	if ym.Name == nil {
		return nil, fmt.Errorf("expr: matrix document has no name: %w", ErrBadDocument)
	}
	if err := validateName(*ym.Name); err != nil {
		return nil, err
	}
	if len(ym.Data) == 0 {
		return nil, fmt.Errorf("expr: matrix document has no data: %w", ErrBadDocument)
	}

	header := ym.Data[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("expr: header row is empty: %w", ErrBadDocument)
	}
	conds := make([]string, 0, len(header)-1)
	for _, cell := range header[1:] {
		conds = append(conds, cell.Value)
	}

	genes := make([]string, 0, len(ym.Data)-1)
	values := make([][]float64, 0, len(ym.Data)-1)
	for i, row := range ym.Data[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("expr: data row %d has %d cells, expected %d: %w",
				i+1, len(row), len(header), ErrColumnCount)
		}
		vals := make([]float64, 0, len(row)-1)
		for _, cell := range row[1:] {
			var v float64
			if err := cell.Decode(&v); err != nil {
				return nil, fmt.Errorf("expr: data row %d: cell %q: %w", i+1, cell.Value, ErrBadValue)
			}
			vals = append(vals, v)
		}
		genes = append(genes, row[0].Value)
		values = append(values, vals)
	}
	return NewMatrix(*ym.Name, genes, conds, values)
}
