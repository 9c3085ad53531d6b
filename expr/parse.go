package expr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTSV parses a tab-separated expression matrix.
//
// Format:
//
//	ignored<tab>condition1<tab>condition2
//	gene1<tab>1.5<tab>5
//	gene2<tab>.89<tab>-.1
//
// The first header cell (the row-label column header) is ignored and may be
// empty. Every data row must carry exactly one value per declared condition
// and every value must parse as a float with a '.' decimal point; the
// matrix is rejected otherwise. Blank lines are skipped.
//
// Errors (all carry the offending 1-based line number where one exists):
// ErrEmptyInput, ErrColumnCount, ErrBadValue, ErrDuplicateGene,
// ErrDuplicateCondition, ErrEmptyGeneName.
func ParseTSV(text string) (*Matrix, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("expr: reading header: %w", err)
	}

	conds := append([]string(nil), header[1:]...)
	seen := make(map[string]struct{}, len(conds))
	for _, c := range conds {
		if _, ok := seen[c]; ok {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("expr: line %d: condition %q: %w", line, c, ErrDuplicateCondition)
		}
		seen[c] = struct{}{}
	}

	m := &Matrix{
		conds: conds,
		index: make(map[string]int),
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("expr: reading row: %w", err)
		}
		line, _ := r.FieldPos(0)

		gene := rec[0]
		if gene == "" {
			return nil, fmt.Errorf("expr: line %d: %w", line, ErrEmptyGeneName)
		}
		if _, ok := m.index[gene]; ok {
			return nil, fmt.Errorf("expr: line %d: gene %q: %w", line, gene, ErrDuplicateGene)
		}
		if got, want := len(rec)-1, len(conds); got != want {
			return nil, fmt.Errorf("expr: line %d: gene %q has %d values, expected %d: %w",
				line, gene, got, want, ErrColumnCount)
		}
		for _, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("expr: line %d: cell %q: %w", line, cell, ErrBadValue)
			}
			m.data = append(m.data, v)
		}
		m.index[gene] = len(m.genes)
		m.genes = append(m.genes, gene)
	}
	return m, nil
}

// ParseGeneList parses a plain list of gene names separated by whitespace,
// commas or semicolons, preserving order. Empty tokens are dropped. Returns
// ErrTooFewGenes (with counts) when fewer than minGenes names remain; pass
// minGenes <= 0 to accept any list, including an empty one.
func ParseGeneList(text string, minGenes int) ([]string, error) {
	genes := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
	if len(genes) < minGenes {
		return nil, fmt.Errorf("expr: need at least %d genes, got %d: %w", minGenes, len(genes), ErrTooFewGenes)
	}
	return genes, nil
}

// IsFormatError reports whether err is one of the parse-level format errors,
// as opposed to a precondition or I/O failure. Callers presenting errors to
// users can branch on this instead of enumerating sentinels.
func IsFormatError(err error) bool {
	for _, target := range []error{
		ErrEmptyInput, ErrColumnCount, ErrBadValue,
		ErrDuplicateGene, ErrDuplicateCondition, ErrEmptyGeneName,
		ErrBadName, ErrBadDocument,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
