package expr

import "errors"

var (
	// ErrEmptyInput indicates input with no header row at all.
	ErrEmptyInput = errors.New("expr: input contains no header row")

	// ErrColumnCount indicates a data row whose value count does not match
	// the declared conditions.
	ErrColumnCount = errors.New("expr: row has wrong number of columns")

	// ErrBadValue indicates a cell that does not parse as a floating point
	// number.
	ErrBadValue = errors.New("expr: invalid numeric value")

	// ErrDuplicateGene indicates a gene label declared twice.
	ErrDuplicateGene = errors.New("expr: duplicate gene name")

	// ErrDuplicateCondition indicates a condition label declared twice.
	ErrDuplicateCondition = errors.New("expr: duplicate condition name")

	// ErrEmptyGeneName indicates a data row without a gene label.
	ErrEmptyGeneName = errors.New("expr: row has empty gene name")

	// ErrBadName indicates an invalid matrix name (empty, whitespace-only,
	// surrounded by whitespace, or containing NUL).
	ErrBadName = errors.New("expr: invalid matrix name")

	// ErrBadDocument indicates a YAML matrix document with the wrong shape
	// (not a mapping, missing name/data, rows that are not sequences, ...).
	ErrBadDocument = errors.New("expr: invalid matrix document")

	// ErrShape indicates programmatic construction with values whose shape
	// does not match the given labels.
	ErrShape = errors.New("expr: values shape does not match labels")

	// ErrTooFewGenes indicates a gene list with fewer entries than the
	// caller's required minimum.
	ErrTooFewGenes = errors.New("expr: gene list has too few genes")
)
