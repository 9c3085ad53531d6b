// Package expr provides the gene expression matrix: a two-dimensional
// numeric table with unique, order-preserving gene (row) and condition
// (column) labels, plus parsers for the two supported on-disk renderings.
//
// The expr package provides:
//
//   - Matrix — immutable after construction; O(1) gene → row lookup,
//     row-major float64 storage, and a Dense() bridge into
//     gonum.org/v1/gonum/mat for the correlation engine.
//   - ParseTSV — tab-separated text (run it through clean first): header row
//     of condition names with an ignored corner cell, then one gene per
//     line. Every format error names the offending 1-based line.
//   - ParseYAML — {name, data} documents for matrices embedded in
//     configuration, same validation rules.
//   - WriteTSV — exact round-trip serialization of a Matrix.
//   - ParseGeneList — whitespace/comma/semicolon separated gene name lists
//     with a minimum-count requirement.
//
// All parsing is whole-input: a Matrix is either fully materialized or the
// parse fails; there is no partial result and no streaming.
package expr
