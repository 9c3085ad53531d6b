// Package varbio is a small data-preparation library for gene-expression
// analysis tools: it cleans raw text input, parses expression matrices and
// gene clusterings, and computes pairwise correlation between expression
// profiles.
//
// 🚀 What is varbio?
//
//	The shared front door of a co-expression analysis pipeline:
//		• Cleaning: encoding detection, newline unification, control-char removal
//		• Expression matrices: TSV and YAML parsing with strict validation
//		• Clusterings: multi-line named sets with warning-tolerant parsing
//		• Correlation: pluggable metrics + a vectorised Pearson fast path
//
// ✨ Why varbio?
//
//   - Diagnosable failures – every format error names its line and label
//   - Honest numbers – undefined correlations are NaN, never a stand-in value
//   - Deterministic – pure functions, no hidden global state
//   - Labeled or positional – gonum matrices underneath, gene labels on top
//
// Everything is organized under four subpackages:
//
//	clean/       — raw bytes → normalized UTF-8 text
//	expr/        — expression matrix type + parsers + serializer
//	clustering/  — clustering type + parser + unclustered derivation
//	correlation/ — generic and Pearson similarity engines
//
// A typical pipeline chains them:
//
//	text, _, err := clean.Clean(raw, nil)
//	m, err := expr.ParseTSV(text)
//	cl, warnings, err := clustering.Parse(clusterText,
//	  clustering.WithValidMembers(m.Genes()))
//	sim, err := correlation.PearsonMatrix(m)
//
// This library does not persist data, schedule jobs, or speak any network
// protocol; callers own file I/O and parallelism (every call is pure, so
// running one call per worker is safe).
package varbio
