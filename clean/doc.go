// Package clean normalizes raw text of unknown provenance into plain
// UTF-8 ready for line-oriented parsing.
//
// Expression matrices and clusterings arrive as files exported from
// spreadsheets, legacy pipelines and whatever a collaborator's OS produced.
// Before handing such content to the parsers in expr or clustering, run it
// through Clean:
//
//   - the character encoding is detected probabilistically (chardet) and the
//     bytes are decoded to UTF-8; a fallback encoding takes over when
//     detection confidence is low,
//   - CRLF, lone CR and runs of blank lines all become a single '\n',
//   - NUL bytes and stray control characters are removed,
//   - runs of tabs collapse to one tab.
//
// Usage:
//
//	opts := clean.DefaultOptions()
//	text, report, err := clean.Clean(raw, &opts)
//	if err != nil {
//	  // handle ErrUndecodable / ErrUnknownEncoding
//	}
//	if len(report.Warnings) > 0 {
//	  // low-confidence detection; result is best-effort
//	}
//
// Clean is a pure transformation: the same bytes and options always produce
// the same text, and nothing outside the call is touched apart from optional
// warning logs on the configured slog logger.
package clean
