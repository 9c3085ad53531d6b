package clean

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// Report describes how an input was cleaned: which charset the bytes were
// decoded with, the detector's confidence in it (0..100, 100 for explicit
// encodings), and any data-quality warnings raised along the way.
type Report struct {
	Charset    string
	Confidence int
	Warnings   []string
}

// Clean decodes raw bytes to UTF-8 and normalizes the result for
// line-oriented parsing. Returns the cleaned text and a Report of the
// decoding decisions taken.
//
// Decoding policy:
//   - opts.Encoding set: decode with exactly that charset; failure is fatal.
//   - otherwise: detect the charset with chardet. A guess below
//     opts.MinConfidence, a failed detection, or a guess that does not
//     actually decode the bytes all fall back to opts.Fallback, each with a
//     recorded warning.
//
// Normalization (applied after decoding):
//   - runs of CR/LF in any mix become a single '\n' (empty lines dropped),
//   - runs of tabs become a single '\t',
//   - NUL and other control characters are removed.
//
// Errors:
//   - ErrUnknownEncoding — a charset name the IANA registry cannot resolve.
//   - ErrUndecodable     — no candidate encoding, fallback included, yields
//     valid text.
func Clean(raw []byte, opts *Options) (string, Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Fallback == "" {
		o.Fallback = DefaultFallback
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var rep Report
	if len(raw) == 0 {
		rep.Charset, rep.Confidence = "UTF-8", 100
		return "", rep, nil
	}

	// Explicit encoding: no detection, no fallback.
	if o.Encoding != "" {
		text, err := decode(raw, o.Encoding)
		if err != nil {
			return "", rep, err
		}
		rep.Charset, rep.Confidence = o.Encoding, 100
		return normalize(text), rep, nil
	}

	charset := o.Fallback
	if best, err := chardet.NewTextDetector().DetectBest(raw); err == nil {
		rep.Confidence = best.Confidence
		if best.Confidence < o.MinConfidence {
			warn(&rep, logger, fmt.Sprintf(
				"detected charset %s at confidence %d below threshold %d, using fallback %s",
				best.Charset, best.Confidence, o.MinConfidence, o.Fallback))
		} else {
			charset = best.Charset
		}
	} else {
		warn(&rep, logger, fmt.Sprintf("charset detection failed, using fallback %s", o.Fallback))
	}

	text, err := decode(raw, charset)
	if err != nil && charset != o.Fallback {
		// The guess did not hold up against the actual bytes.
		warn(&rep, logger, fmt.Sprintf("charset %s does not decode the input, using fallback %s", charset, o.Fallback))
		charset = o.Fallback
		text, err = decode(raw, charset)
	}
	if err != nil {
		return "", rep, err
	}
	rep.Charset = charset
	return normalize(text), rep, nil
}

// warn records a data-quality warning in the report and logs it. Warnings
// never abort cleaning.
func warn(rep *Report, logger *slog.Logger, msg string) {
	rep.Warnings = append(rep.Warnings, msg)
	logger.Warn("clean: " + msg)
}

// decode converts raw bytes to a UTF-8 string under the named charset.
// A byte sequence the charset cannot represent is an error, not a silent
// substitution.
func decode(raw []byte, name string) (string, error) {
	if isUTF8Name(name) {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("clean: input is not valid %s: %w", name, ErrUndecodable)
		}
		return string(raw), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("clean: %q: %w", name, ErrUnknownEncoding)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("clean: decoding as %s: %w", name, ErrUndecodable)
	}
	// x/text decoders substitute U+FFFD for unmappable bytes instead of
	// failing; surface that as a decode failure.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("clean: %s cannot represent every input byte: %w", name, ErrUndecodable)
	}
	return string(out), nil
}

// isUTF8Name reports whether name denotes text we can validate directly
// without a transform.
func isUTF8Name(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF-8", "UTF8", "ASCII", "US-ASCII":
		return true
	}
	return false
}

// normalize rewrites decoded text in a single pass: newline runs to '\n',
// tab runs to '\t', control characters out. Dropped controls do not break a
// run; "\t\x00\t" still collapses to one tab, matching removal-then-squash
// order.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inNewline, inTab := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\r' || c == '\n':
			if !inNewline {
				b.WriteByte('\n')
			}
			inNewline, inTab = true, false
		case c == '\t':
			if !inTab {
				b.WriteByte('\t')
			}
			inNewline, inTab = false, true
		case c < 0x20 || c == 0x7f:
			// control character: drop
		default:
			b.WriteByte(c)
			inNewline, inTab = false, false
		}
	}
	return b.String()
}
