package clean

import "log/slog"

// Defaults for Options. DefaultMinConfidence is a fixed policy choice on
// chardet's 0..100 confidence scale: guesses below it are distrusted and the
// fallback encoding is used instead. DefaultFallback is windows-1252 because
// it decodes every byte sequence a tab-separated export can plausibly
// contain, which keeps cleaning total on western single-byte data.
const (
	DefaultFallback      = "windows-1252"
	DefaultMinConfidence = 80
)

// Options configures Clean.
//
// Fields:
//   - Encoding      — explicit IANA charset name. When set, detection is
//     skipped entirely and a decode failure is fatal (no fallback).
//   - Fallback      — charset used when detection fails or its confidence is
//     below MinConfidence.
//   - MinConfidence — detection confidence threshold on chardet's 0..100
//     scale; below it a warning is recorded and Fallback is used.
//   - Logger        — destination for data-quality warnings.
//     Nil means slog.Default().
type Options struct {
	Encoding      string
	Fallback      string
	MinConfidence int
	Logger        *slog.Logger
}

// DefaultOptions returns the documented defaults: auto-detection with the
// windows-1252 fallback and the fixed 80% confidence threshold.
func DefaultOptions() Options {
	return Options{
		Fallback:      DefaultFallback,
		MinConfidence: DefaultMinConfidence,
	}
}
