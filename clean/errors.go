package clean

import "errors"

var (
	// ErrUndecodable indicates that neither the detected encoding nor the
	// fallback produced valid text for the input bytes.
	ErrUndecodable = errors.New("clean: input is not decodable under any candidate encoding")

	// ErrUnknownEncoding indicates an explicitly requested encoding name
	// that the IANA registry does not resolve to a supported charset.
	ErrUnknownEncoding = errors.New("clean: unknown encoding name")
)
