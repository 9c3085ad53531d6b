package clustering

import "log/slog"

// options collects parse configuration; zero value = no member filter,
// default logger.
type options struct {
	validMembers map[string]struct{}
	logger       *slog.Logger
}

// Option configures Parse.
type Option func(*options)

// WithValidMembers restricts cluster members to the given identifiers,
// typically expression-matrix gene labels. Members outside the set are
// dropped with an UnknownMember warning instead of failing the parse.
func WithValidMembers(members []string) Option {
	return func(o *options) {
		o.validMembers = make(map[string]struct{}, len(members))
		for _, m := range members {
			o.validMembers[m] = struct{}{}
		}
	}
}

// WithLogger routes data-quality warnings to the given logger instead of
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
