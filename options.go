package gradient

// Option configures Normalize.
//
// Example:
//
//	// Reject unsorted, out-of-range and coincident stops.
//	g, err := gradient.Normalize(colors, stops, gradient.WithStrictStops())
type Option func(*options)

// options holds optional configuration for Normalize.
type options struct {
	strict bool
}

// defaultOptions returns the default normalization options.
func defaultOptions() options {
	return options{
		strict: false, // stop ordering is the caller's responsibility
	}
}

// WithStrictStops enables full validation of the stop list.
//
// Without it, Normalize only checks the structural preconditions (non-empty
// colors, matching lengths) and trusts the caller to supply sorted stops in
// [0, 1]. Coincident stops are then accepted as hard color transitions.
//
// With it, Normalize additionally fails with ErrStopOutOfRange,
// ErrStopsNotSorted or ErrZeroWidthSegment.
func WithStrictStops() Option {
	return func(o *options) {
		o.strict = true
	}
}
