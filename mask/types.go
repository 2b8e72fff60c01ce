// Package mask defines options and the result type for mask formatting.
package mask

import "log/slog"

// Result is the outcome of formatting one value.
//
//   - Text     — the corrected value; never holds a character the pattern
//     disallows at that position.
//   - Complete — true when every slot of the pattern up to its end is
//     satisfied by Text.
type Result struct {
	Text     string
	Complete bool
}

// Option configures Apply via functional arguments.
// Invalid arguments (nil hooks, nil loggers) are ignored.
type Option func(*Options)

// Options holds the switches and trace hooks of a single Apply call.
type Options struct {
	// Prediction appends the literal characters that directly follow once the
	// input runs out and the current digit run is satisfied.
	Prediction bool

	// Lazy pads the current digit run with a leading '0' when a separator is
	// typed before its required slots are filled.
	Lazy bool

	// OnChunk is called every time a new output chunk (digit run or literal)
	// is started or a run is padded. Receives the chunk text at that moment.
	OnChunk func(chunk string)

	// Logger, if set, receives one Debug record per OnChunk event.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sane defaults:
//   - Prediction enabled
//   - Lazy padding enabled
//   - no trace hook, no logger
func DefaultOptions() Options {
	return Options{
		Prediction: true,
		Lazy:       true,
	}
}

// WithPrediction toggles speculative literal suffixes.
func WithPrediction(on bool) Option {
	return func(o *Options) {
		o.Prediction = on
	}
}

// WithLazy toggles zero padding of short digit runs.
func WithLazy(on bool) Option {
	return func(o *Options) {
		o.Lazy = on
	}
}

// WithOnChunk installs a trace hook for chunk boundaries.
func WithOnChunk(fn func(chunk string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChunk = fn
		}
	}
}

// WithLogger sends chunk traces to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over DefaultOptions, skipping nil entries.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
