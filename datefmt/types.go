package datefmt

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/inputmask/mask"
)

// Sentinel errors. Callers branch with errors.Is; returned errors carry the
// method name and offending input as a prefix.
var (
	// ErrEmptyLayout is returned when the layout string is empty.
	ErrEmptyLayout = errors.New("datefmt: layout is empty")

	// ErrBadValue indicates the value does not follow the layout.
	ErrBadValue = errors.New("datefmt: value does not match layout")

	// ErrOutOfRange indicates a field, or the calendar date as a whole, is out of range.
	ErrOutOfRange = errors.New("datefmt: field out of range")

	// ErrNotMaskable indicates the layout holds tokens a digit mask cannot express.
	ErrNotMaskable = errors.New("datefmt: layout cannot be expressed as a mask")

	// ErrIncomplete indicates the masked value does not fill the layout yet.
	ErrIncomplete = errors.New("datefmt: value is incomplete")
)

// errorf wraps sentinel with method context: "<method>: <message>: <sentinel>".
func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// Option configures Parse and Complete.
type Option func(*Options)

// Options holds parse settings.
type Options struct {
	// Location is the zone the parsed wall clock is interpreted in.
	Location *time.Location

	// MaskOptions are forwarded to mask.Apply by Complete.
	MaskOptions []mask.Option
}

// DefaultOptions returns UTC and default mask options.
func DefaultOptions() Options {
	return Options{Location: time.UTC}
}

// WithLocation sets the time zone for parsed values. Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc != nil {
			o.Location = loc
		}
	}
}

// WithMaskOptions forwards opts to the mask formatter used by Complete.
func WithMaskOptions(opts ...mask.Option) Option {
	return func(o *Options) {
		o.MaskOptions = append(o.MaskOptions, opts...)
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
