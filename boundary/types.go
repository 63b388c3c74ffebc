package boundary

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("boundary: invalid option supplied")

// Metrics are the measurements of one region.
type Metrics struct {
	Area      int
	Perimeter int
	Sides     int
}

// Option configures MeasureAll via functional arguments.
type Option func(*Options)

// Options holds the parameters of MeasureAll.
type Options struct {
	// Workers bounds the number of regions measured concurrently.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int

	err error
}

// DefaultOptions returns Options with Workers == 0 (use GOMAXPROCS).
func DefaultOptions() Options {
	return Options{}
}

// WithWorkers bounds the fan-out.
//
//	n > 0:  at most n concurrent measurements
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
