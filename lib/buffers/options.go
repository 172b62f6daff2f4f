package buffers

import "math"

const (
	// DefaultCapacity is the initial capacity used for sources and output.
	DefaultCapacity = 256

	// MaxCapacity is the largest capacity a buffer may ever request.
	MaxCapacity = math.MaxInt
)

type options struct {
	maxCapacity int
}

// Option configures a Buffer.
type Option func(*options)

// WithMaxCapacity lowers the capacity limit of a buffer. Growth that would
// request more than n bytes fails with a CapacityExceededError.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}
