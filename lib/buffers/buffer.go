package buffers

import (
	"io"

	"github.com/pkg/errors"
)

// Buffer is a growable byte container that also keeps the running count of
// numbered lines written into it.
//
// The byte right after the last written one is always zero. Capacity growth
// follows 2*cap + extra + 1 so appends are amortized O(1) per byte.
type Buffer struct {
	data        []byte
	lines       int
	maxCapacity int
}

func New(initialCapacity int, opts ...Option) (*Buffer, error) {
	o := options{
		maxCapacity: MaxCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if initialCapacity < 1 {
		initialCapacity = 1
	}
	if initialCapacity > o.maxCapacity {
		return nil, &CapacityExceededError{Max: o.maxCapacity}
	}

	data, err := allocate(initialCapacity)
	if err != nil {
		return nil, err
	}

	b := &Buffer{
		data:        data,
		maxCapacity: o.maxCapacity,
	}
	b.terminate()

	return b, nil
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the allocated size, terminator slot included.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the written bytes. The slice aliases the buffer storage and is
// only valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Lines returns how many lines were numbered into this buffer.
func (b *Buffer) Lines() int {
	return b.lines
}

// CountLine increments the running line counter and returns the new value.
func (b *Buffer) CountLine() int {
	b.lines++
	return b.lines
}

// Grow makes sure extra more bytes, plus the terminator, fit without another
// allocation.
func (b *Buffer) Grow(extra int) error {
	if extra < 0 {
		return errors.Errorf("buffers: negative grow count %v", extra)
	}
	if extra < cap(b.data)-len(b.data) {
		return nil
	}

	requested, ok := b.requestedCapacity(extra)
	if !ok {
		return &CapacityExceededError{Max: b.maxCapacity}
	}

	data, err := allocate(requested)
	if err != nil {
		return err
	}

	b.data = append(data, b.data...)
	b.terminate()

	return nil
}

func (b *Buffer) requestedCapacity(extra int) (int, bool) {
	c := cap(b.data)
	if extra > b.maxCapacity-1 || c > (b.maxCapacity-1-extra)/2 {
		return 0, false
	}

	return 2*c + extra + 1, true
}

func (b *Buffer) Write(p []byte) (int, error) {
	err := b.Grow(len(p))
	if err != nil {
		return 0, err
	}

	b.data = append(b.data, p...)
	b.terminate()

	return len(p), nil
}

func (b *Buffer) WriteByte(c byte) error {
	err := b.Grow(1)
	if err != nil {
		return err
	}

	b.data = append(b.data, c)
	b.terminate()

	return nil
}

// ReadFrom reads r until end of stream, growing whenever the buffer fills up.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	for {
		if cap(b.data)-len(b.data) <= 1 {
			err := b.Grow(1)
			if err != nil {
				return total, err
			}
		}

		start := len(b.data)
		n, err := r.Read(b.data[start : cap(b.data)-1])
		b.data = b.data[:start+n]
		b.terminate()
		total += int64(n)

		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, err
		}
	}
}

// ReadFull reads exactly n bytes from r. Like io.ReadFull, it returns
// io.ErrUnexpectedEOF when the stream ends early, and keeps what was read.
func (b *Buffer) ReadFull(r io.Reader, n int) (int, error) {
	err := b.Grow(n)
	if err != nil {
		return 0, err
	}

	start := len(b.data)
	read, err := io.ReadFull(r, b.data[start:start+n])
	b.data = b.data[:start+read]
	b.terminate()

	return read, err
}

func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}

func (b *Buffer) terminate() {
	b.data[:len(b.data)+1][len(b.data)] = 0
}

func allocate(size int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &AllocationError{Size: size, Cause: r}
		}
	}()

	return make([]byte, 0, size), nil
}
