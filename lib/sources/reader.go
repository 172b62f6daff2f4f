package sources

import (
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/pescuma/mycat/lib/buffers"
)

// StdinName is the source name that selects standard input.
const StdinName = "-"

// Reader loads whole sources into memory.
type Reader struct {
	stdin  io.Reader
	logger *slog.Logger
}

func NewReader(stdin io.Reader, logger *slog.Logger) *Reader {
	return &Reader{
		stdin:  stdin,
		logger: logger,
	}
}

// Read loads standard input when name is StdinName, or the named file
// otherwise.
func (r *Reader) Read(name string) ([]byte, error) {
	if name == StdinName {
		return r.ReadStdin()
	}

	return r.ReadFile(name)
}

// ReadStdin reads standard input until end of stream. A stream without any
// byte fails with ErrEmptyStdin.
func (r *Reader) ReadStdin() ([]byte, error) {
	buf, err := buffers.New(buffers.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	_, err = buf.ReadFrom(r.stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading standard input")
	}

	if buf.Len() == 0 {
		return nil, ErrEmptyStdin
	}

	r.logger.Debug("Read source", "name", StdinName, "size", humanize.Bytes(uint64(buf.Len())))

	return buf.Bytes(), nil
}

// ReadFile reads the whole file at path. The size is taken up front and
// exactly that many bytes must be read.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileOpenError{Path: path, Err: errors.New("is a directory")}
	}

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}

	if size == 0 {
		r.logger.Debug("Skipping empty source", "name", path)
		return nil, nil
	}

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, &ShortReadError{Path: path, Expected: size, Err: err}
	}

	if size > int64(buffers.MaxCapacity-1) {
		return nil, errors.Wrapf(&buffers.CapacityExceededError{Max: buffers.MaxCapacity}, "loading file '%v'", path)
	}

	buf, err := buffers.New(int(size) + 1)
	if err != nil {
		return nil, errors.Wrapf(err, "loading file '%v'", path)
	}

	n, err := buf.ReadFull(file, int(size))
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return nil, &ShortReadError{Path: path, Expected: size, Read: n, Err: err}
	case err != nil:
		return nil, &FileOpenError{Path: path, Err: err}
	}

	r.logger.Debug("Read source", "name", path, "size", humanize.Bytes(uint64(n)))

	return buf.Bytes(), nil
}
