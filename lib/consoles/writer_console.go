package consoles

import (
	"fmt"
	"io"

	"github.com/abiosoft/lineprefix"
)

type writerConsole struct {
	out io.Writer
}

// NewWriterConsole returns a console that writes to w, starting every line
// with "<name>: ". lineprefix adds the space after the prefix.
func NewWriterConsole(w io.Writer, name string) Console {
	prefix := lineprefix.PrefixFunc(func() string {
		return name + ":"
	})

	return &writerConsole{
		out: lineprefix.New(lineprefix.Writer(w), prefix),
	}
}

func (c *writerConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
