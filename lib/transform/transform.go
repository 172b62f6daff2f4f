package transform

import (
	"bytes"
	"strconv"

	"github.com/pescuma/mycat/lib/buffers"
	"github.com/pescuma/mycat/lib/model"
)

var lineEndMark = []byte("$\n")

// Append writes src into out one line at a time, applying cfg.
//
// A line spans up to and including its newline. A trailing fragment without
// a newline is a partial line: it is copied and numbered like any non-blank
// line, but gets no end mark.
//
// Line numbers come from the running counter of out, so consecutive calls on
// the same buffer keep counting.
func Append(out *buffers.Buffer, cfg model.Config, src []byte) error {
	var number [24]byte

	for pos := 0; pos < len(src); {
		if cfg.SqueezeBlank && src[pos] == '\n' {
			for pos < len(src) && src[pos] == '\n' {
				pos++
			}
			pos--
		}

		line := nextLine(src[pos:])
		terminated := line[len(line)-1] == '\n'

		if shouldNumber(cfg.Number, line) {
			prefix := strconv.AppendInt(number[:0], int64(out.Lines()+1), 10)
			prefix = append(prefix, '\t')

			_, err := out.Write(prefix)
			if err != nil {
				return err
			}

			out.CountLine()
		}

		var err error
		if cfg.ShowEnds && terminated {
			_, err = out.Write(line[:len(line)-1])
			if err == nil {
				_, err = out.Write(lineEndMark)
			}
		} else {
			_, err = out.Write(line)
		}
		if err != nil {
			return err
		}

		pos += len(line)
	}

	return nil
}

func nextLine(src []byte) []byte {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return src
	}

	return src[:i+1]
}

func shouldNumber(mode model.NumberMode, line []byte) bool {
	switch mode {
	case model.NumberAll:
		return true
	case model.NumberNonBlank:
		return !IsBlank(line)
	default:
		return false
	}
}

// IsBlank reports whether line is exactly one newline.
func IsBlank(line []byte) bool {
	return len(line) == 1 && line[0] == '\n'
}
