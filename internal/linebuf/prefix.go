package linebuf

import (
	"bytes"
	"io"
)

var _newline = []byte("\n")

// Prefix returns an io.Writer that copies its input to w
// with prefix added to the start of every line.
//
// flush must be called when done writing.
// It terminates a trailing partial line with a newline,
// and returns the first error encountered writing to w.
// Once an error occurs, nothing else is written to w.
func Prefix(w io.Writer, prefix string) (_ io.Writer, flush func() error) {
	var err error
	pw, done := Writer(func(line []byte) {
		if err != nil {
			return
		}
		if _, err = io.WriteString(w, prefix); err != nil {
			return
		}
		if _, err = w.Write(line); err != nil {
			return
		}
		if !bytes.HasSuffix(line, _newline) {
			_, err = w.Write(_newline)
		}
	})

	return pw, func() error {
		done()
		return err
	}
}
