// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// Stdio is the value of a file flag
// that refers to the fallback writer.
const Stdio = "-"

// File is a flag that names a file to write to.
// An empty value or "-" refers to a fallback writer,
// usually standard output.
type File string

var _ flag.Getter = (*File)(nil)

// Get returns the path stored in the flag.
func (f *File) Get() any { return string(*f) }

// String returns the path stored in the flag.
func (f *File) String() string { return string(*f) }

// Set receives the value for this flag.
func (f *File) Set(v string) error {
	*f = File(v)
	return nil
}

// IsStdio reports whether this flag refers to the fallback writer.
func (f *File) IsStdio() bool {
	return *f == "" || *f == Stdio
}

// Create creates the file specified for this flag,
// and returns an io.Writer to it and a function to close it.
//
// If the flag refers to the fallback writer,
// the fallback is returned and closing it is a no-op.
func (f *File) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	if f.IsStdio() {
		return fallback, nopClose, nil
	}

	file, err := os.Create(string(*f))
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return file, file.Close, nil
}

func nopClose() error { return nil }
