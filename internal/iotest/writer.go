// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/docextract/internal/linebuf"
)

// Writer builds an io.Writer that writes to the given testing.TB.
// Each line is logged separately.
// A trailing partial line is logged when the test finishes.
func Writer(t testing.TB) io.Writer {
	w, done := linebuf.Writer(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, []byte{'\n'}))
	})
	t.Cleanup(done)
	return w
}
