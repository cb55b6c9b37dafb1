package linebuf

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc   string
		writes []string
		want   string
	}{
		{
			desc: "nothing",
		},
		{
			desc:   "single line",
			writes: []string{"foo\n"},
			want:   "> foo\n",
		},
		{
			desc:   "unterminated",
			writes: []string{"foo"},
			want:   "> foo\n",
		},
		{
			desc:   "blank lines",
			writes: []string{"foo\n\nbar\n"},
			want:   "> foo\n> \n> bar\n",
		},
		{
			desc:   "split writes",
			writes: []string{"fo", "o\nba", "r"},
			want:   "> foo\n> bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			w, flush := Prefix(&buff, "> ")
			for _, s := range tt.writes {
				_, err := io.WriteString(w, s)
				require.NoError(t, err)
			}
			require.NoError(t, flush())

			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestPrefix_error(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	fw := &failingWriter{err: giveErr}

	w, flush := Prefix(fw, "  ")
	_, err := io.WriteString(w, "foo\nbar\nbaz\n")
	require.NoError(t, err, "errors are reported by flush")

	assert.ErrorIs(t, flush(), giveErr)
	assert.Equal(t, 1, fw.calls, "must stop writing after the first error")
}

type failingWriter struct {
	err   error
	calls int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, w.err
}
