package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "format"},
		{give: "config"},
		{give: "sphinx"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Help
	}{
		{give: "true", want: DefaultHelp},
		{give: " Format ", want: "format"},
		{give: "usage", want: UsageHelp},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var h Help
			assert.NoError(t, h.Set(tt.give))
			assert.Equal(t, tt.want, h)
			assert.True(t, h.Known())
		})
	}
}

func TestHelp_usageIsFirstLine(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	assert.NoError(t, UsageHelp.Write(&buff))
	assert.Equal(t, "USAGE: docextract [OPTIONS] FILE\n", buff.String())
}
