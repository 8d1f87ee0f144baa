package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MeKo-Tech/heightmap/internal/heightmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useLogger(t *testing.T, w io.Writer) {
	t.Helper()
	prev := logger
	logger = newLogger(w, true, "text")
	t.Cleanup(func() { logger = prev })
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		format    string
		wantDebug bool
		wantJSON  bool
	}{
		{name: "text info", format: "text"},
		{name: "text debug", verbose: true, format: "text", wantDebug: true},
		{name: "json", format: "json", wantJSON: true},
		{name: "json uppercase", format: "JSON", verbose: true, wantDebug: true, wantJSON: true},
		{name: "unknown falls back to text", format: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.verbose, tt.format)

			l.Debug("debug line")
			l.Info("info line")

			out := buf.String()
			assert.Contains(t, out, "info line")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tt.wantJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")))
		})
	}
}

func TestGenerateOne(t *testing.T) {
	useLogger(t, io.Discard)

	s, err := generateOne(4, 1337)
	require.NoError(t, err)
	assert.Equal(t, 17, s.Side)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 1.0, s.Max)

	again, err := generateOne(4, 1337)
	require.NoError(t, err)
	assert.Equal(t, s, again)

	_, err = generateOne(0, 1337)
	assert.ErrorIs(t, err, heightmap.ErrInvalidSize)
}

func TestSweep(t *testing.T) {
	useLogger(t, io.Discard)

	one, err := sweep(context.Background(), 4, 10, 6, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 6, one.Count)

	many, err := sweep(context.Background(), 4, 10, 6, 4, false)
	require.NoError(t, err)
	assert.Equal(t, one, many, "aggregate must not depend on worker count")

	assert.Greater(t, one.MeanRoughness, 0.0)
	assert.LessOrEqual(t, one.MinRoughness, one.MeanRoughness)
	assert.GreaterOrEqual(t, one.MaxRoughness, one.MeanRoughness)
}

func TestSweep_InvalidInput(t *testing.T) {
	useLogger(t, io.Discard)

	_, err := sweep(context.Background(), heightmap.MaxSize+1, 0, 4, 1, false)
	assert.ErrorIs(t, err, heightmap.ErrInvalidSize)

	_, err = sweep(context.Background(), 3, 0, 0, 1, false)
	assert.Error(t, err)
}

func TestSweep_Cancelled(t *testing.T) {
	useLogger(t, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep(ctx, 3, 0, 8, 2, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateCommand(t *testing.T) {
	var buf bytes.Buffer
	useLogger(t, &buf)

	rootCmd.SetArgs([]string{"generate", "--size", "3", "--seed", "42"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Heightmap generated")
	assert.Contains(t, out, "side=9")
	assert.Contains(t, out, "seed=42")
}
