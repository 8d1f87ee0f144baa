package heightmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
		want  []float32
	}{
		{
			name:  "empty",
			input: []float32{},
			want:  []float32{},
		},
		{
			name:  "single cell",
			input: []float32{0.7},
			want:  []float32{0},
		},
		{
			name:  "all equal",
			input: []float32{0.3, 0.3, 0.3, 0.3},
			want:  []float32{0, 0, 0, 0},
		},
		{
			name:  "symmetric",
			input: []float32{-2, 0, 2},
			want:  []float32{0, 0.5, 1},
		},
		{
			name:  "all negative",
			input: []float32{-3, -1, -2},
			want:  []float32{0, 1, 0.5},
		},
		{
			name:  "outside unit range",
			input: []float32{1.5, 0.5, 2.5, 1.0},
			want:  []float32{0.5, 0, 1, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]float32(nil), tt.input...)
			normalize(got)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-6, "index %d", i)
			}
		})
	}
}

func TestNormalize_ExactExtremes(t *testing.T) {
	vals := []float32{0.1, 0.30000001, 0.7, 0.9000001}
	normalize(vals)
	assert.Equal(t, float32(0), vals[0])
	assert.Equal(t, float32(1), vals[3])
}
