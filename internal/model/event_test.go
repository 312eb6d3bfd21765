package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"#ff6b6b", "#FF6B6B"},
		{"ff6b6b", "#FF6B6B"},
		{"#4ECDC4", "#4ECDC4"},
	}

	for _, tt := range tests {
		got, err := NormalizeColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, in := range []string{"", "#", "#fff", "not a color"} {
		_, err := NormalizeColor(in)
		assert.Error(t, err, in)
	}
}

func TestEventColorsCanonical(t *testing.T) {
	t.Parallel()

	require.Len(t, EventColors, 8)

	// The palette round-trips through normalization unchanged.
	for _, c := range EventColors {
		got, err := NormalizeColor(c)
		require.NoError(t, err, c)
		assert.Equal(t, c, got)
	}
}
