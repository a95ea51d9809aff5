package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finlib/stats"
)

func TestMeans(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4, 5}

	am, err := stats.ArithmeticMean(data)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, am, 1e-12)

	gm, err := stats.GeometricMean(data)
	require.NoError(t, err)
	assert.InDelta(t, 2.605171084697352, gm, 1e-12)

	hm, err := stats.HarmonicMean(data)
	require.NoError(t, err)
	assert.InDelta(t, 2.18978102189781, hm, 1e-12)

	all, err := stats.PythagoreanMeans(data)
	require.NoError(t, err)
	assert.LessOrEqual(t, all.Harmonic, all.Geometric)
	assert.LessOrEqual(t, all.Geometric, all.Arithmetic)
}

func TestMeans_DomainErrors(t *testing.T) {
	t.Parallel()

	_, err := stats.ArithmeticMean(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	_, err = stats.GeometricMean([]float64{1, 0, 3})
	assert.ErrorIs(t, err, stats.ErrNonPositive)

	_, err = stats.HarmonicMean([]float64{1, -2})
	assert.ErrorIs(t, err, stats.ErrNonPositive)

	_, err = stats.HarmonicMean(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	// The arithmetic mean has no positivity restriction.
	am, err := stats.ArithmeticMean([]float64{-1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, am)
}

func TestMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		data     []float64
		mode     float64
		modes    []float64
		freq     int
		modality stats.Modality
	}{
		{"unimodal", []float64{1, 2, 2, 3}, 2, []float64{2}, 2, stats.Unimodal},
		{"bimodal", []float64{5, 1, 1, 5, 3}, 1, []float64{1, 5}, 2, stats.Bimodal},
		{"trimodal", []float64{3, 3, 2, 2, 1, 1, 9}, 1, []float64{1, 2, 3}, 2, stats.Trimodal},
		{"multimodal", []float64{4, 4, 3, 3, 2, 2, 1, 1}, 1, []float64{1, 2, 3, 4}, 2, stats.Multimodal},
		{"none", []float64{1, 2, 3}, 0, nil, 1, stats.NoMode},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := stats.Mode(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.mode, got.Mode)
			assert.Equal(t, tc.modes, got.Modes)
			assert.Equal(t, tc.freq, got.Frequency)
			assert.Equal(t, tc.modality, got.Modality)
		})
	}

	_, err := stats.Mode(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestBinWidthAndModalInterval(t *testing.T) {
	t.Parallel()

	data := []float64{0, 1, 1.5, 2, 2.2, 2.4, 2.6, 3, 4, 10}

	w, err := stats.BinWidth(data, 5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)

	hist, err := stats.Histogram(data, 5)
	require.NoError(t, err)
	require.Len(t, hist, 5)
	counts := make([]int, len(hist))
	for i, b := range hist {
		counts[i] = b.Count
	}
	// The maximum (10) lands in the closed last bin.
	assert.Equal(t, []int{3, 5, 1, 0, 1}, counts)

	iv, err := stats.ModalInterval(data, 5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, iv.Lower, 1e-12)
	assert.InDelta(t, 4.0, iv.Upper, 1e-12)
	assert.Equal(t, 5, iv.Count)

	_, err = stats.ModalInterval(data, 0)
	assert.ErrorIs(t, err, stats.ErrInvalidInput)
}

func TestHistogram_ConstantSample(t *testing.T) {
	t.Parallel()

	iv, err := stats.ModalInterval([]float64{7, 7, 7}, 1)
	require.NoError(t, err)
	assert.Equal(t, stats.Interval{Lower: 6.5, Upper: 7.5, Count: 3}, iv)
}
