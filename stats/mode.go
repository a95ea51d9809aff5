package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Modality classifies how many values share the highest frequency.
type Modality int

const (
	NoMode Modality = iota
	Unimodal
	Bimodal
	Trimodal
	Multimodal
)

func (m Modality) String() string {
	switch m {
	case Unimodal:
		return "unimodal"
	case Bimodal:
		return "bimodal"
	case Trimodal:
		return "trimodal"
	case Multimodal:
		return "multimodal"
	default:
		return "no mode"
	}
}

// ModeResult describes the most frequent values of a sample.
type ModeResult struct {
	// Mode is the smallest of the most frequent values.
	Mode float64
	// Modes lists every value with the top frequency in ascending order.
	Modes     []float64
	Frequency int
	Modality  Modality
}

// Mode finds the most frequent value. A sample in which every value is
// distinct has NoMode; its Modes is empty.
func Mode(data []float64) (ModeResult, error) {
	if len(data) == 0 {
		return ModeResult{}, fmt.Errorf("Mode: %w", ErrEmpty)
	}
	for i, x := range data {
		if math.IsNaN(x) {
			return ModeResult{}, fmt.Errorf("Mode: value at index %d is NaN: %w", i, ErrInvalidInput)
		}
	}
	_, top := stat.Mode(data, nil)
	if top <= 1 {
		return ModeResult{Frequency: 1, Modality: NoMode}, nil
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	var modes []float64
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if float64(j-i) == top {
			modes = append(modes, sorted[i])
		}
		i = j
	}

	res := ModeResult{Mode: modes[0], Modes: modes, Frequency: int(top)}
	switch len(modes) {
	case 1:
		res.Modality = Unimodal
	case 2:
		res.Modality = Bimodal
	case 3:
		res.Modality = Trimodal
	default:
		res.Modality = Multimodal
	}
	return res, nil
}

// Interval is a histogram bin [Lower, Upper) and the number of values in it.
// The last bin of a histogram also includes its upper edge.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// BinWidth is the width of each of bins equal-width bins spanning the data range.
func BinWidth(data []float64, bins int) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("BinWidth: %w", ErrEmpty)
	}
	if bins <= 0 {
		return 0, fmt.Errorf("BinWidth: bins must be positive, got %d: %w", bins, ErrInvalidInput)
	}
	return (floats.Max(data) - floats.Min(data)) / float64(bins), nil
}

// Histogram counts data into bins equal-width bins. A sample with zero range
// is centred in [x-0.5, x+0.5].
func Histogram(data []float64, bins int) ([]Interval, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("Histogram: %w", ErrEmpty)
	}
	if bins <= 0 {
		return nil, fmt.Errorf("Histogram: bins must be positive, got %d: %w", bins, ErrInvalidInput)
	}
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("Histogram: value at index %d is not finite: %w", i, ErrInvalidInput)
		}
	}

	lo, hi := floats.Min(data), floats.Max(data)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// stat.Histogram wants the top divider strictly above the maximum.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Interval, bins)
	for i := range out {
		out[i] = Interval{Lower: edges[i], Upper: edges[i+1], Count: int(counts[i])}
	}
	return out, nil
}

// ModalInterval returns the first histogram bin with the highest count.
func ModalInterval(data []float64, bins int) (Interval, error) {
	hist, err := Histogram(data, bins)
	if err != nil {
		return Interval{}, fmt.Errorf("ModalInterval: %w", err)
	}
	best := 0
	for i := range hist {
		if hist[i].Count > hist[best].Count {
			best = i
		}
	}
	return hist[best], nil
}
