package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty is returned for an empty sample.
	ErrEmpty = errors.New("stats: empty sample")
	// ErrNonPositive is returned when a mean that is only defined for
	// positive values sees a zero or negative value.
	ErrNonPositive = errors.New("stats: non-positive value")
	// ErrInvalidInput marks other unusable arguments.
	ErrInvalidInput = errors.New("stats: invalid input")
)

// ArithmeticMean is Σx/n.
func ArithmeticMean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("ArithmeticMean: %w", ErrEmpty)
	}
	return stat.Mean(data, nil), nil
}

// GeometricMean is (Πx)^(1/n). Every value must be positive.
func GeometricMean(data []float64) (float64, error) {
	if err := checkPositive("GeometricMean", data); err != nil {
		return 0, err
	}
	return stat.GeometricMean(data, nil), nil
}

// HarmonicMean is n/Σ(1/x). Every value must be positive.
func HarmonicMean(data []float64) (float64, error) {
	if err := checkPositive("HarmonicMean", data); err != nil {
		return 0, err
	}
	return stat.HarmonicMean(data, nil), nil
}

// Means holds the three Pythagorean means of one sample.
type Means struct {
	Arithmetic float64 `json:"arithmetic"`
	Geometric  float64 `json:"geometric"`
	Harmonic   float64 `json:"harmonic"`
}

// PythagoreanMeans computes all three means. For positive data
// Harmonic <= Geometric <= Arithmetic.
func PythagoreanMeans(data []float64) (Means, error) {
	if err := checkPositive("PythagoreanMeans", data); err != nil {
		return Means{}, err
	}
	return Means{
		Arithmetic: stat.Mean(data, nil),
		Geometric:  stat.GeometricMean(data, nil),
		Harmonic:   stat.HarmonicMean(data, nil),
	}, nil
}

func checkPositive(fn string, data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", fn, ErrEmpty)
	}
	for i, x := range data {
		if !(x > 0) {
			return fmt.Errorf("%s: value %g at index %d: %w", fn, x, i, ErrNonPositive)
		}
	}
	return nil
}
