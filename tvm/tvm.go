// Package tvm implements closed-form time value of money formulas: single
// sums, level payment streams, annuities, perpetuities and rate conversions.
//
// Rates are per period in decimal form (0.05 for 5%). A rate at or below
// -100% is rejected with ErrDomain. Where a formula divides by the rate, a
// zero rate returns the limit (e.g. pmt*n for an annuity) instead of failing.
package tvm

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain marks a rate at or below -100%.
	ErrDomain = errors.New("tvm: rate at or below -100%")
	// ErrInvalidInput marks arguments with no meaningful result.
	ErrInvalidInput = errors.New("tvm: invalid input")
)

func checkRate(fn string, r float64) error {
	if r <= -1 || math.IsNaN(r) {
		return fmt.Errorf("%s: rate %g: %w", fn, r, ErrDomain)
	}
	return nil
}

func checkPeriods(fn string, n float64) error {
	if !(n > 0) {
		return fmt.Errorf("%s: periods must be positive, got %g: %w", fn, n, ErrInvalidInput)
	}
	return nil
}

// checkHorizon admits n == 0, where single sums and payment streams have
// their trivial values.
func checkHorizon(fn string, n float64) error {
	if !(n >= 0) {
		return fmt.Errorf("%s: periods must not be negative, got %g: %w", fn, n, ErrInvalidInput)
	}
	return nil
}

// FutureValue compounds pv over n periods: pv·(1+r)^n.
func FutureValue(pv, r, n float64) (float64, error) {
	if err := checkRate("FutureValue", r); err != nil {
		return 0, err
	}
	if err := checkHorizon("FutureValue", n); err != nil {
		return 0, err
	}
	return pv * math.Pow(1+r, n), nil
}

// PresentValue discounts fv over n periods: fv/(1+r)^n.
func PresentValue(fv, r, n float64) (float64, error) {
	if err := checkRate("PresentValue", r); err != nil {
		return 0, err
	}
	if err := checkHorizon("PresentValue", n); err != nil {
		return 0, err
	}
	return fv / math.Pow(1+r, n), nil
}

// Payment is the level end-of-period payment that amortizes pv over n periods.
func Payment(pv, r, n float64) (float64, error) {
	if err := checkRate("Payment", r); err != nil {
		return 0, err
	}
	if err := checkPeriods("Payment", n); err != nil {
		return 0, err
	}
	if r == 0 {
		return pv / n, nil
	}
	g := math.Pow(1+r, n)
	return pv * r * g / (g - 1), nil
}

// SinkingFundPayment is the level end-of-period payment that accumulates to
// fv after n periods.
func SinkingFundPayment(fv, r, n float64) (float64, error) {
	if err := checkRate("SinkingFundPayment", r); err != nil {
		return 0, err
	}
	if err := checkPeriods("SinkingFundPayment", n); err != nil {
		return 0, err
	}
	if r == 0 {
		return fv / n, nil
	}
	return fv * r / (math.Pow(1+r, n) - 1), nil
}

// FutureValueOfPayments is the value after n periods of pmt paid at the end
// of every period.
func FutureValueOfPayments(pmt, r, n float64) (float64, error) {
	if err := checkRate("FutureValueOfPayments", r); err != nil {
		return 0, err
	}
	if err := checkHorizon("FutureValueOfPayments", n); err != nil {
		return 0, err
	}
	if r == 0 {
		return pmt * n, nil
	}
	return pmt * (math.Pow(1+r, n) - 1) / r, nil
}

// PresentValueOfPayments is the value today of pmt paid at the end of each
// of n periods.
func PresentValueOfPayments(pmt, r, n float64) (float64, error) {
	if err := checkRate("PresentValueOfPayments", r); err != nil {
		return 0, err
	}
	if err := checkHorizon("PresentValueOfPayments", n); err != nil {
		return 0, err
	}
	if r == 0 {
		return pmt * n, nil
	}
	return pmt * (1 - math.Pow(1+r, -n)) / r, nil
}

// EffectiveAnnualRate converts a nominal annual rate compounded periods
// times a year into the equivalent annually compounded rate.
func EffectiveAnnualRate(nominal float64, periods int) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("EffectiveAnnualRate: compounding periods must be positive, got %d: %w", periods, ErrInvalidInput)
	}
	periodic := nominal / float64(periods)
	if err := checkRate("EffectiveAnnualRate", periodic); err != nil {
		return 0, err
	}
	return math.Pow(1+periodic, float64(periods)) - 1, nil
}

// ContinuousEffectiveAnnualRate is the limit of EffectiveAnnualRate as the
// number of compounding periods grows without bound: e^nominal - 1.
func ContinuousEffectiveAnnualRate(nominal float64) float64 {
	return math.Expm1(nominal)
}
