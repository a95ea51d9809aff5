package tvm

import (
	"fmt"
	"strings"
)

// Timing says whether a periodic payment falls at the start or the end of
// each period.
type Timing int

const (
	// TimingEnd is an ordinary annuity (payments in arrears).
	TimingEnd Timing = iota
	// TimingBegin is an annuity due (payments in advance).
	TimingBegin
)

func (t Timing) String() string {
	if t == TimingBegin {
		return "begin"
	}
	return "end"
}

// ParseTiming accepts "begin" and "end".
func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "begin", "due", "start":
		return TimingBegin, nil
	case "end", "ordinary", "":
		return TimingEnd, nil
	}
	return 0, fmt.Errorf("ParseTiming: invalid payment timing %q, use begin or end: %w", s, ErrInvalidInput)
}

// AnnuityPV is the present value of an ordinary annuity of n payments.
func AnnuityPV(pmt, r, n float64) (float64, error) {
	if err := checkPeriods("AnnuityPV", n); err != nil {
		return 0, err
	}
	return PresentValueOfPayments(pmt, r, n)
}

// AnnuityFV is the future value of an ordinary annuity of n payments.
func AnnuityFV(pmt, r, n float64) (float64, error) {
	if err := checkPeriods("AnnuityFV", n); err != nil {
		return 0, err
	}
	return FutureValueOfPayments(pmt, r, n)
}

// AnnuityDuePV is the present value of n payments made at the start of each period.
func AnnuityDuePV(pmt, r, n float64) (float64, error) {
	pv, err := AnnuityPV(pmt, r, n)
	if err != nil {
		return 0, err
	}
	return pv * (1 + r), nil
}

// AnnuityDueFV is the future value of n payments made at the start of each period.
func AnnuityDueFV(pmt, r, n float64) (float64, error) {
	fv, err := AnnuityFV(pmt, r, n)
	if err != nil {
		return 0, err
	}
	return fv * (1 + r), nil
}

// Annuity dispatches to the ordinary or due variant.
func Annuity(pmt, r, n float64, timing Timing) (pv, fv float64, err error) {
	if timing == TimingBegin {
		if pv, err = AnnuityDuePV(pmt, r, n); err != nil {
			return 0, 0, err
		}
		fv, err = AnnuityDueFV(pmt, r, n)
		return pv, fv, err
	}
	if pv, err = AnnuityPV(pmt, r, n); err != nil {
		return 0, 0, err
	}
	fv, err = AnnuityFV(pmt, r, n)
	return pv, fv, err
}

// FutureValueWithDividends is the value after n periods of a principal that
// compounds at r plus a level dividend reinvested at r each period.
func FutureValueWithDividends(principal, dividend, r, n float64, timing Timing) (float64, error) {
	grown, err := FutureValue(principal, r, n)
	if err != nil {
		return 0, fmt.Errorf("FutureValueWithDividends: %w", err)
	}
	_, stream, err := Annuity(dividend, r, n, timing)
	if err != nil {
		return 0, fmt.Errorf("FutureValueWithDividends: %w", err)
	}
	return grown + stream, nil
}
