package returns

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/finlib/utils"
)

// DatedCashFlow is a cash flow paid on a calendar date rather than at a
// period index.
type DatedCashFlow struct {
	Date   time.Time
	Amount float64
}

// SolveDated finds the annual rate r such that
//
//	Σ a_k / (1+r)^t_k = 0,   t_k = YearFraction(d_0, d_k, basis)
//
// Exponents are fractional, so rates at or below -100% are undefined and
// every method keeps r > -1. Flows must be sorted by date.
func SolveDated(flows []DatedCashFlow, basis utils.DayCount, opts Options) (Result, error) {
	amounts := make(CashFlows, len(flows))
	for i, cf := range flows {
		amounts[i] = cf.Amount
	}
	if err := amounts.Validate(); err != nil {
		return Result{Method: opts.Method}, fmt.Errorf("SolveDated: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Result{Method: opts.Method}, fmt.Errorf("SolveDated: %w", err)
	}

	times := make([]float64, len(flows))
	for i := range flows {
		if i > 0 && flows[i].Date.Before(flows[i-1].Date) {
			return Result{Method: opts.Method}, fmt.Errorf("SolveDated: cash flow %d dated %s precedes %s: %w",
				i, flows[i].Date.Format(utils.DateLayout), flows[i-1].Date.Format(utils.DateLayout), ErrInvalidInput)
		}
		times[i] = utils.YearFraction(flows[0].Date, flows[i].Date, basis)
	}

	f := objective{
		value: func(r float64) float64 {
			var sum float64
			for i, a := range amounts {
				if a == 0 {
					continue
				}
				sum += a / math.Pow(1+r, times[i])
			}
			return sum
		},
		derivative: func(r float64) float64 {
			var sum float64
			for i, a := range amounts {
				if a == 0 {
					continue
				}
				sum += -times[i] * a / math.Pow(1+r, times[i]+1)
			}
			return sum
		},
	}

	res, err := solve(f, opts)
	if err != nil {
		return res, fmt.Errorf("SolveDated: %w", err)
	}
	return res, nil
}
