package returns

import (
	"fmt"
	"math"
)

// CashFlows is a series of signed amounts at equally spaced periods.
//
// Index 0 is the valuation date (typically the initial outflow). Positive
// amounts are inflows, negative amounts are outflows.
type CashFlows []float64

// Validate checks that the series can have a finite real IRR: at least two
// entries with at least one strictly positive and one strictly negative amount.
func (cf CashFlows) Validate() error {
	if len(cf) < 2 {
		return &InvalidCashFlowsError{Reason: fmt.Sprintf("need at least 2 cash flows, got %d", len(cf))}
	}
	var pos, neg bool
	for i, v := range cf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidCashFlowsError{Reason: fmt.Sprintf("cash flow %d is not finite", i)}
		}
		if v > 0 {
			pos = true
		} else if v < 0 {
			neg = true
		}
	}
	if !pos || !neg {
		return &InvalidCashFlowsError{Reason: "no sign change, no finite root guaranteed"}
	}
	return nil
}

// NPV discounts every cash flow back to period 0 at rate r:
//
//	npv(r) = Σ cf[i] / (1+r)^i
func NPV(rate float64, cf CashFlows) (float64, error) {
	if rate <= -1 {
		return 0, &DomainError{Rate: rate}
	}
	return cf.npv(rate), nil
}

// NPVDerivative is the analytic first derivative of NPV with respect to r:
//
//	d/dr npv(r) = Σ -i·cf[i] / (1+r)^(i+1)
func NPVDerivative(rate float64, cf CashFlows) (float64, error) {
	if rate <= -1 {
		return 0, &DomainError{Rate: rate}
	}
	return cf.derivative(rate), nil
}

// npv assumes rate > -1. Summation order is fixed so that repeated
// evaluations at the same rate are bit-identical. Zero flows are skipped:
// near -1 a far discount factor underflows to 0 and 0/0 would poison the sum.
func (cf CashFlows) npv(rate float64) float64 {
	var sum float64
	for i, v := range cf {
		if v == 0 {
			continue
		}
		sum += v / math.Pow(1+rate, float64(i))
	}
	return sum
}

func (cf CashFlows) derivative(rate float64) float64 {
	var sum float64
	for i, v := range cf {
		if v == 0 {
			continue
		}
		t := float64(i)
		sum += -t * v / math.Pow(1+rate, t+1)
	}
	return sum
}

func (cf CashFlows) objective() objective {
	return objective{value: cf.npv, derivative: cf.derivative}
}
