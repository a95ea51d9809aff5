package returns

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// HoldingPeriodReturn is (dividends + sellingPrice) / purchasePrice - 1.
func HoldingPeriodReturn(dividends, sellingPrice, purchasePrice float64) (float64, error) {
	if purchasePrice == 0 {
		return 0, fmt.Errorf("HoldingPeriodReturn: purchase price is zero: %w", ErrInvalidInput)
	}
	return (dividends+sellingPrice)/purchasePrice - 1, nil
}

// AnnualizedReturn converts a holding period return over years to a
// compound annual rate.
func AnnualizedReturn(hpr, years float64) (float64, error) {
	if !(years > 0) {
		return 0, fmt.Errorf("AnnualizedReturn: years must be positive, got %g: %w", years, ErrInvalidInput)
	}
	if hpr <= -1 {
		return 0, &DomainError{Rate: hpr}
	}
	return math.Pow(1+hpr, 1/years) - 1, nil
}

// ArithmeticMeanReturn is the simple average of periodic returns.
func ArithmeticMeanReturn(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("ArithmeticMeanReturn: no returns: %w", ErrInvalidInput)
	}
	return stat.Mean(returns, nil), nil
}

// GeometricMeanReturn is (Π(1+r_t))^(1/T) - 1.
func GeometricMeanReturn(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("GeometricMeanReturn: no returns: %w", ErrInvalidInput)
	}
	growth := make([]float64, len(returns))
	for i, r := range returns {
		if r <= -1 {
			return 0, fmt.Errorf("GeometricMeanReturn: %w", &DomainError{Rate: r})
		}
		growth[i] = 1 + r
	}
	return stat.GeometricMean(growth, nil) - 1, nil
}

// RealReturn strips inflation from a nominal return: (1+n)/(1+i) - 1.
func RealReturn(nominalReturn, inflationRate float64) (float64, error) {
	if inflationRate <= -1 {
		return 0, &DomainError{Rate: inflationRate}
	}
	return (1+nominalReturn)/(1+inflationRate) - 1, nil
}

// LeveragedReturn is the return on equity when debtRatio (debt/equity) is
// borrowed at interestRate and invested alongside equity.
func LeveragedReturn(nominalReturn, debtRatio, interestRate float64) float64 {
	return nominalReturn*(1+debtRatio) - interestRate*debtRatio
}
