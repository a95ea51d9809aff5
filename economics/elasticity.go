package economics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrInvalidInput marks arguments for which a measure is undefined.
var ErrInvalidInput = errors.New("economics: invalid input")

// OwnPriceElasticity is the percentage change in quantity demanded divided
// by the percentage change in price, both measured from the initial point.
func OwnPriceElasticity(initialQty, finalQty, initialPrice, finalPrice float64) (float64, error) {
	if initialQty == 0 || initialPrice == 0 {
		return 0, fmt.Errorf("OwnPriceElasticity: initial quantity and price must be non-zero: %w", ErrInvalidInput)
	}
	if finalPrice == initialPrice {
		return 0, fmt.Errorf("OwnPriceElasticity: price did not change: %w", ErrInvalidInput)
	}
	pctQty := (finalQty - initialQty) / initialQty * 100
	pctPrice := (finalPrice - initialPrice) / initialPrice * 100
	return pctQty / pctPrice, nil
}

// Elasticity classifies the magnitude of an elasticity.
type Elasticity int

const (
	PerfectlyInelastic Elasticity = iota
	Inelastic
	UnitElastic
	Elastic
)

func (e Elasticity) String() string {
	switch e {
	case PerfectlyInelastic:
		return "perfectly inelastic"
	case Inelastic:
		return "inelastic"
	case UnitElastic:
		return "unit elastic"
	default:
		return "elastic"
	}
}

// unitBand is how close |e| must be to 1 to count as unit elastic.
const unitBand = 1e-9

// Classify buckets an elasticity by its absolute value.
func Classify(elasticity float64) Elasticity {
	a := math.Abs(elasticity)
	switch {
	case a == 0:
		return PerfectlyInelastic
	case math.Abs(a-1) <= unitBand:
		return UnitElastic
	case a < 1:
		return Inelastic
	default:
		return Elastic
	}
}

// GoodType says how demand for a good responds to income.
type GoodType int

const (
	NormalGood GoodType = iota
	InferiorGood
	IncomeNeutral
)

func (g GoodType) String() string {
	switch g {
	case NormalGood:
		return "normal"
	case InferiorGood:
		return "inferior"
	default:
		return "neutral"
	}
}

// ClassifyGood fits the least-squares slope of demand against income.
// A positive slope is a normal good, a negative one an inferior good.
func ClassifyGood(incomes, demand []float64) (GoodType, float64, error) {
	if len(incomes) != len(demand) {
		return 0, 0, fmt.Errorf("ClassifyGood: %d incomes but %d demand values: %w", len(incomes), len(demand), ErrInvalidInput)
	}
	if len(incomes) < 2 {
		return 0, 0, fmt.Errorf("ClassifyGood: need at least two observations: %w", ErrInvalidInput)
	}
	if stat.Variance(incomes, nil) == 0 {
		return 0, 0, fmt.Errorf("ClassifyGood: incomes do not vary: %w", ErrInvalidInput)
	}
	_, slope := stat.LinearRegression(incomes, demand, nil, false)
	switch {
	case slope > 0:
		return NormalGood, slope, nil
	case slope < 0:
		return InferiorGood, slope, nil
	default:
		return IncomeNeutral, slope, nil
	}
}
