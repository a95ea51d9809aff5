package economics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// MarginalPropensityToConsume is the share of an income change that is spent.
func MarginalPropensityToConsume(incomeChange, consumptionChange float64) (float64, error) {
	if incomeChange == 0 {
		return 0, fmt.Errorf("MarginalPropensityToConsume: income change is zero: %w", ErrInvalidInput)
	}
	return consumptionChange / incomeChange, nil
}

// KeynesianMultiplier is 1/(1-mpc). mpc must lie in [0, 1).
func KeynesianMultiplier(mpc float64) (float64, error) {
	if !(mpc >= 0 && mpc < 1) {
		return 0, fmt.Errorf("KeynesianMultiplier: mpc %g outside [0, 1): %w", mpc, ErrInvalidInput)
	}
	return 1 / (1 - mpc), nil
}

// SimulateMultiplier returns cumulative spending after each round of
// re-spending, starting with initial. Each round adds mpc times the previous
// cumulative total, so the result has rounds+1 entries.
func SimulateMultiplier(initial, mpc float64, rounds int) ([]float64, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("SimulateMultiplier: negative rounds %d: %w", rounds, ErrInvalidInput)
	}
	if !(mpc >= 0 && mpc < 1) {
		return nil, fmt.Errorf("SimulateMultiplier: mpc %g outside [0, 1): %w", mpc, ErrInvalidInput)
	}
	total := make([]float64, 0, rounds+1)
	total = append(total, initial)
	for i := 0; i < rounds; i++ {
		last := total[len(total)-1]
		total = append(total, last+last*mpc)
	}
	return total, nil
}

// MPCObservation is one household or group's change in income and consumption.
type MPCObservation struct {
	IncomeChange      float64 `json:"income_change"`
	ConsumptionChange float64 `json:"consumption_change"`
	IncomeLevel       string  `json:"income_level"`
}

// MPCAnalysis aggregates MPC overall and by income level.
type MPCAnalysis struct {
	Average float64 `json:"average"`
	// ByLevel maps income level to Σ consumption change / Σ income change.
	ByLevel map[string]float64 `json:"by_level"`
	// Levels lists the income levels in ascending order of their MPC.
	Levels []string `json:"levels"`
}

// AnalyzeMPC computes the aggregate MPC as total consumption change over
// total income change, and the same ratio within each income level.
func AnalyzeMPC(obs []MPCObservation) (MPCAnalysis, error) {
	if len(obs) == 0 {
		return MPCAnalysis{}, fmt.Errorf("AnalyzeMPC: no observations: %w", ErrInvalidInput)
	}

	income := make([]float64, len(obs))
	consumption := make([]float64, len(obs))
	levelIncome := map[string]float64{}
	levelConsumption := map[string]float64{}
	for i, o := range obs {
		income[i] = o.IncomeChange
		consumption[i] = o.ConsumptionChange
		levelIncome[o.IncomeLevel] += o.IncomeChange
		levelConsumption[o.IncomeLevel] += o.ConsumptionChange
	}

	avg, err := MarginalPropensityToConsume(floats.Sum(income), floats.Sum(consumption))
	if err != nil {
		return MPCAnalysis{}, fmt.Errorf("AnalyzeMPC: %w", err)
	}

	out := MPCAnalysis{Average: avg, ByLevel: make(map[string]float64, len(levelIncome))}
	for level, inc := range levelIncome {
		mpc, err := MarginalPropensityToConsume(inc, levelConsumption[level])
		if err != nil {
			return MPCAnalysis{}, fmt.Errorf("AnalyzeMPC: level %q: %w", level, err)
		}
		out.ByLevel[level] = mpc
		out.Levels = append(out.Levels, level)
	}
	sort.Slice(out.Levels, func(i, j int) bool {
		a, b := out.ByLevel[out.Levels[i]], out.ByLevel[out.Levels[j]]
		if a != b {
			return a < b
		}
		return out.Levels[i] < out.Levels[j]
	})
	return out, nil
}
