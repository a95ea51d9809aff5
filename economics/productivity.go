package economics

import "fmt"

// Productivity is one row of a short-run production schedule.
type Productivity struct {
	Labor float64 `json:"labor"`
	Total float64 `json:"total_product"`
	// Average is Total/Labor, zero when no labor is employed.
	Average float64 `json:"average_product"`
	// Marginal is the change in Total from the previous row, zero for the first row.
	Marginal float64 `json:"marginal_product"`
}

// ProductivityMeasures derives average and marginal product from paired
// labor inputs and total product. Labor must be non-negative and increasing.
func ProductivityMeasures(labor, total []float64) ([]Productivity, error) {
	if len(labor) != len(total) {
		return nil, fmt.Errorf("ProductivityMeasures: %d labor inputs but %d outputs: %w", len(labor), len(total), ErrInvalidInput)
	}
	if len(labor) == 0 {
		return nil, fmt.Errorf("ProductivityMeasures: no observations: %w", ErrInvalidInput)
	}

	out := make([]Productivity, len(labor))
	for i := range labor {
		if labor[i] < 0 {
			return nil, fmt.Errorf("ProductivityMeasures: negative labor %g at row %d: %w", labor[i], i, ErrInvalidInput)
		}
		if i > 0 && labor[i] <= labor[i-1] {
			return nil, fmt.Errorf("ProductivityMeasures: labor must increase, row %d has %g after %g: %w",
				i, labor[i], labor[i-1], ErrInvalidInput)
		}
		row := Productivity{Labor: labor[i], Total: total[i]}
		if labor[i] > 0 {
			row.Average = total[i] / labor[i]
		}
		if i > 0 {
			row.Marginal = total[i] - total[i-1]
		}
		out[i] = row
	}
	return out, nil
}

// HasDiminishingMarginalReturns reports whether marginal product never
// rises from one row to the next. The first row has no marginal product and
// is skipped.
func HasDiminishingMarginalReturns(rows []Productivity) bool {
	for i := 2; i < len(rows); i++ {
		if rows[i].Marginal > rows[i-1].Marginal {
			return false
		}
	}
	return true
}

// DiminishingReturnsOnset returns the index of the row after which marginal
// product stops rising for good: the last row at which it increased, or 1
// when it never increases. ok is false when fewer than three rows exist or
// marginal product rises in the final row.
func DiminishingReturnsOnset(rows []Productivity) (idx int, ok bool) {
	if len(rows) < 3 {
		return 0, false
	}
	idx = 1
	for i := 2; i < len(rows); i++ {
		if rows[i].Marginal > rows[i-1].Marginal {
			idx = i
		}
	}
	if idx == len(rows)-1 {
		return 0, false
	}
	return idx, true
}
