package returns

import "math"

// maxBracketExpansions bounds how often bisection widens a bracket whose
// ends give NPVs of the same sign.
const maxBracketExpansions = 64

// bisection keeps a bracket [lo, hi] with npv(lo) and npv(hi) of opposite
// sign. An infinite npv still carries a usable sign. A NaN at the low end
// pulls lo half way toward hi and stops lo from widening again; a NaN at
// the high end aborts.
func bisection(f objective, opts Options) (Result, error) {
	lo, hi := opts.Low, opts.High
	flo, fhi := f.value(lo), f.value(hi)
	loPinned := false

	for k := 0; ; k++ {
		if res, ok := endpoint(lo, flo, opts.Tolerance); ok {
			return res, nil
		}
		if res, ok := endpoint(hi, fhi, opts.Tolerance); ok {
			return res, nil
		}
		if math.IsNaN(fhi) {
			return Result{Rate: hi, Residual: fhi, Method: MethodBisection},
				&NonConvergenceError{Method: MethodBisection, LastRate: hi, Residual: fhi, Reason: "npv is undefined at bracket end"}
		}
		if !math.IsNaN(flo) && !sameSign(flo, fhi) {
			break
		}
		if k == maxBracketExpansions {
			reason := "no bracket with opposite-signed npv found"
			if math.IsNaN(flo) {
				reason = "npv is undefined at bracket end"
			}
			return Result{Rate: hi, Residual: fhi, Method: MethodBisection},
				&NonConvergenceError{Method: MethodBisection, LastRate: hi, Residual: fhi, Reason: reason}
		}
		if math.IsNaN(flo) {
			loPinned = true
			lo += (hi - lo) / 2
			flo = f.value(lo)
			continue
		}
		// Widen: high moves out by the current width, low moves half way to -1.
		width := hi - lo
		hi += width
		if !loPinned {
			lo = -1 + (lo+1)/2
			flo = f.value(lo)
		}
		fhi = f.value(hi)
	}

	var (
		mid float64
		fm  float64
	)
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		mid = lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			return Result{Rate: mid, Residual: fm, Iterations: iter - 1, Method: MethodBisection},
				&NonConvergenceError{Method: MethodBisection, LastRate: mid, Residual: fm, Iterations: iter - 1,
					Reason: "bracket collapsed before npv reached tolerance"}
		}
		fm = f.value(mid)
		if math.IsNaN(fm) {
			return Result{Rate: mid, Residual: fm, Iterations: iter, Method: MethodBisection},
				&NonConvergenceError{Method: MethodBisection, LastRate: mid, Residual: fm, Iterations: iter, Reason: "npv is undefined"}
		}
		if math.Abs(fm) <= opts.Tolerance {
			return Result{Rate: mid, Residual: fm, Iterations: iter, Method: MethodBisection, Converged: true}, nil
		}
		if sameSign(fm, flo) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}

	return Result{Rate: mid, Residual: fm, Iterations: opts.MaxIterations, Method: MethodBisection},
		&NonConvergenceError{Method: MethodBisection, LastRate: mid, Residual: fm, Iterations: opts.MaxIterations}
}

func endpoint(r, v, tol float64) (Result, bool) {
	if math.Abs(v) <= tol {
		return Result{Rate: r, Residual: v, Method: MethodBisection, Converged: true}, true
	}
	return Result{}, false
}

func sameSign(a, b float64) bool {
	return (a > 0) == (b > 0)
}
