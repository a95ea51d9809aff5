package returns

import "math"

// derivativeThreshold is the smallest |npv'(r)| Newton will divide by.
const derivativeThreshold = 1e-15

// newton runs Newton-Raphson from opts.InitialRate. A step that would land
// at or below -100% is replaced by a move half way to -1.
func newton(f objective, opts Options) (Result, error) {
	r := opts.InitialRate
	var (
		last float64
		v    float64
	)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		last = r
		v = f.value(r)
		if notFinite(v) {
			return Result{Rate: r, Residual: v, Iterations: iter, Method: MethodNewton},
				&NonConvergenceError{Method: MethodNewton, LastRate: r, Residual: v, Iterations: iter, Reason: "npv is not finite"}
		}
		if math.Abs(v) <= opts.Tolerance {
			return Result{Rate: r, Residual: v, Iterations: iter, Method: MethodNewton, Converged: true}, nil
		}

		d := f.derivative(r)
		if math.Abs(d) < derivativeThreshold || notFinite(d) {
			return Result{Rate: r, Residual: v, Iterations: iter, Method: MethodNewton},
				&NonConvergenceError{Method: MethodNewton, LastRate: r, Residual: v, Iterations: iter, Reason: "derivative too small"}
		}

		next := r - v/d
		if next <= -1 {
			next = -1 + (r+1)/2
		}
		r = next
	}

	return Result{Rate: last, Residual: v, Iterations: opts.MaxIterations, Method: MethodNewton},
		&NonConvergenceError{Method: MethodNewton, LastRate: last, Residual: v, Iterations: opts.MaxIterations}
}
