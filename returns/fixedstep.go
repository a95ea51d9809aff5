package returns

import "math"

// fixedStep walks the rate by ±opts.Step from opts.InitialRate. It has no
// termination guarantee of its own: a step that overshoots the root on both
// sides oscillates until MaxIterations.
func fixedStep(f objective, opts Options) (Result, error) {
	r := opts.InitialRate
	var (
		last float64
		v    float64
	)
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		if r <= -1 {
			return Result{Rate: last, Residual: v, Iterations: iter - 1, Method: MethodFixedStep}, &DomainError{Rate: r}
		}
		last = r
		v = f.value(r)
		if notFinite(v) {
			return Result{Rate: r, Residual: v, Iterations: iter, Method: MethodFixedStep},
				&NonConvergenceError{Method: MethodFixedStep, LastRate: r, Residual: v, Iterations: iter, Reason: "npv is not finite"}
		}
		if math.Abs(v) <= opts.Tolerance {
			return Result{Rate: r, Residual: v, Iterations: iter, Method: MethodFixedStep, Converged: true}, nil
		}
		if v > 0 {
			r += opts.Step
		} else {
			r -= opts.Step
		}
	}

	return Result{Rate: last, Residual: v, Iterations: opts.MaxIterations, Method: MethodFixedStep},
		&NonConvergenceError{Method: MethodFixedStep, LastRate: last, Residual: v, Iterations: opts.MaxIterations}
}
