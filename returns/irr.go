package returns

import (
	"fmt"
	"math"
	"strings"
)

// Method selects the root-finding strategy used by Solve.
type Method int

const (
	// MethodBisection brackets the root between rates of opposite-signed NPV
	// and halves the bracket each iteration.
	MethodBisection Method = iota
	// MethodFixedStep nudges the trial rate up or down by a fixed step until
	// |npv| is within tolerance. It reproduces the legacy stepping exactly and
	// can oscillate around the root when the step is coarse.
	MethodFixedStep
	// MethodNewton uses Newton-Raphson with the analytic NPV derivative.
	MethodNewton
)

func (m Method) String() string {
	switch m {
	case MethodBisection:
		return "bisection"
	case MethodFixedStep:
		return "fixed-step"
	case MethodNewton:
		return "newton"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name to a Method. Matching ignores case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bisection", "bisect":
		return MethodBisection, nil
	case "fixed-step", "fixedstep", "fixed_step", "step":
		return MethodFixedStep, nil
	case "newton", "newton-raphson":
		return MethodNewton, nil
	}
	return 0, fmt.Errorf("ParseMethod: unknown method %q: %w", s, ErrInvalidInput)
}

// Options configures Solve. Start from DefaultOptions and override fields.
type Options struct {
	Method Method
	// Tolerance is the maximum accepted |npv(r)|.
	Tolerance float64
	// InitialRate is the first trial rate for FixedStep and Newton.
	InitialRate float64
	// Step is the FixedStep increment.
	Step float64
	// MaxIterations caps the number of iterations of every method.
	MaxIterations int
	// Low and High are the initial Bisection bracket. The bracket is widened
	// when both ends give NPVs of the same sign.
	Low  float64
	High float64
}

// DefaultOptions returns the default solver settings.
func DefaultOptions() Options {
	return Options{
		Method:        MethodBisection,
		Tolerance:     1e-6,
		InitialRate:   0.0,
		Step:          0.01,
		MaxIterations: 100_000,
		Low:           -0.99,
		High:          1.0,
	}
}

// Validate rejects settings for which no search can run.
func (o Options) Validate() error {
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("tolerance must be positive, got %g: %w", o.Tolerance, ErrInvalidInput)
	}
	if !(o.Step > 0) || math.IsInf(o.Step, 0) {
		return fmt.Errorf("step must be positive, got %g: %w", o.Step, ErrInvalidInput)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d: %w", o.MaxIterations, ErrInvalidInput)
	}
	switch o.Method {
	case MethodFixedStep, MethodNewton:
		if o.InitialRate <= -1 {
			return &DomainError{Rate: o.InitialRate}
		}
	case MethodBisection:
		if o.Low <= -1 {
			return &DomainError{Rate: o.Low}
		}
		if !(o.Low < o.High) || math.IsInf(o.High, 0) {
			return fmt.Errorf("bracket low %g must be below high %g: %w", o.Low, o.High, ErrInvalidInput)
		}
	default:
		return fmt.Errorf("unknown method %d: %w", int(o.Method), ErrInvalidInput)
	}
	return nil
}

// Result is the outcome of a converged search.
type Result struct {
	// Rate is the per-period discount rate with |npv(Rate)| <= Tolerance.
	Rate float64
	// Residual is npv(Rate).
	Residual   float64
	Iterations int
	Method     Method
	Converged  bool
}

// objective is the function whose root is searched. value and derivative
// are only ever called with r > -1.
type objective struct {
	value      func(r float64) float64
	derivative func(r float64) float64
}

// Solve finds the internal rate of return of cf: the rate r with
// |npv(r)| <= opts.Tolerance.
//
// Errors match ErrInvalidInput for a series without a sign change or bad
// options, ErrDomain when a trial rate reaches -100%, and ErrNonConvergence
// (as *NonConvergenceError) when the iteration budget runs out. A non-nil
// error always comes with Result.Converged == false.
func Solve(cf CashFlows, opts Options) (Result, error) {
	if err := cf.Validate(); err != nil {
		return Result{Method: opts.Method}, fmt.Errorf("Solve: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Result{Method: opts.Method}, fmt.Errorf("Solve: %w", err)
	}
	res, err := solve(cf.objective(), opts)
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	return res, nil
}

// MoneyWeightedReturn returns the IRR of cf in percent using DefaultOptions.
func MoneyWeightedReturn(cf CashFlows) (float64, error) {
	res, err := Solve(cf, DefaultOptions())
	if err != nil {
		return 0, err
	}
	return res.Rate * 100.0, nil
}

func solve(f objective, opts Options) (Result, error) {
	switch opts.Method {
	case MethodFixedStep:
		return fixedStep(f, opts)
	case MethodNewton:
		return newton(f, opts)
	default:
		return bisection(f, opts)
	}
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
