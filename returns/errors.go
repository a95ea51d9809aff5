package returns

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or domain-violating arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDomain marks a numeric operation that would be undefined, e.g. a rate at or below -100%.
	ErrDomain = errors.New("domain error")
	// ErrNonConvergence marks an iterative search that exhausted its budget.
	ErrNonConvergence = errors.New("did not converge")
)

// InvalidCashFlowsError reports a cash flow series that cannot have a finite IRR.
type InvalidCashFlowsError struct {
	Reason string
}

func (e *InvalidCashFlowsError) Error() string {
	return "invalid cash flows: " + e.Reason
}

func (e *InvalidCashFlowsError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DomainError reports a trial rate r with 1+r <= 0.
type DomainError struct {
	Rate float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rate %g is at or below -100%%", e.Rate)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// NonConvergenceError carries the state of a search that stopped without
// meeting its tolerance. LastRate is not a solution.
type NonConvergenceError struct {
	Method     Method
	LastRate   float64
	Residual   float64
	Iterations int
	Reason     string
}

func (e *NonConvergenceError) Error() string {
	msg := fmt.Sprintf("%s: did not converge after %d iterations (last rate %g, npv %g)",
		e.Method, e.Iterations, e.LastRate, e.Residual)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *NonConvergenceError) Is(target error) bool {
	return target == ErrNonConvergence
}
