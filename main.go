package main

import (
	"errors"
	"fmt"

	"github.com/meenmo/finlib/returns"
)

func main() {
	// Buy at 50, receive a dividend of 2 for two years, sell for 65 with the last dividend.
	flows := returns.CashFlows{-50, 2, 2, 65}

	mwrr, err := returns.MoneyWeightedReturn(flows)
	if err != nil {
		fmt.Printf("MWRR: %v\n", err)
		return
	}
	fmt.Printf("MWRR: %.4f%%\n", mwrr)

	for _, m := range []returns.Method{returns.MethodBisection, returns.MethodNewton, returns.MethodFixedStep} {
		opts := returns.DefaultOptions()
		opts.Method = m
		res, err := returns.Solve(flows, opts)

		var nc *returns.NonConvergenceError
		switch {
		case errors.As(err, &nc):
			fmt.Printf("%-10s no convergence after %d iterations, last rate %.6f\n", m, nc.Iterations, nc.LastRate)
		case err != nil:
			fmt.Printf("%-10s %v\n", m, err)
		default:
			fmt.Printf("%-10s rate %.6f after %d iterations (npv %.2e)\n", m, res.Rate, res.Iterations, res.Residual)
		}
	}
}
