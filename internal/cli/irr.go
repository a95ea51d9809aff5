package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewIRRCommand creates the irr command.
func NewIRRCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		inputPath string
		method    string
	)

	cmd := &cobra.Command{
		Use:   "irr [cash flows...]",
		Short: "Solve internal rates of return",
		Long: `Solve the internal rate of return of one or more cash flow series.

Cash flows given as arguments form a single series (use -- before a
leading negative amount). Otherwise a JSON object or array of objects is
read from --input or stdin:

  {"task_id": "a", "cash_flows": [-50, 2, 2, 65], "method": "newton"}

Dated series add "dates" (YYYY-MM-DD, one per flow) and "day_count".`,
		Example:       "  finlib irr -- -50 2 2 65\n  finlib irr --input flows.json --format json",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIRR(rootOpts, cmd, inputPath, method, args)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON input path (reads stdin if omitted)")
	cmd.Flags().StringVarP(&method, "method", "m", "", "default method for items that name none (bisection|fixed-step|newton)")

	return cmd
}

func runIRR(opts *RootOptions, cmd *cobra.Command, inputPath, method string, args []string) error {
	f := opts.formatter(cmd)
	log := opts.logger()

	var (
		inputs  []IRRInput
		isArray bool
	)
	if len(args) > 0 {
		flows, err := parseFloats(args)
		if err != nil {
			return f.Fail(ExitCommandError, "parse cash flows", err)
		}
		inputs = []IRRInput{{CashFlows: flows}}
	} else {
		raw, err := ReadInput(inputPath, cmd.InOrStdin())
		if err != nil {
			return f.Fail(ExitCommandError, "read input", err)
		}
		inputs, isArray, err = ParseBatch[IRRInput](raw)
		if err != nil {
			return f.Fail(ExitCommandError, "parse JSON", err)
		}
	}

	failed := 0
	outputs := make([]IRROutput, 0, len(inputs))
	for _, in := range inputs {
		if in.Method == "" {
			in.Method = method
		}
		out, err := SolveIRR(in, opts.Config)
		if err != nil {
			failed++
			log.Warn("irr failed", "task_id", out.TaskID, "method", out.Method, "err", err)
		} else {
			log.Debug("irr solved", "task_id", out.TaskID, "method", out.Method,
				"rate", out.Rate, "iterations", out.Iterations)
		}
		outputs = append(outputs, out)
	}

	var data any = outputs
	if !isArray {
		data = outputs[0]
	}
	if err := f.Success(data, irrText(outputs)); err != nil {
		return err
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d irr computations failed", failed, len(outputs)))
	}
	return nil
}

func irrText(outputs []IRROutput) string {
	var b strings.Builder
	for _, o := range outputs {
		if o.Error != "" {
			fmt.Fprintf(&b, "%s\terror: %s\n", o.TaskID, o.Error)
			continue
		}
		fmt.Fprintf(&b, "%s\t%s\trate=%.6f\tmwrr=%.4f%%\titerations=%d\n",
			o.TaskID, o.Method, o.Rate, o.MWRRPercent, o.Iterations)
	}
	return b.String()
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
