package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/finlib/tvm"
)

// TVMResult is the output of every tvm subcommand.
type TVMResult struct {
	Kind  string             `json:"kind"`
	Value float64            `json:"value"`
	Extra map[string]float64 `json:"extra,omitempty"`
}

type tvmFlags struct {
	rate     float64
	periods  float64
	pv       float64
	fv       float64
	pmt      float64
	growth   float64
	timing   string
	compound int
}

// NewTVMCommand creates the tvm command and its subcommands.
func NewTVMCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tvm",
		Short: "Time value of money",
	}

	fl := &tvmFlags{}
	add := func(use, short string, run func(*tvmFlags) (TVMResult, error), flags ...string) {
		sub := &cobra.Command{
			Use:           use,
			Short:         short,
			Args:          cobra.NoArgs,
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				f := rootOpts.formatter(cmd)
				res, err := run(fl)
				if err != nil {
					return f.Fail(ExitFailure, use, err)
				}
				rootOpts.logger().Debug("tvm computed", "kind", res.Kind, "value", res.Value)
				return f.Success(res, tvmText(res))
			},
		}
		for _, name := range flags {
			bindTVMFlag(sub, fl, name)
		}
		cmd.AddCommand(sub)
	}

	add("fv", "Future value of a present sum", func(fl *tvmFlags) (TVMResult, error) {
		v, err := tvm.FutureValue(fl.pv, fl.rate, fl.periods)
		return TVMResult{Kind: "future_value", Value: v}, err
	}, "pv", "rate", "periods")

	add("pv", "Present value of a future sum", func(fl *tvmFlags) (TVMResult, error) {
		v, err := tvm.PresentValue(fl.fv, fl.rate, fl.periods)
		return TVMResult{Kind: "present_value", Value: v}, err
	}, "fv", "rate", "periods")

	add("pmt", "Level payment that amortizes a loan", func(fl *tvmFlags) (TVMResult, error) {
		v, err := tvm.Payment(fl.pv, fl.rate, fl.periods)
		return TVMResult{Kind: "payment", Value: v}, err
	}, "pv", "rate", "periods")

	add("annuity", "Present and future value of a level annuity", func(fl *tvmFlags) (TVMResult, error) {
		timing, err := tvm.ParseTiming(fl.timing)
		if err != nil {
			return TVMResult{}, err
		}
		pv, fv, err := tvm.Annuity(fl.pmt, fl.rate, fl.periods, timing)
		return TVMResult{Kind: "annuity_" + timing.String(), Value: pv, Extra: map[string]float64{"future_value": fv}}, err
	}, "pmt", "rate", "periods", "timing")

	add("perpetuity", "Present value of a (growing) perpetuity", func(fl *tvmFlags) (TVMResult, error) {
		if fl.growth != 0 {
			v, err := tvm.GrowingPerpetuityPV(fl.pmt, fl.rate, fl.growth)
			return TVMResult{Kind: "growing_perpetuity", Value: v}, err
		}
		v, err := tvm.PerpetuityPV(fl.pmt, fl.rate)
		return TVMResult{Kind: "perpetuity", Value: v}, err
	}, "pmt", "rate", "growth")

	add("ear", "Effective annual rate of a nominal rate", func(fl *tvmFlags) (TVMResult, error) {
		if fl.compound == 0 {
			return TVMResult{Kind: "ear_continuous", Value: tvm.ContinuousEffectiveAnnualRate(fl.rate)}, nil
		}
		v, err := tvm.EffectiveAnnualRate(fl.rate, fl.compound)
		return TVMResult{Kind: "ear", Value: v}, err
	}, "rate", "compounding")

	return cmd
}

func bindTVMFlag(cmd *cobra.Command, fl *tvmFlags, name string) {
	switch name {
	case "rate":
		cmd.Flags().Float64VarP(&fl.rate, "rate", "r", 0, "periodic rate as a decimal (0.05 = 5%)")
	case "periods":
		cmd.Flags().Float64VarP(&fl.periods, "periods", "n", 0, "number of periods")
	case "pv":
		cmd.Flags().Float64Var(&fl.pv, "pv", 0, "present value")
	case "fv":
		cmd.Flags().Float64Var(&fl.fv, "fv", 0, "future value")
	case "pmt":
		cmd.Flags().Float64Var(&fl.pmt, "pmt", 0, "payment per period")
	case "growth":
		cmd.Flags().Float64VarP(&fl.growth, "growth", "g", 0, "payment growth rate")
	case "timing":
		cmd.Flags().StringVar(&fl.timing, "timing", "end", "payment timing (end|begin)")
	case "compounding":
		cmd.Flags().IntVar(&fl.compound, "compounding", 12, "compounding periods per year, 0 for continuous")
	}
}

func tvmText(res TVMResult) string {
	s := fmt.Sprintf("%s: %.6f\n", res.Kind, res.Value)
	for k, v := range res.Extra {
		s += fmt.Sprintf("%s: %.6f\n", k, v)
	}
	return s
}
