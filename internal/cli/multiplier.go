package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meenmo/finlib/economics"
)

// MultiplierResult is the Keynesian multiplier of an MPC and the cumulative
// spending after each re-spending round.
type MultiplierResult struct {
	MPC        float64   `json:"mpc"`
	Multiplier float64   `json:"multiplier"`
	Limit      float64   `json:"total_spending_limit"`
	Rounds     []float64 `json:"rounds"`
}

// NewMultiplierCommand creates the multiplier command.
func NewMultiplierCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		mpc      float64
		spending float64
		rounds   int
		lang     string
	)

	cmd := &cobra.Command{
		Use:           "multiplier",
		Short:         "Keynesian spending multiplier",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			tag, err := language.Parse(lang)
			if err != nil {
				return f.Fail(ExitCommandError, "parse --lang", err)
			}
			k, err := economics.KeynesianMultiplier(mpc)
			if err != nil {
				return f.Fail(ExitFailure, "multiplier", err)
			}
			path, err := economics.SimulateMultiplier(spending, mpc, rounds)
			if err != nil {
				return f.Fail(ExitFailure, "multiplier", err)
			}
			res := MultiplierResult{MPC: mpc, Multiplier: k, Limit: spending * k, Rounds: path}
			rootOpts.logger().Debug("multiplier computed", "mpc", mpc, "multiplier", k, "rounds", rounds)
			return f.Success(res, multiplierText(message.NewPrinter(tag), res))
		},
	}

	cmd.Flags().Float64Var(&mpc, "mpc", 0.8, "marginal propensity to consume, in [0, 1)")
	cmd.Flags().Float64Var(&spending, "spending", 1000, "initial injection of spending")
	cmd.Flags().IntVar(&rounds, "rounds", 5, "re-spending rounds to simulate")
	cmd.Flags().StringVar(&lang, "lang", "en", "BCP 47 tag for number formatting in text output")

	return cmd
}

func multiplierText(p *message.Printer, r MultiplierResult) string {
	var b strings.Builder
	b.WriteString(p.Sprintf("mpc: %.2f\n", r.MPC))
	b.WriteString(p.Sprintf("multiplier: %.4f\n", r.Multiplier))
	b.WriteString(p.Sprintf("total spending limit: %.2f\n", r.Limit))
	for i, v := range r.Rounds {
		b.WriteString(p.Sprintf("round %d: %.2f\n", i, v))
	}
	return b.String()
}
