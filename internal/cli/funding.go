package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/meenmo/finlib/funding"
)

// FundingResult is the effective cost of one short-term facility.
type FundingResult struct {
	Instrument string          `json:"instrument"`
	Cost       decimal.Decimal `json:"cost"`
	Places     int32           `json:"places"`
}

// NewFundingCommand creates the funding command.
func NewFundingCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		instrument string
		loan       string
		interest   string
		fee        string
		dealer     string
		backup     string
		places     int32
	)

	cmd := &cobra.Command{
		Use:   "funding",
		Short: "Effective cost of short-term funding",
		Long: `Effective cost of a line of credit (loc), bankers acceptance (ba) or
commercial paper (cp). Amounts are exact decimals.`,
		Example:       "  finlib funding --instrument ba --loan 10000 --interest 500",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			kind, err := funding.ParseInstrument(instrument)
			if err != nil {
				return f.Fail(ExitCommandError, "parse --instrument", err)
			}
			q := funding.Quote{Instrument: kind}
			for _, a := range []struct {
				name string
				raw  string
				dst  *decimal.Decimal
			}{
				{"loan", loan, &q.Loan},
				{"interest", interest, &q.Interest},
				{"fee", fee, &q.CommitmentFee},
				{"dealer", dealer, &q.DealerCommission},
				{"backup", backup, &q.BackupCost},
			} {
				v, err := decimal.NewFromString(a.raw)
				if err != nil {
					return f.Fail(ExitCommandError, fmt.Sprintf("parse --%s", a.name), err)
				}
				*a.dst = v
			}

			if !cmd.Flags().Changed("places") {
				places = rootOpts.Config.DecimalPlaces
			}
			cost, err := funding.Cost(q, places)
			if err != nil {
				return f.Fail(ExitFailure, "funding", err)
			}
			res := FundingResult{Instrument: kind.String(), Cost: cost, Places: places}
			rootOpts.logger().Debug("funding cost computed", "instrument", res.Instrument, "cost", cost.String())

			return f.Success(res, fmt.Sprintf("%s: %s (%s%%)\n", res.Instrument, cost.String(), cost.Shift(2).String()))
		},
	}

	cmd.Flags().StringVar(&instrument, "instrument", "loc", "facility: loc|ba|cp")
	cmd.Flags().StringVar(&loan, "loan", "0", "loan amount")
	cmd.Flags().StringVar(&interest, "interest", "0", "interest charged")
	cmd.Flags().StringVar(&fee, "fee", "0", "commitment fee (line of credit)")
	cmd.Flags().StringVar(&dealer, "dealer", "0", "dealer commission (commercial paper)")
	cmd.Flags().StringVar(&backup, "backup", "0", "backup line cost (commercial paper)")
	cmd.Flags().Int32Var(&places, "places", 6, "decimal places of the cost ratio")

	return cmd
}
