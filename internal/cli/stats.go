package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meenmo/finlib/stats"
)

// StatsResult summarizes one sample.
type StatsResult struct {
	Count      int              `json:"count"`
	Arithmetic float64          `json:"arithmetic_mean"`
	Geometric  *float64         `json:"geometric_mean,omitempty"`
	Harmonic   *float64         `json:"harmonic_mean,omitempty"`
	Mode       []float64        `json:"modes"`
	Modality   string           `json:"modality"`
	ModalBin   stats.Interval   `json:"modal_interval"`
	BinWidth   float64          `json:"bin_width"`
	Histogram  []stats.Interval `json:"histogram,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bins      int
		histogram bool
	)

	cmd := &cobra.Command{
		Use:           "stats <values...>",
		Short:         "Means, mode and modal interval of a sample",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			data, err := parseFloats(args)
			if err != nil {
				return f.Fail(ExitCommandError, "parse values", err)
			}
			res, err := summarize(data, bins, histogram)
			if err != nil {
				return f.Fail(ExitFailure, "stats", err)
			}
			rootOpts.logger().Debug("stats computed", "count", res.Count, "bins", bins)
			return f.Success(res, statsText(res))
		},
	}

	cmd.Flags().IntVarP(&bins, "bins", "b", 5, "number of equal-width bins")
	cmd.Flags().BoolVar(&histogram, "histogram", false, "include every bin in the output")

	return cmd
}

func summarize(data []float64, bins int, withHistogram bool) (StatsResult, error) {
	am, err := stats.ArithmeticMean(data)
	if err != nil {
		return StatsResult{}, err
	}
	res := StatsResult{Count: len(data), Arithmetic: am}

	// Geometric and harmonic means only exist for positive samples.
	if means, err := stats.PythagoreanMeans(data); err == nil {
		res.Geometric = &means.Geometric
		res.Harmonic = &means.Harmonic
	}

	mode, err := stats.Mode(data)
	if err != nil {
		return StatsResult{}, err
	}
	res.Mode = mode.Modes
	res.Modality = mode.Modality.String()

	if res.BinWidth, err = stats.BinWidth(data, bins); err != nil {
		return StatsResult{}, err
	}
	hist, err := stats.Histogram(data, bins)
	if err != nil {
		return StatsResult{}, err
	}
	if res.ModalBin, err = stats.ModalInterval(data, bins); err != nil {
		return StatsResult{}, err
	}
	if withHistogram {
		res.Histogram = hist
	}
	return res, nil
}

func statsText(r StatsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "count: %d\n", r.Count)
	fmt.Fprintf(&b, "arithmetic mean: %.6f\n", r.Arithmetic)
	if r.Geometric != nil {
		fmt.Fprintf(&b, "geometric mean: %.6f\n", *r.Geometric)
		fmt.Fprintf(&b, "harmonic mean: %.6f\n", *r.Harmonic)
	}
	fmt.Fprintf(&b, "mode: %v (%s)\n", r.Mode, r.Modality)
	fmt.Fprintf(&b, "modal interval: [%g, %g) count=%d\n", r.ModalBin.Lower, r.ModalBin.Upper, r.ModalBin.Count)
	for _, iv := range r.Histogram {
		fmt.Fprintf(&b, "  [%g, %g)\t%d\n", iv.Lower, iv.Upper, iv.Count)
	}
	return b.String()
}
