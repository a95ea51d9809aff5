package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/meenmo/finlib/calendar"
	"github.com/meenmo/finlib/config"
	"github.com/meenmo/finlib/returns"
	"github.com/meenmo/finlib/utils"
)

// IRRInput is one IRR request. Dates, when present, pair with CashFlows and
// switch to a dated solve; Roll moves them to business days first. Nil
// overrides fall back to the active config.
type IRRInput struct {
	TaskID        string    `json:"task_id,omitempty"`
	CashFlows     []float64 `json:"cash_flows"`
	Dates         []string  `json:"dates,omitempty"`
	DayCount      string    `json:"day_count,omitempty"`
	Roll          string    `json:"roll,omitempty"`
	Holidays      []string  `json:"holidays,omitempty"`
	Method        string    `json:"method,omitempty"`
	Tolerance     *float64  `json:"tolerance,omitempty"`
	InitialRate   *float64  `json:"initial_rate,omitempty"`
	Step          *float64  `json:"step,omitempty"`
	MaxIterations *int      `json:"max_iterations,omitempty"`
}

// IRROutput reports one solve. Rate and Residual describe the last trial
// rate when Converged is false; a non-finite value is reported as 0.
type IRROutput struct {
	TaskID      string  `json:"task_id"`
	Method      string  `json:"method,omitempty"`
	Rate        float64 `json:"rate"`
	MWRRPercent float64 `json:"mwrr_percent"`
	Residual    float64 `json:"residual"`
	Iterations  int     `json:"iterations"`
	Converged   bool    `json:"converged"`
	Error       string  `json:"error,omitempty"`
}

// ReadInput reads path, or r when path is empty.
func ReadInput(path string, r io.Reader) ([]byte, error) {
	if path = strings.TrimSpace(path); path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(r)
}

// ParseBatch decodes a single JSON object or a non-empty array of them.
// isArray reports which form the input used so the reply can mirror it.
func ParseBatch[T any](raw []byte) (items []T, isArray bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, errors.New("empty input")
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, true, err
		}
		if len(items) == 0 {
			return nil, true, errors.New("empty input array")
		}
		return items, true, nil
	}
	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, false, err
	}
	return []T{item}, false, nil
}

// SolveIRR runs one request against cfg. A failed solve still returns an
// output carrying the task id, the last trial rate and the error text.
func SolveIRR(in IRRInput, cfg config.Config) (IRROutput, error) {
	out := IRROutput{TaskID: in.TaskID}
	if out.TaskID == "" {
		out.TaskID = uuid.NewString()
	}

	opts, basis, err := irrOptions(in, cfg)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}
	out.Method = opts.Method.String()

	var res returns.Result
	if len(in.Dates) > 0 {
		flows, ferr := datedFlows(in)
		if ferr != nil {
			out.Error = ferr.Error()
			return out, ferr
		}
		res, err = returns.SolveDated(flows, basis, opts)
	} else {
		res, err = returns.Solve(in.CashFlows, opts)
	}

	out.Rate = finite(res.Rate)
	out.MWRRPercent = out.Rate * 100
	out.Residual = finite(res.Residual)
	out.Iterations = res.Iterations
	out.Converged = res.Converged
	if err != nil {
		out.Error = err.Error()
		return out, err
	}
	return out, nil
}

// finite maps NaN and ±Inf to 0, which JSON cannot carry.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func irrOptions(in IRRInput, cfg config.Config) (returns.Options, utils.DayCount, error) {
	if in.Method != "" {
		cfg.Method = in.Method
	}
	if in.DayCount != "" {
		cfg.DayCount = in.DayCount
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return opts, "", err
	}
	if in.Tolerance != nil {
		opts.Tolerance = *in.Tolerance
	}
	if in.InitialRate != nil {
		opts.InitialRate = *in.InitialRate
	}
	if in.Step != nil {
		opts.Step = *in.Step
	}
	if in.MaxIterations != nil {
		opts.MaxIterations = *in.MaxIterations
	}
	basis, err := cfg.Basis()
	if err != nil {
		return opts, "", err
	}
	return opts, basis, nil
}

func datedFlows(in IRRInput) ([]returns.DatedCashFlow, error) {
	if len(in.Dates) != len(in.CashFlows) {
		return nil, fmt.Errorf("%d dates for %d cash flows: %w", len(in.Dates), len(in.CashFlows), returns.ErrInvalidInput)
	}
	roll, err := calendar.ParseRoll(in.Roll)
	if err != nil {
		return nil, err
	}
	cal, err := calendar.New(in.Holidays...)
	if err != nil {
		return nil, err
	}
	flows := make([]returns.DatedCashFlow, len(in.Dates))
	for i, s := range in.Dates {
		d, err := utils.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		flows[i] = returns.DatedCashFlow{Date: cal.Adjust(d, roll), Amount: in.CashFlows[i]}
	}
	return flows, nil
}
