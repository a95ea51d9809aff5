package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var resp rawResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status, resp.Error)
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "irr", "--", "-100", "110")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestIRR_Args(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "irr", "--", "-100", "110")
	require.NoError(t, err)

	got := decode[IRROutput](t, out)
	assert.True(t, got.Converged)
	assert.Equal(t, "bisection", got.Method)
	assert.InDelta(t, 0.10, got.Rate, 1e-6)
	assert.InDelta(t, 10.0, got.MWRRPercent, 1e-4)
	assert.NotEmpty(t, got.TaskID)
}

func TestIRR_TextOutput(t *testing.T) {
	out, _, err := execute(t, "", "irr", "--method", "newton", "--", "-50", "2", "2", "65")
	require.NoError(t, err)
	assert.Contains(t, out, "newton")
	assert.Contains(t, out, "rate=0.117254")
}

func TestIRR_BatchWithFailure(t *testing.T) {
	input := `[
		{"task_id": "ok", "cash_flows": [-50, 2, 2, 65]},
		{"task_id": "bad", "cash_flows": [100, 50, 30]},
		{"cash_flows": [-100, 110], "method": "fixed-step"}
	]`
	out, _, err := execute(t, input, "--format", "json", "irr")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	got := decode[[]IRROutput](t, out)
	require.Len(t, got, 3)

	assert.Equal(t, "ok", got[0].TaskID)
	assert.True(t, got[0].Converged)
	assert.InDelta(t, 0.117254, got[0].Rate, 1e-6)

	assert.Equal(t, "bad", got[1].TaskID)
	assert.False(t, got[1].Converged)
	assert.Contains(t, got[1].Error, "invalid cash flows")

	assert.NotEmpty(t, got[2].TaskID)
	assert.Equal(t, "fixed-step", got[2].Method)
	assert.Equal(t, 11, got[2].Iterations)
}

func TestIRR_BatchKeepsNonFiniteItem(t *testing.T) {
	// From -0.995 the far discount factors underflow and npv is +Inf.
	flows := make([]float64, 200)
	flows[0] = -100
	for i := 1; i < len(flows); i++ {
		flows[i] = 1
	}
	flows[180] = 0
	start := -0.995
	raw, err := json.Marshal([]IRRInput{
		{TaskID: "ok", CashFlows: []float64{-100, 110}},
		{TaskID: "bad", Method: "newton", InitialRate: &start, CashFlows: flows},
	})
	require.NoError(t, err)

	out, _, err := execute(t, string(raw), "--format", "json", "irr")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	got := decode[[]IRROutput](t, out)
	require.Len(t, got, 2)

	assert.Equal(t, "ok", got[0].TaskID)
	assert.True(t, got[0].Converged)
	assert.InDelta(t, 0.10, got[0].Rate, 1e-6)

	assert.Equal(t, "bad", got[1].TaskID)
	assert.False(t, got[1].Converged)
	assert.Contains(t, got[1].Error, "not finite")
	assert.Zero(t, got[1].Residual)
	assert.InDelta(t, -0.995, got[1].Rate, 1e-12)
}

func TestIRR_DatedInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dated.json")
	body := `{"task_id": "d", "cash_flows": [-1000, 1100], "dates": ["2023-01-01", "2024-01-01"], "day_count": "ACT/365F"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, _, err := execute(t, "", "--format", "json", "irr", "--input", path)
	require.NoError(t, err)

	got := decode[IRROutput](t, out)
	assert.Equal(t, "d", got.TaskID)
	assert.InDelta(t, 0.10, got.Rate, 1e-5)
}

func TestIRR_DatedRollsToBusinessDays(t *testing.T) {
	// Sunday 2023-12-31 rolls past the 2024-01-01 holiday to 2024-01-02, exactly a year after the start.
	input := `{"cash_flows": [-1000, 1100], "dates": ["2023-01-02", "2023-12-31"],
		"roll": "following", "holidays": ["2024-01-01"]}`
	out, _, err := execute(t, input, "--format", "json", "irr")
	require.NoError(t, err)

	got := decode[IRROutput](t, out)
	assert.InDelta(t, 0.10, got.Rate, 1e-5)

	_, _, err = execute(t, `{"cash_flows": [-1, 2], "dates": ["2023-01-02", "2023-12-31"], "roll": "nearest"}`, "irr")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestIRR_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.toml")
	require.NoError(t, os.WriteFile(path, []byte("method = \"newton\"\ntolerance = 1e-10\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "--format", "json", "irr", "--", "-100", "110")
	require.NoError(t, err)

	got := decode[IRROutput](t, out)
	assert.Equal(t, "newton", got.Method)
	assert.InDelta(t, 0.10, got.Rate, 1e-9)
}

func TestIRR_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: -1\n"), 0o600))

	_, _, err := execute(t, "", "--config", path, "irr", "--", "-100", "110")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestIRR_EmptyInput(t *testing.T) {
	_, errOut, err := execute(t, "  ", "irr")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "empty input")
}

func TestTVM(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "tvm", "fv", "--pv", "1000", "--rate", "0.05", "--periods", "10")
	require.NoError(t, err)
	got := decode[TVMResult](t, out)
	assert.InDelta(t, 1628.894626777442, got.Value, 1e-9)

	out, _, err = execute(t, "", "--format", "json", "tvm", "annuity", "--pmt", "100", "--rate", "0", "--periods", "12", "--timing", "begin")
	require.NoError(t, err)
	got = decode[TVMResult](t, out)
	assert.Equal(t, "annuity_begin", got.Kind)
	assert.InDelta(t, 1200.0, got.Value, 1e-9)

	_, _, err = execute(t, "", "tvm", "perpetuity", "--pmt", "10", "--rate", "0.03", "--growth", "0.05")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "stats", "--bins", "5", "0", "1", "1.5", "2", "2.2", "2.4", "2.6", "3", "4", "10")
	require.NoError(t, err)

	got := decode[StatsResult](t, out)
	assert.Equal(t, 10, got.Count)
	assert.InDelta(t, 2.87, got.Arithmetic, 1e-12)
	assert.Nil(t, got.Geometric) // the sample contains 0
	assert.Equal(t, "no mode", got.Modality)
	assert.Equal(t, 5, got.ModalBin.Count)
	assert.InDelta(t, 2.0, got.BinWidth, 1e-12)
}

func TestMultiplier_TextUsesGrouping(t *testing.T) {
	out, _, err := execute(t, "", "multiplier", "--mpc", "0.5", "--spending", "10000", "--rounds", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "multiplier: 2.0000")
	assert.Contains(t, out, "round 1: 15,000.00")
	assert.Contains(t, out, "round 2: 22,500.00")

	_, _, err = execute(t, "", "multiplier", "--mpc", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestFunding(t *testing.T) {
	out, _, err := execute(t, "", "funding", "--instrument", "ba", "--loan", "10000", "--interest", "500")
	require.NoError(t, err)
	assert.Equal(t, "bankers-acceptance: 0.052632 (5.2632%)\n", out)

	out, _, err = execute(t, "", "--format", "json", "funding", "--instrument", "cp",
		"--loan", "15000", "--interest", "750", "--dealer", "25", "--backup", "10", "--places", "4")
	require.NoError(t, err)
	got := decode[FundingResult](t, out)
	assert.Equal(t, "0.0551", got.Cost.String())

	_, _, err = execute(t, "", "funding", "--loan", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParseBatch(t *testing.T) {
	items, isArray, err := ParseBatch[IRRInput]([]byte(`{"cash_flows": [-1, 2]}`))
	require.NoError(t, err)
	assert.False(t, isArray)
	assert.Equal(t, []float64{-1, 2}, items[0].CashFlows)

	_, isArray, err = ParseBatch[IRRInput]([]byte(`[]`))
	require.Error(t, err)
	assert.True(t, isArray)
}
