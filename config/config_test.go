package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finlib/config"
	"github.com/meenmo/finlib/returns"
	"github.com/meenmo/finlib/utils"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig_MatchesSolverDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, returns.DefaultOptions(), opts)

	basis, err := cfg.Basis()
	require.NoError(t, err)
	assert.Equal(t, utils.Act365F, basis)
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "solver.toml", `
method = "newton"
tolerance = 1e-9
initial_rate = 0.05
day_count = "ACT/360"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, returns.MethodNewton, opts.Method)
	assert.Equal(t, 1e-9, opts.Tolerance)
	assert.Equal(t, 0.05, opts.InitialRate)
	// Keys not in the file keep their defaults.
	assert.Equal(t, 100_000, opts.MaxIterations)
	assert.Equal(t, -0.99, opts.Low)
	assert.Equal(t, "ACT/360", cfg.DayCount)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "solver.yaml", `
method: fixed-step
step: 0.001
max_iterations: 5000
decimal_places: 4
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, returns.MethodFixedStep, opts.Method)
	assert.Equal(t, 0.001, opts.Step)
	assert.Equal(t, 5000, opts.MaxIterations)
	assert.Equal(t, int32(4), cfg.DecimalPlaces)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"method.toml":    `method = "secant"`,
		"tolerance.yaml": "tolerance: 0\n",
		"bracket.toml":   "bracket_low = 0.5\nbracket_high = 0.1\n",
		"basis.yml":      "day_count: BUS/252\n",
		"places.toml":    "decimal_places = -2\n",
		"format.json":    "{}",
	}
	for name, body := range cases {
		name, body := name, body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeFile(t, name, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeFile(t, "bad.toml", "method = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}
