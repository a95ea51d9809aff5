package tvm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finlib/tvm"
)

func TestPerpetuities(t *testing.T) {
	t.Parallel()

	pv, err := tvm.PerpetuityPV(100, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 2000, pv, 1e-9)

	growing, err := tvm.GrowingPerpetuityPV(100, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 3333.3333333333, growing, 1e-6)

	_, err = tvm.PerpetuityPV(100, 0)
	assert.ErrorIs(t, err, tvm.ErrInvalidInput)
	_, err = tvm.GrowingPerpetuityPV(100, 0.02, 0.02)
	assert.ErrorIs(t, err, tvm.ErrInvalidInput)
}

func TestRequiredReturnDecomposition(t *testing.T) {
	t.Parallel()

	mrp, err := tvm.MaturityRiskPremium(5, 0.005)
	require.NoError(t, err)
	assert.InDelta(t, 0.025, mrp, 1e-12)

	drp, err := tvm.DefaultRiskPremium(" a ", map[string]float64{"A": 0.01, "B": 0.02, "C": 0.05})
	require.NoError(t, err)
	assert.Equal(t, 0.01, drp)

	p := tvm.Premiums{
		RealRiskFree: 0.02,
		Inflation:    0.03,
		Default:      drp,
		Liquidity:    0.005,
		Maturity:     mrp,
	}
	assert.InDelta(t, 0.085, p.RequiredReturn(), 1e-12)
	assert.InDelta(t, 0.04, p.RiskPremium(), 1e-12)
	assert.InDelta(t, 0.0506, p.NominalRiskFree(), 1e-12)

	assert.InDelta(t, 0.0403, tvm.NominalRiskFreeRate(0.01, 0.03), 1e-12)

	_, err = tvm.DefaultRiskPremium("D", map[string]float64{"A": 0.01})
	require.Error(t, err)
	assert.ErrorIs(t, err, tvm.ErrInvalidInput)
	assert.Contains(t, err.Error(), "known: A")

	_, err = tvm.MaturityRiskPremium(-1, 0.005)
	assert.ErrorIs(t, err, tvm.ErrInvalidInput)
}
