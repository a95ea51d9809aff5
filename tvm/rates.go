package tvm

import (
	"fmt"
	"sort"
	"strings"
)

// PerpetuityPV is the value of a level payment received forever: pmt/r.
func PerpetuityPV(pmt, r float64) (float64, error) {
	if !(r > 0) {
		return 0, fmt.Errorf("PerpetuityPV: rate must be positive, got %g: %w", r, ErrInvalidInput)
	}
	return pmt / r, nil
}

// GrowingPerpetuityPV values a payment growing at g forever: pmt/(r-g).
// The first payment is pmt, one period from now. Requires r > g.
func GrowingPerpetuityPV(pmt, r, g float64) (float64, error) {
	if !(r > g) {
		return 0, fmt.Errorf("GrowingPerpetuityPV: rate %g must exceed growth %g: %w", r, g, ErrInvalidInput)
	}
	return pmt / (r - g), nil
}

// NominalRiskFreeRate compounds the real risk-free rate with expected
// inflation: (1+real)(1+inflation) - 1.
func NominalRiskFreeRate(realRate, inflation float64) float64 {
	return (1+realRate)*(1+inflation) - 1
}

// Premiums decomposes a required rate of return into the real risk-free
// rate and the premiums investors demand on top of it.
type Premiums struct {
	RealRiskFree float64 `json:"real_risk_free"`
	Inflation    float64 `json:"inflation"`
	Default      float64 `json:"default"`
	Liquidity    float64 `json:"liquidity"`
	Maturity     float64 `json:"maturity"`
}

// RequiredReturn is the additive build-up of all premiums. It is also the
// total interest rate a lender charges.
func (p Premiums) RequiredReturn() float64 {
	return p.RealRiskFree + p.Inflation + p.Default + p.Liquidity + p.Maturity
}

// NominalRiskFree is the compounded real rate and inflation premium.
func (p Premiums) NominalRiskFree() float64 {
	return NominalRiskFreeRate(p.RealRiskFree, p.Inflation)
}

// RiskPremium is the part of RequiredReturn above the additive risk-free rate.
func (p Premiums) RiskPremium() float64 {
	return p.Default + p.Liquidity + p.Maturity
}

// MaturityRiskPremium assumes the premium grows linearly with maturity
// along a yield curve of the given slope.
func MaturityRiskPremium(yearsToMaturity, curveSlope float64) (float64, error) {
	if yearsToMaturity < 0 {
		return 0, fmt.Errorf("MaturityRiskPremium: negative maturity %g: %w", yearsToMaturity, ErrInvalidInput)
	}
	return yearsToMaturity * curveSlope, nil
}

// DefaultRiskPremium looks up the premium for a credit rating in a table of
// historical default rates. Rating matching ignores case and surrounding space.
func DefaultRiskPremium(rating string, defaultRates map[string]float64) (float64, error) {
	key := strings.ToUpper(strings.TrimSpace(rating))
	for k, v := range defaultRates {
		if strings.ToUpper(strings.TrimSpace(k)) == key {
			return v, nil
		}
	}
	known := make([]string, 0, len(defaultRates))
	for k := range defaultRates {
		known = append(known, k)
	}
	sort.Strings(known)
	return 0, fmt.Errorf("DefaultRiskPremium: unknown rating %q (known: %s): %w",
		rating, strings.Join(known, ", "), ErrInvalidInput)
}
