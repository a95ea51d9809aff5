package funding_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finlib/funding"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		quote funding.Quote
		want  string
	}{
		{
			name:  "line of credit",
			quote: funding.Quote{Instrument: funding.LineOfCredit, Loan: d("10000"), Interest: d("1000"), CommitmentFee: d("50")},
			want:  "0.105",
		},
		{
			name:  "bankers acceptance",
			quote: funding.Quote{Instrument: funding.BankersAcceptance, Loan: d("10000"), Interest: d("500")},
			want:  "0.052632",
		},
		{
			name: "commercial paper",
			quote: funding.Quote{
				Instrument: funding.CommercialPaper, Loan: d("15000"), Interest: d("750"),
				DealerCommission: d("25"), BackupCost: d("10"),
			},
			want: "0.055088",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := funding.Cost(tc.quote, 6)
			require.NoError(t, err)
			assert.True(t, d(tc.want).Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestCost_DecimalPlaces(t *testing.T) {
	t.Parallel()

	q := funding.Quote{Instrument: funding.BankersAcceptance, Loan: d("10000"), Interest: d("500")}

	// Six decimal places, not six significant digits (0.0526316).
	six, err := funding.Cost(q, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.052632", six.String())

	_, err = funding.Cost(q, -1)
	require.ErrorIs(t, err, funding.ErrInvalidInput)
	assert.Contains(t, err.Error(), "decimal places")

	two, err := funding.Cost(q, 2)
	require.NoError(t, err)
	assert.Equal(t, "0.05", two.String())

	ten, err := funding.Cost(q, 10)
	require.NoError(t, err)
	assert.Equal(t, "0.0526315789", ten.String())
}

func TestCost_InvalidInput(t *testing.T) {
	t.Parallel()

	bad := []funding.Quote{
		{Instrument: funding.LineOfCredit, Loan: decimal.Zero, Interest: d("10")},
		{Instrument: funding.BankersAcceptance, Loan: d("100"), Interest: d("100")},
		{Instrument: funding.CommercialPaper, Loan: d("100"), Interest: d("-1")},
		{Instrument: funding.Instrument(9), Loan: d("100"), Interest: d("1")},
	}
	for _, q := range bad {
		_, err := funding.Cost(q, 6)
		assert.ErrorIs(t, err, funding.ErrInvalidInput, "quote %+v", q)
	}

	_, err := funding.Cost(funding.Quote{Instrument: funding.LineOfCredit, Loan: d("1")}, -1)
	assert.ErrorIs(t, err, funding.ErrInvalidInput)
}

func TestParseInstrument(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]funding.Instrument{
		"LOC": funding.LineOfCredit, "ba": funding.BankersAcceptance, "commercial-paper": funding.CommercialPaper,
	} {
		got, err := funding.ParseInstrument(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := funding.ParseInstrument("repo")
	assert.ErrorIs(t, err, funding.ErrInvalidInput)
}
