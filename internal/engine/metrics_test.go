package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread-optimizer/internal/models"
)

func callQuote(strike, premium float64) *models.OptionQuote {
	return &models.OptionQuote{
		Underlying: "BOVA11",
		Type:       models.OptionCall,
		Strike:     strike,
		Premium:    premium,
	}
}

func putQuote(strike, premium float64) *models.OptionQuote {
	return &models.OptionQuote{
		Underlying: "BOVA11",
		Type:       models.OptionPut,
		Strike:     strike,
		Premium:    premium,
	}
}

func TestBuildCandidateBullCallDebit(t *testing.T) {
	// Buy the 100 call for 8, sell the 110 call for 3: a 5.00 debit.
	low := callQuote(100, 8)
	high := callQuote(110, 3)

	c, err := BuildCandidate(models.BullCallDebit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, models.DirectionBought, c.BoughtLeg.Direction)
	assert.Equal(t, 100.0, c.BoughtLeg.Quote.Strike)
	assert.Equal(t, 110.0, c.SoldLeg.Quote.Strike)

	assert.InDelta(t, -5.0, c.NetPremiumPerUnit, 1e-9, "debit stored negative")
	assert.InDelta(t, 5.0, c.MaxProfitPerUnit, 1e-9)
	assert.InDelta(t, 5.0, c.MaxLossPerUnit, 1e-9)
	assert.InDelta(t, 105.0, c.Breakeven, 1e-9)
	assert.InDelta(t, 10.0, c.NotionalTotal, 1e-9)

	// Boundary case: ratio exactly 1.0 qualifies at the default gate.
	assert.True(t, c.HasRatio())
	assert.InDelta(t, 1.0, c.RiskRewardRatio, 1e-9)
}

func TestBuildCandidateBearCallCredit(t *testing.T) {
	low := callQuote(118, 3.50)
	high := callQuote(123, 1.00)

	c, err := BuildCandidate(models.BearCallCredit, low, high, CostModel{Quantity: 100, FeesTotal: 44})
	require.NoError(t, err)

	assert.Equal(t, 118.0, c.SoldLeg.Quote.Strike, "credit call sells the low strike")
	assert.Equal(t, 123.0, c.BoughtLeg.Quote.Strike)

	assert.InDelta(t, 2.50, c.NetPremiumPerUnit, 1e-9)
	assert.InDelta(t, 2.50, c.MaxProfitPerUnit, 1e-9)
	assert.InDelta(t, 2.50, c.MaxLossPerUnit, 1e-9)
	assert.InDelta(t, 120.50, c.Breakeven, 1e-9)

	// Fees reduce profit and increase loss, once per spread.
	assert.InDelta(t, 2.50*100-44, c.MaxProfitTotal, 1e-9)
	assert.InDelta(t, 2.50*100+44, c.MaxLossTotal, 1e-9)
	assert.InDelta(t, 5.0*100, c.NotionalTotal, 1e-9)
}

func TestBuildCandidateBullPutCredit(t *testing.T) {
	low := putQuote(55, 0.80)
	high := putQuote(60, 2.30)

	c, err := BuildCandidate(models.BullPutCredit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 60.0, c.SoldLeg.Quote.Strike, "credit put sells the high strike")
	assert.Equal(t, 55.0, c.BoughtLeg.Quote.Strike)

	assert.InDelta(t, 1.50, c.NetPremiumPerUnit, 1e-9)
	assert.InDelta(t, 1.50, c.MaxProfitPerUnit, 1e-9)
	assert.InDelta(t, 3.50, c.MaxLossPerUnit, 1e-9)
	assert.InDelta(t, 58.50, c.Breakeven, 1e-9, "breakeven below the sold put strike")
}

func TestBuildCandidateBearPutDebit(t *testing.T) {
	low := putQuote(55, 0.80)
	high := putQuote(60, 2.30)

	c, err := BuildCandidate(models.BearPutDebit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 60.0, c.BoughtLeg.Quote.Strike, "debit put buys the high strike")
	assert.Equal(t, 55.0, c.SoldLeg.Quote.Strike)

	assert.InDelta(t, -1.50, c.NetPremiumPerUnit, 1e-9)
	assert.InDelta(t, 3.50, c.MaxProfitPerUnit, 1e-9)
	assert.InDelta(t, 1.50, c.MaxLossPerUnit, 1e-9)
	assert.InDelta(t, 58.50, c.Breakeven, 1e-9, "breakeven below the bought put strike")
}

func TestBuildCandidateCreditIdentity(t *testing.T) {
	// For any credit spread, per-unit profit + per-unit loss covers the
	// strike width exactly, before fees and quantity scaling.
	low := callQuote(118, 3.50)
	high := callQuote(123, 1.00)

	c, err := BuildCandidate(models.BearCallCredit, low, high, CostModel{Quantity: 1000, FeesTotal: 0.10})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c.MaxProfitPerUnit+c.MaxLossPerUnit, 1e-9)
}

func TestBuildCandidateRejectsNonPositiveWidth(t *testing.T) {
	a := callQuote(110, 3)
	b := callQuote(110, 3.2)

	_, err := BuildCandidate(models.BearCallCredit, a, b, CostModel{Quantity: 1})
	assert.Error(t, err)

	_, err = BuildCandidate(models.BearCallCredit, b, a, CostModel{Quantity: 1})
	assert.Error(t, err)
}

func TestBuildCandidateZeroRiskHasNoRatio(t *testing.T) {
	// A credit equal to the width leaves zero max loss; the ratio must
	// stay undefined instead of being clamped.
	low := callQuote(100, 6)
	high := callQuote(105, 1)

	c, err := BuildCandidate(models.BearCallCredit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c.MaxLossPerUnit, 1e-9)
	assert.False(t, c.HasRatio())
	assert.Zero(t, c.RiskRewardRatio)
}

func TestBuildCandidateInvertedCallDebitKeepsSignedLoss(t *testing.T) {
	// The low call is cheaper than the high one, so this "debit" spread
	// actually opens for a credit. The loss stays signed and the
	// candidate carries no defined ratio, instead of pricing the credit
	// as phantom risk.
	low := callQuote(100, 3)
	high := callQuote(110, 8)

	c, err := BuildCandidate(models.BullCallDebit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, c.NetPremiumPerUnit, 1e-9, "sold premium minus bought premium")
	assert.InDelta(t, -5.0, c.MaxLossPerUnit, 1e-9, "debit kept signed, no sign flip")
	assert.InDelta(t, 15.0, c.MaxProfitPerUnit, 1e-9)
	assert.False(t, c.MaxLossTotal > 0)
	assert.False(t, c.HasRatio())
	assert.Zero(t, c.RiskRewardRatio)
}

func TestBuildCandidateInvertedPutDebitKeepsSignedLoss(t *testing.T) {
	// Same inversion on the put side: the bought high put is cheaper
	// than the sold low put.
	low := putQuote(55, 2.30)
	high := putQuote(60, 0.80)

	c, err := BuildCandidate(models.BearPutDebit, low, high, CostModel{Quantity: 1})
	require.NoError(t, err)

	assert.InDelta(t, 1.50, c.NetPremiumPerUnit, 1e-9)
	assert.InDelta(t, -1.50, c.MaxLossPerUnit, 1e-9)
	assert.False(t, c.HasRatio())
}
