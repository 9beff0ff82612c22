package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"spread-optimizer/internal/models"
)

func reportCandidate() *models.SpreadCandidate {
	sold := &models.OptionQuote{
		Underlying: "PETR4",
		Ticker:     "PETRH118",
		Type:       models.OptionCall,
		Strike:     118,
		Premium:    3.50,
		Delta:      models.Float64Ptr(0.45),
		ImpliedVol: models.Float64Ptr(28.4),
	}
	bought := &models.OptionQuote{
		Underlying: "PETR4",
		Ticker:     "PETRH123",
		Type:       models.OptionCall,
		Strike:     123,
		Premium:    1.00,
		Delta:      models.Float64Ptr(0.25),
	}
	return &models.SpreadCandidate{
		Kind:              models.BearCallCredit,
		SoldLeg:           models.SpreadLeg{Quote: sold, Direction: models.DirectionSold},
		BoughtLeg:         models.SpreadLeg{Quote: bought, Direction: models.DirectionBought},
		NetPremiumPerUnit: 2.40,
		MaxProfitPerUnit:  2.40,
		MaxLossPerUnit:    2.60,
		MaxProfitTotal:    2400.00,
		MaxLossTotal:      2600.10,
		Breakeven:         120.40,
		NotionalTotal:     5000.00,
		RiskRewardRatio:   0.92,
		NetGreeks:         models.NetGreeks{Delta: models.Float64Ptr(0.20)},
	}
}

func TestRenderCandidate(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).RenderCandidate(reportCandidate(), 115.30, 1000)

	out := buf.String()
	assert.Contains(t, out, "BEAR CALL SPREAD (CREDIT)")
	assert.Contains(t, out, "SELL:  PETRH118")
	assert.Contains(t, out, "BUY:   PETRH123")
	assert.Contains(t, out, "CREDIT (premium collected)")
	assert.Contains(t, out, "R$ 2,40")
	assert.Contains(t, out, "R$ 120,40")
	assert.Contains(t, out, "R$ 2.400,00")
	assert.Contains(t, out, "R$ 2.600,10")
	assert.Contains(t, out, "delta 0.20")
	assert.Contains(t, out, "gamma N/A", "unknown greeks render as N/A")
	assert.Contains(t, out, "28.40%")
}

func TestRenderResultBestBanner(t *testing.T) {
	c := reportCandidate()
	res := &models.OptimizationResult{
		Underlying: "PETR4",
		Outcome:    models.OutcomeBest,
		Best:       c,
		Top:        []*models.SpreadCandidate{c},
		Evaluated:  12,
	}
	req := &models.OptimizationRequest{
		Underlying:    "PETR4",
		SpotPrice:     115.30,
		Quantity:      1000,
		MinRiskReward: 0.5,
	}

	var buf bytes.Buffer
	NewRenderer(&buf).RenderResult(res, req)

	out := buf.String()
	assert.Contains(t, out, "BEST SPREAD")
	assert.NotContains(t, out, "TOP CANDIDATES", "single candidate needs no table")
}

func TestRenderResultUnqualifiedBanner(t *testing.T) {
	c := reportCandidate()
	res := &models.OptimizationResult{
		Underlying: "PETR4",
		Outcome:    models.OutcomeBestUnqualified,
		Best:       c,
		Top:        []*models.SpreadCandidate{c, c},
		Evaluated:  12,
	}
	req := &models.OptimizationRequest{Underlying: "PETR4", SpotPrice: 115.30, Quantity: 1000, MinRiskReward: 2.0}

	var buf bytes.Buffer
	NewRenderer(&buf).RenderResult(res, req)

	out := buf.String()
	assert.Contains(t, out, "NO SPREAD MEETS THE QUALITY GATE")
	assert.Contains(t, out, "best profitable candidate below the bar")
	assert.Contains(t, out, "TOP CANDIDATES")
	assert.Contains(t, out, "ratio median")
}

func TestRenderResultNoneFound(t *testing.T) {
	res := &models.OptimizationResult{
		Underlying: "PETR4",
		Outcome:    models.OutcomeNoneFound,
		Evaluated:  40,
	}
	req := &models.OptimizationRequest{Underlying: "PETR4", SpotPrice: 115.30, Quantity: 100, FeesTotal: 44, MinRiskReward: 1.0}

	var buf bytes.Buffer
	NewRenderer(&buf).RenderResult(res, req)

	out := buf.String()
	assert.Contains(t, out, "NO PROFITABLE SPREAD FOUND")
	assert.Contains(t, out, "40 candidates evaluated")
	assert.Contains(t, out, "R$ 44,00")
	assert.NotContains(t, out, rule, "banner only, no spread details")
	assert.NotContains(t, out, "SELL:")
}

func TestRenderCandidateUndefinedRatio(t *testing.T) {
	c := reportCandidate()
	c.MaxLossTotal = 0
	c.RiskRewardRatio = 0

	var buf bytes.Buffer
	NewRenderer(&buf).RenderCandidate(c, 115.30, 1000)
	assert.Contains(t, buf.String(), "RISK/REWARD (net):        undefined")
}
