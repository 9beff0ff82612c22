package engine

import (
	"spread-optimizer/internal/errors"
	"spread-optimizer/internal/models"
)

// ManualSpreadInput describes a single bear call credit spread the
// caller has already picked: both legs are declared directly instead of
// being found by the enumerator. Fees here are charged per leg per
// unit, the convention used when entering a real fill.
type ManualSpreadInput struct {
	Underlying    string
	SoldStrike    float64
	SoldPremium   float64
	BoughtStrike  float64
	BoughtPremium float64
	Quantity      int
	FeesPerLeg    float64
}

// ManualBearCall computes the full metric set for one user-declared
// bear call credit spread. The shape precondition soldStrike <
// boughtStrike is rejected before any computation.
//
// Per-unit fees (both legs) come out of the net credit, so the
// breakeven and the per-unit figures already reflect costs:
//
//	netCredit = (soldPremium - boughtPremium) - 2*feesPerLeg
//	breakeven = soldStrike + netCredit
//	maxProfitTotal = netCredit * quantity
//	maxLossTotal = (width - netCredit) * quantity + 2*feesPerLeg
func ManualBearCall(in ManualSpreadInput) (*models.SpreadCandidate, error) {
	if in.SoldStrike >= in.BoughtStrike {
		return nil, errors.NewSpreadShapeError(in.SoldStrike, in.BoughtStrike,
			"bear call credit requires sold strike below bought strike")
	}
	if in.SoldStrike <= 0 || in.BoughtStrike <= 0 {
		return nil, errors.NewRequestError("strike", in.SoldStrike, "must be positive")
	}
	if in.SoldPremium < 0 || in.BoughtPremium < 0 {
		return nil, errors.NewRequestError("premium", in.SoldPremium, "must not be negative")
	}
	if in.Quantity <= 0 {
		return nil, errors.NewRequestError("quantity", in.Quantity, "must be positive")
	}
	if in.FeesPerLeg < 0 {
		return nil, errors.NewRequestError("feesPerLeg", in.FeesPerLeg, "must not be negative")
	}

	soldQuote := &models.OptionQuote{
		Underlying: in.Underlying,
		Type:       models.OptionCall,
		Strike:     in.SoldStrike,
		Premium:    in.SoldPremium,
	}
	boughtQuote := &models.OptionQuote{
		Underlying: in.Underlying,
		Type:       models.OptionCall,
		Strike:     in.BoughtStrike,
		Premium:    in.BoughtPremium,
	}

	width := in.BoughtStrike - in.SoldStrike
	feesPerUnit := 2 * in.FeesPerLeg
	netCredit := (in.SoldPremium - in.BoughtPremium) - feesPerUnit
	lossUnit := width - netCredit
	qty := float64(in.Quantity)

	c := &models.SpreadCandidate{
		Kind:              models.BearCallCredit,
		SoldLeg:           models.SpreadLeg{Quote: soldQuote, Direction: models.DirectionSold},
		BoughtLeg:         models.SpreadLeg{Quote: boughtQuote, Direction: models.DirectionBought},
		NetPremiumPerUnit: netCredit,
		MaxProfitPerUnit:  netCredit,
		MaxLossPerUnit:    lossUnit,
		MaxProfitTotal:    netCredit * qty,
		MaxLossTotal:      lossUnit*qty + feesPerUnit,
		Breakeven:         in.SoldStrike + netCredit,
		NotionalTotal:     width * qty,
		NetGreeks:         netGreeks(models.BearCallCredit, soldQuote, boughtQuote),
	}
	if c.MaxLossTotal > 0 {
		c.RiskRewardRatio = c.MaxProfitTotal / c.MaxLossTotal
	}
	return c, nil
}
