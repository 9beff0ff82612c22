package engine

import (
	"math"

	"spread-optimizer/internal/errors"
	"spread-optimizer/internal/models"
)

// CostModel holds the unit cost inputs applied to every candidate of a
// run: contracts per leg and the flat fees charged once per spread.
type CostModel struct {
	Quantity  int
	FeesTotal float64
}

// BuildCandidate constructs a spread candidate for a strategy kind from
// an ascending strike pair. low.Strike must be strictly below
// high.Strike; the enumerator guarantees this but it is re-checked here.
//
// Sign conventions: NetPremiumPerUnit = sold premium - bought premium,
// so credit spreads carry a positive value and debit spreads a negative
// one. Fees reduce the total profit and increase the total loss; they
// never shrink the risk.
func BuildCandidate(kind models.StrategyKind, low, high *models.OptionQuote, cost CostModel) (*models.SpreadCandidate, error) {
	width := high.Strike - low.Strike
	if width <= 0 {
		return nil, errors.NewValidationError("strike pair", low.Strike,
			"high strike must exceed low strike")
	}

	sold, bought := assignLegs(kind, low, high)
	if sold == nil || bought == nil {
		return nil, errors.NewValidationError("strategyKind", kind, "unknown strategy kind")
	}

	net := sold.Premium - bought.Premium

	var profitUnit, lossUnit, breakeven float64
	if kind.IsCredit() {
		profitUnit = net
		lossUnit = width - net
	} else {
		// The debit stays signed: an inverted pair (bought leg cheaper
		// than the sold leg) carries a non-positive loss and is dropped
		// at the ranking stage.
		debit := bought.Premium - sold.Premium
		profitUnit = width - debit
		lossUnit = debit
	}

	// Breakeven sits a net-premium away from the inner leg: above it for
	// calls, below it for puts.
	anchor := innerStrike(kind, sold, bought)
	if kind.OptionType() == models.OptionCall {
		breakeven = anchor + math.Abs(net)
	} else {
		breakeven = anchor - math.Abs(net)
	}

	qty := float64(cost.Quantity)
	c := &models.SpreadCandidate{
		Kind:              kind,
		SoldLeg:           models.SpreadLeg{Quote: sold, Direction: models.DirectionSold},
		BoughtLeg:         models.SpreadLeg{Quote: bought, Direction: models.DirectionBought},
		NetPremiumPerUnit: net,
		MaxProfitPerUnit:  profitUnit,
		MaxLossPerUnit:    lossUnit,
		MaxProfitTotal:    profitUnit*qty - cost.FeesTotal,
		MaxLossTotal:      lossUnit*qty + cost.FeesTotal,
		Breakeven:         breakeven,
		NotionalTotal:     width * qty,
	}
	if c.MaxLossTotal > 0 {
		c.RiskRewardRatio = c.MaxProfitTotal / c.MaxLossTotal
	}
	c.NetGreeks = netGreeks(kind, sold, bought)
	return c, nil
}
