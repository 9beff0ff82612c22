// Package engine implements the vertical spread construction and
// optimization engine: pair enumeration, per-strategy metrics, Greeks
// netting, and feasibility ranking.
package engine

import (
	"spread-optimizer/internal/models"
)

// assignLegs maps a strategy kind onto an ascending strike pair and
// returns which quote is sold and which is bought. This is the single
// place the four leg assignments live; every sign convention downstream
// derives from it.
//
// BearCallCredit: sell low call, buy high call.
// BullCallDebit:  buy low call, sell high call.
// BullPutCredit:  sell high put, buy low put.
// BearPutDebit:   buy high put, sell low put.
func assignLegs(kind models.StrategyKind, low, high *models.OptionQuote) (sold, bought *models.OptionQuote) {
	switch kind {
	case models.BearCallCredit:
		return low, high
	case models.BullCallDebit:
		return high, low
	case models.BullPutCredit:
		return high, low
	case models.BearPutDebit:
		return low, high
	}
	return nil, nil
}

// innerStrike returns the strike the breakeven is anchored to: the sold
// strike for credit spreads, the bought strike for debit spreads.
func innerStrike(kind models.StrategyKind, sold, bought *models.OptionQuote) float64 {
	if kind.IsCredit() {
		return sold.Strike
	}
	return bought.Strike
}
