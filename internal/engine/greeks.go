package engine

import (
	"spread-optimizer/internal/models"
)

// netGreeks computes the signed net sensitivities of a spread. Credit
// spreads net sold - bought; debit spreads net bought - sold. A Greek
// missing on either leg yields nil for that net value, never zero.
func netGreeks(kind models.StrategyKind, sold, bought *models.OptionQuote) models.NetGreeks {
	credit := kind.IsCredit()
	return models.NetGreeks{
		Delta: netValue(credit, sold.Delta, bought.Delta),
		Gamma: netValue(credit, sold.Gamma, bought.Gamma),
		Theta: netValue(credit, sold.Theta, bought.Theta),
		Vega:  netValue(credit, sold.Vega, bought.Vega),
	}
}

func netValue(credit bool, sold, bought *float64) *float64 {
	if sold == nil || bought == nil {
		return nil
	}
	var v float64
	if credit {
		v = *sold - *bought
	} else {
		v = *bought - *sold
	}
	return &v
}
