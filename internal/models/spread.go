package models

// StrategyKind identifies one of the four vertical spread shapes.
// The set is closed: every kind maps to exactly one leg assignment
// and one sign convention in the engine.
type StrategyKind string

const (
	BullCallDebit  StrategyKind = "BULL_CALL_DEBIT"
	BearCallCredit StrategyKind = "BEAR_CALL_CREDIT"
	BullPutCredit  StrategyKind = "BULL_PUT_CREDIT"
	BearPutDebit   StrategyKind = "BEAR_PUT_DEBIT"
)

// AllStrategyKinds lists every strategy kind in a fixed order.
var AllStrategyKinds = []StrategyKind{
	BullCallDebit,
	BearCallCredit,
	BullPutCredit,
	BearPutDebit,
}

// IsCredit reports whether the strategy collects net premium when opened.
func (k StrategyKind) IsCredit() bool {
	return k == BearCallCredit || k == BullPutCredit
}

// OptionType returns the option type both legs of the strategy use.
func (k StrategyKind) OptionType() OptionType {
	if k == BullCallDebit || k == BearCallCredit {
		return OptionCall
	}
	return OptionPut
}

// Valid reports whether k is one of the four known kinds.
func (k StrategyKind) Valid() bool {
	switch k {
	case BullCallDebit, BearCallCredit, BullPutCredit, BearPutDebit:
		return true
	}
	return false
}

// String returns a human-readable strategy name.
func (k StrategyKind) String() string {
	switch k {
	case BullCallDebit:
		return "Bull Call Spread (Debit)"
	case BearCallCredit:
		return "Bear Call Spread (Credit)"
	case BullPutCredit:
		return "Bull Put Spread (Credit)"
	case BearPutDebit:
		return "Bear Put Spread (Debit)"
	}
	return string(k)
}

// SpreadLeg is a view of one option quote plus the direction taken on it.
// It never owns the quote.
type SpreadLeg struct {
	Quote     *OptionQuote
	Direction Direction
}

// NetGreeks holds the signed net sensitivities of a spread. A nil field
// means at least one leg was missing that Greek; unknown is never
// coerced to zero.
type NetGreeks struct {
	Delta *float64
	Gamma *float64
	Theta *float64
	Vega  *float64
}

// SpreadCandidate is a constructed two-leg vertical spread with its
// computed metrics. Candidates are immutable after construction.
type SpreadCandidate struct {
	Kind      StrategyKind
	SoldLeg   SpreadLeg
	BoughtLeg SpreadLeg

	// NetPremiumPerUnit is signed: positive means net credit,
	// negative means net debit.
	NetPremiumPerUnit float64

	MaxProfitPerUnit float64
	MaxLossPerUnit   float64

	MaxProfitTotal float64
	MaxLossTotal   float64
	Breakeven      float64
	NotionalTotal  float64

	// RiskRewardRatio is only meaningful when MaxLossTotal > 0; the
	// ranker drops candidates with non-positive risk before comparing.
	RiskRewardRatio float64

	NetGreeks NetGreeks
}

// Width returns the strike distance between the two legs.
func (c *SpreadCandidate) Width() float64 {
	w := c.BoughtLeg.Quote.Strike - c.SoldLeg.Quote.Strike
	if w < 0 {
		return -w
	}
	return w
}

// HasRatio reports whether the risk/reward ratio is defined for this
// candidate.
func (c *SpreadCandidate) HasRatio() bool {
	return c.MaxLossTotal > 0
}
