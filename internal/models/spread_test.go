package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyKindClassification(t *testing.T) {
	assert.True(t, BearCallCredit.IsCredit())
	assert.True(t, BullPutCredit.IsCredit())
	assert.False(t, BullCallDebit.IsCredit())
	assert.False(t, BearPutDebit.IsCredit())

	assert.Equal(t, OptionCall, BullCallDebit.OptionType())
	assert.Equal(t, OptionCall, BearCallCredit.OptionType())
	assert.Equal(t, OptionPut, BullPutCredit.OptionType())
	assert.Equal(t, OptionPut, BearPutDebit.OptionType())

	for _, k := range AllStrategyKinds {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, StrategyKind("IRON_CONDOR").Valid())
}

func TestQuoteValid(t *testing.T) {
	q := OptionQuote{Type: OptionCall, Strike: 100, Premium: 2}
	assert.True(t, q.Valid())

	zeroStrike := q
	zeroStrike.Strike = 0
	assert.False(t, zeroStrike.Valid())

	negPremium := q
	negPremium.Premium = -1
	assert.False(t, negPremium.Valid())

	badType := q
	badType.Type = "FORWARD"
	assert.False(t, badType.Valid())
}

func TestQuoteTableFilterUnderlying(t *testing.T) {
	table := NewQuoteTable([]OptionQuote{
		{Underlying: "BOVA11", Type: OptionCall, Strike: 100, Premium: 1},
		{Underlying: "PETR4", Type: OptionCall, Strike: 30, Premium: 1},
		{Underlying: "BOVA11", Type: OptionPut, Strike: 95, Premium: 1},
	})

	filtered := table.FilterUnderlying("BOVA11")
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, 3, table.Len(), "source table is never mutated")
	assert.Equal(t, []string{"BOVA11", "PETR4"}, table.Underlyings())
	assert.Zero(t, table.FilterUnderlying("VALE3").Len())
}

func TestRequestKindsDefaultsToAll(t *testing.T) {
	req := OptimizationRequest{}
	assert.Equal(t, AllStrategyKinds, req.Kinds())

	req.Strategies = []StrategyKind{BullPutCredit}
	assert.Equal(t, []StrategyKind{BullPutCredit}, req.Kinds())
}
