package engine

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"spread-optimizer/internal/models"
)

// Property: For every strategy kind and any valid strike pair, the
// per-unit max profit plus the per-unit max loss equals the strike
// width exactly, before fees and quantity scaling. A vertical spread
// splits the width between the two outcomes and nothing else.
func TestProperty_PerUnitProfitAndLossCoverWidth(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	lowStrikeGen := gen.Float64Range(10, 200)
	widthGen := gen.Float64Range(0.5, 50)
	premiumGen := gen.Float64Range(0, 30)

	properties.Property("maxProfitPerUnit + maxLossPerUnit == width", prop.ForAll(
		func(lowStrike, width, lowPremium, highPremium float64) bool {
			for _, kind := range models.AllStrategyKinds {
				low := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       kind.OptionType(),
					Strike:     lowStrike,
					Premium:    lowPremium,
				}
				high := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       kind.OptionType(),
					Strike:     lowStrike + width,
					Premium:    highPremium,
				}

				c, err := BuildCandidate(kind, low, high, CostModel{Quantity: 1})
				if err != nil {
					return false
				}
				if math.Abs(c.MaxProfitPerUnit+c.MaxLossPerUnit-width) > 1e-9 {
					return false
				}
			}
			return true
		},
		lowStrikeGen, widthGen, premiumGen, premiumGen,
	))

	properties.TestingRun(t)
}

// Property: The net premium stays signed: credit kinds carry it as the
// per-unit profit, debit kinds carry its negation as the per-unit loss,
// with no absolute-value rescue for inverted premium pairs. The
// breakeven always sits an absolute net premium away from the inner
// strike on the correct side for the option type.
func TestProperty_NetPremiumSignAndBreakevenSide(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("sign convention and breakeven anchor hold for all kinds", prop.ForAll(
		func(lowStrike, width, lowPremium, highPremium float64) bool {
			for _, kind := range models.AllStrategyKinds {
				low := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       kind.OptionType(),
					Strike:     lowStrike,
					Premium:    lowPremium,
				}
				high := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       kind.OptionType(),
					Strike:     lowStrike + width,
					Premium:    highPremium,
				}

				c, err := BuildCandidate(kind, low, high, CostModel{Quantity: 1})
				if err != nil {
					return false
				}

				soldPrem := c.SoldLeg.Quote.Premium
				boughtPrem := c.BoughtLeg.Quote.Premium
				if math.Abs(c.NetPremiumPerUnit-(soldPrem-boughtPrem)) > 1e-9 {
					return false
				}
				if kind.IsCredit() {
					if math.Abs(c.MaxProfitPerUnit-c.NetPremiumPerUnit) > 1e-9 {
						return false
					}
				} else if math.Abs(c.MaxLossPerUnit+c.NetPremiumPerUnit) > 1e-9 {
					return false
				}

				inner := c.SoldLeg.Quote.Strike
				if !kind.IsCredit() {
					inner = c.BoughtLeg.Quote.Strike
				}
				offset := math.Abs(c.NetPremiumPerUnit)
				want := inner + offset
				if kind.OptionType() == models.OptionPut {
					want = inner - offset
				}
				if math.Abs(c.Breakeven-want) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(10, 200),
		gen.Float64Range(0.5, 50),
		gen.Float64Range(0, 30),
		gen.Float64Range(0, 30),
	))

	properties.TestingRun(t)
}

// Property: The best candidate of a set does not depend on the order
// the candidates arrive in. Per-group enumeration may merge in any
// order without changing the pick.
func TestProperty_BestSelectionIsOrderIndependent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("selectBest is invariant under rotation", prop.ForAll(
		func(strikes []int, rotate int) bool {
			var candidates []*models.SpreadCandidate
			for _, s := range strikes {
				lowStrike := float64(100 + s)
				low := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       models.OptionCall,
					Strike:     lowStrike,
					Premium:    float64(s%7) + 3,
				}
				high := &models.OptionQuote{
					Underlying: "BOVA11",
					Type:       models.OptionCall,
					Strike:     lowStrike + 5,
					Premium:    float64(s % 3),
				}
				c, err := BuildCandidate(models.BearCallCredit, low, high, CostModel{Quantity: 10})
				if err != nil {
					return false
				}
				candidates = append(candidates, c)
			}
			if len(candidates) == 0 {
				return true
			}

			r := rotate % len(candidates)
			rotated := append(append([]*models.SpreadCandidate{}, candidates[r:]...), candidates[:r]...)

			// Duplicate inputs can produce equal-ranked candidates, so
			// compare by ranking keys rather than identity.
			a, b := selectBest(candidates), selectBest(rotated)
			return a.RiskRewardRatio == b.RiskRewardRatio &&
				a.MaxProfitTotal == b.MaxProfitTotal &&
				a.SoldLeg.Quote.Strike == b.SoldLeg.Quote.Strike
		},
		gen.SliceOfN(8, gen.IntRange(0, 40)),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}
