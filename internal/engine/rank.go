package engine

import (
	"sort"

	"spread-optimizer/internal/models"
)

// topLimit caps the evaluated-candidate list carried on a result.
const topLimit = 5

// betterCandidate is the total order used for ranking: higher
// risk/reward ratio first, ties broken by larger max profit total, then
// by the smaller sold strike. The last tie-break makes ranking
// deterministic regardless of enumeration order.
func betterCandidate(a, b *models.SpreadCandidate) bool {
	if a.RiskRewardRatio != b.RiskRewardRatio {
		return a.RiskRewardRatio > b.RiskRewardRatio
	}
	if a.MaxProfitTotal != b.MaxProfitTotal {
		return a.MaxProfitTotal > b.MaxProfitTotal
	}
	return a.SoldLeg.Quote.Strike < b.SoldLeg.Quote.Strike
}

// rankCandidates applies the feasibility gates and selects the best
// candidate from the full set of one run.
//
// Candidates with non-positive risk (undefined ratio) or non-positive
// profit are dropped outright; no denominator is ever clamped. The
// survivors split into qualified (ratio >= minRiskReward) and
// profitable-but-unqualified. The best qualified candidate wins; failing
// that, the best unqualified one is surfaced so the caller can tell
// "below the quality bar" from "nothing profitable".
func rankCandidates(candidates []*models.SpreadCandidate, minRiskReward float64) *models.OptimizationResult {
	var qualified, unqualified []*models.SpreadCandidate
	for _, c := range candidates {
		if c.MaxLossTotal <= 0 || c.MaxProfitTotal <= 0 {
			continue
		}
		if c.RiskRewardRatio >= minRiskReward {
			qualified = append(qualified, c)
		} else {
			unqualified = append(unqualified, c)
		}
	}

	res := &models.OptimizationResult{Evaluated: len(candidates)}

	switch {
	case len(qualified) > 0:
		res.Outcome = models.OutcomeBest
		res.Best = selectBest(qualified)
	case len(unqualified) > 0:
		res.Outcome = models.OutcomeBestUnqualified
		res.Best = selectBest(unqualified)
	default:
		res.Outcome = models.OutcomeNoneFound
	}

	res.Top = topCandidates(append(qualified, unqualified...))
	return res
}

// selectBest is a running max over the candidate set. The comparison is
// associative and order-independent, so callers may feed it merged
// per-group results in any order.
func selectBest(candidates []*models.SpreadCandidate) *models.SpreadCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if betterCandidate(c, best) {
			best = c
		}
	}
	return best
}

// topCandidates returns the highest-ranked profitable candidates, best
// first, capped at topLimit.
func topCandidates(profitable []*models.SpreadCandidate) []*models.SpreadCandidate {
	sorted := make([]*models.SpreadCandidate, len(profitable))
	copy(sorted, profitable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return betterCandidate(sorted[i], sorted[j])
	})
	if len(sorted) > topLimit {
		sorted = sorted[:topLimit]
	}
	return sorted
}
