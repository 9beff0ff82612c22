package engine

import (
	"runtime"

	"github.com/rs/zerolog"

	"spread-optimizer/internal/errors"
	"spread-optimizer/internal/models"
	"spread-optimizer/internal/performance"
)

// Optimizer is the single entry point for spread optimization runs. It
// is stateless between calls and safe for concurrent use.
type Optimizer struct {
	logger zerolog.Logger
}

// NewOptimizer creates an optimizer that logs through the given logger.
func NewOptimizer(logger zerolog.Logger) *Optimizer {
	return &Optimizer{logger: logger}
}

// Optimize enumerates every allowed spread candidate for the request's
// underlying, computes its metrics and net Greeks, and returns the best
// one under the feasibility and quality gates. It has no side effects
// beyond its return value; the quote table is never mutated.
func (o *Optimizer) Optimize(table *models.QuoteTable, req *models.OptimizationRequest) (*models.OptimizationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	filtered := table.FilterUnderlying(req.Underlying)
	if filtered.Len() == 0 {
		return nil, errors.Wrapf(errors.ErrNoQuotesForUnderlying, "underlying %q", req.Underlying)
	}

	cost := CostModel{Quantity: req.Quantity, FeesTotal: req.FeesTotal}
	kinds := req.Kinds()
	groups := groupQuotes(filtered)

	o.logger.Debug().
		Str("underlying", req.Underlying).
		Int("quotes", filtered.Len()).
		Int("groups", len(groups)).
		Int("strategies", len(kinds)).
		Msg("Enumerating spread candidates")

	candidates := enumerateAll(groups, kinds, cost)
	result := rankCandidates(candidates, req.MinRiskReward)
	result.Underlying = req.Underlying

	o.logger.Info().
		Str("underlying", req.Underlying).
		Int("evaluated", result.Evaluated).
		Str("outcome", string(result.Outcome)).
		Msg("Optimization run complete")

	return result, nil
}

// enumerateAll fans candidate construction out across groups. Groups
// are mutually independent, so each worker writes only its own group's
// slot; results are merged in group order before ranking, keeping runs
// deterministic.
func enumerateAll(groups []*quoteGroup, kinds []models.StrategyKind, cost CostModel) []*models.SpreadCandidate {
	perGroup := make([][]*models.SpreadCandidate, len(groups))

	performance.ParallelFor(runtime.NumCPU(), len(groups), func(i int) {
		if !groups[i].pairable() {
			return
		}
		perGroup[i] = enumerateGroup(groups[i], kinds, cost)
	})

	var all []*models.SpreadCandidate
	for _, cs := range perGroup {
		all = append(all, cs...)
	}
	return all
}

func validateRequest(req *models.OptimizationRequest) error {
	if req.Quantity <= 0 {
		return errors.NewRequestError("quantity", req.Quantity, "must be positive")
	}
	if req.SpotPrice <= 0 {
		return errors.NewRequestError("spotPrice", req.SpotPrice, "must be positive")
	}
	if req.MinRiskReward < 0 {
		return errors.NewRequestError("minRiskReward", req.MinRiskReward, "must not be negative")
	}
	if req.FeesTotal < 0 {
		return errors.NewRequestError("feesTotal", req.FeesTotal, "must not be negative")
	}
	for _, k := range req.Strategies {
		if !k.Valid() {
			return errors.NewRequestError("strategies", k, "unknown strategy kind")
		}
	}
	return nil
}
