package models

// OptimizationRequest holds the inputs for one optimization run.
type OptimizationRequest struct {
	Underlying string
	// SpotPrice is informational only; payoff math never uses it.
	SpotPrice float64
	// Quantity is contracts per leg.
	Quantity int
	// FeesTotal is a flat cost applied once per spread.
	FeesTotal float64
	// Strategies restricts the kinds considered; empty means all four.
	Strategies []StrategyKind
	// MinRiskReward is the quality gate on the net risk/reward ratio.
	MinRiskReward float64
}

// Kinds returns the strategy kinds the request allows.
func (r *OptimizationRequest) Kinds() []StrategyKind {
	if len(r.Strategies) == 0 {
		return AllStrategyKinds
	}
	return r.Strategies
}

// Outcome tags the result of an optimization run.
type Outcome string

const (
	// OutcomeBest means a candidate cleared the quality gate.
	OutcomeBest Outcome = "BEST"
	// OutcomeBestUnqualified means no candidate cleared the gate but at
	// least one was profitable; Best holds the closest one.
	OutcomeBestUnqualified Outcome = "BEST_UNQUALIFIED"
	// OutcomeNoneFound means no profitable candidate exists.
	OutcomeNoneFound Outcome = "NONE_FOUND"
)

// OptimizationResult is the structured outcome of one run. Callers must
// branch on Outcome rather than checking Best for nil.
type OptimizationResult struct {
	Underlying string
	Outcome    Outcome
	// Best is nil only when Outcome is OutcomeNoneFound.
	Best *SpreadCandidate
	// Top holds the highest-ranked profitable candidates, best first,
	// capped at five entries.
	Top []*SpreadCandidate
	// Evaluated is the number of candidates constructed before filtering.
	Evaluated int
}
