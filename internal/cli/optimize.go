package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"spread-optimizer/internal/engine"
	"spread-optimizer/internal/logging"
	"spread-optimizer/internal/models"
)

func newOptimizeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize <underlying>",
		Short: "Find the best vertical spread for an underlying",
		Long: `Enumerate every strike pair in the stored quote table for an
underlying, compute metrics for each allowed strategy, and report the
candidate with the best net risk/reward ratio above the quality gate.`,
		Example: `  spreads optimize BOVA11 --spot 120.50
  spreads optimize VALE3 --spot 60.00 --strategy bear-call
  spreads optimize PETR4 --spot 38.20 --quantity 200 --min-risk-reward 1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			underlying := strings.ToUpper(args[0])
			spot, _ := cmd.Flags().GetFloat64("spot")
			strategy, _ := cmd.Flags().GetString("strategy")
			quantity, _ := cmd.Flags().GetInt("quantity")
			fees, _ := cmd.Flags().GetFloat64("fees")
			minRR, _ := cmd.Flags().GetFloat64("min-risk-reward")

			kinds, err := parseStrategyFilter(strategy)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			table, err := app.Store.QuotesForUnderlying(ctx, underlying)
			if err != nil {
				output.Error("Failed to load quotes: %v", err)
				return err
			}

			req := &models.OptimizationRequest{
				Underlying:    underlying,
				SpotPrice:     spot,
				Quantity:      quantity,
				FeesTotal:     fees,
				Strategies:    kinds,
				MinRiskReward: minRR,
			}

			logger := logging.WithUnderlying(app.Logger, underlying)
			optimizer := engine.NewOptimizer(logger)
			result, err := optimizer.Optimize(table, req)
			if err != nil {
				output.Error("Optimization failed: %v", err)
				return err
			}

			bestRatio := 0.0
			if result.Best != nil {
				bestRatio = result.Best.RiskRewardRatio
			}
			logging.LogOptimization(app.Logger, underlying, string(result.Outcome),
				result.Evaluated, bestRatio)

			if output.IsJSON() {
				return output.JSON(result)
			}
			renderResult(output, result, req)
			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "Current price of the underlying (required)")
	cmd.Flags().String("strategy", "all", "Strategy filter: bull-call, bear-call, bull-put, bear-put, or all")
	cmd.Flags().Int("quantity", app.Config.Optimizer.Quantity, "Contracts per leg")
	cmd.Flags().Float64("fees", app.Config.Optimizer.FeesTotal, "Flat fees per spread")
	cmd.Flags().Float64("min-risk-reward", app.Config.Optimizer.MinRiskReward, "Minimum net risk/reward ratio")
	cmd.MarkFlagRequired("spot")

	return cmd
}

// parseStrategyFilter maps a CLI strategy name onto the engine's kinds.
func parseStrategyFilter(s string) ([]models.StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return nil, nil
	case "bull-call":
		return []models.StrategyKind{models.BullCallDebit}, nil
	case "bear-call":
		return []models.StrategyKind{models.BearCallCredit}, nil
	case "bull-put":
		return []models.StrategyKind{models.BullPutCredit}, nil
	case "bear-put":
		return []models.StrategyKind{models.BearPutDebit}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (want bull-call, bear-call, bull-put, bear-put, or all)", s)
}
