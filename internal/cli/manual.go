package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"spread-optimizer/internal/engine"
)

func newManualCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual <underlying>",
		Short: "Compute one bear call credit spread from known legs",
		Long: `Compute the full metric set for a single bear call credit spread
whose legs the caller already picked, bypassing the enumerator. Fees
are charged per leg per unit, as on a real fill.`,
		Example: `  spreads manual BOVA11 --sold-strike 118 --sold-premium 3.50 \
    --bought-strike 123 --bought-premium 1.00 --quantity 1000 --fees-per-leg 0.05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			soldStrike, _ := cmd.Flags().GetFloat64("sold-strike")
			soldPremium, _ := cmd.Flags().GetFloat64("sold-premium")
			boughtStrike, _ := cmd.Flags().GetFloat64("bought-strike")
			boughtPremium, _ := cmd.Flags().GetFloat64("bought-premium")
			quantity, _ := cmd.Flags().GetInt("quantity")
			feesPerLeg, _ := cmd.Flags().GetFloat64("fees-per-leg")
			spot, _ := cmd.Flags().GetFloat64("spot")

			input := engine.ManualSpreadInput{
				Underlying:    strings.ToUpper(args[0]),
				SoldStrike:    soldStrike,
				SoldPremium:   soldPremium,
				BoughtStrike:  boughtStrike,
				BoughtPremium: boughtPremium,
				Quantity:      quantity,
				FeesPerLeg:    feesPerLeg,
			}

			candidate, err := engine.ManualBearCall(input)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(candidate)
			}
			renderCandidate(output, candidate, spot, quantity)
			return nil
		},
	}

	cmd.Flags().Float64("sold-strike", 0, "Strike of the sold call (required)")
	cmd.Flags().Float64("sold-premium", 0, "Premium received on the sold call (required)")
	cmd.Flags().Float64("bought-strike", 0, "Strike of the bought call (required)")
	cmd.Flags().Float64("bought-premium", 0, "Premium paid on the bought call (required)")
	cmd.Flags().Int("quantity", app.Config.Optimizer.Quantity, "Contracts per leg")
	cmd.Flags().Float64("fees-per-leg", 0, "Fees per contract per leg")
	cmd.Flags().Float64("spot", 0, "Current price of the underlying (informational)")
	cmd.MarkFlagRequired("sold-strike")
	cmd.MarkFlagRequired("sold-premium")
	cmd.MarkFlagRequired("bought-strike")
	cmd.MarkFlagRequired("bought-premium")

	return cmd
}
