package cli

import (
	"github.com/spf13/cobra"
)

// addHelpCommands adds documentation commands.
func addHelpCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExamplesCmd(app))
	rootCmd.AddCommand(newStrategiesCmd(app))
}

func newExamplesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			examples := []struct {
				desc string
				cmd  string
			}{
				{"Import a cleaned option-chain CSV export",
					"spreads import opcoes_final_tratado.csv"},
				{"List stored underlyings",
					"spreads quotes"},
				{"Inspect the stored quotes for one underlying",
					"spreads quotes BOVA11"},
				{"Find the best vertical spread for an underlying",
					"spreads optimize BOVA11 --spot 114.50"},
				{"Restrict the search to bull put credit spreads",
					"spreads optimize BOVA11 --spot 114.50 --strategy bull-put"},
				{"Raise the quality gate and the lot size",
					"spreads optimize BOVA11 --spot 114.50 --min-risk-reward 2.0 --quantity 1000"},
				{"Price a bear call spread you already picked",
					"spreads manual PETR4 --sold-strike 118 --sold-premium 3.50 --bought-strike 123 --bought-premium 1.00 --quantity 1000 --fees-per-leg 0.05"},
				{"Machine-readable output for scripting",
					"spreads optimize BOVA11 --spot 114.50 --json"},
			}

			for _, e := range examples {
				output.Printf("# %s\n", e.desc)
				output.Printf("  %s\n\n", e.cmd)
			}
			return nil
		},
	}
}

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "Explain the four vertical spread strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			strategies := []struct {
				name string
				legs string
				view string
			}{
				{"bull-call (debit)", "buy the lower call, sell the higher call",
					"Bullish. Pays a net debit; max loss is the debit, max profit the remaining width."},
				{"bear-call (credit)", "sell the lower call, buy the higher call",
					"Bearish to neutral. Collects a net credit; max profit is the credit, max loss the remaining width."},
				{"bull-put (credit)", "sell the higher put, buy the lower put",
					"Bullish to neutral. Collects a net credit; profits if the underlying stays above the sold strike."},
				{"bear-put (debit)", "buy the higher put, sell the lower put",
					"Bearish. Pays a net debit; profits as the underlying falls below the bought strike."},
			}

			for _, s := range strategies {
				output.Printf("%s\n", s.name)
				output.Printf("  Legs: %s\n", s.legs)
				output.Printf("  %s\n\n", s.view)
			}

			output.Println("Both legs always share the underlying, expiry, and option type.")
			output.Println("Breakeven sits a net-premium away from the inner strike.")
			return nil
		},
	}
}
