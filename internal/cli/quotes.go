package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"spread-optimizer/internal/ingest"
	"spread-optimizer/internal/logging"
	"spread-optimizer/pkg/utils"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import a cleaned option-chain CSV into the quote store",
		Long: `Load a cleaned option-chain CSV export, normalize premiums and
optional fields, and persist the quotes. Existing quotes for each
imported underlying are replaced.`,
		Example: `  spreads import opcoes_final_tratado.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			path := args[0]
			loader := ingest.NewLoader(logging.WithOperation(app.Logger, "import"))
			table, rep, err := loader.LoadFile(path)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}

			for _, underlying := range table.Underlyings() {
				quotes := table.FilterUnderlying(underlying)
				if err := app.Store.ReplaceUnderlying(ctx, underlying, quotes.Quotes); err != nil {
					output.Error("Failed to store quotes for %s: %v", underlying, err)
					return err
				}
			}

			logging.LogImport(app.Logger, path, rep.Loaded, rep.Skipped)
			output.Success("Imported %d quotes (%d rows skipped) from %s", rep.Loaded, rep.Skipped, path)
			return nil
		},
	}
	return cmd
}

func newQuotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes [underlying]",
		Short: "List stored option quotes",
		Example: `  spreads quotes
  spreads quotes BOVA11`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if len(args) == 0 {
				underlyings, err := app.Store.Underlyings(ctx)
				if err != nil {
					output.Error("Failed to list underlyings: %v", err)
					return err
				}
				if len(underlyings) == 0 {
					output.Warning("No quotes stored. Run 'spreads import' first.")
					return nil
				}
				if output.IsJSON() {
					return output.JSON(underlyings)
				}
				output.Println("Stored underlyings:")
				for _, u := range underlyings {
					output.Printf("  %s\n", u)
				}
				return nil
			}

			underlying := strings.ToUpper(args[0])
			table, err := app.Store.QuotesForUnderlying(ctx, underlying)
			if err != nil {
				output.Error("Failed to load quotes: %v", err)
				return err
			}
			if table.Len() == 0 {
				output.Warning("No quotes stored for %s.", underlying)
				return nil
			}
			if output.IsJSON() {
				return output.JSON(table.Quotes)
			}

			tw := tablewriter.NewWriter(output.Writer())
			tw.SetHeader([]string{"Ticker", "Type", "Strike", "Premium", "IV", "Delta", "Expiry"})
			tw.SetAlignment(tablewriter.ALIGN_RIGHT)
			tw.SetColumnSeparator("")
			for _, q := range table.Quotes {
				expiry := ""
				if q.Expiry != nil {
					expiry = q.Expiry.Format("2006-01-02")
				}
				tw.Append([]string{
					q.Ticker,
					string(q.Type),
					utils.FormatBRL(q.Strike),
					utils.FormatBRL(q.Premium),
					formatOptionalPct(q.ImpliedVol),
					utils.FormatOptionalGreek(q.Delta),
					expiry,
				})
			}
			tw.Render()
			output.Printf("%d quotes for %s\n", table.Len(), underlying)
			return nil
		},
	}
	return cmd
}

func formatOptionalPct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}
