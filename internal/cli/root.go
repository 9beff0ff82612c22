package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"spread-optimizer/internal/config"
	"spread-optimizer/internal/logging"
	"spread-optimizer/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.QuoteStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "spreads",
		Short: "Vertical option spread calculator and optimizer",
		Long: `spreads evaluates option quotes and constructs two-leg vertical
spreads (bull/bear, call/put, credit/debit), computing risk, reward,
breakeven, and net Greeks for each candidate and selecting the best
risk-adjusted one under a quality gate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logging.SetDebugLevel()
			}
			// The manual calculator and documentation commands need no
			// quote storage.
			switch cmd.Name() {
			case "manual", "version", "examples", "strategies":
				return nil
			}
			s, err := store.NewSQLiteStore(app.Config.Database.Path)
			if err != nil {
				return fmt.Errorf("opening quote store: %w", err)
			}
			app.Store = s
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(newImportCmd(app))
	rootCmd.AddCommand(newOptimizeCmd(app))
	rootCmd.AddCommand(newManualCmd(app))
	rootCmd.AddCommand(newQuotesCmd(app))
	rootCmd.AddCommand(newVersionCmd())
	addHelpCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spreads %s\n", Version)
		},
	}
}
