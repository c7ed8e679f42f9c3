package cmd

import (
	"fmt"
	"os"

	"github.com/epeers/portfoliocalc/config"
	"github.com/epeers/portfoliocalc/internal/handlers"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console [investments.csv transactions.csv quotes.csv]",
	Short: "Answer date;investorId queries typed on stdin",
	Long: `Reads lines of the form "date;investorId" and prints the portfolio value of
the investor on that date. An empty line ends the session.

With no arguments the configured data source is used. Three arguments name the
investments, transactions and quotes files, in that order.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 0 or 3 file arguments, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 3 {
			cfg.DataSource = config.DataSourceCSV
			cfg.InvestmentsFile, cfg.TransactionsFile, cfg.QuotesFile = args[0], args[1], args[2]
		}

		valuationSvc, err := loadValuation(cmd.Context())
		if err != nil {
			return err
		}
		return handlers.NewConsoleHandler(valuationSvc, cfg.Locale).Run(cmd.Context(), os.Stdin, os.Stdout)
	},
}
