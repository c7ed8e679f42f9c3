package cmd

import (
	"errors"
	"fmt"

	"github.com/epeers/portfoliocalc/internal/database"
	"github.com/epeers/portfoliocalc/internal/repository"
	"github.com/epeers/portfoliocalc/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the postgres record tables with the contents of the CSV files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.PGURL == "" {
			return errors.New("PG_URL environment variable is required for import")
		}
		ctx := cmd.Context()

		src, err := repository.NewCSVSource(cfg.InvestmentsFile, cfg.TransactionsFile, cfg.QuotesFile, cfg.CSVDelimiter)
		if err != nil {
			return err
		}
		recs, err := services.NewLoaderService(src, cfg.Workers).Read(ctx)
		if err != nil {
			return err
		}

		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return err
		}
		if err := repository.NewPostgresSource(db.Pool).Replace(ctx, recs.Investments, recs.Transactions, recs.Quotes); err != nil {
			return fmt.Errorf("failed to import records: %w", err)
		}

		log.WithFields(log.Fields{
			"investments":  len(recs.Investments),
			"transactions": len(recs.Transactions),
			"quotes":       len(recs.Quotes),
		}).Info("import finished")
		return nil
	},
}
