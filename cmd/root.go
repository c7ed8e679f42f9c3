package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/epeers/portfoliocalc/config"
	"github.com/epeers/portfoliocalc/internal/database"
	"github.com/epeers/portfoliocalc/internal/repository"
	"github.com/epeers/portfoliocalc/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "portfoliocalc",
	Short:         "Value investor portfolios as of any date",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.ConfigureLogging()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, consoleCmd, valueCmd, importCmd)
}

// Execute runs the command selected by os.Args
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// loadValuation reads the configured data source and returns the engine over it
func loadValuation(ctx context.Context) (*services.ValuationService, error) {
	var reader services.RecordReader
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		reader = repository.NewPostgresSource(db.Pool)
	default:
		src, err := repository.NewCSVSource(cfg.InvestmentsFile, cfg.TransactionsFile, cfg.QuotesFile, cfg.CSVDelimiter)
		if err != nil {
			return nil, err
		}
		reader = src
	}

	log.WithField("source", cfg.DataSource).Info("loading records")
	return services.NewLoaderService(reader, cfg.Workers).Load(ctx)
}
