package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/store"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RecordReader materializes the three record sets from a data source.
// Implementations must return non-nil slices on success and honor ctx.
type RecordReader interface {
	Investments(ctx context.Context) ([]models.Investment, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Quotes(ctx context.Context) ([]models.Quote, error)
}

// LoaderService reads a data source into a RecordStore and wraps it in a ValuationService
type LoaderService struct {
	reader  RecordReader
	workers int
}

// NewLoaderService creates a new LoaderService
func NewLoaderService(reader RecordReader, workers int) *LoaderService {
	return &LoaderService{
		reader:  reader,
		workers: workers,
	}
}

// Records holds the three record sets as read from a data source
type Records struct {
	Investments  []models.Investment
	Transactions []models.Transaction
	Quotes       []models.Quote
}

// Read fetches investments, transactions and quotes concurrently. The first
// failure cancels the remaining reads.
func (s *LoaderService) Read(ctx context.Context) (*Records, error) {
	var recs Records

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if recs.Investments, err = s.reader.Investments(gctx); err != nil {
			return fmt.Errorf("failed to load investments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recs.Transactions, err = s.reader.Transactions(gctx); err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recs.Quotes, err = s.reader.Quotes(gctx); err != nil {
			return fmt.Errorf("failed to load quotes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := []struct {
		kind string
		n    int
	}{
		{"investments", len(recs.Investments)},
		{"transactions", len(recs.Transactions)},
		{"quotes", len(recs.Quotes)},
	}
	for _, c := range counts {
		if c.n == 0 {
			log.Warnf("no %s loaded", c.kind)
			AddWarning(ctx, models.Warning{
				Code:    models.WarnEmptyDataset,
				Message: fmt.Sprintf("no %s loaded", c.kind),
			})
		}
	}
	return &recs, nil
}

// Load reads the data source and builds a ValuationService over it
func (s *LoaderService) Load(ctx context.Context) (*ValuationService, error) {
	defer TrackTime("Load", time.Now())

	recs, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}

	rs, err := store.New(recs.Investments, recs.Transactions, recs.Quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to build record store: %w", err)
	}

	stats := rs.Stats()
	log.WithFields(log.Fields{
		"investments":  stats.Investments,
		"transactions": stats.Transactions,
		"quotes":       stats.Quotes,
		"investors":    stats.Investors,
		"securities":   stats.Securities,
	}).Info("records loaded")

	return NewValuationService(rs, s.workers), nil
}
