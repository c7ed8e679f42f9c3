package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/portfoliocalc/internal/util"
	"golang.org/x/sync/errgroup"
)

// MaxHistoryDays caps the number of days a single history request may span
const MaxHistoryDays = 3660

var (
	ErrInvalidRange = errors.New("end date is before start date")
	ErrRangeTooLong = errors.New("date range too long")
)

// HistoryService computes portfolio values over a range of dates
type HistoryService struct {
	valuationSvc *ValuationService
	workers      int
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(valuationSvc *ValuationService, workers int) *HistoryService {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &HistoryService{
		valuationSvc: valuationSvc,
		workers:      workers,
	}
}

// DailyValue represents portfolio value on a specific date
type DailyValue struct {
	Date  time.Time
	Value float64
}

// GainResult contains gain calculations
type GainResult struct {
	StartValue  float64
	EndValue    float64
	GainValue   float64
	GainPercent float64
}

// DailyValues returns investorID's total portfolio value for every calendar day
// in [from, to], in date order.
func (s *HistoryService) DailyValues(ctx context.Context, investorID string, from, to time.Time) ([]DailyValue, error) {
	defer TrackTime("DailyValues", time.Now())

	days, err := dayRange(from, to)
	if err != nil {
		return nil, err
	}

	values := make([]DailyValue, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			values[i] = DailyValue{
				Date:  day,
				Value: s.valuationSvc.PortfolioValue(investorID, day),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute daily values: %w", err)
	}
	return values, nil
}

// ComputeGain calculates the absolute and percentage change in investorID's
// portfolio value between start and end
func (s *HistoryService) ComputeGain(investorID string, start, end time.Time) (*GainResult, error) {
	start, end = util.Day(start), util.Day(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	startValue := s.valuationSvc.PortfolioValue(investorID, start)
	endValue := s.valuationSvc.PortfolioValue(investorID, end)

	gainValue := endValue - startValue
	gainPercent := 0.0
	if startValue != 0 {
		gainPercent = (gainValue / startValue) * 100
	}

	return &GainResult{
		StartValue:  startValue,
		EndValue:    endValue,
		GainValue:   gainValue,
		GainPercent: gainPercent,
	}, nil
}

func dayRange(from, to time.Time) ([]time.Time, error) {
	from, to = util.Day(from), util.Day(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	n := int(to.Sub(from).Hours()/24) + 1
	if n > MaxHistoryDays {
		return nil, fmt.Errorf("%w: %d days requested, limit is %d", ErrRangeTooLong, n, MaxHistoryDays)
	}

	days := make([]time.Time, n)
	for i := range days {
		days[i] = from.AddDate(0, 0, i)
	}
	return days, nil
}
