package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/store"
	"github.com/epeers/portfoliocalc/internal/util"
)

// ValuationService values investor portfolios as of a date. It only reads from
// an immutable RecordStore, so every method is safe for concurrent use and
// returns the same result for the same inputs.
//
// Unknown investors, investments and securities value to zero. Results are not
// clamped: short positions or write-downs may produce negative values.
type ValuationService struct {
	store   *store.RecordStore
	workers int
}

// NewValuationService creates a new ValuationService.
// workers bounds the per-call fan-out; values <= 0 select DefaultWorkers.
func NewValuationService(rs *store.RecordStore, workers int) *ValuationService {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &ValuationService{
		store:   rs,
		workers: workers,
	}
}

// Store returns the record store backing the service
func (s *ValuationService) Store() *store.RecordStore {
	return s.store
}

// PortfolioValue returns the total value of investorID's portfolio on the given day:
// shares + funds + property.
func (s *ValuationService) PortfolioValue(investorID string, on time.Time) float64 {
	return s.SharesValue(investorID, on) + s.FundsValue(investorID, on) + s.PropertyValue(investorID, on)
}

// SharesValue values investorID's stock positions: for each stock with an ISIN,
// the net share count on the day times the latest quote at or before the day.
// Positions without a quote are worth 0.
func (s *ValuationService) SharesValue(investorID string, on time.Time) float64 {
	on = util.Day(on)
	return sumParallel(s.store.InvestmentsOf(investorID), s.workers, func(inv models.Investment) float64 {
		stock, ok := inv.(models.StockInvestment)
		if !ok || stock.ShareID == "" {
			return 0
		}
		quote, ok := s.store.QuoteAsOf(stock.ShareID, on)
		if !ok {
			return 0
		}
		return s.netShares(stock, on) * quote.PricePerShare
	})
}

// PropertyValue values investorID's real estate: the sum of estate and building
// transactions up to the day.
func (s *ValuationService) PropertyValue(investorID string, on time.Time) float64 {
	on = util.Day(on)
	return sumParallel(s.store.InvestmentsOf(investorID), s.workers, func(inv models.Investment) float64 {
		property, ok := inv.(models.RealEstateInvestment)
		if !ok || property.City == "" {
			return 0
		}
		return s.sumTransactions(property.InvestmentID, on, models.TransactionType.IsProperty)
	})
}

// FundsValue values investorID's fund stakes. Each distinct fund is valued as an
// investor in its own right through its shares and property only, then weighted
// by the percentage owned on the day.
//
// A fund's own fund stakes are not followed, so fund-of-fund chains resolve one
// level deep.
func (s *ValuationService) FundsValue(investorID string, on time.Time) float64 {
	on = util.Day(on)
	return sumParallel(s.fundStakes(investorID, on), s.workers, func(stake fundStake) float64 {
		return s.fundMarketValue(stake.fundID, on) * stake.percentage / 100
	})
}

// Breakdown computes all four figures for investorID and records warnings for
// conditions that silently resolve to zero.
func (s *ValuationService) Breakdown(ctx context.Context, investorID string, on time.Time) models.Valuation {
	defer TrackTime("Breakdown", time.Now())
	on = util.Day(on)

	v := models.Valuation{
		InvestorID:    investorID,
		Date:          util.FormatDate(on),
		SharesValue:   s.SharesValue(investorID, on),
		FundsValue:    s.FundsValue(investorID, on),
		PropertyValue: s.PropertyValue(investorID, on),
	}
	v.TotalValue = v.SharesValue + v.FundsValue + v.PropertyValue

	investments := s.store.InvestmentsOf(investorID)
	if len(investments) == 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnUnknownInvestor,
			Message: fmt.Sprintf("investor %q has no investments", investorID),
		})
		return v
	}
	for _, inv := range investments {
		stock, ok := inv.(models.StockInvestment)
		if !ok || stock.ShareID == "" {
			continue
		}
		if _, priced := s.store.QuoteAsOf(stock.ShareID, on); priced {
			continue
		}
		if shares := s.netShares(stock, on); shares != 0 {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnUnpricedSecurity,
				Message: fmt.Sprintf("no quote for %s on or before %s; %g shares valued at 0", stock.ShareID, v.Date, shares),
			})
		}
	}
	return v
}

type fundStake struct {
	fundID     string
	percentage float64 // 0-100, unclamped
}

// fundStakes returns one entry per distinct fund held by investorID, in first-seen
// order, with the ownership percentage summed over all of the investor's stakes
// in that fund.
func (s *ValuationService) fundStakes(investorID string, on time.Time) []fundStake {
	var stakes []fundStake
	index := make(map[string]int)
	for _, inv := range s.store.InvestmentsOf(investorID) {
		fund, ok := inv.(models.FundInvestment)
		if !ok || fund.FundInvestor == "" {
			continue
		}
		i, seen := index[fund.FundInvestor]
		if !seen {
			i = len(stakes)
			index[fund.FundInvestor] = i
			stakes = append(stakes, fundStake{fundID: fund.FundInvestor})
		}
		stakes[i].percentage += s.sumTransactions(fund.InvestmentID, on, isPercentage)
	}
	return stakes
}

// fundMarketValue deliberately skips FundsValue; see FundsValue.
func (s *ValuationService) fundMarketValue(fundID string, on time.Time) float64 {
	return s.SharesValue(fundID, on) + s.PropertyValue(fundID, on)
}

func (s *ValuationService) netShares(stock models.StockInvestment, on time.Time) float64 {
	return s.sumTransactions(stock.InvestmentID, on, isShares)
}

// sumTransactions adds the values of investmentID's transactions dated on or
// before the day whose type matches.
func (s *ValuationService) sumTransactions(investmentID string, on time.Time, match func(models.TransactionType) bool) float64 {
	var total float64
	for _, tx := range s.store.TransactionsOf(investmentID) {
		if tx.Date.After(on) || !match(tx.Type) {
			continue
		}
		total += tx.Value
	}
	return total
}

func isShares(t models.TransactionType) bool     { return t == models.TransactionTypeShares }
func isPercentage(t models.TransactionType) bool { return t == models.TransactionTypePercentage }
