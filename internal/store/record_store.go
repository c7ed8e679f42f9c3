package store

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/util"
)

// ErrInvalidConstruction is returned by New when one of the record sets is absent (nil)
var ErrInvalidConstruction = errors.New("invalid record store construction")

// RecordStore holds the three datasets indexed for lookup. It is built once and
// never mutated, so concurrent readers need no locking.
type RecordStore struct {
	investments  map[string][]models.Investment  // by investor id
	transactions map[string][]models.Transaction // by investment id
	quotes       map[string][]models.Quote       // by security id, ascending date, one per day
	investors    []string
	stats        Stats
}

// Stats reports how many records went into the store
type Stats struct {
	Investments  int `json:"investments"`
	Transactions int `json:"transactions"`
	Quotes       int `json:"quotes"` // after same-day collapse
	Investors    int `json:"investors"`
	Securities   int `json:"securities"`
}

// New indexes the record sets. A nil slice means the set is absent and fails
// construction; an empty slice is a valid, empty dataset.
//
// Record dates are normalized to calendar days. Quotes for the same security on
// the same day collapse to the first one in input order.
func New(investments []models.Investment, transactions []models.Transaction, quotes []models.Quote) (*RecordStore, error) {
	if investments == nil {
		return nil, fmt.Errorf("%w: investments is nil", ErrInvalidConstruction)
	}
	if transactions == nil {
		return nil, fmt.Errorf("%w: transactions is nil", ErrInvalidConstruction)
	}
	if quotes == nil {
		return nil, fmt.Errorf("%w: quotes is nil", ErrInvalidConstruction)
	}

	s := &RecordStore{
		investments:  make(map[string][]models.Investment),
		transactions: make(map[string][]models.Transaction),
		quotes:       make(map[string][]models.Quote),
	}

	for _, inv := range investments {
		if inv == nil {
			continue
		}
		owner := inv.Owner()
		if _, seen := s.investments[owner]; !seen {
			s.investors = append(s.investors, owner)
		}
		s.investments[owner] = append(s.investments[owner], inv)
		s.stats.Investments++
	}
	sort.Strings(s.investors)

	for _, tx := range transactions {
		tx.Date = util.Day(tx.Date)
		s.transactions[tx.InvestmentID] = append(s.transactions[tx.InvestmentID], tx)
		s.stats.Transactions++
	}

	for _, q := range quotes {
		q.Date = util.Day(q.Date)
		s.quotes[q.ID] = append(s.quotes[q.ID], q)
	}
	for id, series := range s.quotes {
		// Stable sort so the first quote of a day in input order is the one kept.
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
		s.quotes[id] = slices.CompactFunc(series, func(a, b models.Quote) bool {
			return a.Date.Equal(b.Date)
		})
		s.stats.Quotes += len(s.quotes[id])
	}

	s.stats.Investors = len(s.investors)
	s.stats.Securities = len(s.quotes)
	return s, nil
}

// InvestmentsOf returns the investments owned by investorID, or nil if unknown.
// The returned slice must not be modified.
func (s *RecordStore) InvestmentsOf(investorID string) []models.Investment {
	return s.investments[investorID]
}

// TransactionsOf returns the transactions of investmentID, or nil if unknown.
// The returned slice must not be modified.
func (s *RecordStore) TransactionsOf(investmentID string) []models.Transaction {
	return s.transactions[investmentID]
}

// QuoteAsOf returns the most recent quote of securityID dated on or before day.
// It returns false if the security is unknown or all its quotes are later.
func (s *RecordStore) QuoteAsOf(securityID string, day time.Time) (models.Quote, bool) {
	series := s.quotes[securityID]
	if len(series) == 0 {
		return models.Quote{}, false
	}
	day = util.Day(day)

	// First index whose date is after day; the answer sits just before it.
	i := sort.Search(len(series), func(i int) bool {
		return series[i].Date.After(day)
	})
	if i == 0 {
		return models.Quote{}, false
	}
	return series[i-1], true
}

// Investors returns the sorted ids of every investor (including funds) that owns
// at least one investment.
func (s *RecordStore) Investors() []string {
	return slices.Clone(s.investors)
}

// Stats returns record counts
func (s *RecordStore) Stats() Stats {
	return s.stats
}
