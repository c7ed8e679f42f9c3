package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/epeers/portfoliocalc/internal/fixtures"
	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newFixtureStore(t *testing.T) *RecordStore {
	t.Helper()
	s, err := New(fixtures.Investments(), fixtures.Transactions(), fixtures.Quotes())
	require.NoError(t, err)
	return s
}

func TestNew_EmptyInputs(t *testing.T) {
	s, err := New([]models.Investment{}, []models.Transaction{}, []models.Quote{})
	require.NoError(t, err)

	assert.Empty(t, s.InvestmentsOf("Investor0"))
	assert.Empty(t, s.TransactionsOf("Investment5815"))
	_, ok := s.QuoteAsOf("ISIN26", date(2020, 1, 1))
	assert.False(t, ok)
	assert.Empty(t, s.Investors())
	assert.Equal(t, Stats{}, s.Stats())
}

func TestNew_NilInputs(t *testing.T) {
	testCases := []struct {
		name         string
		investments  []models.Investment
		transactions []models.Transaction
		quotes       []models.Quote
		mention      string
	}{
		{"nil investments", nil, []models.Transaction{}, []models.Quote{}, "investments"},
		{"nil transactions", []models.Investment{}, nil, []models.Quote{}, "transactions"},
		{"nil quotes", []models.Investment{}, []models.Transaction{}, nil, "quotes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.investments, tc.transactions, tc.quotes)
			if !errors.Is(err, ErrInvalidConstruction) {
				t.Fatalf("expected ErrInvalidConstruction, got %v", err)
			}
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), tc.mention)
		})
	}
}

func TestInvestmentsOf_GroupsByInvestor(t *testing.T) {
	s := newFixtureStore(t)

	ids := func(invs []models.Investment) []string {
		var out []string
		for _, inv := range invs {
			out = append(out, inv.ID())
		}
		return out
	}

	want := []string{
		"Investment44789", "Investment48878", "Investment5815", "Investment12407",
		"Investment22216", "Investment29478", "Investment27611", "Investment29173",
	}
	if diff := cmp.Diff(want, ids(s.InvestmentsOf("Investor0"))); diff != "" {
		t.Errorf("Investor0 investments mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Investment21900", "Investment29522"}, ids(s.InvestmentsOf("Fonds1")))
	assert.Nil(t, s.InvestmentsOf("NonExistentInvestor"))
}

func TestTransactionsOf(t *testing.T) {
	s := newFixtureStore(t)

	txs := s.TransactionsOf("Investment27611")
	require.Len(t, txs, 4)
	assert.Equal(t, models.TransactionTypeEstate, txs[0].Type)
	assert.Equal(t, 340690.0, txs[0].Value)
	assert.Nil(t, s.TransactionsOf("Investment00000"))
}

func TestQuoteAsOf(t *testing.T) {
	s := newFixtureStore(t)

	testCases := []struct {
		name      string
		security  string
		on        time.Time
		wantOK    bool
		wantPrice float64
	}{
		{"exact date", "ISIN26", date(2016, 7, 1), true, 97.949},
		{"between quotes", "ISIN26", date(2018, 1, 1), true, 99.5346},
		{"after last quote", "ISIN26", date(2030, 1, 1), true, 105.1563},
		{"before first quote", "ISIN26", date(2016, 6, 27), false, 0},
		{"unknown security", "ISIN999", date(2020, 1, 1), false, 0},
		{"unsorted input is ordered", "ISIN130", date(2018, 1, 1), true, 18.03},
		{"unsorted input latest", "ISIN130", date(2030, 1, 1), true, 17.57},
		{"clock on query date is ignored", "ISIN62", time.Date(2019, 11, 1, 23, 59, 0, 0, time.UTC), true, 125},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, ok := s.QuoteAsOf(tc.security, tc.on)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantPrice, q.PricePerShare)
			if ok {
				assert.False(t, q.Date.After(tc.on))
			}
		})
	}
}

func TestQuoteAsOf_SameDayKeepsFirst(t *testing.T) {
	quotes := []models.Quote{
		{ID: "ISIN1", Date: date(2020, 1, 2), PricePerShare: 20},
		{ID: "ISIN1", Date: date(2020, 1, 1), PricePerShare: 10},
		{ID: "ISIN1", Date: time.Date(2020, 1, 2, 15, 0, 0, 0, time.UTC), PricePerShare: 21},
		{ID: "ISIN1", Date: date(2020, 1, 2), PricePerShare: 22},
	}
	s, err := New([]models.Investment{}, []models.Transaction{}, quotes)
	require.NoError(t, err)

	q, ok := s.QuoteAsOf("ISIN1", date(2020, 1, 5))
	require.True(t, ok)
	assert.Equal(t, 20.0, q.PricePerShare)
	assert.Equal(t, 2, s.Stats().Quotes)

	// Repeated builds from the same input keep the same quote.
	for i := 0; i < 10; i++ {
		again, err := New([]models.Investment{}, []models.Transaction{}, quotes)
		require.NoError(t, err)
		q2, _ := again.QuoteAsOf("ISIN1", date(2020, 1, 5))
		assert.Equal(t, q, q2)
	}
}

func TestInvestorsAndStats(t *testing.T) {
	s := newFixtureStore(t)

	want := []string{"Fonds1", "Fonds12", "Investor0", "Investor1", "Investor2"}
	assert.Equal(t, want, s.Investors())

	// callers cannot mutate the store through the returned slice
	got := s.Investors()
	got[0] = "changed"
	assert.Equal(t, want, s.Investors())

	stats := s.Stats()
	assert.Equal(t, 14, stats.Investments)
	assert.Equal(t, 64, stats.Transactions)
	assert.Equal(t, 31, stats.Quotes)
	assert.Equal(t, 5, stats.Investors)
	assert.Equal(t, 4, stats.Securities)
}

func TestRecordStore_ConcurrentReads(t *testing.T) {
	s := newFixtureStore(t)

	var wg sync.WaitGroup
	n := 50
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = s.InvestmentsOf("Investor0")
			_ = s.TransactionsOf("Investment5815")
			if _, ok := s.QuoteAsOf("ISIN26", date(2018, 1, 1)); !ok {
				t.Errorf("expected a quote")
			}
		}()
	}
	wg.Wait()
}
