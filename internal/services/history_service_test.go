package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/epeers/portfoliocalc/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyValues(t *testing.T) {
	svc := NewHistoryService(newFixtureValuation(t, 0), 0)

	values, err := svc.DailyValues(context.Background(), "Investor2", date(2016, 12, 19), date(2016, 12, 21))
	require.NoError(t, err)
	require.Len(t, values, 3)

	assert.Equal(t, date(2016, 12, 19), values[0].Date)
	assert.Equal(t, date(2016, 12, 21), values[2].Date)
	assert.Equal(t, 0.0, values[0].Value)
	assert.Equal(t, 544187.0, values[1].Value)
	assert.Equal(t, 544187.0, values[2].Value)
}

func TestDailyValues_MatchesPointValuations(t *testing.T) {
	valuation := newFixtureValuation(t, 0)
	svc := NewHistoryService(valuation, 4)

	values, err := svc.DailyValues(context.Background(), "Investor0", date(2017, 12, 1), date(2018, 3, 1))
	require.NoError(t, err)
	require.Len(t, values, 91)

	for i, dv := range values {
		if i > 0 {
			assert.Equal(t, values[i-1].Date.AddDate(0, 0, 1), dv.Date)
		}
		assert.Equal(t, valuation.PortfolioValue("Investor0", dv.Date), dv.Value)
	}
}

func TestDailyValues_SingleDay(t *testing.T) {
	svc := NewHistoryService(newFixtureValuation(t, 0), 0)

	values, err := svc.DailyValues(context.Background(), "Investor0", fixtures.At2018, fixtures.At2018)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.InDelta(t, fixtures.Investor0TotalAt2018, values[0].Value, fixtures.Tolerance)
}

func TestDailyValues_Errors(t *testing.T) {
	svc := NewHistoryService(newFixtureValuation(t, 0), 0)

	testCases := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantErr error
	}{
		{"inverted range", date(2018, 1, 2), date(2018, 1, 1), ErrInvalidRange},
		{"range too long", date(2000, 1, 1), date(2020, 1, 1), ErrRangeTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := svc.DailyValues(context.Background(), "Investor0", tc.from, tc.to)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			assert.Nil(t, values)
		})
	}
}

func TestDailyValues_Cancelled(t *testing.T) {
	svc := NewHistoryService(newFixtureValuation(t, 0), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.DailyValues(ctx, "Investor0", date(2017, 1, 1), date(2018, 1, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeGain(t *testing.T) {
	svc := NewHistoryService(newFixtureValuation(t, 0), 0)

	t.Run("growth", func(t *testing.T) {
		gain, err := svc.ComputeGain("Investor2", date(2017, 1, 1), fixtures.Latest)
		require.NoError(t, err)
		assert.Equal(t, 544187.0, gain.StartValue)
		assert.Equal(t, fixtures.Investor2PropertyLatest, gain.EndValue)
		assert.Equal(t, 1438.0, gain.GainValue)
		assert.InDelta(t, 1438.0/544187.0*100, gain.GainPercent, 1e-9)
	})

	t.Run("zero start value", func(t *testing.T) {
		gain, err := svc.ComputeGain("Investor2", date(2016, 1, 1), fixtures.Latest)
		require.NoError(t, err)
		assert.Equal(t, 0.0, gain.StartValue)
		assert.Equal(t, 0.0, gain.GainPercent)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.ComputeGain("Investor2", fixtures.Latest, fixtures.At2018)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
