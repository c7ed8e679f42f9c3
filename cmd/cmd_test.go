package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epeers/portfoliocalc/internal/fixtures"
	"github.com/epeers/portfoliocalc/internal/handlers"
	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/services"
	"github.com/epeers/portfoliocalc/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureValuation(t *testing.T) *services.ValuationService {
	t.Helper()
	rs, err := store.New(fixtures.Investments(), fixtures.Transactions(), fixtures.Quotes())
	require.NoError(t, err)
	return services.NewValuationService(rs, 2)
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valuationSvc := newFixtureValuation(t)
	router := newRouter(handlers.NewValuationHandler(valuationSvc, services.NewHistoryService(valuationSvc, 2), 2))

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("valuation", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/investors/Investor2/value?date=2018-01-01", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var v models.Valuation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		assert.Equal(t, 544187.0, v.PropertyValue)
	})

	t.Run("swagger", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/investors/{investor_id}/value")
	})
}

func TestWriteValuation(t *testing.T) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetContext(t.Context())

	require.NoError(t, writeValuation(c, newFixtureValuation(t), "Nobody", fixtures.At2018))

	var v models.Valuation
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Nobody", v.InvestorID)
	assert.Equal(t, "2018-01-01", v.Date)
	require.Len(t, v.Warnings, 1)
	assert.Equal(t, models.WarnUnknownInvestor, v.Warnings[0].Code)
}

func TestArgs(t *testing.T) {
	testCases := []struct {
		name    string
		cmd     *cobra.Command
		args    []string
		wantErr bool
	}{
		{"console no files", consoleCmd, nil, false},
		{"console three files", consoleCmd, []string{"a.csv", "b.csv", "c.csv"}, false},
		{"console one file", consoleCmd, []string{"a.csv"}, true},
		{"value investor", valueCmd, []string{"Investor0"}, false},
		{"value investor and date", valueCmd, []string{"Investor0", "2018-01-01"}, false},
		{"value nothing", valueCmd, nil, true},
		{"value too many", valueCmd, []string{"a", "b", "c"}, true},
		{"serve extra", serveCmd, []string{"x"}, true},
		{"import extra", importCmd, []string{"x"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Args(tc.cmd, tc.args)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
