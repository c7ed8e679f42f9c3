package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/services"
	"github.com/epeers/portfoliocalc/internal/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// maxBatchInvestors bounds the number of investors valued by one request
const maxBatchInvestors = 1000

// ValuationHandler handles valuation and history endpoints
type ValuationHandler struct {
	valuationSvc *services.ValuationService
	historySvc   *services.HistoryService
	workers      int
}

// NewValuationHandler creates a new ValuationHandler
func NewValuationHandler(valuationSvc *services.ValuationService, historySvc *services.HistoryService, workers int) *ValuationHandler {
	if workers <= 0 {
		workers = services.DefaultWorkers()
	}
	return &ValuationHandler{
		valuationSvc: valuationSvc,
		historySvc:   historySvc,
		workers:      workers,
	}
}

// ListInvestors handles GET /investors
// @Summary List investors
// @Description List every investor id (funds included) that owns at least one investment
// @Tags investors
// @Produce json
// @Success 200 {object} models.InvestorListResponse
// @Router /investors [get]
func (h *ValuationHandler) ListInvestors(c *gin.Context) {
	investors := h.valuationSvc.Store().Investors()
	c.JSON(http.StatusOK, models.InvestorListResponse{
		Investors: investors,
		Count:     len(investors),
	})
}

// GetValuation handles GET /investors/:investor_id/value
// @Summary Value a portfolio
// @Description Value an investor's portfolio on a date, split into shares, funds and property
// @Tags valuations
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Param date query string false "Valuation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.Valuation
// @Failure 400 {object} models.ErrorResponse
// @Router /investors/{investor_id}/value [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	investorID := c.Param("investor_id")

	on := util.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := util.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "invalid date: " + raw,
			})
			return
		}
		on = d
	}

	c.JSON(http.StatusOK, h.breakdown(c.Request.Context(), investorID, on))
}

// BatchValuations handles POST /valuations
// @Summary Value several portfolios
// @Description Value several investors on the same date. Results follow request order.
// @Tags valuations
// @Accept json
// @Produce json
// @Param request body models.BatchValuationRequest true "Investors and date"
// @Success 200 {object} models.BatchValuationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /valuations [post]
func (h *ValuationHandler) BatchValuations(c *gin.Context) {
	var req models.BatchValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	if len(req.InvestorIDs) > maxBatchInvestors {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "too many investor_ids",
		})
		return
	}

	on := util.Today()
	if !req.Date.IsZero() {
		on = util.Day(req.Date.Time)
	}

	valuations := make([]models.Valuation, len(req.InvestorIDs))
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(h.workers)
	for i, investorID := range req.InvestorIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			valuations[i] = h.breakdown(ctx, investorID, on)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.BatchValuationResponse{
		Date:       util.FormatDate(on),
		Valuations: valuations,
	})
}

// GetHistory handles GET /investors/:investor_id/history
// @Summary Portfolio history
// @Description Daily portfolio values between two dates and the gain over the period
// @Tags valuations
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} models.HistoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /investors/{investor_id}/history [get]
func (h *ValuationHandler) GetHistory(c *gin.Context) {
	investorID := c.Param("investor_id")

	var req models.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "start_date and end_date are required",
		})
		return
	}

	startDate, err := util.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid start_date: " + req.StartDate,
		})
		return
	}
	endDate, err := util.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid end_date: " + req.EndDate,
		})
		return
	}

	dailyValues, err := h.historySvc.DailyValues(c.Request.Context(), investorID, startDate, endDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) || errors.Is(err, services.ErrRangeTooLong) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	gain, err := h.historySvc.ComputeGain(investorID, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	resp := models.HistoryResponse{
		InvestorID:  investorID,
		StartDate:   util.FormatDate(startDate),
		EndDate:     util.FormatDate(endDate),
		StartValue:  gain.StartValue,
		EndValue:    gain.EndValue,
		GainValue:   gain.GainValue,
		GainPercent: gain.GainPercent,
		DailyValues: make([]models.DailyValue, len(dailyValues)),
	}
	for i, dv := range dailyValues {
		resp.DailyValues[i] = models.DailyValue{
			Date:  util.FormatDate(dv.Date),
			Value: dv.Value,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// breakdown values one investor and attaches the warnings raised while doing so
func (h *ValuationHandler) breakdown(ctx context.Context, investorID string, on time.Time) models.Valuation {
	wctx, wc := services.NewWarningContext(ctx)
	v := h.valuationSvc.Breakdown(wctx, investorID, on)
	v.Warnings = wc.GetWarnings()
	return v
}
