package models

// Valuation is the value of one investor's portfolio on one date, split by asset class
type Valuation struct {
	InvestorID    string    `json:"investor_id"`
	Date          string    `json:"date"`
	SharesValue   float64   `json:"shares_value"`
	FundsValue    float64   `json:"funds_value"`
	PropertyValue float64   `json:"property_value"`
	TotalValue    float64   `json:"total_value"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

// BatchValuationRequest represents the request body for valuing several investors at once
type BatchValuationRequest struct {
	InvestorIDs []string     `json:"investor_ids" binding:"required,min=1"`
	Date        FlexibleDate `json:"date"`
}

// BatchValuationResponse holds one valuation per requested investor, in request order
type BatchValuationResponse struct {
	Date       string      `json:"date"`
	Valuations []Valuation `json:"valuations"`
}

// HistoryRequest represents the query parameters of the history endpoint
type HistoryRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// HistoryResponse contains the daily value series and the gain over the period
type HistoryResponse struct {
	InvestorID  string       `json:"investor_id"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	StartValue  float64      `json:"start_value"`
	EndValue    float64      `json:"end_value"`
	GainValue   float64      `json:"gain_value"`
	GainPercent float64      `json:"gain_percent"`
	DailyValues []DailyValue `json:"daily_values"`
}

// DailyValue represents portfolio value on a specific date
type DailyValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// InvestorListResponse lists the investors known to the loaded dataset
type InvestorListResponse struct {
	Investors []string `json:"investors"`
	Count     int      `json:"count"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
