package models

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType represents the kind of movement a transaction records
type TransactionType string

const (
	TransactionTypeShares     TransactionType = "Shares"     // share count delta
	TransactionTypePercentage TransactionType = "Percentage" // fund ownership delta, 0-100 scale
	TransactionTypeEstate     TransactionType = "Estate"     // land value delta
	TransactionTypeBuilding   TransactionType = "Building"   // building value delta
)

// ParseTransactionType maps a wire name to its TransactionType (case-insensitive)
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shares":
		return TransactionTypeShares, nil
	case "percentage":
		return TransactionTypePercentage, nil
	case "estate":
		return TransactionTypeEstate, nil
	case "building":
		return TransactionTypeBuilding, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// IsProperty reports whether the transaction moves real estate value
func (t TransactionType) IsProperty() bool {
	return t == TransactionTypeEstate || t == TransactionTypeBuilding
}

// Transaction is a dated signed movement on one investment
type Transaction struct {
	InvestmentID string          `json:"investment_id"`
	Type         TransactionType `json:"type"`
	Date         time.Time       `json:"date"`
	Value        float64         `json:"value"`
}

// Quote is a dated price observation for one security
type Quote struct {
	ID            string    `json:"id"` // ISIN
	Date          time.Time `json:"date"`
	PricePerShare float64   `json:"price_per_share"`
}
