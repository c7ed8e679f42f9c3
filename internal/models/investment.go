package models

import (
	"fmt"
	"strings"
)

// InvestmentType identifies which variant an Investment is
type InvestmentType string

const (
	InvestmentTypeStock      InvestmentType = "Stock"
	InvestmentTypeFund       InvestmentType = "Fonds"
	InvestmentTypeRealEstate InvestmentType = "RealEstate"
)

// ParseInvestmentType maps the wire name of an investment type to its constant.
// "Fund" is accepted as an alias of "Fonds".
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return InvestmentTypeStock, nil
	case "fonds", "fund":
		return InvestmentTypeFund, nil
	case "realestate":
		return InvestmentTypeRealEstate, nil
	default:
		return "", fmt.Errorf("unknown investment type %q", s)
	}
}

// Investment is an ownership position. It is implemented by exactly one of
// StockInvestment, FundInvestment or RealEstateInvestment, each of which
// carries only the field that is meaningful for its type.
type Investment interface {
	Owner() string
	ID() string
	Type() InvestmentType
}

// StockInvestment is a position in a listed security identified by ShareID (ISIN)
type StockInvestment struct {
	InvestorID   string `json:"investor_id"`
	InvestmentID string `json:"investment_id"`
	ShareID      string `json:"share_id"`
}

func (s StockInvestment) Owner() string        { return s.InvestorID }
func (s StockInvestment) ID() string           { return s.InvestmentID }
func (s StockInvestment) Type() InvestmentType { return InvestmentTypeStock }

// FundInvestment is a percentage stake in a fund. FundInvestor is the fund's own
// identifier: percentage transactions are joined on it, and the fund's holdings
// are recorded under it as investor id.
type FundInvestment struct {
	InvestorID   string `json:"investor_id"`
	InvestmentID string `json:"investment_id"`
	FundInvestor string `json:"fund_investor"`
}

func (f FundInvestment) Owner() string        { return f.InvestorID }
func (f FundInvestment) ID() string           { return f.InvestmentID }
func (f FundInvestment) Type() InvestmentType { return InvestmentTypeFund }

// RealEstateInvestment is a property position valued from estate and building
// transactions. City only marks the record as populated.
type RealEstateInvestment struct {
	InvestorID   string `json:"investor_id"`
	InvestmentID string `json:"investment_id"`
	City         string `json:"city"`
}

func (r RealEstateInvestment) Owner() string        { return r.InvestorID }
func (r RealEstateInvestment) ID() string           { return r.InvestmentID }
func (r RealEstateInvestment) Type() InvestmentType { return InvestmentTypeRealEstate }

// NewInvestment builds the variant selected by investmentType. detail is the
// ISIN for stocks, the fund id for funds and the city for real estate.
func NewInvestment(investmentType InvestmentType, investorID, investmentID, detail string) (Investment, error) {
	switch investmentType {
	case InvestmentTypeStock:
		return StockInvestment{InvestorID: investorID, InvestmentID: investmentID, ShareID: detail}, nil
	case InvestmentTypeFund:
		return FundInvestment{InvestorID: investorID, InvestmentID: investmentID, FundInvestor: detail}, nil
	case InvestmentTypeRealEstate:
		return RealEstateInvestment{InvestorID: investorID, InvestmentID: investmentID, City: detail}, nil
	default:
		return nil, fmt.Errorf("unknown investment type %q", investmentType)
	}
}
