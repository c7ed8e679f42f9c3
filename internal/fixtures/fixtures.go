// Package fixtures provides a small, hand-checked dataset shared by tests.
package fixtures

import (
	"time"

	"github.com/epeers/portfoliocalc/internal/models"
)

// Expected values for the fixture, checked by hand against the valuation rules.
const (
	Tolerance = 0.0001

	Investor0SharesLatest   = 4963.14702
	Investor0SharesAt2018   = 3722.55418
	Investor0PropertyLatest = 3422885.0
	Investor0FundsLatest    = 1741.59185
	Investor0FundsAt2018    = 1792.4516
	Investor0TotalAt2018    = 1133496.005842
	Investor2PropertyLatest = 545625.0
	Fonds12PropertyAt2018   = 2243420.0
)

// At2018 is the fixed valuation date used by the reference scenario.
var At2018 = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

// Latest is after every dated record in the fixture.
var Latest = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Investments returns the fixture investments. Investor1 holds a stock record
// with no ISIN and Investor0 a stock (ISIN153) carrying percentage transactions
// and no quotes; both must value to zero.
func Investments() []models.Investment {
	return []models.Investment{
		models.FundInvestment{InvestorID: "Investor0", InvestmentID: "Investment44789", FundInvestor: "Fonds1"},
		models.FundInvestment{InvestorID: "Investor0", InvestmentID: "Investment48878", FundInvestor: "Fonds12"},

		models.StockInvestment{InvestorID: "Fonds1", InvestmentID: "Investment21900", ShareID: "ISIN62"},
		models.RealEstateInvestment{InvestorID: "Fonds1", InvestmentID: "Investment29522", City: "City4522"},

		models.StockInvestment{InvestorID: "Fonds12", InvestmentID: "Investment12550", ShareID: "ISIN150"},
		models.RealEstateInvestment{InvestorID: "Fonds12", InvestmentID: "Investment28930", City: "City3930"},

		models.StockInvestment{InvestorID: "Investor0", InvestmentID: "Investment5815", ShareID: "ISIN26"},
		models.StockInvestment{InvestorID: "Investor0", InvestmentID: "Investment12407", ShareID: "ISIN130"},
		models.StockInvestment{InvestorID: "Investor0", InvestmentID: "Investment22216", ShareID: "ISIN153"},
		models.RealEstateInvestment{InvestorID: "Investor0", InvestmentID: "Investment29478", City: "City4478"},
		models.RealEstateInvestment{InvestorID: "Investor0", InvestmentID: "Investment27611", City: "City2611"},
		models.RealEstateInvestment{InvestorID: "Investor0", InvestmentID: "Investment29173", City: "City4173"},

		models.StockInvestment{InvestorID: "Investor1", InvestmentID: "Investment23835"},

		models.RealEstateInvestment{InvestorID: "Investor2", InvestmentID: "Investment29481", City: "City4481"},
	}
}

// Quotes returns the fixture quotes. ISIN130 is deliberately out of date order.
func Quotes() []models.Quote {
	return []models.Quote{
		{ID: "ISIN26", Date: day("2016-06-28"), PricePerShare: 98.2239},
		{ID: "ISIN26", Date: day("2016-06-29"), PricePerShare: 98.1888},
		{ID: "ISIN26", Date: day("2016-06-30"), PricePerShare: 98.642},
		{ID: "ISIN26", Date: day("2016-07-01"), PricePerShare: 97.949},
		{ID: "ISIN26", Date: day("2016-07-04"), PricePerShare: 98.1489},
		{ID: "ISIN26", Date: day("2016-07-05"), PricePerShare: 99.5234},
		{ID: "ISIN26", Date: day("2016-07-06"), PricePerShare: 99.5346},
		{ID: "ISIN26", Date: day("2021-01-20"), PricePerShare: 104.8962},
		{ID: "ISIN26", Date: day("2021-01-21"), PricePerShare: 105.6453},
		{ID: "ISIN26", Date: day("2021-01-22"), PricePerShare: 105.1563},

		{ID: "ISIN130", Date: day("2016-01-06"), PricePerShare: 6.16},
		{ID: "ISIN130", Date: day("2016-01-07"), PricePerShare: 6.16},
		{ID: "ISIN130", Date: day("2016-01-08"), PricePerShare: 6.17},
		{ID: "ISIN130", Date: day("2016-01-11"), PricePerShare: 6.08},
		{ID: "ISIN130", Date: day("2016-01-12"), PricePerShare: 6.11},
		{ID: "ISIN130", Date: day("2021-07-19"), PricePerShare: 6.18},
		{ID: "ISIN130", Date: day("2021-07-20"), PricePerShare: 17.57},
		{ID: "ISIN130", Date: day("2021-01-21"), PricePerShare: 17.76},
		{ID: "ISIN130", Date: day("2016-01-22"), PricePerShare: 17.75},
		{ID: "ISIN130", Date: day("2016-01-25"), PricePerShare: 18.03},

		{ID: "ISIN150", Date: day("2016-06-29"), PricePerShare: 104.31},
		{ID: "ISIN150", Date: day("2016-06-30"), PricePerShare: 104.508},
		{ID: "ISIN150", Date: day("2016-07-01"), PricePerShare: 105.088},
		{ID: "ISIN150", Date: day("2019-10-24"), PricePerShare: 102.237},
		{ID: "ISIN150", Date: day("2019-10-25"), PricePerShare: 102.034},

		{ID: "ISIN62", Date: day("2016-06-28"), PricePerShare: 115.934},
		{ID: "ISIN62", Date: day("2016-06-29"), PricePerShare: 115.926},
		{ID: "ISIN62", Date: day("2016-06-30"), PricePerShare: 115.716},
		{ID: "ISIN62", Date: day("2016-07-01"), PricePerShare: 115.943},
		{ID: "ISIN62", Date: day("2016-07-04"), PricePerShare: 116.106},
		{ID: "ISIN62", Date: day("2019-11-01"), PricePerShare: 125},
	}
}

// Transactions returns the fixture transactions.
func Transactions() []models.Transaction {
	return []models.Transaction{
		{InvestmentID: "Investment44789", Type: models.TransactionTypePercentage, Date: day("2016-01-03"), Value: 0.0403},
		{InvestmentID: "Investment44789", Type: models.TransactionTypePercentage, Date: day("2016-01-12"), Value: 0.008505},
		{InvestmentID: "Investment44789", Type: models.TransactionTypePercentage, Date: day("2016-01-15"), Value: -0.005453},
		{InvestmentID: "Investment44789", Type: models.TransactionTypePercentage, Date: day("2018-02-22"), Value: 0.01368},
		{InvestmentID: "Investment44789", Type: models.TransactionTypePercentage, Date: day("2018-08-11"), Value: -0.015834},

		{InvestmentID: "Investment48878", Type: models.TransactionTypePercentage, Date: day("2016-02-19"), Value: 0.0333},
		{InvestmentID: "Investment48878", Type: models.TransactionTypePercentage, Date: day("2016-02-22"), Value: 0.013027},
		{InvestmentID: "Investment48878", Type: models.TransactionTypePercentage, Date: day("2016-04-14"), Value: -0.017632},
		{InvestmentID: "Investment48878", Type: models.TransactionTypePercentage, Date: day("2016-11-11"), Value: 0.01014},
		{InvestmentID: "Investment48878", Type: models.TransactionTypePercentage, Date: day("2016-11-24"), Value: 0.008283},

		{InvestmentID: "Investment5815", Type: models.TransactionTypeShares, Date: day("2016-07-06"), Value: 20.07},
		{InvestmentID: "Investment5815", Type: models.TransactionTypeShares, Date: day("2016-11-10"), Value: 3.15},
		{InvestmentID: "Investment5815", Type: models.TransactionTypeShares, Date: day("2017-09-02"), Value: 3.34},
		{InvestmentID: "Investment5815", Type: models.TransactionTypeShares, Date: day("2018-05-22"), Value: -1.73},
		{InvestmentID: "Investment5815", Type: models.TransactionTypeShares, Date: day("2018-06-19"), Value: 5.92},

		{InvestmentID: "Investment12407", Type: models.TransactionTypeShares, Date: day("2016-03-22"), Value: 58},
		{InvestmentID: "Investment12407", Type: models.TransactionTypeShares, Date: day("2016-07-23"), Value: 7.52},
		{InvestmentID: "Investment12407", Type: models.TransactionTypeShares, Date: day("2016-08-17"), Value: -5.68},
		{InvestmentID: "Investment12407", Type: models.TransactionTypeShares, Date: day("2020-01-01"), Value: 12.45},
		{InvestmentID: "Investment12407", Type: models.TransactionTypeShares, Date: day("2020-01-14"), Value: 26.15},

		{InvestmentID: "Investment22216", Type: models.TransactionTypePercentage, Date: day("2016-04-04"), Value: 29.07},
		{InvestmentID: "Investment22216", Type: models.TransactionTypePercentage, Date: day("2016-07-13"), Value: -1.84},
		{InvestmentID: "Investment22216", Type: models.TransactionTypePercentage, Date: day("2017-02-06"), Value: 5.77},
		{InvestmentID: "Investment22216", Type: models.TransactionTypePercentage, Date: day("2019-04-23"), Value: 5.08},
		{InvestmentID: "Investment22216", Type: models.TransactionTypePercentage, Date: day("2019-12-12"), Value: 9.86},

		{InvestmentID: "Investment29478", Type: models.TransactionTypeEstate, Date: day("2018-02-09"), Value: 347060},
		{InvestmentID: "Investment29478", Type: models.TransactionTypeBuilding, Date: day("2018-02-09"), Value: 1948682},

		{InvestmentID: "Investment27611", Type: models.TransactionTypeEstate, Date: day("2017-05-10"), Value: 340690},
		{InvestmentID: "Investment27611", Type: models.TransactionTypeEstate, Date: day("2017-11-27"), Value: 2020},
		{InvestmentID: "Investment27611", Type: models.TransactionTypeBuilding, Date: day("2017-05-10"), Value: 152937},
		{InvestmentID: "Investment27611", Type: models.TransactionTypeBuilding, Date: day("2017-11-27"), Value: 909},

		{InvestmentID: "Investment29173", Type: models.TransactionTypeEstate, Date: day("2017-08-06"), Value: 339853},
		{InvestmentID: "Investment29173", Type: models.TransactionTypeEstate, Date: day("2020-02-15"), Value: -209},
		{InvestmentID: "Investment29173", Type: models.TransactionTypeBuilding, Date: day("2017-08-06"), Value: 291572},
		{InvestmentID: "Investment29173", Type: models.TransactionTypeBuilding, Date: day("2020-02-15"), Value: -629},

		{InvestmentID: "Investment23835", Type: models.TransactionTypeShares, Date: day("2016-07-10"), Value: 12.08},
		{InvestmentID: "Investment23835", Type: models.TransactionTypeShares, Date: day("2016-07-13"), Value: -6.22},
		{InvestmentID: "Investment23835", Type: models.TransactionTypeShares, Date: day("2016-11-21"), Value: 4.59},
		{InvestmentID: "Investment23835", Type: models.TransactionTypeShares, Date: day("2018-09-26"), Value: 4.8},
		{InvestmentID: "Investment23835", Type: models.TransactionTypeShares, Date: day("2019-01-11"), Value: -1.85},

		{InvestmentID: "Investment29481", Type: models.TransactionTypeEstate, Date: day("2016-12-20"), Value: 255748},
		{InvestmentID: "Investment29481", Type: models.TransactionTypeEstate, Date: day("2020-04-22"), Value: 13},
		{InvestmentID: "Investment29481", Type: models.TransactionTypeBuilding, Date: day("2016-12-20"), Value: 288439},
		{InvestmentID: "Investment29481", Type: models.TransactionTypeBuilding, Date: day("2020-04-22"), Value: 1425},

		{InvestmentID: "Investment21900", Type: models.TransactionTypeShares, Date: day("2016-10-09"), Value: 16.29},
		{InvestmentID: "Investment21900", Type: models.TransactionTypeShares, Date: day("2017-09-11"), Value: 2.63},
		{InvestmentID: "Investment21900", Type: models.TransactionTypeShares, Date: day("2017-10-11"), Value: -2.85},
		{InvestmentID: "Investment21900", Type: models.TransactionTypeShares, Date: day("2019-06-08"), Value: -4.34},
		{InvestmentID: "Investment21900", Type: models.TransactionTypeShares, Date: day("2019-06-15"), Value: -5.33},

		{InvestmentID: "Investment12550", Type: models.TransactionTypeShares, Date: day("2016-11-28"), Value: 23.67},
		{InvestmentID: "Investment12550", Type: models.TransactionTypeShares, Date: day("2018-04-16"), Value: -0.27},
		{InvestmentID: "Investment12550", Type: models.TransactionTypeShares, Date: day("2018-05-22"), Value: -2.11},
		{InvestmentID: "Investment12550", Type: models.TransactionTypeShares, Date: day("2018-09-05"), Value: 6.67},
		{InvestmentID: "Investment12550", Type: models.TransactionTypeShares, Date: day("2019-08-20"), Value: 8.94},

		{InvestmentID: "Investment29522", Type: models.TransactionTypeEstate, Date: day("2017-10-12"), Value: 215559},
		{InvestmentID: "Investment29522", Type: models.TransactionTypeEstate, Date: day("2018-08-15"), Value: -2043},
		{InvestmentID: "Investment29522", Type: models.TransactionTypeBuilding, Date: day("2017-10-12"), Value: 1476211},
		{InvestmentID: "Investment29522", Type: models.TransactionTypeBuilding, Date: day("2018-08-15"), Value: -14118},

		{InvestmentID: "Investment28930", Type: models.TransactionTypeEstate, Date: day("2016-04-15"), Value: 825550},
		{InvestmentID: "Investment28930", Type: models.TransactionTypeEstate, Date: day("2017-02-05"), Value: 3207},
		{InvestmentID: "Investment28930", Type: models.TransactionTypeEstate, Date: day("2018-10-15"), Value: -3100},
		{InvestmentID: "Investment28930", Type: models.TransactionTypeBuilding, Date: day("2016-04-15"), Value: 1419683},
		{InvestmentID: "Investment28930", Type: models.TransactionTypeBuilding, Date: day("2017-02-05"), Value: -5020},
		{InvestmentID: "Investment28930", Type: models.TransactionTypeBuilding, Date: day("2018-10-15"), Value: -13632},
	}
}
