package repository

import (
	"context"
	"fmt"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads and writes the three record sets in PostgreSQL
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a new PostgresSource
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Investments returns every investment in insertion order
func (r *PostgresSource) Investments(ctx context.Context) ([]models.Investment, error) {
	query := `
		SELECT investor_id, investment_id, investment_type,
		       COALESCE(city, ''), COALESCE(isin, ''), COALESCE(fonds_investor, '')
		FROM investment
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var investorID, investmentID, rawType, city, isin, fondsInvestor string
		if err := rows.Scan(&investorID, &investmentID, &rawType, &city, &isin, &fondsInvestor); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investmentType, err := models.ParseInvestmentType(rawType)
		if err != nil {
			return nil, fmt.Errorf("investment %s: %w", investmentID, err)
		}

		var detail string
		switch investmentType {
		case models.InvestmentTypeStock:
			detail = isin
		case models.InvestmentTypeFund:
			detail = fondsInvestor
		case models.InvestmentTypeRealEstate:
			detail = city
		}
		inv, err := models.NewInvestment(investmentType, investorID, investmentID, detail)
		if err != nil {
			return nil, fmt.Errorf("investment %s: %w", investmentID, err)
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

// Transactions returns every transaction in insertion order
func (r *PostgresSource) Transactions(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT investment_id, type, date, value
		FROM investment_transaction
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var rawType string
		if err := rows.Scan(&tx.InvestmentID, &rawType, &tx.Date, &tx.Value); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.Type, err = models.ParseTransactionType(rawType); err != nil {
			return nil, fmt.Errorf("transaction on %s: %w", tx.InvestmentID, err)
		}
		tx.Date = util.Day(tx.Date)
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// Quotes returns every quote in insertion order
func (r *PostgresSource) Quotes(ctx context.Context) ([]models.Quote, error) {
	query := `
		SELECT isin, date, price_per_share
		FROM quote
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes := []models.Quote{}
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.Date, &q.PricePerShare); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		q.Date = util.Day(q.Date)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// Replace swaps the stored record sets for the given ones in a single transaction
func (r *PostgresSource) Replace(ctx context.Context, investments []models.Investment, transactions []models.Transaction, quotes []models.Quote) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE investment, investment_transaction, quote RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"investment"},
		[]string{"investor_id", "investment_id", "investment_type", "city", "isin", "fonds_investor"},
		pgx.CopyFromRows(investmentRows(investments)),
	)
	if err != nil {
		return fmt.Errorf("failed to copy investments: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"investment_transaction"},
		[]string{"investment_id", "type", "date", "value"},
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			t := transactions[i]
			return []any{t.InvestmentID, string(t.Type), t.Date, t.Value}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy transactions: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"quote"},
		[]string{"isin", "date", "price_per_share"},
		pgx.CopyFromSlice(len(quotes), func(i int) ([]any, error) {
			q := quotes[i]
			return []any{q.ID, q.Date, q.PricePerShare}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy quotes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// investmentRows maps investments to investment table rows, leaving the detail
// columns of other variants NULL. Nil entries are skipped.
func investmentRows(investments []models.Investment) [][]any {
	rows := make([][]any, 0, len(investments))
	for _, inv := range investments {
		if inv == nil {
			continue
		}
		row := []any{inv.Owner(), inv.ID(), string(inv.Type()), nil, nil, nil}
		switch v := inv.(type) {
		case models.RealEstateInvestment:
			row[3] = v.City
		case models.StockInvestment:
			row[4] = v.ShareID
		case models.FundInvestment:
			row[5] = v.FundInvestor
		}
		rows = append(rows, row)
	}
	return rows
}
