package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema creates the tables read by the postgres data source. The serial ids
// keep rows in insertion order, which decides ties between same-day quotes.
const Schema = `
CREATE TABLE IF NOT EXISTS investment (
	id              BIGSERIAL PRIMARY KEY,
	investor_id     TEXT NOT NULL,
	investment_id   TEXT NOT NULL,
	investment_type TEXT NOT NULL,
	city            TEXT,
	isin            TEXT,
	fonds_investor  TEXT
);

CREATE TABLE IF NOT EXISTS investment_transaction (
	id            BIGSERIAL PRIMARY KEY,
	investment_id TEXT NOT NULL,
	type          TEXT NOT NULL,
	date          DATE NOT NULL,
	value         DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS quote (
	id              BIGSERIAL PRIMARY KEY,
	isin            TEXT NOT NULL,
	date            DATE NOT NULL,
	price_per_share DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_investment_transaction_investment ON investment_transaction (investment_id);
CREATE INDEX IF NOT EXISTS idx_quote_isin_date ON quote (isin, date);
`

// DB wraps the pgx connection pool
type DB struct {
	Pool *pgxpool.Pool
}

// New connects to pgURL and verifies the connection
func New(ctx context.Context, pgURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("connected to database")
	return &DB{Pool: pool}, nil
}

// Migrate creates any missing tables
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close releases every pooled connection
func (db *DB) Close() {
	db.Pool.Close()
}
