package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"spread-optimizer/internal/models"
)

// SQLiteStore implements QuoteStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based quote store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Normalized option quotes, one row per contract
	CREATE TABLE IF NOT EXISTS quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		underlying TEXT NOT NULL,
		ticker TEXT NOT NULL,
		option_type TEXT NOT NULL CHECK (option_type IN ('CALL', 'PUT')),
		strike REAL NOT NULL CHECK (strike > 0),
		premium REAL NOT NULL CHECK (premium >= 0),
		implied_vol REAL,
		delta REAL,
		gamma REAL,
		theta REAL,
		vega REAL,
		expiry DATE,
		days_to_expiry INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(underlying, ticker, option_type, strike)
	);

	CREATE INDEX IF NOT EXISTS idx_quotes_underlying ON quotes(underlying);
	CREATE INDEX IF NOT EXISTS idx_quotes_group ON quotes(underlying, option_type, expiry);
	`
	_, err := s.db.Exec(schema)
	return err
}

const upsertQuote = `
	INSERT OR REPLACE INTO quotes
	(underlying, ticker, option_type, strike, premium, implied_vol,
	 delta, gamma, theta, vega, expiry, days_to_expiry)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SaveQuotes inserts or replaces quotes for their underlyings.
func (s *SQLiteStore) SaveQuotes(ctx context.Context, quotes []models.OptionQuote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertQuote)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, quoteArgs(&q)...); err != nil {
			return fmt.Errorf("insert quote %s: %w", q.Ticker, err)
		}
	}
	return tx.Commit()
}

// ReplaceUnderlying atomically swaps the stored quotes for one underlying.
func (s *SQLiteStore) ReplaceUnderlying(ctx context.Context, underlying string, quotes []models.OptionQuote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quotes WHERE underlying = ?`, underlying); err != nil {
		return fmt.Errorf("clear quotes for %s: %w", underlying, err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertQuote)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, quoteArgs(&q)...); err != nil {
			return fmt.Errorf("insert quote %s: %w", q.Ticker, err)
		}
	}
	return tx.Commit()
}

func quoteArgs(q *models.OptionQuote) []interface{} {
	var expiry interface{}
	if q.Expiry != nil {
		expiry = q.Expiry.Format("2006-01-02")
	}
	return []interface{}{
		q.Underlying, q.Ticker, string(q.Type), q.Strike, q.Premium,
		nullableFloat(q.ImpliedVol),
		nullableFloat(q.Delta), nullableFloat(q.Gamma),
		nullableFloat(q.Theta), nullableFloat(q.Vega),
		expiry, nullableInt(q.DaysToExpiry),
	}
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

const selectQuote = `
	SELECT underlying, ticker, option_type, strike, premium, implied_vol,
	       delta, gamma, theta, vega, expiry, days_to_expiry
	FROM quotes`

// QuotesForUnderlying loads the quote table for one underlying.
func (s *SQLiteStore) QuotesForUnderlying(ctx context.Context, underlying string) (*models.QuoteTable, error) {
	rows, err := s.db.QueryContext(ctx,
		selectQuote+` WHERE underlying = ? ORDER BY option_type, expiry, strike`, underlying)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()
	return scanQuotes(rows)
}

// AllQuotes loads the full quote table.
func (s *SQLiteStore) AllQuotes(ctx context.Context) (*models.QuoteTable, error) {
	rows, err := s.db.QueryContext(ctx,
		selectQuote+` ORDER BY underlying, option_type, expiry, strike`)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()
	return scanQuotes(rows)
}

// Underlyings lists the distinct underlyings with stored quotes.
func (s *SQLiteStore) Underlyings(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT underlying FROM quotes ORDER BY underlying`)
	if err != nil {
		return nil, fmt.Errorf("query underlyings: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanQuotes(rows *sql.Rows) (*models.QuoteTable, error) {
	var quotes []models.OptionQuote
	for rows.Next() {
		var (
			q          models.OptionQuote
			optionType string
			iv         sql.NullFloat64
			delta      sql.NullFloat64
			gamma      sql.NullFloat64
			theta      sql.NullFloat64
			vega       sql.NullFloat64
			expiry     sql.NullString
			days       sql.NullInt64
		)
		if err := rows.Scan(&q.Underlying, &q.Ticker, &optionType, &q.Strike, &q.Premium,
			&iv, &delta, &gamma, &theta, &vega, &expiry, &days); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		q.Type = models.OptionType(optionType)
		q.ImpliedVol = fromNullFloat(iv)
		q.Delta = fromNullFloat(delta)
		q.Gamma = fromNullFloat(gamma)
		q.Theta = fromNullFloat(theta)
		q.Vega = fromNullFloat(vega)
		if expiry.Valid && len(expiry.String) >= 10 {
			if t, err := time.Parse("2006-01-02", expiry.String[:10]); err == nil {
				q.Expiry = &t
			}
		}
		if days.Valid {
			d := int(days.Int64)
			q.DaysToExpiry = &d
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return models.NewQuoteTable(quotes), nil
}

func fromNullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
