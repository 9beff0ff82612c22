// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"spread-optimizer/internal/models"
)

// QuoteStore defines the interface for quote table persistence.
type QuoteStore interface {
	// SaveQuotes inserts or replaces quotes for their underlyings.
	SaveQuotes(ctx context.Context, quotes []models.OptionQuote) error
	// ReplaceUnderlying atomically swaps the stored quotes for one
	// underlying with a fresh batch.
	ReplaceUnderlying(ctx context.Context, underlying string, quotes []models.OptionQuote) error
	// QuotesForUnderlying loads the quote table for one underlying.
	QuotesForUnderlying(ctx context.Context, underlying string) (*models.QuoteTable, error)
	// AllQuotes loads the full quote table.
	AllQuotes(ctx context.Context) (*models.QuoteTable, error)
	// Underlyings lists the distinct underlyings with stored quotes.
	Underlyings(ctx context.Context) ([]string, error)
	// Close releases the underlying resources.
	Close() error
}
