// Package models provides domain models for the spread optimizer.
package models

import "time"

// OptionType represents the type of an option contract.
type OptionType string

const (
	OptionCall OptionType = "CALL"
	OptionPut  OptionType = "PUT"
)

// Direction represents which side of a leg the position holds.
type Direction string

const (
	DirectionSold   Direction = "SOLD"
	DirectionBought Direction = "BOUGHT"
)

// OptionQuote is one normalized market quote for an option contract.
// Premium is always a monetary amount per unit; ingestion converts
// percentage-quoted premiums before quotes reach the engine.
// Fields that the export may not carry (IV, Greeks, expiry) are pointers;
// nil means unknown, never zero.
type OptionQuote struct {
	Underlying   string
	Ticker       string
	Type         OptionType
	Strike       float64
	Premium      float64
	ImpliedVol   *float64
	Delta        *float64
	Gamma        *float64
	Theta        *float64
	Vega         *float64
	Expiry       *time.Time
	DaysToExpiry *int
}

// Valid reports whether the quote satisfies the table invariants.
func (q *OptionQuote) Valid() bool {
	if q.Strike <= 0 || q.Premium < 0 {
		return false
	}
	return q.Type == OptionCall || q.Type == OptionPut
}

// ExpiryKey returns the expiry formatted as a grouping key.
// Quotes without an expiry share a single bucket per underlying and type.
func (q *OptionQuote) ExpiryKey() string {
	if q.Expiry == nil {
		return ""
	}
	return q.Expiry.Format("2006-01-02")
}

// QuoteTable is a read-only collection of option quotes for one or more
// underlyings, produced by the ingestion collaborator.
type QuoteTable struct {
	Quotes []OptionQuote
}

// NewQuoteTable creates a quote table from a slice of quotes.
func NewQuoteTable(quotes []OptionQuote) *QuoteTable {
	return &QuoteTable{Quotes: quotes}
}

// FilterUnderlying returns a new table holding only quotes for the given
// underlying identifier.
func (t *QuoteTable) FilterUnderlying(underlying string) *QuoteTable {
	var filtered []OptionQuote
	for _, q := range t.Quotes {
		if q.Underlying == underlying {
			filtered = append(filtered, q)
		}
	}
	return &QuoteTable{Quotes: filtered}
}

// Len returns the number of quotes in the table.
func (t *QuoteTable) Len() int {
	return len(t.Quotes)
}

// Underlyings returns the distinct underlying identifiers in the table,
// in first-seen order.
func (t *QuoteTable) Underlyings() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range t.Quotes {
		if !seen[q.Underlying] {
			seen[q.Underlying] = true
			out = append(out, q.Underlying)
		}
	}
	return out
}

// Float64Ptr returns a pointer to v. Convenience for building quotes with
// known Greeks in tests and ingestion.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
