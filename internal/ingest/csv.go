// Package ingest loads cleaned option-chain CSV exports into the
// normalized quote table. All locale parsing, unit normalization, and
// column quirks are handled here; the engine only ever sees quotes with
// a single monetary premium field.
package ingest

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"spread-optimizer/internal/errors"
	"spread-optimizer/internal/models"
)

// csvRow mirrors one line of the cleaned export. Premiums arrive either
// as a direct monetary value (premio) or as a percentage of strike
// (premioPct); both columns are optional per file, never mixed per row.
type csvRow struct {
	Underlying   string    `csv:"idAcao"`
	Ticker       string    `csv:"ticker"`
	Type         string    `csv:"tipo"`
	Strike       brDecimal `csv:"strike"`
	Premium      brDecimal `csv:"premio"`
	PremiumPct   brDecimal `csv:"premioPct"`
	ImpliedVol   brDecimal `csv:"volImplicita"`
	Delta        brDecimal `csv:"delta"`
	Gamma        brDecimal `csv:"gamma"`
	Theta        brDecimal `csv:"theta"`
	Vega         brDecimal `csv:"vega"`
	Expiry       string    `csv:"vencimento"`
	DaysToExpiry string    `csv:"diasUteis"`
}

// Report summarizes one load.
type Report struct {
	Rows    int
	Loaded  int
	Skipped int
}

// Loader reads option-chain CSV files.
type Loader struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewLoader creates a loader that logs through the given logger.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger, now: time.Now}
}

// LoadFile reads a CSV file from disk.
func (l *Loader) LoadFile(path string) (*models.QuoteTable, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads the cleaned CSV export and returns the normalized quote
// table. Rows with an unknown option type or a non-positive strike are
// skipped, not fatal; a file that cannot be parsed at all is.
func (l *Loader) Load(r io.Reader) (*models.QuoteTable, *Report, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, nil, errors.Wrap(errors.ErrMalformedCSV, err.Error())
	}

	report := &Report{Rows: len(rows)}
	var quotes []models.OptionQuote
	for _, row := range rows {
		q, ok := l.normalize(row)
		if !ok {
			report.Skipped++
			continue
		}
		quotes = append(quotes, q)
		report.Loaded++
	}

	l.logger.Debug().
		Int("rows", report.Rows).
		Int("loaded", report.Loaded).
		Int("skipped", report.Skipped).
		Msg("CSV load complete")

	return models.NewQuoteTable(quotes), report, nil
}

func (l *Loader) normalize(row *csvRow) (models.OptionQuote, bool) {
	q := models.OptionQuote{
		Underlying: strings.ToUpper(strings.TrimSpace(row.Underlying)),
		Ticker:     strings.ToUpper(strings.TrimSpace(row.Ticker)),
	}

	switch strings.ToUpper(strings.TrimSpace(row.Type)) {
	case "CALL":
		q.Type = models.OptionCall
	case "PUT":
		q.Type = models.OptionPut
	default:
		return q, false
	}

	if !row.Strike.known || row.Strike.value <= 0 {
		return q, false
	}
	q.Strike = row.Strike.value

	// Premium normalization: prefer the monetary column, fall back to
	// strike * percentage. A row with neither keeps a zero premium.
	switch {
	case row.Premium.known:
		q.Premium = row.Premium.value
	case row.PremiumPct.known:
		q.Premium = q.Strike * row.PremiumPct.value / 100.0
	}
	if q.Premium < 0 {
		return q, false
	}

	q.ImpliedVol = row.ImpliedVol.ptr()
	q.Delta = row.Delta.ptr()
	q.Gamma = row.Gamma.ptr()
	q.Theta = row.Theta.ptr()
	q.Vega = row.Vega.ptr()

	if expiry, ok := parseExpiry(row.Expiry); ok {
		q.Expiry = &expiry
		days := businessDaysUntil(l.now(), expiry)
		q.DaysToExpiry = &days
	} else if days, err := strconv.Atoi(strings.TrimSpace(row.DaysToExpiry)); err == nil && days >= 0 {
		q.DaysToExpiry = &days
	}

	return q, true
}

var expiryLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

func parseExpiry(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// businessDaysUntil counts the weekdays in [from, to). Expired
// contracts report zero.
func businessDaysUntil(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	days := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
