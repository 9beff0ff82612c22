package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// brDecimal is a CSV cell holding a decimal in either Brazilian
// ("1.234,56") or plain ("1234.56") notation. Empty and placeholder
// cells parse as unknown rather than zero.
type brDecimal struct {
	value float64
	known bool
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *brDecimal) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") || s == "-" || strings.EqualFold(s, "nan") {
		d.known = false
		return nil
	}

	if strings.Contains(s, ",") {
		// Comma decimal separator; dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	d.value = v
	d.known = true
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d *brDecimal) MarshalCSV() (string, error) {
	if !d.known {
		return "", nil
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64), nil
}

// ptr returns the value as an optional float, nil when unknown.
func (d *brDecimal) ptr() *float64 {
	if !d.known {
		return nil
	}
	v := d.value
	return &v
}
