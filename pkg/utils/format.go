// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatBRL formats an amount in Brazilian currency notation
// ("R$ 1.234,56"). Non-finite values render as "N/A"; values inside
// half a cent of zero render as exactly zero to avoid "- R$ 0,00".
func FormatBRL(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "N/A"
	}
	if math.Abs(amount) < 0.005 {
		return "R$ 0,00"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := "R$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "- " + result
	}
	return result
}

// groupThousands inserts dots every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "." + result
		s = s[:len(s)-3]
	}
	return s + "." + result
}

// FormatRatio formats a risk/reward ratio with two decimals.
func FormatRatio(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", value)
}

// FormatPercent formats a fraction as a percentage ("0.305" -> "30.50%").
func FormatPercent(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// FormatOptionalGreek formats an optional sensitivity value; unknown
// renders as "N/A", never as zero.
func FormatOptionalGreek(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
