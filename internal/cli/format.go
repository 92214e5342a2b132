// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a decimal amount as currency with cents and
// thousands separators. e.g., 1234567.891 -> "$1,234,567.89"
func FormatMoney(d decimal.Decimal, currency string) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, cents, _ := strings.Cut(s, ".")
	out := currency + groupThousands(whole) + "." + cents
	if neg {
		return "-" + out
	}
	return out
}

// FormatRate formats a percentage rate. e.g., 6.5 -> "6.5%"
func FormatRate(d decimal.Decimal) string {
	return d.String() + "%"
}

// FormatMonths formats a month count as years and months.
// e.g., 37 -> "3y 1m", 10 -> "10m"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years := months / 12
	rem := months % 12

	if years == 0 {
		return fmt.Sprintf("%dm", rem)
	}
	if rem == 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dy %dm", years, rem)
}

// FormatDate formats a calendar date for display. e.g., "Sep 1, 2026"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatPercent formats an integer percentage. e.g., 60 -> "60%"
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// groupThousands adds comma separators to a digit string.
// e.g., "1234567" -> "1,234,567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
