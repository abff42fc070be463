// Package cli holds shared formatting and rendering helpers used by
// every command's terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatMoney renders a dollar amount with two decimals and a thousands
// separator, e.g. 12345.678 -> "$12,345.68".
func FormatMoney(amount float64) string {
	neg := amount < 0
	s := fmt.Sprintf("%.2f", math.Abs(amount))
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// FormatMoneyDelta is FormatMoney with an explicit sign for positives,
// used for monthly interest leaks and savings deltas.
func FormatMoneyDelta(amount float64) string {
	if amount > 0 {
		return "+" + FormatMoney(amount)
	}
	return FormatMoney(amount)
}

// FormatPercent renders a 0..1 fraction as a percentage with one decimal.
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}

// FormatPoints renders a score delta with an explicit sign.
func FormatPoints(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d pts", delta)
	}
	return fmt.Sprintf("%d pts", delta)
}

// FormatMonths renders a month count as a human duration, e.g.
// 1 -> "1 month", 14 -> "1 yr 2 mo".
func FormatMonths(months int) string {
	if months < 0 {
		months = 0
	}
	switch {
	case months == 1:
		return "1 month"
	case months < 12:
		return fmt.Sprintf("%d months", months)
	case months%12 == 0:
		return fmt.Sprintf("%d yr", months/12)
	default:
		return fmt.Sprintf("%d yr %d mo", months/12, months%12)
	}
}

// FormatDate renders a target date as "Jan 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2006")
}

// ScoreRating maps a score to the conventional bureau tier name.
func ScoreRating(score int) string {
	switch {
	case score >= 800:
		return "exceptional"
	case score >= 740:
		return "very good"
	case score >= 670:
		return "good"
	case score >= 580:
		return "fair"
	default:
		return "poor"
	}
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
