package components

import (
	"fmt"
	"strings"

	"credsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BalanceChart renders a month-by-month balance trajectory as horizontal
// bars, one row per month, with milestone markers in the accent color.
// width is the full chart width including the label and amount columns.
func BalanceChart(balances []float64, markers []string, width int) string {
	if len(balances) == 0 {
		return ""
	}
	t := theme.Active

	peak := balances[0]
	for _, v := range balances[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	// Columns: "mo NN " + amount + " " + bar + marker
	amountW := len(fmt.Sprintf("$%.0f", peak))
	barMax := width - 6 - amountW - 2
	if barMax < 8 {
		barMax = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder
	for i, v := range balances {
		barLen := int(v / peak * float64(barMax))
		if barLen > barMax {
			barLen = barMax
		}

		barColor := t.Green
		frac := v / peak
		switch {
		case frac > 0.66:
			barColor = t.Red
		case frac > 0.33:
			barColor = t.Orange
		}
		bar := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", barLen))

		b.WriteString(labelStyle.Render(fmt.Sprintf("mo %2d ", i)))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, fmt.Sprintf("$%.0f", v))))
		b.WriteString(" ")
		b.WriteString(bar)
		if i < len(markers) && markers[i] != "" {
			b.WriteString(" ")
			b.WriteString(markStyle.Render("◆ " + markers[i]))
		}
		if i < len(balances)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ScoreGauge renders the 300-850 score range with a marker at score.
func ScoreGauge(score, width int) string {
	t := theme.Active

	if width < 12 {
		width = 12
	}
	if score < 300 {
		score = 300
	}
	if score > 850 {
		score = 850
	}

	pos := int(float64(score-300) / 550 * float64(width-1))

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	endStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(endStyle.Render("300 "))
	for i := 0; i < width; i++ {
		switch {
		case i == pos:
			b.WriteString(markStyle.Render("◆"))
		case i < pos:
			b.WriteString(doneStyle.Render("─"))
		default:
			b.WriteString(restStyle.Render("─"))
		}
	}
	b.WriteString(endStyle.Render(" 850"))
	return b.String()
}
