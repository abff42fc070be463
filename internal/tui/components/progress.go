package components

import (
	"fmt"

	"credsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUtilization maps a utilization fraction onto the usual
// green/yellow/orange/red credit bands.
func ColorForUtilization(frac float64) string {
	t := theme.Active
	switch {
	case frac > 0.50:
		return string(t.Red)
	case frac > 0.30:
		return string(t.Orange)
	case frac > 0.09:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// UtilizationBar renders a labeled utilization bar with its percentage,
// colored by how deep into the danger bands the fraction sits.
func UtilizationBar(label string, frac float64, labelW, barWidth int) string {
	t := theme.Active

	shown := frac
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForUtilization(frac)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForUtilization(frac))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(shown) +
		" " +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", frac*100))
}

// Slider renders a simple value slider for the score lab inputs.
func Slider(frac float64, width int, focused bool) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	fill := ColorForUtilization(frac)
	if !focused {
		fill = string(t.TextMuted)
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(frac)
}
