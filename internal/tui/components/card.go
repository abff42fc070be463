// Package components provides reusable TUI widgets for the credsim dashboard.
package components

import (
	"credsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labeled value for a dashboard metric card. A zero Tone
// renders the value in the theme's primary text color.
type Metric struct {
	Label  string
	Value  string
	Detail string
	Tone   lipgloss.Color
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// frame is the bordered box every card variant renders into.
// outerWidth is the total rendered width including the border.
func frame(outerWidth int) lipgloss.Style {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(contentWidth).
		Padding(0, 1)
}

// ScoreTone maps a score to the color of its bureau tier: green from
// "very good" up, orange for "fair", red below, accent in between.
func ScoreTone(score int) lipgloss.Color {
	t := theme.Active
	switch {
	case score >= 740:
		return t.Green
	case score >= 670:
		return t.Accent
	case score >= 580:
		return t.Orange
	default:
		return t.Red
	}
}

// MetricCard renders one metric in a bordered box.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	tone := m.Tone
	if tone == "" {
		tone = t.TextPrimary
	}

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(tone).Bold(true).Render(m.Value)
	if m.Detail != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Detail)
	}

	return frame(outerWidth).Render(content)
}

// MetricCardRow renders metrics side by side; card widths sum to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	content := ""
	if title != "" {
		content = lipgloss.NewStyle().
			Foreground(theme.Active.TextMuted).
			Bold(true).
			Render(title) + "\n"
	}
	return frame(outerWidth).Render(content + body)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
