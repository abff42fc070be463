package tui

import (
	"fmt"
	"strings"

	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labState holds the Score Lab knobs.
type labState struct {
	field     int // 0=utilization, 1=streak, 2=inquiries
	utilPct   float64
	streak    int
	inquiries int
}

const labFieldCount = 3

func newLabState() labState {
	return labState{streak: 24}
}

func (a App) updateLab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.lab.field < labFieldCount-1 {
			a.lab.field++
		}
	case "k", "up":
		if a.lab.field > 0 {
			a.lab.field--
		}
	case "h":
		a.adjustLab(-1)
		a.recompute()
	case "l":
		a.adjustLab(1)
		a.recompute()
	}
	return a, nil
}

func (a *App) adjustLab(dir int) {
	switch a.lab.field {
	case 0:
		a.lab.utilPct += float64(dir) * 5
		if a.lab.utilPct < 0 {
			a.lab.utilPct = 0
		}
		if a.lab.utilPct > 100 {
			a.lab.utilPct = 100
		}
	case 1:
		a.lab.streak += dir
		if a.lab.streak < 0 {
			a.lab.streak = 0
		}
		if a.lab.streak > 48 {
			a.lab.streak = 48
		}
	case 2:
		a.lab.inquiries += dir
		if a.lab.inquiries < 0 {
			a.lab.inquiries = 0
		}
		if a.lab.inquiries > 12 {
			a.lab.inquiries = 12
		}
	}
}

func (a App) renderLabTab(cw int) string {
	t := theme.Active
	sim := a.scoreSim
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	focusStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	sliderW := innerW - 30
	if sliderW < 15 {
		sliderW = 15
	}

	row := func(idx int, label, value string, frac float64) string {
		style := labelStyle
		marker := "  "
		if a.lab.field == idx {
			style = focusStyle
			marker = "❯ "
		}
		return marker + style.Render(padRight(label, 14)) +
			components.Slider(frac, sliderW, a.lab.field == idx) +
			" " + valueStyle.Render(value)
	}

	knobs := strings.Join([]string{
		row(0, "Utilization", fmt.Sprintf("%3.0f%%", a.lab.utilPct), a.lab.utilPct/100),
		row(1, "On-time", fmt.Sprintf("%d mo", a.lab.streak), float64(a.lab.streak)/48),
		row(2, "Inquiries", fmt.Sprintf("%d", a.lab.inquiries), float64(a.lab.inquiries)/12),
	}, "\n") + "\n" + hintStyle.Render("  j/k select · h/l adjust")

	b.WriteString(components.ContentCard("What-If Inputs", knobs, cw))
	b.WriteString("\n")

	// Outcome cards
	cards := []components.Metric{
		{Label: "Pessimistic", Value: fmt.Sprintf("%d", sim.MinScore)},
		{Label: "Likely", Value: fmt.Sprintf("%d", sim.LikelyScore), Detail: scoreRating(sim.LikelyScore), Tone: components.ScoreTone(sim.LikelyScore)},
		{Label: "Optimistic", Value: fmt.Sprintf("%d", sim.MaxScore)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	gaugeBody := components.ScoreGauge(sim.LikelyScore, innerW-10) + "\n" +
		hintStyle.Render("time to impact: "+sim.TimeToImpact)
	b.WriteString(components.ContentCard("Projection", gaugeBody, cw))
	b.WriteString("\n")

	// Factor breakdown
	factorRow := func(name string, drag float64, note string) string {
		dragStyle := lipgloss.NewStyle().Foreground(t.Green)
		if drag > 0 {
			dragStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		return labelStyle.Render(padRight(name, 16)) +
			dragStyle.Render(fmt.Sprintf("%+4.0f  ", drag)) +
			hintStyle.Render(note)
	}
	factors := strings.Join([]string{
		factorRow("Utilization", sim.Factors.Utilization.ImpactPoints, sim.Factors.Utilization.Note),
		factorRow("Payment history", sim.Factors.PaymentHistory.ImpactPoints, sim.Factors.PaymentHistory.Note),
		factorRow("Inquiries", sim.Factors.Inquiries.ImpactPoints, sim.Factors.Inquiries.Note),
	}, "\n")
	b.WriteString(components.ContentCard("Factor Drag", factors, cw))

	return b.String()
}
