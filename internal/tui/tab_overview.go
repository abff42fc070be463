package tui

import (
	"fmt"
	"strings"

	"credsim/internal/cli"
	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	snap := a.snap
	var b strings.Builder

	// Row 1: Metric cards
	util := snap.Utilization
	cards := []components.Metric{
		{Label: "Score", Value: fmt.Sprintf("%d", snap.Score.Value), Detail: scoreRating(snap.Score.Value), Tone: components.ScoreTone(snap.Score.Value)},
		{Label: "Balance", Value: cli.FormatMoney(util.TotalBalance), Detail: "of " + cli.FormatMoney(util.TotalLimit)},
		{Label: "Utilization", Value: cli.FormatPercent(util.CurrentUtilization), Detail: "optimal " + cli.FormatPercent(util.OptimalUtilization)},
		{Label: "Cards", Value: fmt.Sprintf("%d", len(snap.Cards))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Score band gauge
	gaugeBody := components.ScoreGauge(snap.Score.Value, components.CardInnerWidth(cw)-10) +
		"\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(
			fmt.Sprintf("band %d-%d · updated %s",
				snap.Score.RangeLow, snap.Score.RangeHigh,
				snap.Score.LastUpdated.Format("Jan 2")))
	b.WriteString(components.ContentCard("Score", gaugeBody, cw))
	b.WriteString("\n")

	// Row 3: Per-card utilization bars
	innerW := components.CardInnerWidth(cw)
	labelW := 0
	for _, c := range snap.Cards {
		if lw := len(c.Name); lw > labelW {
			labelW = lw
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	barW := innerW - labelW - 10
	if barW < 10 {
		barW = 10
	}

	var cardsBody strings.Builder
	for i, c := range snap.Cards {
		name := c.Name
		if len(name) > labelW {
			name = name[:labelW-1] + "…"
		}
		cardsBody.WriteString(components.UtilizationBar(name, c.Utilization, labelW, barW))
		if i < len(snap.Cards)-1 {
			cardsBody.WriteString("\n")
		}
	}
	b.WriteString(components.ContentCard("Cards", cardsBody.String(), cw))
	b.WriteString("\n")

	// Row 4: Migration gate + payoff glance
	halves := components.LayoutRow(cw, 2)

	gateStyle := lipgloss.NewStyle().Foreground(t.Green)
	gateMark := "●"
	if a.gate.ShouldMigrate {
		gateStyle = lipgloss.NewStyle().Foreground(t.Orange)
		gateMark = "▲"
	}
	gateBody := gateStyle.Render(gateMark) + " " +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.gate.Reason)
	if a.gate.ShouldMigrate {
		gateBody += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render("See the Offers tab")
	}

	planBody := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(
		fmt.Sprintf("Debt-free in %s at %s/mo", cli.FormatMonths(a.plan.TotalMonths), cli.FormatMoney(a.plan.MonthlyPayment))) +
		"\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf("final score %d · %s saved", a.plan.FinalScore, cli.FormatMoney(a.plan.TotalInterestSaved)))

	gateCard := components.ContentCard("Balance Transfer", gateBody, halves[0])
	planCard := components.ContentCard("Burn-Down", planBody, halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Balance Transfer", gateBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Burn-Down", planBody, cw))
	} else {
		b.WriteString(components.CardRow([]string{gateCard, planCard}))
	}

	return b.String()
}
