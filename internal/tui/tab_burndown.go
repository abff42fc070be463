package tui

import (
	"fmt"
	"strings"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/model"
	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// burnState holds the Burn-Down tab knobs.
type burnState struct {
	payment  float64 // 0 until seeded from the optimal payment
	strategy model.PayoffStrategy
}

const paymentStep = 50

func newBurnState(cfg config.Config) burnState {
	s := burnState{strategy: config.PayoffStrategy(cfg)}
	if cfg.General.MonthlyPayment != nil {
		s.payment = *cfg.General.MonthlyPayment
	}
	return s
}

func (a App) updateBurn(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "+", "=", "l":
		a.burn.payment += paymentStep
		a.recompute()
	case "-", "h":
		a.burn.payment -= paymentStep
		if a.burn.payment < paymentStep {
			a.burn.payment = paymentStep
		}
		a.recompute()
	case "1":
		a.burn.strategy = model.PayoffAggressive
		a.recompute()
	case "2":
		a.burn.strategy = model.PayoffModerate
		a.recompute()
	case "3":
		a.burn.strategy = model.PayoffConservative
		a.recompute()
	}
	return a, nil
}

func (a App) renderBurnTab(cw, contentH int) string {
	t := theme.Active
	plan := a.plan
	var b strings.Builder

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Row 1: Plan summary cards
	last := plan.Months[len(plan.Months)-1]
	finish := cli.FormatDate(plan.TargetDate)
	if last.Balance > 0 {
		finish = cli.FormatMoney(last.Balance) + " left"
	}
	cards := []components.Metric{
		{Label: "Payment", Value: cli.FormatMoney(plan.MonthlyPayment) + "/mo", Detail: string(plan.Strategy)},
		{Label: "Debt-free", Value: cli.FormatMonths(plan.TotalMonths), Detail: finish},
		{Label: "Final score", Value: fmt.Sprintf("%d", plan.FinalScore), Detail: scoreRating(plan.FinalScore), Tone: components.ScoreTone(plan.FinalScore)},
		{Label: "Interest saved", Value: cli.FormatMoney(plan.TotalInterestSaved)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Balance trajectory, trimmed to the visible height
	maxRows := contentH - 12
	if maxRows < 6 {
		maxRows = 6
	}
	months := plan.Months
	if len(months) > maxRows {
		months = months[:maxRows]
	}

	balances := make([]float64, len(months))
	markers := make([]string, len(months))
	for i, m := range months {
		balances[i] = m.Balance
		if m.Milestone != nil {
			markers[i] = m.Milestone.Message
		}
	}

	body := components.BalanceChart(balances, markers, components.CardInnerWidth(cw))
	if len(months) < len(plan.Months) {
		body += "\n" + hintStyle.Render(fmt.Sprintf("… %d more months", len(plan.Months)-len(months)))
	}
	body += "\n" + hintStyle.Render("h/l payment ±$50 · 1 aggressive · 2 moderate · 3 conservative")

	b.WriteString(components.ContentCard("Balance Trajectory", body, cw))

	return strings.TrimRight(b.String(), "\n")
}
