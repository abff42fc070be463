package tui

import (
	"fmt"
	"strconv"
	"strings"

	"credsim/internal/cli"
	"credsim/internal/engine"
	"credsim/internal/model"
	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// actionState holds the Actions tab form and last result.
type actionState struct {
	field      int // 0=kind, 1=amount, 2=merchant, 3=run
	editing    bool
	kindIdx    int
	amountIn   textinput.Model
	merchantIn textinput.Model
	result     *model.SimulationResult
}

const actionFieldCount = 4

var actionChoices = []struct {
	label string
	kind  model.ActionKind
}{
	{"Large purchase", model.ActionLargePurchase},
	{"New credit line", model.ActionNewCreditLine},
	{"Debt consolidation", model.ActionDebtConsolidation},
	{"Payment", model.ActionPayment},
	{"Balance transfer", model.ActionBalanceTransfer},
}

func newActionState() actionState {
	amount := textinput.New()
	amount.Placeholder = "1500"
	amount.CharLimit = 12
	amount.Width = 14

	merchant := textinput.New()
	merchant.Placeholder = "Best Buy (optional)"
	merchant.CharLimit = 40
	merchant.Width = 24

	return actionState{amountIn: amount, merchantIn: merchant}
}

func (a App) updateActions(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.act.field < actionFieldCount-1 {
			a.act.field++
		}
	case "k", "up":
		if a.act.field > 0 {
			a.act.field--
		}
	case "h", "left":
		if a.act.field == 0 {
			a.act.kindIdx = (a.act.kindIdx - 1 + len(actionChoices)) % len(actionChoices)
		}
	case "l":
		if a.act.field == 0 {
			a.act.kindIdx = (a.act.kindIdx + 1) % len(actionChoices)
		}
	case "enter":
		switch a.act.field {
		case 1:
			a.act.editing = true
			a.act.amountIn.Focus()
			return a, a.act.amountIn.Cursor.BlinkCmd()
		case 2:
			a.act.editing = true
			a.act.merchantIn.Focus()
			return a, a.act.merchantIn.Cursor.BlinkCmd()
		default:
			a.runAction()
		}
	}
	return a, nil
}

// updateActionInput handles keys while a text input is focused.
func (a App) updateActionInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.act.editing = false
		a.act.amountIn.Blur()
		a.act.merchantIn.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	if a.act.field == 1 {
		a.act.amountIn, cmd = a.act.amountIn.Update(msg)
	} else {
		a.act.merchantIn, cmd = a.act.merchantIn.Update(msg)
	}
	return a, cmd
}

func (a *App) runAction() {
	choice := actionChoices[a.act.kindIdx]

	amount, _ := strconv.ParseFloat(strings.TrimSpace(a.act.amountIn.Value()), 64)
	result := engine.SimulateAction(a.snap, model.FinancialAction{
		Kind:     choice.kind,
		Amount:   amount,
		Merchant: strings.TrimSpace(a.act.merchantIn.Value()),
	}, a.catalog)
	a.act.result = &result
}

func (a App) renderActionsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	focusStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	badStyle := lipgloss.NewStyle().Foreground(t.Red)

	marker := func(idx int) (string, lipgloss.Style) {
		if a.act.field == idx {
			return "❯ ", focusStyle
		}
		return "  ", labelStyle
	}

	// Form card
	var form strings.Builder

	m, style := marker(0)
	form.WriteString(m + style.Render(padRight("Action", 10)))
	form.WriteString(hintStyle.Render("◀ ") + valueStyle.Render(actionChoices[a.act.kindIdx].label) + hintStyle.Render(" ▶"))
	form.WriteString("\n")

	m, style = marker(1)
	form.WriteString(m + style.Render(padRight("Amount $", 10)) + a.act.amountIn.View())
	form.WriteString("\n")

	m, style = marker(2)
	form.WriteString(m + style.Render(padRight("Merchant", 10)) + a.act.merchantIn.View())
	form.WriteString("\n")

	m, style = marker(3)
	form.WriteString(m + style.Render("[ Run simulation ]"))
	form.WriteString("\n")
	form.WriteString(hintStyle.Render("  j/k select · h/l change action · enter edit/run"))

	b.WriteString(components.ContentCard("Hypothetical Action", form.String(), cw))
	b.WriteString("\n")

	result := a.act.result
	if result == nil {
		b.WriteString(components.ContentCard("Impact",
			hintStyle.Render("Run a simulation to see the projected impact."), cw))
		return b.String()
	}

	// Result cards
	deltaStyle := goodStyle
	if result.ScoreDelta < 0 {
		deltaStyle = badStyle
	}
	leak := ""
	if result.MonthlyInterestLeak > 0 {
		leak = cli.FormatMoney(result.MonthlyInterestLeak) + "/mo cost"
	} else if result.MonthlyInterestLeak < 0 {
		leak = cli.FormatMoney(-result.MonthlyInterestLeak) + "/mo saved"
	}

	cards := []components.Metric{
		{Label: "Score", Value: fmt.Sprintf("%d", result.ProjectedScore), Detail: deltaStyle.Render(cli.FormatPoints(result.ScoreDelta)), Tone: components.ScoreTone(result.ProjectedScore)},
		{Label: "Utilization", Value: cli.FormatPercent(result.ProjectedUtilization)},
		{Label: "Interest", Value: leak},
	}
	if result.RecoveryMonths > 0 {
		cards = append(cards, components.Metric{
			Label: "Recovery", Value: cli.FormatMonths(result.RecoveryMonths), Detail: "back to today's score",
		})
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Insight card
	var insight strings.Builder
	insight.WriteString(valueStyle.Render(result.Insight))
	if zg := result.ZeroGravityOption; zg != nil {
		insight.WriteString("\n" + goodStyle.Render("◆ ") +
			valueStyle.Render(fmt.Sprintf("%s: %d months at 0%% — %s", zg.Merchant, zg.TermMonths, zg.Description)))
	}
	if oc := result.OpportunityCost; oc != nil {
		insight.WriteString("\n" + warnStyle.Render("▲ ") +
			valueStyle.Render(fmt.Sprintf("Skipping this is a guaranteed %.1f%% return (%s/year avoided).",
				oc.GuaranteedReturn, cli.FormatMoney(oc.AnnualInterest))))
	}
	b.WriteString(components.ContentCard("Read", insight.String(), cw))

	return b.String()
}
