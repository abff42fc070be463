package tui

import (
	"fmt"
	"strings"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"
	"credsim/internal/model"
	"credsim/internal/tui/components"
	"credsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// offersState holds the Offers tab knobs.
type offersState struct {
	strategy model.MigrationStrategy
	cursor   int
}

var offerStrategies = []model.MigrationStrategy{
	model.StrategyBestROI,
	model.StrategyDebtPayoff,
	model.StrategyMaxTime,
	model.StrategyPurchases,
	model.StrategyFeeAverse,
}

func newOffersState(cfg config.Config) offersState {
	return offersState{strategy: config.MigrationStrategy(cfg)}
}

func (a App) updateOffers(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "c":
		for i, s := range offerStrategies {
			if s == a.offers.strategy {
				a.offers.strategy = offerStrategies[(i+1)%len(offerStrategies)]
				break
			}
		}
		a.offers.cursor = 0
		a.recompute()
	case "j", "down":
		if a.offers.cursor < len(a.eligibleOffers())-1 {
			a.offers.cursor++
		}
	case "k", "up":
		if a.offers.cursor > 0 {
			a.offers.cursor--
		}
	}
	return a, nil
}

// eligibleOffers returns catalog cards that can absorb the current balance.
func (a App) eligibleOffers() []model.MigrationCard {
	balance := a.snap.Utilization.TotalBalance
	var out []model.MigrationCard
	for _, card := range a.catalog.Cards() {
		if balance >= card.MinTransfer && balance <= card.MaxTransfer {
			out = append(out, card)
		}
	}
	return out
}

func (a App) renderOffersTab(cw int) string {
	t := theme.Active
	balance := a.snap.Utilization.TotalBalance
	apr := config.AssumedAPR(a.cfg)
	var b strings.Builder

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	// Gate verdict
	gateBody := goodStyle.Render("●")
	if a.gate.ShouldMigrate {
		gateBody = warnStyle.Render("▲")
	}
	gateBody += " " + textStyle.Render(a.gate.Reason)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Gate · strategy %s (c to cycle)", a.offers.strategy),
		gateBody, cw))
	b.WriteString("\n")

	eligible := a.eligibleOffers()
	if len(eligible) == 0 {
		b.WriteString(components.ContentCard("Offers",
			mutedStyle.Render(fmt.Sprintf("No catalog card can absorb a %s balance.", cli.FormatMoney(balance))),
			cw))
		return b.String()
	}

	cursor := a.offers.cursor
	if cursor >= len(eligible) {
		cursor = len(eligible) - 1
	}

	// Offer list with the ranked winner marked
	var winnerID string
	if a.match != nil {
		winnerID = a.match.Card.ID
	}

	var list strings.Builder
	for i, card := range eligible {
		v := engine.EvaluateMigration(card, balance, apr)

		marker := "  "
		nameStyle := mutedStyle
		if i == cursor {
			marker = "❯ "
			nameStyle = selStyle
		}
		crown := "  "
		if card.ID == winnerID {
			crown = goodStyle.Render("★ ")
		}

		net := goodStyle
		if v.NetSavings < 0 {
			net = warnStyle
		}

		list.WriteString(marker + crown +
			nameStyle.Render(padRight(card.Issuer+" "+card.Name, 30)) +
			mutedStyle.Render(fmt.Sprintf("%2d mo  ", card.PromoMonths)) +
			mutedStyle.Render(fmt.Sprintf("fee %s  ", cli.FormatMoney(v.TransferFee))) +
			net.Render("net "+cli.FormatMoney(v.NetSavings)))
		if i < len(eligible)-1 {
			list.WriteString("\n")
		}
	}
	b.WriteString(components.ContentCard("Offers", list.String(), cw))
	b.WriteString("\n")

	// Detail + checklist for the selected offer
	selected := eligible[cursor]
	v := engine.EvaluateMigration(selected, balance, apr)

	roi := fmt.Sprintf("%.0f%% ROI on fee", v.ROIPercent)
	if v.TransferFee == 0 {
		roi = "free transfer"
	}
	detail := textStyle.Render(fmt.Sprintf("Move %s · save %s over %d months · %s",
		cli.FormatMoney(balance), cli.FormatMoney(v.InterestSavedOverPromo), selected.PromoMonths, roi)) +
		"\n" + mutedStyle.Render(fmt.Sprintf("break-even %s · payment to clear in time %s/mo",
		cli.FormatMonths(v.BreakEvenMonths),
		cli.FormatMoney(engine.OptimalPayment(balance, selected.PromoMonths, a.burn.strategy))))

	// Source = largest balance card
	source := a.snap.Cards[0]
	for _, c := range a.snap.Cards[1:] {
		if c.Balance > source.Balance {
			source = c
		}
	}

	var checklist strings.Builder
	for i, item := range engine.MigrationChecklist(source, selected) {
		mark := hintStyle.Render("○")
		if item.Critical {
			mark = warnStyle.Render("●")
		}
		checklist.WriteString(fmt.Sprintf("%s %d. %s", mark, item.Step, mutedStyle.Render(item.Title)))
		if i < 6 {
			checklist.WriteString("\n")
		}
	}

	halves := components.LayoutRow(cw, 2)
	detailCard := components.ContentCard("Value", detail, halves[0])
	checkCard := components.ContentCard("Checklist", checklist.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Value", detail, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Checklist", checklist.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{detailCard, checkCard}))
	}

	return b.String()
}
