// Package snapshot assembles read-only CreditSnapshot values from stored
// accounts or imported exports. All out-of-domain numerics are clamped here so
// the engine downstream never sees negative balances or limits.
package snapshot

import (
	"time"

	"credsim/internal/model"
	"credsim/internal/store"
)

// optimalUtilization is the utilization fraction the product nudges toward.
const optimalUtilization = 0.09

// Build assembles a snapshot from stored card records and the last reported
// score. The result is freshly allocated; callers own it.
func Build(records []store.CardRecord, score int, scoreAt time.Time) *model.CreditSnapshot {
	snap := &model.CreditSnapshot{
		Score: model.ScoreBand{
			Value:       clampScore(score),
			RangeLow:    model.ScoreFloor,
			RangeHigh:   model.ScoreCeiling,
			LastUpdated: scoreAt,
		},
	}

	var totalBalance, totalLimit float64
	for _, rec := range records {
		card := rec.Card
		if card.Balance < 0 {
			card.Balance = 0
		}
		if card.Limit < 0 {
			card.Limit = 0
		}
		if card.Limit > 0 {
			card.Utilization = card.Balance / card.Limit
		} else {
			card.Utilization = 0
		}

		totalBalance += card.Balance
		totalLimit += card.Limit
		snap.Cards = append(snap.Cards, card)

		if rec.AgeMonths != nil && *rec.AgeMonths >= 0 {
			snap.AccountAges = append(snap.AccountAges, model.AccountAge{
				CardID:    card.ID,
				AgeMonths: *rec.AgeMonths,
			})
		}
	}

	snap.Utilization = model.UtilizationSummary{
		TotalLimit:         totalLimit,
		TotalBalance:       totalBalance,
		OptimalUtilization: optimalUtilization,
	}
	if totalLimit > 0 {
		snap.Utilization.CurrentUtilization = totalBalance / totalLimit
	}

	return snap
}

func clampScore(s int) int {
	if s < model.ScoreFloor {
		return model.ScoreFloor
	}
	if s > model.ScoreCeiling {
		return model.ScoreCeiling
	}
	return s
}
