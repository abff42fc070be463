package engine

import (
	"math"
	"testing"

	"credsim/internal/model"
)

func debtSnapshot(t *testing.T, balance, limit float64, score int) *model.CreditSnapshot {
	t.Helper()
	util := 0.0
	if limit > 0 {
		util = balance / limit
	}
	return &model.CreditSnapshot{
		Score: model.ScoreBand{Value: score, RangeLow: score - 30, RangeHigh: score + 30},
		Utilization: model.UtilizationSummary{
			TotalLimit:         limit,
			TotalBalance:       balance,
			CurrentUtilization: util,
			OptimalUtilization: 0.09,
		},
		Cards: []model.CardSummary{
			{ID: "test-card", Name: "Test Card", Balance: balance, Limit: limit, Utilization: util},
		},
	}
}

func TestCalculateBurnDown_BalanceNonIncreasing(t *testing.T) {
	snap := debtSnapshot(t, 4800, 12000, 640)
	plan := CalculateBurnDown(snap, 400, model.PayoffModerate)

	if len(plan.Months) == 0 {
		t.Fatal("expected at least one month in the schedule")
	}
	for i := 1; i < len(plan.Months); i++ {
		prev, cur := plan.Months[i-1].Balance, plan.Months[i].Balance
		if cur > prev {
			t.Errorf("month %d balance %.2f exceeds month %d balance %.2f", i, cur, i-1, prev)
		}
		if cur < 0 {
			t.Errorf("month %d balance = %.2f, want >= 0", i, cur)
		}
	}
	last := plan.Months[len(plan.Months)-1]
	if last.Balance != 0 {
		t.Errorf("final balance = %.2f, want 0 (payment covers the debt within the horizon)", last.Balance)
	}
}

func TestCalculateBurnDown_MonthZeroInitiation(t *testing.T) {
	snap := debtSnapshot(t, 3000, 10000, 700)
	plan := CalculateBurnDown(snap, 300, model.PayoffModerate)

	first := plan.Months[0]
	if first.MonthIndex != 0 {
		t.Fatalf("first MonthIndex = %d, want 0", first.MonthIndex)
	}
	if first.Milestone == nil {
		t.Fatal("month 0 has no milestone, want initiation dip")
	}
	if first.Milestone.Kind != model.MilestoneBehavioralAlpha {
		t.Errorf("month 0 milestone = %q, want %q", first.Milestone.Kind, model.MilestoneBehavioralAlpha)
	}
	if first.ScoreChangeThisMonth >= 0 {
		t.Errorf("month 0 score change = %.1f, want negative (inquiry dip)", first.ScoreChangeThisMonth)
	}
	if first.Balance != 3000 {
		t.Errorf("month 0 balance = %.2f, want starting balance 3000", first.Balance)
	}
}

func TestCalculateBurnDown_DebtFreeMilestone(t *testing.T) {
	snap := debtSnapshot(t, 1200, 8000, 680)
	plan := CalculateBurnDown(snap, 1200, model.PayoffAggressive)

	var debtFree *model.BurnDownMonth
	for i := range plan.Months {
		m := &plan.Months[i]
		if m.Milestone != nil && m.Milestone.Kind == model.MilestoneDebtFree {
			debtFree = m
		}
	}
	if debtFree == nil {
		t.Fatal("no debt-free milestone in schedule")
	}
	if debtFree.MonthIndex > 2 {
		t.Errorf("debt free at month %d, want <= 2 for a single full payment", debtFree.MonthIndex)
	}
	if debtFree.Balance != 0 {
		t.Errorf("debt-free month balance = %.2f, want 0", debtFree.Balance)
	}
	if plan.TotalMonths != debtFree.MonthIndex {
		t.Errorf("TotalMonths = %d, want %d", plan.TotalMonths, debtFree.MonthIndex)
	}
}

func TestCalculateBurnDown_InterestSavedAccumulates(t *testing.T) {
	snap := debtSnapshot(t, 6000, 15000, 650)
	plan := CalculateBurnDown(snap, 500, model.PayoffModerate)

	var running float64
	for _, m := range plan.Months {
		running += m.InterestSavedThisMonth
		if diff := math.Abs(m.CumulativeInterestSaved - running); diff > 0.01 {
			t.Fatalf("month %d cumulative saved = %.2f, want %.2f", m.MonthIndex, m.CumulativeInterestSaved, running)
		}
	}
	last := plan.Months[len(plan.Months)-1]
	if plan.TotalInterestSaved != last.CumulativeInterestSaved {
		t.Errorf("TotalInterestSaved = %.2f, want %.2f", plan.TotalInterestSaved, last.CumulativeInterestSaved)
	}
}

func TestCalculateBurnDown_HorizonCap(t *testing.T) {
	// A token payment against a large balance never finishes; the
	// schedule still stops at the two-year horizon.
	snap := debtSnapshot(t, 50000, 60000, 600)
	plan := CalculateBurnDown(snap, 50, model.PayoffConservative)

	if len(plan.Months) > 24 {
		t.Errorf("schedule has %d months, want <= 24", len(plan.Months))
	}
	last := plan.Months[len(plan.Months)-1]
	if last.Balance <= 0 {
		t.Errorf("final balance = %.2f, want unpaid remainder", last.Balance)
	}
}

func TestCalculateBurnDown_ScoreStaysInRange(t *testing.T) {
	snap := debtSnapshot(t, 2000, 20000, 845)
	plan := CalculateBurnDown(snap, 1000, model.PayoffAggressive)

	for _, m := range plan.Months {
		if m.Score < 300 || m.Score > 850 {
			t.Errorf("month %d score = %d, want within [300, 850]", m.MonthIndex, m.Score)
		}
	}
	if plan.FinalScore > 850 {
		t.Errorf("FinalScore = %d, want <= 850", plan.FinalScore)
	}
}

func TestOptimalPayment_StrategyBuffers(t *testing.T) {
	tests := []struct {
		name     string
		strategy model.PayoffStrategy
		want     float64
	}{
		{"aggressive", model.PayoffAggressive, 100}, // 1000 / (12-2)
		{"moderate", model.PayoffModerate, 91},      // ceil(1000 / 11)
		{"conservative", model.PayoffConservative, 84},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalPayment(1000, 12, tt.strategy)
			if got != tt.want {
				t.Errorf("OptimalPayment(1000, 12, %s) = %.0f, want %.0f", tt.strategy, got, tt.want)
			}
		})
	}
}

func TestOptimalPayment_EdgeCases(t *testing.T) {
	if got := OptimalPayment(0, 12, model.PayoffModerate); got != 0 {
		t.Errorf("zero balance payment = %.2f, want 0", got)
	}
	if got := OptimalPayment(-250, 12, model.PayoffModerate); got != 0 {
		t.Errorf("negative balance payment = %.2f, want 0", got)
	}
	// Buffer larger than the promo window still leaves one month.
	if got := OptimalPayment(600, 2, model.PayoffAggressive); got != 600 {
		t.Errorf("short-promo payment = %.2f, want 600", got)
	}
}
