package engine

import (
	"testing"

	"credsim/internal/model"
)

func TestSimulateScore_BandOrdering(t *testing.T) {
	grids := []model.ScoreInputs{
		{UtilizationPercent: 5, OnTimeStreakMonths: 30, RecentInquiries: 0},
		{UtilizationPercent: 45, OnTimeStreakMonths: 8, RecentInquiries: 2},
		{UtilizationPercent: 95, OnTimeStreakMonths: 0, RecentInquiries: 8},
	}
	for _, in := range grids {
		for _, base := range []int{320, 580, 700, 845} {
			sim := SimulateScore(base, in)
			if sim.MinScore > sim.LikelyScore || sim.LikelyScore > sim.MaxScore {
				t.Errorf("base %d util %.0f: band %d/%d/%d out of order",
					base, in.UtilizationPercent, sim.MinScore, sim.LikelyScore, sim.MaxScore)
			}
			if sim.MinScore < 300 || sim.MaxScore > 850 {
				t.Errorf("base %d util %.0f: band [%d, %d] escapes [300, 850]",
					base, in.UtilizationPercent, sim.MinScore, sim.MaxScore)
			}
		}
	}
}

func TestSimulateScore_StrongHabitsLiftWeakScore(t *testing.T) {
	sim := SimulateScore(580, model.ScoreInputs{
		UtilizationPercent: 9,
		OnTimeStreakMonths: 24,
		RecentInquiries:    0,
	})
	if sim.LikelyScore < 580 {
		t.Errorf("LikelyScore = %d, want >= 580 with ideal inputs", sim.LikelyScore)
	}
	if sim.Factors.Utilization.ImpactPoints >= 0 {
		t.Errorf("utilization impact = %.0f, want bonus (negative) under 10%%", sim.Factors.Utilization.ImpactPoints)
	}
	if sim.Factors.PaymentHistory.ImpactPoints >= 0 {
		t.Errorf("payment impact = %.0f, want bonus with 24-month streak", sim.Factors.PaymentHistory.ImpactPoints)
	}
}

func TestSimulateScore_MaxedOutCardDragsScore(t *testing.T) {
	good := SimulateScore(700, model.ScoreInputs{UtilizationPercent: 20, OnTimeStreakMonths: 12})
	bad := SimulateScore(700, model.ScoreInputs{UtilizationPercent: 95, OnTimeStreakMonths: 12})
	if bad.LikelyScore >= good.LikelyScore {
		t.Errorf("maxed utilization likely = %d, want below healthy utilization's %d",
			bad.LikelyScore, good.LikelyScore)
	}
}

func TestSimulateScore_ClampsOutOfDomainInputs(t *testing.T) {
	over := SimulateScore(999, model.ScoreInputs{UtilizationPercent: 250, OnTimeStreakMonths: -3, RecentInquiries: -1})
	capped := SimulateScore(850, model.ScoreInputs{UtilizationPercent: 100, OnTimeStreakMonths: 0, RecentInquiries: 0})
	if over.LikelyScore != capped.LikelyScore {
		t.Errorf("clamped projection = %d, want %d (inputs clamped to domain)", over.LikelyScore, capped.LikelyScore)
	}
	if over.MinScore < 300 {
		t.Errorf("MinScore = %d, want >= 300", over.MinScore)
	}
}

func TestSimulateScore_FactorNotesPopulated(t *testing.T) {
	sim := SimulateScore(680, model.ScoreInputs{UtilizationPercent: 40, OnTimeStreakMonths: 7, RecentInquiries: 4})
	for name, f := range map[string]model.FactorImpact{
		"utilization":     sim.Factors.Utilization,
		"payment history": sim.Factors.PaymentHistory,
		"inquiries":       sim.Factors.Inquiries,
	} {
		if f.Note == "" {
			t.Errorf("%s factor has an empty note", name)
		}
	}
	if sim.TimeToImpact == "" {
		t.Error("TimeToImpact is empty")
	}
}

func TestSimulateScore_TimeToImpactTracksLargestFactor(t *testing.T) {
	mild := SimulateScore(720, model.ScoreInputs{UtilizationPercent: 8, OnTimeStreakMonths: 12, RecentInquiries: 0})
	if mild.TimeToImpact != "1-2 cycles" {
		t.Errorf("mild inputs TimeToImpact = %q, want %q", mild.TimeToImpact, "1-2 cycles")
	}
	severe := SimulateScore(720, model.ScoreInputs{UtilizationPercent: 90, OnTimeStreakMonths: 0, RecentInquiries: 7})
	if severe.TimeToImpact != "6-12 months" {
		t.Errorf("severe inputs TimeToImpact = %q, want %q", severe.TimeToImpact, "6-12 months")
	}
}
