package engine

import (
	"reflect"
	"testing"
	"time"

	"credsim/internal/model"
)

// Every simulator is a pure transform: repeating a call with identical inputs
// must reproduce the result exactly, field for field.
func TestSimulators_RepeatInvocationsMatch(t *testing.T) {
	snap := debtSnapshot(t, 6000, 15000, 650)

	in := model.ScoreInputs{UtilizationPercent: 40, OnTimeStreakMonths: 7, RecentInquiries: 2}
	if a, b := SimulateScore(650, in), SimulateScore(650, in); !reflect.DeepEqual(a, b) {
		t.Errorf("SimulateScore diverged across identical calls:\n first %+v\nsecond %+v", a, b)
	}

	planA := CalculateBurnDown(snap, 500, model.PayoffModerate)
	planB := CalculateBurnDown(snap, 500, model.PayoffModerate)
	// TargetDate is derived from the wall clock; everything else must match.
	planA.TargetDate, planB.TargetDate = time.Time{}, time.Time{}
	if !reflect.DeepEqual(planA, planB) {
		t.Errorf("CalculateBurnDown diverged across identical calls:\n first %+v\nsecond %+v", planA, planB)
	}

	matchA := BestMigrationCard(testCatalog(), 5000, 0.24, model.StrategyBestROI)
	matchB := BestMigrationCard(testCatalog(), 5000, 0.24, model.StrategyBestROI)
	if !reflect.DeepEqual(matchA, matchB) {
		t.Errorf("BestMigrationCard diverged across identical calls:\n first %+v\nsecond %+v", matchA, matchB)
	}

	action := model.FinancialAction{Kind: model.ActionLargePurchase, Amount: 2000}
	if a, b := SimulateAction(snap, action, nil), SimulateAction(snap, action, nil); !reflect.DeepEqual(a, b) {
		t.Errorf("SimulateAction diverged across identical calls:\n first %+v\nsecond %+v", a, b)
	}
}
