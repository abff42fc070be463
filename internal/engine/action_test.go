package engine

import (
	"math"
	"testing"

	"credsim/internal/model"
)

// fakeOffers serves a fixed financing table for purchase simulations.
type fakeOffers map[string]model.FinancingOffer

func (f fakeOffers) FinancingOffer(merchant string) (model.FinancingOffer, bool) {
	offer, ok := f[merchant]
	return offer, ok
}

func TestSimulateAction_PurchasePushesUtilizationOver50(t *testing.T) {
	snap := debtSnapshot(t, 4000, 10000, 700)
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionLargePurchase, Amount: 2000}, nil)

	if r.ScoreDelta != -45 {
		t.Errorf("ScoreDelta = %d, want -45 when utilization crosses 50%%", r.ScoreDelta)
	}
	if r.ProjectedUtilization != 0.60 {
		t.Errorf("ProjectedUtilization = %.2f, want 0.60", r.ProjectedUtilization)
	}
	if r.ProjectedScore != 655 {
		t.Errorf("ProjectedScore = %d, want 655", r.ProjectedScore)
	}
	// 45 points back at 1.2/month.
	if r.RecoveryMonths != 38 {
		t.Errorf("RecoveryMonths = %d, want 38", r.RecoveryMonths)
	}
	if r.MonthlyInterestLeak <= 0 {
		t.Errorf("MonthlyInterestLeak = %.2f, want positive carrying cost", r.MonthlyInterestLeak)
	}
	if r.OpportunityCost == nil {
		t.Fatal("OpportunityCost is nil, want it populated for a carried purchase")
	}
	if r.OpportunityCost.GuaranteedReturn != 22 {
		t.Errorf("GuaranteedReturn = %.0f, want 22 (the purchase APR)", r.OpportunityCost.GuaranteedReturn)
	}
}

func TestSimulateAction_PurchaseWithFinancingOffer(t *testing.T) {
	snap := debtSnapshot(t, 1000, 10000, 720)
	offers := fakeOffers{"apple": {Merchant: "Apple", TermMonths: 12, Description: "Apple Card monthly installments"}}

	r := SimulateAction(snap, model.FinancialAction{
		Kind: model.ActionLargePurchase, Amount: 1500, Merchant: "apple",
	}, offers)

	if r.ZeroGravityOption == nil {
		t.Fatal("ZeroGravityOption is nil, want the merchant offer")
	}
	if r.ZeroGravityOption.TermMonths != 12 {
		t.Errorf("offer TermMonths = %d, want 12", r.ZeroGravityOption.TermMonths)
	}
	if r.MonthlyInterestLeak != 0 {
		t.Errorf("MonthlyInterestLeak = %.2f, want 0 with promotional financing", r.MonthlyInterestLeak)
	}
	if r.OpportunityCost != nil {
		t.Error("OpportunityCost set despite a zero-interest offer")
	}
	// Utilization still moves even when the financing is free.
	if r.ScoreDelta != -5 {
		t.Errorf("ScoreDelta = %d, want -5 at 25%% utilization", r.ScoreDelta)
	}
}

func TestSimulateAction_PaymentCrossesHealthyThreshold(t *testing.T) {
	snap := debtSnapshot(t, 4500, 10000, 660) // 45% utilization
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionPayment, Amount: 2000}, nil)

	if r.ProjectedUtilization != 0.25 {
		t.Errorf("ProjectedUtilization = %.2f, want 0.25", r.ProjectedUtilization)
	}
	if r.ScoreDelta != 20 {
		t.Errorf("ScoreDelta = %d, want 20 for crossing below 30%%", r.ScoreDelta)
	}
	if r.MonthlyInterestLeak >= 0 {
		t.Errorf("MonthlyInterestLeak = %.2f, want negative (savings)", r.MonthlyInterestLeak)
	}
	if r.RecoveryMonths != 0 {
		t.Errorf("RecoveryMonths = %d, want 0 for a positive delta", r.RecoveryMonths)
	}
}

func TestSimulateAction_SmallPaymentProportionalDelta(t *testing.T) {
	snap := debtSnapshot(t, 8000, 10000, 620) // 80%, stays above 50%
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionPayment, Amount: 1000}, nil)

	if r.ProjectedUtilization != 0.70 {
		t.Errorf("ProjectedUtilization = %.2f, want 0.70", r.ProjectedUtilization)
	}
	// 10 points of utilization at 50 points per full swing.
	if r.ScoreDelta != 5 {
		t.Errorf("ScoreDelta = %d, want 5", r.ScoreDelta)
	}
}

func TestSimulateAction_ConsolidationClampsAtCeiling(t *testing.T) {
	snap := debtSnapshot(t, 6000, 12000, 840)
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionDebtConsolidation, Amount: 6000}, nil)

	if r.ScoreDelta != 35 {
		t.Errorf("ScoreDelta = %d, want 35", r.ScoreDelta)
	}
	if r.ProjectedScore != 850 {
		t.Errorf("ProjectedScore = %d, want ceiling 850", r.ProjectedScore)
	}
	if r.ProjectedUtilization != 0 {
		t.Errorf("ProjectedUtilization = %.2f, want 0 after consolidating everything", r.ProjectedUtilization)
	}
	wantLeak := -6000 * (0.22 - 0.10) / 12
	if math.Abs(r.MonthlyInterestLeak-wantLeak) > 0.01 {
		t.Errorf("MonthlyInterestLeak = %.2f, want %.2f", r.MonthlyInterestLeak, wantLeak)
	}
}

func TestSimulateAction_NewLineWithYoungAccounts(t *testing.T) {
	snap := debtSnapshot(t, 2000, 10000, 700)
	snap.AccountAges = []model.AccountAge{{CardID: "test-card", AgeMonths: 60}}

	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionNewCreditLine}, nil)
	// One existing account: a new line halves the average age.
	if r.ScoreDelta != -15 {
		t.Errorf("ScoreDelta = %d, want -15 with the age penalty", r.ScoreDelta)
	}
	if r.RecoveryMonths != 13 {
		t.Errorf("RecoveryMonths = %d, want 13", r.RecoveryMonths)
	}

	snap.AccountAges = nil
	r = SimulateAction(snap, model.FinancialAction{Kind: model.ActionNewCreditLine}, nil)
	if r.ScoreDelta != -10 {
		t.Errorf("ScoreDelta = %d, want -10 without age data", r.ScoreDelta)
	}
}

func TestSimulateAction_BalanceTransferKeepsUtilization(t *testing.T) {
	snap := debtSnapshot(t, 5000, 10000, 680)
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionBalanceTransfer, Amount: 5000}, nil)

	if r.ProjectedUtilization != 0.50 {
		t.Errorf("ProjectedUtilization = %.2f, want unchanged 0.50", r.ProjectedUtilization)
	}
	if r.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, want 0", r.ScoreDelta)
	}
	wantLeak := -5000 * 0.22 / 12
	if math.Abs(r.MonthlyInterestLeak-wantLeak) > 0.01 {
		t.Errorf("MonthlyInterestLeak = %.2f, want %.2f", r.MonthlyInterestLeak, wantLeak)
	}
}

func TestSimulateAction_NegativeAmountTreatedAsZero(t *testing.T) {
	snap := debtSnapshot(t, 3000, 10000, 700)
	r := SimulateAction(snap, model.FinancialAction{Kind: model.ActionLargePurchase, Amount: -500}, nil)

	if r.ProjectedUtilization != 0.30 {
		t.Errorf("ProjectedUtilization = %.2f, want unchanged 0.30", r.ProjectedUtilization)
	}
	if r.MonthlyInterestLeak != 0 {
		t.Errorf("MonthlyInterestLeak = %.2f, want 0 for a zero amount", r.MonthlyInterestLeak)
	}
	if r.OpportunityCost != nil {
		t.Error("OpportunityCost set for a zero amount")
	}
}
