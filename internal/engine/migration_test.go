package engine

import (
	"strings"
	"testing"

	"credsim/internal/model"
)

func testCatalog() []model.MigrationCard {
	return []model.MigrationCard{
		{
			ID: "long-21", Issuer: "First Bank", Name: "Long Promo",
			PromoMonths: 21, TransferFeeRate: 0.05,
			MinTransfer: 500, MaxTransfer: 20000,
			StrategyTag: model.StrategyMaxTime,
		},
		{
			ID: "cheap-15", Issuer: "Second Bank", Name: "Cheap Fee",
			PromoMonths: 15, TransferFeeRate: 0.03,
			MinTransfer: 500, MaxTransfer: 15000,
			StrategyTag: model.StrategyFeeAverse,
		},
		{
			ID: "free-12", Issuer: "Credit Union", Name: "Free Transfer",
			PromoMonths: 12, TransferFeeRate: 0,
			MinTransfer: 500, MaxTransfer: 10000,
			StrategyTag: model.StrategyFeeAverse, GraceDuringTransfer: true,
		},
		{
			ID: "cash-15", Issuer: "Third Bank", Name: "Cashback",
			PromoMonths: 15, TransferFeeRate: 0.04,
			MinTransfer: 500, MaxTransfer: 12000,
			StrategyTag: model.StrategyPurchases, CashbackRate: 0.05,
		},
	}
}

func TestEvaluateMigration_NetSavingsIdentity(t *testing.T) {
	card := testCatalog()[0]
	v := EvaluateMigration(card, 8000, 0.24)

	wantAnnual := 8000 * 0.24
	if v.AnnualInterest != wantAnnual {
		t.Errorf("AnnualInterest = %.2f, want %.2f", v.AnnualInterest, wantAnnual)
	}
	wantSaved := wantAnnual / 12 * 21
	if v.InterestSavedOverPromo != wantSaved {
		t.Errorf("InterestSavedOverPromo = %.2f, want %.2f", v.InterestSavedOverPromo, wantSaved)
	}
	wantFee := 8000 * 0.05
	if v.TransferFee != wantFee {
		t.Errorf("TransferFee = %.2f, want %.2f", v.TransferFee, wantFee)
	}
	if v.NetSavings != v.InterestSavedOverPromo-v.TransferFee {
		t.Errorf("NetSavings = %.2f, want saved minus fee %.2f", v.NetSavings, v.InterestSavedOverPromo-v.TransferFee)
	}
	if v.ROIPercent <= 0 {
		t.Errorf("ROIPercent = %.1f, want positive for a profitable transfer", v.ROIPercent)
	}
	// fee 400 against monthly interest 160 breaks even in month 3.
	if v.BreakEvenMonths != 3 {
		t.Errorf("BreakEvenMonths = %d, want 3", v.BreakEvenMonths)
	}
}

func TestEvaluateMigration_FreeTransferSentinel(t *testing.T) {
	free := testCatalog()[2]
	v := EvaluateMigration(free, 5000, 0.24)
	if v.ROIPercent != 9999 {
		t.Errorf("free-transfer ROIPercent = %.0f, want sentinel 9999", v.ROIPercent)
	}
	if v.BreakEvenMonths != 0 {
		t.Errorf("free-transfer BreakEvenMonths = %d, want 0", v.BreakEvenMonths)
	}
	if v.NetSavings != v.InterestSavedOverPromo {
		t.Errorf("NetSavings = %.2f, want full savings %.2f with no fee", v.NetSavings, v.InterestSavedOverPromo)
	}
}

func TestBestMigrationCard_StrategyRanking(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		strategy model.MigrationStrategy
		wantID   string
	}{
		{"best ROI picks the free transfer", model.StrategyBestROI, "free-12"},
		{"max time picks the longest promo", model.StrategyMaxTime, "long-21"},
		{"purchases picks the cashback card", model.StrategyPurchases, "cash-15"},
		{"fee averse picks the zero-fee card", model.StrategyFeeAverse, "free-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := BestMigrationCard(catalog, 5000, 0.24, tt.strategy)
			if match == nil {
				t.Fatal("got nil match, want a winner")
			}
			if match.Card.ID != tt.wantID {
				t.Errorf("winner = %s, want %s", match.Card.ID, tt.wantID)
			}
		})
	}
}

func TestBestMigrationCard_TransferLimitsFilter(t *testing.T) {
	catalog := testCatalog()
	if match := BestMigrationCard(catalog, 100, 0.24, model.StrategyBestROI); match != nil {
		t.Errorf("balance under every MinTransfer matched %s, want nil", match.Card.ID)
	}
	if match := BestMigrationCard(catalog, 50000, 0.24, model.StrategyBestROI); match != nil {
		t.Errorf("balance over every MaxTransfer matched %s, want nil", match.Card.ID)
	}
	// 18000 only fits the long-21 card's window.
	match := BestMigrationCard(catalog, 18000, 0.24, model.StrategyBestROI)
	if match == nil || match.Card.ID != "long-21" {
		t.Fatalf("got %+v, want long-21 as the only card absorbing 18000", match)
	}
	if match := BestMigrationCard(nil, 5000, 0.24, model.StrategyBestROI); match != nil {
		t.Error("empty catalog returned a match, want nil")
	}
}

func TestShouldConsiderMigration_Gates(t *testing.T) {
	small := debtSnapshot(t, 500, 5000, 680)
	if gate := ShouldConsiderMigration(small); gate.ShouldMigrate {
		t.Errorf("balance 500 gate = %+v, want no-migrate", gate)
	}

	// 2000 * 0.24 / 12 = $40/month, under the interest floor.
	lowInterest := debtSnapshot(t, 2000, 10000, 680)
	if gate := ShouldConsiderMigration(lowInterest); gate.ShouldMigrate {
		t.Errorf("low-interest gate = %+v, want no-migrate", gate)
	}

	big := debtSnapshot(t, 8000, 15000, 640)
	gate := ShouldConsiderMigration(big)
	if !gate.ShouldMigrate {
		t.Fatalf("balance 8000 gate = %+v, want migrate", gate)
	}
	if gate.Reason == "" {
		t.Error("gate reason is empty")
	}
}

func TestMigrationChecklist_SameIssuerCritical(t *testing.T) {
	source := model.CardSummary{ID: "citi-dc", Name: "Citi Double Cash", Balance: 6000}
	offer := model.MigrationCard{ID: "simplicity-18", Issuer: "Citi", Name: "Citi Simplicity", PromoMonths: 18, GraceDuringTransfer: true}

	items := MigrationChecklist(source, offer)
	if len(items) != 7 {
		t.Fatalf("checklist has %d items, want 7", len(items))
	}
	for i, item := range items {
		if item.Step != i+1 {
			t.Errorf("item %d Step = %d, want %d", i, item.Step, i+1)
		}
		if item.Title == "" || item.Detail == "" {
			t.Errorf("item %d has empty title or detail", i)
		}
	}
	if !items[1].Critical {
		t.Error("same-issuer item not critical for a Citi-to-Citi transfer")
	}
	if items[3].Critical {
		t.Error("spending item marked critical despite grace during transfer")
	}
}

func TestMigrationChecklist_NoGraceCritical(t *testing.T) {
	source := model.CardSummary{ID: "chase-f", Name: "Chase Freedom", Balance: 4000}
	offer := model.MigrationCard{ID: "reflect-21", Issuer: "Wells Fargo", Name: "Wells Fargo Reflect", PromoMonths: 21}

	items := MigrationChecklist(source, offer)
	if items[1].Critical {
		t.Error("same-issuer item critical for distinct issuers")
	}
	if !items[3].Critical {
		t.Error("spending item not critical when the offer has no grace period")
	}
	if !strings.Contains(items[5].Detail, "month 20") {
		t.Errorf("exit reminder detail = %q, want promo end minus one month (20)", items[5].Detail)
	}
}
