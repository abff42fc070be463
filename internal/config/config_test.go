package config

import (
	"testing"

	"credsim/internal/model"
)

func TestLoad_ReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.PayoffStrategy != string(model.PayoffModerate) {
		t.Errorf("PayoffStrategy = %q, want %q", cfg.General.PayoffStrategy, model.PayoffModerate)
	}
	if cfg.Appearance.Theme != "ledger-dark" {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, "ledger-dark")
	}
	if Exists() {
		t.Error("Exists = true before any Save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	payment := 450.0
	apr := 0.2799
	cfg.General.MonthlyPayment = &payment
	cfg.General.MigrationStrategy = string(model.StrategyMaxTime)
	cfg.Assumptions.CardAPR = &apr
	cfg.Provider.BaseURL = "https://aggregator.example.com"
	cfg.Catalog.DisabledCards = []string{"everyday-15"}
	cfg.Catalog.ExtraCards = []ExtraCardEntry{{
		ID: "cu-9", Issuer: "Local CU", Name: "CU Nine",
		PromoMonths: 9, MinTransfer: 100, MaxTransfer: 5000,
		StrategyTag: string(model.StrategyFeeAverse),
	}}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.MonthlyPayment == nil || *got.General.MonthlyPayment != 450 {
		t.Errorf("MonthlyPayment = %v, want 450", got.General.MonthlyPayment)
	}
	if got.Assumptions.CardAPR == nil || *got.Assumptions.CardAPR != 0.2799 {
		t.Errorf("CardAPR = %v, want 0.2799", got.Assumptions.CardAPR)
	}
	if got.Provider.BaseURL != cfg.Provider.BaseURL {
		t.Errorf("BaseURL = %q, want %q", got.Provider.BaseURL, cfg.Provider.BaseURL)
	}
	if len(got.Catalog.ExtraCards) != 1 || got.Catalog.ExtraCards[0].ID != "cu-9" {
		t.Errorf("ExtraCards = %+v, want the cu-9 entry", got.Catalog.ExtraCards)
	}
}

func TestAssumedAPR(t *testing.T) {
	cfg := DefaultConfig()
	if got := AssumedAPR(cfg); got != DefaultAssumedAPR {
		t.Errorf("default AssumedAPR = %v, want %v", got, DefaultAssumedAPR)
	}
	apr := 0.1824
	cfg.Assumptions.CardAPR = &apr
	if got := AssumedAPR(cfg); got != 0.1824 {
		t.Errorf("AssumedAPR = %v, want 0.1824", got)
	}
	zero := 0.0
	cfg.Assumptions.CardAPR = &zero
	if got := AssumedAPR(cfg); got != DefaultAssumedAPR {
		t.Errorf("zero APR AssumedAPR = %v, want fallback %v", got, DefaultAssumedAPR)
	}
}

func TestStrategyParsing_FallsBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.PayoffStrategy = "yolo"
	cfg.General.MigrationStrategy = "whatever"

	if got := PayoffStrategy(cfg); got != model.PayoffModerate {
		t.Errorf("PayoffStrategy = %q, want moderate fallback", got)
	}
	if got := MigrationStrategy(cfg); got != model.StrategyBestROI {
		t.Errorf("MigrationStrategy = %q, want best_roi fallback", got)
	}

	cfg.General.PayoffStrategy = string(model.PayoffAggressive)
	cfg.General.MigrationStrategy = string(model.StrategyFeeAverse)
	if got := PayoffStrategy(cfg); got != model.PayoffAggressive {
		t.Errorf("PayoffStrategy = %q, want aggressive", got)
	}
	if got := MigrationStrategy(cfg); got != model.StrategyFeeAverse {
		t.Errorf("MigrationStrategy = %q, want fee_averse", got)
	}
}

func TestGetProviderAPIKey_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.APIKey = "from-config"

	t.Setenv("CREDSIM_PROVIDER_KEY", "")
	if got := GetProviderAPIKey(cfg); got != "from-config" {
		t.Errorf("key = %q, want config value", got)
	}
	t.Setenv("CREDSIM_PROVIDER_KEY", "from-env")
	if got := GetProviderAPIKey(cfg); got != "from-env" {
		t.Errorf("key = %q, want env value", got)
	}
}

func TestCatalogOverrides_MapsExtraCards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.DisabledCards = []string{"reflect-21"}
	cfg.Catalog.ExtraCards = []ExtraCardEntry{{
		ID: "cu-12", Issuer: "Local CU", Name: "CU Twelve",
		PromoMonths: 12, TransferFeeRate: 0.02, PurchaseAPR: 0.1999,
		MinTransfer: 200, MaxTransfer: 9000,
		StrategyTag: string(model.StrategyDebtPayoff), GraceDuringTransfer: true,
	}}

	disabled, extra := CatalogOverrides(cfg)
	if len(disabled) != 1 || disabled[0] != "reflect-21" {
		t.Errorf("disabled = %v, want [reflect-21]", disabled)
	}
	if len(extra) != 1 {
		t.Fatalf("extra = %d cards, want 1", len(extra))
	}
	card := extra[0]
	if card.StrategyTag != model.StrategyDebtPayoff {
		t.Errorf("StrategyTag = %q, want debt_payoff", card.StrategyTag)
	}
	if card.PurchaseAPRAfterPromo != 0.1999 {
		t.Errorf("PurchaseAPRAfterPromo = %v, want 0.1999", card.PurchaseAPRAfterPromo)
	}
	if !card.GraceDuringTransfer {
		t.Error("GraceDuringTransfer not carried through")
	}
}
