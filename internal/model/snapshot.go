// Package model defines domain types for credit snapshots and simulation results.
package model

import "time"

// Score range bounds shared across the engine.
const (
	ScoreFloor   = 300
	ScoreCeiling = 850
)

// ScoreBand holds the user's current credit score reading.
type ScoreBand struct {
	Value       int       `json:"value"`
	RangeLow    int       `json:"range_low"`
	RangeHigh   int       `json:"range_high"`
	LastUpdated time.Time `json:"last_updated"`
}

// UtilizationSummary holds aggregate revolving utilization across all cards.
type UtilizationSummary struct {
	TotalLimit         float64 `json:"total_limit"`
	TotalBalance       float64 `json:"total_balance"`
	CurrentUtilization float64 `json:"current_utilization"` // fraction 0-1
	OptimalUtilization float64 `json:"optimal_utilization"` // fraction 0-1
}

// CardSummary holds one linked revolving account.
type CardSummary struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Balance        float64    `json:"balance"`
	Limit          float64    `json:"limit"`
	Utilization    float64    `json:"utilization"` // fraction 0-1
	PaymentDueDate *time.Time `json:"payment_due_date,omitempty"`
	MinimumPayment *float64   `json:"minimum_payment,omitempty"`
}

// AccountAge holds the age of one account in months.
type AccountAge struct {
	CardID    string `json:"card_id"`
	AgeMonths int    `json:"age_months"`
}

// CreditSnapshot is the read-only input every simulator consumes.
// The engine never mutates it.
type CreditSnapshot struct {
	Score       ScoreBand          `json:"score"`
	Utilization UtilizationSummary `json:"utilization"`
	Cards       []CardSummary      `json:"cards"`
	AccountAges []AccountAge       `json:"account_ages,omitempty"`
}

// MigrationCard is one balance-transfer offer in the static catalog.
type MigrationCard struct {
	ID                    string            `json:"id"`
	Issuer                string            `json:"issuer"`
	Name                  string            `json:"name"`
	PromoMonths           int               `json:"promo_months"`
	TransferFeeRate       float64           `json:"transfer_fee_rate"` // fraction 0-1
	PurchaseAPRAfterPromo float64           `json:"purchase_apr_after_promo"`
	MinTransfer           float64           `json:"min_transfer"`
	MaxTransfer           float64           `json:"max_transfer"`
	StrategyTag           MigrationStrategy `json:"strategy_tag"`
	CashbackRate          float64           `json:"cashback_rate,omitempty"`
	GraceDuringTransfer   bool              `json:"grace_during_transfer"`
}

// FinancingOffer is a merchant zero-APR financing deal.
type FinancingOffer struct {
	Merchant    string `json:"merchant"`
	TermMonths  int    `json:"term_months"`
	Description string `json:"description"`
}

// PayoffStrategy selects how aggressively a burn-down plan is paced.
type PayoffStrategy string

const (
	PayoffAggressive   PayoffStrategy = "aggressive"
	PayoffModerate     PayoffStrategy = "moderate"
	PayoffConservative PayoffStrategy = "conservative"
)

// MigrationStrategy selects how balance-transfer offers are ranked.
type MigrationStrategy string

const (
	StrategyBestROI    MigrationStrategy = "best_roi"
	StrategyDebtPayoff MigrationStrategy = "debt_payoff"
	StrategyMaxTime    MigrationStrategy = "max_time"
	StrategyPurchases  MigrationStrategy = "purchases"
	StrategyFeeAverse  MigrationStrategy = "fee_averse"
)

// ActionKind tags a hypothetical financial action.
type ActionKind string

const (
	ActionLargePurchase     ActionKind = "LARGE_PURCHASE"
	ActionNewCreditLine     ActionKind = "NEW_CREDIT_LINE"
	ActionDebtConsolidation ActionKind = "DEBT_CONSOLIDATION"
	ActionPayment           ActionKind = "PAYMENT"
	ActionBalanceTransfer   ActionKind = "BALANCE_TRANSFER"
)

// FinancialAction is one hypothetical action to run through the impact simulator.
type FinancialAction struct {
	Kind         ActionKind `json:"kind"`
	Amount       float64    `json:"amount"`
	Merchant     string     `json:"merchant,omitempty"`
	TargetCardID string     `json:"target_card_id,omitempty"`
}

// ScoreInputs are the transient knobs for one score simulation.
type ScoreInputs struct {
	UtilizationPercent float64 `json:"utilization_percent"` // 0-100
	OnTimeStreakMonths int     `json:"on_time_streak_months"`
	RecentInquiries    int     `json:"recent_inquiries"`
}
