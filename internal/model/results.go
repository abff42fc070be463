package model

import "time"

// FactorImpact holds one scoring factor's contribution to a simulation.
type FactorImpact struct {
	ImpactPoints float64 `json:"impact_points"` // penalty fraction, negative = bonus
	Note         string  `json:"note"`
}

// ScoreFactors groups the three variable factors of a score simulation.
type ScoreFactors struct {
	Utilization    FactorImpact `json:"utilization"`
	PaymentHistory FactorImpact `json:"payment_history"`
	Inquiries      FactorImpact `json:"inquiries"`
}

// ScoreSimulation is the result of one score projection.
// Invariant: MinScore <= LikelyScore <= MaxScore, all within [300, 850].
type ScoreSimulation struct {
	MinScore     int          `json:"min_score"`
	LikelyScore  int          `json:"likely_score"`
	MaxScore     int          `json:"max_score"`
	TimeToImpact string       `json:"time_to_impact"`
	Factors      ScoreFactors `json:"factors"`
}

// MilestoneKind names a discrete burn-down event.
type MilestoneKind string

const (
	MilestoneBehavioralAlpha MilestoneKind = "behavioral_alpha"
	MilestoneHealthy         MilestoneKind = "healthy"
	MilestoneElite           MilestoneKind = "elite"
	MilestoneHalfway         MilestoneKind = "halfway"
	MilestoneDebtFree        MilestoneKind = "debt_free"
)

// Milestone is a named event in the burn-down timeline.
type Milestone struct {
	Kind       MilestoneKind `json:"kind"`
	Message    string        `json:"message"`
	ScoreBoost float64       `json:"score_boost"`
}

// BurnDownMonth is one simulated month of debt pay-down.
type BurnDownMonth struct {
	MonthIndex              int        `json:"month_index"`
	Balance                 float64    `json:"balance"`
	Score                   int        `json:"score"`
	ScoreChangeThisMonth    float64    `json:"score_change_this_month"`
	UtilizationPercent      float64    `json:"utilization_percent"`
	Milestone               *Milestone `json:"milestone,omitempty"`
	InterestSavedThisMonth  float64    `json:"interest_saved_this_month"`
	CumulativeInterestSaved float64    `json:"cumulative_interest_saved"`
}

// BurnDownSchedule is the full month-by-month payoff trajectory.
// Months[i].Balance is non-increasing; the schedule ends when the balance
// reaches zero or the 24-month horizon is exhausted, whichever comes first.
type BurnDownSchedule struct {
	Months             []BurnDownMonth `json:"months"`
	TotalMonths        int             `json:"total_months"`
	FinalScore         int             `json:"final_score"`
	TotalInterestSaved float64         `json:"total_interest_saved"`
	TargetDate         time.Time       `json:"target_date"`
	MonthlyPayment     float64         `json:"monthly_payment"`
	Strategy           PayoffStrategy  `json:"strategy"`
}

// MigrationValue quantifies one balance-transfer offer against a balance/APR pair.
// Invariant: NetSavings == InterestSavedOverPromo - TransferFee.
type MigrationValue struct {
	AnnualInterest         float64 `json:"annual_interest"`
	InterestSavedOverPromo float64 `json:"interest_saved_over_promo"`
	TransferFee            float64 `json:"transfer_fee"`
	NetSavings             float64 `json:"net_savings"`
	ROIPercent             float64 `json:"roi_percent"`
	BreakEvenMonths        int     `json:"break_even_months"`
}

// OpportunityCost frames an interest leak as a guaranteed-return equivalent.
type OpportunityCost struct {
	AnnualInterest   float64 `json:"annual_interest"`
	GuaranteedReturn float64 `json:"guaranteed_return"` // percent, capped at 100
}

// SimulationResult is the projected impact of one financial action.
type SimulationResult struct {
	ProjectedScore       int              `json:"projected_score"`
	ScoreDelta           int              `json:"score_delta"`
	ProjectedUtilization float64          `json:"projected_utilization"` // fraction 0-1
	MonthlyInterestLeak  float64          `json:"monthly_interest_leak"` // positive = cost
	RecoveryMonths       int              `json:"recovery_months"`
	Insight              string           `json:"insight"`
	OpportunityCost      *OpportunityCost `json:"opportunity_cost,omitempty"`
	ZeroGravityOption    *FinancingOffer  `json:"zero_gravity_option,omitempty"`
}
