// Package engine implements the credit trajectory simulators: score projection,
// debt burn-down scheduling, balance-transfer optimization, and single-action
// impact analysis. Every function is a pure transform from immutable inputs to
// a freshly allocated result; there is no I/O and no shared state, so callers
// may invoke the engine concurrently and on every input change.
package engine

import (
	"math"

	"credsim/internal/model"
)

// Factor weights of the simplified scoring model. The remaining 25% ("other":
// account age and credit mix) is held constant from the current score.
const (
	weightUtilization    = 0.30
	weightPaymentHistory = 0.35
	weightInquiries      = 0.10
	weightOther          = 0.25
)

// Half-width of the projected score band around the likely score.
const scoreBandSpread = 30

// SimulateScore projects a score band from utilization, payment streak, and
// inquiry inputs. Out-of-domain inputs are clamped, never rejected.
func SimulateScore(currentScore int, in model.ScoreInputs) model.ScoreSimulation {
	current := clampScore(currentScore)

	util := in.UtilizationPercent
	if util < 0 {
		util = 0
	}
	if util > 100 {
		util = 100
	}
	streak := in.OnTimeStreakMonths
	if streak < 0 {
		streak = 0
	}
	inquiries := in.RecentInquiries
	if inquiries < 0 {
		inquiries = 0
	}

	utilFactor := utilizationImpact(util)
	payFactor := paymentHistoryImpact(streak)
	inqFactor := inquiryImpact(inquiries)

	projected := float64(current)*weightOther +
		factorContribution(weightUtilization, utilFactor.ImpactPoints) +
		factorContribution(weightPaymentHistory, payFactor.ImpactPoints) +
		factorContribution(weightInquiries, inqFactor.ImpactPoints)

	likely := clampScore(int(math.Round(projected)))

	return model.ScoreSimulation{
		MinScore:     clampScore(likely - scoreBandSpread),
		LikelyScore:  likely,
		MaxScore:     clampScore(likely + scoreBandSpread),
		TimeToImpact: timeToImpact(utilFactor, payFactor, inqFactor),
		Factors: model.ScoreFactors{
			Utilization:    utilFactor,
			PaymentHistory: payFactor,
			Inquiries:      inqFactor,
		},
	}
}

// factorContribution maps an impact penalty (percent of the factor's maximum
// contribution) to the points the factor adds. A negative impact is a bonus.
func factorContribution(weight, impact float64) float64 {
	return float64(model.ScoreCeiling) * weight * (1 - impact/100)
}

func utilizationImpact(pct float64) model.FactorImpact {
	switch {
	case pct <= 9:
		return model.FactorImpact{ImpactPoints: -5, Note: "Excellent — utilization under 10% earns a scoring bonus"}
	case pct <= 30:
		return model.FactorImpact{ImpactPoints: 0, Note: "Healthy utilization, no penalty applied"}
	case pct <= 50:
		return model.FactorImpact{ImpactPoints: 10, Note: "Elevated utilization is costing you points"}
	case pct <= 75:
		return model.FactorImpact{ImpactPoints: 25, Note: "High utilization is the biggest drag on this projection"}
	default:
		return model.FactorImpact{ImpactPoints: 40, Note: "Near-maxed utilization is severely suppressing your score"}
	}
}

func paymentHistoryImpact(streakMonths int) model.FactorImpact {
	switch {
	case streakMonths >= 24:
		return model.FactorImpact{ImpactPoints: -10, Note: "24+ months of on-time payments — your strongest factor"}
	case streakMonths >= 12:
		return model.FactorImpact{ImpactPoints: 0, Note: "A solid year of on-time payments"}
	case streakMonths >= 6:
		return model.FactorImpact{ImpactPoints: 15, Note: "History is building — keep the streak going"}
	case streakMonths >= 3:
		return model.FactorImpact{ImpactPoints: 30, Note: "Streak is too short to carry much weight yet"}
	default:
		return model.FactorImpact{ImpactPoints: 50, Note: "Recent payment gaps are weighing heavily"}
	}
}

func inquiryImpact(count int) model.FactorImpact {
	switch {
	case count <= 1:
		return model.FactorImpact{ImpactPoints: 0, Note: "Minimal recent inquiries, no penalty"}
	case count <= 3:
		return model.FactorImpact{ImpactPoints: 5, Note: "A few recent inquiries — a minor drag"}
	case count <= 5:
		return model.FactorImpact{ImpactPoints: 15, Note: "Several recent inquiries are being noticed"}
	default:
		return model.FactorImpact{ImpactPoints: 25, Note: "Heavy inquiry activity — let applications rest"}
	}
}

// timeToImpact buckets the largest absolute factor impact into a label for
// how quickly the projection should materialize.
func timeToImpact(factors ...model.FactorImpact) string {
	maxAbs := 0.0
	for _, f := range factors {
		if a := math.Abs(f.ImpactPoints); a > maxAbs {
			maxAbs = a
		}
	}
	switch {
	case maxAbs <= 5:
		return "1-2 cycles"
	case maxAbs <= 15:
		return "2-3 cycles"
	case maxAbs <= 30:
		return "3-6 months"
	default:
		return "6-12 months"
	}
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
