package engine

import (
	"math"
	"time"

	"credsim/internal/model"
)

// Burn-down model constants.
const (
	// burnDownHorizon caps the simulation at 24 monthly records including the
	// synthetic initiation month. A balance that never reaches zero inside the
	// horizon is a valid outcome, not an error.
	burnDownHorizon = 24

	// assumedCardAPR is the flat APR assumed for revolving balances.
	assumedCardAPR = 0.24

	// initiationInquiryPenalty models the one-time credit pull of opening the
	// new account at month 0.
	initiationInquiryPenalty = 10

	// consistencyDrip is added every month regardless of milestones.
	consistencyDrip = 1.5
)

// Milestone score boosts.
const (
	boostElite    = 5
	boostHealthy  = 3
	boostCadence  = 2
	boostHalfway  = 5
	boostDebtFree = 10
)

// CalculateBurnDown simulates paying monthlyPayment against the snapshot's
// total balance month by month. Month 0 is a synthetic initiation record
// carrying the inquiry penalty; every following month applies the payment,
// accrues avoided interest at the assumed APR, and evaluates milestone boosts.
// All boosts that fire in a month are additive, but only the highest-priority
// milestone is recorded on that month's record.
func CalculateBurnDown(snap *model.CreditSnapshot, monthlyPayment float64, strategy model.PayoffStrategy) model.BurnDownSchedule {
	if monthlyPayment < 0 {
		monthlyPayment = 0
	}

	originalBalance := snap.Utilization.TotalBalance
	if originalBalance < 0 {
		originalBalance = 0
	}
	totalLimit := snap.Utilization.TotalLimit

	balance := originalBalance
	score := float64(clampScore(snap.Score.Value))
	cumulativeSaved := 0.0
	halfwayHit := false

	// Month 0: initiation. The new-account credit pull costs points before the
	// first payment lands.
	change := applyBoost(&score, consistencyDrip-initiationInquiryPenalty)
	months := []model.BurnDownMonth{{
		MonthIndex:           0,
		Balance:              balance,
		Score:                int(math.Round(score)),
		ScoreChangeThisMonth: change,
		UtilizationPercent:   utilizationPercent(balance, totalLimit),
		Milestone: &model.Milestone{
			Kind:       model.MilestoneBehavioralAlpha,
			Message:    "Migration initiated — expect a small dip from the credit pull",
			ScoreBoost: -initiationInquiryPenalty,
		},
	}}

	for m := 1; m < burnDownHorizon && balance > 0; m++ {
		balance -= monthlyPayment
		if balance < 0 {
			balance = 0
		}

		saved := balance * assumedCardAPR / 12
		cumulativeSaved += saved

		boost := consistencyDrip
		var milestone *model.Milestone

		if m%3 == 0 {
			boost += boostCadence
			milestone = &model.Milestone{
				Kind:       model.MilestoneBehavioralAlpha,
				Message:    "Another quarter of consistent payments in the books",
				ScoreBoost: boostCadence,
			}
		}

		util := utilizationPercent(balance, totalLimit)
		if m > 1 {
			switch {
			case util < 10:
				boost += boostElite
				milestone = &model.Milestone{
					Kind:       model.MilestoneElite,
					Message:    "Utilization dropped below 10% — elite territory",
					ScoreBoost: boostElite,
				}
			case util < 30:
				boost += boostHealthy
				milestone = &model.Milestone{
					Kind:       model.MilestoneHealthy,
					Message:    "Utilization under 30% — back in the healthy zone",
					ScoreBoost: boostHealthy,
				}
			}
		}

		if !halfwayHit && balance <= originalBalance/2 {
			halfwayHit = true
			boost += boostHalfway
			milestone = &model.Milestone{
				Kind:       model.MilestoneHalfway,
				Message:    "Halfway — half the original balance is gone",
				ScoreBoost: boostHalfway,
			}
		}

		if balance == 0 {
			boost += boostDebtFree
			milestone = &model.Milestone{
				Kind:       model.MilestoneDebtFree,
				Message:    "Debt free — the balance is fully paid off",
				ScoreBoost: boostDebtFree,
			}
		}

		change := applyBoost(&score, boost)
		months = append(months, model.BurnDownMonth{
			MonthIndex:              m,
			Balance:                 balance,
			Score:                   int(math.Round(score)),
			ScoreChangeThisMonth:    change,
			UtilizationPercent:      util,
			Milestone:               milestone,
			InterestSavedThisMonth:  saved,
			CumulativeInterestSaved: cumulativeSaved,
		})
	}

	totalMonths := months[len(months)-1].MonthIndex
	return model.BurnDownSchedule{
		Months:             months,
		TotalMonths:        totalMonths,
		FinalScore:         months[len(months)-1].Score,
		TotalInterestSaved: cumulativeSaved,
		TargetDate:         time.Now().AddDate(0, totalMonths, 0),
		MonthlyPayment:     monthlyPayment,
		Strategy:           strategy,
	}
}

// OptimalPayment sizes a monthly payment to clear the balance before a promo
// window ends, leaving a strategy-dependent buffer: 2 months aggressive, 1
// moderate, 0 conservative.
func OptimalPayment(balance float64, promoMonths int, strategy model.PayoffStrategy) float64 {
	if balance <= 0 {
		return 0
	}

	buffer := 0
	switch strategy {
	case model.PayoffAggressive:
		buffer = 2
	case model.PayoffModerate:
		buffer = 1
	}

	target := promoMonths - buffer
	if target < 1 {
		target = 1
	}
	return math.Ceil(balance / float64(target))
}

// applyBoost adds boost to the score, clamping to the valid range, and returns
// the change that actually landed.
func applyBoost(score *float64, boost float64) float64 {
	before := *score
	after := before + boost
	if after > model.ScoreCeiling {
		after = model.ScoreCeiling
	}
	if after < model.ScoreFloor {
		after = model.ScoreFloor
	}
	*score = after
	return after - before
}

func utilizationPercent(balance, limit float64) float64 {
	if limit <= 0 || balance <= 0 {
		return 0
	}
	return balance / limit * 100
}
