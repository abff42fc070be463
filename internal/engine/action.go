package engine

import (
	"fmt"
	"math"

	"credsim/internal/model"
)

// Action model constants.
const (
	// purchaseAPR is the assumed APR on new revolving purchases.
	purchaseAPR = 0.22

	// consolidationAPR is the assumed installment-loan APR a consolidation
	// refinances into.
	consolidationAPR = 0.10

	// recoveryPointsPerMonth is how many points a typical profile claws back
	// per month after a hit.
	recoveryPointsPerMonth = 1.2
)

// FinancingSource resolves merchant promotional financing offers. A nil
// source means no offers are known.
type FinancingSource interface {
	FinancingOffer(merchant string) (model.FinancingOffer, bool)
}

// SimulateAction projects the impact of a single hypothetical action on the
// snapshot: score delta, resulting utilization, and the monthly interest leak
// (positive = cost, negative = savings).
func SimulateAction(snap *model.CreditSnapshot, action model.FinancialAction, offers FinancingSource) model.SimulationResult {
	amount := action.Amount
	if amount < 0 {
		amount = 0
	}

	balance := snap.Utilization.TotalBalance
	limit := snap.Utilization.TotalLimit
	currentUtil := snap.Utilization.CurrentUtilization

	var r model.SimulationResult
	r.ProjectedUtilization = currentUtil

	switch action.Kind {
	case model.ActionLargePurchase:
		r = simulatePurchase(balance, limit, amount, action.Merchant, offers)

	case model.ActionNewCreditLine:
		r.ScoreDelta = -10
		r.Insight = "A new line means a hard pull now for more headroom later."
		if agePenaltyApplies(snap.AccountAges) {
			r.ScoreDelta -= 5
			r.Insight = "The hard pull plus a big drop in average account age stings twice."
		}

	case model.ActionDebtConsolidation:
		r.ScoreDelta = 35
		newBalance := balance - amount
		if newBalance < 0 {
			newBalance = 0
		}
		r.ProjectedUtilization = utilizationFraction(newBalance, limit)
		// Savings of moving revolving debt onto an installment loan.
		r.MonthlyInterestLeak = -amount * (purchaseAPR - consolidationAPR) / 12
		r.Insight = fmt.Sprintf("Consolidating %s of revolving debt lifts utilization pressure immediately.", formatAmount(amount))

	case model.ActionPayment:
		r = simulatePayment(currentUtil, limit, amount)

	case model.ActionBalanceTransfer:
		// Utilization is unchanged: the debt moves, it doesn't shrink.
		r.ProjectedUtilization = currentUtil
		r.MonthlyInterestLeak = -amount * purchaseAPR / 12
		r.Insight = fmt.Sprintf("Transferring %s pauses roughly %s/month of interest during the promo.", formatAmount(amount), formatAmount(amount*purchaseAPR/12))
	}

	r.ProjectedScore = clampScore(snap.Score.Value + r.ScoreDelta)
	if r.ScoreDelta < 0 {
		r.RecoveryMonths = int(math.Ceil(float64(-r.ScoreDelta) / recoveryPointsPerMonth))
	}
	return r
}

func simulatePurchase(balance, limit, amount float64, merchant string, offers FinancingSource) model.SimulationResult {
	newUtil := utilizationFraction(balance+amount, limit)

	var r model.SimulationResult
	r.ProjectedUtilization = newUtil

	switch {
	case newUtil > 0.50:
		r.ScoreDelta = -45
	case newUtil > 0.30:
		r.ScoreDelta = -20
	case newUtil > 0.10:
		r.ScoreDelta = -5
	}

	if offers != nil && merchant != "" {
		if offer, ok := offers.FinancingOffer(merchant); ok {
			r.ZeroGravityOption = &offer
			r.Insight = fmt.Sprintf("%s offers %d months at 0%% — the purchase can float free of interest.", offer.Merchant, offer.TermMonths)
			return r
		}
	}

	annualInterest := amount * purchaseAPR
	r.MonthlyInterestLeak = annualInterest / 12
	r.Insight = fmt.Sprintf("Carrying this purchase leaks about %s/month in interest.", formatAmount(r.MonthlyInterestLeak))

	if r.MonthlyInterestLeak > 0 && amount > 0 {
		r.OpportunityCost = &model.OpportunityCost{
			AnnualInterest:   annualInterest,
			GuaranteedReturn: math.Min(100, annualInterest/amount*100),
		}
	}
	return r
}

func simulatePayment(currentUtil, limit, amount float64) model.SimulationResult {
	var r model.SimulationResult

	reduction := 0.0
	if limit > 0 {
		reduction = amount / limit
	}
	newUtil := currentUtil - reduction
	if newUtil < 0 {
		newUtil = 0
	}
	r.ProjectedUtilization = newUtil

	switch {
	case currentUtil > 0.30 && newUtil <= 0.30:
		r.ScoreDelta = 20
	case currentUtil > 0.50 && newUtil <= 0.50:
		r.ScoreDelta = 15
	default:
		r.ScoreDelta = int(math.Round((currentUtil - newUtil) * 50))
	}

	r.MonthlyInterestLeak = -amount * purchaseAPR / 12
	r.Insight = fmt.Sprintf("Paying down %s drops utilization to %.0f%% and saves %s/month.", formatAmount(amount), newUtil*100, formatAmount(-r.MonthlyInterestLeak))
	return r
}

// agePenaltyApplies reports whether adding a brand-new account would drop the
// average account age by more than 10%. Without age data the extra penalty is
// skipped.
func agePenaltyApplies(ages []model.AccountAge) bool {
	if len(ages) == 0 {
		return false
	}
	total := 0
	for _, a := range ages {
		total += a.AgeMonths
	}
	oldAvg := float64(total) / float64(len(ages))
	if oldAvg <= 0 {
		return false
	}
	newAvg := float64(total) / float64(len(ages)+1)
	return (oldAvg-newAvg)/oldAvg > 0.10
}

func utilizationFraction(balance, limit float64) float64 {
	if limit <= 0 || balance <= 0 {
		return 0
	}
	return balance / limit
}

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}
