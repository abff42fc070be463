package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"credsim/internal/model"
)

// Migration gate thresholds.
const (
	// minBalanceForMigration is the floor below which transfer fees outweigh
	// any realistic interest savings.
	minBalanceForMigration = 1000

	// minMonthlyInterestForMigration is the monthly interest floor, evaluated
	// at the assumed card APR.
	minMonthlyInterestForMigration = 50
)

// roiSentinel stands in for an unbounded ROI when the transfer fee is zero,
// keeping results JSON-marshalable instead of leaking +Inf.
const roiSentinel = 9999

// MigrationMatch pairs the winning catalog card with its computed value.
type MigrationMatch struct {
	Card  model.MigrationCard  `json:"card"`
	Value model.MigrationValue `json:"value"`
}

// MigrationGate is the result of the should-we-even-bother check.
type MigrationGate struct {
	ShouldMigrate bool   `json:"should_migrate"`
	Reason        string `json:"reason"`
}

// ChecklistItem is one guardrail step in the migration checklist.
type ChecklistItem struct {
	Step     int    `json:"step"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Critical bool   `json:"critical"`
}

// BestMigrationCard ranks catalog cards that can absorb the balance and
// returns the winner with its value breakdown, or nil when no card qualifies.
// Nil is the legitimate "no good offer" outcome, not an error. Ties keep
// catalog order.
func BestMigrationCard(catalog []model.MigrationCard, balance, currentAPR float64, strategy model.MigrationStrategy) *MigrationMatch {
	var eligible []model.MigrationCard
	for _, card := range catalog {
		if balance < card.MinTransfer || balance > card.MaxTransfer {
			continue
		}
		if strategy != model.StrategyBestROI && card.StrategyTag != strategy {
			continue
		}
		eligible = append(eligible, card)
	}
	if len(eligible) == 0 {
		return nil
	}

	values := make([]model.MigrationValue, len(eligible))
	for i, card := range eligible {
		values[i] = EvaluateMigration(card, balance, currentAPR)
	}

	order := make([]int, len(eligible))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		switch strategy {
		case model.StrategyMaxTime:
			return eligible[i].PromoMonths > eligible[j].PromoMonths
		case model.StrategyPurchases:
			return eligible[i].CashbackRate > eligible[j].CashbackRate
		case model.StrategyFeeAverse:
			return values[i].TransferFee < values[j].TransferFee
		default: // best_roi, debt_payoff
			return values[i].ROIPercent > values[j].ROIPercent
		}
	})

	best := order[0]
	return &MigrationMatch{Card: eligible[best], Value: values[best]}
}

// EvaluateMigration computes the value of moving balance at currentAPR onto
// the given card for its promo window.
func EvaluateMigration(card model.MigrationCard, balance, currentAPR float64) model.MigrationValue {
	if balance < 0 {
		balance = 0
	}
	if currentAPR < 0 {
		currentAPR = 0
	}

	annualInterest := balance * currentAPR
	monthlyInterest := annualInterest / 12
	saved := monthlyInterest * float64(card.PromoMonths)
	fee := balance * card.TransferFeeRate

	v := model.MigrationValue{
		AnnualInterest:         annualInterest,
		InterestSavedOverPromo: saved,
		TransferFee:            fee,
		NetSavings:             saved - fee,
	}

	if fee == 0 {
		// Free transfer: savings are pure upside.
		v.ROIPercent = roiSentinel
		v.BreakEvenMonths = 0
		return v
	}

	v.ROIPercent = v.NetSavings / fee * 100
	if monthlyInterest > 0 {
		v.BreakEvenMonths = int(math.Ceil(fee / monthlyInterest))
	}
	return v
}

// ShouldConsiderMigration gates migration advice: balances too small to
// justify transfer fees, or interest too low to matter, get a clear "no".
func ShouldConsiderMigration(snap *model.CreditSnapshot) MigrationGate {
	balance := snap.Utilization.TotalBalance

	if balance < minBalanceForMigration {
		return MigrationGate{
			Reason: fmt.Sprintf("Balance under $%d — transfer fees would eat any savings", minBalanceForMigration),
		}
	}

	monthlyInterest := balance * assumedCardAPR / 12
	if monthlyInterest < minMonthlyInterestForMigration {
		return MigrationGate{
			Reason: fmt.Sprintf("Monthly interest under $%d — not worth the churn", minMonthlyInterestForMigration),
		}
	}

	return MigrationGate{
		ShouldMigrate: true,
		Reason:        fmt.Sprintf("Paying roughly $%.0f/month in interest — a promo window would help", monthlyInterest),
	}
}

// MigrationChecklist produces the ordered guardrail list for executing a
// transfer from the source card onto the offer card.
//
// The same-issuer check matches the issuer name as a substring of the source
// card's display name. That is an approximation — issuers often decline
// transfers between their own products, but display names are not account
// identifiers, so false positives and negatives are possible.
func MigrationChecklist(source model.CardSummary, offer model.MigrationCard) []ChecklistItem {
	sameIssuer := strings.Contains(
		strings.ToLower(source.Name),
		strings.ToLower(offer.Issuer),
	)

	issuerDetail := "Source and destination look like different issuers"
	if sameIssuer {
		issuerDetail = fmt.Sprintf("%q appears in your %q card — same-issuer transfers are usually declined (name-based check, verify before applying)", offer.Issuer, source.Name)
	}

	spendDetail := "The new card keeps its grace period during the transfer, so normal spending is safe"
	if !offer.GraceDuringTransfer {
		spendDetail = "No grace period while the transfer posts — any purchase accrues interest from day one"
	}

	return []ChecklistItem{
		{Step: 1, Title: "Freeze the source card", Detail: fmt.Sprintf("Stop new charges on %s so the balance you transfer is final", source.Name), Critical: true},
		{Step: 2, Title: "Check for a same-issuer conflict", Detail: issuerDetail, Critical: sameIssuer},
		{Step: 3, Title: "Keep both accounts open 14 days", Detail: "Let the transfer fully post before closing or drawing on either account"},
		{Step: 4, Title: "Don't spend during the transfer", Detail: spendDetail, Critical: !offer.GraceDuringTransfer},
		{Step: 5, Title: "Complete the transfer within 60 days", Detail: "Most promo rates only apply to transfers made in the first 60 days", Critical: true},
		{Step: 6, Title: "Set a hard exit reminder", Detail: fmt.Sprintf("Calendar the promo end minus 30 days — month %d — to clear or re-migrate the remainder", max(offer.PromoMonths-1, 0))},
		{Step: 7, Title: "Set up autopay", Detail: "One missed payment usually voids the promo rate entirely", Critical: true},
	}
}
