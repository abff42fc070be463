// Package catalog holds the static balance-transfer card catalog and merchant
// financing table. The data is immutable reference material embedded at build
// time; user additions come in through config overrides, never at runtime.
package catalog

import (
	"strings"

	"credsim/internal/model"
)

// defaultCards is the built-in balance-transfer catalog. Order matters: ties
// during ranking keep catalog order, so stronger mainstream offers sit first.
var defaultCards = []model.MigrationCard{
	{
		ID: "reflect-21", Issuer: "Wells Fargo", Name: "Wells Fargo Reflect",
		PromoMonths: 21, TransferFeeRate: 0.05, PurchaseAPRAfterPromo: 0.2924,
		MinTransfer: 100, MaxTransfer: 30000,
		StrategyTag: model.StrategyMaxTime,
	},
	{
		ID: "diamond-21", Issuer: "Citi", Name: "Citi Diamond Preferred",
		PromoMonths: 21, TransferFeeRate: 0.05, PurchaseAPRAfterPromo: 0.2799,
		MinTransfer: 100, MaxTransfer: 25000,
		StrategyTag: model.StrategyMaxTime,
	},
	{
		ID: "simplicity-18", Issuer: "Citi", Name: "Citi Simplicity",
		PromoMonths: 18, TransferFeeRate: 0.03, PurchaseAPRAfterPromo: 0.2799,
		MinTransfer: 100, MaxTransfer: 25000,
		StrategyTag:         model.StrategyDebtPayoff,
		GraceDuringTransfer: true,
	},
	{
		ID: "slate-edge-18", Issuer: "Chase", Name: "Chase Slate Edge",
		PromoMonths: 18, TransferFeeRate: 0.03, PurchaseAPRAfterPromo: 0.2874,
		MinTransfer: 500, MaxTransfer: 15000,
		StrategyTag: model.StrategyDebtPayoff,
	},
	{
		ID: "discover-bt-15", Issuer: "Discover", Name: "Discover it Balance Transfer",
		PromoMonths: 15, TransferFeeRate: 0.03, PurchaseAPRAfterPromo: 0.2724,
		MinTransfer: 100, MaxTransfer: 20000,
		StrategyTag: model.StrategyPurchases, CashbackRate: 0.05,
		GraceDuringTransfer: true,
	},
	{
		ID: "everyday-15", Issuer: "American Express", Name: "Amex EveryDay",
		PromoMonths: 15, TransferFeeRate: 0.03, PurchaseAPRAfterPromo: 0.2649,
		MinTransfer: 100, MaxTransfer: 10000,
		StrategyTag: model.StrategyPurchases, CashbackRate: 0.02,
	},
	{
		ID: "bankamericard-18", Issuer: "Bank of America", Name: "BankAmericard",
		PromoMonths: 18, TransferFeeRate: 0.03, PurchaseAPRAfterPromo: 0.2774,
		MinTransfer: 100, MaxTransfer: 15000,
		StrategyTag: model.StrategyFeeAverse,
	},
	{
		ID: "navyfed-platinum-12", Issuer: "Navy Federal", Name: "Navy Federal Platinum",
		PromoMonths: 12, TransferFeeRate: 0, PurchaseAPRAfterPromo: 0.1824,
		MinTransfer: 100, MaxTransfer: 30000,
		StrategyTag:         model.StrategyFeeAverse,
		GraceDuringTransfer: true,
	},
}

// defaultFinancing maps lowercase merchant names to their promotional
// zero-APR financing offers.
var defaultFinancing = map[string]model.FinancingOffer{
	"apple":      {Merchant: "Apple", TermMonths: 12, Description: "0% APR over 12 months with Apple Card monthly installments"},
	"best buy":   {Merchant: "Best Buy", TermMonths: 18, Description: "0% APR for 18 months on purchases over $499"},
	"home depot": {Merchant: "Home Depot", TermMonths: 24, Description: "0% APR for 24 months on purchases over $299"},
	"amazon":     {Merchant: "Amazon", TermMonths: 12, Description: "0% APR for 12 months with the store card on $599+"},
	"wayfair":    {Merchant: "Wayfair", TermMonths: 12, Description: "0% APR financing for 12 months on $499+"},
}

// Catalog is an immutable view over the card and financing tables. The zero
// value is unusable; construct via Default or Load.
type Catalog struct {
	cards     []model.MigrationCard
	financing map[string]model.FinancingOffer
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{cards: defaultCards, financing: defaultFinancing}
}

// Overrides adjusts the built-in catalog from user config: cards can be
// hidden by ID and extra offers appended after the defaults.
type Overrides struct {
	Disabled   []string
	ExtraCards []model.MigrationCard
}

// Load returns the default catalog with overrides applied. The defaults are
// never mutated; a filtered copy is built instead.
func Load(ov Overrides) *Catalog {
	if len(ov.Disabled) == 0 && len(ov.ExtraCards) == 0 {
		return Default()
	}

	disabled := make(map[string]bool, len(ov.Disabled))
	for _, id := range ov.Disabled {
		disabled[id] = true
	}

	cards := make([]model.MigrationCard, 0, len(defaultCards)+len(ov.ExtraCards))
	for _, c := range defaultCards {
		if !disabled[c.ID] {
			cards = append(cards, c)
		}
	}
	cards = append(cards, ov.ExtraCards...)

	return &Catalog{cards: cards, financing: defaultFinancing}
}

// Cards returns the catalog entries in ranking order.
func (c *Catalog) Cards() []model.MigrationCard {
	return c.cards
}

// CardByID looks up a catalog entry.
func (c *Catalog) CardByID(id string) (model.MigrationCard, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return model.MigrationCard{}, false
}

// FinancingOffer resolves a merchant's promotional financing deal, matching
// case-insensitively. Implements engine.FinancingSource.
func (c *Catalog) FinancingOffer(merchant string) (model.FinancingOffer, bool) {
	offer, ok := c.financing[strings.ToLower(strings.TrimSpace(merchant))]
	return offer, ok
}
