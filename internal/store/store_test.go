package store

import (
	"path/filepath"
	"testing"
	"time"

	"credsim/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveCard_RoundTrip(t *testing.T) {
	st := openTestStore(t)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	minPay := 35.0
	age := 48
	rec := CardRecord{
		Card: model.CardSummary{
			ID: "chase-f", Name: "Chase Freedom",
			Balance: 2400, Limit: 8000,
			PaymentDueDate: &due, MinimumPayment: &minPay,
		},
		AgeMonths: &age,
	}
	if err := st.SaveCard(rec); err != nil {
		t.Fatalf("SaveCard: %v", err)
	}

	records, err := st.ListCards()
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.Card.ID != "chase-f" || got.Card.Name != "Chase Freedom" {
		t.Errorf("card identity = %q/%q, want chase-f/Chase Freedom", got.Card.ID, got.Card.Name)
	}
	if got.Card.Balance != 2400 || got.Card.Limit != 8000 {
		t.Errorf("balance/limit = %.0f/%.0f, want 2400/8000", got.Card.Balance, got.Card.Limit)
	}
	if got.Card.Utilization != 0.30 {
		t.Errorf("Utilization = %.2f, want 0.30 computed on load", got.Card.Utilization)
	}
	if got.Card.PaymentDueDate == nil || !got.Card.PaymentDueDate.Equal(due) {
		t.Errorf("PaymentDueDate = %v, want %v", got.Card.PaymentDueDate, due)
	}
	if got.Card.MinimumPayment == nil || *got.Card.MinimumPayment != 35 {
		t.Errorf("MinimumPayment = %v, want 35", got.Card.MinimumPayment)
	}
	if got.AgeMonths == nil || *got.AgeMonths != 48 {
		t.Errorf("AgeMonths = %v, want 48", got.AgeMonths)
	}
}

func TestSaveCard_ReplacesExisting(t *testing.T) {
	st := openTestStore(t)

	rec := CardRecord{Card: model.CardSummary{ID: "a", Name: "Card A", Balance: 1000, Limit: 5000}}
	if err := st.SaveCard(rec); err != nil {
		t.Fatalf("SaveCard: %v", err)
	}
	rec.Card.Balance = 800
	if err := st.SaveCard(rec); err != nil {
		t.Fatalf("SaveCard update: %v", err)
	}

	records, err := st.ListCards()
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records after replace, want 1", len(records))
	}
	if records[0].Card.Balance != 800 {
		t.Errorf("Balance = %.0f, want updated 800", records[0].Card.Balance)
	}
}

func TestDeleteCard(t *testing.T) {
	st := openTestStore(t)

	if err := st.SaveCard(CardRecord{Card: model.CardSummary{ID: "x", Name: "X", Limit: 100}}); err != nil {
		t.Fatalf("SaveCard: %v", err)
	}
	ok, err := st.DeleteCard("x")
	if err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	if !ok {
		t.Error("DeleteCard = false, want true for an existing card")
	}
	ok, err = st.DeleteCard("x")
	if err != nil {
		t.Fatalf("DeleteCard again: %v", err)
	}
	if ok {
		t.Error("DeleteCard = true for a card already removed")
	}
}

func TestScore_RoundTripAndUnset(t *testing.T) {
	st := openTestStore(t)

	if _, _, ok, err := st.GetScore(); err != nil || ok {
		t.Fatalf("GetScore on empty store = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if err := st.SetScore(712, at); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	score, gotAt, ok, err := st.GetScore()
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if !ok || score != 712 {
		t.Errorf("GetScore = %d ok=%v, want 712 true", score, ok)
	}
	if !gotAt.Equal(at) {
		t.Errorf("score time = %v, want %v", gotAt, at)
	}

	// Overwrite keeps the singleton row.
	if err := st.SetScore(725, at.AddDate(0, 1, 0)); err != nil {
		t.Fatalf("SetScore overwrite: %v", err)
	}
	score, _, _, err = st.GetScore()
	if err != nil {
		t.Fatalf("GetScore after overwrite: %v", err)
	}
	if score != 725 {
		t.Errorf("score = %d, want 725", score)
	}
}

func TestReplaceCards_SwapsWholeSet(t *testing.T) {
	st := openTestStore(t)

	if err := st.SaveCard(CardRecord{Card: model.CardSummary{ID: "old", Name: "Old Card", Balance: 500, Limit: 2000}}); err != nil {
		t.Fatalf("SaveCard: %v", err)
	}

	next := []CardRecord{
		{Card: model.CardSummary{ID: "n1", Name: "New One", Balance: 100, Limit: 1000}},
		{Card: model.CardSummary{ID: "n2", Name: "New Two", Balance: 200, Limit: 3000}},
	}
	if err := st.ReplaceCards(next); err != nil {
		t.Fatalf("ReplaceCards: %v", err)
	}

	records, err := st.ListCards()
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	ids := map[string]bool{}
	for _, r := range records {
		ids[r.Card.ID] = true
	}
	if !ids["n1"] || !ids["n2"] || ids["old"] {
		t.Errorf("card set = %v, want exactly n1 and n2", ids)
	}
}
