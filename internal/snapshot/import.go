package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"credsim/internal/store"
)

// exportFile is the JSON shape of an account export (the same shape `cards
// export` would produce, and what aggregator downloads typically look like).
type exportFile struct {
	Score int          `json:"score"`
	Cards []exportCard `json:"cards"`
}

type exportCard struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Balance        float64  `json:"balance"`
	Limit          float64  `json:"limit"`
	MinimumPayment *float64 `json:"minimum_payment,omitempty"`
	PaymentDueDate string   `json:"payment_due_date,omitempty"`
	AgeMonths      *int     `json:"age_months,omitempty"`
}

// ImportFile parses a JSON account export into card records plus the reported
// score. Cards without an ID get one derived from the name; cards without a
// name are rejected.
func ImportFile(path string) ([]store.CardRecord, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading export: %w", err)
	}

	var export exportFile
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, 0, fmt.Errorf("parsing export: %w", err)
	}

	records := make([]store.CardRecord, 0, len(export.Cards))
	for i, c := range export.Cards {
		if strings.TrimSpace(c.Name) == "" {
			return nil, 0, fmt.Errorf("card %d has no name", i)
		}
		if c.ID == "" {
			c.ID = SlugID(c.Name)
		}

		rec := store.CardRecord{AgeMonths: c.AgeMonths}
		rec.Card.ID = c.ID
		rec.Card.Name = c.Name
		rec.Card.Balance = c.Balance
		rec.Card.Limit = c.Limit
		rec.Card.MinimumPayment = c.MinimumPayment

		if c.PaymentDueDate != "" {
			if t, err := time.Parse(time.RFC3339, c.PaymentDueDate); err == nil {
				rec.Card.PaymentDueDate = &t
			} else if t, err := time.Parse("2006-01-02", c.PaymentDueDate); err == nil {
				rec.Card.PaymentDueDate = &t
			}
		}

		records = append(records, rec)
	}

	return records, export.Score, nil
}

// SlugID derives a stable card ID from a display name.
// e.g., "Chase Freedom Unlimited" -> "chase-freedom-unlimited"
func SlugID(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
