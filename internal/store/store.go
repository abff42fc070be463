// Package store persists linked card accounts and the last reported score in
// a local SQLite database. Only input data lives here; simulation results are
// never written back.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"credsim/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the SQLite-backed account store.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database location under the user data dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "credsim", "accounts.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "credsim", "accounts.db")
}

// Open opens or creates the account database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening account db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CardRecord is one stored card with its optional account age.
type CardRecord struct {
	Card      model.CardSummary
	AgeMonths *int
}

// SaveCard inserts or replaces a card.
func (s *Store) SaveCard(rec CardRecord) error {
	now := time.Now().UTC().Format(time.RFC3339)

	var due any
	if rec.Card.PaymentDueDate != nil {
		due = rec.Card.PaymentDueDate.UTC().Format(time.RFC3339)
	}
	var minPay any
	if rec.Card.MinimumPayment != nil {
		minPay = *rec.Card.MinimumPayment
	}
	var age any
	if rec.AgeMonths != nil {
		age = *rec.AgeMonths
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO cards
		(card_id, name, balance, card_limit, payment_due_date, minimum_payment, age_months, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Card.ID, rec.Card.Name, rec.Card.Balance, rec.Card.Limit, due, minPay, age, now,
	)
	if err != nil {
		return fmt.Errorf("saving card %s: %w", rec.Card.ID, err)
	}
	return nil
}

// ListCards returns all stored cards ordered by name.
func (s *Store) ListCards() ([]CardRecord, error) {
	rows, err := s.db.Query(`SELECT card_id, name, balance, card_limit,
		payment_due_date, minimum_payment, age_months FROM cards ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []CardRecord
	for rows.Next() {
		var rec CardRecord
		var due sql.NullString
		var minPay sql.NullFloat64
		var age sql.NullInt64

		if err := rows.Scan(&rec.Card.ID, &rec.Card.Name, &rec.Card.Balance,
			&rec.Card.Limit, &due, &minPay, &age); err != nil {
			return nil, err
		}

		if due.Valid {
			if t, err := time.Parse(time.RFC3339, due.String); err == nil {
				rec.Card.PaymentDueDate = &t
			}
		}
		if minPay.Valid {
			v := minPay.Float64
			rec.Card.MinimumPayment = &v
		}
		if age.Valid {
			v := int(age.Int64)
			rec.AgeMonths = &v
		}
		if rec.Card.Limit > 0 {
			rec.Card.Utilization = rec.Card.Balance / rec.Card.Limit
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteCard removes a card by ID. Returns false if no card matched.
func (s *Store) DeleteCard(cardID string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM cards WHERE card_id = ?", cardID)
	if err != nil {
		return false, fmt.Errorf("deleting card %s: %w", cardID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetScore records the latest reported score.
func (s *Store) SetScore(score int, at time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO profile (id, score, score_updated_at)
		VALUES (1, ?, ?)`, score, at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving score: %w", err)
	}
	return nil
}

// GetScore returns the stored score and when it was reported.
// Returns ok=false when no score has been recorded yet.
func (s *Store) GetScore() (score int, at time.Time, ok bool, err error) {
	var raw string
	row := s.db.QueryRow("SELECT score, score_updated_at FROM profile WHERE id = 1")
	if err := row.Scan(&score, &raw); err != nil {
		if err == sql.ErrNoRows {
			return 0, time.Time{}, false, nil
		}
		return 0, time.Time{}, false, err
	}
	at, _ = time.Parse(time.RFC3339, raw)
	return score, at, true, nil
}

// ReplaceCards atomically replaces the whole card set, used by sync/import.
func (s *Store) ReplaceCards(records []CardRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM cards"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		var due any
		if rec.Card.PaymentDueDate != nil {
			due = rec.Card.PaymentDueDate.UTC().Format(time.RFC3339)
		}
		var minPay any
		if rec.Card.MinimumPayment != nil {
			minPay = *rec.Card.MinimumPayment
		}
		var age any
		if rec.AgeMonths != nil {
			age = *rec.AgeMonths
		}
		if _, err := tx.Exec(`INSERT INTO cards
			(card_id, name, balance, card_limit, payment_due_date, minimum_payment, age_months, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.Card.ID, rec.Card.Name, rec.Card.Balance, rec.Card.Limit, due, minPay, age, now,
		); err != nil {
			return fmt.Errorf("inserting card %s: %w", rec.Card.ID, err)
		}
	}

	return tx.Commit()
}
