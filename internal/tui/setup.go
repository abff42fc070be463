package tui

import (
	"errors"
	"strconv"
	"time"

	"credsim/internal/model"
	"credsim/internal/snapshot"
	"credsim/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	score    string
	cardName string
	balance  string
	limit    string
}

// newSetupForm builds the first-run wizard shown when the store is empty.
func newSetupForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to credsim").
				Description("No cards on file yet. Link your first card to get a snapshot."),
			huh.NewInput().
				Title("Current credit score").
				Placeholder("680").
				Validate(validateScore).
				Value(&vals.score),
			huh.NewInput().
				Title("Card name").
				Placeholder("Chase Freedom Unlimited").
				Validate(validateRequired).
				Value(&vals.cardName),
			huh.NewInput().
				Title("Current balance ($)").
				Validate(validateNonNegative).
				Value(&vals.balance),
			huh.NewInput().
				Title("Credit limit ($)").
				Validate(validateNonNegative).
				Value(&vals.limit),
		),
	)
}

// saveSetupCmd persists the wizard answers and reloads the snapshot.
func saveSetupCmd(dbPath string, vals setupValues) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer st.Close()

		balance, _ := strconv.ParseFloat(vals.balance, 64)
		limit, _ := strconv.ParseFloat(vals.limit, 64)

		var rec store.CardRecord
		rec.Card.ID = snapshot.SlugID(vals.cardName)
		rec.Card.Name = vals.cardName
		rec.Card.Balance = balance
		rec.Card.Limit = limit
		if err := st.SaveCard(rec); err != nil {
			return DataLoadedMsg{Err: err}
		}

		if score, err := strconv.Atoi(vals.score); err == nil {
			if err := st.SetScore(score, time.Now()); err != nil {
				return DataLoadedMsg{Err: err}
			}
		}

		return loadDataCmd(dbPath)()
	}
}

func validateRequired(s string) error {
	if s == "" {
		return errors.New("required")
	}
	return nil
}

func validateNonNegative(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func validateScore(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < model.ScoreFloor || v > model.ScoreCeiling {
		return errors.New("enter a score between 300 and 850")
	}
	return nil
}
