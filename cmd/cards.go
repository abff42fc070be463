package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/snapshot"
	"credsim/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage linked cards",
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a card interactively",
	RunE:  runCardsAdd,
}

var cardsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a card by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsRemove,
}

var cardsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import cards and score from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsImport,
}

func init() {
	cardsCmd.AddCommand(cardsAddCmd, cardsRemoveCmd, cardsImportCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runCardsList(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListCards()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\n  No cards on file. Add one with `credsim cards add`.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		age := "-"
		if r.AgeMonths != nil {
			age = cli.FormatMonths(*r.AgeMonths)
		}
		rows = append(rows, []string{
			r.Card.ID,
			cli.Truncate(r.Card.Name, 24),
			cli.FormatMoney(r.Card.Balance),
			cli.FormatMoney(r.Card.Limit),
			cli.FormatPercent(r.Card.Utilization),
			age,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Balance", "Limit", "Util", "Age"},
		Rows:    rows,
	}))
	return nil
}

func runCardsAdd(_ *cobra.Command, _ []string) error {
	var (
		name       string
		balanceStr string
		limitStr   string
		ageStr     string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card name").
				Placeholder("Chase Freedom Unlimited").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("name is required")
					}
					return nil
				}).
				Value(&name),
			huh.NewInput().
				Title("Current balance ($)").
				Validate(validateAmount).
				Value(&balanceStr),
			huh.NewInput().
				Title("Credit limit ($)").
				Validate(validateAmount).
				Value(&limitStr),
			huh.NewInput().
				Title("Account age in months (optional)").
				Value(&ageStr),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	balance, _ := strconv.ParseFloat(balanceStr, 64)
	limit, _ := strconv.ParseFloat(limitStr, 64)

	rec := store.CardRecord{}
	rec.Card.ID = snapshot.SlugID(name)
	rec.Card.Name = name
	rec.Card.Balance = balance
	rec.Card.Limit = limit
	if ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil && age >= 0 {
			rec.AgeMonths = &age
		}
	}

	cfg, _ := config.Load()
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveCard(rec); err != nil {
		return err
	}
	fmt.Printf("  Saved %s as %q.\n", name, rec.Card.ID)
	return nil
}

func runCardsRemove(_ *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	removed, err := st.DeleteCard(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no card with ID %q — see `credsim cards` for IDs", args[0])
	}
	fmt.Printf("  Removed %q.\n", args[0])
	return nil
}

func runCardsImport(_ *cobra.Command, args []string) error {
	records, score, err := snapshot.ImportFile(args[0])
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ReplaceCards(records); err != nil {
		return err
	}
	if score > 0 {
		if err := st.SetScore(score, time.Now()); err != nil {
			return err
		}
	}

	fmt.Printf("  Imported %d cards", len(records))
	if score > 0 {
		fmt.Printf(" and score %d", score)
	}
	fmt.Println(".")
	return nil
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}
