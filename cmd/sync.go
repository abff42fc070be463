package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"credsim/internal/config"
	"credsim/internal/provider"
	"credsim/internal/snapshot"
	"credsim/internal/store"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull cards and score from your account aggregator",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	apiKey := config.GetProviderAPIKey(cfg)

	client := provider.NewClient(cfg.Provider.BaseURL, apiKey)
	if client == nil {
		fmt.Println()
		fmt.Println("  No aggregator configured.")
		fmt.Println()
		fmt.Println("  Set [provider] base_url and api_key in your config, or:")
		fmt.Println("    CREDSIM_PROVIDER_KEY=... credsim sync")
		fmt.Println()
		fmt.Println("  Run `credsim setup` for the guided version.")
		fmt.Println()
		return nil
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching accounts...\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.FetchAccounts(ctx)
	if err != nil {
		if errors.Is(err, provider.ErrUnauthorized) {
			return errors.New("aggregator rejected the API key — check [provider] api_key")
		}
		if errors.Is(err, provider.ErrRateLimited) {
			return errors.New("rate limited by the aggregator — try again in a minute")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	records := make([]store.CardRecord, 0, len(resp.Accounts))
	for _, acct := range resp.Accounts {
		var rec store.CardRecord
		rec.Card.ID = acct.AccountID
		if rec.Card.ID == "" {
			rec.Card.ID = snapshot.SlugID(acct.DisplayName)
		}
		rec.Card.Name = acct.DisplayName
		rec.Card.Balance = acct.Balance
		rec.Card.Limit = acct.CreditLimit
		if acct.MinimumPayment != nil && *acct.MinimumPayment > 0 {
			mp := *acct.MinimumPayment
			rec.Card.MinimumPayment = &mp
		}
		if acct.NextDueDate != "" {
			if due, err := time.Parse(time.RFC3339, acct.NextDueDate); err == nil {
				rec.Card.PaymentDueDate = &due
			}
		}
		if acct.OpenedMonths != nil && *acct.OpenedMonths > 0 {
			age := *acct.OpenedMonths
			rec.AgeMonths = &age
		}
		records = append(records, rec)
	}

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ReplaceCards(records); err != nil {
		return err
	}
	if resp.Score > 0 {
		if err := st.SetScore(resp.Score, time.Now()); err != nil {
			return err
		}
	}

	fmt.Printf("  Synced %d accounts", len(records))
	if resp.Score > 0 {
		fmt.Printf(", score %d", resp.Score)
	}
	fmt.Println(".")
	return nil
}
