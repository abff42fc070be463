package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"credsim/internal/config"
	"credsim/internal/model"
	"credsim/internal/store"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to credsim!")
	fmt.Println()

	// 1. Current score
	fmt.Println("  1. Current credit score")
	fmt.Println("     From your bank app or bureau — leave blank to skip.")
	fmt.Print("     > ")
	scoreLine, _ := reader.ReadString('\n')
	scoreLine = strings.TrimSpace(scoreLine)
	score := 0
	if scoreLine != "" {
		v, err := strconv.Atoi(scoreLine)
		if err != nil || v < model.ScoreFloor || v > model.ScoreCeiling {
			fmt.Printf("     Ignoring %q — expected %d-%d.\n", scoreLine, model.ScoreFloor, model.ScoreCeiling)
		} else {
			score = v
		}
	}
	fmt.Println()

	// 2. Monthly payment
	fmt.Println("  2. Monthly debt payment")
	fmt.Println("     What you can put toward balances each month. Blank = compute the optimum.")
	fmt.Print("     > $")
	payLine, _ := reader.ReadString('\n')
	payLine = strings.TrimSpace(payLine)
	if payLine != "" {
		if v, err := strconv.ParseFloat(payLine, 64); err == nil && v > 0 {
			cfg.General.MonthlyPayment = &v
		}
	}
	fmt.Println()

	// 3. Payoff pacing
	fmt.Println("  3. Payoff pacing")
	fmt.Println("     (1) Aggressive — clear two months before the promo ends")
	fmt.Println("     (2) Moderate — one month of slack [default]")
	fmt.Println("     (3) Conservative — use the whole promo window")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.PayoffStrategy = string(model.PayoffAggressive)
	case "3":
		cfg.General.PayoffStrategy = string(model.PayoffConservative)
	default:
		cfg.General.PayoffStrategy = string(model.PayoffModerate)
	}
	fmt.Println()

	// 4. Offer ranking
	fmt.Println("  4. How to rank balance-transfer offers")
	fmt.Println("     (1) Best ROI — every dollar of fee must earn its keep [default]")
	fmt.Println("     (2) Max time — longest 0% window wins")
	fmt.Println("     (3) Fee averse — cheapest transfer wins")
	fmt.Print("     > ")
	rankChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(rankChoice) {
	case "2":
		cfg.General.MigrationStrategy = string(model.StrategyMaxTime)
	case "3":
		cfg.General.MigrationStrategy = string(model.StrategyFeeAverse)
	default:
		cfg.General.MigrationStrategy = string(model.StrategyBestROI)
	}
	fmt.Println()

	// 5. Aggregator key
	fmt.Println("  5. Account aggregator API key")
	fmt.Println("     For `credsim sync` — leave blank to manage cards by hand.")
	existing := config.GetProviderAPIKey(cfg)
	if existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		cfg.Provider.APIKey = apiKey
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if score > 0 {
		st, err := store.Open(dbPath(cfg))
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SetScore(score, time.Now()); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Next: `credsim cards add` to link your cards, then `credsim status`.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
