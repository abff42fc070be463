package cmd

import (
	"fmt"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"
	"credsim/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMigrateStrategy string
	flagMigrateAll      bool
	flagMigrateForce    bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rank balance-transfer offers against your balance",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&flagMigrateStrategy, "strategy", "s", "", "Ranking strategy: best_roi, debt_payoff, max_time, purchases, fee_averse")
	migrateCmd.Flags().BoolVarP(&flagMigrateAll, "all", "a", false, "Show the value breakdown for every eligible offer")
	migrateCmd.Flags().BoolVar(&flagMigrateForce, "force", false, "Rank offers even when the gate says don't bother")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	strategy := config.MigrationStrategy(cfg)
	if flagMigrateStrategy != "" {
		cfg.General.MigrationStrategy = flagMigrateStrategy
		strategy = config.MigrationStrategy(cfg)
	}

	balance := snap.Utilization.TotalBalance
	apr := config.AssumedAPR(cfg)
	cat := loadCatalog(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BALANCE MIGRATION  %s", strategy)))
	fmt.Println()

	gate := engine.ShouldConsiderMigration(snap)
	if !gate.ShouldMigrate {
		fmt.Printf("  %s %s\n", cli.Good("●"), gate.Reason)
		if !flagMigrateForce {
			fmt.Println("  Use --force to rank offers anyway.")
			fmt.Println()
			return nil
		}
		fmt.Println()
	} else {
		fmt.Printf("  %s %s\n", cli.Warn("▲"), gate.Reason)
		fmt.Println()
	}

	if flagMigrateAll {
		printAllOffers(cat.Cards(), balance, apr)
	}

	match := engine.BestMigrationCard(cat.Cards(), balance, apr, strategy)
	if match == nil {
		fmt.Printf("  No catalog card can absorb a %s balance under the %s strategy.\n",
			cli.FormatMoney(balance), strategy)
		fmt.Println("  Try --strategy best_roi to consider every offer.")
		fmt.Println()
		return nil
	}

	printMatch(match, balance)

	// Checklist against the largest source balance.
	source := snap.Cards[0]
	for _, c := range snap.Cards[1:] {
		if c.Balance > source.Balance {
			source = c
		}
	}
	fmt.Println()
	fmt.Printf("  Checklist for moving %s off %s:\n", cli.FormatMoney(source.Balance), source.Name)
	for _, item := range engine.MigrationChecklist(source, match.Card) {
		marker := cli.Muted("○")
		if item.Critical {
			marker = cli.Bad("●")
		}
		fmt.Printf("  %s %d. %s\n", marker, item.Step, item.Title)
		fmt.Printf("       %s\n", cli.Muted(item.Detail))
	}
	fmt.Println()

	return nil
}

func printMatch(match *engine.MigrationMatch, balance float64) {
	card := match.Card
	v := match.Value

	fmt.Printf("  Best offer: %s %s — %d months at 0%%, %.0f%% fee\n",
		card.Issuer, card.Name, card.PromoMonths, card.TransferFeeRate*100)
	fmt.Println()

	roi := fmt.Sprintf("%.0f%%", v.ROIPercent)
	if v.TransferFee == 0 {
		roi = "free transfer"
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Balance to move", cli.FormatMoney(balance)},
			{"Interest saved over promo", cli.FormatMoney(v.InterestSavedOverPromo)},
			{"Transfer fee", cli.FormatMoney(v.TransferFee)},
			{"Net savings", cli.FormatMoney(v.NetSavings)},
			{"ROI on fee", roi},
			{"Break-even", cli.FormatMonths(v.BreakEvenMonths)},
		},
	}))
}

func printAllOffers(cards []model.MigrationCard, balance, apr float64) {
	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		if balance < card.MinTransfer || balance > card.MaxTransfer {
			continue
		}
		v := engine.EvaluateMigration(card, balance, apr)
		roi := fmt.Sprintf("%.0f%%", v.ROIPercent)
		if v.TransferFee == 0 {
			roi = "∞"
		}
		rows = append(rows, []string{
			cli.Truncate(card.Issuer+" "+card.Name, 28),
			fmt.Sprintf("%d mo", card.PromoMonths),
			cli.FormatMoney(v.TransferFee),
			cli.FormatMoney(v.NetSavings),
			roi,
			string(card.StrategyTag),
		})
	}
	if len(rows) == 0 {
		return
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Eligible offers",
		Headers: []string{"Card", "Promo", "Fee", "Net", "ROI", "Tag"},
		Rows:    rows,
	}))
	fmt.Println()
}
