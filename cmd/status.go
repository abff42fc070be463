package cmd

import (
	"fmt"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Credit overview: score, utilization, and cards",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	snap, records, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CREDIT OVERVIEW"))
	fmt.Println()

	fmt.Printf("  Score: %d (%s)  band %d-%d\n",
		snap.Score.Value, cli.ScoreRating(snap.Score.Value),
		snap.Score.RangeLow, snap.Score.RangeHigh)
	fmt.Printf("  %s\n", cli.RenderScoreGauge(snap.Score.Value, 40))
	fmt.Println()

	fmt.Printf("  Utilization: %s of %s\n",
		cli.FormatMoney(snap.Utilization.TotalBalance),
		cli.FormatMoney(snap.Utilization.TotalLimit))
	fmt.Printf("  %s  (optimal %s)\n",
		cli.RenderUtilizationBar(snap.Utilization.CurrentUtilization, 30),
		cli.FormatPercent(snap.Utilization.OptimalUtilization))
	fmt.Println()

	rows := make([][]string, 0, len(snap.Cards))
	for i, c := range snap.Cards {
		age := "-"
		if records[i].AgeMonths != nil {
			age = cli.FormatMonths(*records[i].AgeMonths)
		}
		rows = append(rows, []string{
			cli.Truncate(c.Name, 24),
			cli.FormatMoney(c.Balance),
			cli.FormatMoney(c.Limit),
			cli.FormatPercent(c.Utilization),
			age,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cards",
		Headers: []string{"Card", "Balance", "Limit", "Util", "Age"},
		Rows:    rows,
	}))

	gate := engine.ShouldConsiderMigration(snap)
	fmt.Println()
	if gate.ShouldMigrate {
		fmt.Printf("  %s %s\n", cli.Warn("▲"), gate.Reason)
		fmt.Println("  Run `credsim migrate` to compare balance-transfer offers.")
	} else {
		fmt.Printf("  %s %s\n", cli.Good("●"), gate.Reason)
	}
	fmt.Println()

	return nil
}
