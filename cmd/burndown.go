package cmd

import (
	"fmt"
	"os"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagBurnPayment  float64
	flagBurnStrategy string
)

var burndownCmd = &cobra.Command{
	Use:   "burndown",
	Short: "Month-by-month debt payoff schedule with score milestones",
	RunE:  runBurndown,
}

func init() {
	burndownCmd.Flags().Float64VarP(&flagBurnPayment, "payment", "p", 0, "Monthly payment (default: optimal for your strategy)")
	burndownCmd.Flags().StringVarP(&flagBurnStrategy, "strategy", "s", "", "Payoff strategy: aggressive, moderate, conservative")
	rootCmd.AddCommand(burndownCmd)
}

func runBurndown(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	strategy := config.PayoffStrategy(cfg)
	if flagBurnStrategy != "" {
		cfg.General.PayoffStrategy = flagBurnStrategy
		strategy = config.PayoffStrategy(cfg)
	}

	payment := flagBurnPayment
	if payment <= 0 && cfg.General.MonthlyPayment != nil {
		payment = *cfg.General.MonthlyPayment
	}
	if payment <= 0 {
		payment = engine.OptimalPayment(snap.Utilization.TotalBalance, 24, strategy)
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  No payment set, using the %s optimum of %s/mo\n", strategy, cli.FormatMoney(payment))
		}
	}

	plan := engine.CalculateBurnDown(snap, payment, strategy)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BURN-DOWN  %s @ %s/mo", strategy, cli.FormatMoney(plan.MonthlyPayment))))
	fmt.Println()

	balances := make([]float64, len(plan.Months))
	for i, m := range plan.Months {
		balances[i] = m.Balance
	}
	fmt.Printf("  Balance  %s\n", cli.RenderSparkline(balances))
	fmt.Println()

	rows := make([][]string, 0, len(plan.Months))
	for _, m := range plan.Months {
		milestone := ""
		if m.Milestone != nil {
			milestone = m.Milestone.Message
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.MonthIndex),
			cli.FormatMoney(m.Balance),
			fmt.Sprintf("%d", m.Score),
			fmt.Sprintf("%.0f%%", m.UtilizationPercent),
			cli.FormatMoney(m.CumulativeInterestSaved),
			milestone,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Mo", "Balance", "Score", "Util", "Saved", "Milestone"},
		Rows:    rows,
	}))
	fmt.Println()

	last := plan.Months[len(plan.Months)-1]
	if last.Balance <= 0 {
		fmt.Printf("  Debt-free in %s (%s)\n", cli.FormatMonths(plan.TotalMonths), cli.FormatDate(plan.TargetDate))
	} else {
		fmt.Printf("  %s still owed after %s — raise the payment to finish sooner\n",
			cli.FormatMoney(last.Balance), cli.FormatMonths(plan.TotalMonths))
	}
	fmt.Printf("  Final score %d (%s), %s of interest avoided\n",
		plan.FinalScore, cli.ScoreRating(plan.FinalScore), cli.FormatMoney(plan.TotalInterestSaved))
	fmt.Println()

	return nil
}
