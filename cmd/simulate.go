package cmd

import (
	"fmt"
	"strconv"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"
	"credsim/internal/model"

	"github.com/spf13/cobra"
)

var flagSimMerchant string

var simulateCmd = &cobra.Command{
	Use:   "simulate <action> <amount>",
	Short: "Project the impact of a hypothetical action",
	Long: `Project the score and interest impact of one hypothetical action.

Actions:
  purchase     Put <amount> on a card (use --merchant to check 0% financing)
  new-line     Open a new credit line (amount ignored)
  consolidate  Move <amount> of revolving debt onto an installment loan
  payment      Pay <amount> toward your balances
  transfer     Move <amount> onto a 0% promo card`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagSimMerchant, "merchant", "m", "", "Merchant name for financing lookup")
	rootCmd.AddCommand(simulateCmd)
}

var actionKinds = map[string]model.ActionKind{
	"purchase":    model.ActionLargePurchase,
	"new-line":    model.ActionNewCreditLine,
	"consolidate": model.ActionDebtConsolidation,
	"payment":     model.ActionPayment,
	"transfer":    model.ActionBalanceTransfer,
}

func runSimulate(_ *cobra.Command, args []string) error {
	kind, ok := actionKinds[args[0]]
	if !ok {
		return fmt.Errorf("unknown action %q (want purchase, new-line, consolidate, payment, or transfer)", args[0])
	}

	var amount float64
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil || v < 0 {
			return fmt.Errorf("bad amount %q", args[1])
		}
		amount = v
	} else if kind != model.ActionNewCreditLine {
		return fmt.Errorf("action %q needs an amount", args[0])
	}

	cfg, _ := config.Load()
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	result := engine.SimulateAction(snap, model.FinancialAction{
		Kind:     kind,
		Amount:   amount,
		Merchant: flagSimMerchant,
	}, loadCatalog(cfg))

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACTION IMPACT"))
	fmt.Println()

	rows := [][]string{
		{"Projected score", fmt.Sprintf("%d  (%s)", result.ProjectedScore, cli.FormatPoints(result.ScoreDelta))},
		{"Utilization", fmt.Sprintf("%s → %s",
			cli.FormatPercent(snap.Utilization.CurrentUtilization),
			cli.FormatPercent(result.ProjectedUtilization))},
	}
	if result.MonthlyInterestLeak != 0 {
		label := "Monthly interest cost"
		leak := result.MonthlyInterestLeak
		if leak < 0 {
			label = "Monthly interest saved"
			leak = -leak
		}
		rows = append(rows, []string{label, cli.FormatMoney(leak)})
	}
	if result.RecoveryMonths > 0 {
		rows = append(rows, []string{"Score recovery", cli.FormatMonths(result.RecoveryMonths)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	if result.Insight != "" {
		fmt.Printf("  %s\n", result.Insight)
	}
	if zg := result.ZeroGravityOption; zg != nil {
		fmt.Printf("  %s %s: %d months at 0%% — %s\n",
			cli.Good("◆"), zg.Merchant, zg.TermMonths, zg.Description)
	}
	if oc := result.OpportunityCost; oc != nil {
		fmt.Printf("  %s Skipping this is a guaranteed %.1f%% return (%s/year of interest avoided).\n",
			cli.Warn("▲"), oc.GuaranteedReturn, cli.FormatMoney(oc.AnnualInterest))
	}
	fmt.Println()

	return nil
}
