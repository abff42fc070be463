package cmd

import (
	"fmt"
	"time"

	"credsim/internal/cli"
	"credsim/internal/config"
	"credsim/internal/engine"
	"credsim/internal/model"
	"credsim/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagScoreUtil      float64
	flagScoreStreak    int
	flagScoreInquiries int
	flagScoreBase      int
	flagScoreRecord    int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Project your score under hypothetical inputs",
	Long: `Project the likely score for a given utilization, on-time payment streak,
and recent hard-inquiry count. Defaults come from your stored snapshot.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64VarP(&flagScoreUtil, "utilization", "u", -1, "Utilization percent 0-100 (default: current)")
	scoreCmd.Flags().IntVarP(&flagScoreStreak, "streak", "s", 24, "Months of on-time payments")
	scoreCmd.Flags().IntVarP(&flagScoreInquiries, "inquiries", "i", 0, "Hard inquiries in the last 2 years")
	scoreCmd.Flags().IntVarP(&flagScoreBase, "base", "b", 0, "Override the starting score")
	scoreCmd.Flags().IntVar(&flagScoreRecord, "record", 0, "Record this as your current score and exit")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	if flagScoreRecord > 0 {
		return recordScore(cfg, flagScoreRecord)
	}

	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	base := snap.Score.Value
	if flagScoreBase > 0 {
		base = flagScoreBase
	}
	util := snap.Utilization.CurrentUtilization * 100
	if flagScoreUtil >= 0 {
		util = flagScoreUtil
	}

	sim := engine.SimulateScore(base, model.ScoreInputs{
		UtilizationPercent: util,
		OnTimeStreakMonths: flagScoreStreak,
		RecentInquiries:    flagScoreInquiries,
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCORE PROJECTION"))
	fmt.Println()
	fmt.Printf("  Starting from %d with %.0f%% utilization, %d-month streak, %d inquiries\n",
		base, util, flagScoreStreak, flagScoreInquiries)
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Outcome", "Score"},
		Rows: [][]string{
			{"Pessimistic", fmt.Sprintf("%d", sim.MinScore)},
			{"Likely", fmt.Sprintf("%d", sim.LikelyScore)},
			{"Optimistic", fmt.Sprintf("%d", sim.MaxScore)},
		},
	}))
	fmt.Println()
	fmt.Printf("  Likely: %d (%s)\n", sim.LikelyScore, cli.ScoreRating(sim.LikelyScore))
	fmt.Printf("  %s\n", cli.RenderScoreGauge(sim.LikelyScore, 40))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Factors",
		Headers: []string{"Factor", "Drag", "Note"},
		Rows: [][]string{
			{"Utilization", fmt.Sprintf("%.0f", sim.Factors.Utilization.ImpactPoints), sim.Factors.Utilization.Note},
			{"Payment history", fmt.Sprintf("%.0f", sim.Factors.PaymentHistory.ImpactPoints), sim.Factors.PaymentHistory.Note},
			{"Inquiries", fmt.Sprintf("%.0f", sim.Factors.Inquiries.ImpactPoints), sim.Factors.Inquiries.Note},
		},
	}))
	fmt.Println()
	fmt.Printf("  Time to impact: %s\n", sim.TimeToImpact)
	fmt.Println()

	return nil
}

func recordScore(cfg config.Config, score int) error {
	if score < model.ScoreFloor || score > model.ScoreCeiling {
		return fmt.Errorf("score %d outside the %d-%d range", score, model.ScoreFloor, model.ScoreCeiling)
	}

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SetScore(score, time.Now()); err != nil {
		return err
	}
	fmt.Printf("  Recorded score %d (%s).\n", score, cli.ScoreRating(score))
	return nil
}
