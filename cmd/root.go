package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"credsim/internal/catalog"
	"credsim/internal/config"
	"credsim/internal/model"
	"credsim/internal/snapshot"
	"credsim/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "credsim",
	Short: "Credit Trajectory Simulator CLI",
	Long:  "Project your credit score, plan debt burn-down, and weigh balance-transfer offers.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding accounts.db (default XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dbPath resolves the accounts database location: flag, then config,
// then the XDG default.
func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "accounts.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "accounts.db")
	}
	return store.DefaultPath()
}

// defaultScore is assumed when no score has been recorded yet.
const defaultScore = 680

// loadSnapshot is the shared data loading path used by all commands:
// open the store, read cards and score, and assemble a snapshot.
func loadSnapshot(cfg config.Config) (*model.CreditSnapshot, []store.CardRecord, error) {
	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()

	records, err := st.ListCards()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no cards on file — run `credsim cards add`, `credsim cards import <file>`, or `credsim sync` first")
	}

	score, scoreAt, ok, err := st.GetScore()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		score, scoreAt = defaultScore, time.Now()
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  No score on file, assuming %d. Record yours with `credsim score --record <value>`.\n", defaultScore)
		}
	}

	return snapshot.Build(records, score, scoreAt), records, nil
}

// loadCatalog builds the offer catalog with any config overrides applied.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	disabled, extra := config.CatalogOverrides(cfg)
	return catalog.Load(catalog.Overrides{Disabled: disabled, ExtraCards: extra})
}
