// Package cmd implements the credsim CLI commands.
package cmd

import (
	"fmt"

	"credsim/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Payoff strategy:    %s\n", config.PayoffStrategy(cfg))
	fmt.Printf("    Migration strategy: %s\n", config.MigrationStrategy(cfg))
	if cfg.General.MonthlyPayment != nil {
		fmt.Printf("    Monthly payment:    $%.0f\n", *cfg.General.MonthlyPayment)
	} else {
		fmt.Println("    Monthly payment:    not set (optimal is computed per run)")
	}
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory:     %s\n", cfg.General.DataDir)
	}
	fmt.Println()

	fmt.Println("  [Assumptions]")
	fmt.Printf("    Card APR: %.2f%%\n", config.AssumedAPR(cfg)*100)
	fmt.Println()

	fmt.Println("  [Provider]")
	apiKey := config.GetProviderAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key:  %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key:  not configured")
	}
	if cfg.Provider.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Provider.BaseURL)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Catalog]")
	if len(cfg.Catalog.DisabledCards) > 0 {
		fmt.Printf("    Disabled cards: %d\n", len(cfg.Catalog.DisabledCards))
	}
	if len(cfg.Catalog.ExtraCards) > 0 {
		fmt.Printf("    Extra cards:    %d\n", len(cfg.Catalog.ExtraCards))
	}
	fmt.Printf("    Offers in play: %d\n", len(loadCatalog(cfg).Cards()))
	fmt.Println()

	fmt.Println("  Run `credsim setup` to reconfigure.")
	return nil
}
