// Package config loads and saves credsim user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"credsim/internal/model"
)

// Config holds all credsim configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Assumptions AssumptionsConfig `toml:"assumptions"`
	Provider    ProviderConfig    `toml:"provider"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Catalog     CatalogConfig     `toml:"catalog"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	PayoffStrategy    string   `toml:"payoff_strategy"`
	MigrationStrategy string   `toml:"migration_strategy"`
	MonthlyPayment    *float64 `toml:"monthly_payment,omitempty"`
	DataDir           string   `toml:"data_dir,omitempty"`
}

// AssumptionsConfig holds the user's actual card terms, used where a
// simulation needs their real APR rather than the model's assumption.
type AssumptionsConfig struct {
	CardAPR *float64 `toml:"card_apr,omitempty"` // fraction, e.g. 0.2499
}

// ProviderConfig holds the optional account-aggregator API settings for
// `credsim sync`.
type ProviderConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// CatalogConfig adjusts the built-in balance-transfer catalog.
type CatalogConfig struct {
	DisabledCards []string         `toml:"disabled_cards,omitempty"`
	ExtraCards    []ExtraCardEntry `toml:"extra_cards,omitempty"`
}

// ExtraCardEntry is a user-supplied catalog addition.
type ExtraCardEntry struct {
	ID                  string  `toml:"id"`
	Issuer              string  `toml:"issuer"`
	Name                string  `toml:"name"`
	PromoMonths         int     `toml:"promo_months"`
	TransferFeeRate     float64 `toml:"transfer_fee_rate"`
	PurchaseAPR         float64 `toml:"purchase_apr_after_promo"`
	MinTransfer         float64 `toml:"min_transfer"`
	MaxTransfer         float64 `toml:"max_transfer"`
	StrategyTag         string  `toml:"strategy_tag"`
	CashbackRate        float64 `toml:"cashback_rate,omitempty"`
	GraceDuringTransfer bool    `toml:"grace_during_transfer,omitempty"`
}

// DefaultAssumedAPR is used when the user hasn't recorded their real APR.
const DefaultAssumedAPR = 0.24

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			PayoffStrategy:    string(model.PayoffModerate),
			MigrationStrategy: string(model.StrategyBestROI),
		},
		Appearance: AppearanceConfig{
			Theme: "ledger-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "credsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "credsim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetProviderAPIKey returns the provider key from env var or config, in that order.
func GetProviderAPIKey(cfg Config) string {
	if key := os.Getenv("CREDSIM_PROVIDER_KEY"); key != "" {
		return key
	}
	return cfg.Provider.APIKey
}

// AssumedAPR returns the user's configured card APR, or the model default.
func AssumedAPR(cfg Config) float64 {
	if cfg.Assumptions.CardAPR != nil && *cfg.Assumptions.CardAPR > 0 {
		return *cfg.Assumptions.CardAPR
	}
	return DefaultAssumedAPR
}

// PayoffStrategy parses the configured payoff strategy, defaulting to moderate.
func PayoffStrategy(cfg Config) model.PayoffStrategy {
	switch model.PayoffStrategy(cfg.General.PayoffStrategy) {
	case model.PayoffAggressive:
		return model.PayoffAggressive
	case model.PayoffConservative:
		return model.PayoffConservative
	default:
		return model.PayoffModerate
	}
}

// MigrationStrategy parses the configured migration strategy, defaulting to best_roi.
func MigrationStrategy(cfg Config) model.MigrationStrategy {
	switch s := model.MigrationStrategy(cfg.General.MigrationStrategy); s {
	case model.StrategyDebtPayoff, model.StrategyMaxTime, model.StrategyPurchases, model.StrategyFeeAverse:
		return s
	default:
		return model.StrategyBestROI
	}
}

// CatalogOverrides converts the config section into catalog overrides.
func CatalogOverrides(cfg Config) ([]string, []model.MigrationCard) {
	extra := make([]model.MigrationCard, 0, len(cfg.Catalog.ExtraCards))
	for _, e := range cfg.Catalog.ExtraCards {
		extra = append(extra, model.MigrationCard{
			ID:                    e.ID,
			Issuer:                e.Issuer,
			Name:                  e.Name,
			PromoMonths:           e.PromoMonths,
			TransferFeeRate:       e.TransferFeeRate,
			PurchaseAPRAfterPromo: e.PurchaseAPR,
			MinTransfer:           e.MinTransfer,
			MaxTransfer:           e.MaxTransfer,
			StrategyTag:           model.MigrationStrategy(e.StrategyTag),
			CashbackRate:          e.CashbackRate,
			GraceDuringTransfer:   e.GraceDuringTransfer,
		})
	}
	return cfg.Catalog.DisabledCards, extra
}
