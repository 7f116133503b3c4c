// Package config loads the monitor's YAML configuration, following the
// teacher's Load()/applyDefaults() convention: unmarshal, then backfill any
// zero-valued field with its default so a config file only needs to state
// what it overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chanwatch/core/internal/coreerr"
	"github.com/chanwatch/core/internal/market"
)

// Config is the top-level configuration for the monitor's analytical core
// and its thin demonstration API.
type Config struct {
	Store   StoreConfig          `yaml:"store"`
	Dedupe  DedupeConfig         `yaml:"dedupe"`
	Markets map[string]MarketCfg `yaml:"markets"`
	API     APIConfig            `yaml:"api"`
}

// StoreConfig configures the signal store's bounded buffer. ToastCapacity and
// ToastLifetime are read and defaulted but not passed to the store, which
// always uses its fixed store.ToastCapacity and store.ToastLifetime.
type StoreConfig struct {
	Capacity      int           `yaml:"capacity"`
	ToastCapacity int           `yaml:"toastCapacity"`
	ToastLifetime time.Duration `yaml:"toastLifetime"`
}

// DedupeConfig configures the signal deduper's cooldown window.
type DedupeConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`
}

// MarketCfg overrides the ChanlunParams for one market.
type MarketCfg struct {
	MinBiKbars           int     `yaml:"minBiKbars"`
	MinBiMoveATR         float64 `yaml:"minBiMoveAtr"`
	BreakoutATR          float64 `yaml:"breakoutAtr"`
	PullbackToleranceATR float64 `yaml:"pullbackToleranceAtr"`
	ConfirmRule          string  `yaml:"confirmRule"`
}

// APIConfig configures the demonstration HTTP/WS server.
type APIConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

// Load reads and parses a YAML config file, applying defaults to any field
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration applyDefaults produces from a zero
// value, i.e. what a caller gets with no config file at all.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Store.Capacity == 0 {
		cfg.Store.Capacity = 500
	}
	if cfg.Store.ToastCapacity == 0 {
		cfg.Store.ToastCapacity = 5
	}
	if cfg.Store.ToastLifetime == 0 {
		cfg.Store.ToastLifetime = 8 * time.Second
	}
	if cfg.Dedupe.Cooldown == 0 {
		cfg.Dedupe.Cooldown = 5 * time.Minute
	}
	if cfg.API.Port == "" {
		cfg.API.Port = "8090"
	}
	if len(cfg.API.CORSOrigins) == 0 {
		cfg.API.CORSOrigins = []string{"*"}
	}
}

// ParamsTable converts the Markets overrides into a market.Table seeded
// with DefaultTable, so config need only list the markets it overrides.
func (c *Config) ParamsTable() (*market.Table, error) {
	table := market.DefaultTable()
	for name, override := range c.Markets {
		m := market.Market(name)
		if !m.Valid() {
			return nil, fmt.Errorf("%w: unknown market %q in config", coreerr.ErrConfigError, name)
		}
		params := market.DefaultParams()
		if m == market.MarketCrypto {
			params = market.CryptoParams()
		}
		if override.MinBiKbars != 0 {
			params.MinBiKbars = override.MinBiKbars
		}
		if override.MinBiMoveATR != 0 {
			params.MinBiMoveATR = override.MinBiMoveATR
		}
		if override.BreakoutATR != 0 {
			params.BreakoutATR = override.BreakoutATR
		}
		if override.PullbackToleranceATR != 0 {
			params.PullbackToleranceATR = override.PullbackToleranceATR
		}
		if override.ConfirmRule != "" {
			params.ConfirmRule = market.ConfirmRule(override.ConfirmRule)
		}
		if err := table.Set(m, params); err != nil {
			return nil, err
		}
	}
	return table, nil
}
