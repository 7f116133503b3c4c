package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chanwatch/core/internal/market"
)

func TestDefaultFillsEveryField(t *testing.T) {
	cfg := Default()
	if cfg.Store.Capacity != 500 {
		t.Errorf("Store.Capacity = %d, want 500", cfg.Store.Capacity)
	}
	if cfg.Store.ToastCapacity != 5 {
		t.Errorf("Store.ToastCapacity = %d, want 5", cfg.Store.ToastCapacity)
	}
	if cfg.Store.ToastLifetime != 8*time.Second {
		t.Errorf("Store.ToastLifetime = %v, want 8s", cfg.Store.ToastLifetime)
	}
	if cfg.Dedupe.Cooldown != 5*time.Minute {
		t.Errorf("Dedupe.Cooldown = %v, want 5m", cfg.Dedupe.Cooldown)
	}
	if cfg.API.Port != "8090" {
		t.Errorf("API.Port = %q, want 8090", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins = %v, want [*]", cfg.API.CORSOrigins)
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
store:
  capacity: 1000
dedupe:
  cooldown: 1m
markets:
  crypto:
    minBiKbars: 7
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Capacity != 1000 {
		t.Errorf("Store.Capacity = %d, want 1000", cfg.Store.Capacity)
	}
	if cfg.Store.ToastCapacity != 5 {
		t.Errorf("Store.ToastCapacity = %d, want default 5", cfg.Store.ToastCapacity)
	}
	if cfg.Dedupe.Cooldown != time.Minute {
		t.Errorf("Dedupe.Cooldown = %v, want 1m", cfg.Dedupe.Cooldown)
	}

	table, err := cfg.ParamsTable()
	if err != nil {
		t.Fatalf("ParamsTable() error = %v", err)
	}
	params := table.Params(market.MarketCrypto)
	if params.MinBiKbars != 7 {
		t.Errorf("crypto MinBiKbars = %d, want 7", params.MinBiKbars)
	}
	if params.ConfirmRule != market.ConfirmBreakPullbackHigh {
		t.Errorf("crypto ConfirmRule = %v, want unchanged default", params.ConfirmRule)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestParamsTableRejectsUnknownMarket(t *testing.T) {
	cfg := Default()
	cfg.Markets = map[string]MarketCfg{"moon": {}}
	if _, err := cfg.ParamsTable(); err == nil {
		t.Fatal("expected an error for an unknown market name")
	}
}
