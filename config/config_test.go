package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/roster-engine/roster"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("unexpected listen addr: %s", cfg.Server.ListenAddr)
	}
	if cfg.Database.Path != "roster.db" {
		t.Errorf("unexpected db path: %s", cfg.Database.Path)
	}
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`server:
  listen_addr: ":3000"
  allowed_origins:
    - "http://localhost:4000"

database:
  path: "/tmp/test-roster.db"

rules:
  min_rest_hours: 10
  weekly_limits:
    "Pół etatu": 18
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ListenAddr != ":3000" {
		t.Errorf("unexpected listen addr: %s", cfg.Server.ListenAddr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:4000" {
		t.Errorf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Database.Path != "/tmp/test-roster.db" {
		t.Errorf("unexpected db path: %s", cfg.Database.Path)
	}
}

func TestLoad_InvalidLimitRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`rules:
  weekly_limits:
    "Pełny etat": -5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative weekly limit")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRulePolicy_MergesOverridesOntoDefaults(t *testing.T) {
	cfg := Default()
	cfg.Rules.MinRestHours = 10
	cfg.Rules.WeeklyLimits = map[string]float64{roster.HalfTime: 18}

	policy := cfg.RulePolicy()

	if !policy.MinRestHours.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected rest floor: %s", policy.MinRestHours)
	}
	if !policy.WeeklyLimits[roster.HalfTime].Equal(decimal.NewFromInt(18)) {
		t.Errorf("override not applied: %s", policy.WeeklyLimits[roster.HalfTime])
	}
	// Untouched types keep their defaults.
	if !policy.WeeklyLimits[roster.FullTime].Equal(decimal.NewFromInt(40)) {
		t.Errorf("default lost: %s", policy.WeeklyLimits[roster.FullTime])
	}
}
