/*
Package config loads server configuration from a YAML file.

PURPOSE:
  One file configures the HTTP listener, the SQLite database path, CORS
  origins for the frontend, and overrides for the scheduling rule limits.
  Every field has a default, so a missing file or an empty document yields
  a runnable configuration; command-line flags may still override the
  loaded values in main.

EXAMPLE (config.yaml):
  server:
    listen_addr: ":8080"
    allowed_origins:
      - "http://localhost:5173"
  database:
    path: "./roster.db"
  rules:
    min_rest_hours: 11
    weekly_limits:
      "Pełny etat": 40
      "Pół etatu": 20
*/
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/roster-engine/roster"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Rules    RulesConfig    `yaml:"rules"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RulesConfig overrides the default validation limits. A zero
// MinRestHours or an absent employment type keeps its default.
type RulesConfig struct {
	MinRestHours float64            `yaml:"min_rest_hours"`
	WeeklyLimits map[string]float64 `yaml:"weekly_limits"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:8080",
			},
		},
		Database: DatabaseConfig{Path: "roster.db"},
	}
}

// Load reads and validates a YAML configuration file. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: database.path must be set")
	}
	if c.Rules.MinRestHours < 0 {
		return fmt.Errorf("config: rules.min_rest_hours must not be negative")
	}
	for etat, hours := range c.Rules.WeeklyLimits {
		if hours <= 0 {
			return fmt.Errorf("config: rules.weekly_limits[%q] must be positive", etat)
		}
	}
	return nil
}

// RulePolicy merges the configured overrides onto the default limits.
func (c *Config) RulePolicy() roster.RulePolicy {
	policy := roster.DefaultRulePolicy()
	if c.Rules.MinRestHours > 0 {
		policy.MinRestHours = decimal.NewFromFloat(c.Rules.MinRestHours)
	}
	for etat, hours := range c.Rules.WeeklyLimits {
		policy.WeeklyLimits[etat] = decimal.NewFromFloat(hours)
	}
	return policy
}
