package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Game holds all configuration for the simulation engine.
type Game struct {
	LogLevel string `yaml:"log_level"`

	Database DatabaseConfig `yaml:"database"`
	Combat   Combat         `yaml:"combat"`
	Rates    Rates          `yaml:"rates"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Combat holds the tunable combat constants.
type Combat struct {
	// MinDamage is the damage floor of every resolved hit.
	MinDamage int32 `yaml:"min_damage"`

	// BattleWear is the durability each equipped slot loses at battle end.
	BattleWear int32 `yaml:"battle_wear"`

	// DefeatXPPenaltyPercent is the XP share lost on defeat outside safe
	// regions.
	DefeatXPPenaltyPercent int `yaml:"defeat_xp_penalty_percent"`

	// LowHPThreshold is the current/max HP ratio below which low-HP skill
	// boosts activate.
	LowHPThreshold float64 `yaml:"low_hp_threshold"`
}

// Rates holds the reward multipliers. Bonuses from independent sources
// stack multiplicatively: each value > 0 multiplies into the final total.
type Rates struct {
	XPMultiplier       float64 `yaml:"xp_multiplier"`
	CurrencyMultiplier float64 `yaml:"currency_multiplier"`
	DropChance         float64 `yaml:"drop_chance_multiplier"`
	DropAmount         float64 `yaml:"drop_amount_multiplier"`

	// EventBonus and PremiumBonus are additive fractions (0.5 = +50%)
	// applied as independent ×(1+bonus) factors.
	EventBonus   float64 `yaml:"event_bonus"`
	PremiumBonus float64 `yaml:"premium_bonus"`
}

// DefaultGame returns a Game config with sensible defaults.
func DefaultGame() Game {
	return Game{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "eldora",
			DBName:  "eldora",
			SSLMode: "disable",
		},
		Combat: Combat{
			MinDamage:              1,
			BattleWear:             1,
			DefeatXPPenaltyPercent: 5,
			LowHPThreshold:         0.30,
		},
		Rates: Rates{
			XPMultiplier:       1.0,
			CurrencyMultiplier: 1.0,
			DropChance:         1.0,
			DropAmount:         1.0,
		},
	}
}

// LoadGame loads the game config from a YAML file, starting from defaults
// so absent keys keep their default values.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Combat.MinDamage < 0 {
		return cfg, fmt.Errorf("min_damage must be >= 0, got %d", cfg.Combat.MinDamage)
	}
	if cfg.Combat.LowHPThreshold < 0 || cfg.Combat.LowHPThreshold > 1 {
		return cfg, fmt.Errorf("low_hp_threshold must be in [0,1], got %v", cfg.Combat.LowHPThreshold)
	}

	return cfg, nil
}
