// Package config reads simulation settings from the environment, loading a
// .env file first when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"belote/game"
)

// Config holds the settings for a simulation run
type Config struct {
	TargetScore int
	Seed        int64 // 0 picks a random seed
	Games       int
	MaxRounds   int
	LogLevel    log.Level
}

// Default returns the settings used when nothing is set
func Default() Config {
	return Config{
		TargetScore: game.DefaultTargetScore,
		Games:       1,
		MaxRounds:   200,
		LogLevel:    log.InfoLevel,
	}
}

// Load applies BELOTE_* environment variables over the defaults
func Load() (Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Default()
	if err := intVar("BELOTE_TARGET_SCORE", &cfg.TargetScore); err != nil {
		return cfg, err
	}
	if err := intVar("BELOTE_GAMES", &cfg.Games); err != nil {
		return cfg, err
	}
	if err := intVar("BELOTE_MAX_ROUNDS", &cfg.MaxRounds); err != nil {
		return cfg, err
	}
	if v := os.Getenv("BELOTE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("BELOTE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BELOTE_LOG_LEVEL"); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("BELOTE_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings no simulation can run with
func (c Config) Validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("target score must be positive, got %d", c.TargetScore)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds cannot be negative, got %d", c.MaxRounds)
	}
	return nil
}

func intVar(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
