package config

import (
	"github.com/guardiancrow/randomstring/internal/logger"
)

// Config overall data structure. It is built once by Load and passed by value.
type Config struct {
	Length      int        `toml:"length"      validate:"gte=0,lte=256"`
	Count       int        `toml:"count"       validate:"gte=0"`
	Output      string     `toml:"output"      validate:"required"`
	Strategies  []string   `toml:"strategies"  validate:"min=1,dive,strategy"`
	Seed        uint64     `toml:"-"`
	SeedSet     bool       `toml:"-"` // Seed was given, otherwise seeds come from the OS
	MetricsFile string     `toml:"metricsFile"`
	Log         logger.Log `toml:"log"`
}
