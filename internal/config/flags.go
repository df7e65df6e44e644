package config

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/guardiancrow/randomstring/internal/generator"
)

// Flag names. Keys in viper match them except where noted in flagKeys.
const (
	FlagLength      = "length"
	FlagCount       = "count"
	FlagOutput      = "output"
	FlagStrategy    = "strategy"
	FlagSeed        = "seed"
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagMetricsFile = "metrics-file"
)

// flagKeys maps flag names to viper keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	FlagLength:      keyLength,
	FlagCount:       keyCount,
	FlagOutput:      keyOutput,
	FlagStrategy:    keyStrategy,
	FlagSeed:        keySeed,
	FlagConfig:      keyConfig,
	FlagLogLevel:    keyLogLevel,
	FlagMetricsFile: keyMetricsFile,
}

// RegisterFlags adds the generator flags to fs.
// Length and count are plain strings so that unparseable values can fall back to 0.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagLength, "l", strconv.Itoa(DefaultLength), "string length (max 256)")
	fs.StringP(FlagCount, "n", strconv.Itoa(DefaultCount), "number of strings per strategy")
	fs.StringP(FlagOutput, "o", DefaultOutput, "output filename")
	fs.StringSliceP(FlagStrategy, "s", generator.Names(), "strategies to run")
	fs.String(FlagSeed, "", "fixed seed for the xorshift and std-random strategies")
	fs.String(FlagConfig, "", "path to a TOML config file")
	fs.String(FlagLogLevel, DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	fs.String(FlagMetricsFile, "", "write prometheus metrics to this file after the run")
}
