// Package config assembles the run configuration from flags, environment and an optional TOML file.
package config

import (
	"bytes"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/guardiancrow/randomstring/internal/generator"
	"github.com/guardiancrow/randomstring/internal/logger"
)

const (
	// AppName is used as service and app name in logs.
	AppName = "randomstring"

	// EnvPrefix prefixes every environment variable, e.g. RANDOMSTRING_LENGTH.
	EnvPrefix = "RANDOMSTRING"

	// DefaultLength is the string length when none is given.
	DefaultLength = 32

	// MaxLength is the longest string generated; longer requests are clamped.
	MaxLength = 256

	// DefaultCount is the number of strings per strategy.
	DefaultCount = 8

	// DefaultOutput is the output file.
	DefaultOutput = "outstring.txt"

	// DefaultLogLevel keeps stderr quiet in normal runs.
	DefaultLogLevel = "warn"
)

const (
	keyLength      = "length"
	keyCount       = "count"
	keyOutput      = "output"
	keyStrategy    = "strategy"
	keySeed        = "seed"
	keyConfig      = "config"
	keyMetricsFile = "metrics_file"
	keyLogLevel    = "log.loglevel"
)

// Load builds the Config. Precedence: flags, environment, config file, defaults.
// fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return Config{}, err
		}
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(ErrReadConfigFile, err.Error())
		}
	}

	return build(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyLength, DefaultLength)
	v.SetDefault(keyCount, DefaultCount)
	v.SetDefault(keyOutput, DefaultOutput)
	v.SetDefault(keyStrategy, generator.Names())
	v.SetDefault(keySeed, "")
	v.SetDefault(keyConfig, "")
	v.SetDefault(keyMetricsFile, "")

	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault("log.reportcaller", false)
	v.SetDefault("log.appname", AppName)
	v.SetDefault("log.servicename", AppName)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.errormaxsize", 10) //nolint:mnd
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.infomaxsize", 10) //nolint:mnd
	v.SetDefault("log.file.trace", "trace.log")
	v.SetDefault("log.file.tracemaxsize", 10) //nolint:mnd
	v.SetDefault("log.file.warn", "warn.log")
	v.SetDefault("log.file.warnmaxsize", 10) //nolint:mnd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}

	return nil
}

// build converts the merged settings. Unparseable numbers become 0.
func build(v *viper.Viper) (Config, error) {
	var settings struct {
		Log logger.Log `mapstructure:"log"`
	}

	// Unmarshal walks every known key, so env and flag overrides of log.* are honoured.
	if err := v.Unmarshal(&settings); err != nil {
		return Config{}, errors.Wrap(err, "decode log config")
	}

	c := Config{
		Length:      clamp(atoi(v.Get(keyLength)), MaxLength),
		Count:       clamp(atoi(v.Get(keyCount)), -1),
		Output:      v.GetString(keyOutput),
		Strategies:  v.GetStringSlice(keyStrategy),
		MetricsFile: v.GetString(keyMetricsFile),
		Log:         settings.Log,
	}

	if s := cast.ToString(v.Get(keySeed)); s != "" {
		seed, err := cast.ToUint64E(s)
		if err != nil {
			return Config{}, errors.Wrap(ErrInvalidSeed, err.Error())
		}

		c.Seed, c.SeedSet = seed, true
	}

	return c, validate(c)
}

// clamp maps negative values to 0 and values above upper to upper. upper < 0 means unbounded.
func clamp(n, upper int) int {
	switch {
	case n < 0:
		return 0
	case upper >= 0 && n > upper:
		return upper
	default:
		return n
	}
}

var structValidator = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// strategy accepts only names the generator knows.
	_ = v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		return slices.Contains(generator.Names(), fl.Field().String())
	})

	return v
}

// validate checks the assembled config against its struct tags.
func validate(c Config) error {
	if err := structValidator.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}
