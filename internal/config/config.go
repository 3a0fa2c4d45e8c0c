package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Device   DeviceConfig `mapstructure:"device"`
	Run      RunConfig    `mapstructure:"run"`
}

type DeviceConfig struct {
	Name string `mapstructure:"name"`
}

type RunConfig struct {
	Shots    int    `mapstructure:"shots"`
	Analytic bool   `mapstructure:"analytic"`
	Seed     int64  `mapstructure:"seed"`
	MaxRuns  int    `mapstructure:"max_runs"`
	Report   string `mapstructure:"report"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Device: DeviceConfig{
			Name: DeviceStatevector,
		},
		Run: RunConfig{
			Shots:    1024,
			Analytic: true,
			Seed:     42,
			MaxRuns:  10,
			Report:   "",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("device", defaults.Device.Name, "Registered device to exercise")
	fs.Int("shots", defaults.Run.Shots, "Samples drawn per execution in shot-based mode")
	fs.Bool("analytic", defaults.Run.Analytic, "Request exact expectation values instead of shot estimates")
	fs.Int64("seed", defaults.Run.Seed, "Base seed for shot-based execution")
	fs.Int("max-runs", defaults.Run.MaxRuns, "Attempts per case before a statistical failure counts")
	fs.String("report", defaults.Run.Report, "Write a JSON report of outcomes to this path")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("QCONFORM")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("qconform")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Run.Shots < 1 {
		return Config{}, fmt.Errorf("run.shots must be positive, got %d", cfg.Run.Shots)
	}
	if cfg.Run.MaxRuns < 1 {
		return Config{}, fmt.Errorf("run.max_runs must be positive, got %d", cfg.Run.MaxRuns)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("device.name", c.Device.Name)
	v.SetDefault("run.shots", c.Run.Shots)
	v.SetDefault("run.analytic", c.Run.Analytic)
	v.SetDefault("run.seed", c.Run.Seed)
	v.SetDefault("run.max_runs", c.Run.MaxRuns)
	v.SetDefault("run.report", c.Run.Report)
}

// bindFlags binds each flag to its nested config key. Explicit per-key
// binding, not RegisterAlias: aliasing a nested key to a flag name that is
// a dot-path prefix of it (device.name -> device) corrupts viper's settings
// map.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log_level":    "log-level",
		"device.name":  "device",
		"run.shots":    "shots",
		"run.analytic": "analytic",
		"run.seed":     "seed",
		"run.max_runs": "max-runs",
		"run.report":   "report",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}
