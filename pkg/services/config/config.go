package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/spf13/viper"
)

const EnvPrefix = "SPOT_ATLAS"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Calculation CalculationConfig `mapstructure:"calculation"`
	Prices      PricesConfig      `mapstructure:"prices"`
	Tariffs     TariffsConfig     `mapstructure:"tariffs"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type CalculationConfig struct {
	ExchangeRate float64 `mapstructure:"exchange_rate"`
}

// TariffsConfig points at an optional rate to TDD binding workbook.
type TariffsConfig struct {
	RateMap string `mapstructure:"rate_map"`
}

type PricesConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

// Load reads the optional config file at path and applies SPOT_ATLAS_*
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("calculation.exchange_rate", 25.0)
	v.SetDefault("prices.source", pricing.SourceStatic)
	v.SetDefault("prices.path", "")
	v.SetDefault("tariffs.rate_map", "")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Calculation.ExchangeRate <= 0 {
		errs = append(errs, fmt.Errorf("calculation.exchange_rate must be positive, got %v", c.Calculation.ExchangeRate))
	}
	if c.Prices.Source != pricing.SourceStatic && c.Prices.Path == "" {
		errs = append(errs, fmt.Errorf("prices.path is required for source %q", c.Prices.Source))
	}
	return errors.Join(errs...)
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}
