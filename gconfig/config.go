package gconfig

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/glog"
)

var (
	// ErrNotFound no conf directory was found
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfig a loaded value failed validation
	ErrInvalidConfig = errors.New("invalid config")
)

// OnInit is called before unmarshal, usually to set defaults.
type OnInit interface {
	OnInit()
}

// OnLoaded is called after unmarshal, usually to validate. An error rejects the config.
type OnLoaded interface {
	OnLoaded() error
}

type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Metric MetricConfig `mapstructure:"metric" yaml:"metric"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Market MarketConfig `mapstructure:"market" yaml:"market"`
}

type LogConfig struct {
	Type          string `mapstructure:"type" yaml:"type"`
	Level         string `mapstructure:"level" yaml:"level"`
	File          string `mapstructure:"file" yaml:"file"`
	Format        string `mapstructure:"format" yaml:"format"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups"`
	Compress      bool   `mapstructure:"compress" yaml:"compress"`
	DisableCaller bool   `mapstructure:"disable_caller" yaml:"disable_caller"`
}

type MetricConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

type ReportConfig struct {
	Log       bool  `mapstructure:"log" yaml:"log"`             // log reporter on glog
	JSON      bool  `mapstructure:"json" yaml:"json"`           // JSON lines reporter
	Stats     bool  `mapstructure:"stats" yaml:"stats"`         // in-memory tallies
	Precision int32 `mapstructure:"precision" yaml:"precision"` // decimal places in log output
}

// MarketConfig holds the pricing defaults for priced strategies.
type MarketConfig struct {
	RiskFreeRate float64 `mapstructure:"risk_free_rate" yaml:"risk_free_rate"`
	Volatility   float64 `mapstructure:"volatility" yaml:"volatility"`
}

// Default returns the configuration used when no file or environment override is given.
func Default() *Config {
	c := &Config{}
	c.OnInit()
	return c
}

func (c *Config) OnInit() {
	c.Log = LogConfig{Type: glog.TypeConsole, Level: "info"}
	c.Metric = MetricConfig{Enabled: false, Namespace: "gstrategy"}
	c.Report = ReportConfig{Log: true, Precision: 4}
	c.Market = MarketConfig{RiskFreeRate: 0.05, Volatility: 0.2}
}

func (c *Config) OnLoaded() error {
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Log.Type {
	case glog.TypeConsole, glog.TypeFile, glog.TypeLumberjack:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.type %q", c.Log.Type)
	}
	if _, err := glog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", glog.FormatJson, glog.FormatConsole:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.format %q", c.Log.Format)
	}
	if c.Metric.Enabled && c.Metric.Namespace == "" {
		return errors.Wrap(ErrInvalidConfig, "metric.namespace is empty")
	}
	if c.Report.Precision < 0 || c.Report.Precision > 16 {
		return errors.Wrapf(ErrInvalidConfig, "report.precision %d out of [0, 16]", c.Report.Precision)
	}
	if math.IsNaN(c.Market.RiskFreeRate) || math.IsInf(c.Market.RiskFreeRate, 0) {
		return errors.Wrapf(ErrInvalidConfig, "market.risk_free_rate %v", c.Market.RiskFreeRate)
	}
	if !(c.Market.Volatility > 0) || math.IsInf(c.Market.Volatility, 0) {
		return errors.Wrapf(ErrInvalidConfig, "market.volatility %v must be positive", c.Market.Volatility)
	}
	return nil
}

// Glog converts to the logger config.
func (c LogConfig) Glog() (*glog.Config, error) {
	lv, err := glog.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "log.level %q", c.Level)
	}
	return &glog.Config{
		Type:          c.Type,
		Level:         lv,
		File:          c.File,
		Format:        strings.ToLower(c.Format),
		MaxSize:       c.MaxSize,
		MaxAge:        c.MaxAge,
		MaxBackups:    c.MaxBackups,
		Compress:      c.Compress,
		DisableCaller: c.DisableCaller,
	}, nil
}

// Market builds the pricing environment for one underlying price and time to expiry in years.
func (c MarketConfig) Market(underlying, timeToExpiry float64) gstrategy.Market {
	return gstrategy.Market{
		Underlying:   underlying,
		TimeToExpiry: timeToExpiry,
		RiskFreeRate: c.RiskFreeRate,
		Volatility:   c.Volatility,
	}
}

// YAML returns the effective configuration, loadable again with LoadReader.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return data, nil
}
