package gconfig

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultFilename is looked up in the conf directory when Load is given no path.
	DefaultFilename = "gstrategy.yaml"
	envPrefix       = "GSTRATEGY"
)

// Load reads path, or conf/gstrategy.yaml when path is empty, and applies
// GSTRATEGY_* environment overrides such as GSTRATEGY_MARKET_VOLATILITY.
// A missing default file is not an error, defaults are used instead.
func Load(path string) (*Config, error) {
	v := newViper()
	if path == "" {
		if dir, err := FindConfDir(); err == nil && isFileExist(filepath.Join(dir, DefaultFilename)) {
			path = filepath.Join(dir, DefaultFilename)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return decode(v)
}

// LoadReader reads a config of the given type (yaml, json, toml) from r.
func LoadReader(r io.Reader, configType string) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("log.type", c.Log.Type)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.file", c.Log.File)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.max_size", c.Log.MaxSize)
	v.SetDefault("log.max_age", c.Log.MaxAge)
	v.SetDefault("log.max_backups", c.Log.MaxBackups)
	v.SetDefault("log.compress", c.Log.Compress)
	v.SetDefault("log.disable_caller", c.Log.DisableCaller)
	v.SetDefault("metric.enabled", c.Metric.Enabled)
	v.SetDefault("metric.namespace", c.Metric.Namespace)
	v.SetDefault("report.log", c.Report.Log)
	v.SetDefault("report.json", c.Report.JSON)
	v.SetDefault("report.stats", c.Report.Stats)
	v.SetDefault("report.precision", c.Report.Precision)
	v.SetDefault("market.risk_free_rate", c.Market.RiskFreeRate)
	v.SetDefault("market.volatility", c.Market.Volatility)
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := unmarshal(v, c); err != nil {
		return nil, err
	}
	return c, nil
}

// unmarshal decodes v into out, a pointer. OnInit runs before decoding and
// OnLoaded after it when out implements them. An OnLoaded error rejects the value.
func unmarshal(v *viper.Viper, out interface{}) error {
	if obj, ok := out.(OnInit); ok {
		obj.OnInit()
	}
	if err := v.Unmarshal(out); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}
	if obj, ok := out.(OnLoaded); ok {
		if err := obj.OnLoaded(); err != nil {
			return err
		}
	}
	return nil
}

// FindConfDir looks for ./conf. Under go test it also walks up from the
// working directory and stops at the directory holding go.mod.
func FindConfDir() (string, error) {
	if isDirExist("./conf") {
		return "./conf", nil
	}

	if !isGoTest() {
		return "", ErrNotFound
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if isFileExist(filepath.Join(dir, "go.mod")) {
			return "", ErrNotFound
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
		confDir := filepath.Join(dir, "conf")
		if isDirExist(confDir) {
			return confDir, nil
		}
	}
}

func isDirExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFileExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isGoTest() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}

	// -test.timeout,-test.run,-test.bench,-test.v
	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "-test.") {
			return true
		}
	}

	return false
}
