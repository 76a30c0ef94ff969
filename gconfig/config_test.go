package gconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy/glog"
)

const testYAML = `
log:
  type: file
  level: debug
  file: /tmp/gstrategy/test.log
  format: json
  max_size: 10
metric:
  enabled: true
  namespace: pricing
report:
  json: true
  precision: 2
market:
  risk_free_rate: 0.03
  volatility: 0.35
`

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, glog.TypeConsole, c.Log.Type)
	assert.Equal(t, "info", c.Log.Level)
	assert.False(t, c.Metric.Enabled)
	assert.Equal(t, "gstrategy", c.Metric.Namespace)
	assert.True(t, c.Report.Log)
	assert.Equal(t, int32(4), c.Report.Precision)
	assert.Equal(t, 0.05, c.Market.RiskFreeRate)
	assert.Equal(t, 0.2, c.Market.Volatility)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gstrategy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, glog.TypeFile, c.Log.Type)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.True(t, c.Metric.Enabled)
	assert.Equal(t, "pricing", c.Metric.Namespace)
	assert.True(t, c.Report.JSON)
	// not in the file, keeps its default
	assert.True(t, c.Report.Log)
	assert.Equal(t, int32(2), c.Report.Precision)
	assert.Equal(t, 0.35, c.Market.Volatility)

	lc, err := c.Log.Glog()
	require.NoError(t, err)
	assert.Equal(t, glog.DebugLevel, lc.Level)
	assert.Equal(t, glog.FormatJson, lc.Format)
	assert.Equal(t, "/tmp/gstrategy/test.log", lc.File)

	m := c.Market.Market(101, 0.25)
	assert.Equal(t, 101.0, m.Underlying)
	assert.Equal(t, 0.25, m.TimeToExpiry)
	assert.Equal(t, 0.03, m.RiskFreeRate)
	assert.Equal(t, 0.35, m.Volatility)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GSTRATEGY_MARKET_VOLATILITY", "0.5")
	t.Setenv("GSTRATEGY_REPORT_PRECISION", "6")
	t.Setenv("GSTRATEGY_LOG_LEVEL", "warn")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Market.Volatility)
	assert.Equal(t, int32(6), c.Report.Precision)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadReader(t *testing.T) {
	c, err := LoadReader(strings.NewReader(`{"market": {"volatility": 0.4}}`), "json")
	require.NoError(t, err)
	assert.Equal(t, 0.4, c.Market.Volatility)
	assert.Equal(t, 0.05, c.Market.RiskFreeRate)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cases := []string{
		"log:\n  type: syslog\n",
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"report:\n  precision: 20\n",
		"market:\n  volatility: 0\n",
		"market:\n  volatility: -0.2\n",
		"metric:\n  enabled: true\n  namespace: \"\"\n",
	}
	for _, data := range cases {
		_, err := LoadReader(strings.NewReader(data), "yaml")
		assert.True(t, errors.Is(err, ErrInvalidConfig), data)
	}
}

func TestLogConfigInvalidLevel(t *testing.T) {
	_, err := LogConfig{Type: glog.TypeConsole, Level: "123"}.Glog()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestFindConf(t *testing.T) {
	assert.True(t, isGoTest())
	_, err := FindConfDir()
	assert.Equal(t, ErrNotFound, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	c := Default()
	c.Metric.Enabled = true
	c.Market.Volatility = 0.45

	data, err := c.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "risk_free_rate: 0.05")

	loaded, err := LoadReader(strings.NewReader(string(data)), "yaml")
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

type hooked struct {
	Name    string `mapstructure:"name"`
	Retries int    `mapstructure:"retries"`
	inited  bool
}

func (h *hooked) OnInit() {
	h.inited = true
	h.Retries = 3
}

func (h *hooked) OnLoaded() error {
	if h.Name == "" {
		return errors.Wrap(ErrInvalidConfig, "name is empty")
	}
	return nil
}

type plain struct {
	Name string `mapstructure:"name"`
}

func TestUnmarshalHooks(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("name: pricing\n")))

	h := &hooked{}
	require.NoError(t, unmarshal(v, h))
	assert.True(t, h.inited)
	assert.Equal(t, "pricing", h.Name)
	// not in the data, keeps the OnInit default
	assert.Equal(t, 3, h.Retries)

	p := &plain{}
	require.NoError(t, unmarshal(v, p))
	assert.Equal(t, "pricing", p.Name)

	empty := newViper()
	err := unmarshal(empty, &hooked{})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
