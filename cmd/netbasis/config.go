package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netlp/network"
)

// arcConfig is one entry of the arcs list; -1 names the root.
type arcConfig struct {
	From int `mapstructure:"from"`
	To   int `mapstructure:"to"`
}

// pivotConfig makes sequence Enter basic at basis position Position.
type pivotConfig struct {
	Enter    int `mapstructure:"enter"`
	Position int `mapstructure:"position"`
}

// Config manages the problem and run settings using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults. Settings may also come
// from NETBASIS_* environment variables (NETBASIS_LOG_LEVEL, NETBASIS_CHECKS).
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("basis", []int{})
	v.SetDefault("checks", false)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("netbasis")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile reads a yaml, json or toml problem file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// BindFlags lets changed command-line flags override the file.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{"log.level", "checks"} {
		if err := c.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("BindFlags: %s: %w", key, err)
		}
	}

	return nil
}

func (c *Config) Rows() int        { return c.v.GetInt("rows") }
func (c *Config) Basis() []int     { return c.v.GetIntSlice("basis") }
func (c *Config) Checks() bool     { return c.v.GetBool("checks") }
func (c *Config) LogLevel() string { return c.v.GetString("log.level") }

// Arcs decodes the arcs list.
func (c *Config) Arcs() ([]network.Arc, error) {
	var raw []arcConfig
	if err := c.v.UnmarshalKey("arcs", &raw); err != nil {
		return nil, fmt.Errorf("Arcs: %w", err)
	}
	arcs := make([]network.Arc, len(raw))
	for i, a := range raw {
		arcs[i] = network.Arc{From: a.From, To: a.To}
	}

	return arcs, nil
}

// Supply decodes the right-hand side, one value per row.
func (c *Config) Supply() ([]float64, error) { return c.floats("supply") }

// Cost decodes arc costs; slack costs default to zero.
func (c *Config) Cost() ([]float64, error) { return c.floats("cost") }

// Pivots decodes the basis changes to apply, in order.
func (c *Config) Pivots() ([]pivotConfig, error) {
	var out []pivotConfig
	if err := c.v.UnmarshalKey("pivots", &out); err != nil {
		return nil, fmt.Errorf("Pivots: %w", err)
	}

	return out, nil
}

func (c *Config) floats(key string) ([]float64, error) {
	var out []float64
	if err := c.v.UnmarshalKey(key, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return out, nil
}

// Set allows overriding a setting.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a console zerolog logger at the configured level.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "netbasis").Logger()
}
