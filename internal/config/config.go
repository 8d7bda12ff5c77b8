package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DatasetURL     string `mapstructure:"dataset_url" yaml:"dataset_url"`
	HTTPTimeoutSec int    `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`

	// Dashboard server
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`

	// Chart output
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	OutputDir     string  `mapstructure:"output_dir" yaml:"output_dir"`
}

// Dir returns ~/.gdpcov.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gdpcov"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.gdpcov/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("GDPCOV")
	v.AutomaticEnv()

	v.SetDefault("dataset_url", dataset.DefaultURL)
	v.SetDefault("http_timeout_sec", 20)
	v.SetDefault("listen_addr", "127.0.0.1:8050")
	v.SetDefault("chart_width_in", 10.0)
	v.SetDefault("chart_height_in", 4.0)
	v.SetDefault("output_dir", ".")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.HTTPTimeoutSec <= 0 {
		c.HTTPTimeoutSec = 20
	}
	return &c, nil
}

// Set assigns a single key by name, parsing numeric values.
func (c *Global) Set(key, value string) error {
	switch key {
	case "dataset_url":
		c.DatasetURL = value
	case "listen_addr":
		c.ListenAddr = value
	case "output_dir":
		c.OutputDir = value
	case "http_timeout_sec":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid int for http_timeout_sec: %v", value)
		}
		c.HTTPTimeoutSec = n
	case "chart_width_in", "chart_height_in":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid float for %s: %v", key, value)
		}
		if key == "chart_width_in" {
			c.ChartWidthIn = f
		} else {
			c.ChartHeightIn = f
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
