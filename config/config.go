package config

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordcompanion/constants"
	"gopkg.in/yaml.v3"
)

// Config holds everything outside the engine that can be tuned.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Trial    TrialConfig    `yaml:"trial"`
}

type DefaultsConfig struct {
	Key    string  `yaml:"key"`
	Style  string  `yaml:"style"`
	Mode   string  `yaml:"mode"`
	Length int     `yaml:"length"`
	Tempo  float64 `yaml:"tempo"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // rotated JSON log, empty disables it
	Production bool   `yaml:"production"`
}

type TrialConfig struct {
	Enabled bool    `yaml:"enabled"`
	Days    float64 `yaml:"days"`
	Dir     string  `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Key:    constants.DefaultKey,
			Style:  constants.DefaultStyle,
			Mode:   "advanced",
			Length: constants.DefaultLength,
			Tempo:  constants.DefaultTempo,
		},
		Server: ServerConfig{
			Port:           constants.GetPort(),
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Trial: TrialConfig{
			Enabled: false,
			Days:    constants.TrialDays,
			Dir:     constants.GetDataDir(),
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Defaults.Length < 1 {
		return fmt.Errorf("defaults.length must be at least 1, got %v", c.Defaults.Length)
	}
	if c.Defaults.Tempo <= 0 {
		return fmt.Errorf("defaults.tempo must be positive, got %v", c.Defaults.Tempo)
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
