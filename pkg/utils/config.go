package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	"github.com/oxygene76/cometmag/pkg/lightcurve"
)

// Config represents the cometmag configuration
type Config struct {
	Plot  PlotConfig  `yaml:"plot" mapstructure:"plot"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	Model ModelConfig `yaml:"model" mapstructure:"model"`
}

// PlotConfig contains figure output settings
type PlotConfig struct {
	Output   string  `yaml:"output" mapstructure:"output"` // display, png, pdf or svg
	File     string  `yaml:"file" mapstructure:"file"`
	WidthCM  float64 `yaml:"width_cm" mapstructure:"width_cm"`
	HeightCM float64 `yaml:"height_cm" mapstructure:"height_cm"`
	DPI      int     `yaml:"dpi" mapstructure:"dpi"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// ModelConfig contains user-supplied brightening parameters
type ModelConfig struct {
	TransitionDistance float64                `yaml:"transition_distance" mapstructure:"transition_distance"`
	Groups             map[string]GroupConfig `yaml:"groups" mapstructure:"groups"`
}

// GroupConfig contains the parameters of one Oort group
type GroupConfig struct {
	Inbound  InboundConfig  `yaml:"inbound" mapstructure:"inbound"`
	Outbound OutboundConfig `yaml:"outbound" mapstructure:"outbound"`
}

// InboundConfig contains pre-perihelion parameters
type InboundConfig struct {
	KNear float64 `yaml:"k_near" mapstructure:"k_near"`
	KFar  float64 `yaml:"k_far" mapstructure:"k_far"`
	M1    float64 `yaml:"m1" mapstructure:"m1"`
}

// OutboundConfig contains post-perihelion parameters
type OutboundConfig struct {
	K1 float64 `yaml:"k1" mapstructure:"k1"`
	M1 float64 `yaml:"m1" mapstructure:"m1"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	table := brightness.DefaultTable()
	groups := make(map[string]GroupConfig, len(brightness.Groups))
	for _, g := range brightness.Groups {
		p := table[g]
		groups[g.String()] = GroupConfig{
			Inbound:  InboundConfig{KNear: p.Inbound.KNear, KFar: p.Inbound.KFar, M1: p.Inbound.M1},
			Outbound: OutboundConfig{K1: p.Outbound.K1, M1: p.Outbound.M1},
		}
	}

	return &Config{
		Plot: PlotConfig{
			Output:   lightcurve.OutputDisplay,
			WidthCM:  20,
			HeightCM: 12,
			DPI:      300,
		},
		Log: LogConfig{
			Level: "info",
		},
		Model: ModelConfig{
			TransitionDistance: brightness.TransitionDistance,
			Groups:             groups,
		},
	}
}

// LoadConfig loads configuration from file, falling back to defaults.
// An empty cfgFile searches $HOME/.cometmag and the working directory.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".cometmag"))
		}
		v.AddConfigPath(".")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("COMETMAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unset keys keep their defaults
	setDefaults(v, DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("plot.output", config.Plot.Output)
	v.SetDefault("plot.file", config.Plot.File)
	v.SetDefault("plot.width_cm", config.Plot.WidthCM)
	v.SetDefault("plot.height_cm", config.Plot.HeightCM)
	v.SetDefault("plot.dpi", config.Plot.DPI)
	v.SetDefault("log.level", config.Log.Level)
	v.SetDefault("model.transition_distance", config.Model.TransitionDistance)
	for name, g := range config.Model.Groups {
		prefix := "model.groups." + name
		v.SetDefault(prefix+".inbound.k_near", g.Inbound.KNear)
		v.SetDefault(prefix+".inbound.k_far", g.Inbound.KFar)
		v.SetDefault(prefix+".inbound.m1", g.Inbound.M1)
		v.SetDefault(prefix+".outbound.k1", g.Outbound.K1)
		v.SetDefault(prefix+".outbound.m1", g.Outbound.M1)
	}
}

// SaveConfig writes configuration to path as YAML
func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the default config file location
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".cometmag", "config.yaml"), nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Plot.Output {
	case lightcurve.OutputDisplay:
	default:
		if _, err := lightcurve.ParseFormat(config.Plot.Output); err != nil {
			return fmt.Errorf("plot output must be display, png, pdf or svg: %w", err)
		}
	}

	if config.Plot.WidthCM <= 0 || config.Plot.HeightCM <= 0 {
		return fmt.Errorf("plot size must be positive")
	}

	if config.Plot.DPI <= 0 {
		return fmt.Errorf("plot dpi must be positive")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[config.Log.Level] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	for name := range config.Model.Groups {
		g, err := brightness.ParseOortGroup(name)
		if err != nil {
			return fmt.Errorf("model.groups: %w", err)
		}
		if name != g.String() {
			return fmt.Errorf("model.groups: use %q instead of %q", g.String(), name)
		}
	}

	if _, err := config.BuildModel(); err != nil {
		return err
	}

	return nil
}

// BuildModel returns the brightness model described by the configuration.
// Groups missing from the config keep their default parameters.
func (c *Config) BuildModel() (*brightness.Model, error) {
	table := brightness.DefaultTable()
	for name, gc := range c.Model.Groups {
		g, err := brightness.ParseOortGroup(name)
		if err != nil {
			return nil, err
		}
		table[g] = brightness.GroupParameters{
			Inbound: brightness.InboundParameters{
				KNear: gc.Inbound.KNear,
				KFar:  gc.Inbound.KFar,
				M1:    gc.Inbound.M1,
			},
			Outbound: brightness.OutboundParameters{
				K1: gc.Outbound.K1,
				M1: gc.Outbound.M1,
			},
		}
	}

	rt := c.Model.TransitionDistance
	if rt == 0 {
		rt = brightness.TransitionDistance
	}
	return brightness.NewModel(table, rt)
}

// RenderOptions returns the figure size and resolution
func (c *Config) RenderOptions() lightcurve.RenderOptions {
	return lightcurve.RenderOptions{
		Width:  vg.Length(c.Plot.WidthCM) * vg.Centimeter,
		Height: vg.Length(c.Plot.HeightCM) * vg.Centimeter,
		DPI:    c.Plot.DPI,
	}
}
