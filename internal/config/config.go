package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "DIFFRACT_PLOT_CONFIG"
	EnvDPI        = "DIFFRACT_PLOT_DPI"
	EnvLogFile    = "DIFFRACT_PLOT_LOG_FILE"
)

// Config represents the complete configuration for diffract_plot
type Config struct {
	Figure  FigureConfig  `yaml:"figure"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// FigureConfig holds chart layout settings. Series colors and labels are fixed and not configurable.
type FigureConfig struct {
	WidthInches   float64 `yaml:"widthInches"`
	HeightInches  float64 `yaml:"heightInches"`
	DPI           int     `yaml:"dpi"`
	FontSize      float64 `yaml:"fontSize"`      // Axis labels and ticks, points
	TitleFontSize float64 `yaml:"titleFontSize"` // Points
	LegendSize    float64 `yaml:"legendSize"`    // Points
	XLabel        string  `yaml:"xLabel"`
	YLabel        string  `yaml:"yLabel"`
	LineWidth     float64 `yaml:"lineWidth"` // Points
	Grid          bool    `yaml:"grid"`
	LegendTop     bool    `yaml:"legendTop"`
	LegendLeft    bool    `yaml:"legendLeft"`
}

// OutputConfig holds output file naming
type OutputConfig struct {
	PlotSuffix   string `yaml:"plotSuffix"`
	ReportSuffix string `yaml:"reportSuffix"`
}

// LoggingConfig holds log destination settings. An empty File logs to stderr only.
type LoggingConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Load builds the configuration from defaults, an optional YAML file and environment overrides.
// path may be empty; then DIFFRACT_PLOT_CONFIG is consulted.
func Load(path string) (*Config, error) {
	cfg := getDefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return getDefaultConfig()
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Figure: FigureConfig{
			WidthInches:   5.5,
			HeightInches:  5.5,
			DPI:           300,
			FontSize:      14,
			TitleFontSize: 16,
			LegendSize:    13,
			XLabel:        "Wavelength (µm)",
			YLabel:        "Diffraction Efficiency (a.u.)",
			LineWidth:     1.5,
			Grid:          true,
			LegendTop:     true,
			LegendLeft:    false,
		},
		Output: OutputConfig{
			PlotSuffix:   "_plot.png",
			ReportSuffix: "_report.pdf",
		},
		Logging: LoggingConfig{
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
	}
}

// loadFromFile loads configuration from a YAML file over the values already in cfg
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return yaml.UnmarshalStrict(data, cfg)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) error {
	if dpi := os.Getenv(EnvDPI); dpi != "" {
		val, err := strconv.Atoi(dpi)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDPI, dpi, err)
		}
		cfg.Figure.DPI = val
	}

	if logFile := os.Getenv(EnvLogFile); logFile != "" {
		cfg.Logging.File = logFile
	}
	return nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	fig := cfg.Figure
	if fig.WidthInches <= 0 || fig.HeightInches <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g inches", fig.WidthInches, fig.HeightInches)
	}
	if fig.DPI < 10 || fig.DPI > 1200 {
		return fmt.Errorf("figure dpi must be between 10 and 1200, got %d", fig.DPI)
	}
	if fig.FontSize <= 0 || fig.TitleFontSize <= 0 || fig.LegendSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if fig.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %g", fig.LineWidth)
	}

	if cfg.Output.PlotSuffix == "" {
		return fmt.Errorf("output plotSuffix must not be empty")
	}
	if cfg.Output.ReportSuffix == "" {
		return fmt.Errorf("output reportSuffix must not be empty")
	}
	if cfg.Output.PlotSuffix == cfg.Output.ReportSuffix {
		return fmt.Errorf("output plotSuffix and reportSuffix must differ")
	}

	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxBackups < 0 || cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging limits must not be negative")
	}

	return nil
}
