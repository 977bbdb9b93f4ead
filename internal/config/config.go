package config

import (
	"os"
	"strconv"

	"trialstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Analysis AnalysisConfig
}

// DataConfig holds data source settings
type DataConfig struct {
	TrialFile string // xlsx or csv workbook with trial measurements
	Sheet     string
}

// AnalysisConfig holds analysis behavior settings
type AnalysisConfig struct {
	Alpha      float64 // reporting threshold only; result flags stay fixed at 0.05/0.01
	RunLSD     bool
	MaxWorkers int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			TrialFile: os.Getenv("TRIAL_FILE"),
			Sheet:     getEnvOrDefault("TRIAL_SHEET", "Sheet1"),
		},
		Analysis: AnalysisConfig{
			Alpha:      getEnvFloat("ANALYSIS_ALPHA", 0.05),
			RunLSD:     getEnvBool("ANALYSIS_RUN_LSD", true),
			MaxWorkers: getEnvInt("ANALYSIS_MAX_WORKERS", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Data.TrialFile == "" {
		return errors.ConfigInvalid("TRIAL_FILE is required")
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("ANALYSIS_ALPHA must be in (0, 1)")
	}
	if c.Analysis.MaxWorkers < 1 {
		return errors.ConfigInvalid("ANALYSIS_MAX_WORKERS must be >= 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
