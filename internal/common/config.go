// Package common provides shared utilities for Consilio
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Consilio
type Config struct {
	Environment    string           `toml:"environment"`
	DefaultAdviser string           `toml:"default_adviser"` // Adviser name stamped onto new client groups when none is given
	Platform       PlatformConfig   `toml:"platform"`
	Gemini         GeminiConfig     `toml:"gemini"`
	Allocation     AllocationConfig `toml:"allocation"`
	Cache          CacheConfig      `toml:"cache"`
	Logging        LoggingConfig    `toml:"logging"`
	MCP            MCPConfig        `toml:"mcp"`
}

// PlatformConfig holds advisory platform API configuration
type PlatformConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *PlatformConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration for description drafting
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// AllocationConfig holds allocation validation configuration
type AllocationConfig struct {
	Tolerance float64 `toml:"tolerance"` // Max distance from 100% still considered balanced
}

// GetTolerance returns the configured tolerance, or the 0.01 default.
func (c *AllocationConfig) GetTolerance() float64 {
	if c.Tolerance <= 0 {
		return 0.01
	}
	return c.Tolerance
}

// CacheConfig holds response cache and chart image cache configuration
type CacheConfig struct {
	MaxEntries int    `toml:"max_entries"`
	ImageDir   string `toml:"image_dir"` // Directory for rendered allocation charts
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// MCPConfig holds MCP console configuration
type MCPConfig struct {
	Name string `toml:"name"`
	Port int    `toml:"port"` // Streamable HTTP port; stdio when run with -stdio
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Platform: PlatformConfig{
			BaseURL:   "http://localhost:8000/api",
			RateLimit: 5,
			Timeout:   "30s",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Allocation: AllocationConfig{
			Tolerance: 0.01,
		},
		Cache: CacheConfig{
			MaxEntries: 256,
			ImageDir:   "data/charts",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "./logs/consilio.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		MCP: MCPConfig{
			Name: "consilio-mcp",
			Port: 8091,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CONSILIO_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("CONSILIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("CONSILIO_PLATFORM_URL"); url != "" {
		config.Platform.BaseURL = url
	}

	for _, name := range []string{"CONSILIO_PLATFORM_API_KEY", "PLATFORM_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			config.Platform.APIKey = key
			break
		}
	}

	for _, name := range []string{"CONSILIO_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			config.Gemini.APIKey = key
			break
		}
	}

	if adviser := os.Getenv("CONSILIO_DEFAULT_ADVISER"); adviser != "" {
		config.DefaultAdviser = adviser
	}

	if dir := os.Getenv("CONSILIO_CHART_DIR"); dir != "" {
		config.Cache.ImageDir = dir
	}

	if port := os.Getenv("CONSILIO_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.MCP.Port = p
		}
	}

	if tol := os.Getenv("CONSILIO_ALLOCATION_TOLERANCE"); tol != "" {
		if v, err := strconv.ParseFloat(tol, 64); err == nil && v > 0 {
			config.Allocation.Tolerance = v
		}
	}
}

// ValidateRequired returns the names of required settings that are missing.
// The platform base URL is the only hard requirement; everything else
// degrades gracefully.
func (c *Config) ValidateRequired() []string {
	var missing []string
	if strings.TrimSpace(c.Platform.BaseURL) == "" {
		missing = append(missing, "platform.base_url")
	}
	return missing
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
