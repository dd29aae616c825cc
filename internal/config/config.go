package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Import    ImportConfig    `yaml:"import" envconfig:"IMPORT"`
	Targets   TargetsConfig   `yaml:"targets" envconfig:"TARGETS"`
	Alerts    AlertsConfig    `yaml:"alerts" envconfig:"ALERTS"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" validate:"min=1024"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// ImportConfig tunes CSV/Excel ingestion
type ImportConfig struct {
	// MaxErrorRows halts row validation once this many rows have errors.
	MaxErrorRows int `yaml:"max_error_rows" envconfig:"MAX_ERROR_ROWS" validate:"min=1"`
}

// TargetsConfig carries the annual plan figures used for progress KPIs.
// Zero means no target configured.
type TargetsConfig struct {
	AnnualPremiumYuan float64 `yaml:"annual_premium_yuan" envconfig:"ANNUAL_PREMIUM_YUAN" validate:"min=0"`
	AnnualPolicyCount float64 `yaml:"annual_policy_count" envconfig:"ANNUAL_POLICY_COUNT" validate:"min=0"`
}

// AlertsConfig carries the advisory thresholds of the board report.
type AlertsConfig struct {
	CombinedCostLimit   float64 `yaml:"combined_cost_limit" envconfig:"COMBINED_COST_LIMIT"`
	CombinedCostDanger  float64 `yaml:"combined_cost_danger" envconfig:"COMBINED_COST_DANGER"`
	NEVLossGap          float64 `yaml:"nev_loss_gap" envconfig:"NEV_LOSS_GAP"`
	ClaimFrequencyLimit float64 `yaml:"claim_frequency_limit" envconfig:"CLAIM_FREQUENCY_LIMIT"`
	RenewalRateFloor    float64 `yaml:"renewal_rate_floor" envconfig:"RENEWAL_RATE_FLOOR"`
}

// RateLimitConfig contains request rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
			MaxUploadBytes:  32 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Import: ImportConfig{
			MaxErrorRows: 100,
		},
		Alerts: AlertsConfig{
			CombinedCostLimit:   95,
			CombinedCostDanger:  100,
			NEVLossGap:          10,
			ClaimFrequencyLimit: 25,
			RenewalRateFloor:    45,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     100,
			Burst:   50,
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, then
// the YAML file named by WEEKPI_CONFIG_FILE (when set), then WEEKPI_*
// environment variables on top.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("WEEKPI_CONFIG_FILE"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := envconfig.Process("WEEKPI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
