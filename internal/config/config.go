package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Directory DirectoryConfig `yaml:"directory"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"` // SPA shell served for non-API routes
}

// StoreConfig contains JSON datastore settings
type StoreConfig struct {
	Path         string `yaml:"path"`
	BackupDir    string `yaml:"backup_dir"`
	BackupRetain int    `yaml:"backup_retain"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DirectoryConfig contains nearby-tool listing settings
type DirectoryConfig struct {
	RadiusMiles float64 `yaml:"radius_miles"`
}

// ScoringConfig contains the trust-score deltas. Values are signed;
// negative deltas are clamped at a floor of zero when applied.
type ScoringConfig struct {
	ReturnOnTime int `yaml:"return_on_time"`
	ReturnLate   int `yaml:"return_late"`
	Damage       int `yaml:"damage"`
	GoodRating   int `yaml:"good_rating"`
	BadRating    int `yaml:"bad_rating"`
}

// SchedulerConfig contains cron schedule settings for the maintenance binary
type SchedulerConfig struct {
	BackupStore            string `yaml:"backup_store"`
	ReportOverdueCheckouts string `yaml:"report_overdue_checkouts"`
	OverdueAfterHours      int    `yaml:"overdue_after_hours"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("STATIC_DIR"); val != "" {
		c.Server.StaticDir = val
	}
	if val := os.Getenv("STORE_PATH"); val != "" {
		c.Store.Path = val
	}
	if val := os.Getenv("STORE_BACKUP_DIR"); val != "" {
		c.Store.BackupDir = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "public"
	}

	// Store validation
	if c.Store.Path == "" {
		return fmt.Errorf("datastore path is required")
	}
	if c.Store.BackupDir == "" {
		c.Store.BackupDir = "backups"
	}
	if c.Store.BackupRetain <= 0 {
		c.Store.BackupRetain = 7
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		c.JWT.AccessTokenExpiry = 24 * 60
	}

	// Directory defaults
	if c.Directory.RadiusMiles <= 0 {
		c.Directory.RadiusMiles = 5
	}

	// Scoring defaults
	if c.Scoring.ReturnOnTime == 0 {
		c.Scoring.ReturnOnTime = 5
	}
	if c.Scoring.ReturnLate == 0 {
		c.Scoring.ReturnLate = -20
	}
	if c.Scoring.Damage == 0 {
		c.Scoring.Damage = -20
	}
	if c.Scoring.GoodRating == 0 {
		c.Scoring.GoodRating = 2
	}
	if c.Scoring.BadRating == 0 {
		c.Scoring.BadRating = -5
	}

	// Scheduler defaults
	if c.Scheduler.BackupStore == "" {
		c.Scheduler.BackupStore = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.ReportOverdueCheckouts == "" {
		c.Scheduler.ReportOverdueCheckouts = "0 0 3 * * *" // 3 AM UTC
	}
	if c.Scheduler.OverdueAfterHours <= 0 {
		c.Scheduler.OverdueAfterHours = 72
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
