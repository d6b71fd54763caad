package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/6laercio/saude-integrada-api/internal/timezone"
)

type Config struct {
	ServerPort     string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	LogLevel       string   `mapstructure:"LOG_LEVEL"`
	DBUrl          string   `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int      `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int      `mapstructure:"DB_MAX_IDLE_CONNS"`
	RedisURL       string   `mapstructure:"REDIS_URL"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	ClinicTimezone string   `mapstructure:"CLINIC_TIMEZONE"`

	// ReminderLead is how long before the appointment the reminder fires.
	ReminderLead         time.Duration `mapstructure:"REMINDER_LEAD"`
	ReminderSweepSeconds int           `mapstructure:"REMINDER_SWEEP_SECONDS"`
}

var keys = []string{
	"PORT",
	"ENV",
	"LOG_LEVEL",
	"DATABASE_URL",
	"DB_MAX_OPEN_CONNS",
	"DB_MAX_IDLE_CONNS",
	"REDIS_URL",
	"CORS_ORIGINS",
	"CLINIC_TIMEZONE",
	"REMINDER_LEAD",
	"REMINDER_SWEEP_SECONDS",
}

// Load reads the process environment, optionally seeded from a .env file.
func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("CLINIC_TIMEZONE", timezone.DefaultTimezone)
	v.SetDefault("REMINDER_LEAD", "24h")
	v.SetDefault("REMINDER_SWEEP_SECONDS", 60)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	for i := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(cfg.CORSOrigins[i])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBUrl == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ReminderLead <= 0 {
		return fmt.Errorf("REMINDER_LEAD must be a positive duration, got %s", c.ReminderLead)
	}
	if c.ReminderSweepSeconds <= 0 {
		return fmt.Errorf("REMINDER_SWEEP_SECONDS must be positive, got %d", c.ReminderSweepSeconds)
	}
	if !timezone.IsValid(c.ClinicTimezone) {
		return fmt.Errorf("CLINIC_TIMEZONE %q is not a valid IANA zone", c.ClinicTimezone)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) AllowsAnyOrigin() bool {
	return len(c.CORSOrigins) == 0 || (len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*")
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
