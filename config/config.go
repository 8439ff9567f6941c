package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Amadeus       AmadeusConfig       `mapstructure:"amadeus"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Monitor       MonitorConfig       `mapstructure:"monitor"`
	Search        SearchConfig        `mapstructure:"search"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Currency      CurrencyConfig      `mapstructure:"currency"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxConnections  int           `mapstructure:"max_connections"`
	MinConnections  int           `mapstructure:"min_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// AmadeusConfig holds the flight offers provider configuration
type AmadeusConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	CallTimeout  time.Duration `mapstructure:"call_timeout"`
}

// RateLimitConfig holds outbound rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond int `mapstructure:"requests_per_second"`
	MaxRetries        int `mapstructure:"max_retries"`
	InitialBackoffMs  int `mapstructure:"initial_backoff_ms"`
	MaxBackoffMs      int `mapstructure:"max_backoff_ms"`
}

// MonitorConfig holds price monitoring worker configuration
type MonitorConfig struct {
	Schedule       string        `mapstructure:"schedule"`
	InitialDelay   time.Duration `mapstructure:"initial_delay"`
	InterTripDelay time.Duration `mapstructure:"inter_trip_delay"`
	RetentionDays  int           `mapstructure:"retention_days"`
}

// SearchConfig holds smart-search fan-out configuration
type SearchConfig struct {
	FlexDays     int           `mapstructure:"flex_days"`
	MinDaysAhead int           `mapstructure:"min_days_ahead"`
	CallTimeout  time.Duration `mapstructure:"call_timeout"`
}

// CacheConfig holds the offer search cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CurrencyConfig holds exchange rate configuration
type CurrencyConfig struct {
	RatesURL string        `mapstructure:"rates_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// NotificationsConfig holds alert delivery configuration
type NotificationsConfig struct {
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// SMTPConfig holds email delivery configuration
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// TelegramConfig holds telegram bot configuration
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

var globalConfig *Config

// Load loads the configuration from file, .env, and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// Load .env file
	if err := loadEnvFile(); err != nil {
		// .env is optional, log but don't fail
		log.Warn().Err(err).Msg("Warning: .env file not loaded")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("FLIGHT_SERVICE")

	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// loadEnvFile loads a .env file by parsing KEY=VALUE lines and setting them as environment variables
func loadEnvFile() error {
	envPaths := []string{
		".",
		"./config",
	}

	for _, path := range envPaths {
		envFile := fmt.Sprintf("%s/.env", path)
		if _, err := os.Stat(envFile); err == nil {
			if err := loadDotEnvFile(envFile); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("no .env file found")
}

// loadDotEnvFile reads a .env file and sets environment variables
func loadDotEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			value = strings.Trim(value, "\"'")
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Database
	v.BindEnv("database.url", "DATABASE_URL")

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")

	// Amadeus
	v.BindEnv("amadeus.base_url", "AMADEUS_BASE_URL")
	v.BindEnv("amadeus.client_id", "AMADEUS_CLIENT_ID")
	v.BindEnv("amadeus.client_secret", "AMADEUS_CLIENT_SECRET")

	// Monitor
	v.BindEnv("monitor.schedule", "CRON_SCHEDULE")

	// Cache
	v.BindEnv("cache.ttl", "CACHE_TTL")

	// Notifications
	v.BindEnv("notifications.smtp.host", "SMTP_HOST")
	v.BindEnv("notifications.smtp.port", "SMTP_PORT")
	v.BindEnv("notifications.smtp.username", "SMTP_USER")
	v.BindEnv("notifications.smtp.password", "SMTP_PASS")
	v.BindEnv("notifications.smtp.from", "SMTP_FROM")
	v.BindEnv("notifications.telegram.bot_token", "TELEGRAM_BOT_TOKEN")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	// Database defaults
	v.SetDefault("database.max_connections", 25)
	v.SetDefault("database.min_connections", 5)
	v.SetDefault("database.max_conn_lifetime", 1*time.Hour)
	v.SetDefault("database.max_conn_idle_time", 30*time.Minute)

	// Amadeus defaults (test environment)
	v.SetDefault("amadeus.base_url", "https://test.api.amadeus.com")
	v.SetDefault("amadeus.call_timeout", 15*time.Second)

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", 2)
	v.SetDefault("rate_limit.max_retries", 3)
	v.SetDefault("rate_limit.initial_backoff_ms", 100)
	v.SetDefault("rate_limit.max_backoff_ms", 30000)

	// Monitor defaults: every 30 minutes, 2s between trips
	v.SetDefault("monitor.schedule", "*/30 * * * *")
	v.SetDefault("monitor.initial_delay", 5*time.Second)
	v.SetDefault("monitor.inter_trip_delay", 2*time.Second)
	v.SetDefault("monitor.retention_days", 90)

	// Search defaults
	v.SetDefault("search.flex_days", 3)
	v.SetDefault("search.min_days_ahead", 7)
	v.SetDefault("search.call_timeout", 15*time.Second)

	// Cache defaults
	v.SetDefault("cache.ttl", 30*time.Minute)

	// Currency defaults
	v.SetDefault("currency.rates_url", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("currency.ttl", 1*time.Hour)

	// Notification defaults
	v.SetDefault("notifications.smtp.port", 587)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.no_color", false)
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// GetDatabaseURL returns the database URL from config or environment
func GetDatabaseURL() string {
	if cfg := Get(); cfg != nil && cfg.Database.URL != "" {
		return cfg.Database.URL
	}
	return os.Getenv("DATABASE_URL")
}
