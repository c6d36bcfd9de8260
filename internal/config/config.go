package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string      `mapstructure:"env"` // current application environment (local, dev, production etc)
	TelegramAPIToken string      `mapstructure:"-"`   // Telegram API token loaded from environment
	Data             Data        `mapstructure:"data"`
	Quiz             Quiz        `mapstructure:"quiz"`
	Sessions         Sessions    `mapstructure:"sessions"`
	DB               DB          `mapstructure:"database"`
	Redis            Redis       `mapstructure:"redis"`
	HTTP             HTTP        `mapstructure:"http"`
	Leaderboard      Leaderboard `mapstructure:"leaderboard"`
}

// Data points at the static country data and flag images.
type Data struct {
	CountriesPath    string `mapstructure:"countries_path"`     // JSON object of code to country name
	PresetsPath      string `mapstructure:"presets_path"`       // JSON object of preset name to codes
	FlagsDir         string `mapstructure:"flags_dir"`          // directory with <code>.png files
	FlagsURLTemplate string `mapstructure:"flags_url_template"` // fallback URL, %s is replaced by the code
}

// Quiz contains game tuning parameters.
type Quiz struct {
	Choices int   `mapstructure:"choices"` // options per round, clamped to the pool size
	Seed    int64 `mapstructure:"seed"`    // random seed, 0 means time based
}

// Sessions controls eviction of idle in-memory sessions.
type Sessions struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`       // sessions untouched for longer are dropped, 0 keeps them forever
	SweepInterval time.Duration `mapstructure:"sweep_interval"` // how often idle sessions are looked for
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Redis contains leaderboard storage parameters.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"-"` // loaded from environment
	DB       int    `mapstructure:"db"`
}

// HTTP configures the JSON API for browser clients.
type HTTP struct {
	Enabled         bool          `mapstructure:"enabled"`
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Leaderboard configures leaderboard output.
type Leaderboard struct {
	Size int64 `mapstructure:"size"` // number of entries shown
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A local .env file is optional.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return build(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("data.countries_path", "assets/data/countries.json")
	v.SetDefault("data.presets_path", "assets/data/presets.json")
	v.SetDefault("data.flags_dir", "assets/flags")
	v.SetDefault("data.flags_url_template", "https://flagcdn.com/w640/%s.png")
	v.SetDefault("quiz.choices", 12)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("sessions.idle_ttl", "24h")
	v.SetDefault("sessions.sweep_interval", "10m")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("http.enabled", true)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("leaderboard.size", 10)
}

func build(v *viper.Viper) (*Config, error) {
	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("TELEGRAM_API_TOKEN: %w", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL: %w", ErrMissingEnvironmentVariables)
	}

	cfg.Redis.Password = v.GetString("redis_password")

	return &cfg, nil
}
