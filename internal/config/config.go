package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Server
	Port            int
	CORSAllowOrigin string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Data
	CatalogFile   string
	DefaultSymbol string
	DefaultPeriod string

	// History synthesis
	HistoryDays   int
	HistoryWindow int
	SeriesSeed    uint64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            envInt("PORT", 5328),
		CORSAllowOrigin: envStr("CORS_ALLOW_ORIGIN", "*"),
		RequestTimeout:  envDuration("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  envStr("LOG_LEVEL", "info"),
		LogFormat: envStr("LOG_FORMAT", "json"),

		CatalogFile:   envStr("CATALOG_FILE", ""),
		DefaultSymbol: envStr("DEFAULT_SYMBOL", "AAPL"),
		DefaultPeriod: envStr("DEFAULT_PERIOD", "1mo"),

		HistoryDays:   envInt("HISTORY_DAYS", 30),
		HistoryWindow: envInt("HISTORY_WINDOW", 30),
		SeriesSeed:    envUint("SERIES_SEED", 0),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT must be 1-65535, got %d", c.Port))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, "REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}
	if c.HistoryDays <= 0 {
		errs = append(errs, "HISTORY_DAYS must be positive")
	}
	if c.HistoryWindow <= 0 {
		errs = append(errs, "HISTORY_WINDOW must be positive")
	}
	if strings.TrimSpace(c.DefaultSymbol) == "" {
		errs = append(errs, "DEFAULT_SYMBOL must not be blank")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Print logs the effective configuration.
func (c *Config) Print(log *zap.Logger) {
	catalog := c.CatalogFile
	if catalog == "" {
		catalog = "embedded"
	}
	seed := "random"
	if c.SeriesSeed != 0 {
		seed = strconv.FormatUint(c.SeriesSeed, 10)
	}

	log.Info("configuration",
		zap.Int("port", c.Port),
		zap.String("cors_allow_origin", c.CORSAllowOrigin),
		zap.Duration("request_timeout", c.RequestTimeout),
		zap.Duration("shutdown_timeout", c.ShutdownTimeout),
		zap.String("catalog", catalog),
		zap.String("default_symbol", c.DefaultSymbol),
		zap.String("default_period", c.DefaultPeriod),
		zap.Int("history_days", c.HistoryDays),
		zap.Int("history_window", c.HistoryWindow),
		zap.String("series_seed", seed),
	)
	if c.HistoryWindow > c.HistoryDays {
		log.Warn("HISTORY_WINDOW exceeds HISTORY_DAYS, responses carry every generated bar")
	}
}

// --- helpers ---

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
