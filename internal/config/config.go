package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	CORS   CORSConfig
	Engine EngineConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// EngineConfig holds the computation quotas and the overlapping-leave
// tie-break. Defaults match the source domain: 7h daily quota, 5h during
// Ramadan, first-match leave resolution.
type EngineConfig struct {
	RegularDailyHours float64
	RamadanDailyHours float64
	LeaveTiebreak     string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// CORS configuration
	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	config.CORS = CORSConfig{AllowedOrigins: origins}

	// Engine configuration
	regularHours, err := strconv.ParseFloat(getEnv("REGULAR_DAILY_HOURS", "7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REGULAR_DAILY_HOURS: %w", err)
	}

	ramadanHours, err := strconv.ParseFloat(getEnv("RAMADAN_DAILY_HOURS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RAMADAN_DAILY_HOURS: %w", err)
	}

	config.Engine = EngineConfig{
		RegularDailyHours: regularHours,
		RamadanDailyHours: ramadanHours,
		LeaveTiebreak:     getEnv("LEAVE_TIEBREAK", "first_match"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be a valid port number")
	}
	if c.Engine.RegularDailyHours <= 0 || c.Engine.RegularDailyHours >= 24 {
		return fmt.Errorf("REGULAR_DAILY_HOURS must be in (0, 24)")
	}
	if c.Engine.RamadanDailyHours <= 0 || c.Engine.RamadanDailyHours >= 24 {
		return fmt.Errorf("RAMADAN_DAILY_HOURS must be in (0, 24)")
	}
	switch c.Engine.LeaveTiebreak {
	case "first_match", "earliest_start", "longest":
	default:
		return fmt.Errorf("LEAVE_TIEBREAK must be one of first_match, earliest_start, longest")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
