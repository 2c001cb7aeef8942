package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr  = ":8080"
	defaultTimezone    = "Asia/Tokyo"
	defaultOpenHour    = 6
	defaultCloseHour   = 23
	defaultSlotMinutes = 60
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
)

type Config struct {
	DatabaseURL string
	ListenAddr  string

	// Facility local time zone. Schedules, weekend checks and the slot
	// grid are all interpreted in this location, never UTC.
	Timezone *time.Location

	OpenHour    int
	CloseHour   int
	SlotMinutes int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, with .env as a fallback
// for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", defaultLogFormat),
		OpenHour:    defaultOpenHour,
		CloseHour:   defaultCloseHour,
		SlotMinutes: defaultSlotMinutes,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	tzName := getEnv("FACILITY_TZ", defaultTimezone)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("unknown FACILITY_TZ %q: %w", tzName, err)
	}
	cfg.Timezone = loc

	if cfg.OpenHour, err = getEnvInt("OPEN_HOUR", defaultOpenHour); err != nil {
		return nil, err
	}
	if cfg.CloseHour, err = getEnvInt("CLOSE_HOUR", defaultCloseHour); err != nil {
		return nil, err
	}
	if cfg.SlotMinutes, err = getEnvInt("SLOT_MINUTES", defaultSlotMinutes); err != nil {
		return nil, err
	}
	if cfg.OpenHour < 0 || cfg.CloseHour > 24 || cfg.CloseHour <= cfg.OpenHour {
		return nil, fmt.Errorf("invalid operating hours %d-%d", cfg.OpenHour, cfg.CloseHour)
	}
	if cfg.SlotMinutes <= 0 || cfg.SlotMinutes > 24*60 {
		return nil, fmt.Errorf("invalid SLOT_MINUTES %d", cfg.SlotMinutes)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
