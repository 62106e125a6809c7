package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep ambient values here and pass typed config into builders.
type Config struct {
	ServiceName string
	Currency    string

	BasicPlanAmount   int64
	PremiumPlanAmount int64

	AdminUsername string
	AdminPassword string

	SeedDemoData bool
}

// Load reads a .env file when present, then the process environment.
// Every value has a default so the binary runs with no setup at all.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Config{
		ServiceName:       envString("SERVICE_NAME", "tradepost"),
		Currency:          envString("CURRENCY", "INR"),
		BasicPlanAmount:   envInt64("BASIC_PLAN_AMOUNT", 500),
		PremiumPlanAmount: envInt64("PREMIUM_PLAN_AMOUNT", 1000),
		AdminUsername:     envString("ADMIN_USERNAME", "admin"),
		AdminPassword:     envString("ADMIN_PASSWORD", "admin"),
		SeedDemoData:      envBool("SEED_DEMO_DATA", true),
	}, nil
}

func envString(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envInt64(name string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
