package hebcal

import (
	"os"
	"strconv"
)

// Config holds settings for the Hebcal converter client.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns a Config pointing at the public Hebcal API.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://www.hebcal.com",
		TimeoutMs: 10000,
	}
}

// LoadConfig reads converter configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LIMUD_HEBCAL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LIMUD_HEBCAL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
