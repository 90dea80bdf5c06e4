package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig describes the limit applied to one route. A Path ending in
// "/" matches all routes under that prefix. A Limit of zero means unlimited.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration // time window
	Burst  int           // burst capacity
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	EndpointConfigs []EndpointConfig
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	CleanupInterval time.Duration
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to defaults suitable for a single-instance deployment. The
// generation route is limited aggressively since each request costs a model
// call; ingestion routes get a moderate limit.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         envBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 100),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       envSet("RATE_LIMIT_WHITELIST"),
		Blacklist:       envSet("RATE_LIMIT_BLACKLIST"),
	}

	cfg.EndpointConfigs = []EndpointConfig{
		{
			Path:   "/v1/generate",
			Method: "POST",
			Limit:  envInt("RATE_LIMIT_GENERATE_LIMIT", 10),
			Window: envDuration("RATE_LIMIT_GENERATE_WINDOW", time.Minute),
			Burst:  envInt("RATE_LIMIT_GENERATE_BURST", 3),
		},
		{
			Path:   "/v1/ingest/",
			Method: "POST",
			Limit:  envInt("RATE_LIMIT_INGEST_LIMIT", 30),
			Window: envDuration("RATE_LIMIT_INGEST_WINDOW", time.Minute),
			Burst:  envInt("RATE_LIMIT_INGEST_BURST", 10),
		},
	}

	return cfg
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func envSet(key string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range strings.Split(os.Getenv(key), ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			set[entry] = true
		}
	}
	return set
}
