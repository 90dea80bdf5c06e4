// Package config provides configuration loading and validation for the server.
package config

import (
	"os"
	"strings"
)

// AppConfig holds the top-level service configuration. DatabaseURL and
// GeminiAPIKey are both optional: without a database the server runs in demo
// mode (no auth, no persistence), and without an API key generation returns
// the canned demo resume.
type AppConfig struct {
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
}

// NewAppConfig reads the application configuration from environment
// variables. Placeholder values left over from .env templates are treated
// as unset, matching how the service is deployed for demos.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		DatabaseURL:  realValue(os.Getenv("DATABASE_URL")),
		GeminiAPIKey: realValue(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}
}

// DatabaseConfigured reports whether a record store is available.
func (c *AppConfig) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

// GeminiConfigured reports whether real AI generation is available.
func (c *AppConfig) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func realValue(v string) string {
	if strings.Contains(v, "placeholder") {
		return ""
	}
	return v
}
