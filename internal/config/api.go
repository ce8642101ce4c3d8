package config

import (
	"fmt"
	"os"

	"brewline/pkg/formatting"
	"brewline/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "BREWLINE_CORS_ENABLED",
	Origins:          "BREWLINE_CORS_ORIGINS",
	AllowedMethods:   "BREWLINE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "BREWLINE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "BREWLINE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "BREWLINE_CORS_MAX_AGE",
}

// APIConfig holds API routing, CORS, and request body limit settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
}

// MaxBodySizeBytes returns the request body limit as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("BREWLINE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("BREWLINE_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
