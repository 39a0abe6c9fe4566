// Package config provides configuration loading and validation for the site.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the site.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	CMS       CMSConfig       `koanf:"cms"`
	Site      SiteConfig      `koanf:"site"`
	Preview   PreviewConfig   `koanf:"preview"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CMSConfig holds the Sanity project coordinates and the outbound client
// policy shared by the published and preview clients.
type CMSConfig struct {
	ProjectID  string `koanf:"project_id"`
	Dataset    string `koanf:"dataset"`
	APIVersion string `koanf:"api_version"`
	// Token authorizes draft reads. Only the preview client sends it.
	Token string `koanf:"token"`
	// BaseURL overrides both hosts, for local mocks and tests.
	BaseURL string       `koanf:"base_url"`
	Client  ClientConfig `koanf:"client"`
}

// CDNURL returns the base URL for published reads.
func (c *CMSConfig) CDNURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.ProjectID + ".apicdn.sanity.io"
}

// APIURL returns the base URL for uncached (preview) reads.
func (c *CMSConfig) APIURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.ProjectID + ".api.sanity.io"
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds the client-side token bucket settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// SiteConfig holds public site settings.
type SiteConfig struct {
	// BaseURL is the public origin used for canonical links, sitemaps and
	// structured data, without a trailing slash.
	BaseURL       string `koanf:"base_url"`
	Name          string `koanf:"name"`
	DefaultLocale string `koanf:"default_locale"`
	// SearchPath enables the WebSite SearchAction when set.
	SearchPath           string        `koanf:"search_path"`
	CacheMaxAge          time.Duration `koanf:"cache_max_age"`
	StaleWhileRevalidate time.Duration `koanf:"stale_while_revalidate"`
	RecentPosts          int           `koanf:"recent_posts"`
	HomeProducts         int           `koanf:"home_products"`
}

// PreviewConfig holds preview mode and webhook settings.
type PreviewConfig struct {
	// Secret is shared with the CMS for preview links and publish webhooks,
	// and signs the preview session cookie.
	Secret     string        `koanf:"secret"`
	CookieName string        `koanf:"cookie_name"`
	MaxAge     time.Duration `koanf:"max_age"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
	// Prometheus exposes metrics at /metrics in addition to the exporter.
	Prometheus bool `koanf:"prometheus"`
}
