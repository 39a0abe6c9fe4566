package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.CMS.validate(),
		c.Site.validate(),
		c.Preview.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *CMSConfig) validate() error {
	var errs []error

	if c.ProjectID == "" && c.BaseURL == "" {
		errs = append(errs, errors.New("cms.project_id must not be empty"))
	}
	if c.Dataset == "" {
		errs = append(errs, errors.New("cms.dataset must not be empty"))
	}
	if _, err := time.Parse(time.DateOnly, c.APIVersion); err != nil {
		errs = append(errs, fmt.Errorf("cms.api_version must be a YYYY-MM-DD date, got %q", c.APIVersion))
	}
	if c.BaseURL != "" {
		if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("cms.base_url must be an absolute URL, got %q", c.BaseURL))
		}
	}

	errs = append(errs, c.Client.validate("cms.client"))

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative, got %f",
			prefix, cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst must be >= 1 when limiting, got %d",
			prefix, cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (s *SiteConfig) validate() error {
	var errs []error

	u, err := url.Parse(s.BaseURL)
	switch {
	case err != nil || u.Host == "":
		errs = append(errs, fmt.Errorf("site.base_url must be an absolute URL, got %q", s.BaseURL))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("site.base_url must use http or https, got %q", u.Scheme))
	case strings.HasSuffix(s.BaseURL, "/"):
		errs = append(errs, errors.New("site.base_url must not end with a slash"))
	}

	if _, err := domain.ParseLocale(s.DefaultLocale); err != nil {
		errs = append(errs, fmt.Errorf("site.default_locale: %w", err))
	}
	if s.SearchPath != "" && !strings.HasPrefix(s.SearchPath, "/") {
		errs = append(errs, fmt.Errorf("site.search_path must start with /, got %q", s.SearchPath))
	}
	if s.CacheMaxAge < 0 || s.StaleWhileRevalidate < 0 {
		errs = append(errs, errors.New("site cache durations must not be negative"))
	}
	if s.RecentPosts < 1 {
		errs = append(errs, fmt.Errorf("site.recent_posts must be >= 1, got %d", s.RecentPosts))
	}
	if s.HomeProducts < 0 {
		errs = append(errs, fmt.Errorf("site.home_products must not be negative, got %d", s.HomeProducts))
	}

	return errors.Join(errs...)
}

// Secure reports whether the public site is served over https.
func (s *SiteConfig) Secure() bool {
	return strings.HasPrefix(s.BaseURL, "https://")
}

func (p *PreviewConfig) validate() error {
	var errs []error

	if strings.TrimSpace(p.Secret) == "" {
		errs = append(errs, errors.New("preview.secret must not be empty"))
	}
	if p.CookieName == "" {
		errs = append(errs, errors.New("preview.cookie_name must not be empty"))
	}
	if p.MaxAge <= 0 {
		errs = append(errs, errors.New("preview.max_age must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
