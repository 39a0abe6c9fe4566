package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultRecentPosts  = 3
	defaultHomeProducts = 6
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"cms.project_id":                             "",
		"cms.dataset":                                "production",
		"cms.api_version":                            "2024-01-01",
		"cms.token":                                  "",
		"cms.base_url":                               "",
		"cms.client.timeout":                         "10s",
		"cms.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"cms.client.retry.initial_interval":          "100ms",
		"cms.client.retry.max_interval":              "2s",
		"cms.client.retry.multiplier":                defaultRetryMultiplier,
		"cms.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"cms.client.circuit_breaker.timeout":         "30s",
		"cms.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"cms.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"cms.client.rate_limit.burst":                defaultRateLimitBurst,

		"site.base_url":               "https://vinhson.com.vn",
		"site.name":                   "Vinh Son",
		"site.default_locale":         "vi",
		"site.search_path":            "",
		"site.cache_max_age":          "60s",
		"site.stale_while_revalidate": "600s",
		"site.recent_posts":           defaultRecentPosts,
		"site.home_products":          defaultHomeProducts,

		"preview.secret":      "",
		"preview.cookie_name": "__preview",
		"preview.max_age":     "1h",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "vinhson-web",
		"telemetry.prometheus":   false,
	}
}
